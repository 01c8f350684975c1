package mrterr

// Recover runs fn and returns the SystemError or Fault it raised, if any.
// Any other panic, including Commit, is raised again.
func Recover(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch x := r.(type) {
		case SystemError:
			err = x
		case Fault:
			err = x
		default:
			panic(r)
		}
	}()
	fn()
	return nil
}

// CatchCommit runs fn and reports whether it raised Commit.
// Any other panic is raised again.
func CatchCommit(fn func()) (committed bool) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if _, ok := r.(Commit); ok {
			committed = true
			return
		}
		panic(r)
	}()
	fn()
	return false
}

// DoCommit transfers control to the nearest CatchCommit.
func DoCommit() {
	panic(Commit{})
}
