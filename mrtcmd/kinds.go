package mrtcmd

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"text/tabwriter"

	"go.brendoncarroll.net/star"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"

	"mercurylang.org/mrt/spec"
)

var kindsCmd = star.Command{
	Metadata: star.Metadata{
		Short: "print the type constructor representation table",
	},
	F: func(c star.Context) error {
		tw := tabwriter.NewWriter(c.StdOut, 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "CODE\tNAME\tRUNTIME NAME\tCATEGORY\tUSEREQ\n")
		for _, r := range spec.AllTypeCtorReps() {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%v\t%v\n", r, r.String()[3:], r.MercuryName(), r.Category(), r.HasUserEq())
		}
		return tw.Flush()
	},
}

var sectagsCmd = star.Command{
	Metadata: star.Metadata{
		Short: "print the secondary tag location table",
	},
	F: func(c star.Context) error {
		tw := tabwriter.NewWriter(c.StdOut, 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "CODE\tNAME\tRUNTIME NAME\n")
		for _, l := range spec.AllSecTagLocations() {
			fmt.Fprintf(tw, "%d\t%s\t%s\n", l, l, l.MercuryName())
		}
		return tw.Flush()
	},
}

var checkCmd = star.Command{
	Metadata: star.Metadata{
		Short: "check that the constants in a source file agree with the tables",
	},
	Pos: []star.IParam{fileParam},
	F: func(c star.Context) error {
		f := fileParam.Load(c)
		defer f.Close()
		res, err := Check(f)
		if err != nil {
			return err
		}
		for _, m := range res.Mismatches {
			c.Printf("MISMATCH %s: have %d, want %d\n", m.Name, m.Have, m.Want)
		}
		for _, name := range res.Missing {
			c.Printf("MISSING %s\n", name)
		}
		logctx.Info(c, "checked constants", zap.Int("seen", res.Seen), zap.Int("mismatches", len(res.Mismatches)), zap.Int("missing", len(res.Missing)))
		if !res.OK() {
			return fmt.Errorf("%d mismatched and %d missing constants", len(res.Mismatches), len(res.Missing))
		}
		c.Printf("OK %d constants\n", res.Seen)
		return nil
	},
}

// CheckResult is the outcome of comparing a source file against the tables.
type CheckResult struct {
	Seen       int
	Mismatches []Mismatch
	Missing    []string
}

type Mismatch struct {
	Name       string
	Have, Want int
}

func (r CheckResult) OK() bool {
	return len(r.Mismatches) == 0 && len(r.Missing) == 0
}

var constRe = regexp.MustCompile(`\b(MR_(?:TYPECTOR_REP|SECTAG)_[A-Z_]+)\s*=\s*(\d+)`)

// Check scans r for assignments of the form MR_TYPECTOR_REP_X = N and
// MR_SECTAG_X = N and compares them with the tables in spec.
// Names which are defined in spec but not assigned in r are reported as missing.
func Check(r io.Reader) (*CheckResult, error) {
	want := make(map[string]int)
	for _, x := range spec.AllTypeCtorReps() {
		want[x.MercuryName()] = int(x)
	}
	for _, x := range spec.AllSecTagLocations() {
		want[x.MercuryName()] = int(x)
	}
	seen := make(map[string]bool)
	var res CheckResult
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		for _, m := range constRe.FindAllStringSubmatch(sc.Text(), -1) {
			name := m[1]
			have, err := strconv.Atoi(m[2])
			if err != nil {
				return nil, err
			}
			w, ok := want[name]
			if !ok {
				res.Mismatches = append(res.Mismatches, Mismatch{Name: name, Have: have, Want: -1})
				continue
			}
			seen[name] = true
			res.Seen++
			if have != w {
				res.Mismatches = append(res.Mismatches, Mismatch{Name: name, Have: have, Want: w})
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	for _, x := range spec.AllTypeCtorReps() {
		if !seen[x.MercuryName()] {
			res.Missing = append(res.Missing, x.MercuryName())
		}
	}
	for _, x := range spec.AllSecTagLocations() {
		if !seen[x.MercuryName()] {
			res.Missing = append(res.Missing, x.MercuryName())
		}
	}
	return &res, nil
}
