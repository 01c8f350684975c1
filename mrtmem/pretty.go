package mrtmem

import (
	"fmt"
	"strconv"
	"strings"

	"go.brendoncarroll.net/exp/slices2"
)

// Pretty formats a slot for debugging.
// Enumeration words print as their tag, other words as tag(field, ...).
// Absent fields print as _.
func Pretty(x Slot) string {
	sb := new(strings.Builder)
	pretty(sb, x)
	return sb.String()
}

func pretty(sb *strings.Builder, x Slot) {
	if IsAbsent(x) {
		sb.WriteString("_")
		return
	}
	switch x := x.(type) {
	case *Word:
		sb.WriteString(strconv.Itoa(x.tag))
		if len(x.fields) == 0 {
			return
		}
		sb.WriteString("(")
		for i, f := range x.fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			pretty(sb, f)
		}
		sb.WriteString(")")
	case Int:
		sb.WriteString(strconv.FormatInt(int64(x), 10))
	case Char:
		sb.WriteString(strconv.QuoteRune(rune(x)))
	case Float:
		sb.WriteString(strconv.FormatFloat(float64(x), 'g', -1, 64))
	case String:
		sb.WriteString(strconv.Quote(string(x)))
	case *Foreign:
		fmt.Fprintf(sb, "foreign(%v)", x.X)
	default:
		fmt.Fprintf(sb, "%v", x)
	}
}

// PrettyList formats a word known to be a list as [x, y, ...].
func PrettyList(w *Word) string {
	return "[" + strings.Join(slices2.Map(ListToSlice(w), Pretty), ", ") + "]"
}
