package lineno

import (
	"strconv"
	"strings"
)

// Kind tells which field of a Filter is meaningful.
type Kind int

const (
	KindNumber Kind = iota
	KindRange
)

// Range is an inclusive pair of 1-based line numbers. A zero bound is
// unbounded and extends to the beginning or the end of the input.
type Range struct {
	Start int
	End   int
}

// Reversed reports whether the range was written backwards, such as
// "9:5". Ranges with an unbounded side are never reversed.
func (r Range) Reversed() bool {
	return r.Start > 0 && r.End > 0 && r.Start > r.End
}

// Matches reports whether line n lies within the range.
func (r Range) Matches(n int) bool {
	switch {
	case r.Start > 0 && r.End > 0:
		return n >= min(r.Start, r.End) && n <= max(r.Start, r.End)
	case r.Start > 0:
		return n >= r.Start
	case r.End > 0:
		return n <= r.End
	default:
		return true
	}
}

func (r Range) String() string {
	var sb strings.Builder
	if r.Start > 0 {
		sb.WriteString(strconv.Itoa(r.Start))
	}
	sb.WriteByte(':')
	if r.End > 0 {
		sb.WriteString(strconv.Itoa(r.End))
	}
	return sb.String()
}

// Filter is one elementary term of a specification: either a single
// line number or a range.
type Filter struct {
	Kind  Kind
	Line  int   // KindNumber
	Range Range // KindRange
}

// Number returns a filter selecting line n.
func Number(n int) Filter { return Filter{Kind: KindNumber, Line: n} }

// NewRange returns a filter selecting the lines between start and end.
// Pass 0 for an unbounded side.
func NewRange(start, end int) Filter {
	return Filter{Kind: KindRange, Range: Range{Start: start, End: end}}
}

// Matches reports whether line n satisfies the filter.
func (f Filter) Matches(n int) bool {
	if f.Kind == KindNumber {
		return n == f.Line
	}
	return f.Range.Matches(n)
}

// bound returns the last line number the filter can match, or 0 if it
// can match lines up to the end of any input.
func (f Filter) bound() int {
	if f.Kind == KindNumber {
		return f.Line
	}
	if f.Range.End == 0 {
		return 0
	}
	return max(f.Range.Start, f.Range.End)
}

func (f Filter) String() string {
	if f.Kind == KindNumber {
		return strconv.Itoa(f.Line)
	}
	return f.Range.String()
}

// Filters is an ordered specification. The order decides the order of
// the output groups.
type Filters []Filter

// Join appends the filters of other, preserving their order.
func (f *Filters) Join(other Filters) {
	*f = append(*f, other...)
}

// bound returns the highest line any filter can match, or 0 when at
// least one filter is unbounded.
func (f Filters) bound() int {
	var n int
	for _, filter := range f {
		b := filter.bound()
		if b == 0 {
			return 0
		}
		n = max(n, b)
	}
	return n
}

func (f Filters) String() string {
	s := make([]string, len(f))
	for i, filter := range f {
		s[i] = filter.String()
	}
	return strings.Join(s, ",")
}
