package lineno

import (
	"bufio"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// DefaultMaxLineSize is the longest line, in bytes, Select accepts
// unless WithMaxLineSize says otherwise.
const DefaultMaxLineSize = 1024 * 1024

// Line is a selected input line with its 1-based line number.
type Line struct {
	Number int
	Text   string
}

type selector struct {
	log         *zap.Logger
	maxLineSize int
}

// Option configures Select.
type Option func(*selector)

// WithLogger traces every match at debug level.
func WithLogger(log *zap.Logger) Option {
	return func(s *selector) {
		if log != nil {
			s.log = log
		}
	}
}

// WithMaxLineSize limits the length of a single input line. Longer
// lines make Select fail with bufio.ErrTooLong.
func WithMaxLineSize(n int) Option {
	return func(s *selector) {
		if n > 0 {
			s.maxLineSize = n
		}
	}
}

func newSelector(opts []Option) *selector {
	s := &selector{
		log:         zap.NewNop(),
		maxLineSize: DefaultMaxLineSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Select joins specs, in order, into a single specification and runs
// it over r. Without any specification every line of r is returned
// unchanged.
func Select(specs []Filters, r io.Reader, opts ...Option) ([]Line, error) {
	if len(specs) == 0 {
		s := newSelector(opts)
		var lines []Line
		err := s.scan(r, func(ln Line) bool {
			lines = append(lines, ln)
			return true
		})
		if err != nil {
			return nil, err
		}
		return lines, nil
	}
	var all Filters
	for _, f := range specs {
		all.Join(f)
	}
	return all.Select(r, opts...)
}

// Select reads r once and returns the lines matched by each filter, one
// group after the other in filter order. A line matched by several
// filters appears once per filter. Number filters contribute at most
// one line; ranges contribute their lines in input order, or in
// reverse when the range is reversed.
//
// When every filter has an upper bound, reading stops after the last
// line any filter can match. A read error past that line is therefore
// not reported.
func (f Filters) Select(r io.Reader, opts ...Option) ([]Line, error) {
	var (
		s       = newSelector(opts)
		groups  = make([][]Line, len(f))
		last    = f.bound()
		matches int
	)
	err := s.scan(r, func(ln Line) bool {
		for i, filter := range f {
			if !filter.Matches(ln.Number) {
				continue
			}
			s.log.Debug("match", zap.Int("line", ln.Number), zap.Stringer("filter", filter))
			groups[i] = append(groups[i], ln)
			matches++
		}
		// nothing past the highest bound can match
		return last == 0 || ln.Number < last
	})
	if err != nil {
		return nil, err
	}

	lines := make([]Line, 0, matches)
	for i, filter := range f {
		group := groups[i]
		switch {
		case filter.Kind == KindNumber:
			if len(group) > 0 {
				lines = append(lines, group[0])
			}
		case filter.Range.Reversed():
			for j := len(group) - 1; j >= 0; j-- {
				lines = append(lines, group[j])
			}
		default:
			lines = append(lines, group...)
		}
	}
	return lines, nil
}

// scan calls fn for each line of r until fn returns false or the input
// is exhausted.
func (s *selector) scan(r io.Reader, fn func(Line) bool) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(4096, s.maxLineSize)), s.maxLineSize)
	var n int
	for sc.Scan() {
		n++
		if !fn(Line{Number: n, Text: sc.Text()}) {
			s.log.Debug("stopped reading", zap.Int("line", n))
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read line %d: %w", n+1, err)
	}
	return nil
}
