package lineno

import (
	"strconv"
)

// Parse parses a filter specification into its elementary filters.
// Filters are separated by a comma, optionally followed by blanks, or
// by blanks alone. A filter is a line number, or a range written as
// "start:end" or "start..end" where either side may be omitted.
//
// Parse fails as a whole; a malformed trailing element is never
// skipped.
func Parse(text string) (Filters, error) {
	var (
		in      = input{buf: text}
		filters Filters
	)
	for {
		f, err := in.nextFilter()
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
		if in.atEnd() {
			return filters, nil
		}
		if err := in.separator(); err != nil {
			return nil, err
		}
	}
}

// MustParse is like Parse but panics if the specification is invalid.
func MustParse(text string) Filters {
	f, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return f
}

// nextFilter extracts the next filter in the input. A range is tried
// first; without a range separator the leading number stands alone.
func (i *input) nextFilter() (Filter, error) {
	var (
		start, end int
		err        error
		startpos   = i.pos
	)
	if isDigit(i.token()) {
		if start, err = i.scanNumber(); err != nil {
			return Filter{}, err
		}
	}
	ok, err := i.rangeSeparator()
	if err != nil {
		return Filter{}, err
	}
	if !ok {
		if i.pos == startpos {
			return Filter{}, i.errorAt(startpos)
		}
		return Number(start), nil
	}
	if isDigit(i.token()) {
		if end, err = i.scanNumber(); err != nil {
			return Filter{}, err
		}
	}
	return NewRange(start, end), nil
}

// rangeSeparator consumes ":" or "..". It reports false without
// consuming anything if neither is next.
func (i *input) rangeSeparator() (bool, error) {
	switch i.token() {
	case ':':
		i.consume()
		return true, nil
	case '.':
		pos := i.pos
		i.consume()
		if i.token() != '.' {
			return false, i.errorAt(pos)
		}
		i.consume()
		return true, nil
	}
	return false, nil
}

// separator consumes the text between two filters: a comma followed by
// optional blanks, or one or more blanks.
func (i *input) separator() error {
	if i.token() == ',' {
		i.consume()
		i.skipWhitespace()
		return nil
	}
	if !i.skipWhitespace() {
		return i.errorAt(i.pos)
	}
	return nil
}

// scanNumber scans a positive decimal line number and advances until
// the current token is not a digit.
func (i *input) scanNumber() (int, error) {
	start := i.pos
	for isDigit(i.token()) {
		i.consume()
	}
	n, err := strconv.Atoi(i.buf[start:i.pos])
	if err != nil || n < 1 {
		return 0, i.errorAt(start)
	}
	return n, nil
}

func (i *input) errorAt(pos int) error {
	return &ParseError{Input: i.buf, Offset: pos}
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
