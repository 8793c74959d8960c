// Package request turns a line of user input into a query.
package request

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrInvalidStart is returned when the first parameter is not a whole number.
	ErrInvalidStart = errors.New("first parameter is not a whole number")
	// ErrInvalidCount is returned when the second parameter is not a natural number.
	ErrInvalidCount = errors.New("second parameter is not a natural number")
)

var (
	wholeNumberPattern   = regexp.MustCompile(`^\+?\d+$`)
	naturalNumberPattern = regexp.MustCompile(`^\+?[1-9]\d*$`)
)

// Kind is the shape of a request.
type Kind int

// Request kinds.
const (
	// KindExit ends the session.
	KindExit Kind = iota
	// KindSingle reports every property of one number.
	KindSingle
	// KindList lists consecutive numbers.
	KindList
	// KindSearch finds numbers matching property tokens.
	KindSearch
)

func (k Kind) String() string {
	switch k {
	case KindExit:
		return "exit"
	case KindSingle:
		return "single"
	case KindList:
		return "list"
	case KindSearch:
		return "search"
	default:
		return "unknown"
	}
}

// Request is a parsed line of input.
type Request struct {
	// Properties holds raw property tokens for KindSearch, including any
	// exclusion prefix.
	Properties []string
	Kind       Kind
	Start      int64
	Count      int64
}

// FormatError reports which numeric parameters were malformed. Both may be
// set at once.
type FormatError struct {
	Start bool
	Count bool
}

func (e *FormatError) Error() string {
	var msgs []string
	if e.Start {
		msgs = append(msgs, ErrInvalidStart.Error())
	}
	if e.Count {
		msgs = append(msgs, ErrInvalidCount.Error())
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes the sentinel for each malformed parameter.
func (e *FormatError) Unwrap() []error {
	var errs []error
	if e.Start {
		errs = append(errs, ErrInvalidStart)
	}
	if e.Count {
		errs = append(errs, ErrInvalidCount)
	}
	return errs
}

// Parse splits line on whitespace and validates its numeric parameters.
// Property tokens are returned as-is for the filter package to resolve.
func Parse(line string) (Request, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Request{}, &FormatError{Start: true}
	}

	start, startOK := parseNumber(tokens[0], wholeNumberPattern)
	if len(tokens) == 1 {
		if !startOK {
			return Request{}, &FormatError{Start: true}
		}
		if start == 0 {
			return Request{Kind: KindExit}, nil
		}
		return Request{Kind: KindSingle, Start: start}, nil
	}

	count, countOK := parseNumber(tokens[1], naturalNumberPattern)
	if !startOK || !countOK {
		return Request{}, &FormatError{Start: !startOK, Count: !countOK}
	}

	req := Request{Kind: KindList, Start: start, Count: count}
	if len(tokens) > 2 {
		req.Kind = KindSearch
		req.Properties = tokens[2:]
	}
	return req, nil
}

func parseNumber(token string, pattern *regexp.Regexp) (int64, bool) {
	if !pattern.MatchString(token) {
		return 0, false
	}
	n, err := strconv.ParseInt(strings.TrimPrefix(token, "+"), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
