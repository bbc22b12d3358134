package fabric

import (
	"errors"
	"fmt"
)

// Kind identifies which of the fabric failure modes an Error represents.
type Kind int

const (
	KindUnknown Kind = iota
	KindParse
	KindResourceLimit
	KindNotFound
)

var (
	ErrParse         = errors.New("invalid claim")
	ErrResourceLimit = errors.New("fabric exceeds resource limit")
	ErrNotFound      = errors.New("no exclusive claim")
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindResourceLimit:
		return "resource limit"
	case KindNotFound:
		return "not found"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindParse:
		return ErrParse
	case KindResourceLimit:
		return ErrResourceLimit
	case KindNotFound:
		return ErrNotFound
	default:
		return nil
	}
}

// Error is returned by every fallible operation in this package.
// Line is only set for KindParse.
type Error struct {
	Kind   Kind
	Line   string
	Detail string
	Err    error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if s := e.Kind.sentinel(); s != nil {
		msg = s.Error()
	}
	if e.Line != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Line)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind sentinel and the underlying cause so that
// errors.Is works against either.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// KindOf returns the Kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}

func parseError(line string, detail string, cause error) *Error {
	return &Error{Kind: KindParse, Line: line, Detail: detail, Err: cause}
}
