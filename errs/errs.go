// Package errs collects the sentinel errors raised by the codec so callers
// can branch with errors.Is instead of string matching, and a ParserError
// wrapper that attaches tag/object context the way the record codec needs
// to when it rethrows a failure from deep inside writeValue/readValue.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownDictionary is returned in strict mode when a record's
	// bioDictionary has no registered Dictionary.
	ErrUnknownDictionary = errors.New("bio: unknown dictionary")

	// ErrUnknownObject is returned in strict mode when (dictionary, code)
	// has no registered BioObj.
	ErrUnknownObject = errors.New("bio: unknown object")

	// ErrTypeMismatch is returned when a tag's declared container/type
	// doesn't match the value being encoded.
	ErrTypeMismatch = errors.New("bio: type mismatch")

	// ErrUnsupportedTypeContainer is returned when a (type, container)
	// pair has no wire encoding (e.g. an array of Properties).
	ErrUnsupportedTypeContainer = errors.New("bio: unsupported type/container combination")

	// ErrInvalidFrame is returned when the outer frame's flag byte or
	// length prefix cannot be parsed.
	ErrInvalidFrame = errors.New("bio: invalid frame")

	// ErrInvalidHeader is returned when a record header cannot be parsed
	// from the remaining bytes of a blob.
	ErrInvalidHeader = errors.New("bio: invalid record header")

	// ErrTruncated is returned when fewer bytes remain than a length
	// prefix promises.
	ErrTruncated = errors.New("bio: truncated stream")

	// ErrUnknownEnum names the case of a BioEnum ordinal with no registered
	// variant in its enum object. The record codec does not return it: it
	// drops such an entry (or array element) instead of failing.
	ErrUnknownEnum = errors.New("bio: unknown enum ordinal")
)

// ParserError wraps an underlying error with the record/tag context that
// was active when it surfaced, matching writeValue/readValue's rethrow
// contract: "(tag name, value class, object class)".
type ParserError struct {
	Op     string // "encode" or "decode"
	Object string // BioObj.Name, or "" if not yet resolved
	Tag    string // tag name, or "" if not tag-scoped
	Err    error
}

func (e *ParserError) Error() string {
	switch {
	case e.Object != "" && e.Tag != "":
		return fmt.Sprintf("bio: %s %s.%s: %v", e.Op, e.Object, e.Tag, e.Err)
	case e.Object != "":
		return fmt.Sprintf("bio: %s %s: %v", e.Op, e.Object, e.Err)
	default:
		return fmt.Sprintf("bio: %s: %v", e.Op, e.Err)
	}
}

func (e *ParserError) Unwrap() error { return e.Err }

// Wrap attaches object/tag context to err, producing a *ParserError. If err
// is already a *ParserError, its context is filled in rather than double
// wrapping, so the first failure's context wins as it propagates up.
func Wrap(op, object, tag string, err error) error {
	if err == nil {
		return nil
	}

	var pe *ParserError
	if errors.As(err, &pe) {
		if pe.Object == "" {
			pe.Object = object
		}
		if pe.Tag == "" {
			pe.Tag = tag
		}

		return pe
	}

	return &ParserError{Op: op, Object: object, Tag: tag, Err: err}
}
