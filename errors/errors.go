package errors

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// CodecError is an error carrying one of the codec's [Kind]s, with a
// customizable message.
type CodecError interface {
	error
	Kind() Kind
	WithMessage(message string) CodecError
	Wrap(err error) CodecError
}

// baseError is the sentinel form of a [Kind]. Sentinels are comparable, so
// errors.Is works on them directly.
type baseError Kind

func (e baseError) Error() string {
	return StrError(Kind(e))
}

func (e baseError) Kind() Kind {
	return Kind(e)
}

func (e baseError) WithMessage(message string) CodecError {
	return customCodecError{
		kind:          Kind(e),
		message:       fmt.Sprintf("%s: %s", e.Error(), message),
		originalError: e,
	}
}

func (e baseError) Wrap(err error) CodecError {
	return customCodecError{
		kind:          Kind(e),
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

// New returns the sentinel error for a kind, with the default message.
func New(kind Kind) CodecError {
	return baseError(kind)
}

// NewWithMessage creates a new CodecError from an error kind with a custom
// message appended to the default one.
func NewWithMessage(kind Kind, message string) CodecError {
	return baseError(kind).WithMessage(message)
}

// -----------------------------------------------------------------------------

type customCodecError struct {
	kind          Kind
	message       string
	originalError error
}

// Error implements the `error` object interface. When called, it returns a string
// describing the error.
func (e customCodecError) Error() string {
	return e.message
}

func (e customCodecError) Kind() Kind {
	return e.kind
}

func (e customCodecError) WithMessage(message string) CodecError {
	return customCodecError{
		kind:          e.kind,
		message:       fmt.Sprintf("%s: %s", e.message, message),
		originalError: e,
	}
}

func (e customCodecError) Wrap(err error) CodecError {
	return customCodecError{
		kind:          e.kind,
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

func (e customCodecError) Unwrap() error {
	return e.originalError
}
