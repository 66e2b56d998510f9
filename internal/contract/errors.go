package contract

import "errors"

var (
	// ErrMethodNotFound is returned when no ABI method carries the requested name.
	ErrMethodNotFound = errors.New("method not found in ABI")
	// ErrAmbiguousMethod is returned when the requested name is overloaded in the ABI.
	ErrAmbiguousMethod = errors.New("method name is overloaded in ABI")
	// ErrReadOnlyBinding is returned by Write on a binding without a signer.
	ErrReadOnlyBinding = errors.New("binding has no signer")
	// ErrABINotFound is returned when an ABI resource cannot be read.
	ErrABINotFound = errors.New("ABI resource not found")
)
