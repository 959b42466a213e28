package alphabet

import (
	"errors"
	"fmt"
)

// ErrUnknownSymbol indicates an input contains a symbol not in the alphabet.
var ErrUnknownSymbol = errors.New("unknown symbol")

// AlphabetError wraps an alphabet-lookup failure with context.
type AlphabetError struct {
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AlphabetError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("alphabet: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("alphabet: %s", e.Message)
}

// Unwrap returns the underlying sentinel error, if any.
func (e *AlphabetError) Unwrap() error {
	return e.Err
}
