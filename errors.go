package dwrite

import (
	"errors"
	"fmt"
)

// ErrInvalidFactoryType is returned by NewFactory for a FactoryType other
// than FactoryShared or FactoryIsolated.
var ErrInvalidFactoryType = errors.New("dwrite: invalid factory type")

// FactoryTypeError is returned by ParseFactoryType for an unknown name.
type FactoryTypeError struct {
	Name string
}

func (e *FactoryTypeError) Error() string {
	return fmt.Sprintf("dwrite: unknown factory type %q", e.Name)
}

// Unwrap returns ErrInvalidFactoryType.
func (e *FactoryTypeError) Unwrap() error {
	return ErrInvalidFactoryType
}
