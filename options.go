package dwrite

import "fmt"

// FactoryType selects how a factory shares state with other factories
// in the process. The values match DWRITE_FACTORY_TYPE.
type FactoryType uint32

const (
	// FactoryShared shares cached font data with other shared factories.
	FactoryShared FactoryType = 0

	// FactoryIsolated keeps all state private to the factory.
	FactoryIsolated FactoryType = 1
)

// String returns "shared" or "isolated".
func (t FactoryType) String() string {
	switch t {
	case FactoryShared:
		return "shared"
	case FactoryIsolated:
		return "isolated"
	default:
		return fmt.Sprintf("FactoryType(%d)", uint32(t))
	}
}

func (t FactoryType) valid() bool {
	return t == FactoryShared || t == FactoryIsolated
}

// ParseFactoryType parses the result of FactoryType.String.
func ParseFactoryType(s string) (FactoryType, error) {
	switch s {
	case "shared":
		return FactoryShared, nil
	case "isolated":
		return FactoryIsolated, nil
	default:
		return 0, &FactoryTypeError{Name: s}
	}
}

// FactoryOption configures NewFactory.
//
// Example:
//
//	f, err := dwrite.NewFactory(dwrite.WithFactoryType(dwrite.FactoryIsolated))
type FactoryOption func(*factoryOptions)

// factoryOptions holds optional configuration for factory creation.
type factoryOptions struct {
	typ FactoryType
}

// defaultFactoryOptions returns the default factory options.
func defaultFactoryOptions() factoryOptions {
	return factoryOptions{
		typ: FactoryShared,
	}
}

// WithFactoryType selects the factory type. The default is FactoryShared.
func WithFactoryType(t FactoryType) FactoryOption {
	return func(o *factoryOptions) {
		o.typ = t
	}
}
