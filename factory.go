package dwrite

import (
	"errors"
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/gogpu/dwrite/com"
)

// createFactory is the DWriteCreateFactory entry point. Tests replace it.
var createFactory = dwriteCreateFactory

// Factory owns one reference to an IDWriteFactory.
//
// A Factory is not synchronized; give each goroutine its own Clone.
type Factory struct {
	ptr *FactoryPtr
	typ FactoryType
}

// NewFactory creates a DirectWrite factory.
//
// DWriteCreateFactory returns an owned reference, which the Factory takes
// over without an extra AddRef. If creation fails the returned error is a
// *com.Error carrying DirectWrite's HRESULT.
func NewFactory(opts ...FactoryOption) (*Factory, error) {
	o := defaultFactoryOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.typ.valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFactoryType, o.typ)
	}

	ptr, err := com.Create[IDWriteFactory]("DWriteCreateFactory", func(out *unsafe.Pointer) com.HRESULT {
		return createFactory(o.typ, &IID_IDWriteFactory, out)
	})
	if err != nil {
		if !platformSupported && errors.Is(err, com.E_NOTIMPL) {
			return nil, fmt.Errorf("dwrite: %w: %w", errors.ErrUnsupported, err)
		}
		return nil, err
	}

	Logger().Info("dwrite: factory created", slog.String("type", o.typ.String()))
	return &Factory{ptr: ptr, typ: o.typ}, nil
}

// Ptr returns the factory's handle. The handle is borrowed: do not
// release it, Clone it to keep a reference beyond the Factory's lifetime.
func (f *Factory) Ptr() *FactoryPtr {
	return f.ptr
}

// Type returns the type the factory was created with.
func (f *Factory) Type() FactoryType {
	return f.typ
}

// Clone returns a Factory holding its own reference to the same object.
// Cloning a nil Factory returns nil.
func (f *Factory) Clone() *Factory {
	if f == nil {
		return nil
	}
	return &Factory{ptr: f.ptr.Clone(), typ: f.typ}
}

// Close releases the factory's reference. Close is idempotent.
func (f *Factory) Close() {
	if f == nil || f.ptr.IsNull() {
		return
	}
	f.ptr.Release()
	Logger().Info("dwrite: factory closed", slog.String("type", f.typ.String()))
}
