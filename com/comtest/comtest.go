// Package comtest provides in-process COM objects with observable
// reference counts for testing code that holds com.Ptr handles.
//
// An Object starts with one reference, like an object returned by a
// creation call. Its views implement the com capability set directly in
// Go, so tests run on every platform:
//
//	obj := comtest.NewObject(comtest.WithInterfaces(comtest.IID_IWidget))
//	p := com.UnsafeAttach(obj.Unknown())
//	w, err := com.Cast[comtest.Widget](p)
//	...
//	w.Release()
//	p.Release()
//	if err := obj.Verify(); err != nil {
//	    t.Fatal(err)
//	}
package comtest

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/hashicorp/go-multierror"

	"github.com/gogpu/dwrite/com"
)

// Interface identifiers of the test views.
var (
	IID_IWidget = com.MustParseGUID("6f1c3a52-8a0e-4d3b-9c61-2b7f1e0d4a10")
	IID_IGadget = com.MustParseGUID("0b9de4f7-51c2-4f8a-a3e6-7d2c9f4b1e83")
)

// Object is a reference-counted object with per-interface views.
// All counters are safe for concurrent use.
type Object struct {
	count        atomic.Int64
	addRefs      atomic.Int64
	releases     atomic.Int64
	queries      atomic.Int64
	overReleases atomic.Int64
	freed        atomic.Bool

	mu          sync.RWMutex
	queryResult com.HRESULT
	nilOnQuery  bool
	supported   map[com.GUID]bool

	unknown Unknown
	widget  Widget
	gadget  Gadget
}

// Option configures an Object.
type Option func(*Object)

// WithInterfaces makes QueryInterface succeed for the given IIDs in
// addition to IID_IUnknown. Only IID_IWidget and IID_IGadget have views.
func WithInterfaces(iids ...com.GUID) Option {
	return func(o *Object) {
		for _, iid := range iids {
			o.supported[iid] = true
		}
	}
}

// WithInitialCount sets the reference count the object starts with.
func WithInitialCount(n int) Option {
	return func(o *Object) {
		o.count.Store(int64(n))
	}
}

// WithQueryResult makes every QueryInterface call fail with hr.
func WithQueryResult(hr com.HRESULT) Option {
	return func(o *Object) {
		o.queryResult = hr
	}
}

// WithNilQueryResult makes QueryInterface report success without
// writing a pointer, a contract violation callers must survive.
func WithNilQueryResult() Option {
	return func(o *Object) {
		o.nilOnQuery = true
	}
}

// NewObject returns an object holding one reference.
func NewObject(opts ...Option) *Object {
	o := &Object{
		supported: map[com.GUID]bool{com.IID_IUnknown: true},
	}
	o.count.Store(1)
	o.unknown.obj = o
	o.widget.obj = o
	o.gadget.obj = o
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// SetQueryResult changes the result of later QueryInterface calls.
// S_OK restores normal behavior.
func (o *Object) SetQueryResult(hr com.HRESULT) {
	o.mu.Lock()
	o.queryResult = hr
	o.mu.Unlock()
}

// Unknown returns the IUnknown view. It does not add a reference.
func (o *Object) Unknown() *Unknown { return &o.unknown }

// Widget returns the IWidget view. It does not add a reference.
func (o *Object) Widget() *Widget { return &o.widget }

// Gadget returns the IGadget view. It does not add a reference.
func (o *Object) Gadget() *Gadget { return &o.gadget }

// Count returns the current reference count.
func (o *Object) Count() int64 { return o.count.Load() }

// AddRefs returns the number of AddRef calls, including those made by a
// successful QueryInterface.
func (o *Object) AddRefs() int64 { return o.addRefs.Load() }

// Releases returns the number of Release calls.
func (o *Object) Releases() int64 { return o.releases.Load() }

// Queries returns the number of QueryInterface calls.
func (o *Object) Queries() int64 { return o.queries.Load() }

// Freed reports whether the count has reached zero.
func (o *Object) Freed() bool { return o.freed.Load() }

// Verify reports every balance violation observed: releases past zero
// and references still outstanding.
func (o *Object) Verify() error {
	var result *multierror.Error
	if n := o.overReleases.Load(); n > 0 {
		result = multierror.Append(result, fmt.Errorf("comtest: %d release(s) past zero", n))
	}
	if n := o.count.Load(); n > 0 {
		result = multierror.Append(result, fmt.Errorf("comtest: %d reference(s) outstanding", n))
	}
	return result.ErrorOrNil()
}

func (o *Object) addRef() uint32 {
	o.addRefs.Add(1)
	return uint32(o.count.Add(1))
}

func (o *Object) release() uint32 {
	o.releases.Add(1)
	n := o.count.Add(-1)
	switch {
	case n == 0:
		o.freed.Store(true)
	case n < 0:
		o.overReleases.Add(1)
		o.count.Add(1)
		return 0
	}
	return uint32(n)
}

func (o *Object) queryInterface(iid *com.GUID, out *unsafe.Pointer) com.HRESULT {
	o.queries.Add(1)
	*out = nil

	o.mu.RLock()
	hr, nilOnQuery, ok := o.queryResult, o.nilOnQuery, o.supported[*iid]
	o.mu.RUnlock()

	if hr.Failed() {
		return hr
	}
	if nilOnQuery {
		return com.S_OK
	}
	if !ok {
		return com.E_NOINTERFACE
	}

	var view unsafe.Pointer
	switch *iid {
	case com.IID_IUnknown:
		view = unsafe.Pointer(&o.unknown)
	case IID_IWidget:
		view = unsafe.Pointer(&o.widget)
	case IID_IGadget:
		view = unsafe.Pointer(&o.gadget)
	default:
		return com.E_NOINTERFACE
	}
	o.addRef()
	*out = view
	return com.S_OK
}
