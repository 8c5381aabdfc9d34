// Package com provides reference-counted handles over Component Object Model
// objects.
//
// # Overview
//
// COM objects live outside the Go heap. Their lifetime is governed by an
// explicit reference count that every holder must increment (AddRef) and
// decrement (Release) exactly once per reference it owns. Ptr confines that
// protocol to one place: a Ptr owns at most one reference and gives it back
// exactly once, no matter which path the caller takes out of a function.
//
//	factory, err := com.Create[dwrite.IDWriteFactory]("DWriteCreateFactory", create)
//	if err != nil {
//	    return err
//	}
//	defer factory.Release()
//
//	unk, err := com.Cast[com.IUnknown](factory)
//	if err != nil {
//	    return err
//	}
//	defer unk.Release()
//
// # Interfaces
//
// A Go type can be held by Ptr when its pointer type implements the
// capability set described by [Unknown]: AddRef, Release and QueryInterface.
// Casting additionally needs the identity described by [Interface], an IID
// method returning the interface's GUID. IID is called on a nil receiver and
// must not look at it.
//
// Interface types usually mirror the COM ABI by embedding [IUnknown], which
// contributes the vtable pointer and the three IUnknown methods:
//
//	type IDWriteFactory struct {
//	    com.IUnknown
//	}
//
//	func (*IDWriteFactory) IID() *com.GUID { return &IID_IDWriteFactory }
//
// # Ownership
//
// A Ptr has two states, empty and owning:
//
//   - New and the zero value are empty.
//   - Create, Cast, Clone, UnsafeAttach and UnsafeAdopt produce owning handles.
//   - Release and UnsafeDetach return a handle to empty. Release is idempotent.
//   - Clone and Cast never change the source handle.
//
// Release runs on every exit path when deferred, panics included.
// Handles are used by pointer. Aliasing a *Ptr shares its single reference;
// Clone produces a second, independent one. Copying a Ptr by value panics
// on the copy's next method call.
//
// # Unsafe Subset
//
// UnsafeAttach, UnsafeAdopt, UnsafeDetach, UnsafeRaw, UnsafeSlot and
// UnsafeVoidSlot bypass the handle's bookkeeping and live in unsafe.go.
// Every call site of these must be able to say who owns the raw reference
// before and after the call.
//
// # Errors
//
// HRESULT is an error. Fallible operations return *Error, which carries the
// operation, the requested IID and the HRESULT, and unwraps to the HRESULT:
//
//	_, err := com.Cast[dwrite.IDWriteTextLayout](unk)
//	if errors.Is(err, com.E_NOINTERFACE) {
//	    // object does not implement the interface
//	}
//
// Casting from an empty handle fails with E_POINTER and performs no foreign
// call. Misuse of preconditions (Get on an empty handle, UnsafeSlot on an
// owning handle) panics.
//
// # Thread Safety
//
// A Ptr is not synchronized. Use one handle per goroutine and hand over
// clones. The reference count itself belongs to the foreign object; sharing
// references across goroutines is only as safe as that object's threading
// model allows.
package com
