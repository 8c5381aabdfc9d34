//go:build windows

package com

import (
	"syscall"
	"unsafe"
)

// QueryInterface asks the object for the interface identified by iid.
func (u *IUnknown) QueryInterface(iid *GUID, out *unsafe.Pointer) HRESULT {
	r, _, _ := syscall.SyscallN(
		u.Vtbl.QueryInterface,
		uintptr(unsafe.Pointer(u)),
		uintptr(unsafe.Pointer(iid)),
		uintptr(unsafe.Pointer(out)))
	return HRESULT(uint32(r))
}

// AddRef increments the object's reference count.
func (u *IUnknown) AddRef() uint32 {
	r, _, _ := syscall.SyscallN(u.Vtbl.AddRef, uintptr(unsafe.Pointer(u)))
	return uint32(r)
}

// Release decrements the object's reference count.
func (u *IUnknown) Release() uint32 {
	r, _, _ := syscall.SyscallN(u.Vtbl.Release, uintptr(unsafe.Pointer(u)))
	return uint32(r)
}
