//go:build !windows

package dwrite

import (
	"unsafe"

	"github.com/gogpu/dwrite/com"
)

const platformSupported = false

// dwriteCreateFactory reports E_NOTIMPL: DirectWrite is Windows-only.
func dwriteCreateFactory(FactoryType, *com.GUID, *unsafe.Pointer) com.HRESULT {
	return com.E_NOTIMPL
}
