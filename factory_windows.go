//go:build windows

package dwrite

import (
	"log/slog"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/gogpu/dwrite/com"
)

const platformSupported = true

var (
	moddwrite = windows.NewLazySystemDLL("dwrite.dll")

	procDWriteCreateFactory = moddwrite.NewProc("DWriteCreateFactory")
)

// dwriteCreateFactory calls DWriteCreateFactory. A missing DLL or entry
// point reports E_NOTIMPL.
func dwriteCreateFactory(typ FactoryType, iid *com.GUID, out *unsafe.Pointer) com.HRESULT {
	if err := procDWriteCreateFactory.Find(); err != nil {
		Logger().Debug("dwrite: DWriteCreateFactory unavailable", slog.String("err", err.Error()))
		return com.E_NOTIMPL
	}
	r, _, _ := syscall.SyscallN(
		procDWriteCreateFactory.Addr(),
		uintptr(typ),
		uintptr(unsafe.Pointer(iid)),
		uintptr(unsafe.Pointer(out)))
	return com.HRESULT(uint32(r))
}
