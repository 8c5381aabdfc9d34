package com

import "fmt"

// HRESULT is a COM status code. Negative values report failure.
// HRESULT implements error so that failure codes can be matched with
// errors.Is through wrapping errors such as *Error.
type HRESULT int32

// Common status codes. Failure codes are written as their int32 value;
// the comment carries the familiar unsigned form.
const (
	S_OK    HRESULT = 0
	S_FALSE HRESULT = 1

	E_NOTIMPL      HRESULT = -0x7FFFBFFF // 0x80004001
	E_NOINTERFACE  HRESULT = -0x7FFFBFFE // 0x80004002
	E_POINTER      HRESULT = -0x7FFFBFFD // 0x80004003
	E_ABORT        HRESULT = -0x7FFFBFFC // 0x80004004
	E_FAIL         HRESULT = -0x7FFFBFFB // 0x80004005
	E_UNEXPECTED   HRESULT = -0x7FFF0001 // 0x8000FFFF
	E_ACCESSDENIED HRESULT = -0x7FF8FFFB // 0x80070005
	E_HANDLE       HRESULT = -0x7FF8FFFA // 0x80070006
	E_OUTOFMEMORY  HRESULT = -0x7FF8FFF2 // 0x8007000E
	E_INVALIDARG   HRESULT = -0x7FF8FFA9 // 0x80070057
)

// ErrNullPointer is the code reported when an operation needs an object
// but the handle is empty.
const ErrNullPointer = E_POINTER

var hresultNames = map[HRESULT]string{
	S_OK:           "S_OK",
	S_FALSE:        "S_FALSE",
	E_NOTIMPL:      "E_NOTIMPL",
	E_NOINTERFACE:  "E_NOINTERFACE",
	E_POINTER:      "E_POINTER",
	E_ABORT:        "E_ABORT",
	E_FAIL:         "E_FAIL",
	E_UNEXPECTED:   "E_UNEXPECTED",
	E_ACCESSDENIED: "E_ACCESSDENIED",
	E_HANDLE:       "E_HANDLE",
	E_OUTOFMEMORY:  "E_OUTOFMEMORY",
	E_INVALIDARG:   "E_INVALIDARG",
}

// Succeeded reports whether hr is a success code (hr >= 0).
func (hr HRESULT) Succeeded() bool { return hr >= 0 }

// Failed reports whether hr is a failure code (hr < 0).
func (hr HRESULT) Failed() bool { return hr < 0 }

// Name returns the symbolic name of hr, or the empty string for codes
// this package does not know.
func (hr HRESULT) Name() string {
	return hresultNames[hr]
}

// Error implements the error interface.
func (hr HRESULT) Error() string {
	return "com: " + hr.describe()
}

func (hr HRESULT) describe() string {
	return fmt.Sprintf("%s (0x%08X)", hr.Message(), uint32(hr))
}

// staticMessage is the platform-independent description of hr.
func (hr HRESULT) staticMessage() string {
	if name := hr.Name(); name != "" {
		return name
	}
	if hr.Failed() {
		return "HRESULT failure"
	}
	return "HRESULT success"
}
