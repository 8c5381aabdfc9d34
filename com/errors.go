package com

import (
	"errors"
	"fmt"
)

// Error reports a failed COM call.
type Error struct {
	// Op is the operation that failed, e.g. "QueryInterface".
	Op string

	// IID is the interface that was requested, or the zero GUID.
	IID GUID

	// Code is the failure code.
	Code HRESULT
}

func (e *Error) Error() string {
	if e.IID.IsZero() {
		return fmt.Sprintf("com: %s: %s", e.Op, e.Code.describe())
	}
	return fmt.Sprintf("com: %s %s: %s", e.Op, e.IID, e.Code.describe())
}

// Unwrap returns the HRESULT so that errors.Is(err, com.E_NOINTERFACE)
// matches.
func (e *Error) Unwrap() error {
	return e.Code
}

// HRESULTOf extracts the status code carried by err: S_OK for nil, the
// code found in err's chain, or E_FAIL when there is none.
func HRESULTOf(err error) HRESULT {
	if err == nil {
		return S_OK
	}
	var hr HRESULT
	if errors.As(err, &hr) {
		return hr
	}
	return E_FAIL
}
