//go:build !windows

package com

// Message returns the symbolic name of hr. Only Windows has system
// messages for HRESULTs.
func (hr HRESULT) Message() string {
	return hr.staticMessage()
}
