//go:build windows

package com

import (
	"strings"

	"golang.org/x/sys/windows"
)

// Message returns the system description of hr, falling back to its
// symbolic name when the system has no message for it.
func (hr HRESULT) Message() string {
	buf := make([]uint16, 512)
	n, err := windows.FormatMessage(
		windows.FORMAT_MESSAGE_FROM_SYSTEM|windows.FORMAT_MESSAGE_IGNORE_INSERTS,
		0, uint32(hr), 0, buf, nil)
	if err != nil || n == 0 {
		return hr.staticMessage()
	}
	msg := strings.TrimRight(windows.UTF16ToString(buf[:n]), "\r\n. ")
	if name := hr.Name(); name != "" {
		return name + ": " + msg
	}
	return msg
}
