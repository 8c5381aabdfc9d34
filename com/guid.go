package com

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

// GUID is a 128-bit interface or class identifier.
// Its layout matches the Windows GUID structure.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// ParseGUID parses s in the canonical form
// xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx, with or without braces, or as a
// urn:uuid: URN.
func ParseGUID(s string) (GUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return GUID{}, fmt.Errorf("com: invalid GUID %q: %w", s, err)
	}
	return guidFromUUID(u), nil
}

// MustParseGUID is like ParseGUID but panics if s cannot be parsed.
// It is meant for package-level IID tables.
func MustParseGUID(s string) GUID {
	g, err := ParseGUID(s)
	if err != nil {
		panic(err)
	}
	return g
}

// guidFromUUID converts the big-endian RFC 4122 byte order into the
// field layout used by COM.
func guidFromUUID(u uuid.UUID) GUID {
	g := GUID{
		Data1: binary.BigEndian.Uint32(u[0:4]),
		Data2: binary.BigEndian.Uint16(u[4:6]),
		Data3: binary.BigEndian.Uint16(u[6:8]),
	}
	copy(g.Data4[:], u[8:16])
	return g
}

// IsZero reports whether g is the nil GUID.
func (g GUID) IsZero() bool {
	return g == GUID{}
}

// String returns g in registry format, e.g.
// {00000000-0000-0000-C000-000000000046}.
func (g GUID) String() string {
	return fmt.Sprintf("{%08X-%04X-%04X-%02X%02X-%02X%02X%02X%02X%02X%02X}",
		g.Data1, g.Data2, g.Data3,
		g.Data4[0], g.Data4[1],
		g.Data4[2], g.Data4[3], g.Data4[4], g.Data4[5], g.Data4[6], g.Data4[7])
}
