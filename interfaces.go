package dwrite

import "github.com/gogpu/dwrite/com"

// Interface identifiers.
var (
	IID_IDWriteFactory    = com.MustParseGUID("b859ee5a-d838-4b5b-a2e8-1adc7d93db48")
	IID_IDWriteTextFormat = com.MustParseGUID("9c906818-31d7-4fd3-a151-7c5e225db55a")
	IID_IDWriteTextLayout = com.MustParseGUID("53737037-6d14-410b-9bfe-0b182bb70961")
)

// IDWriteFactory is the root DirectWrite object.
type IDWriteFactory struct {
	com.IUnknown
}

// IID returns IID_IDWriteFactory.
func (*IDWriteFactory) IID() *com.GUID { return &IID_IDWriteFactory }

// IDWriteTextFormat describes the format of text.
type IDWriteTextFormat struct {
	com.IUnknown
}

// IID returns IID_IDWriteTextFormat.
func (*IDWriteTextFormat) IID() *com.GUID { return &IID_IDWriteTextFormat }

// IDWriteTextLayout is a formatted block of text. It derives from
// IDWriteTextFormat, and a layout can be cast to its format interface.
type IDWriteTextLayout struct {
	IDWriteTextFormat
}

// IID returns IID_IDWriteTextLayout.
func (*IDWriteTextLayout) IID() *com.GUID { return &IID_IDWriteTextLayout }

// Handle types for the interfaces above.
type (
	FactoryPtr    = com.Ptr[IDWriteFactory, *IDWriteFactory]
	TextFormatPtr = com.Ptr[IDWriteTextFormat, *IDWriteTextFormat]
	TextLayoutPtr = com.Ptr[IDWriteTextLayout, *IDWriteTextLayout]
)
