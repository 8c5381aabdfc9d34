// Package dwrite bootstraps DirectWrite, the Windows text layout and
// rendering library, on top of the reference-counted handles in package com.
//
// # Overview
//
// Everything in DirectWrite hangs off one root object, IDWriteFactory.
// NewFactory creates it and binds it to a com.Ptr, so the factory's
// reference is given back exactly once when the Factory is closed:
//
//	f, err := dwrite.NewFactory()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
// Other interfaces of the same object are reached with com.Cast:
//
//	unk, err := com.Cast[com.IUnknown](f.Ptr())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer unk.Release()
//
// # Factory Types
//
// A shared factory (the default) lets DirectWrite reuse font cache state
// across the process. An isolated factory keeps its own state:
//
//	f, err := dwrite.NewFactory(dwrite.WithFactoryType(dwrite.FactoryIsolated))
//
// # Platforms
//
// DirectWrite only exists on Windows. Elsewhere NewFactory fails with an
// error matching both errors.ErrUnsupported and com.E_NOTIMPL.
//
// # Logging
//
// dwrite is silent by default. SetLogger enables logging for dwrite and com:
//
//	dwrite.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
package dwrite
