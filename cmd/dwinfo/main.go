// Command dwinfo creates a DirectWrite factory and reports which
// interfaces it exposes.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/gogpu/dwrite"
	"github.com/gogpu/dwrite/com"
)

func main() {
	var (
		typeName = pflag.StringP("type", "t", "shared", "factory type: shared or isolated")
		verbose  = pflag.BoolP("verbose", "v", false, "log COM diagnostics to stderr")
	)
	pflag.Parse()

	if *verbose {
		dwrite.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	typ, err := dwrite.ParseFactoryType(*typeName)
	if err != nil {
		log.Fatal(err)
	}

	f, err := dwrite.NewFactory(dwrite.WithFactoryType(typ))
	if err != nil {
		log.Fatalf("Failed to create factory: %v", err)
	}
	defer f.Close()

	fmt.Printf("factory: %s %s\n", f.Type(), f.Ptr())
	report(os.Stdout, f.Ptr())
}

// report prints the outcome of casting the factory to each known interface.
func report(w io.Writer, p *dwrite.FactoryPtr) {
	probe(w, "IUnknown", com.IID_IUnknown, func() error {
		c, err := com.Cast[com.IUnknown](p)
		return released(c, err)
	})
	probe(w, "IDWriteFactory", dwrite.IID_IDWriteFactory, func() error {
		c, err := com.Cast[dwrite.IDWriteFactory](p)
		return released(c, err)
	})
	probe(w, "IDWriteTextFormat", dwrite.IID_IDWriteTextFormat, func() error {
		c, err := com.Cast[dwrite.IDWriteTextFormat](p)
		return released(c, err)
	})
	probe(w, "IDWriteTextLayout", dwrite.IID_IDWriteTextLayout, func() error {
		c, err := com.Cast[dwrite.IDWriteTextLayout](p)
		return released(c, err)
	})
}

// releaser is satisfied by every *com.Ptr instantiation.
type releaser interface {
	Release()
}

// released releases a successful cast result and passes the error through.
func released[P releaser](p P, err error) error {
	if err != nil {
		return err
	}
	p.Release()
	return nil
}

func probe(w io.Writer, name string, iid com.GUID, cast func() error) {
	err := cast()
	switch {
	case err == nil:
		fmt.Fprintf(w, "  %-18s %s  supported\n", name, iid)
	case errors.Is(err, com.E_NOINTERFACE):
		fmt.Fprintf(w, "  %-18s %s  not supported\n", name, iid)
	default:
		fmt.Fprintf(w, "  %-18s %s  error: %v\n", name, iid, com.HRESULTOf(err))
	}
}
