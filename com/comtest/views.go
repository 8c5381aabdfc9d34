package comtest

import (
	"unsafe"

	"github.com/gogpu/dwrite/com"
)

// Unknown is the IUnknown view of an Object.
type Unknown struct {
	obj *Object
}

func (u *Unknown) AddRef() uint32  { return u.obj.addRef() }
func (u *Unknown) Release() uint32 { return u.obj.release() }

func (u *Unknown) QueryInterface(iid *com.GUID, out *unsafe.Pointer) com.HRESULT {
	return u.obj.queryInterface(iid, out)
}

func (*Unknown) IID() *com.GUID { return &com.IID_IUnknown }

// Object returns the object u is a view of.
func (u *Unknown) Object() *Object { return u.obj }

// Widget is the IWidget view of an Object.
type Widget struct {
	obj *Object
}

func (w *Widget) AddRef() uint32  { return w.obj.addRef() }
func (w *Widget) Release() uint32 { return w.obj.release() }

func (w *Widget) QueryInterface(iid *com.GUID, out *unsafe.Pointer) com.HRESULT {
	return w.obj.queryInterface(iid, out)
}

func (*Widget) IID() *com.GUID { return &IID_IWidget }

// Object returns the object w is a view of.
func (w *Widget) Object() *Object { return w.obj }

// Gadget is the IGadget view of an Object.
type Gadget struct {
	obj *Object
}

func (g *Gadget) AddRef() uint32  { return g.obj.addRef() }
func (g *Gadget) Release() uint32 { return g.obj.release() }

func (g *Gadget) QueryInterface(iid *com.GUID, out *unsafe.Pointer) com.HRESULT {
	return g.obj.queryInterface(iid, out)
}

func (*Gadget) IID() *com.GUID { return &IID_IGadget }

// Object returns the object g is a view of.
func (g *Gadget) Object() *Object { return g.obj }
