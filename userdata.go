package glfw

import (
	"reflect"

	"github.com/gogpu/glfw/internal/handle"
)

// attachments holds one record per window that has user data. The native
// user pointer stores the record's id, never a Go pointer.
var attachments handle.Table

type attachment struct {
	typ reflect.Type
	ref any
}

// SetUserData attaches v to w, replacing and releasing any previous
// attachment of any type. The value is referenced, not copied. A nil v
// clears the slot.
//
// The slot belongs to the native window: every wrapper of the same window,
// owned or borrowed, sees the same attachment.
func SetUserData[T any](w *Window, v *T) {
	w.ClearUserData()
	if v == nil {
		return
	}
	id := attachments.Register(attachment{typ: reflect.TypeFor[T](), ref: v})
	w.ctx.lib.SetWindowUserPointer(w.raw, uintptr(id))
	Logger().Debug("glfw: user data attached", "window", w.raw, "type", reflect.TypeFor[T]())
}

// UserData returns the value attached to w if it was attached as a *T.
// A different type or an empty slot reports false.
func UserData[T any](w *Window) (*T, bool) {
	id := handle.ID(w.ctx.lib.GetWindowUserPointer(w.raw))
	v, ok := attachments.Lookup(id)
	if !ok {
		return nil, false
	}
	a := v.(attachment)
	if a.typ != reflect.TypeFor[T]() {
		return nil, false
	}
	p, ok := a.ref.(*T)
	return p, ok
}

// ClearUserData releases the attachment of w, if any.
func (w *Window) ClearUserData() {
	id := handle.ID(w.ctx.lib.GetWindowUserPointer(w.raw))
	if id == 0 {
		return
	}
	attachments.Release(id)
	w.ctx.lib.SetWindowUserPointer(w.raw, 0)
}
