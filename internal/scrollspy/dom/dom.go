//go:build js && wasm

// Package dom binds scrollspy to a browser window.
package dom

import (
	"syscall/js"

	"github.com/alvesoscar517-cloud/portfolio/internal/scrollspy"
)

// Window is the scroll source backed by the global window object.
type Window struct {
	win js.Value
}

// NewWindow returns a Window for the global window object.
func NewWindow() *Window {
	return &Window{win: js.Global()}
}

// ScrollY returns window.scrollY.
func (w *Window) ScrollY() float64 {
	return w.win.Get("scrollY").Float()
}

// OnScroll registers a passive scroll listener so native scrolling is
// never delayed by the handler.
func (w *Window) OnScroll(fn func()) func() {
	cb := js.FuncOf(func(js.Value, []js.Value) any {
		fn()
		return nil
	})
	w.win.Call("addEventListener", "scroll", cb, map[string]any{"passive": true})

	released := false
	return func() {
		if released {
			return
		}
		released = true
		w.win.Call("removeEventListener", "scroll", cb)
		cb.Release()
	}
}

// Frames schedules callbacks with requestAnimationFrame.
type Frames struct {
	win     js.Value
	pending map[scrollspy.FrameToken]js.Func
}

// NewFrames returns a scheduler for the global window object.
func NewFrames() *Frames {
	return &Frames{win: js.Global(), pending: make(map[scrollspy.FrameToken]js.Func)}
}

// RequestFrame schedules fn for the next animation frame. The token is the
// browser's request id.
func (f *Frames) RequestFrame(fn func()) scrollspy.FrameToken {
	var tok scrollspy.FrameToken
	var cb js.Func
	cb = js.FuncOf(func(js.Value, []js.Value) any {
		delete(f.pending, tok)
		cb.Release()
		fn()
		return nil
	})
	tok = scrollspy.FrameToken(f.win.Call("requestAnimationFrame", cb).Int())
	f.pending[tok] = cb
	return tok
}

// CancelFrame cancels a frame that has not run yet. Unknown or already fired
// tokens are ignored.
func (f *Frames) CancelFrame(tok scrollspy.FrameToken) {
	cb, ok := f.pending[tok]
	if !ok {
		return
	}
	delete(f.pending, tok)
	f.win.Call("cancelAnimationFrame", int(tok))
	cb.Release()
}

// Document resolves sections to elements by id.
type Document struct {
	doc js.Value
}

// NewDocument returns a Document for the global document object.
func NewDocument() *Document {
	return &Document{doc: js.Global().Get("document")}
}

// Resolve reports the offsetTop and offsetHeight of the element whose id is
// the section id. ok is false when no such element exists.
func (d *Document) Resolve(id scrollspy.SectionID) (scrollspy.Region, bool) {
	el := d.doc.Call("getElementById", string(id))
	if el.IsNull() || el.IsUndefined() {
		return scrollspy.Region{}, false
	}
	return scrollspy.Region{
		Top:    el.Get("offsetTop").Float(),
		Height: el.Get("offsetHeight").Float(),
	}, true
}
