//go:build js && wasm

// Command spywasm runs the page's client-side behavior: nav highlighting
// from the scroll spy, header visibility and lightbox keyboard navigation.
package main

import (
	"strconv"
	"syscall/js"

	"github.com/alvesoscar517-cloud/portfolio/internal/gallery"
	"github.com/alvesoscar517-cloud/portfolio/internal/scrollspy"
	"github.com/alvesoscar517-cloud/portfolio/internal/scrollspy/dom"
	"github.com/alvesoscar517-cloud/portfolio/internal/visibility"
)

func main() {
	doc := js.Global().Get("document")

	header := visibility.New()
	header.Subscribe(func(visible bool) {
		el := doc.Call("getElementById", "site-header")
		if el.IsNull() {
			return
		}
		el.Set("hidden", !visible)
	})
	exportHeaderHandle(header)

	links := navLinks(doc)
	cfg := scrollspy.DefaultConfig(sectionIDs(links)...)
	cfg.Offset = pageOffset(doc)
	cfg.OnChange = func(active scrollspy.SectionID) {
		highlight(links, active)
	}
	scrollspy.Subscribe(cfg, dom.NewWindow(), dom.NewDocument(), dom.NewFrames())

	doc.Call("addEventListener", "keydown", js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		handleLightboxKey(doc, args[0].Get("key").String())
		return nil
	}))

	// Callbacks stay registered for the life of the page.
	select {}
}

// exportHeaderHandle gives inline page handlers a Handle, not the controller.
func exportHeaderHandle(h visibility.Handle) {
	js.Global().Set("portfolio", js.ValueOf(map[string]any{
		"hideHeader": js.FuncOf(func(js.Value, []js.Value) any { h.Hide(); return nil }),
		"showHeader": js.FuncOf(func(js.Value, []js.Value) any { h.Show(); return nil }),
	}))
}

func navLinks(doc js.Value) []js.Value {
	nodes := doc.Call("querySelectorAll", "[data-spy-target]")
	links := make([]js.Value, nodes.Length())
	for i := range links {
		links[i] = nodes.Index(i)
	}
	return links
}

func sectionIDs(links []js.Value) []scrollspy.SectionID {
	ids := make([]scrollspy.SectionID, 0, len(links))
	for _, el := range links {
		ids = append(ids, scrollspy.SectionID(el.Get("dataset").Get("spyTarget").String()))
	}
	return ids
}

func pageOffset(doc js.Value) float64 {
	raw := doc.Get("body").Get("dataset").Get("spyOffset")
	if raw.IsUndefined() {
		return scrollspy.DefaultOffset
	}
	return scrollspy.ParseOffset(raw.String())
}

func highlight(links []js.Value, active scrollspy.SectionID) {
	for _, el := range links {
		id := scrollspy.SectionID(el.Get("dataset").Get("spyTarget").String())
		on := id == active && active != scrollspy.None
		el.Get("classList").Call("toggle", "active", on)
		if on {
			el.Call("setAttribute", "aria-current", "true")
		} else {
			el.Call("removeAttribute", "aria-current")
		}
	}
}

// handleLightboxKey drives the server-rendered lightbox through its buttons.
func handleLightboxKey(doc js.Value, key string) {
	view := doc.Call("getElementById", "lightbox-view")
	if view.IsNull() {
		return
	}
	total, _ := strconv.Atoi(view.Get("dataset").Get("total").String())
	index, _ := strconv.Atoi(view.Get("dataset").Get("index").String())
	lb := gallery.New(total)
	lb.Open(index)

	action := gallery.KeyAction(key)
	lb.Apply(action)

	var selector string
	switch {
	case action == gallery.ActionClose:
		selector = "[data-lightbox-close]"
	case !lb.IsOpen() || lb.Index() == index:
		return
	case action == gallery.ActionPrev:
		selector = "[data-lightbox-prev]"
	case action == gallery.ActionNext:
		selector = "[data-lightbox-next]"
	default:
		return
	}
	if btn := view.Call("querySelector", selector); !btn.IsNull() {
		btn.Call("click")
	}
}
