package menu

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// DefaultTogglePath is the endpoint the menu button and backdrop post to.
const DefaultTogglePath = "/menu/toggle"

// Component renders the backdrop, the toggle button and the navigation list.
// Clicking the button or the backdrop posts to togglePath; an empty
// togglePath uses DefaultTogglePath.
func (m *Menu) Component(togglePath string) templ.Component {
	if togglePath == "" {
		togglePath = DefaultTogglePath
	}
	open := m.IsOpen()
	entries := m.Entries()

	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		onClick := ` data-on:click="` + templ.EscapeString("@post('"+togglePath+"')") + `"`

		b.WriteString(`<div id="menu">`)
		b.WriteString(`<div class="` + withOpen("menu-backdrop", open) + `"` + onClick + `></div>`)
		b.WriteString(`<button class="` + withOpen("menu-button", open) + `"` + onClick + `>`)
		b.WriteString(`<div class="bar1"></div><div class="bar2"></div><div class="bar3"></div></button>`)
		b.WriteString(`<nav class="` + withOpen("menu", open) + `"><ul>`)
		for _, e := range entries {
			writeEntry(&b, e)
		}
		b.WriteString(`</ul></nav></div>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeEntry(b *strings.Builder, e Entry) {
	if !e.IsSection() {
		b.WriteString("<li>")
		writeLink(b, e.Link())
		b.WriteString("</li>")
		return
	}

	icon := "▶"
	if e.Expanded() {
		icon = "▼"
	}
	b.WriteString(`<li class="section"><div class="section-header">`)
	b.WriteString(templ.EscapeString(e.Name()))
	b.WriteString(`<span class="section-icon">` + icon + `</span></div>`)
	if e.Expanded() {
		b.WriteString(`<ul class="section-items">`)
		for _, l := range e.Links() {
			b.WriteString("<li>")
			writeLink(b, l)
			b.WriteString("</li>")
		}
		b.WriteString(`</ul>`)
	}
	b.WriteString(`</li>`)
}

func writeLink(b *strings.Builder, l Link) {
	b.WriteString(`<a href="`)
	b.WriteString(templ.EscapeString(l.URL))
	b.WriteString(`">`)
	b.WriteString(templ.EscapeString(l.Text))
	b.WriteString(`</a>`)
}

func withOpen(class string, open bool) string {
	if open {
		return class + " open"
	}
	return class
}
