package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	next      key.Binding
	prev      key.Binding
	submit    key.Binding
	switchTab key.Binding
	copy      key.Binding
	about     key.Binding
	esc       key.Binding
	quit      key.Binding
}

var keys = keyMap{
	next:      key.NewBinding(key.WithKeys("tab")),
	prev:      key.NewBinding(key.WithKeys("shift+tab")),
	submit:    key.NewBinding(key.WithKeys("ctrl+s")),
	switchTab: key.NewBinding(key.WithKeys("ctrl+t")),
	copy:      key.NewBinding(key.WithKeys("ctrl+y")),
	about:     key.NewBinding(key.WithKeys("f1")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
}
