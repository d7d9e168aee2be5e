// Package menu is a navigation menu built on the notice engine.
//
// Entries are links or named sections of links. They are added with Add and
// removed with Remove, which apply New and Close actions to a notice.Store;
// entries never expire, so no scheduler or timer is involved. The menu also
// carries an open/closed flag toggled from the UI.
//
//	m := menu.New(menu.WithEntries(
//	    menu.Item("Home", "/"),
//	    menu.Section("Docs", true, menu.Link{Text: "API", URL: "/docs/api"}),
//	))
//	m.Toggle()
//	component := m.Component(menu.DefaultTogglePath)
package menu
