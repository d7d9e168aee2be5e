package menu

import (
	"slices"
	"time"
)

// Link is a single navigation target.
type Link struct {
	Text string
	URL  string
}

// Entry is a menu row: either a link or a named section of links.
// Entries satisfy notice.Record but never expire; ticks, pauses and resumes
// leave them untouched.
type Entry struct {
	id       string
	addedAt  time.Time
	link     Link
	section  string
	links    []Link
	expanded bool
}

// Item creates a link entry.
func Item(text, url string) Entry {
	return Entry{link: Link{Text: text, URL: url}}
}

// Section creates a section entry. Collapsed sections render only their header.
func Section(name string, expanded bool, links ...Link) Entry {
	return Entry{section: name, expanded: expanded, links: slices.Clone(links)}
}

func (e Entry) ID() string { return e.id }

func (e Entry) Alive() bool { return true }

func (e Entry) Paused() bool { return false }

func (e Entry) Spawn(id string, at time.Time, _ time.Duration) Entry {
	e.id = id
	e.addedAt = at
	e.links = slices.Clone(e.links)
	return e
}

func (e Entry) Tick(time.Duration) Entry { return e }

func (e Entry) Pause() Entry { return e }

func (e Entry) Resume() Entry { return e }

// IsSection reports whether the entry groups several links.
func (e Entry) IsSection() bool { return e.section != "" }

func (e Entry) Link() Link { return e.link }

func (e Entry) Name() string { return e.section }

func (e Entry) Links() []Link { return slices.Clone(e.links) }

func (e Entry) Expanded() bool { return e.expanded }

func (e Entry) AddedAt() time.Time { return e.addedAt }
