package model

import "time"

// BaseLink carries the fields shared by download links and upload receivers.
// The server replaces the whole object on every mutating call; the client
// always adopts the returned value wholesale.
type BaseLink struct {
	ID       string
	Name     string
	Path     string
	Counter  int64
	URL      string
	ShortURL string
	// customizable suffix of the short URL
	Hash            string
	Host            string
	HasPassword     bool
	Password        string // plaintext, only present while password protection is on
	ValidFrom       *time.Time
	ValidTo         *time.Time
}

// Link is a shareable download URL attached to a node.
type Link struct {
	BaseLink
}

// Receiver is a shareable upload URL attached to a folder.
type Receiver struct {
	BaseLink
	AlertEnabled bool
}

// HasValidity reports whether a validity window is set on either end.
func (l BaseLink) HasValidity() bool {
	return l.ValidFrom != nil || l.ValidTo != nil
}
