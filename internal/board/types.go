// Package board defines the core types and interfaces for the notice-board
// scraping engine: the records parsers produce, the parser contract every
// source implements, and the registry of scrape targets.
package board

import (
	"context"
	"time"
)

// DateKind tags which semantic timestamp a captured date represents.
// A board may expose only a registration date, or also a modification
// date; the tag disambiguates downstream.
type DateKind string

// Date kinds produced by the shipped parsers.
const (
	DateRegistered DateKind = "registered"
	DateModified   DateKind = "modified"
)

// ListItem is one row extracted from a board listing page.
// ID is the deduplication key and must be unique within one listing.
type ListItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	DateKind  DateKind  `json:"date_kind"`
	DetailURL string    `json:"detail_url"`
}

// DetailRecord is the structured result of parsing a detail page.
// Content holds the article body converted to markdown.
type DetailRecord struct {
	Content          string `json:"content"`
	HasAttachment    bool   `json:"has_attachment"`
	HasEmbeddedImage bool   `json:"has_embedded_image"`
}

// Parser is the contract every source-specific parser implements.
//
// The contract is deliberately loose about whether the supplied page is
// used: most sources parse it directly, but a client-side-rendered source
// may discard it and fetch the board's internal data endpoint instead.
// Everything above this interface is source-agnostic.
type Parser interface {
	ParseList(ctx context.Context, page string) ([]ListItem, error)
	ParseDetail(ctx context.Context, page string, detailURL string) (DetailRecord, error)
}

// Target binds a board page URL to the parser that understands its markup.
type Target struct {
	ID        string
	Name      string
	SourceURL string
	Parser    Parser
}

// Group is a named collection of targets, typically one per site.
type Group struct {
	ID      string
	Name    string
	Targets []*Target
}
