package sources

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/dhkim-dev/boardwatch/internal/board"
	"github.com/dhkim-dev/boardwatch/internal/dateutil"
	"github.com/dhkim-dev/boardwatch/internal/normalize"
	"github.com/dhkim-dev/boardwatch/internal/urlutil"
)

// StaticConfig describes a conventional server-rendered board whose
// listing table and detail article are present in the fetched markup.
type StaticConfig struct {
	BaseURL    string
	RowSel     string // listing row selector
	TitleSel   string // anchor within a row carrying title and href
	IDParam    string // query parameter naming the item in the row link
	DateColumn int    // zero-based index of the date cell in a row
	DateKind   board.DateKind
	ContentSel string // detail content container
	AttachSel  string // attachment list container
}

// StaticBoard parses server-rendered board pages directly.
type StaticBoard struct {
	cfg StaticConfig
}

// NewStaticBoard builds a StaticBoard.
func NewStaticBoard(cfg StaticConfig) *StaticBoard {
	if cfg.RowSel == "" {
		cfg.RowSel = "table tbody tr"
	}
	if cfg.TitleSel == "" {
		cfg.TitleSel = "td a"
	}
	if cfg.IDParam == "" {
		cfg.IDParam = "seq"
	}
	if cfg.ContentSel == "" {
		cfg.ContentSel = "div.board_view div.content"
	}
	if cfg.AttachSel == "" {
		cfg.AttachSel = "ul.file_list"
	}
	if cfg.DateKind == "" {
		cfg.DateKind = board.DateRegistered
	}
	return &StaticBoard{cfg: cfg}
}

// ParseList extracts listing items from the supplied page. Rows missing
// a link, identifier, or title are skipped rather than failing the page.
func (b *StaticBoard) ParseList(_ context.Context, page string) ([]board.ListItem, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parse listing page: %w", err)
	}

	var items []board.ListItem
	doc.Find(b.cfg.RowSel).Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() == 0 {
			return
		}
		anchor := row.Find(b.cfg.TitleSel).First()
		title := strings.TrimSpace(anchor.Text())
		href, ok := anchor.Attr("href")
		if title == "" || !ok {
			return
		}
		detailURL, id := b.resolveLink(href)
		if id == "" {
			return
		}
		item := board.ListItem{
			ID:        id,
			Title:     title,
			DateKind:  b.cfg.DateKind,
			DetailURL: detailURL,
		}
		if date, err := dateutil.GetDate(cells.Eq(b.cfg.DateColumn).Text()); err == nil {
			item.Date = date
		}
		items = append(items, item)
	})
	return items, nil
}

// ParseDetail extracts the article record from the supplied detail page.
func (b *StaticBoard) ParseDetail(_ context.Context, page string, _ string) (board.DetailRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return board.DetailRecord{}, fmt.Errorf("parse detail page: %w", err)
	}
	content := doc.Find(b.cfg.ContentSel).First()
	if content.Length() == 0 {
		return board.DetailRecord{}, fmt.Errorf("content container %q not found", b.cfg.ContentSel)
	}
	text, err := normalize.ToMarkdown(content)
	if err != nil {
		return board.DetailRecord{}, err
	}
	return board.DetailRecord{
		Content:          text,
		HasAttachment:    normalize.HasAttachment(doc, b.cfg.AttachSel),
		HasEmbeddedImage: normalize.HasEmbeddedImage(content),
	}, nil
}

// resolveLink makes the row link absolute, canonicalizes it, and pulls
// the item identifier out of its query.
func (b *StaticBoard) resolveLink(href string) (detailURL, id string) {
	base, err := url.Parse(b.cfg.BaseURL)
	if err != nil {
		return "", ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", ""
	}
	resolved := base.ResolveReference(ref)
	return urlutil.CleanURL(resolved.String()), resolved.Query().Get(b.cfg.IDParam)
}
