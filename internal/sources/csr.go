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

// Poster performs form-encoded POSTs against a board's internal data
// endpoint. *fetcher.Client satisfies it.
type Poster interface {
	PostForm(ctx context.Context, rawURL string, form map[string]string) (string, error)
}

// CSRConfig describes one client-side-rendered board. SiteID, BbsID,
// MenuID, and BbsSeq are structural constants of the site; NttSeq values
// are supplied per detail fetch.
type CSRConfig struct {
	BaseURL        string
	ListEndpoint   string // internal data endpoint returning the listing fragment
	DetailEndpoint string // internal data endpoint returning the article fragment
	ViewPath       string // public path used to compose canonical detail URLs

	SiteID string
	BbsID  string
	MenuID string
	BbsSeq string

	HandlerName string // inline handler carrying the item ID, e.g. fnView
	DateColumn  int    // zero-based index of the date cell in a listing row
	DateKind    board.DateKind
	ContentSel  string // detail content container
	AttachSel   string // attachment list container
}

// CSRBoard handles boards whose visible pages are client-side-rendered
// shells with no usable markup. Instead of rendering the shell, it
// reproduces the follow-up data call a real browser would make and
// parses the returned HTML fragment.
type CSRBoard struct {
	cfg    CSRConfig
	client Poster
}

// NewCSRBoard builds a CSRBoard over the given data-endpoint client.
func NewCSRBoard(cfg CSRConfig, client Poster) *CSRBoard {
	if cfg.HandlerName == "" {
		cfg.HandlerName = "fnView"
	}
	if cfg.ContentSel == "" {
		cfg.ContentSel = "div.bbs_content"
	}
	if cfg.AttachSel == "" {
		cfg.AttachSel = "ul.file_list"
	}
	if cfg.DateKind == "" {
		cfg.DateKind = board.DateRegistered
	}
	return &CSRBoard{cfg: cfg, client: client}
}

// ParseList ignores the supplied shell page and fetches the listing
// fragment from the board's internal data endpoint. Rows that cannot be
// parsed are skipped; only a failed fragment fetch is an error.
func (b *CSRBoard) ParseList(ctx context.Context, _ string) ([]board.ListItem, error) {
	form := b.baseForm()
	form["pageIndex"] = "1"
	fragment, err := b.client.PostForm(ctx, b.cfg.BaseURL+b.cfg.ListEndpoint, form)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, fmt.Errorf("parse listing fragment: %w", err)
	}

	var items []board.ListItem
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() == 0 {
			// Header row.
			return
		}
		anchor := row.Find("a").First()
		title := strings.TrimSpace(anchor.Text())
		if title == "" {
			return
		}
		handler, _ := anchor.Attr("onclick")
		id := HandlerID(b.cfg.HandlerName, handler)
		if id == "" {
			return
		}
		item := board.ListItem{
			ID:        id,
			Title:     title,
			DateKind:  b.cfg.DateKind,
			DetailURL: b.detailURL(id),
		}
		if date, err := dateutil.GetDate(cells.Eq(b.cfg.DateColumn).Text()); err == nil {
			item.Date = date
		}
		items = append(items, item)
	})
	return items, nil
}

// ParseDetail resolves the item sequence from the detail URL (or, for
// entry points that only carry it in inline script, from the supplied
// page text), fetches the article fragment, and normalizes it.
func (b *CSRBoard) ParseDetail(ctx context.Context, page string, detailURL string) (board.DetailRecord, error) {
	seq := b.seqFromURL(detailURL)
	if seq == "" {
		seq = ExtractNttSeq(page)
	}
	if seq == "" {
		return board.DetailRecord{}, &board.ValidationError{
			Field:  "nttSeq",
			Reason: "not present in detail url or page",
		}
	}

	form := b.baseForm()
	form["nttSeq"] = seq
	fragment, err := b.client.PostForm(ctx, b.cfg.BaseURL+b.cfg.DetailEndpoint, form)
	if err != nil {
		return board.DetailRecord{}, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return board.DetailRecord{}, fmt.Errorf("parse detail fragment: %w", err)
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

func (b *CSRBoard) baseForm() map[string]string {
	return map[string]string{
		"siteId": b.cfg.SiteID,
		"bbsId":  b.cfg.BbsID,
		"mnuId":  b.cfg.MenuID,
		"bbsSeq": b.cfg.BbsSeq,
	}
}

// detailURL composes the canonical public URL for an item: view path plus
// the extracted sequence and the same structural parameters the list
// fetch used, passed through canonicalization.
func (b *CSRBoard) detailURL(id string) string {
	q := url.Values{}
	q.Set("nttSeq", id)
	q.Set("siteId", b.cfg.SiteID)
	q.Set("bbsId", b.cfg.BbsID)
	q.Set("mnuId", b.cfg.MenuID)
	return urlutil.CleanURL(b.cfg.BaseURL + b.cfg.ViewPath + "?" + q.Encode())
}

func (b *CSRBoard) seqFromURL(detailURL string) string {
	u, err := url.Parse(detailURL)
	if err != nil {
		return ""
	}
	return u.Query().Get("nttSeq")
}
