package board

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubFetcher struct {
	page    string
	err     error
	fetched []string
	cached  []bool
}

func (f *stubFetcher) Fetch(_ context.Context, rawURL string, useCache bool) (string, error) {
	f.fetched = append(f.fetched, rawURL)
	f.cached = append(f.cached, useCache)
	if f.err != nil {
		return "", f.err
	}
	return f.page, nil
}

func (f *stubFetcher) Clear() {}

func (f *stubFetcher) Stats() CacheStats {
	return CacheStats{}
}

type stubParser struct {
	items   []ListItem
	record  DetailRecord
	gotPage string
	gotURL  string
}

func (p *stubParser) ParseList(_ context.Context, page string) ([]ListItem, error) {
	p.gotPage = page
	return p.items, nil
}

func (p *stubParser) ParseDetail(_ context.Context, page string, detailURL string) (DetailRecord, error) {
	p.gotPage = page
	p.gotURL = detailURL
	return p.record, nil
}

func newTestService(fetcher *stubFetcher, parser Parser) *Service {
	registry := NewRegistry(&Group{
		ID:   "suncheon",
		Name: "순천시청",
		Targets: []*Target{
			{ID: "notice", SourceURL: "https://a.example.go.kr/list", Parser: parser},
		},
	})
	return NewService(registry, fetcher, zap.NewNop())
}

func TestService_List(t *testing.T) {
	t.Run("fetches the target page and dispatches to its parser", func(t *testing.T) {
		parser := &stubParser{items: []ListItem{{ID: "1", Title: "공고", Date: time.Now(), DateKind: DateRegistered}}}
		fetcher := &stubFetcher{page: "<html>listing</html>"}
		svc := newTestService(fetcher, parser)

		items, err := svc.List(context.Background(), "suncheon", "notice", true)
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.Equal(t, []string{"https://a.example.go.kr/list"}, fetcher.fetched)
		require.Equal(t, []bool{true}, fetcher.cached)
		require.Equal(t, "<html>listing</html>", parser.gotPage)
	})

	t.Run("cache bypass is passed through", func(t *testing.T) {
		fetcher := &stubFetcher{page: "x"}
		svc := newTestService(fetcher, &stubParser{})

		_, err := svc.List(context.Background(), "suncheon", "notice", false)
		require.NoError(t, err)
		require.Equal(t, []bool{false}, fetcher.cached)
	})

	t.Run("unknown target propagates not found", func(t *testing.T) {
		svc := newTestService(&stubFetcher{}, &stubParser{})

		_, err := svc.List(context.Background(), "suncheon", "missing", true)
		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
		require.Equal(t, "missing", notFound.ID)
	})

	t.Run("fetch failure propagates unmodified", func(t *testing.T) {
		wantErr := &FetchError{URL: "https://a.example.go.kr/list", StatusCode: 502, Status: "Bad Gateway"}
		svc := newTestService(&stubFetcher{err: wantErr}, &stubParser{})

		_, err := svc.List(context.Background(), "suncheon", "notice", true)
		require.ErrorIs(t, err, wantErr)
	})
}

func TestService_Detail(t *testing.T) {
	t.Run("missing url is a validation error", func(t *testing.T) {
		fetcher := &stubFetcher{}
		svc := newTestService(fetcher, &stubParser{})

		_, err := svc.Detail(context.Background(), "suncheon", "notice", "", true)
		var validation *ValidationError
		require.ErrorAs(t, err, &validation)
		require.Equal(t, "url", validation.Field)
		require.Empty(t, fetcher.fetched)
	})

	t.Run("fetches the detail url and hands both page and url to the parser", func(t *testing.T) {
		parser := &stubParser{record: DetailRecord{Content: "# 공고", HasAttachment: true}}
		fetcher := &stubFetcher{page: "<html>detail</html>"}
		svc := newTestService(fetcher, parser)

		detailURL := "https://a.example.go.kr/view.do?seq=9"
		record, err := svc.Detail(context.Background(), "suncheon", "notice", detailURL, true)
		require.NoError(t, err)
		require.True(t, record.HasAttachment)
		require.Equal(t, []string{detailURL}, fetcher.fetched)
		require.Equal(t, "<html>detail</html>", parser.gotPage)
		require.Equal(t, detailURL, parser.gotURL)
	})
}
