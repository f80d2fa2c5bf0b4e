package board

import (
	"context"

	"go.uber.org/zap"
)

// Service orchestrates a scrape: registry lookup, cached page fetch, and
// dispatch through the target's parser. It is the only caller of the
// Parser contract; everything below it is source-specific.
type Service struct {
	registry *Registry
	fetcher  PageFetcher
	log      *zap.Logger
}

// NewService wires a Service.
func NewService(registry *Registry, fetcher PageFetcher, log *zap.Logger) *Service {
	return &Service{registry: registry, fetcher: fetcher, log: log}
}

// Registry exposes the target registry for listing surfaces.
func (s *Service) Registry() *Registry {
	return s.registry
}

// List fetches a target's listing page and parses it into items.
func (s *Service) List(ctx context.Context, groupID, targetID string, useCache bool) ([]ListItem, error) {
	t, err := s.registry.Target(groupID, targetID)
	if err != nil {
		return nil, err
	}
	page, err := s.fetcher.Fetch(ctx, t.SourceURL, useCache)
	if err != nil {
		return nil, err
	}
	items, err := t.Parser.ParseList(ctx, page)
	if err != nil {
		return nil, err
	}
	s.log.Debug("listing parsed",
		zap.String("group", groupID),
		zap.String("target", targetID),
		zap.Int("items", len(items)),
	)
	return items, nil
}

// Detail fetches a detail page by URL and parses it into a record.
// The detail URL is required; it normally comes from a prior List call.
func (s *Service) Detail(ctx context.Context, groupID, targetID, detailURL string, useCache bool) (DetailRecord, error) {
	if detailURL == "" {
		return DetailRecord{}, &ValidationError{Field: "url"}
	}
	t, err := s.registry.Target(groupID, targetID)
	if err != nil {
		return DetailRecord{}, err
	}
	page, err := s.fetcher.Fetch(ctx, detailURL, useCache)
	if err != nil {
		return DetailRecord{}, err
	}
	return t.Parser.ParseDetail(ctx, page, detailURL)
}
