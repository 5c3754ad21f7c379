package services

import (
	"context"

	"github.com/truthguard/truthguard/internal/client/api"
	"github.com/truthguard/truthguard/internal/client/models"
	"github.com/truthguard/truthguard/internal/logging"
)

// FilterAll is the trending-filter sentinel that disables filtering.
const FilterAll = "All"

// TrendingFilters are the selectable trending filters, in display order.
var TrendingFilters = []string{FilterAll, "Real", "Misleading", "Fake"}

// NewsCategories are the categories accepted by the live-news feed, in
// display order. Category selection is server-side: changing it re-fetches.
var NewsCategories = []string{
	"all", "business", "entertainment", "general",
	"health", "science", "sports", "technology",
}

// IsNewsCategory reports whether c is a known news category.
func IsNewsCategory(c string) bool {
	for _, known := range NewsCategories {
		if c == known {
			return true
		}
	}
	return false
}

// FeedService exposes the read-only list views: personal history, community
// trending verdicts, and live headlines. It never mutates server state.
type FeedService struct {
	client api.Client
	log    logging.Logger
}

func NewFeedService(client api.Client, log logging.Logger) *FeedService {
	return &FeedService{client: client, log: log}
}

// History returns the current user's past verifications, newest first, as
// ordered by the service.
func (s *FeedService) History(ctx context.Context) ([]models.HistoryEntry, error) {
	return s.client.History(ctx)
}

// Trending returns recent community-wide verifications.
func (s *FeedService) Trending(ctx context.Context) ([]models.TrendingEntry, error) {
	return s.client.Trending(ctx)
}

// News returns live headlines for the given category.
func (s *FeedService) News(ctx context.Context, category string) (*api.NewsResponse, error) {
	return s.client.News(ctx, category)
}

// FilterTrending applies an exact-match status filter client-side. The
// FilterAll sentinel returns the input unchanged.
func FilterTrending(entries []models.TrendingEntry, filter string) []models.TrendingEntry {
	if filter == FilterAll {
		return entries
	}
	filtered := make([]models.TrendingEntry, 0, len(entries))
	for _, e := range entries {
		if e.Status == filter {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
