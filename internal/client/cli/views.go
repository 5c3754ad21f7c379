package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/truthguard/truthguard/internal/client/services"
)

// History shows the current user's past verifications, newest first.
func (a *App) History(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please log in to see your history.")
		return nil
	}

	entries, err := a.feeds.History(ctx)
	if err != nil {
		printlnFn(rejectionMessage(err, "Failed to load history"))
		return err
	}
	if len(entries) == 0 {
		printlnFn("No verifications yet.")
		return nil
	}
	for i := range entries {
		renderHistoryEntry(os.Stdout, &entries[i])
	}
	return nil
}

// Trending shows community-wide recent verdicts, optionally filtered by an
// exact classification. An empty or "All" filter shows everything.
func (a *App) Trending(ctx context.Context, filter string) error {
	if filter == "" {
		filter = services.FilterAll
	}
	if !knownTrendingFilter(filter) {
		printlnFn(fmt.Sprintf("Unknown filter %q. Filters: %s", filter, strings.Join(services.TrendingFilters, ", ")))
		return nil
	}

	entries, err := a.feeds.Trending(ctx)
	if err != nil {
		printlnFn(rejectionMessage(err, "Failed to load trending verifications"))
		return err
	}

	filtered := services.FilterTrending(entries, filter)
	if len(filtered) == 0 {
		printlnFn("Nothing to show.")
		return nil
	}
	for i := range filtered {
		renderTrendingEntry(os.Stdout, &filtered[i])
	}
	return nil
}

// News shows live headlines. Category selection is server-side: every
// category change is a re-fetch, not a client-side filter.
func (a *App) News(ctx context.Context, category string) error {
	if category == "" {
		category = "all"
	}
	if !services.IsNewsCategory(category) {
		printlnFn(fmt.Sprintf("Unknown category %q. Categories: %s", category, strings.Join(services.NewsCategories, ", ")))
		return nil
	}

	resp, err := a.feeds.News(ctx, category)
	if err != nil {
		printlnFn(rejectionMessage(err, "Failed to load news"))
		return err
	}
	if len(resp.Articles) == 0 {
		printlnFn("No headlines right now.")
		return nil
	}
	for i := range resp.Articles {
		renderArticle(os.Stdout, &resp.Articles[i])
	}
	return nil
}

func knownTrendingFilter(filter string) bool {
	for _, f := range services.TrendingFilters {
		if filter == f {
			return true
		}
	}
	return false
}
