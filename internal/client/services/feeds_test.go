package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truthguard/truthguard/internal/client/api"
	"github.com/truthguard/truthguard/internal/client/models"
)

func TestFilterTrending(t *testing.T) {
	entries := []models.TrendingEntry{
		{ID: "1", Status: "Real"},
		{ID: "2", Status: "Fake"},
		{ID: "3", Status: "Misleading"},
		{ID: "4", Status: "Real"},
		{ID: "5", Status: "Unverified"},
	}

	tests := []struct {
		name   string
		filter string
		wantID []string
	}{
		{"All sentinel disables filtering", FilterAll, []string{"1", "2", "3", "4", "5"}},
		{"exact match Real", "Real", []string{"1", "4"}},
		{"exact match Fake", "Fake", []string{"2"}},
		{"exact match Misleading", "Misleading", []string{"3"}},
		{"case-sensitive, no partial match", "real", nil},
		{"unknown filter matches nothing", "Satire", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterTrending(entries, tc.filter)
			var ids []string
			for _, e := range got {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tc.wantID, ids)
		})
	}
}

func TestFilterTrending_EmptyInput(t *testing.T) {
	assert.Empty(t, FilterTrending(nil, "Real"))
	assert.Empty(t, FilterTrending(nil, FilterAll))
}

func TestIsNewsCategory(t *testing.T) {
	for _, c := range NewsCategories {
		assert.True(t, IsNewsCategory(c), c)
	}
	assert.False(t, IsNewsCategory("politics"))
	assert.False(t, IsNewsCategory("Science"), "categories are lowercase")
	assert.False(t, IsNewsCategory(""))
}

func TestFeedService_News_PassesCategory(t *testing.T) {
	client := &fakeClient{NewsRet: &api.NewsResponse{Articles: []models.NewsArticle{{Title: "h"}}}}
	s := NewFeedService(client, testLogger())

	resp, err := s.News(context.Background(), "sports")
	require.NoError(t, err)

	assert.Equal(t, "sports", client.LastCategory, "category selection is server-side")
	require.Len(t, resp.Articles, 1)
}

func TestFeedService_History_PassThrough(t *testing.T) {
	client := &fakeClient{HistoryRet: []models.HistoryEntry{{ID: "1", Classification: "Real"}}}
	s := NewFeedService(client, testLogger())

	entries, err := s.History(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Real", entries[0].Classification)
}
