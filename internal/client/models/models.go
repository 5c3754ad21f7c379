// Package models defines the data types exchanged with the TruthGuard
// verification service. All types mirror the service's JSON shapes; the
// client never mutates server-owned records.
package models

import "time"

// UserProfile is the authenticated user's identity as returned by the
// service on login, registration, and the /auth/me probe.
type UserProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// VerificationRequest is a single submission to the classifier.
// Content is non-empty and trimmed before the request is built; URL is nil
// in text mode, even if the input happens to contain one.
type VerificationRequest struct {
	Content     string    `json:"content"`
	URL         *string   `json:"url"`
	SubmittedAt time.Time `json:"-"`
}

// VerificationResult is the classifier's verdict for one request.
// Immutable once received; a new submission replaces it wholesale.
type VerificationResult struct {
	ID             string    `json:"id"`
	Content        string    `json:"content"`
	URL            *string   `json:"url"`
	Classification string    `json:"result"`
	Confidence     float64   `json:"confidence"`
	Evidence       string    `json:"evidence"`
	Timestamp      time.Time `json:"timestamp"`
}

// HistoryEntry is a past verification belonging to the current user.
// Server-owned; the client only renders it.
type HistoryEntry = VerificationResult

// TrendingEntry is a community-wide recent verification.
type TrendingEntry struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Source     string    `json:"source"`
	Status     string    `json:"status"`
	Confidence float64   `json:"confidence"`
	VerifiedAt time.Time `json:"verified_at"`
}

// NewsSource identifies the outlet of a live headline.
type NewsSource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewsArticle is a live headline from the news feed.
type NewsArticle struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	ImageURL    string     `json:"urlToImage"`
	PublishedAt string     `json:"publishedAt"`
	Source      NewsSource `json:"source"`
	Category    string     `json:"category"`
}

// ChatMessage is one turn of the assistant conversation. Role is either
// "user" or "assistant".
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
