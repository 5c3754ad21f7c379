// Package api contains the typed client for the TruthGuard HTTP JSON API.
// All network access in the application goes through the Client interface;
// the HTTP implementation owns bearer-token attachment and the unauthorized
// notification that drives global session invalidation.
package api

import (
	"context"

	"github.com/truthguard/truthguard/internal/client/models"
)

// AuthResponse is the payload of a successful login or registration.
type AuthResponse struct {
	Token string             `json:"token"`
	User  models.UserProfile `json:"user"`
}

// NewsResponse is the payload of the live-news feed.
type NewsResponse struct {
	Articles     []models.NewsArticle `json:"articles"`
	TotalResults int                  `json:"totalResults"`
}

// Client defines the remote operations used by the application services.
//
// Contract:
//   - Me: resolve the identity behind the attached token.
//   - Login/Register: authenticate; neither attaches the returned token,
//     that is the session manager's decision.
//   - Verify: submit content for classification (requires a token).
//   - History/Trending/News: read-only feeds.
//   - ChatTurn: one assistant round trip.
//   - SetToken/ClearToken: attach or remove the bearer credential used on
//     every subsequent request.
//   - OnUnauthorized: register the single subscriber notified when a
//     token-carrying request is rejected with 401.
//
// All methods must honor context cancellation/timeouts.
type Client interface {
	Close() error
	Me(ctx context.Context) (*models.UserProfile, error)
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	Register(ctx context.Context, email, password, name string) (*AuthResponse, error)
	Verify(ctx context.Context, req *models.VerificationRequest) (*models.VerificationResult, error)
	History(ctx context.Context) ([]models.HistoryEntry, error)
	Trending(ctx context.Context) ([]models.TrendingEntry, error)
	News(ctx context.Context, category string) (*NewsResponse, error)
	ChatTurn(ctx context.Context, message string, history []models.ChatMessage) (string, error)
	SetToken(token string)
	ClearToken()
	OnUnauthorized(fn func())
}
