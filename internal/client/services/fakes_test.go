package services

import (
	"context"
	"io"
	"log/slog"

	"github.com/truthguard/truthguard/internal/client/api"
	"github.com/truthguard/truthguard/internal/client/models"
	"github.com/truthguard/truthguard/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeClient implements api.Client for unit tests.
type fakeClient struct {
	token          string
	setTokenCalls  int
	clearTokenCnt  int
	onUnauthorized func()

	MeRet   *models.UserProfile
	MeErr   error
	MeCalls int

	LoginRet   *api.AuthResponse
	LoginErr   error
	LoginCalls int
	LastEmail  string
	LastPass   string

	RegisterRet   *api.AuthResponse
	RegisterErr   error
	RegisterCalls int
	LastName      string

	// VerifyFn, when set, takes precedence over VerifyRet/VerifyErr.
	VerifyFn      func(ctx context.Context, req *models.VerificationRequest) (*models.VerificationResult, error)
	VerifyRet     *models.VerificationResult
	VerifyErr     error
	VerifyCalls   int
	LastVerifyReq *models.VerificationRequest

	HistoryRet  []models.HistoryEntry
	HistoryErr  error
	TrendingRet []models.TrendingEntry
	TrendingErr error
	NewsRet     *api.NewsResponse
	NewsErr     error
	LastCategory string

	ChatRet         string
	ChatErr         error
	LastChatMessage string
	LastChatHistory []models.ChatMessage
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) Me(ctx context.Context) (*models.UserProfile, error) {
	f.MeCalls++
	return f.MeRet, f.MeErr
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*api.AuthResponse, error) {
	f.LoginCalls++
	f.LastEmail, f.LastPass = email, password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Register(ctx context.Context, email, password, name string) (*api.AuthResponse, error) {
	f.RegisterCalls++
	f.LastEmail, f.LastPass, f.LastName = email, password, name
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) Verify(ctx context.Context, req *models.VerificationRequest) (*models.VerificationResult, error) {
	f.VerifyCalls++
	f.LastVerifyReq = req
	if f.VerifyFn != nil {
		return f.VerifyFn(ctx, req)
	}
	return f.VerifyRet, f.VerifyErr
}

func (f *fakeClient) History(ctx context.Context) ([]models.HistoryEntry, error) {
	return f.HistoryRet, f.HistoryErr
}

func (f *fakeClient) Trending(ctx context.Context) ([]models.TrendingEntry, error) {
	return f.TrendingRet, f.TrendingErr
}

func (f *fakeClient) News(ctx context.Context, category string) (*api.NewsResponse, error) {
	f.LastCategory = category
	return f.NewsRet, f.NewsErr
}

func (f *fakeClient) ChatTurn(ctx context.Context, message string, history []models.ChatMessage) (string, error) {
	f.LastChatMessage = message
	f.LastChatHistory = append([]models.ChatMessage(nil), history...)
	return f.ChatRet, f.ChatErr
}

func (f *fakeClient) SetToken(token string) { f.token = token; f.setTokenCalls++ }
func (f *fakeClient) ClearToken()           { f.token = ""; f.clearTokenCnt++ }
func (f *fakeClient) OnUnauthorized(fn func()) {
	f.onUnauthorized = fn
}

// fakeRepo is an in-memory session.Repository.
type fakeRepo struct {
	data      map[string][]byte
	setErr    error
	setAllErr error
	clearErr  error

	clearCalls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{data: map[string][]byte{}}
}

func (r *fakeRepo) Get(ctx context.Context, key string) ([]byte, error) {
	return r.data[key], nil
}

func (r *fakeRepo) Set(ctx context.Context, key string, value []byte) error {
	if r.setErr != nil {
		return r.setErr
	}
	r.data[key] = value
	return nil
}

func (r *fakeRepo) SetAll(ctx context.Context, values map[string][]byte) error {
	if r.setAllErr != nil {
		return r.setAllErr
	}
	for k, v := range values {
		r.data[k] = v
	}
	return nil
}

func (r *fakeRepo) Clear(ctx context.Context) error {
	r.clearCalls++
	if r.clearErr != nil {
		return r.clearErr
	}
	r.data = map[string][]byte{}
	return nil
}
