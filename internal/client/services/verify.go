package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/truthguard/truthguard/internal/client/api"
	"github.com/truthguard/truthguard/internal/client/models"
	"github.com/truthguard/truthguard/internal/common"
	"github.com/truthguard/truthguard/internal/logging"
)

// VerifyState is the lifecycle state of a single verification attempt.
//
// Transitions:
//
//	Idle -> Pending            (Submit)
//	Pending -> Completed|Failed
//	Completed|Failed -> Idle   (Reset)
//
// Submit while Pending is rejected; concurrent attempts never interleave.
type VerifyState string

const (
	VerifyIdle      VerifyState = "idle"
	VerifyPending   VerifyState = "pending"
	VerifyCompleted VerifyState = "completed"
	VerifyFailed    VerifyState = "failed"
)

// InputMode selects which field accompanies the content. The modes are
// mutually exclusive at the protocol level: in text mode the url field is
// always null, even if the input happens to hold a URL.
type InputMode string

const (
	ModeText InputMode = "text"
	ModeURL  InputMode = "url"
)

// ErrSubmissionInFlight is returned by Submit when an attempt is already
// pending; the call is a no-op.
var ErrSubmissionInFlight = errors.New("verification already in progress")

// ErrResetRequired is returned by Submit from Completed or Failed; the
// previous outcome must be discarded with Reset first.
var ErrResetRequired = errors.New("previous verification not cleared")

// genericVerifyFailure is shown when the service rejection carries no detail.
const genericVerifyFailure = "Verification failed"

// VerificationController drives exactly one verification attempt at a time
// and interprets its result. Responses issued under a session epoch that has
// since ended are discarded, never committed.
type VerificationController struct {
	client  api.Client
	session *SessionManager
	log     logging.Logger

	state   VerifyState
	request *models.VerificationRequest
	result  *models.VerificationResult
	failure string
}

func NewVerificationController(client api.Client, session *SessionManager, log logging.Logger) *VerificationController {
	return &VerificationController{
		client:  client,
		session: session,
		log:     log,
		state:   VerifyIdle,
	}
}

// State returns the current attempt state.
func (c *VerificationController) State() VerifyState { return c.state }

// Result returns the stored verdict, or nil unless Completed.
func (c *VerificationController) Result() *models.VerificationResult { return c.result }

// FailureMessage returns the display message for a Failed attempt.
func (c *VerificationController) FailureMessage() string { return c.failure }

// Submit validates the input, shapes the request for the active mode, and
// runs one round trip against the classifier. Content must be non-empty
// after trimming or the call fails with a ValidationError before any network
// activity.
func (c *VerificationController) Submit(ctx context.Context, mode InputMode, content, rawURL string) error {
	switch c.state {
	case VerifyPending:
		return ErrSubmissionInFlight
	case VerifyCompleted, VerifyFailed:
		return ErrResetRequired
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return &ValidationError{Message: "Please enter some content to verify"}
	}

	req := &models.VerificationRequest{
		Content:     content,
		SubmittedAt: time.Now(),
	}
	if mode == ModeURL {
		if u := strings.TrimSpace(rawURL); u != "" {
			req.URL = &u
		}
	}

	c.state = VerifyPending
	c.request = req
	c.result = nil
	c.failure = ""

	epoch := c.session.Epoch()
	result, err := c.client.Verify(ctx, req)

	// The session may have been invalidated while the request was in
	// flight; a response issued under an older epoch is no longer relevant
	// and must not be committed.
	if c.session.Epoch() != epoch {
		c.log.Debug(ctx, "discarding stale verification response")
		c.resetTo(VerifyIdle)
		return nil
	}

	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			// Global invalidation already ran; nothing to show here.
			c.resetTo(VerifyIdle)
			return nil
		}
		c.state = VerifyFailed
		c.failure = genericVerifyFailure
		if detail := api.Detail(err); detail != "" {
			c.failure = detail
		}
		c.log.Warn(ctx, "verification failed", "error", err)
		return nil
	}

	c.state = VerifyCompleted
	c.result = result
	return nil
}

// Reset discards the stored request and result and returns to Idle. Only
// meaningful from Completed or Failed; a pending attempt cannot be reset.
func (c *VerificationController) Reset() {
	if c.state == VerifyPending {
		return
	}
	c.resetTo(VerifyIdle)
}

func (c *VerificationController) resetTo(s VerifyState) {
	c.state = s
	c.request = nil
	c.result = nil
	c.failure = ""
}
