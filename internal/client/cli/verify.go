package cli

import (
	"context"
	"errors"
	"os"

	"github.com/truthguard/truthguard/internal/client/services"
)

// Verify runs a text-mode verification: prompt for content, submit, render
// the verdict. The controller is reset afterwards so the next submission
// starts from a clean state.
func (a *App) Verify(ctx context.Context) error {
	content, err := GetMultiline(a.reader, "Paste the news content to verify", os.Stdout)
	if err != nil {
		return err
	}
	return a.runVerification(ctx, services.ModeText, content, "")
}

// VerifyURL runs a URL-mode verification: content plus the article URL.
func (a *App) VerifyURL(ctx context.Context) error {
	content, err := GetMultiline(a.reader, "Paste the news content to verify", os.Stdout)
	if err != nil {
		return err
	}
	url, err := getSimpleText(a.reader, "Enter the article URL", os.Stdout)
	if err != nil {
		return err
	}
	return a.runVerification(ctx, services.ModeURL, content, url)
}

func (a *App) runVerification(ctx context.Context, mode services.InputMode, content, url string) error {
	printlnFn("Analyzing...")
	err := a.verifier.Submit(ctx, mode, content, url)
	if err != nil {
		if errors.Is(err, services.ErrSubmissionInFlight) {
			// Control surface is a single prompt; this should not happen.
			return nil
		}
		printlnFn(rejectionMessage(err, "Verification failed"))
		return err
	}
	defer a.verifier.Reset()

	switch a.verifier.State() {
	case services.VerifyCompleted:
		renderResult(os.Stdout, a.verifier.Result())
	case services.VerifyFailed:
		printlnFn(a.verifier.FailureMessage())
	}
	return nil
}
