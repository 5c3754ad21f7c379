package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/truthguard/truthguard/internal/client/api"
	"github.com/truthguard/truthguard/internal/client/models"
	"github.com/truthguard/truthguard/internal/client/verdict"
	"github.com/truthguard/truthguard/internal/common"
)

// rejectionMessage picks the text shown for a failed operation: a validation
// message as-is, the service's detail when present, otherwise the fallback.
func rejectionMessage(err error, fallback string) string {
	if errors.Is(err, common.ErrorValidation) {
		return err.Error()
	}
	if detail := api.Detail(err); detail != "" {
		return detail
	}
	return fallback
}

// renderResult writes a completed verdict.
func renderResult(w io.Writer, res *models.VerificationResult) {
	status := verdict.Colorize(res.Classification, verdict.StatusIcon(res.Classification)+" "+res.Classification)
	fmt.Fprintf(w, "\n%s  (confidence %s)\n", status, verdict.FormatConfidence(res.Confidence))
	if res.Evidence != "" {
		fmt.Fprintf(w, "Evidence: %s\n", res.Evidence)
	}
}

// renderHistoryEntry writes one line of the personal history view.
func renderHistoryEntry(w io.Writer, e *models.HistoryEntry) {
	status := verdict.Colorize(e.Classification, e.Classification)
	fmt.Fprintf(w, "%s %s  %s  %s\n",
		verdict.StatusIcon(e.Classification), status,
		verdict.FormatConfidence(e.Confidence), snippet(e.Content, 80))
	if e.URL != nil && *e.URL != "" {
		fmt.Fprintf(w, "    %s\n", *e.URL)
	}
}

// renderTrendingEntry writes one line of the trending view.
func renderTrendingEntry(w io.Writer, e *models.TrendingEntry) {
	status := verdict.Colorize(e.Status, e.Status)
	fmt.Fprintf(w, "%s %s  %s  %s (%s)\n",
		verdict.StatusIcon(e.Status), status,
		verdict.FormatConfidence(e.Confidence), snippet(e.Title, 80), e.Source)
}

// renderArticle writes one live headline.
func renderArticle(w io.Writer, a *models.NewsArticle) {
	fmt.Fprintf(w, "[%s] %s\n", a.Source.Name, a.Title)
	if a.Description != "" {
		fmt.Fprintf(w, "    %s\n", snippet(a.Description, 120))
	}
	if a.URL != "" {
		fmt.Fprintf(w, "    %s\n", a.URL)
	}
}

// snippet truncates s to at most n runes, appending an ellipsis when cut.
func snippet(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
