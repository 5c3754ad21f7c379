package cli

import (
	"context"
	"os"
)

// Chat asks the assistant one question and prints the reply. Conversation
// history is kept for the lifetime of the process, so follow-up questions
// have context.
func (a *App) Chat(ctx context.Context) error {
	message, err := getSimpleText(a.reader, "Ask the TruthGuard assistant", os.Stdout)
	if err != nil {
		return err
	}
	if message == "" {
		return nil
	}

	reply := a.chat.Send(ctx, message)
	printlnFn(reply)
	return nil
}
