package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Verify(ctx context.Context) error
	VerifyURL(ctx context.Context) error
	History(ctx context.Context) error
	Trending(ctx context.Context, filter string) error
	News(ctx context.Context, category string) error
	Chat(ctx context.Context) error
}

// runREPL starts a read-eval-print loop for the TruthGuard CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands available to everyone:
//
//	help                 — show available commands
//	trending [filter]    — community verdicts (All, Real, Misleading, Fake)
//	news [category]      — live headlines, optionally by category
//	chat                 — ask the assistant a question
//	exit | quit          — leave the program
//
// Signed out additionally: register, login.
// Signed in additionally: verify, verifyurl, history, whoami, logout.
//
// Errors returned by command handlers are ignored here; handlers print their
// own messages. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("truthguard> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: verify, verifyurl, history, trending [filter], news [category], chat, whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, trending [filter], news [category], chat, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "verify":
			_ = a.Verify(ctx)

		case "verifyurl":
			_ = a.VerifyURL(ctx)

		case "history":
			_ = a.History(ctx)

		case "trending":
			filter := ""
			if len(args) > 0 {
				filter = args[0]
			}
			_ = a.Trending(ctx, filter)

		case "news":
			category := ""
			if len(args) > 0 {
				category = args[0]
			}
			_ = a.News(ctx, category)

		case "chat":
			_ = a.Chat(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
