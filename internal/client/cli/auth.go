package cli

import (
	"context"
	"fmt"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for an email, password and display name and attempts to
// create an account. The password policy is enforced by the session manager
// before any network call; the first violated rule is shown as-is.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter display name", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.session.Register(ctx, email, password, name)
	if err != nil {
		printlnFn(rejectionMessage(err, "Registration failed"))
		return err
	}

	printlnFn(fmt.Sprintf("Welcome to TruthGuard, %s!", user.Name))
	return nil
}

// Login prompts for credentials and authenticates. The rejection message
// comes from the service, never fabricated client-side.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.session.Login(ctx, email, password)
	if err != nil {
		printlnFn(rejectionMessage(err, "Login failed"))
		return err
	}

	printlnFn(fmt.Sprintf("Logged in as %s.", user.Email))
	return nil
}

// Logout clears the session unconditionally.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	printlnFn("Logged out.")
	return nil
}

// WhoAmI prints the authenticated identity.
func (a *App) WhoAmI(ctx context.Context) error {
	sess := a.session.Session()
	if !sess.IsAuthenticated || sess.User == nil {
		printlnFn("Not logged in.")
		return nil
	}
	printlnFn(fmt.Sprintf("%s <%s>", sess.User.Name, sess.User.Email))
	return nil
}
