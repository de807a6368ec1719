package cli

import (
	"context"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for credentials and runs the login transition:
// authenticate, persist the credential, refresh history. The outcome is
// printed; the session stays anonymous on any failure.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	err = a.attendance.Login(ctx, email, password)
	a.printOutcome()
	return err
}

// Logout drops the session locally. No network call is made.
func (a *App) Logout(ctx context.Context) error {
	err := a.attendance.Logout(ctx)
	a.printOutcome()
	return err
}

// WhoAmI prints the identity decoded from the current token.
func (a *App) WhoAmI(ctx context.Context) error {
	id, ok := a.attendance.Identity()
	if !ok {
		printlnFn("Not logged in")
		return nil
	}
	printlnFn("Employee:", id.Email, "("+id.ID+")")
	return nil
}
