package cli

import (
	"context"
	"fmt"
)

const tokenUsage = "Usage: token set [token] | token show | token clear"

// Token manages the stored bearer token. The API client reads it before
// every request, so changes apply to the next command.
func (a *App) Token(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, tokenUsage)
		return nil
	}

	switch args[0] {
	case "set":
		var token string
		if len(args) > 1 {
			token = args[1]
		} else {
			var err error
			if token, err = GetSecret(a.reader, "Token: ", a.out); err != nil {
				return fmt.Errorf("read token: %w", err)
			}
		}
		if token == "" {
			fmt.Fprintln(a.out, "Empty token, nothing changed.")
			return nil
		}
		if err := a.tokens.SetToken(ctx, token); err != nil {
			return err
		}
		a.log.Info(ctx, "token updated")
		fmt.Fprintln(a.out, "Token saved.")

	case "show":
		token, err := a.tokens.Token(ctx)
		if err != nil {
			return err
		}
		if token == "" {
			fmt.Fprintln(a.out, "No token set.")
			return nil
		}
		fmt.Fprintln(a.out, maskToken(token))

	case "clear":
		if err := a.tokens.ClearToken(ctx); err != nil {
			return err
		}
		a.log.Info(ctx, "token cleared")
		fmt.Fprintln(a.out, "Token cleared.")

	default:
		fmt.Fprintln(a.out, tokenUsage)
	}
	return nil
}
