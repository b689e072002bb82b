package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

const helpText = `Available commands:
  list              list all users
  get <id>          show one user
  me                show the user the current token belongs to
  create            create a user (prompts for every field)
  update <id>       edit a user, empty input keeps the current value
  token set [tok]   store a bearer token (prompts without echo if omitted)
  token show        show the stored token, masked
  token clear       forget the stored token
  state             list what the local database holds
  reset             wipe the local database
  exit | quit       leave the program`

// runREPL reads commands until exit/quit, end of input or ctx is done.
// A pending line read is not interrupted; the loop stops before the next
// command runs.
func (a *App) runREPL(ctx context.Context) error {
	fmt.Fprintln(a.out, "User directory CLI (type 'help' for commands)")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(a.out, "udir> ")
		line, err := a.reader.ReadString('\n')

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if line = strings.TrimSpace(line); line != "" {
			if !a.dispatch(ctx, line) {
				return nil
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(a.out)
				return nil
			}
			return err
		}
	}
}

// dispatch executes one command line and reports whether the loop goes on.
func (a *App) dispatch(ctx context.Context, line string) bool {
	parts := strings.Fields(line)
	cmd, args := parts[0], parts[1:]

	switch cmd {
	case "help":
		fmt.Fprintln(a.out, helpText)
	case "list", "ls":
		a.report(ctx, cmd, a.List(ctx))
	case "get":
		if len(args) != 1 {
			fmt.Fprintln(a.out, "Usage: get <id>")
			break
		}
		a.report(ctx, cmd, a.Show(ctx, args[0]))
	case "me":
		a.report(ctx, cmd, a.Me(ctx))
	case "create":
		a.report(ctx, cmd, a.Create(ctx))
	case "update":
		if len(args) != 1 {
			fmt.Fprintln(a.out, "Usage: update <id>")
			break
		}
		a.report(ctx, cmd, a.Update(ctx, args[0]))
	case "token":
		a.report(ctx, cmd, a.Token(ctx, args))
	case "state":
		a.report(ctx, cmd, a.State(ctx))
	case "reset":
		a.report(ctx, cmd, a.Reset(ctx))
	case "exit", "quit":
		fmt.Fprintln(a.out, "Bye!")
		return false
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
	}
	return true
}
