package cli

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/edyapups/Beneburg-Archived/internal/client/credentials"
)

// State lists the local key-value records. The token value is masked.
func (a *App) State(ctx context.Context) error {
	if a.state == nil {
		fmt.Fprintln(a.out, "No local database.")
		return nil
	}

	items, err := a.state.List(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "Local database is empty.")
		return nil
	}

	for _, key := range slices.Sorted(maps.Keys(items)) {
		value := string(items[key])
		if key == credentials.TokenKey {
			value = maskToken(value)
		}
		fmt.Fprintf(a.out, "%s = %s\n", key, value)
	}
	return nil
}

// Reset removes every local record, the stored token included.
func (a *App) Reset(ctx context.Context) error {
	if a.state == nil {
		fmt.Fprintln(a.out, "No local database.")
		return nil
	}
	if err := a.state.Clear(ctx); err != nil {
		return err
	}
	a.log.Info(ctx, "local state cleared")
	fmt.Fprintln(a.out, "Local state cleared.")
	return nil
}
