package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/edyapups/Beneburg-Archived/internal/client/models"
)

func (a *App) List(ctx context.Context) error {
	users, err := a.api.ListUsers(ctx)
	if err != nil {
		return err
	}
	a.log.Debug(ctx, "users listed", "count", len(users))

	if len(users) == 0 {
		fmt.Fprintln(a.out, "No users.")
		return nil
	}
	for _, u := range users {
		fmt.Fprintln(a.out, u)
	}
	return nil
}

func (a *App) Show(ctx context.Context, id string) error {
	user, err := a.api.GetUser(ctx, id)
	if err != nil {
		return err
	}
	return a.printUser(user)
}

func (a *App) Me(ctx context.Context) error {
	user, err := a.api.GetCurrentUser(ctx)
	if err != nil {
		return err
	}
	return a.printUser(user)
}

func (a *App) Create(ctx context.Context) error {
	var user models.User
	if err := a.editFields(&user); err != nil {
		return err
	}

	created, err := a.api.CreateUser(ctx, user)
	if err != nil {
		return err
	}
	a.log.Info(ctx, "user created", "id", created.ID)
	return a.printUser(created)
}

// Update loads the current record first so that the full record, not just
// the edited fields, is sent back.
func (a *App) Update(ctx context.Context, id string) error {
	user, err := a.api.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if user.ID == "" {
		user.ID = id
	}
	if err := a.editFields(user); err != nil {
		return err
	}

	updated, err := a.api.UpdateUser(ctx, *user)
	if err != nil {
		return err
	}
	a.log.Info(ctx, "user updated", "id", updated.ID)
	return a.printUser(updated)
}

// editFields prompts for every profile field; empty input keeps the value.
func (a *App) editFields(user *models.User) error {
	for _, f := range user.ProfileFields() {
		prompt := f.Name + ": "
		if *f.Value != "" {
			prompt = fmt.Sprintf("%s [%s]: ", f.Name, *f.Value)
		}
		v, err := GetSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return fmt.Errorf("read %s: %w", f.Name, err)
		}
		if v != "" {
			*f.Value = v
		}
	}
	return nil
}

func (a *App) printUser(user *models.User) error {
	data, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, string(data))
	return err
}
