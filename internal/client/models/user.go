// Package models defines client-side data models used by the user directory CLI.
package models

import (
	"fmt"
	"strings"
)

// User is a profile record as exchanged with the directory backend.
// Every field travels as a JSON string, including numeric-looking and
// flag-like ones. The same shape is used for reads and writes.
type User struct {
	// ID is assigned by the backend and empty on create requests.
	ID string `json:"ID"`

	// Backend-managed timestamps; the client never sets them.
	CreatedAt string `json:"CreatedAt"`
	UpdatedAt string `json:"UpdatedAt"`
	DeletedAt string `json:"DeletedAt"`

	TelegramID  string `json:"telegram_id"`
	Username    string `json:"username"`
	Name        string `json:"name"`
	Age         string `json:"age"`
	Sex         string `json:"sex"`
	About       string `json:"about"`
	Hobbies     string `json:"hobbies"`
	Work        string `json:"work"`
	Education   string `json:"education"`
	CoverLetter string `json:"cover_letter"`
	Contacts    string `json:"contacts"`

	IsBot    string `json:"is_bot"`
	IsActive string `json:"is_active"`
}

// ProfileField binds a user-editable field to its JSON name.
type ProfileField struct {
	Name  string
	Value *string
}

// ProfileFields returns the free-form and flag fields of u in wire order.
// ID and timestamps are excluded since the client never edits them.
func (u *User) ProfileFields() []ProfileField {
	return []ProfileField{
		{"telegram_id", &u.TelegramID},
		{"username", &u.Username},
		{"name", &u.Name},
		{"age", &u.Age},
		{"sex", &u.Sex},
		{"about", &u.About},
		{"hobbies", &u.Hobbies},
		{"work", &u.Work},
		{"education", &u.Education},
		{"cover_letter", &u.CoverLetter},
		{"contacts", &u.Contacts},
		{"is_bot", &u.IsBot},
		{"is_active", &u.IsActive},
	}
}

// String renders a one-line summary for listings.
func (u User) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", u.ID, u.Name)
	if u.Username != "" {
		fmt.Fprintf(&b, " (@%s)", u.Username)
	}
	return b.String()
}
