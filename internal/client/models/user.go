// Package models defines the client-side data model: server-owned records
// as they appear on the wire, and the ephemeral client-only entities that
// exist between a file selection and a finished upload.
package models

import "time"

// User is the server-side identity keyed by a wallet address. Created
// implicitly on first wallet connection; mutated only through a profile
// update.
type User struct {
	ID            int64     `json:"id"`
	WalletAddress string    `json:"wallet_address"`
	Username      string    `json:"username"`
	Bio           string    `json:"bio"`
	AvatarURL     string    `json:"avatar_url"`
	XHandle       string    `json:"x_handle"`
	DiscordHandle string    `json:"discord_handle"`
	ArtworkCount  int       `json:"artwork_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// ProfileComplete reports whether the user has finished first-time setup.
// A profile counts as complete once a username is set.
func (u *User) ProfileComplete() bool {
	return u.Username != ""
}

// ConnectResult is the response of the connect-or-create endpoint.
type ConnectResult struct {
	User      *User `json:"user"`
	IsNewUser bool  `json:"is_new_user"`
}

// Session is a resolved wallet connection: the server-confirmed User plus
// whether this connection created the record.
type Session struct {
	User      *User
	IsNewUser bool
}

// NeedsSetup reports whether the caller should present profile setup before
// actions that display identity. True for brand-new users and for existing
// users who never picked a username.
func (s *Session) NeedsSetup() bool {
	return s.IsNewUser || !s.User.ProfileComplete()
}

// UserDetail is a user together with their artworks, as served by the
// user-detail endpoint.
type UserDetail struct {
	User
	Artworks []Artwork `json:"artworks"`
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	Username      string `json:"username"`
	Bio           string `json:"bio"`
	AvatarURL     string `json:"avatar_url"`
	XHandle       string `json:"x_handle"`
	DiscordHandle string `json:"discord_handle"`
}
