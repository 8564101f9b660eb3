package cli

import (
	"context"
	"os"

	"github.com/nkartsev/artvault/internal/client/client"
	"github.com/nkartsev/artvault/internal/client/models"
	"github.com/nkartsev/artvault/internal/client/services"
	"github.com/nkartsev/artvault/internal/common"
)

// Profile shows the connected user's profile and walks through an edit:
// username (with a live availability check), bio and social handles.
// Submitting an empty line keeps the current value of a field.
func (a *App) Profile(ctx context.Context) error {
	if !a.isConnected() {
		printlnFn("Connect a wallet first.")
		return nil
	}
	user := a.session.User

	if user.ProfileComplete() {
		printlnFn(renderProfile(user))
	}

	username, err := a.promptUsername(ctx, user.Username)
	if err != nil {
		return err
	}

	bio, err := GetTextWithDefault(a.reader, "Bio", user.Bio, os.Stdout)
	if err != nil {
		return err
	}
	xHandle, err := GetTextWithDefault(a.reader, "X handle", user.XHandle, os.Stdout)
	if err != nil {
		return err
	}
	discord, err := GetTextWithDefault(a.reader, "Discord handle", user.DiscordHandle, os.Stdout)
	if err != nil {
		return err
	}

	updated, err := a.profile.Save(ctx, user.ID, user.Username, models.ProfileUpdate{
		Username:      username,
		Bio:           bio,
		AvatarURL:     user.AvatarURL,
		XHandle:       xHandle,
		DiscordHandle: discord,
	})
	if err != nil {
		if msg, ok := client.ServerMessage(err); ok {
			printlnFn(msg)
		} else {
			printlnFn("Could not save the profile:", err)
		}
		return err
	}

	a.session.User = updated
	printlnFn("Profile saved.")
	return nil
}

// promptUsername asks for a username until an acceptable one is entered:
// either the current name kept as-is, or a new one the server reports as
// available.
func (a *App) promptUsername(ctx context.Context, current string) (string, error) {
	for {
		name, err := GetTextWithDefault(a.reader, "Username (min 3 characters)", current, os.Stdout)
		if err != nil {
			return "", err
		}
		if name == current && current != "" {
			return name, nil
		}
		if len([]rune(name)) < 3 {
			printlnFn(common.ErrUsernameTooShort.Error())
			continue
		}

		switch a.profile.CheckUsername(ctx, current, name) {
		case services.VerdictAvailable:
			printlnFn("Username is available.")
			return name, nil
		case services.VerdictTaken:
			printlnFn("That username is taken, try another.")
		default:
			printlnFn("Could not check availability, try again.")
		}
	}
}
