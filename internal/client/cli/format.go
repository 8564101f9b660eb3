package cli

import (
	"fmt"
	"strings"

	"github.com/nkartsev/artvault/internal/client/models"
	"github.com/nkartsev/artvault/internal/client/services"
)

// shortAddress abbreviates a wallet address for the prompt: first and last
// four characters with an ellipsis in between.
func shortAddress(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:4] + "..." + addr[len(addr)-4:]
}

func welcomeBack(user *models.User) string {
	if user.Username != "" {
		return fmt.Sprintf("Welcome back, %s!", user.Username)
	}
	return "Welcome back!"
}

// renderListing formats the gallery state and artworks as a page of lines.
func renderListing(state services.GalleryState, artworks []models.Artwork) string {
	var b strings.Builder

	if len(artworks) == 0 {
		b.WriteString("No artworks found.\n")
	}
	for _, art := range artworks {
		b.WriteString(renderArtwork(art))
		b.WriteByte('\n')
	}

	scope := make([]string, 0, 3)
	if state.Filter.Valid() {
		scope = append(scope, "filter: "+string(state.Filter))
	}
	if state.Search != "" {
		scope = append(scope, fmt.Sprintf("search: %q", state.Search))
	}
	if state.ArtistID != 0 {
		scope = append(scope, "mine")
	}

	pages := state.Pages
	if pages < 1 {
		pages = 1
	}
	b.WriteString(fmt.Sprintf("Page %d/%d, %d artworks", state.Page, pages, state.Total))
	if len(scope) > 0 {
		b.WriteString(" (" + strings.Join(scope, ", ") + ")")
	}
	return b.String()
}

func renderArtwork(art models.Artwork) string {
	line := fmt.Sprintf("#%d [%s] %s — %d likes, %d views", art.ID, art.FileType, art.Title, art.Likes, art.Views)
	if art.Description != "" {
		line += "\n    " + art.Description
	}
	return line
}

// renderProgress draws a simple inline progress bar. Registered as the
// upload progress listener.
func renderProgress(p int) {
	filled := p / 10
	bar := strings.Repeat("#", filled) + strings.Repeat(".", 10-filled)
	fmt.Printf("\r[%s] %3d%%", bar, p)
	if p >= 100 {
		fmt.Println()
	}
}

func renderProfile(user *models.User) string {
	var b strings.Builder
	b.WriteString("Username: " + user.Username + "\n")
	b.WriteString("Wallet:   " + user.WalletAddress + "\n")
	if user.Bio != "" {
		b.WriteString("Bio:      " + user.Bio + "\n")
	}
	if user.XHandle != "" {
		b.WriteString("X:        " + user.XHandle + "\n")
	}
	if user.DiscordHandle != "" {
		b.WriteString("Discord:  " + user.DiscordHandle + "\n")
	}
	b.WriteString(fmt.Sprintf("Artworks: %d", user.ArtworkCount))
	return b.String()
}
