package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/nkartsev/artvault/internal/client/client"
)

// Show fetches and renders one artwork in detail. The server counts the
// fetch as a view.
func (a *App) Show(ctx context.Context, id string) error {
	artworkID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		printlnFn("Usage: show <id>")
		return err
	}

	artwork, err := a.api.GetArtwork(ctx, artworkID)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			printlnFn("No such artwork.")
		} else {
			printlnFn("Could not load the artwork.")
		}
		return err
	}

	printlnFn(renderArtwork(*artwork))
	if artwork.Artist != "" {
		printlnFn(fmt.Sprintf("    by %s, %s", artwork.Artist, artwork.CreatedAt.Format("2006-01-02")))
	}
	if artwork.FileURL != "" {
		printlnFn("    " + artwork.FileURL)
	}
	return nil
}

// Artist fetches a user's profile together with their artworks.
func (a *App) Artist(ctx context.Context, id string) error {
	userID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		printlnFn("Usage: artist <id>")
		return err
	}

	detail, err := a.api.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			printlnFn("No such artist.")
		} else {
			printlnFn("Could not load the artist.")
		}
		return err
	}

	printlnFn(renderProfile(&detail.User))
	for _, art := range detail.Artworks {
		printlnFn(renderArtwork(art))
	}
	return nil
}
