package cli

import (
	"context"
	"strconv"

	"github.com/nkartsev/artvault/internal/client/models"
)

// Gallery shows the listing for everyone, clearing any artist scope first.
func (a *App) Gallery(ctx context.Context) error {
	if a.gallery.State().ArtistID != 0 {
		if err := a.gallery.SetArtist(ctx, 0); err != nil {
			printlnFn("Could not load the gallery.")
			return err
		}
		a.renderGallery()
		return nil
	}
	return a.Refresh(ctx)
}

func (a *App) Search(ctx context.Context, term string) error {
	if err := a.gallery.Search(ctx, term); err != nil {
		printlnFn("Search failed.")
		return err
	}
	a.renderGallery()
	return nil
}

func (a *App) Filter(ctx context.Context, kind string) error {
	var filter models.FileKind
	if kind != "all" {
		parsed, err := models.ParseFileKind(kind)
		if err != nil {
			printlnFn("Usage: filter <image|video|all>")
			return err
		}
		filter = parsed
	}

	if err := a.gallery.SetFilter(ctx, filter); err != nil {
		printlnFn("Could not apply the filter.")
		return err
	}
	a.renderGallery()
	return nil
}

func (a *App) NextPage(ctx context.Context) error {
	if err := a.gallery.NextPage(ctx); err != nil {
		printlnFn("Could not load the next page.")
		return err
	}
	a.renderGallery()
	return nil
}

func (a *App) PrevPage(ctx context.Context) error {
	if err := a.gallery.PrevPage(ctx); err != nil {
		printlnFn("Could not load the previous page.")
		return err
	}
	a.renderGallery()
	return nil
}

func (a *App) Refresh(ctx context.Context) error {
	if err := a.gallery.Refresh(ctx); err != nil {
		printlnFn("Could not load the gallery.")
		return err
	}
	a.renderGallery()
	return nil
}

func (a *App) Like(ctx context.Context, id string) error {
	artworkID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		printlnFn("Usage: like <id>")
		return err
	}
	a.gallery.Like(ctx, artworkID)
	a.renderGallery()
	return nil
}

// Mine scopes the listing to the connected user's artworks.
func (a *App) Mine(ctx context.Context) error {
	if !a.isConnected() {
		printlnFn("Connect a wallet first.")
		return nil
	}
	if err := a.gallery.SetArtist(ctx, a.session.User.ID); err != nil {
		printlnFn("Could not load your artworks.")
		return err
	}
	a.renderGallery()
	return nil
}

func (a *App) renderGallery() {
	printlnFn(renderListing(a.gallery.State(), a.gallery.Artworks()))
}
