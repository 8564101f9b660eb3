package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/nkartsev/artvault/internal/client/client"
	"github.com/nkartsev/artvault/internal/client/models"
	"github.com/nkartsev/artvault/internal/logging"
)

// DefaultPerPage is the fixed gallery page size.
const DefaultPerPage = 12

// GalleryState is the query state behind the current listing.
// Invariant: Page stays within [1, max(Pages, 1)]; changing the filter or
// the search term resets Page to 1.
type GalleryState struct {
	Page    int
	PerPage int
	Total   int
	Pages   int

	// Filter narrows the listing to one file kind; the zero value means
	// all kinds.
	Filter models.FileKind

	// Search is the last submitted search term. Keystrokes do not query;
	// only an explicit submission does.
	Search string

	// ArtistID scopes the listing to one artist; 0 means everyone.
	ArtistID int64

	Loading bool
}

// GalleryService coordinates the paginated, filtered, searched artwork
// listing and the like mutation.
//
// Queries issued in quick succession are applied latest-wins: every fetch
// carries a sequence number and stale results are dropped. A failed fetch
// clears the listing instead of keeping stale data.
type GalleryService interface {
	State() GalleryState
	Artworks() []models.Artwork

	Refresh(ctx context.Context) error
	SetFilter(ctx context.Context, kind models.FileKind) error
	Search(ctx context.Context, term string) error
	NextPage(ctx context.Context) error
	PrevPage(ctx context.Context) error
	SetArtist(ctx context.Context, userID int64) error

	// Like is fire-and-forget: on success the matching item adopts the
	// server-reported count; on failure the listing is left unchanged and
	// the error is only logged.
	Like(ctx context.Context, artworkID int64)
}

type galleryService struct {
	client client.Client
	log    logging.Logger

	mu       sync.Mutex
	seq      uint64
	state    GalleryState
	artworks []models.Artwork
}

func NewGalleryService(apiClient client.Client, log logging.Logger) GalleryService {
	return &galleryService{
		client: apiClient,
		log:    log,
		state:  GalleryState{Page: 1, PerPage: DefaultPerPage},
	}
}

func (g *galleryService) State() GalleryState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *galleryService) Artworks() []models.Artwork {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]models.Artwork, len(g.artworks))
	copy(out, g.artworks)
	return out
}

func (g *galleryService) Refresh(ctx context.Context) error {
	g.mu.Lock()
	page := g.state.Page
	g.mu.Unlock()
	return g.fetch(ctx, page)
}

// SetFilter switches the file-kind filter and re-queries from page 1.
// Setting the already-active filter is a no-op.
func (g *galleryService) SetFilter(ctx context.Context, kind models.FileKind) error {
	g.mu.Lock()
	if g.state.Filter == kind {
		g.mu.Unlock()
		return nil
	}
	g.state.Filter = kind
	g.mu.Unlock()
	return g.fetch(ctx, 1)
}

// Search submits a search term and re-queries from page 1. An explicit
// submission always queries, even for an unchanged term.
func (g *galleryService) Search(ctx context.Context, term string) error {
	g.mu.Lock()
	g.state.Search = strings.TrimSpace(term)
	g.mu.Unlock()
	return g.fetch(ctx, 1)
}

// NextPage advances one page. At the last page it is a no-op: out-of-range
// pages are prevented client-side, not just server-side.
func (g *galleryService) NextPage(ctx context.Context) error {
	g.mu.Lock()
	if g.state.Page >= g.state.Pages {
		g.mu.Unlock()
		return nil
	}
	page := g.state.Page + 1
	g.mu.Unlock()
	return g.fetch(ctx, page)
}

// PrevPage goes back one page; a no-op at page 1.
func (g *galleryService) PrevPage(ctx context.Context) error {
	g.mu.Lock()
	if g.state.Page <= 1 {
		g.mu.Unlock()
		return nil
	}
	page := g.state.Page - 1
	g.mu.Unlock()
	return g.fetch(ctx, page)
}

// SetArtist scopes the listing to one artist (0 clears the scope) and
// re-queries from page 1.
func (g *galleryService) SetArtist(ctx context.Context, userID int64) error {
	g.mu.Lock()
	if g.state.ArtistID == userID {
		g.mu.Unlock()
		return nil
	}
	g.state.ArtistID = userID
	g.mu.Unlock()
	return g.fetch(ctx, 1)
}

func (g *galleryService) fetch(ctx context.Context, page int) error {
	g.mu.Lock()
	g.seq++
	seq := g.seq
	g.state.Loading = true
	query := models.ArtworkQuery{
		Page:     page,
		PerPage:  g.state.PerPage,
		FileType: g.state.Filter,
		Search:   g.state.Search,
		UserID:   g.state.ArtistID,
	}
	g.mu.Unlock()

	result, err := g.client.ListArtworks(ctx, query)

	g.mu.Lock()
	defer g.mu.Unlock()
	if seq != g.seq {
		// Superseded by a later query; drop this result.
		return nil
	}
	g.state.Loading = false

	if err != nil {
		g.artworks = nil
		g.state.Total = 0
		g.state.Pages = 0
		g.state.Page = 1
		g.log.Error(ctx, "fetching artworks failed", "page", page, "error", err)
		return fmt.Errorf("fetching artworks: %w", err)
	}

	g.artworks = result.Artworks
	g.state.Total = result.Total
	g.state.Pages = result.Pages
	g.state.Page = result.CurrentPage
	if g.state.Page < 1 {
		g.state.Page = 1
	}
	return nil
}

func (g *galleryService) Like(ctx context.Context, artworkID int64) {
	likes, err := g.client.LikeArtwork(ctx, artworkID)
	if err != nil {
		g.log.Warn(ctx, "like failed", "artwork_id", artworkID, "error", err)
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.artworks {
		if g.artworks[i].ID == artworkID {
			// Adopt the server count instead of incrementing locally, so
			// concurrent likes from other clients don't drift.
			g.artworks[i].Likes = likes
		}
	}
}
