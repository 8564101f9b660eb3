// Package client provides the API client for the gallery backend. The
// Client interface is the seam the services depend on; HTTPClient is the
// real implementation over the JSON/multipart HTTP API.
package client

import (
	"context"

	"github.com/nkartsev/artvault/internal/client/models"
)

type Client interface {
	ConnectWallet(ctx context.Context, walletAddress string) (*models.ConnectResult, error)
	UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (*models.User, error)
	CheckUsername(ctx context.Context, username string) (bool, error)
	ListArtworks(ctx context.Context, query models.ArtworkQuery) (*models.ArtworkPage, error)
	CreateArtwork(ctx context.Context, submission models.ArtworkSubmission) (*models.Artwork, error)
	LikeArtwork(ctx context.Context, artworkID int64) (int, error)
	GetArtwork(ctx context.Context, artworkID int64) (*models.Artwork, error)
	GetUser(ctx context.Context, userID int64) (*models.UserDetail, error)
}
