// Package services contains the application services of the artvault
// client: wallet session resolution, file staging, the upload lifecycle,
// profile editing, and the gallery query coordinator. Each service fronts
// the API client and owns the state its view renders.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/nkartsev/artvault/internal/client/client"
	"github.com/nkartsev/artvault/internal/client/models"
	"github.com/nkartsev/artvault/internal/client/repositories/settings"
	"github.com/nkartsev/artvault/internal/common"
	"github.com/nkartsev/artvault/internal/logging"
)

// SessionService maps a connected wallet to a server-backed identity.
//
// Contract:
//   - Resolve issues an idempotent connect-or-create request; the server
//     decides whether the address already has a User.
//   - A failed resolution leaves the caller without a User; views must
//     treat that as "not ready", never as an empty identity.
//   - Nothing is cached across addresses: every call re-resolves.
type SessionService interface {
	Resolve(ctx context.Context, walletAddress string) (*models.Session, error)
	LastWalletAddress(ctx context.Context) string
}

type sessionService struct {
	client client.Client
	store  settings.Repository
	log    logging.Logger
}

func NewSessionService(client client.Client, store settings.Repository, log logging.Logger) SessionService {
	return &sessionService{client: client, store: store, log: log}
}

func (s *sessionService) Resolve(ctx context.Context, walletAddress string) (*models.Session, error) {
	addr := strings.TrimSpace(walletAddress)
	if addr == "" {
		return nil, common.ErrNoWalletAddress
	}

	result, err := s.client.ConnectWallet(ctx, addr)
	if err != nil {
		return nil, fmt.Errorf("connecting wallet: %w", err)
	}

	// Remembering the address is a convenience, not part of the session
	// contract; failures only get logged.
	if err := s.store.Set(ctx, settings.KeyLastWalletAddress, []byte(addr)); err != nil {
		s.log.Warn(ctx, "failed to remember wallet address", "error", err)
	}

	return &models.Session{User: result.User, IsNewUser: result.IsNewUser}, nil
}

// LastWalletAddress returns the most recently resolved address, or ""
// when none was stored.
func (s *sessionService) LastWalletAddress(ctx context.Context) string {
	value, err := s.store.Get(ctx, settings.KeyLastWalletAddress)
	if err != nil {
		s.log.Warn(ctx, "failed to read last wallet address", "error", err)
		return ""
	}
	return string(value)
}
