package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/nkartsev/artvault/internal/client/client"
	"github.com/nkartsev/artvault/internal/client/models"
	"github.com/nkartsev/artvault/internal/common"
	"github.com/nkartsev/artvault/internal/logging"
)

// Verdict is the availability state of a proposed username.
type Verdict string

const (
	VerdictUnknown   Verdict = "unknown"
	VerdictChecking  Verdict = "checking"
	VerdictAvailable Verdict = "available"
	VerdictTaken     Verdict = "taken"
)

const minUsernameLen = 3

// ProfileService validates a proposed username against the API and saves
// profile edits.
//
// Availability checks carry a sequence token: when checks overlap, only
// the result of the most recently issued one is applied, so a slow
// response for an earlier candidate can never overwrite the verdict of a
// later one.
type ProfileService interface {
	// CheckUsername issues one availability check for candidate. A
	// candidate equal to current, or shorter than 3 characters, resets the
	// verdict to unknown without a request.
	CheckUsername(ctx context.Context, current, candidate string) Verdict

	// Verdict returns the currently applied verdict.
	Verdict() Verdict

	// Save submits the profile update. It is permitted only when the
	// username is unchanged or the last verdict is available.
	Save(ctx context.Context, userID int64, currentUsername string, update models.ProfileUpdate) (*models.User, error)
}

type profileService struct {
	client client.Client
	log    logging.Logger

	mu      sync.Mutex
	seq     uint64
	verdict Verdict
}

func NewProfileService(apiClient client.Client, log logging.Logger) ProfileService {
	return &profileService{client: apiClient, log: log, verdict: VerdictUnknown}
}

func (p *profileService) CheckUsername(ctx context.Context, current, candidate string) Verdict {
	candidate = strings.TrimSpace(candidate)

	p.mu.Lock()
	p.seq++
	seq := p.seq

	if candidate == current || utf8.RuneCountInString(candidate) < minUsernameLen {
		p.verdict = VerdictUnknown
		p.mu.Unlock()
		return VerdictUnknown
	}
	p.verdict = VerdictChecking
	p.mu.Unlock()

	available, err := p.client.CheckUsername(ctx, candidate)

	p.mu.Lock()
	defer p.mu.Unlock()
	if seq != p.seq {
		// A later check superseded this one; its result stands.
		return p.verdict
	}
	switch {
	case err != nil:
		p.log.Warn(ctx, "username check failed", "username", candidate, "error", err)
		p.verdict = VerdictUnknown
	case available:
		p.verdict = VerdictAvailable
	default:
		p.verdict = VerdictTaken
	}
	return p.verdict
}

func (p *profileService) Verdict() Verdict {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.verdict
}

func (p *profileService) Save(ctx context.Context, userID int64, currentUsername string, update models.ProfileUpdate) (*models.User, error) {
	name := strings.TrimSpace(update.Username)
	if utf8.RuneCountInString(name) < minUsernameLen {
		return nil, common.ErrUsernameTooShort
	}

	if name != currentUsername {
		switch p.Verdict() {
		case VerdictAvailable:
		case VerdictTaken:
			return nil, common.ErrUsernameTaken
		default:
			return nil, common.ErrUsernameNotChecked
		}
	}

	update.Username = name
	user, err := p.client.UpdateProfile(ctx, userID, update)
	if err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}
	return user, nil
}
