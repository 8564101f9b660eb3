package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/nkartsev/artvault/internal/client/client"
	"github.com/nkartsev/artvault/internal/client/models"
	"github.com/nkartsev/artvault/internal/common"
	"github.com/nkartsev/artvault/internal/logging"
)

// UploadState is the state machine of one submission:
// idle → uploading → (success | error). Success falls back to idle after
// the observation delay; error stays until the next submit.
type UploadState string

const (
	UploadStateIdle      UploadState = "idle"
	UploadStateUploading UploadState = "uploading"
	UploadStateSuccess   UploadState = "success"
	UploadStateError     UploadState = "error"
)

const genericUploadError = "Upload failed. Please check your connection and try again."

// UploadService drives the submission of the staged file to the API.
//
// Progress semantics: while the request is outstanding the reported
// progress climbs in fixed steps up to a ceiling strictly below 100; it
// reaches 100 only once the response is known, for both outcomes. The
// ramp is an optimistic indicator over a single atomic request, not a
// byte-transfer measurement.
type UploadService interface {
	Submit(ctx context.Context, session *models.Session) (*models.Artwork, error)
	State() UploadState
	Progress() int
	Err() string
}

// UploadOption tunes the driver. The defaults match the documented
// behavior (200ms tick, +10 steps, ceiling 90, 2s observation delay).
type UploadOption func(*uploadService)

func WithProgressTick(d time.Duration) UploadOption {
	return func(u *uploadService) { u.tick = d }
}

func WithObservationDelay(d time.Duration) UploadOption {
	return func(u *uploadService) { u.observe = d }
}

// WithProgressListener registers a callback invoked with every progress
// value, in order.
func WithProgressListener(fn func(int)) UploadOption {
	return func(u *uploadService) { u.listener = fn }
}

type uploadService struct {
	client  client.Client
	staging StagingService
	log     logging.Logger

	tick     time.Duration
	step     int
	ceiling  int
	observe  time.Duration
	listener func(int)

	mu       sync.Mutex
	state    UploadState
	progress int
	errMsg   string
}

func NewUploadService(apiClient client.Client, staging StagingService, log logging.Logger, opts ...UploadOption) UploadService {
	u := &uploadService{
		client:  apiClient,
		staging: staging,
		log:     log,
		tick:    200 * time.Millisecond,
		step:    10,
		ceiling: 90,
		observe: 2 * time.Second,
		state:   UploadStateIdle,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Submit checks the preconditions, runs the multipart upload, and drives
// the state machine. Preconditions are checked before any network call;
// a violation is a local error. A second submit while one is outstanding
// is rejected.
func (u *uploadService) Submit(ctx context.Context, session *models.Session) (*models.Artwork, error) {
	staged := u.staging.Current()

	u.mu.Lock()
	if u.state == UploadStateUploading {
		u.mu.Unlock()
		return nil, common.ErrUploadInFlight
	}
	if staged == nil {
		u.mu.Unlock()
		return nil, common.ErrNothingStaged
	}
	title := strings.TrimSpace(staged.Title)
	if title == "" {
		u.mu.Unlock()
		return nil, common.ErrEmptyTitle
	}
	if session == nil || session.User == nil {
		u.mu.Unlock()
		return nil, common.ErrUserNotResolved
	}
	u.state = UploadStateUploading
	u.progress = 0
	u.errMsg = ""
	u.mu.Unlock()
	u.notify(0)

	artwork, err := u.run(ctx, session, staged, title)

	// The bar completes before the status resolves, whatever the outcome.
	u.setProgress(100)

	if err != nil {
		msg := genericUploadError
		if m, ok := client.ServerMessage(err); ok {
			msg = m
		}
		u.mu.Lock()
		u.state = UploadStateError
		u.errMsg = msg
		u.mu.Unlock()
		u.log.Error(ctx, "upload failed", "file", staged.Source.Name, "error", err)
		// The staged item stays put so the user can retry without
		// re-selecting the file.
		return nil, fmt.Errorf("uploading artwork: %w", err)
	}

	u.mu.Lock()
	u.state = UploadStateSuccess
	u.mu.Unlock()
	u.log.Info(ctx, "upload succeeded", "artwork_id", artwork.ID, "title", artwork.Title)

	// Let the user see the success state before everything resets.
	time.Sleep(u.observe)

	u.staging.Remove()
	u.mu.Lock()
	u.state = UploadStateIdle
	u.progress = 0
	u.mu.Unlock()

	return artwork, nil
}

// run performs the request while a ticker goroutine advances the ramp.
func (u *uploadService) run(ctx context.Context, session *models.Session, staged *models.StagedUpload, title string) (*models.Artwork, error) {
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(u.tick)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if !u.advance() {
					return
				}
			case <-stop:
				return
			}
		}
	}()
	defer func() {
		close(stop)
		wg.Wait()
	}()

	file, err := staged.Source.Open()
	if err != nil {
		return nil, fmt.Errorf("opening staged file: %w", err)
	}
	defer file.Close()

	return u.client.CreateArtwork(ctx, models.ArtworkSubmission{
		Title:       title,
		Description: strings.TrimSpace(staged.Description),
		UserID:      session.User.ID,
		FileName:    staged.Source.Name,
		ContentType: staged.Source.ContentType,
		Data:        file,
	})
}

// advance bumps the ramp by one step, capped at the ceiling. Returns
// false once the ceiling is reached.
func (u *uploadService) advance() bool {
	u.mu.Lock()
	if u.progress >= u.ceiling {
		u.mu.Unlock()
		return false
	}
	next := u.progress + u.step
	if next > u.ceiling {
		next = u.ceiling
	}
	u.progress = next
	u.mu.Unlock()
	u.notify(next)
	return next < u.ceiling
}

func (u *uploadService) setProgress(p int) {
	u.mu.Lock()
	if p <= u.progress {
		u.mu.Unlock()
		return
	}
	u.progress = p
	u.mu.Unlock()
	u.notify(p)
}

func (u *uploadService) notify(p int) {
	if u.listener != nil {
		u.listener(p)
	}
}

func (u *uploadService) State() UploadState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state
}

func (u *uploadService) Progress() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.progress
}

func (u *uploadService) Err() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.errMsg
}
