package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/nkartsev/artvault/internal/client/models"
	"github.com/nkartsev/artvault/internal/filex"
	"github.com/nkartsev/artvault/internal/logging"
)

// MaxFileSize is the exclusive upper bound on staged files: a file of
// exactly 50 MiB is rejected.
const MaxFileSize = 50 * 1024 * 1024

// allowedTypes maps the accepted MIME types to their kind. "video/mov" is
// not a registered type, but browsers and the original front end send it
// for QuickTime files, so it is accepted as an alias.
var allowedTypes = map[string]models.FileKind{
	"image/jpeg":      models.FileKindImage,
	"image/png":       models.FileKindImage,
	"image/gif":       models.FileKindImage,
	"image/webp":      models.FileKindImage,
	"video/mp4":       models.FileKindVideo,
	"video/webm":      models.FileKindVideo,
	"video/quicktime": models.FileKindVideo,
	"video/mov":       models.FileKindVideo,
}

// Reasons of staging validation failures.
const (
	ReasonUnsupportedType = "unsupported_type"
	ReasonTooLarge        = "too_large"
)

// ValidationError is a local, pre-network rejection of a selected file.
type ValidationError struct {
	Reason  string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StagingService validates a selected file and holds the staged upload
// candidate plus its user-entered metadata between selection and either
// submission or removal.
//
// Title and description outlive a re-selection (picking a different file
// keeps the text already typed); Remove resets everything.
type StagingService interface {
	Stage(ctx context.Context, src models.FileSource) (*models.StagedUpload, error)
	Current() *models.StagedUpload
	SetTitle(title string)
	SetDescription(description string)
	Remove()

	// PreviewReady returns a channel closed once the preview derivation
	// for the current staged item has finished (successfully or not).
	PreviewReady() <-chan struct{}
}

type stagingService struct {
	log logging.Logger

	mu          sync.Mutex
	current     *models.StagedUpload
	title       string
	description string
	previewDone chan struct{}
}

func NewStagingService(log logging.Logger) StagingService {
	done := make(chan struct{})
	close(done)
	return &stagingService{log: log, previewDone: done}
}

// Stage validates src and, on acceptance, replaces the current staged
// item. Rejection leaves any previously staged file untouched.
func (s *stagingService) Stage(ctx context.Context, src models.FileSource) (*models.StagedUpload, error) {
	kind, ok := allowedTypes[strings.ToLower(src.ContentType)]
	if !ok {
		return nil, &ValidationError{
			Reason:  ReasonUnsupportedType,
			Message: fmt.Sprintf("unsupported file type %q: use JPEG, PNG, GIF, WebP, MP4, WebM or MOV", src.ContentType),
		}
	}
	if src.Size >= MaxFileSize {
		return nil, &ValidationError{
			Reason:  ReasonTooLarge,
			Message: "file size must be less than 50 MiB",
		}
	}

	staged := &models.StagedUpload{
		ID:     uuid.NewString(),
		Source: src,
		Kind:   kind,
	}

	s.mu.Lock()
	s.current = staged
	// One-time default: only fill the title when the field is empty.
	if s.title == "" {
		s.title = filex.TitleFromFileName(src.Name)
	}
	done := make(chan struct{})
	s.previewDone = done
	s.mu.Unlock()

	if kind == models.FileKindImage {
		go s.derivePreview(ctx, staged, done)
	} else {
		close(done)
	}

	return s.Current(), nil
}

// derivePreview reads the file into memory for display. Failures are
// non-fatal: the staged item stays valid without a preview.
func (s *stagingService) derivePreview(ctx context.Context, staged *models.StagedUpload, done chan struct{}) {
	defer close(done)

	data, err := readAll(staged.Source)
	if err != nil {
		s.log.Warn(ctx, "preview derivation failed", "file", staged.Source.Name, "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// The staged item may have been replaced or removed meanwhile.
	if s.current != nil && s.current.ID == staged.ID {
		s.current.Preview = data
	}
}

func readAll(src models.FileSource) ([]byte, error) {
	f, err := src.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// Current returns a snapshot of the staged item with the current title and
// description filled in, or nil when nothing is staged.
func (s *stagingService) Current() *models.StagedUpload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// snapshot assumes s.mu is held.
func (s *stagingService) snapshot() *models.StagedUpload {
	if s.current == nil {
		return nil
	}
	copied := *s.current
	copied.Title = s.title
	copied.Description = s.description
	return &copied
}

func (s *stagingService) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.title = title
}

func (s *stagingService) SetDescription(description string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.description = description
}

// Remove clears the staged item, its preview, and the entered metadata.
// A full reset, not a partial undo.
func (s *stagingService) Remove() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.title = ""
	s.description = ""
}

func (s *stagingService) PreviewReady() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.previewDone
}
