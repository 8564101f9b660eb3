package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nkartsev/artvault/internal/client/client"
	"github.com/nkartsev/artvault/internal/client/models"
	"github.com/nkartsev/artvault/internal/common"
)

type progressRecorder struct {
	mu     sync.Mutex
	values []int
}

func (r *progressRecorder) record(p int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, p)
}

func (r *progressRecorder) snapshot() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.values...)
}

func newUploadFixture(t *testing.T, fc *fakeClient, opts ...UploadOption) (UploadService, StagingService) {
	t.Helper()
	staging := NewStagingService(nopLogger{})
	base := []UploadOption{
		WithProgressTick(time.Millisecond),
		WithObservationDelay(0),
	}
	svc := NewUploadService(fc, staging, nopLogger{}, append(base, opts...)...)
	return svc, staging
}

func resolvedSession() *models.Session {
	return &models.Session{User: &models.User{ID: 7, Username: "artist1"}}
}

func stageFile(t *testing.T, staging StagingService, name, contentType, content string) {
	t.Helper()
	_, err := staging.Stage(context.Background(), fileSource(name, contentType, int64(len(content)), content))
	require.NoError(t, err)
	awaitPreview(t, staging)
}

func TestUploadService_NothingStaged(t *testing.T) {
	fc := &fakeClient{}
	svc, _ := newUploadFixture(t, fc)

	_, err := svc.Submit(context.Background(), resolvedSession())
	require.ErrorIs(t, err, common.ErrNothingStaged)
	require.Zero(t, fc.CreateCalls)
}

func TestUploadService_EmptyTitleNeverIssuesRequest(t *testing.T) {
	fc := &fakeClient{}
	svc, staging := newUploadFixture(t, fc)

	stageFile(t, staging, "sunset.png", "image/png", "png")
	staging.SetTitle("   \t ")

	_, err := svc.Submit(context.Background(), resolvedSession())
	require.ErrorIs(t, err, common.ErrEmptyTitle)
	require.Zero(t, fc.CreateCalls)
}

func TestUploadService_UnresolvedUserNeverIssuesRequest(t *testing.T) {
	fc := &fakeClient{}
	svc, staging := newUploadFixture(t, fc)

	stageFile(t, staging, "sunset.png", "image/png", "png")

	_, err := svc.Submit(context.Background(), nil)
	require.ErrorIs(t, err, common.ErrUserNotResolved)
	_, err = svc.Submit(context.Background(), &models.Session{})
	require.ErrorIs(t, err, common.ErrUserNotResolved)
	require.Zero(t, fc.CreateCalls)
}

func TestUploadService_SecondSubmitWhileUploadingIsRejected(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	fc := &fakeClient{
		CreateFn: func(models.ArtworkSubmission) (*models.Artwork, error) {
			close(started)
			<-release
			return &models.Artwork{ID: 1, Title: "sunset"}, nil
		},
	}
	svc, staging := newUploadFixture(t, fc)
	stageFile(t, staging, "sunset.png", "image/png", "png")

	done := make(chan error, 1)
	go func() {
		_, err := svc.Submit(context.Background(), resolvedSession())
		done <- err
	}()

	<-started
	require.Equal(t, UploadStateUploading, svc.State())

	_, err := svc.Submit(context.Background(), resolvedSession())
	require.ErrorIs(t, err, common.ErrUploadInFlight)

	close(release)
	require.NoError(t, <-done)
	require.Equal(t, 1, fc.CreateCalls, "no second request may be issued")
}

func TestUploadService_ProgressStaysBelowCompletionUntilResponse(t *testing.T) {
	release := make(chan struct{})
	fc := &fakeClient{
		CreateFn: func(models.ArtworkSubmission) (*models.Artwork, error) {
			<-release
			return &models.Artwork{ID: 1, Title: "sunset"}, nil
		},
	}
	rec := &progressRecorder{}
	svc, staging := newUploadFixture(t, fc, WithProgressListener(rec.record))
	stageFile(t, staging, "sunset.png", "image/png", "png")

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = svc.Submit(context.Background(), resolvedSession())
	}()

	// Let the ramp run all the way to its ceiling.
	require.Eventually(t, func() bool { return svc.Progress() == 90 },
		2*time.Second, time.Millisecond)

	for _, p := range rec.snapshot() {
		require.LessOrEqual(t, p, 90, "progress must not complete before the response")
	}

	close(release)
	<-done

	values := rec.snapshot()
	require.Contains(t, values, 100, "progress completes once the response is known")
	for i := 1; i < len(values); i++ {
		require.GreaterOrEqual(t, values[i], values[i-1], "progress must be monotonic")
	}
}

func TestUploadService_ProgressCompletesOnFailureToo(t *testing.T) {
	fc := &fakeClient{CreateErr: errors.New("boom")}
	rec := &progressRecorder{}
	svc, staging := newUploadFixture(t, fc, WithProgressListener(rec.record))
	stageFile(t, staging, "sunset.png", "image/png", "png")

	_, err := svc.Submit(context.Background(), resolvedSession())
	require.Error(t, err)

	values := rec.snapshot()
	require.NotEmpty(t, values)
	require.Equal(t, 100, values[len(values)-1])
}

func TestUploadService_FailurePreservesStagedFileAndReportsServerMessage(t *testing.T) {
	fc := &fakeClient{
		CreateErr: &client.ServerError{StatusCode: 500, Message: "Failed to upload to storage"},
	}
	svc, staging := newUploadFixture(t, fc)
	stageFile(t, staging, "sunset.png", "image/png", "png")
	staging.SetDescription("evening light")

	_, err := svc.Submit(context.Background(), resolvedSession())
	require.Error(t, err)
	require.Equal(t, UploadStateError, svc.State())
	require.Equal(t, "Failed to upload to storage", svc.Err())

	// Retry without re-selecting the file or re-entering metadata.
	current := staging.Current()
	require.NotNil(t, current)
	require.Equal(t, "sunset.png", current.Source.Name)
	require.Equal(t, "evening light", current.Description)
}

func TestUploadService_NetworkFailureUsesGenericMessage(t *testing.T) {
	fc := &fakeClient{CreateErr: errors.New("connection refused")}
	svc, staging := newUploadFixture(t, fc)
	stageFile(t, staging, "sunset.png", "image/png", "png")

	_, err := svc.Submit(context.Background(), resolvedSession())
	require.Error(t, err)
	require.Equal(t, genericUploadError, svc.Err())
}

func TestUploadService_RetryAfterErrorIsAllowed(t *testing.T) {
	fc := &fakeClient{CreateErr: errors.New("boom")}
	svc, staging := newUploadFixture(t, fc)
	stageFile(t, staging, "sunset.png", "image/png", "png")

	_, err := svc.Submit(context.Background(), resolvedSession())
	require.Error(t, err)

	fc.CreateErr = nil
	fc.CreateRet = &models.Artwork{ID: 3, Title: "sunset", FileType: models.FileKindImage}

	artwork, err := svc.Submit(context.Background(), resolvedSession())
	require.NoError(t, err)
	require.Equal(t, int64(3), artwork.ID)
	require.Equal(t, 2, fc.CreateCalls)
}

func TestUploadService_SuccessClearsStagedStateAndReturnsArtwork(t *testing.T) {
	fc := &fakeClient{
		CreateRet: &models.Artwork{ID: 9, Title: "sunset", FileType: models.FileKindImage},
	}
	svc, staging := newUploadFixture(t, fc)
	stageFile(t, staging, "sunset.png", "image/png", "png-bytes")

	artwork, err := svc.Submit(context.Background(), resolvedSession())
	require.NoError(t, err)
	require.Equal(t, int64(9), artwork.ID)
	require.Equal(t, models.FileKindImage, artwork.FileType)

	require.Nil(t, staging.Current(), "staged state is discarded after success")
	require.Equal(t, UploadStateIdle, svc.State())
	require.Zero(t, svc.Progress())

	require.Equal(t, "sunset", fc.LastSubmission.Title)
	require.Equal(t, int64(7), fc.LastSubmission.UserID)
	require.Equal(t, "image/png", fc.LastSubmission.ContentType)
	require.Equal(t, []byte("png-bytes"), fc.LastUploadData)
}
