package services

import (
	"context"
	"io"
	"sync"

	"github.com/nkartsev/artvault/internal/client/models"
	"github.com/nkartsev/artvault/internal/logging"
)

// nopLogger satisfies logging.Logger for tests that don't inspect output.
type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (nopLogger) With(...any) logging.Logger            { return nopLogger{} }

// fakeClient implements client.Client for unit tests. Per-method Fn hooks
// take precedence over the Ret/Err fields, which lets tests block or
// reorder individual calls.
type fakeClient struct {
	mu sync.Mutex

	ConnectFn       func(addr string) (*models.ConnectResult, error)
	ConnectRet      *models.ConnectResult
	ConnectErr      error
	ConnectCalls    int
	LastConnectAddr string

	UpdateProfileRet   *models.User
	UpdateProfileErr   error
	UpdateProfileCalls int
	LastProfileUserID  int64
	LastProfileUpdate  models.ProfileUpdate

	CheckFn       func(username string) (bool, error)
	CheckRet      bool
	CheckErr      error
	CheckCalls    int
	LastChecked   string
	CheckedOrder  []string

	ListFn      func(q models.ArtworkQuery) (*models.ArtworkPage, error)
	ListRet     *models.ArtworkPage
	ListErr     error
	ListCalls   int
	LastQuery   models.ArtworkQuery
	ListQueries []models.ArtworkQuery

	CreateFn       func(sub models.ArtworkSubmission) (*models.Artwork, error)
	CreateRet      *models.Artwork
	CreateErr      error
	CreateCalls    int
	LastSubmission models.ArtworkSubmission
	LastUploadData []byte

	LikeRet    int
	LikeErr    error
	LikeCalls  int
	LastLikeID int64

	GetArtworkRet *models.Artwork
	GetArtworkErr error

	GetUserRet *models.UserDetail
	GetUserErr error
}

func (f *fakeClient) ConnectWallet(ctx context.Context, walletAddress string) (*models.ConnectResult, error) {
	f.mu.Lock()
	f.ConnectCalls++
	f.LastConnectAddr = walletAddress
	fn := f.ConnectFn
	f.mu.Unlock()
	if fn != nil {
		return fn(walletAddress)
	}
	return f.ConnectRet, f.ConnectErr
}

func (f *fakeClient) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (*models.User, error) {
	f.mu.Lock()
	f.UpdateProfileCalls++
	f.LastProfileUserID = userID
	f.LastProfileUpdate = update
	f.mu.Unlock()
	return f.UpdateProfileRet, f.UpdateProfileErr
}

func (f *fakeClient) CheckUsername(ctx context.Context, username string) (bool, error) {
	f.mu.Lock()
	f.CheckCalls++
	f.LastChecked = username
	f.CheckedOrder = append(f.CheckedOrder, username)
	fn := f.CheckFn
	f.mu.Unlock()
	if fn != nil {
		return fn(username)
	}
	return f.CheckRet, f.CheckErr
}

func (f *fakeClient) ListArtworks(ctx context.Context, query models.ArtworkQuery) (*models.ArtworkPage, error) {
	f.mu.Lock()
	f.ListCalls++
	f.LastQuery = query
	f.ListQueries = append(f.ListQueries, query)
	fn := f.ListFn
	f.mu.Unlock()
	if fn != nil {
		return fn(query)
	}
	return f.ListRet, f.ListErr
}

func (f *fakeClient) CreateArtwork(ctx context.Context, submission models.ArtworkSubmission) (*models.Artwork, error) {
	data, _ := io.ReadAll(submission.Data)
	f.mu.Lock()
	f.CreateCalls++
	f.LastSubmission = submission
	f.LastUploadData = data
	fn := f.CreateFn
	f.mu.Unlock()
	if fn != nil {
		return fn(submission)
	}
	return f.CreateRet, f.CreateErr
}

func (f *fakeClient) LikeArtwork(ctx context.Context, artworkID int64) (int, error) {
	f.mu.Lock()
	f.LikeCalls++
	f.LastLikeID = artworkID
	f.mu.Unlock()
	return f.LikeRet, f.LikeErr
}

func (f *fakeClient) GetArtwork(ctx context.Context, artworkID int64) (*models.Artwork, error) {
	return f.GetArtworkRet, f.GetArtworkErr
}

func (f *fakeClient) GetUser(ctx context.Context, userID int64) (*models.UserDetail, error) {
	return f.GetUserRet, f.GetUserErr
}

// fakeSettings is an in-memory settings.Repository.
type fakeSettings struct {
	mu     sync.Mutex
	values map[string][]byte
	SetErr error
	GetErr error
}

func newFakeSettings() *fakeSettings {
	return &fakeSettings{values: map[string][]byte{}}
}

func (f *fakeSettings) Get(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	return f.values[key], nil
}

func (f *fakeSettings) Set(ctx context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SetErr != nil {
		return f.SetErr
	}
	f.values[key] = append([]byte(nil), value...)
	return nil
}

func (f *fakeSettings) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, key)
	return nil
}

func (f *fakeSettings) GetBool(ctx context.Context, key string) (bool, error) {
	v, err := f.Get(ctx, key)
	return string(v) == "true", err
}

func (f *fakeSettings) SetBool(ctx context.Context, key string, value bool) error {
	if value {
		return f.Set(ctx, key, []byte("true"))
	}
	return f.Set(ctx, key, []byte("false"))
}
