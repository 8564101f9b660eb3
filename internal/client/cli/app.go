package cli

import (
	"bufio"
	"context"
	"os"
	"path/filepath"

	"github.com/nkartsev/artvault/internal/client/client"
	"github.com/nkartsev/artvault/internal/client/config"
	"github.com/nkartsev/artvault/internal/client/models"
	"github.com/nkartsev/artvault/internal/client/repositories/settings"
	"github.com/nkartsev/artvault/internal/client/services"
	"github.com/nkartsev/artvault/internal/filex"
	"github.com/nkartsev/artvault/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	settings settings.Repository
	api      client.Client

	sessions services.SessionService
	staging  services.StagingService
	uploads  services.UploadService
	profile  services.ProfileService
	gallery  services.GalleryService

	session *models.Session
	reader  *bufio.Reader
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {

	ctx := context.Background()

	if _, err := filex.EnsureDir(c.DataDir); err != nil {
		return nil, err
	}

	repos, err := client.InitDatabase(ctx, filepath.Join(c.DataDir, "artvault.db"))
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient := client.NewHTTPClient(c.APIBaseURL)

	staging := services.NewStagingService(log)

	return &App{
		config:   c,
		log:      log,
		settings: repos.Settings,
		api:      apiClient,
		sessions: services.NewSessionService(apiClient, repos.Settings, log),
		staging:  staging,
		uploads: services.NewUploadService(apiClient, staging, log,
			services.WithProgressTick(c.ProgressTick),
			services.WithObservationDelay(c.ObservationDelay),
			services.WithProgressListener(renderProgress),
		),
		profile: services.NewProfileService(apiClient, log),
		gallery: services.NewGalleryService(apiClient, log),
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isConnected() bool {
	return a.session != nil && a.session.User != nil
}

// currentUsername returns the resolved user's name, or "" before connect.
func (a *App) currentUsername() string {
	if !a.isConnected() {
		return ""
	}
	return a.session.User.Username
}
