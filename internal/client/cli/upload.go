package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/nkartsev/artvault/internal/client/models"
	"github.com/nkartsev/artvault/internal/client/services"
)

// Upload stages the file at path, lets the user adjust the title and
// description, and submits it. On failure the staged file is kept so the
// user can retry with "upload" again or the same staged state.
func (a *App) Upload(ctx context.Context, path string) error {
	if !a.isConnected() {
		printlnFn("Connect a wallet first.")
		return nil
	}

	src, err := fileSourceFromPath(path)
	if err != nil {
		printlnFn("Could not read the file:", err)
		return err
	}

	staged, err := a.staging.Stage(ctx, src)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			printlnFn(verr.Message)
		} else {
			printlnFn("Could not stage the file.")
		}
		return err
	}
	printlnFn(fmt.Sprintf("Staged %s (%s, %s)", staged.Source.Name, staged.Kind, formatSize(staged.Source.Size)))

	title, err := GetTextWithDefault(a.reader, "Title", staged.Title, os.Stdout)
	if err != nil {
		return err
	}
	a.staging.SetTitle(title)

	description, err := GetMultiline(a.reader, "Description (optional)", os.Stdout)
	if err != nil {
		return err
	}
	if description != "" {
		a.staging.SetDescription(description)
	}

	artwork, err := a.uploads.Submit(ctx, a.session)
	if err != nil {
		if msg := a.uploads.Err(); msg != "" {
			printlnFn(msg)
		} else {
			// Local precondition errors never reach the driver's state.
			printlnFn(err.Error())
		}
		return err
	}

	printlnFn(fmt.Sprintf("Published #%d %q", artwork.ID, artwork.Title))
	return nil
}

// fileSourceFromPath describes a disk file for staging without reading it;
// the content is opened lazily at preview and upload time.
func fileSourceFromPath(path string) (models.FileSource, error) {
	info, err := os.Stat(path)
	if err != nil {
		return models.FileSource{}, err
	}
	if info.IsDir() {
		return models.FileSource{}, fmt.Errorf("%s is a directory", path)
	}

	return models.FileSource{
		Name:        filepath.Base(path),
		ContentType: contentTypeFor(path),
		Size:        info.Size(),
		Open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}, nil
}

// contentTypeFor derives the MIME type from the file extension. ".mov" is
// not in Go's builtin table, so it is mapped explicitly.
func contentTypeFor(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".mov" {
		return "video/quicktime"
	}
	ct := mime.TypeByExtension(ext)
	// Strip optional parameters like "; charset=utf-8".
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	return ct
}

func formatSize(size int64) string {
	switch {
	case size >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(size)/(1<<20))
	case size >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(size)/(1<<10))
	}
	return fmt.Sprintf("%d B", size)
}
