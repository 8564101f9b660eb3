package models

import (
	"fmt"
	"io"
	"time"
)

// FileKind classifies an artwork file. It is a closed variant: only the
// two constants below are valid, and anything else must be rejected at the
// boundary instead of being compared as a free-form string.
type FileKind string

const (
	FileKindImage FileKind = "image"
	FileKindVideo FileKind = "video"
)

// ParseFileKind validates a wire value into a FileKind.
func ParseFileKind(s string) (FileKind, error) {
	switch FileKind(s) {
	case FileKindImage, FileKindVideo:
		return FileKind(s), nil
	}
	return "", fmt.Errorf("unknown file kind %q", s)
}

// Valid reports whether k is one of the known kinds.
func (k FileKind) Valid() bool {
	return k == FileKindImage || k == FileKindVideo
}

// Artwork is a gallery record as served by the API. The file itself lives
// on the permanent-storage network; FileURL points at it.
type Artwork struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Artist       string    `json:"artist"`
	FileType     FileKind  `json:"file_type"`
	FileURL      string    `json:"file_url"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	Likes        int       `json:"likes"`
	Views        int       `json:"views"`
	CreatedAt    time.Time `json:"created_at"`
}

// ArtworkPage is one page of a gallery listing.
type ArtworkPage struct {
	Artworks    []Artwork `json:"artworks"`
	Total       int       `json:"total"`
	Pages       int       `json:"pages"`
	CurrentPage int       `json:"current_page"`
	PerPage     int       `json:"per_page"`
}

// ArtworkQuery is the parameter set of one listing request. Zero values
// mean "omit the parameter": an empty FileType matches all kinds, an empty
// Search matches everything, UserID 0 lists all artists.
type ArtworkQuery struct {
	Page     int
	PerPage  int
	FileType FileKind
	Search   string
	UserID   int64
}

// ArtworkSubmission is the payload of one multipart upload.
type ArtworkSubmission struct {
	Title       string
	Description string
	UserID      int64
	FileName    string
	ContentType string
	Data        io.Reader
}
