package models

import "io"

// FileSource describes a locally selected file before it is staged: its
// name, the declared media type, the byte size, and a way to (re)open the
// content. Open may be called more than once — once for the preview and
// once for the actual upload.
type FileSource struct {
	Name        string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// StagedUpload is an ephemeral, client-only entity: a validated file plus
// the user-entered metadata, held between selection and either submission
// or removal. It has no identity beyond the current editing session.
type StagedUpload struct {
	ID          string
	Source      FileSource
	Kind        FileKind
	Title       string
	Description string

	// Preview holds the raw file bytes for display. Only image kinds get
	// one, and a failed derivation leaves it nil without invalidating the
	// staged item.
	Preview []byte
}
