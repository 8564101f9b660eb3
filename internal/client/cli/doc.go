// Package cli provides the interactive artvault command-line client.
//
// It wires configuration, the client-local settings store, the gallery API
// client, and an interactive REPL for browsing and publishing artworks.
// Typical flow: show the welcome banner, connect a wallet, browse the
// gallery, and upload files.
//
// Key features:
//   - Connect a wallet (first visit walks through profile setup)
//   - Browse, search, filter and paginate the gallery
//   - Like artworks
//   - Stage and upload image/video files with a progress indicator
//   - Edit the profile with live username availability checks
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
