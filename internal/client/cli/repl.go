package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isConnected() bool
	Connect(ctx context.Context) error
	Gallery(ctx context.Context) error
	Search(ctx context.Context, term string) error
	Filter(ctx context.Context, kind string) error
	NextPage(ctx context.Context) error
	PrevPage(ctx context.Context) error
	Refresh(ctx context.Context) error
	Like(ctx context.Context, id string) error
	Show(ctx context.Context, id string) error
	Artist(ctx context.Context, id string) error
	Upload(ctx context.Context, path string) error
	Profile(ctx context.Context) error
	Mine(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the artvault CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always available:
//	  - help                       — show available commands
//	  - connect                    — connect a wallet
//	  - gallery | g                — show the gallery listing
//	  - search <term>              — search titles and descriptions
//	  - filter <image|video|all>   — narrow the listing by file kind
//	  - next | n, prev | p         — paginate
//	  - refresh                    — re-query the current page
//	  - like <id>                  — like an artwork
//	  - show <id>                  — show one artwork in detail
//	  - artist <id>                — show an artist and their artworks
//	  - exit | quit                — leave the program
//
//	After connect:
//	  - upload <path>              — stage and publish a file
//	  - profile                    — view and edit the profile
//	  - mine                       — show only your own artworks
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("artvault %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isConnected() {
				printlnFn("Available commands: (g)allery, search <term>, filter <image|video|all>, (n)ext, (p)rev, refresh, like <id>, show <id>, artist <id>, upload <path>, profile, mine, exit")
			} else {
				printlnFn("Available commands: connect, (g)allery, search <term>, filter <image|video|all>, (n)ext, (p)rev, refresh, like <id>, show <id>, artist <id>, exit")
			}

		case "connect":
			_ = a.Connect(ctx)

		case "g", "gallery":
			_ = a.Gallery(ctx)

		case "search":
			if len(args) == 0 {
				printlnFn("Usage: search <term>")
				continue
			}
			_ = a.Search(ctx, strings.Join(args, " "))

		case "filter":
			if len(args) == 0 {
				printlnFn("Usage: filter <image|video|all>")
				continue
			}
			_ = a.Filter(ctx, args[0])

		case "n", "next":
			_ = a.NextPage(ctx)

		case "p", "prev":
			_ = a.PrevPage(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "like":
			if len(args) == 0 {
				printlnFn("Usage: like <id>")
				continue
			}
			_ = a.Like(ctx, args[0])

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <id>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "artist":
			if len(args) == 0 {
				printlnFn("Usage: artist <id>")
				continue
			}
			_ = a.Artist(ctx, args[0])

		case "upload":
			if len(args) == 0 {
				printlnFn("Usage: upload <path>")
				continue
			}
			_ = a.Upload(ctx, args[0])

		case "profile":
			_ = a.Profile(ctx)

		case "mine":
			_ = a.Mine(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
