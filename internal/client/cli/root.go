package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/nkartsev/artvault/internal/client/repositories/settings"
)

const welcomeBanner = `Welcome to the artvault gallery.
Browse freely; connect a wallet to publish artworks and build a profile.
Type 'help' for commands.`

func (a *App) getStatus() string {
	s := ""
	if a.isConnected() {
		if name := a.session.User.Username; name != "" {
			s = name
		} else {
			s = shortAddress(a.session.User.WalletAddress)
		}
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) Root(ctx context.Context) {
	a.showWelcome(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// showWelcome prints the first-visit banner unless it was dismissed on an
// earlier run. Typing 'hide' persists the dismissal.
func (a *App) showWelcome(ctx context.Context) {
	dismissed, err := a.settings.GetBool(ctx, settings.KeyWelcomeDismissed)
	if err != nil {
		a.log.Warn(ctx, "failed to read welcome flag", "error", err)
	}
	if dismissed {
		return
	}

	printlnFn(welcomeBanner)
	answer, err := GetSimpleText(a.reader, "Press Enter to continue, or type 'hide' to skip this next time", os.Stdout)
	if err != nil {
		return
	}
	if answer == "hide" {
		if err := a.settings.SetBool(ctx, settings.KeyWelcomeDismissed, true); err != nil {
			a.log.Warn(ctx, "failed to persist welcome flag", "error", err)
		}
	}
}
