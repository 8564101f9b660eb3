package cli

import (
	"context"
	"errors"
	"os"

	"github.com/nkartsev/artvault/internal/client/client"
	"github.com/nkartsev/artvault/internal/common"
)

// Connect prompts for a wallet address and resolves it to a server-backed
// identity. A first-time wallet (or one without a username) is walked
// through profile setup right away.
func (a *App) Connect(ctx context.Context) error {
	def := a.sessions.LastWalletAddress(ctx)
	addr, err := GetTextWithDefault(a.reader, "Wallet address", def, os.Stdout)
	if err != nil {
		return err
	}

	sess, err := a.sessions.Resolve(ctx, addr)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNoWalletAddress):
			printlnFn("Enter a wallet address to connect.")
		default:
			if msg, ok := client.ServerMessage(err); ok {
				printlnFn(msg)
			} else {
				printlnFn("Could not connect. Please check the address and try again.")
			}
		}
		return err
	}
	a.session = sess

	if sess.IsNewUser {
		printlnFn("Welcome! This wallet is new here.")
	} else {
		printlnFn(welcomeBack(sess.User))
	}

	if sess.NeedsSetup() {
		printlnFn("Let's set up your profile.")
		return a.Profile(ctx)
	}
	return nil
}
