package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"linkpanel/internal/config"
	"linkpanel/internal/ui/gui"
	"linkpanel/internal/ui/tui"

	flags "github.com/jessevdk/go-flags"
)

var BuildVersion = "dev"

func main() {
	rootCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	opts, err := config.ParseOptions()
	if err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	lock, lockedByOther, lockErr := acquireInstanceLock()
	if lockErr != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize single-instance lock:", lockErr)
		os.Exit(2)
	}
	if lockedByOther {
		fmt.Fprintln(os.Stderr, "Link Panel is already running.")
		os.Exit(1)
	}
	defer func() {
		_ = lock.Release()
	}()

	// Headless-tag builds always run the terminal panel; the GUI flag is
	// ignored there.
	if opts.GUI && gui.Available() {
		hideAndDetachConsoleForGUI()
		gui.Run(rootCtx, BuildVersion, opts)
		return
	}
	tui.Run(rootCtx, BuildVersion, opts)
}
