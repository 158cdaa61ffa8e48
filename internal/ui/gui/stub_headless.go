//go:build headless

package gui

import (
	"context"

	"linkpanel/internal/config"
)

// Available reports whether this binary was built with desktop GUI support.
func Available() bool { return false }

// Run is a stub for headless-tag builds; main never reaches it because it
// checks Available first.
func Run(context.Context, string, config.Options) {}
