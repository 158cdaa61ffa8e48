//go:build !headless

package gui

// Available reports whether this binary was built with desktop GUI support.
func Available() bool { return true }
