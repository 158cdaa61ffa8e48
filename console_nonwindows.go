//go:build !windows

package main

// Console detachment only matters on Windows where GUI launches keep an
// attached console window around.
func hideAndDetachConsoleForGUI() {}
