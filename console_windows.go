//go:build windows

package main

import "syscall"

const swHide = 0

// hideAndDetachConsoleForGUI hides and releases the console window that
// Windows attaches when the panel is launched from a terminal, so --gui
// runs as a plain desktop window.
func hideAndDetachConsoleForGUI() {
	kernel32 := syscall.NewLazyDLL("kernel32.dll")
	user32 := syscall.NewLazyDLL("user32.dll")

	if hwnd, _, _ := kernel32.NewProc("GetConsoleWindow").Call(); hwnd != 0 {
		_, _, _ = user32.NewProc("ShowWindow").Call(hwnd, swHide)
	}
	_, _, _ = kernel32.NewProc("FreeConsole").Call()
}
