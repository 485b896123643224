//go:build windows

package main

import "golang.org/x/sys/windows"

// manageConsole detaches from the console unless debugging, so a build
// launched from Explorer does not keep a console window open.
func manageConsole(debug bool) {
	if debug {
		return
	}
	windows.NewLazySystemDLL("kernel32.dll").NewProc("FreeConsole").Call()
}
