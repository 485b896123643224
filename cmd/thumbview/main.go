package main

import (
	"flag"

	"github.com/justyntemme/thumbview/internal/app"
)

func main() {
	debug := flag.Bool("debug", false, "Enable verbose debug logging")
	items := flag.String("items", "", "JSON manifest of explorer items")
	dir := flag.String("dir", "", "Directory to show as non-indexed files (default: working directory)")
	flag.Parse()

	// Handle OS-specific console visibility
	manageConsole(*debug)

	app.Main(*debug, app.Source{ItemsPath: *items, Dir: *dir})
}
