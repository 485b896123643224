//go:build !debug

package app

import "github.com/justyntemme/thumbview/internal/debug"

// debugEnabled is false when not built with -tags debug
var debugEnabled = debug.Enabled

func debugLog(format string, args ...interface{}) {
	debug.Log(debug.APP, format, args...)
}
