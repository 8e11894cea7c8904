// Command lipi transliterates Malayalam text between substitution scripts.
//
// Usage:
//
//	lipi [--table brahmi] [--graphemes] [--nfc] [TEXT...]
//	echo "മലയാളം" | lipi --table keelakam
//	lipi tables
//	lipi tokenize --table moolabhadri "ക്ഷേത്രം"
package main

import (
	"context"
	"os"
	"os/signal"
)

// Set by the build via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
