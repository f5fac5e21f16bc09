package checkenv

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Default diagnostic templates. The report package reuses the text without
// the glyph prefix.
const (
	MissingFormat  = "Missing required environment variable %s"
	OptionalFormat = "Environment variable %s is not set"
	UnsafeFormat   = "Unsafe environment variable %s should not be set in production"
)

var (
	outMu sync.Mutex
	out   io.Writer = os.Stderr
)

// SetOutput redirects the default callbacks. A nil writer restores os.Stderr.
func SetOutput(w io.Writer) {
	outMu.Lock()
	defer outMu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	out = w
}

func writeLine(glyph, format, name string) {
	outMu.Lock()
	defer outMu.Unlock()
	fmt.Fprintf(out, glyph+"  "+format+"\n", name)
}

// DisplayMissing is the default LogMissing callback.
func DisplayMissing(name string) { writeLine("❌", MissingFormat, name) }

// DisplayOptional is the default LogOptional callback.
func DisplayOptional(name string) { writeLine("⚠️", OptionalFormat, name) }

// DisplayUnsafe is the default LogUnsafe callback.
func DisplayUnsafe(name string) { writeLine("❌", UnsafeFormat, name) }
