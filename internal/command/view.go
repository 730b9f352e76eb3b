package command

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	flags "github.com/jessevdk/go-flags"

	"github.com/tupy-tools/token-cli/internal/cache"
)

// Logger is used for outputting results and errors
type Logger interface {
	Printf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
	Print(...interface{})
}

type viewFlags struct {
	CacheDir string `long:"cache-dir"`
}

// ViewToken decodes the cached token file for an identifier and pretty
// prints the JSON document it contains. A missing cache file is not an
// error: the command prints nothing and exits cleanly.
func ViewToken(args []string, cacheDir string, w io.Writer, log Logger) {
	opts := viewFlags{
		CacheDir: cacheDir,
	}

	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	args, err := parser.ParseArgs(args)
	if err != nil {
		log.Fatalf("%s", err)
	}

	if len(args) != 1 {
		log.Fatalf("Invalid arguments, expected 1, got %d.", len(args))
	}

	store := cache.NewStore(opts.CacheDir)
	if !store.Exists(args[0]) {
		return
	}

	doc, err := store.Load(args[0])
	if err != nil {
		log.Fatalf("%s", err)
	}

	// Re-indenting the raw document keeps object keys in their source
	// order, which unmarshaling into a map would not.
	var out bytes.Buffer
	if err := json.Indent(&out, doc, "", "  "); err != nil {
		log.Fatalf("invalid token document in %s: %s", store.Path(args[0]), err)
	}

	fmt.Fprintln(w, out.String())
}
