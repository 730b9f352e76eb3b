package command

import (
	"time"

	flags "github.com/jessevdk/go-flags"

	"github.com/tupy-tools/token-cli/internal/cache"
)

type listFlags struct {
	CacheDir string `long:"cache-dir"`
}

// ListTokens prints the cached identifiers without decoding the files.
func ListTokens(args []string, cacheDir string, log Logger) {
	opts := listFlags{
		CacheDir: cacheDir,
	}

	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	args, err := parser.ParseArgs(args)
	if err != nil {
		log.Fatalf("%s", err)
	}

	if len(args) != 0 {
		log.Fatalf("Invalid arguments, expected 0, got %d.", len(args))
	}

	entries, err := cache.NewStore(opts.CacheDir).List()
	if err != nil {
		log.Fatalf("%s", err)
	}

	// Header
	log.Printf("identifier\tmodified")

	for _, e := range entries {
		log.Printf("%s\t%s", e.ID, e.Modified.Format(time.RFC3339))
	}
}
