package command

import (
	"strings"

	flags "github.com/jessevdk/go-flags"

	"github.com/tupy-tools/token-cli/internal/cache"
)

type statusFlags struct {
	CacheDir string `long:"cache-dir"`
}

// TokenStatus decodes the cached token for an identifier and reports
// its type, scopes and expiry. Unlike ViewToken, a missing cache file
// is fatal here: absence is the condition being diagnosed.
func TokenStatus(args []string, cacheDir string, log Logger) {
	opts := statusFlags{
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
		log.Fatalf("No cached token for %s.", args[0])
	}

	token, err := store.Decode(args[0])
	if err != nil {
		log.Fatalf("%s", err)
	}

	state := "valid"
	if token.IsExpired() {
		state = "expired"
	}

	log.Printf("type\tscopes\texpires\tstate")
	log.Printf(
		"%s\t%s\t%s\t%s",
		token.TokenType,
		strings.Join(token.Scopes, ", "),
		token.Expires.Format(cache.ExpiresFormat),
		state,
	)
}
