package command

import (
	flags "github.com/jessevdk/go-flags"

	"github.com/tupy-tools/token-cli/internal/cache"
	"github.com/tupy-tools/token-cli/internal/credentials"
)

type headerFlags struct {
	CacheDir string `long:"cache-dir"`
	Client   bool   `long:"client"`
}

// AuthHeader prints the Authorization value for a cached token, or,
// with --client, the basic client_id:client_secret value read from the
// environment.
func AuthHeader(args []string, cacheDir string, log Logger) {
	opts := headerFlags{
		CacheDir: cacheDir,
	}

	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	args, err := parser.ParseArgs(args)
	if err != nil {
		log.Fatalf("%s", err)
	}

	if opts.Client {
		if len(args) != 0 {
			log.Fatalf("Invalid arguments, expected 0, got %d.", len(args))
		}

		creds, err := credentials.Load()
		if err != nil {
			log.Fatalf("%s", err)
		}

		log.Printf("Basic %s", creds.Auth())
		return
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

	log.Printf("%s", token.Header())
}
