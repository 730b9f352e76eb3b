package command

import (
	"encoding/json"
	"io"
	"io/ioutil"

	flags "github.com/jessevdk/go-flags"
	uuid "github.com/nu7hatch/gouuid"

	"github.com/tupy-tools/token-cli/internal/cache"
)

type saveFlags struct {
	CacheDir string `long:"cache-dir"`
}

// SaveToken reads a token document from r and writes it to the cache.
// If no identifier is given, one is generated.
func SaveToken(args []string, cacheDir string, r io.Reader, log Logger) {
	opts := saveFlags{
		CacheDir: cacheDir,
	}

	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	args, err := parser.ParseArgs(args)
	if err != nil {
		log.Fatalf("%s", err)
	}

	if len(args) > 1 {
		log.Fatalf("Invalid arguments, expected 0 or 1, got %d.", len(args))
	}

	var id string
	if len(args) == 1 {
		id = args[0]
	} else {
		guid, err := uuid.NewV4()
		if err != nil {
			log.Fatalf("%s", err)
		}
		id = guid.String()
	}

	body, err := ioutil.ReadAll(r)
	if err != nil {
		log.Fatalf("%s", err)
	}

	var token cache.Token
	if err := json.Unmarshal(body, &token); err != nil {
		log.Fatalf("Invalid token document: %s", err)
	}

	if err := cache.NewStore(opts.CacheDir).Save(id, token); err != nil {
		log.Fatalf("%s", err)
	}

	log.Printf("Saved token for %s.", id)
}
