package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/user"
	"path"

	"github.com/tupy-tools/token-cli/internal/command"
)

func main() {
	log := log.New(os.Stderr, "", 0)
	args := os.Args[1:]
	if len(args) == 0 {
		log.Fatalf("Expected at least 1 argument, but got 0.")
	}

	logger := newLogger(os.Stdout)
	cacheDir := cachePath(log)

	switch args[0] {
	case "view":
		command.ViewToken(args[1:], cacheDir, os.Stdout, logger)
	case "list":
		command.ListTokens(args[1:], cacheDir, logger)
	case "status":
		command.TokenStatus(args[1:], cacheDir, logger)
	case "save":
		command.SaveToken(args[1:], cacheDir, os.Stdin, logger)
	case "header":
		command.AuthHeader(args[1:], cacheDir, logger)
	default:
		// `token-cli <identifier>` is shorthand for `token-cli view <identifier>`.
		command.ViewToken(args, cacheDir, os.Stdout, logger)
	}
}

type logger struct {
	*log.Logger
}

func newLogger(w io.Writer) *logger {
	return &logger{
		Logger: log.New(w, "", 0),
	}
}

func (l *logger) Print(a ...interface{}) {
	fmt.Fprint(os.Stdout, a...)
}

func cachePath(log *log.Logger) string {
	usr, err := user.Current()
	if err != nil {
		log.Fatal(err)
	}
	return path.Join(usr.HomeDir, "AppData", "Local", "tupy")
}
