package cache

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	filePrefix = "spotify."
	fileSuffix = ".token"
)

// Store reads and writes token files in a cache directory. Each file
// holds a single base64 encoded JSON document.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{
		dir: dir,
	}
}

// Path returns the cache file path for an identifier.
func (s *Store) Path(id string) string {
	return filepath.Join(s.dir, filePrefix+id+fileSuffix)
}

// Exists reports whether a token file is cached for the identifier.
func (s *Store) Exists(id string) bool {
	_, err := os.Stat(s.Path(id))
	return err == nil
}

// Load reads a token file and returns the base64 decoded contents.
func (s *Store) Load(id string) ([]byte, error) {
	content, err := ioutil.ReadFile(s.Path(id))
	if err != nil {
		return nil, err
	}

	doc, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(content)))
	if err != nil {
		return nil, fmt.Errorf("invalid base64 in %s: %s", s.Path(id), err)
	}
	return doc, nil
}

// Decode loads a token file and parses the document into a Token.
func (s *Store) Decode(id string) (Token, error) {
	doc, err := s.Load(id)
	if err != nil {
		return Token{}, err
	}

	var t Token
	if err := json.Unmarshal(doc, &t); err != nil {
		return Token{}, fmt.Errorf("invalid token document in %s: %s", s.Path(id), err)
	}
	return t, nil
}

// Save writes a token file for the identifier, creating the cache
// directory if needed. Token files hold credentials and are written
// user-only.
func (s *Store) Save(id string, t Token) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	doc, err := json.Marshal(t)
	if err != nil {
		return err
	}

	encoded := base64.StdEncoding.EncodeToString(doc)
	return ioutil.WriteFile(s.Path(id), []byte(encoded), 0600)
}

// Entry is one cached token file.
type Entry struct {
	ID       string
	Modified time.Time
}

// List returns the cached entries sorted by identifier. A missing
// cache directory yields no entries, not an error.
func (s *Store) List() ([]Entry, error) {
	files, err := ioutil.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, f := range files {
		if f.IsDir() {
			continue
		}

		name := f.Name()
		if !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		if len(name) <= len(filePrefix)+len(fileSuffix) {
			continue
		}
		id := name[len(filePrefix) : len(name)-len(fileSuffix)]

		entries = append(entries, Entry{
			ID:       id,
			Modified: f.ModTime(),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})
	return entries, nil
}
