// Package corpus reads the externally maintained collection of previously
// generated block schemas that the similarity matcher queries.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/contentforge/blockinfer/models"
)

// DocumentName is the schema document expected inside a directory entry.
const DocumentName = "block.json"

// Store is a read-through view over a corpus directory. Entries are either
// subdirectories holding a block.json document or flat <name>.json files.
// Loaded documents are cached per entry and re-read when the file
// modification time changes. Safe for concurrent use.
type Store struct {
	root string

	mu    sync.Mutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	modTime time.Time
	schema  *models.BlockSchema
}

// NewStore creates a store over the given corpus directory. The directory
// does not have to exist; a missing corpus simply yields no entries.
func NewStore(root string) *Store {
	return &Store{
		root:  root,
		cache: make(map[string]cacheEntry),
	}
}

// Names enumerates the corpus entry names in sorted order. A missing corpus
// directory is not an error; it is an empty corpus.
func (s *Store) Names() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list corpus directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
			continue
		}
		if strings.HasSuffix(e.Name(), ".json") {
			names = append(names, strings.TrimSuffix(e.Name(), ".json"))
		}
	}
	sort.Strings(names)
	return names, nil
}

// Load returns the schema document for an entry. The second return is false
// when the entry holds no document, which is a skip, not an error; an error
// is returned only for unreadable or malformed documents so the caller can
// log and skip.
func (s *Store) Load(name string) (*models.BlockSchema, bool, error) {
	path, info, ok := s.documentPath(name)
	if !ok {
		return nil, false, nil
	}

	s.mu.Lock()
	cached, hit := s.cache[name]
	s.mu.Unlock()
	if hit && cached.modTime.Equal(info.ModTime()) {
		return cached.schema, true, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read corpus entry %q: %w", name, err)
	}

	var schema models.BlockSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, false, fmt.Errorf("malformed corpus entry %q: %w", name, err)
	}
	if schema.BlockName == "" {
		schema.BlockName = name
	}

	s.mu.Lock()
	s.cache[name] = cacheEntry{modTime: info.ModTime(), schema: &schema}
	s.mu.Unlock()

	return &schema, true, nil
}

// documentPath finds the entry's document on disk, trying the directory
// layout first and the flat file layout second.
func (s *Store) documentPath(name string) (string, os.FileInfo, bool) {
	dirDoc := filepath.Join(s.root, name, DocumentName)
	if info, err := os.Stat(dirDoc); err == nil && !info.IsDir() {
		return dirDoc, info, true
	}
	flatDoc := filepath.Join(s.root, name+".json")
	if info, err := os.Stat(flatDoc); err == nil && !info.IsDir() {
		return flatDoc, info, true
	}
	return "", nil, false
}
