package persona

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileStore keeps one JSON file per persona in a directory, usually
// ~/.repost/personas. The on-disk format is the portable backup record
// plus the authored fields below, so files stay importable by hand
// while a Save/Get round-trip keeps the whole profile.
type FileStore struct {
	dir     string
	builder *Builder
}

// fileRecord extends the backup record with the authored fields the
// portable format omits.
type fileRecord struct {
	BackupRecord
	Description string   `json:"description,omitempty"`
	DomainTags  []string `json:"domainTags,omitempty"`
}

// NewFileStore creates a FileStore rooted at dir, creating it if
// needed.
func NewFileStore(dir string, builder *Builder) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create persona dir: %w", err)
	}
	return &FileStore{dir: dir, builder: builder}, nil
}

// DefaultDir returns the persona directory: $REPOST_HOME/personas when
// set, otherwise ~/.repost/personas.
func DefaultDir() (string, error) {
	if home := os.Getenv("REPOST_HOME"); home != "" {
		return filepath.Join(home, "personas"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".repost", "personas"), nil
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, strings.ToLower(name)+".json")
}

func (s *FileStore) Save(ctx context.Context, p Profile) error {
	if err := checkReserved(p); err != nil {
		return err
	}
	rec := fileRecord{
		BackupRecord: backupRecord(p),
		Description:  p.Description,
		DomainTags:   p.DomainTags,
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal persona file for %s: %w", p.Name, err)
	}
	if err := os.WriteFile(s.path(p.Name), data, 0o644); err != nil {
		return fmt.Errorf("write persona file: %w", err)
	}
	return nil
}

func (s *FileStore) Get(ctx context.Context, name string) (Profile, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Profile{}, fmt.Errorf("persona %q: %w", name, ErrNotFound)
		}
		return Profile{}, fmt.Errorf("read persona file: %w", err)
	}
	p, err := Import(data, s.builder)
	if err != nil {
		return Profile{}, fmt.Errorf("load persona %q: %w", name, err)
	}

	// Overlay the authored fields the portable record does not carry.
	var rec fileRecord
	if err := json.Unmarshal(data, &rec); err == nil {
		if rec.Description != "" {
			p.Description = rec.Description
		}
		if len(rec.DomainTags) > 0 {
			p.DomainTags = rec.DomainTags
		}
	}
	return p, nil
}

// List returns all stored profiles sorted by name.
func (s *FileStore) List(ctx context.Context) ([]Profile, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read persona dir: %w", err)
	}

	var profiles []Profile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".json")
		p, err := s.Get(ctx, name)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}

	sort.Slice(profiles, func(i, j int) bool {
		return strings.ToLower(profiles[i].Name) < strings.ToLower(profiles[j].Name)
	})
	return profiles, nil
}

func (s *FileStore) Remove(ctx context.Context, name string) (bool, error) {
	err := os.Remove(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("remove persona file: %w", err)
	}
	return true, nil
}
