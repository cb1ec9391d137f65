package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/taskmgr/schema"
	"golang.org/x/oauth2"
)

// FileStore persists the pair as a JSON document on an afs URL, while serving
// lookups from memory. It is a lightweight way to survive process restarts in CLI
// or single-host services.
type FileStore struct {
	mu     sync.Mutex
	URL    string
	fs     afs.Service
	memory *memoryStore
}

// NewFileStore creates a Store that persists tokens at the given URL.
func NewFileStore(URL string) *FileStore {
	return &FileStore{
		URL:    URL,
		fs:     afs.New(),
		memory: newMemoryStore(),
	}
}

func (f *FileStore) Init(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	pair, err := f.load(ctx)
	if err != nil {
		return err
	}
	if pair == nil {
		f.memory.set(nil)
		return nil
	}
	f.memory.set(NewToken(pair.AccessToken, pair.RefreshToken))
	return nil
}

func (f *FileStore) LookupToken(ctx context.Context) (*oauth2.Token, error) {
	return f.memory.LookupToken(ctx)
}

func (f *FileStore) Set(ctx context.Context, accessToken, refreshToken string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.save(ctx, &schema.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}); err != nil {
		return err
	}
	f.memory.set(NewToken(accessToken, refreshToken))
	return nil
}

func (f *FileStore) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.memory.set(nil)
	exists, err := f.fs.Exists(ctx, f.URL)
	if err != nil || !exists {
		return err
	}
	if err = f.fs.Delete(ctx, f.URL); err != nil {
		return fmt.Errorf("failed to delete credentials %v: %w", f.URL, err)
	}
	return nil
}

// ---- persistence ----

func (f *FileStore) save(ctx context.Context, pair *schema.TokenPair) error {
	data, err := json.MarshalIndent(pair, "", "  ")
	if err != nil {
		return err
	}
	if url.Scheme(f.URL, file.Scheme) != file.Scheme {
		if err = f.fs.Upload(ctx, f.URL, 0o600, bytes.NewReader(data)); err != nil {
			return fmt.Errorf("failed to write credentials %v: %w", f.URL, err)
		}
		return nil
	}
	// local files are written aside and renamed so readers never see half a pair
	location := url.Path(f.URL)
	if err = os.MkdirAll(filepath.Dir(location), 0o700); err != nil {
		return fmt.Errorf("failed to create credentials dir %v: %w", location, err)
	}
	tmp := location + ".tmp"
	if err = os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write credentials %v: %w", tmp, err)
	}
	if err = os.Rename(tmp, location); err != nil {
		return fmt.Errorf("failed to replace credentials %v: %w", location, err)
	}
	return nil
}

func (f *FileStore) load(ctx context.Context) (*schema.TokenPair, error) {
	exists, err := f.fs.Exists(ctx, f.URL)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}
	data, err := f.fs.DownloadWithURL(ctx, f.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials %v: %w", f.URL, err)
	}
	pair := &schema.TokenPair{}
	if err = json.Unmarshal(data, pair); err != nil {
		return nil, fmt.Errorf("invalid credentials document %v: %w", f.URL, err)
	}
	if pair.AccessToken == "" && pair.RefreshToken == "" {
		return nil, nil
	}
	return pair, nil
}
