package filesystem

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/specxtract/internal/core/domain"
	"github.com/custodia-labs/specxtract/internal/core/ports/driven"
	"github.com/custodia-labs/specxtract/internal/logger"
	"github.com/custodia-labs/specxtract/internal/normalisers/docx"
	"github.com/custodia-labs/specxtract/internal/normalisers/plaintext"
)

// Verify interface compliance.
var _ driven.Connector = (*Connector)(nil)

// DefaultDebounce is the quiet period Watch waits for before reporting a change.
const DefaultDebounce = 250 * time.Millisecond

// Options configures which files a Connector accepts.
type Options struct {
	// Plaintext also accepts *.txt files.
	Plaintext bool

	// Debounce overrides DefaultDebounce when positive.
	Debounce time.Duration
}

// Connector reads documents from a single file or one directory level.
type Connector struct {
	path string
	opts Options

	mu      sync.Mutex
	closed  bool
	watcher *fsnotify.Watcher
}

// New creates a filesystem connector rooted at path.
// file:// URIs are accepted and converted to local paths.
func New(path string, opts Options) *Connector {
	return &Connector{
		path: ResolvePath(path),
		opts: opts,
	}
}

// Type returns the connector type identifier.
func (c *Connector) Type() string {
	return "filesystem"
}

// Path returns the resolved root path.
func (c *Connector) Path() string {
	return c.path
}

// Documents returns the documents at the root. A file root yields that file;
// a directory root yields its accepted files sorted by name. Subdirectories
// and hidden files are ignored. A file that cannot be read is still
// returned, with Err set.
func (c *Connector) Documents(ctx context.Context) ([]domain.RawDocument, error) {
	info, err := os.Stat(c.path)
	if err != nil {
		return nil, fmt.Errorf("root path error: %w", errors.Join(domain.ErrSourceUnavailable, err))
	}

	if !info.IsDir() {
		mimeType := c.detectMIMEType(c.path)
		if mimeType == "" {
			return nil, fmt.Errorf("%s: %w", c.path, domain.ErrUnsupportedType)
		}
		doc, err := readDocument(c.path, mimeType)
		doc.Err = err
		return []domain.RawDocument{doc}, nil
	}

	entries, err := os.ReadDir(c.path)
	if err != nil {
		return nil, fmt.Errorf("root path error: %w", errors.Join(domain.ErrSourceUnavailable, err))
	}

	var docs []domain.RawDocument
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || !c.accepts(entry.Name()) {
			continue
		}

		path := filepath.Join(c.path, entry.Name())
		doc, err := readDocument(path, c.detectMIMEType(path))
		doc.Err = err
		docs = append(docs, doc)
	}

	logger.Debug("filesystem: %d document(s) in %s", len(docs), c.path)
	return docs, nil
}

// Watch reports changes to accepted files under the root. Bursts of events
// are coalesced into one notification after the debounce period. The channel
// closes when ctx is cancelled or the connector is closed.
func (c *Connector) Watch(ctx context.Context) (<-chan struct{}, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, errors.New("connector is closed")
	}

	info, err := os.Stat(c.path)
	if err != nil {
		return nil, fmt.Errorf("root path error: %w", errors.Join(domain.ErrSourceUnavailable, err))
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	dir := c.path
	if !info.IsDir() {
		dir = filepath.Dir(c.path)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	c.watcher = watcher

	changes := make(chan struct{}, 1)
	go c.watchLoop(ctx, watcher, changes)
	return changes, nil
}

func (c *Connector) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, changes chan<- struct{}) {
	defer close(changes)
	defer watcher.Close()

	debounce := c.opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if c.handleFsEvent(event) {
				timer.Reset(debounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("watch error: %v", err)
		case <-timer.C:
			select {
			case changes <- struct{}{}:
			default:
			}
		}
	}
}

// handleFsEvent reports whether an event concerns an accepted file.
func (c *Connector) handleFsEvent(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}

	if info, err := os.Stat(c.path); err == nil && !info.IsDir() {
		return filepath.Clean(event.Name) == filepath.Clean(c.path)
	}

	if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
		return false
	}
	return c.accepts(filepath.Base(event.Name))
}

// Close stops any active watch. It is safe to call more than once.
func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	if c.watcher != nil {
		err := c.watcher.Close()
		c.watcher = nil
		return err
	}
	return nil
}

// accepts reports whether a directory entry name is read as a document.
// Word lock files ("~$name.docx") are skipped.
func (c *Connector) accepts(name string) bool {
	if isHidden(name) || strings.HasPrefix(name, "~$") {
		return false
	}
	return c.detectMIMEType(name) != ""
}

// detectMIMEType maps a file extension to a normaliser content type.
// It returns "" for files the connector does not read.
func (c *Connector) detectMIMEType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		return docx.MIMEType
	case ".txt":
		if c.opts.Plaintext {
			return plaintext.MIMEType
		}
	}
	return ""
}

func readDocument(path, mimeType string) (domain.RawDocument, error) {
	doc := domain.RawDocument{
		ID:       filepath.Base(path),
		URI:      path,
		MIMEType: mimeType,
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return doc, fmt.Errorf("read %s: %w", path, errors.Join(domain.ErrSourceUnavailable, err))
	}
	doc.Content = content
	return doc, nil
}

// isHidden reports whether any path element starts with a dot.
// "." and ".." are not hidden.
func isHidden(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if len(part) > 1 && part[0] == '.' && part != ".." {
			return true
		}
	}
	return false
}
