// Package adapter contains infrastructure adapters for the fidelity CLI.
package adapter

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	m "github.com/ZhouZhiping045/FidelityGPT/internal/model"
)

// QuerySeparator delimits queries inside a query file and entries inside
// answer files and the retrieve log.
const QuerySeparator = "/////"

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when reading query files, corpora and knowledge bases. It
// intentionally hides direct `os` access so the workflow logic can be tested
// without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Get collects query files under roots whose slash-separated path
	// relative to the root matches one of the include patterns.
	Get(roots []m.Path, include []string) ([]m.File, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// ReadQueries splits a query file into its queries.
	ReadQueries(path m.Path) ([]m.Query, error)

	// HashFile returns a stable fingerprint (e.g. SHA-256) for the file at path.
	HashFile(path m.Path) (string, error)

	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories when necessary.
	FileInfo(path m.Path) (os.FileInfo, error)

	// WriteFile writes content to a file, creating parent directories.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// AppendFile appends content to a file. Concurrent appends are serialized.
	AppendFile(path m.Path, content []byte) error

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// DefaultInclude matches every file below a root.
var DefaultInclude = []string{"**/*"}

// LocalSourceFSAdapter is the concrete SourceFSAdapter backed by the local disk.
type LocalSourceFSAdapter struct {
	appendMu sync.Mutex
}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get collects query files for the provided roots. A root ending in "/..."
// is scanned recursively; a file root is taken as is, without matching.
func (a *LocalSourceFSAdapter) Get(roots []m.Path, include []string) ([]m.File, error) {
	if len(roots) == 0 {
		return []m.File{}, nil
	}

	if len(include) == 0 {
		include = DefaultInclude
	}

	for _, pattern := range include {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid include pattern %q", pattern)
		}
	}

	seen := make(map[string]struct{})

	var files []m.File

	collect := func(path string) error {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return err
		}

		if _, exists := seen[absPath]; exists {
			return nil
		}

		hash, err := a.HashFile(m.Path(absPath))
		if err != nil {
			return fmt.Errorf("hash error for %s: %w", absPath, err)
		}

		seen[absPath] = struct{}{}
		files = append(files, m.File{Path: m.Path(absPath), Hash: hash})

		return nil
	}

	for _, root := range roots {
		rootPath, recursive, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := a.FileInfo(m.Path(rootPath))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			if err := collect(rootPath); err != nil {
				return nil, err
			}

			continue
		}

		err = a.Walk(m.Path(rootPath), recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				return nil
			}

			rel, err := filepath.Rel(rootPath, path)
			if err != nil {
				return err
			}

			if !matchesAny(include, filepath.ToSlash(rel)) {
				return nil
			}

			return collect(path)
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

func matchesAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}

	return false
}

// Walk iterates over files under root, optionally descending into subdirectories.
// Hidden directories are skipped.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && path != rootStr {
			if !recursive || strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// ReadQueries reads a query file and splits it on separator lines. Each
// query is trimmed and blank queries are dropped.
func (a *LocalSourceFSAdapter) ReadQueries(path m.Path) ([]m.Query, error) {
	content, err := a.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read queries from %s: %w", path, err)
	}

	hash := fmt.Sprintf("%x", sha256.Sum256(content))
	source := &m.File{Path: path, Hash: hash}

	return ParseQueries(source, string(content)), nil
}

// ParseQueries splits query file content on separator lines.
func ParseQueries(source *m.File, content string) []m.Query {
	var (
		queries []m.Query
		current []string
	)

	flush := func() {
		text := strings.TrimSpace(strings.Join(current, "\n"))
		current = current[:0]

		if text == "" {
			return
		}

		queries = append(queries, m.Query{
			Source: source,
			Index:  len(queries),
			Lines:  strings.Split(text, "\n"),
		})
	}

	for _, line := range strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == QuerySeparator {
			flush()

			continue
		}

		current = append(current, line)
	}

	flush()

	return queries
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

// AppendFile appends content to the file at path, creating it when missing.
func (a *LocalSourceFSAdapter) AppendFile(path m.Path, content []byte) error {
	a.appendMu.Lock()
	defer a.appendMu.Unlock()

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return err
	}

	// #nosec G304 - path comes from configuration, not remote input
	f, err := os.OpenFile(string(path), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}

	defer func() { _ = f.Close() }()

	_, err = f.Write(content)

	return err
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", false, err
	}

	return abs, recursive, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if rootStr == "..." {
		return ".", true
	}

	if len(rootStr) >= 4 && rootStr[len(rootStr)-4:] == "/..." {
		return rootStr[:len(rootStr)-4], true
	}

	return rootStr, false
}
