// Package levels provides level pack loading and validation for lavarun.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/lavarun/internal/games/lavarun/levels/formats"
)

//go:embed pack
var packFS embed.FS

// BuiltinRoot is the display name of the embedded level pack.
const BuiltinRoot = "builtin"

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Plan     []string
	Script   string
	Expect   string
	FilePath string
}

// Size returns the plan's width (longest row, in runes) and height.
func (l Level) Size() (w, h int) {
	for _, row := range l.Plan {
		if n := len([]rune(row)); n > w {
			w = n
		}
	}
	return w, len(l.Plan)
}

// Loader handles loading levels from a directory tree.
type Loader struct {
	FS   fs.FS
	Root string

	// OnSkip, when set, is told about every file LoadAll skips.
	OnSkip func(path string, err error)
}

// NewLoader creates a loader over a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{FS: os.DirFS(root), Root: root}
}

// NewEmbeddedLoader creates a loader over the built-in level pack.
func NewEmbeddedLoader() *Loader {
	sub, err := fs.Sub(packFS, "pack")
	if err != nil {
		panic(fmt.Sprintf("levels: embedded pack missing: %v", err))
	}
	return &Loader{FS: sub, Root: BuiltinRoot}
}

// LoadAll recursively scans and loads all level files.
// Invalid files and duplicate IDs are skipped.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level
	seen := make(map[string]string)

	err := fs.WalkDir(l.FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		loaded, err := l.LoadFile(p)
		if err != nil {
			l.skip(p, err)
			return nil
		}

		for _, lvl := range loaded {
			if first, dup := seen[lvl.ID]; dup {
				l.skip(p, fmt.Errorf("duplicate level id %s (first in %s)", lvl.ID, first))
				continue
			}
			seen[lvl.ID] = p
			levels = append(levels, lvl)
		}
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	// Sort by ID for determinism
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads one level file. Plan collections yield several levels.
func (l *Loader) LoadFile(p string) ([]Level, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", p, err)
	}

	ext := strings.ToLower(path.Ext(p))
	parsed, err := parseByExtension(data, ext, strings.TrimSuffix(path.Base(p), path.Ext(p)))
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", p, err)
	}

	levels := make([]Level, len(parsed))
	for i, pl := range parsed {
		levels[i] = Level{
			ID:       pl.ID,
			Name:     pl.Name,
			Plan:     pl.Plan,
			Script:   pl.Script,
			Expect:   pl.Expect,
			FilePath: path.Join(l.Root, p),
		}
	}
	return levels, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

func (l *Loader) skip(p string, err error) {
	if l.OnSkip != nil {
		l.OnSkip(p, err)
	}
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext, base string) ([]formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		lvl, err := formats.ParseYAML(data)
		if err != nil {
			return nil, err
		}
		return []formats.Level{lvl}, nil
	case ".json":
		return formats.ParsePlans(data, base)
	default:
		return nil, fmt.Errorf("unsupported extension: %s", ext)
	}
}
