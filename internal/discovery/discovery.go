// Package discovery locates an RPG Maker game on disk and turns its map tree
// into lint jobs.
package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/batch"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/lcf"
)

const (
	// DatabaseFile marks a game directory.
	DatabaseFile = "RPG_RT.ldb"
	// MapTreeFile lists the maps of a game.
	MapTreeFile = "RPG_RT.lmt"
)

var (
	// ErrGameNotFound is returned when neither the directory nor its parent
	// contains RPG_RT.ldb.
	ErrGameNotFound = errors.New("failed to find a game from the given directory")

	// ErrNoMaps is returned when the map tree lists no maps.
	ErrNoMaps = errors.New("game has no maps")
)

// UnsupportedExtensionError is returned for files that are neither a map
// unit nor part of a game's database.
type UnsupportedExtensionError struct {
	// Ext is the extension without the leading dot. Empty means none.
	Ext string
}

func (e *UnsupportedExtensionError) Error() string {
	ext := e.Ext
	if ext == "" {
		ext = "<none>"
	}
	return fmt.Sprintf("Unrecognized extension %s is not supported.", ext)
}

// TargetKind says what a command-line path points at.
type TargetKind int

const (
	// TargetGame is a game directory; maps come from its map tree.
	TargetGame TargetKind = iota
	// TargetMap is a single map unit.
	TargetMap
)

func (k TargetKind) String() string {
	if k == TargetMap {
		return "map"
	}
	return "game"
}

// Target is a resolved command-line path.
type Target struct {
	Kind TargetKind
	// GameDir is the game directory. Set for TargetGame.
	GameDir string
	// MapPath is the map unit. Set for TargetMap.
	MapPath string
}

// Resolve classifies path. Directories are searched for a game with
// FindGameDir; .ldb and .lmt files name the game in their directory; .lmu
// files are linted on their own.
func Resolve(path string) (Target, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Target{}, err
	}

	if info.IsDir() {
		dir, err := FindGameDir(path)
		if err != nil {
			return Target{}, err
		}
		return Target{Kind: TargetGame, GameDir: dir}, nil
	}

	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	switch strings.ToLower(ext) {
	case "ldb", "lmt":
		return Target{Kind: TargetGame, GameDir: filepath.Dir(path)}, nil
	case "lmu":
		return Target{Kind: TargetMap, MapPath: path}, nil
	default:
		return Target{}, &UnsupportedExtensionError{Ext: ext}
	}
}

// FindGameDir returns dir when it holds RPG_RT.ldb, otherwise its parent when
// that does. Only one level is searched.
func FindGameDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	if fileExists(filepath.Join(abs, DatabaseFile)) {
		return abs, nil
	}
	parent := filepath.Dir(abs)
	if parent != abs && fileExists(filepath.Join(parent, DatabaseFile)) {
		return parent, nil
	}
	return "", ErrGameNotFound
}

// LoadTree reads the map tree of the game in gameDir.
func LoadTree(gameDir string) (*lcf.MapTree, error) {
	return lcf.LoadMapTree(filepath.Join(gameDir, MapTreeFile))
}

// MapFileName is the file name of the map unit with the given id.
func MapFileName(id int) string {
	return fmt.Sprintf("Map%04d.lmu", id)
}

// Options configures MapJobs.
type Options struct {
	// ExcludePatterns are doublestar patterns matched against the map file
	// name, e.g. "Map00[0-4]?.lmu".
	ExcludePatterns []string

	// CodePage decodes map names for display.
	CodePage lcf.CodePage
}

// MapJobs returns one job per map in tree order, skipping the root entry and
// excluded files.
func MapJobs(gameDir string, tree *lcf.MapTree, opts Options) ([]batch.Job, error) {
	for _, pattern := range opts.ExcludePatterns {
		if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
			return nil, fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}

	entries := tree.Entries()
	jobs := make([]batch.Job, 0, len(entries))
	for _, m := range entries {
		name := MapFileName(m.ID)
		if isExcluded(name, opts.ExcludePatterns) {
			continue
		}
		jobs = append(jobs, batch.Job{
			ID:   m.ID,
			Name: opts.CodePage.Decode(m.Name),
			Path: filepath.Join(gameDir, name),
		})
	}
	return jobs, nil
}

// isExcluded matches the map file name against patterns, ignoring case.
func isExcluded(name string, patterns []string) bool {
	lower := strings.ToLower(name)
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(strings.ToLower(pattern), lower); err == nil && ok {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
