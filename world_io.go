package randlebrot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rjh-mopjones/randlebrot/various"
	"gopkg.in/yaml.v3"
)

// DefaultWorldDir is where worlds are saved unless stated otherwise.
const DefaultWorldDir = "assets/worlds"

const worldExt = ".yaml"

// WorldIOErrorKind classifies persistence failures.
type WorldIOErrorKind int

// The persistence failure kinds.
const (
	ErrKindIO     WorldIOErrorKind = iota // file system failure
	ErrKindFormat                         // malformed or unencodable world
)

func (k WorldIOErrorKind) String() string {
	switch k {
	case ErrKindIO:
		return "io"
	case ErrKindFormat:
		return "format"
	}
	return "unknown"
}

// Sentinels matching a *WorldIOError of the respective kind via errors.Is.
var (
	ErrIO     = errors.New("world io error")
	ErrFormat = errors.New("world format error")
)

// WorldIOError is returned by the world persistence functions.
type WorldIOError struct {
	Kind WorldIOErrorKind
	Path string
	Err  error
}

func (e *WorldIOError) Error() string {
	return fmt.Sprintf("world %s error (%s): %v", e.Kind, e.Path, e.Err)
}

func (e *WorldIOError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel of the error's kind.
func (e *WorldIOError) Is(target error) bool {
	switch target {
	case ErrIO:
		return e.Kind == ErrKindIO
	case ErrFormat:
		return e.Kind == ErrKindFormat
	}
	return false
}

// WorldFilename returns a file name for the world name. Everything except
// letters, digits, '-' and '_' is replaced with '_'.
func WorldFilename(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String() + worldExt
}

// SaveWorld writes the world to dir, named after the world, and returns
// the path of the written file. The directory is created if needed.
func SaveWorld(dir string, w *WorldDefinition) (string, error) {
	start := time.Now()
	path := filepath.Join(dir, WorldFilename(w.Name))
	data, err := yaml.Marshal(w)
	if err != nil {
		return "", &WorldIOError{Kind: ErrKindFormat, Path: path, Err: err}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &WorldIOError{Kind: ErrKindIO, Path: dir, Err: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", &WorldIOError{Kind: ErrKindIO, Path: path, Err: err}
	}
	various.Logf("Done saving %s in %s", path, time.Since(start))
	return path, nil
}

// LoadWorld reads a world file. The territory is not stored and has to be
// regenerated; the id generator is synced with the loaded objects.
func LoadWorld(path string) (*WorldDefinition, error) {
	start := time.Now()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &WorldIOError{Kind: ErrKindIO, Path: path, Err: err}
	}
	w := NewWorldDefinition()
	if err := yaml.Unmarshal(data, w); err != nil {
		return nil, &WorldIOError{Kind: ErrKindFormat, Path: path, Err: err}
	}
	w.IDs.SyncWith(w)
	various.Logf("Done loading %s in %s", path, time.Since(start))
	return w, nil
}

// ListWorlds returns the sorted paths of all world files in dir. A missing
// directory holds no worlds.
func ListWorlds(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &WorldIOError{Kind: ErrKindIO, Path: dir, Err: err}
	}
	var res []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != worldExt {
			continue
		}
		res = append(res, filepath.Join(dir, e.Name()))
	}
	sort.Strings(res)
	return res, nil
}
