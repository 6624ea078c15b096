// Package levels loads level records, addressed by zero-based index, from a
// directory or from the built-in campaign.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-rhythm/internal/rhythm"
	"github.com/vovakirdan/tui-rhythm/internal/rhythm/levels/formats"
)

//go:embed campaign
var campaignFS embed.FS

// ErrNoLevels is returned when index 0 has no record.
var ErrNoLevels = errors.New("no level records found")

// LoadError reports a level record that is missing, unreadable or malformed.
// It is fatal at startup.
type LoadError struct {
	Index int
	Path  string
	Err   error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("levels: level %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("levels: level %d (%s): %v", e.Index, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Loader reads level records named <index>.<ext> from a directory of an fs.FS.
type Loader struct {
	fsys   fs.FS
	dir    string
	logger *log.Logger
}

// NewLoader creates a loader for records under dir in fsys.
func NewLoader(fsys fs.FS, dir string) *Loader {
	return &Loader{
		fsys:   fsys,
		dir:    dir,
		logger: log.Default().WithPrefix("levels"),
	}
}

// NewDirLoader creates a loader for a directory on disk.
func NewDirLoader(root string) *Loader {
	return NewLoader(os.DirFS(root), ".")
}

// Campaign returns a loader for the built-in levels.
func Campaign() *Loader {
	return NewLoader(campaignFS, "campaign")
}

// Open returns the directory loader when root is set, otherwise the campaign.
func Open(root string) *Loader {
	if root == "" {
		return Campaign()
	}
	return NewDirLoader(root)
}

// SetLogger replaces the loader's logger.
func (l *Loader) SetLogger(logger *log.Logger) {
	if logger != nil {
		l.logger = logger
	}
}

// Path returns the record path for level i, trying each known extension.
func (l *Loader) Path(i int) (string, error) {
	for _, ext := range formats.Extensions() {
		p := path.Join(l.dir, strconv.Itoa(i)+ext)
		if _, err := fs.Stat(l.fsys, p); err == nil {
			return p, nil
		}
	}
	return "", fs.ErrNotExist
}

// Exists reports whether a record for level i is present.
func (l *Loader) Exists(i int) bool {
	_, err := l.Path(i)
	return err == nil
}

// Load reads and parses the record for level i.
func (l *Loader) Load(i int) (rhythm.Level, error) {
	p, err := l.Path(i)
	if err != nil {
		return rhythm.Level{}, &LoadError{Index: i, Err: err}
	}

	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return rhythm.Level{}, &LoadError{Index: i, Path: p, Err: err}
	}

	level, err := formats.Parse(data)
	if err != nil {
		return rhythm.Level{}, &LoadError{Index: i, Path: p, Err: err}
	}
	if level.Name == "" {
		level.Name = fmt.Sprintf("Level %d", i+1)
	}

	l.logger.Debug("loaded level", "index", i, "path", p, "tiles", len(level.Tiles))
	return level, nil
}

// LoadAll loads levels 0, 1, 2, ... until the first missing index.
// Any malformed record aborts the load.
func (l *Loader) LoadAll() ([]rhythm.Level, error) {
	var out []rhythm.Level
	for i := 0; l.Exists(i); i++ {
		level, err := l.Load(i)
		if err != nil {
			return nil, err
		}
		out = append(out, level)
	}

	if len(out) == 0 {
		return nil, &LoadError{Index: 0, Path: l.dir, Err: ErrNoLevels}
	}
	return out, nil
}

// Names returns the display name of every level in order. Unnamed levels
// are called "Level N".
func Names(levels []rhythm.Level) []string {
	names := make([]string, len(levels))
	for i, lvl := range levels {
		names[i] = lvl.Name
		if names[i] == "" {
			names[i] = fmt.Sprintf("Level %d", i+1)
		}
	}
	return names
}
