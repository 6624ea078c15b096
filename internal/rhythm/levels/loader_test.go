package levels

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/tui-rhythm/internal/rhythm"
	"github.com/vovakirdan/tui-rhythm/internal/rhythm/levels/formats"
)

func TestCampaignLoads(t *testing.T) {
	lvls, err := Campaign().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	if len(lvls) < 2 {
		t.Fatalf("expected at least 2 campaign levels, got %d", len(lvls))
	}
	for i, lvl := range lvls {
		if len(lvl.Tiles) == 0 {
			t.Errorf("level %d has no tiles", i)
		}
		if lvl.Name == "" {
			t.Errorf("level %d has no name", i)
		}
	}

	// Level 0 is a bare JSON tile list
	if lvls[0].Name != "Level 1" {
		t.Errorf("level 0 name = %q, expected default 'Level 1'", lvls[0].Name)
	}
	if lvls[0].Tiles[0].Next != rhythm.Right {
		t.Errorf("level 0 first tile = %v, expected Right", lvls[0].Tiles[0].Next)
	}
}

func TestLoadAllStopsAtGap(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/0.yaml": {Data: []byte("- next_dir: Up\n")},
		"levels/1.yml":  {Data: []byte("- next_dir: Down\n")},
		"levels/3.yaml": {Data: []byte("- next_dir: Left\n")},
	}

	lvls, err := NewLoader(fsys, "levels").LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(lvls) != 2 {
		t.Errorf("expected 2 levels before the gap, got %d", len(lvls))
	}
}

func TestLoadRoundTrip(t *testing.T) {
	level := rhythm.NewLevel("round trip", rhythm.Left, rhythm.Down)
	data, err := formats.Encode(level)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	fsys := fstest.MapFS{"0.yaml": {Data: data}}
	got, err := NewLoader(fsys, ".").Load(0)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	m := rhythm.NewMap([]rhythm.Level{got})
	tiles := m.Tiles()
	if len(tiles) != 2 || tiles[0].Next != rhythm.Left || tiles[1].Next != rhythm.Down {
		t.Errorf("Tiles() = %+v, expected [Left Down]", tiles)
	}
	if got.Name != "round trip" {
		t.Errorf("Name = %q", got.Name)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{"missing", fstest.MapFS{}},
		{"bad yaml", fstest.MapFS{"0.yaml": {Data: []byte("tiles: [\n")}}},
		{"unknown direction", fstest.MapFS{"0.yaml": {Data: []byte("- next_dir: Sideways\n")}}},
		{"empty tiles", fstest.MapFS{"0.json": {Data: []byte(`{"name": "x", "tiles": []}`)}}},
		{"scalar document", fstest.MapFS{"0.yaml": {Data: []byte("just a string\n")}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLoader(tc.fsys, ".").LoadAll()
			if err == nil {
				t.Fatal("expected an error")
			}
			var loadErr *LoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("expected *LoadError, got %T: %v", err, err)
			}
			if loadErr.Index != 0 {
				t.Errorf("Index = %d, expected 0", loadErr.Index)
			}
		})
	}
}

func TestLoadErrorWrapsCause(t *testing.T) {
	fsys := fstest.MapFS{
		"0.yaml": {Data: []byte("- next_dir: Up\n")},
		"1.yaml": {Data: []byte("- next_dir: Nowhere\n")},
	}

	_, err := NewLoader(fsys, ".").LoadAll()

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %v", err)
	}
	if loadErr.Index != 1 || loadErr.Path != "1.yaml" {
		t.Errorf("LoadError = %+v, expected index 1 at 1.yaml", loadErr)
	}
	if !errors.Is(err, rhythm.ErrUnknownDirection) {
		t.Errorf("expected ErrUnknownDirection in chain, got %v", err)
	}

	_, err = NewLoader(fstest.MapFS{}, ".").Load(4)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing record should wrap fs.ErrNotExist, got %v", err)
	}
}

func TestDirLoader(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "0.yaml"), []byte("name: Disk\ntiles:\n  - next_dir: e\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	lvls, err := Open(dir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(lvls) != 1 || lvls[0].Name != "Disk" || lvls[0].Tiles[0].Next != rhythm.Right {
		t.Errorf("unexpected levels: %+v", lvls)
	}

	if names := Names(lvls); len(names) != 1 || names[0] != "Disk" {
		t.Errorf("Names() = %v", names)
	}
}

func TestNamesFillsBlanks(t *testing.T) {
	lvls := []rhythm.Level{
		rhythm.NewLevel("Intro", rhythm.Up),
		rhythm.NewLevel("", rhythm.Down),
	}
	names := Names(lvls)
	if names[0] != "Intro" || names[1] != "Level 2" {
		t.Errorf("Names() = %v", names)
	}
}
