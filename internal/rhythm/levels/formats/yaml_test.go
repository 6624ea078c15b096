package formats

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-rhythm/internal/rhythm"
)

func TestParseBareList(t *testing.T) {
	data := []byte(`[{"next_dir": "Left"}, {"next_dir": "Down"}]`)

	level, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	dirs := level.Directions()
	if len(dirs) != 2 || dirs[0] != rhythm.Left || dirs[1] != rhythm.Down {
		t.Errorf("Directions() = %v, expected [Left Down]", dirs)
	}
	if level.Name != "" || level.Speed != 0 {
		t.Errorf("bare list should leave name and speed empty, got %q %v", level.Name, level.Speed)
	}
}

func TestParseDocument(t *testing.T) {
	data := []byte(`
name: Test
speed: 6.5
tiles:
  - next_dir: up
  - next_dir: RIGHT
`)

	level, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if level.Name != "Test" || level.Speed != 6.5 {
		t.Errorf("got name %q speed %v", level.Name, level.Speed)
	}
	if len(level.Tiles) != 2 || level.Tiles[0].Next != rhythm.Up || level.Tiles[1].Next != rhythm.Right {
		t.Errorf("unexpected tiles: %+v", level.Tiles)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"empty", "", ErrNoTiles},
		{"empty list", "[]", ErrNoTiles},
		{"unknown tag", "- next_dir: Forward\n", rhythm.ErrUnknownDirection},
		{"missing tag", "- {}\n", rhythm.ErrUnknownDirection},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			if !errors.Is(err, tc.want) {
				t.Errorf("Parse() error = %v, expected %v", err, tc.want)
			}
		})
	}

	if _, err := Parse([]byte("speed: -1\ntiles:\n  - next_dir: Up\n")); err == nil {
		t.Error("negative speed should be rejected")
	}
	if _, err := Parse([]byte("speed: .inf\ntiles:\n  - next_dir: Up\n")); err == nil {
		t.Error("infinite speed should be rejected")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	in := rhythm.NewLevel("Loop", rhythm.Up, rhythm.Right, rhythm.Down, rhythm.Left)
	in.Speed = 4

	data, err := Encode(in)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	out, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if out.Name != in.Name || out.Speed != in.Speed {
		t.Errorf("metadata changed: %+v", out)
	}
	for i, d := range in.Directions() {
		if out.Tiles[i].Next != d {
			t.Errorf("tile %d = %v, expected %v", i, out.Tiles[i].Next, d)
		}
	}
}
