// Package formats parses level records. JSON records are read by the YAML
// decoder, since every JSON document is also valid YAML.
package formats

import (
	"errors"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-rhythm/internal/rhythm"
)

// ErrNoTiles is returned for a record with an empty tile list.
var ErrNoTiles = errors.New("level has no tiles")

// YAMLTile is a single tile record.
type YAMLTile struct {
	NextDir string `yaml:"next_dir"`
}

// YAMLLevel is the document form of a level record. A record may also be a
// bare list of tiles, which decodes into Tiles with the other fields empty.
type YAMLLevel struct {
	Name  string     `yaml:"name,omitempty"`
	Speed float64    `yaml:"speed,omitempty"`
	Tiles []YAMLTile `yaml:"tiles"`
}

// Parse decodes a level record.
func Parse(data []byte) (rhythm.Level, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return rhythm.Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(root.Content) == 0 {
		return rhythm.Level{}, ErrNoTiles
	}

	var yl YAMLLevel
	doc := root.Content[0]
	switch doc.Kind {
	case yaml.SequenceNode:
		if err := doc.Decode(&yl.Tiles); err != nil {
			return rhythm.Level{}, fmt.Errorf("decoding tile list: %w", err)
		}
	case yaml.MappingNode:
		if err := doc.Decode(&yl); err != nil {
			return rhythm.Level{}, fmt.Errorf("decoding level: %w", err)
		}
	default:
		return rhythm.Level{}, fmt.Errorf("expected a tile list or a level document, got %s", kindName(doc.Kind))
	}

	return yl.toLevel()
}

func (yl YAMLLevel) toLevel() (rhythm.Level, error) {
	if len(yl.Tiles) == 0 {
		return rhythm.Level{}, ErrNoTiles
	}
	if math.IsNaN(yl.Speed) || math.IsInf(yl.Speed, 0) || yl.Speed < 0 {
		return rhythm.Level{}, fmt.Errorf("speed must be a finite non-negative number, got %g", yl.Speed)
	}

	level := rhythm.Level{
		Name:  yl.Name,
		Speed: yl.Speed,
		Tiles: make([]rhythm.Tile, len(yl.Tiles)),
	}
	for i, t := range yl.Tiles {
		dir, err := rhythm.ParseDirection(t.NextDir)
		if err != nil {
			return rhythm.Level{}, fmt.Errorf("tile %d: %w", i, err)
		}
		level.Tiles[i] = rhythm.Tile{Next: dir}
	}
	return level, nil
}

// Encode writes a level in the document form.
func Encode(level rhythm.Level) ([]byte, error) {
	yl := YAMLLevel{
		Name:  level.Name,
		Speed: level.Speed,
		Tiles: make([]YAMLTile, len(level.Tiles)),
	}
	for i, t := range level.Tiles {
		yl.Tiles[i] = YAMLTile{NextDir: t.Next.String()}
	}
	return yaml.Marshal(yl)
}

// Extensions returns the record file extensions in lookup order.
func Extensions() []string {
	return []string{".yaml", ".yml", ".json"}
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	case yaml.DocumentNode:
		return "document"
	default:
		return fmt.Sprintf("kind %d", k)
	}
}
