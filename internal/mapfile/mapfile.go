// Package mapfile reads and writes map documents.
//
// A document is YAML:
//
//	width: 2
//	height: 1
//	tiles:
//	  - x: 1
//	    y: 1
//	    items:
//	      - type: /turf/floor
//	      - type: /obj/lamp
//	        vars:
//	          name: red lamp
//
// Tiles that are not listed are empty.
package mapfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dshills/mapstorm/internal/engine/grid"
)

// Document is the serialized form of a map.
type Document struct {
	Width  int       `yaml:"width"`
	Height int       `yaml:"height"`
	Tiles  []TileDoc `yaml:"tiles,omitempty"`
}

// TileDoc is one non-empty tile.
type TileDoc struct {
	X     int       `yaml:"x"`
	Y     int       `yaml:"y"`
	Items []ItemDoc `yaml:"items,omitempty"`
}

// ItemDoc is one item on a tile, bottom to top.
type ItemDoc struct {
	Type string            `yaml:"type"`
	Vars map[string]string `yaml:"vars,omitempty"`
}

// Decode reads a map document from r.
func Decode(r io.Reader) (*grid.Map, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Path: "<reader>", Tile: -1, Message: "empty document", Err: err}
		}
		return nil, &ParseError{Path: "<reader>", Tile: -1, Message: err.Error(), Err: err}
	}
	return doc.Build()
}

// Build creates a map from the document.
func (d *Document) Build() (*grid.Map, error) {
	m, err := grid.NewMap(d.Width, d.Height)
	if err != nil {
		return nil, &ParseError{Path: "<reader>", Tile: -1, Message: err.Error(), Err: err}
	}

	seen := make(map[grid.Coord]int, len(d.Tiles))
	for i, td := range d.Tiles {
		tile, ok := m.Tile(td.X, td.Y)
		if !ok {
			return nil, tileError(i, "tile (%d,%d) outside %dx%d map", td.X, td.Y, d.Width, d.Height)
		}
		if prev, dup := seen[tile.Coord()]; dup {
			return nil, tileError(i, "tile (%d,%d) already defined at tiles[%d]", td.X, td.Y, prev)
		}
		seen[tile.Coord()] = i

		for j, it := range td.Items {
			if !strings.HasPrefix(it.Type, "/") || len(it.Type) < 2 {
				return nil, tileError(i, "item %d: invalid type path %q", j, it.Type)
			}
			tile.Add(grid.NewTileItem(it.Type, it.Vars))
		}
	}
	return m, nil
}

// FromMap returns the document form of m.
// Only non-empty tiles are listed, in x-major order.
func FromMap(m *grid.Map) *Document {
	doc := &Document{Width: m.Width(), Height: m.Height()}
	for _, tile := range m.Tiles() {
		if tile.IsEmpty() {
			continue
		}
		td := TileDoc{X: tile.X, Y: tile.Y}
		for _, item := range tile.Items() {
			td.Items = append(td.Items, ItemDoc{Type: item.Type, Vars: item.Vars()})
		}
		doc.Tiles = append(doc.Tiles, td)
	}
	return doc
}

// Encode writes m as a map document.
func Encode(w io.Writer, m *grid.Map) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromMap(m)); err != nil {
		return fmt.Errorf("encoding map: %w", err)
	}
	return enc.Close()
}

// Load reads a map document from path.
func Load(path string) (*grid.Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening map %s: %w", path, err)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}
	return m, nil
}

// Save writes m to path. The file is replaced atomically.
func Save(path string, m *grid.Map) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".mapstorm-*.yaml")
	if err != nil {
		return fmt.Errorf("saving map %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, m); err != nil {
		tmp.Close()
		return fmt.Errorf("saving map %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("saving map %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("saving map %s: %w", path, err)
	}
	return nil
}
