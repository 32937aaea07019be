// Package maps loads grid maps from their text description format and
// discovers map files from the builtin set and the user's map directory.
// This package depends on raycast but raycast does not depend on maps.
package maps

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/avierno/raywalk/internal/raycast"
)

// ErrMapFormat is wrapped by every map parse failure: unknown tokens,
// ragged rows, empty files. A malformed map is fatal before any render
// attempt, never silently defaulted.
var ErrMapFormat = errors.New("malformed map")

// Map description tokens: one row per line, tokens separated by spaces.
// "W" is a wall, "-" an empty cell, "P" the optional spawn marker (an
// empty cell where the viewer starts).
const (
	tokenWall  = "W"
	tokenEmpty = "-"
	tokenSpawn = "P"
)

// Map is a parsed, validated map ready for a render session.
type Map struct {
	ID    string // file base name without extension
	Grid  *raycast.GridMap
	Spawn raycast.Position // world coordinates of the spawn cell's center
}

// Parse builds a Map from the text description. The grid must be
// rectangular with at least one row and column, contain only the known
// tokens, and at most one spawn marker. Without a marker the viewer spawns
// at the center of the first empty cell.
func Parse(id string, data []byte, cellSize int) (*Map, error) {
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 1 && strings.TrimSpace(lines[0]) == "" {
		return nil, fmt.Errorf("%w: %s: empty map description", ErrMapFormat, id)
	}

	var (
		cells    [][]raycast.Cell
		spawn    *raycast.Position
		firstGap *raycast.Position
	)

	for rowIdx, line := range lines {
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			return nil, fmt.Errorf("%w: %s: row %d is empty", ErrMapFormat, id, rowIdx+1)
		}
		if len(cells) > 0 && len(tokens) != len(cells[0]) {
			return nil, fmt.Errorf("%w: %s: row %d has %d cells, expected %d",
				ErrMapFormat, id, rowIdx+1, len(tokens), len(cells[0]))
		}

		row := make([]raycast.Cell, len(tokens))
		for colIdx, tok := range tokens {
			switch tok {
			case tokenWall:
				row[colIdx] = raycast.CellWall
			case tokenEmpty, tokenSpawn:
				row[colIdx] = raycast.CellEmpty
				pos := raycast.Position{
					X: raycast.ToWorld(colIdx, cellSize),
					Y: raycast.ToWorld(rowIdx, cellSize),
				}
				if tok == tokenSpawn {
					if spawn != nil {
						return nil, fmt.Errorf("%w: %s: more than one spawn marker", ErrMapFormat, id)
					}
					spawn = &pos
				} else if firstGap == nil {
					firstGap = &pos
				}
			default:
				return nil, fmt.Errorf("%w: %s: unknown token %q at row %d column %d",
					ErrMapFormat, id, tok, rowIdx+1, colIdx+1)
			}
		}
		cells = append(cells, row)
	}

	grid, err := raycast.NewGridMap(cells, cellSize)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", id, err)
	}

	if spawn == nil {
		spawn = firstGap
	}
	if spawn == nil {
		return nil, fmt.Errorf("%w: %s: map has no empty cell to spawn in", ErrMapFormat, id)
	}

	return &Map{ID: id, Grid: grid, Spawn: *spawn}, nil
}

// Info names a discoverable map and where it came from.
type Info struct {
	ID      string
	Builtin bool
	Path    string // empty for builtin maps
}

// Loader finds maps in the builtin set and, optionally, a user directory.
// User maps shadow builtins with the same ID.
type Loader struct {
	Root     string // user map directory; may be empty or missing
	CellSize int
}

// NewLoader creates a loader for the given user directory and cell size.
func NewLoader(root string, cellSize int) *Loader {
	return &Loader{Root: root, CellSize: cellSize}
}

// List returns the discoverable maps sorted by ID.
func (l *Loader) List() ([]Info, error) {
	byID := make(map[string]Info)
	for _, id := range builtinIDs() {
		byID[id] = Info{ID: id, Builtin: true}
	}

	if l.Root != "" {
		entries, err := os.ReadDir(l.Root)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("maps: reading %s: %w", l.Root, err)
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), mapExtension) {
				continue
			}
			id := strings.TrimSuffix(e.Name(), mapExtension)
			byID[id] = Info{ID: id, Path: filepath.Join(l.Root, e.Name())}
		}
	}

	infos := make([]Info, 0, len(byID))
	for _, info := range byID {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos, nil
}

// Load parses the map with the given ID, searching the user directory
// first and the builtin set second.
func (l *Loader) Load(id string) (*Map, error) {
	if l.Root != "" {
		path := filepath.Join(l.Root, id+mapExtension)
		if data, err := os.ReadFile(path); err == nil {
			return Parse(id, data, l.CellSize)
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("maps: reading %s: %w", path, err)
		}
	}

	if data, ok := builtinData(id); ok {
		return Parse(id, data, l.CellSize)
	}
	return nil, fmt.Errorf("maps: unknown map %q", id)
}

// LoadFile parses a map straight from a file path, bypassing discovery.
func (l *Loader) LoadFile(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("maps: reading %s: %w", path, err)
	}
	id := strings.TrimSuffix(filepath.Base(path), mapExtension)
	return Parse(id, data, l.CellSize)
}
