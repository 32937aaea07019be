package maps

import (
	"embed"
	"sort"
	"strings"
)

const mapExtension = ".map"

//go:embed builtin/*.map
var builtinFS embed.FS

// builtinIDs returns the IDs of the embedded maps, sorted.
func builtinIDs() []string {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, strings.TrimSuffix(e.Name(), mapExtension))
	}
	sort.Strings(ids)
	return ids
}

// builtinData returns the raw description of an embedded map.
func builtinData(id string) ([]byte, bool) {
	data, err := builtinFS.ReadFile("builtin/" + id + mapExtension)
	if err != nil {
		return nil, false
	}
	return data, true
}
