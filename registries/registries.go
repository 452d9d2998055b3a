// Package registries loads and holds the server's fixed set of data-driven
// registry tables (banner patterns, dimension types, damage types, and the
// like). Tables are read once at startup from a directory tree of JSON files
// and never mutated afterward.
package registries

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	ns "github.com/BaukeWestendorp/keisteen/java_protocol/net_structures"
)

// Kind names one of the fifteen registry tables this server holds.
type Kind string

const (
	KindBannerPattern    Kind = "banner_pattern"
	KindCatVariant       Kind = "cat_variant"
	KindChatType         Kind = "chat_type"
	KindChickenVariant   Kind = "chicken_variant"
	KindCowVariant       Kind = "cow_variant"
	KindDamageType       Kind = "damage_type"
	KindDimensionType    Kind = "dimension_type"
	KindFrogVariant      Kind = "frog_variant"
	KindPaintingVariant  Kind = "painting_variant"
	KindPigVariant       Kind = "pig_variant"
	KindTrimMaterial     Kind = "trim_material"
	KindTrimPattern      Kind = "trim_pattern"
	KindWolfSoundVariant Kind = "wolf_sound_variant"
	KindWolfVariant      Kind = "wolf_variant"
	KindWorldgenBiome    Kind = "worldgen_biome"
)

// Kinds lists all registry kinds this server loads, in the fixed order the
// catalog iterates them when none is specified otherwise.
var Kinds = []Kind{
	KindBannerPattern, KindCatVariant, KindChatType, KindChickenVariant,
	KindCowVariant, KindDamageType, KindDimensionType, KindFrogVariant,
	KindPaintingVariant, KindPigVariant, KindTrimMaterial, KindTrimPattern,
	KindWolfSoundVariant, KindWolfVariant, KindWorldgenBiome,
}

// Entry is anything a registry table can hold: an identifier and whatever
// raw JSON it was parsed from, retained for re-encoding into Registry Data.
type Entry struct {
	ID  ns.Identifier
	Raw json.RawMessage
}

// Table is one registry's contents, keyed by resource location and kept in
// lexicographic iteration order.
type Table struct {
	Kind    Kind
	entries map[ns.Identifier]Entry
	order   []ns.Identifier
}

// Entries returns the table's entries in resource-location order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.order))
	for i, id := range t.order {
		out[i] = t.entries[id]
	}
	return out
}

// Lookup returns an entry by resource location.
func (t *Table) Lookup(id ns.Identifier) (Entry, bool) {
	e, ok := t.entries[id]
	return e, ok
}

func newTable(kind Kind) *Table {
	return &Table{Kind: kind, entries: map[ns.Identifier]Entry{}}
}

func (t *Table) insert(id ns.Identifier, raw json.RawMessage) {
	if _, exists := t.entries[id]; !exists {
		t.order = append(t.order, id)
	}
	t.entries[id] = Entry{ID: id, Raw: raw}
}

func (t *Table) sort() {
	sort.Slice(t.order, func(i, j int) bool { return t.order[i] < t.order[j] })
}

// Catalog is the complete, immutable set of loaded registry tables.
type Catalog struct {
	tables map[Kind]*Table
}

// Table returns the table for the given kind, or nil if it isn't part of
// this server's fixed registry set.
func (c *Catalog) Table(kind Kind) *Table {
	return c.tables[kind]
}

// Kinds returns the registry kinds present in the catalog, in the fixed
// order defined by the package-level Kinds slice.
func (c *Catalog) Kinds() []Kind {
	return Kinds
}

// Load walks root for assets/registries/<namespace>/<path>/*.json files and
// builds a Catalog. Unknown (non-JSON, or JSON under an unrecognized path)
// files are ignored; a malformed JSON entry for a known kind is fatal.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Registry_Data
func Load(root string) (*Catalog, error) {
	c := &Catalog{tables: map[Kind]*Table{}}
	for _, k := range Kinds {
		c.tables[k] = newTable(k)
	}

	base := filepath.Join(root, "assets", "registries")
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d == nil {
				// root directory itself may not exist; that's an empty catalog, not an error.
				return fs.SkipAll
			}
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}

		rel, err := filepath.Rel(base, path)
		if err != nil {
			return err
		}
		segments := strings.Split(filepath.ToSlash(rel), "/")
		if len(segments) != 3 {
			// not namespace/kind/file.json; not a shape this loader recognizes.
			return nil
		}
		namespace, kindName, file := segments[0], segments[1], segments[2]

		table, ok := c.tables[Kind(kindName)]
		if !ok {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read registry entry %s: %w", path, err)
		}
		var raw json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("failed to parse registry entry %s: %w", path, err)
		}

		stem := strings.TrimSuffix(file, ".json")
		id := ns.Identifier(fmt.Sprintf("%s:%s", namespace, stem))
		table.insert(id, raw)
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, t := range c.tables {
		t.sort()
	}
	return c, nil
}
