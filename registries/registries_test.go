package registries_test

import (
	"testing"

	"github.com/BaukeWestendorp/keisteen/registries"
)

func TestLoadOrdersEntriesLexicographically(t *testing.T) {
	cat, err := registries.Load("testdata")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	table := cat.Table(registries.KindBannerPattern)
	if table == nil {
		t.Fatalf("banner_pattern table missing")
	}

	entries := table.Entries()
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].ID != "minecraft:creeper" || entries[1].ID != "minecraft:flow" {
		t.Errorf("entries = [%s, %s], want lexicographic [minecraft:creeper, minecraft:flow]", entries[0].ID, entries[1].ID)
	}
}

func TestLoadMissingDirYieldsEmptyCatalog(t *testing.T) {
	cat, err := registries.Load("testdata/does-not-exist")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	for _, k := range registries.Kinds {
		if len(cat.Table(k).Entries()) != 0 {
			t.Errorf("table %s not empty for missing root", k)
		}
	}
}

func TestAllKindsPresentInEmptyCatalog(t *testing.T) {
	cat, err := registries.Load("testdata")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	for _, k := range registries.Kinds {
		if cat.Table(k) == nil {
			t.Errorf("table %s not present", k)
		}
	}
}
