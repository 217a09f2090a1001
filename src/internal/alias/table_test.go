package alias

import (
	"strings"
	"testing"
)

func TestDefault_Resolve(t *testing.T) {
	table := Default()

	tests := []struct {
		name     string
		version  string
		expected string
	}{
		{name: "java 8 shorthand", version: "8", expected: "1.8"},
		{name: "java 11 shorthand", version: "11", expected: "11.0.1"},
		{name: "java 1 shorthand", version: "1", expected: "1.0"},
		{name: "python identity entry", version: "3.7", expected: "3.7"},
		{name: "canonical value passes through", version: "1.8", expected: "1.8"},
		{name: "unknown version passes through", version: "17.0.2", expected: "17.0.2"},
		{name: "default java version is not aliased", version: "14", expected: "14"},
		{name: "empty token", version: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.Resolve(tt.version); got != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.version, got, tt.expected)
			}
		})
	}
}

func TestResolve_IsNotChained(t *testing.T) {
	// "3" -> "1.3" must not be resolved again even if "1.3" were a key
	table := New(Entry{Key: "3", Value: "1.3"}, Entry{Key: "1.3", Value: "13"})

	if got := table.Resolve("3"); got != "1.3" {
		t.Errorf("Resolve(\"3\") = %q, want \"1.3\"", got)
	}
}

func keysOf(t *Table) []string {
	var keys []string
	for _, e := range t.Entries() {
		keys = append(keys, e.Key)
	}
	return keys
}

func TestDefault_Order(t *testing.T) {
	expected := []string{"11", "8", "7", "6", "5", "4", "3", "2", "1", "3.5", "3.7", "3.8"}
	keys := keysOf(Default())

	if len(keys) != len(expected) {
		t.Fatalf("keys returned %d keys, want %d", len(keys), len(expected))
	}
	for i := range expected {
		if keys[i] != expected[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], expected[i])
		}
	}
}

func TestDescribe(t *testing.T) {
	table := New(Entry{Key: "8", Value: "1.8"}, Entry{Key: "3.7", Value: "3.7"})

	got := table.Describe(" ,")
	want := "8 -> 1.8 ,3.7 -> 3.7"
	if got != want {
		t.Errorf("Describe() = %q, want %q", got, want)
	}

	if New().Describe(", ") != "" {
		t.Error("Describe() on an empty table should be empty")
	}
}

func TestMerge(t *testing.T) {
	base := Default()
	merged := base.Merge(map[string]string{
		"8":   "1.8.0_292",
		"17":  "17.0.2",
		"3.9": "3.9",
	})

	t.Run("override keeps position", func(t *testing.T) {
		if v, _ := merged.Lookup("8"); v != "1.8.0_292" {
			t.Errorf("Lookup(\"8\") = %q, want \"1.8.0_292\"", v)
		}
		if keysOf(merged)[1] != "8" {
			t.Errorf("overridden key moved to %v", keysOf(merged))
		}
	})

	t.Run("new keys appended sorted", func(t *testing.T) {
		keys := keysOf(merged)
		tail := strings.Join(keys[len(keys)-2:], ",")
		if tail != "17,3.9" {
			t.Errorf("appended keys = %q, want \"17,3.9\"", tail)
		}
		if merged.Len() != base.Len()+2 {
			t.Errorf("Len() = %d, want %d", merged.Len(), base.Len()+2)
		}
	})

	t.Run("base is untouched", func(t *testing.T) {
		if v, _ := base.Lookup("8"); v != "1.8" {
			t.Errorf("base Lookup(\"8\") = %q after Merge, want \"1.8\"", v)
		}
		if _, ok := base.Lookup("17"); ok {
			t.Error("base table gained a key from Merge")
		}
	})
}

func TestEntries_ReturnsCopy(t *testing.T) {
	table := Default()
	entries := table.Entries()
	entries[0].Value = "changed"

	if v, _ := table.Lookup("11"); v != "11.0.1" {
		t.Errorf("mutating Entries() result changed the table: %q", v)
	}
}
