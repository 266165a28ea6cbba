package catalog

import (
	"testing"

	"window_quotation/internal/domain/entities"
)

func TestPatterns_RolesMatchPanelCount(t *testing.T) {
	for class, counts := range panelCounts {
		for _, n := range counts {
			ps := GetPatterns(class, n)
			if len(ps) == 0 {
				t.Fatalf("%s/%d: expected at least one pattern", class, n)
			}
			seen := map[string]bool{}
			for _, p := range ps {
				if len(p.Roles) != n {
					t.Fatalf("%s/%d/%s: roles=%d", class, n, p.ID, len(p.Roles))
				}
				if p.PanelCount != n || p.Class != class {
					t.Fatalf("%s/%d/%s: wrong key %s/%d", class, n, p.ID, p.Class, p.PanelCount)
				}
				if seen[p.ID] {
					t.Fatalf("%s/%d: duplicate id %s", class, n, p.ID)
				}
				seen[p.ID] = true
			}
		}
	}
}

func TestGetDefaultPattern(t *testing.T) {
	t.Run("first entry wins", func(t *testing.T) {
		p, ok := GetDefaultPattern(entities.ArchetypeSliding, 3)
		if !ok || p.ID != "fsf" {
			t.Fatalf("expected fsf, got %+v ok=%v", p, ok)
		}
	})

	t.Run("no catalog", func(t *testing.T) {
		if _, ok := GetDefaultPattern(entities.ArchetypeCasement, 1); ok {
			t.Fatalf("casement has no patterns")
		}
		if got := GetPatterns(entities.ArchetypeSliding, 7); len(got) != 0 {
			t.Fatalf("expected empty list, got %d", len(got))
		}
	})
}

func TestGetPatterns_ReturnsCopies(t *testing.T) {
	ps := GetPatterns(entities.ArchetypeSliding, 2)
	ps[0].Roles[0] = entities.RolePivot
	again := GetPatterns(entities.ArchetypeSliding, 2)
	if again[0].Roles[0] != entities.RoleFixed {
		t.Fatalf("catalog mutated through returned slice")
	}
}

func TestFindPattern_ScopedToPanelCount(t *testing.T) {
	if _, ok := FindPattern(entities.ArchetypeSliding, 4, "fs"); ok {
		t.Fatalf("2-panel id must not resolve for 4 panels")
	}
	if p, ok := FindPattern(entities.ArchetypeSliding, 2, "ss"); !ok || p.Name != "Both Sliding" {
		t.Fatalf("unexpected %+v", p)
	}
}

func TestResolvePattern_StaleIDFallsBackToDefault(t *testing.T) {
	cfg := entities.SlidingConfig{Panels: 4, PatternID: "fs"}
	p, ok := ResolvePattern(cfg)
	if !ok || p.ID != "fssf" {
		t.Fatalf("expected default fssf, got %+v", p)
	}
}

func TestPanelCounts(t *testing.T) {
	got := PanelCounts(entities.ArchetypeBay)
	if len(got) != 3 || got[0] != 3 || got[2] != 5 {
		t.Fatalf("unexpected bay counts %v", got)
	}
	if len(PanelCounts(entities.ArchetypePivot)) != 0 {
		t.Fatalf("pivot has no panel counts")
	}
}

func TestLookupArchetype(t *testing.T) {
	cases := []struct {
		in   string
		want entities.WindowArchetype
		ok   bool
	}{
		{"sliding", entities.ArchetypeSliding, true},
		{"Double-Hung", entities.ArchetypeDoubleHung, true},
		{"double hung", entities.ArchetypeDoubleHung, true},
		{"Bay Window", entities.ArchetypeBay, true},
		{"  PICTURE ", entities.ArchetypePicture, true},
		{"Single Hung Window (white)", entities.ArchetypeSingleHung, true},
		{"", "", false},
		{"skylight", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := LookupArchetype(tc.in)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("LookupArchetype(%q) = %q,%v want %q,%v", tc.in, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestArchetypes_Order(t *testing.T) {
	as := Archetypes()
	if len(as) != 9 || as[0].ID != entities.ArchetypeSliding || as[8].ID != entities.ArchetypePivot {
		t.Fatalf("unexpected archetype table %+v", as)
	}
	if DisplayName(entities.ArchetypeBay) != "Bay Window" {
		t.Fatalf("unexpected display name")
	}
}
