package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sandeepkv93/leettrack/internal/model"
	"github.com/sandeepkv93/leettrack/internal/progress"
)

func sampleCatalog() model.Catalog {
	return model.Catalog{Categories: []model.Category{
		{ID: "arrays", Name: "Arrays", Items: []model.Item{
			{ID: "a1", Name: "Two Sum", Difficulty: model.DifficultyEasy},
			{ID: "a2", Name: "3Sum", Difficulty: model.DifficultyMedium},
		}},
		{ID: "graphs", Name: "Graphs", Items: []model.Item{
			{ID: "g1", Name: "Number of Islands", Difficulty: model.DifficultyMedium},
			{ID: "g2", Name: "Word Ladder", Difficulty: model.DifficultyHard},
		}},
		{ID: "dp", Name: "DP", Items: []model.Item{
			{ID: "d1", Name: "Climbing Stairs", Difficulty: model.DifficultyEasy},
			{ID: "d2", Name: "Combination Sum IV", Difficulty: model.DifficultyMedium},
		}},
	}}
}

func TestApplyIdentityReturnsCatalogUnchanged(t *testing.T) {
	catalog := sampleCatalog()
	maps := []progress.Map{{}, {"a1": true, "g2": true, "orphan": true}}
	for _, m := range maps {
		for _, criteria := range []Criteria{{}, {SearchTerm: "", Difficulty: DifficultyAll, Status: StatusAll}} {
			got := Apply(catalog, m, criteria)
			if diff := cmp.Diff(catalog, got); diff != "" {
				t.Fatalf("identity filter changed catalog (-want +got):\n%s", diff)
			}
		}
	}
}

func TestApplySumDoneScenario(t *testing.T) {
	catalog := model.Catalog{Categories: sampleCatalog().Categories[:1]}
	m := progress.Map{"a1": true}

	got := Apply(catalog, m, Criteria{SearchTerm: "SUM", Status: StatusDone})
	want := model.Catalog{Categories: []model.Category{
		{ID: "arrays", Name: "Arrays", Items: []model.Item{
			{ID: "a1", Name: "Two Sum", Difficulty: model.DifficultyEasy},
		}},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("filtered catalog mismatch (-want +got):\n%s", diff)
	}
}

func TestApplySearchTermKeepsWhitespace(t *testing.T) {
	catalog := model.Catalog{Categories: sampleCatalog().Categories[:1]}
	got := Apply(catalog, progress.Map{}, Criteria{SearchTerm: " sum"})
	want := model.Catalog{Categories: []model.Category{
		{ID: "arrays", Name: "Arrays", Items: []model.Item{
			{ID: "a1", Name: "Two Sum", Difficulty: model.DifficultyEasy},
		}},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("filtered catalog mismatch (-want +got):\n%s", diff)
	}

	if got := Apply(catalog, progress.Map{}, Criteria{SearchTerm: "  "}); len(got.Categories) != 0 {
		t.Fatalf("no name holds two spaces, got %+v", got.Categories)
	}
}

func TestApplyDropsEmptyCategoriesAndKeepsOrder(t *testing.T) {
	catalog := sampleCatalog()
	m := progress.Map{"a2": true, "d2": true}

	tests := []struct {
		name     string
		criteria Criteria
		want     map[string][]string
		order    []string
	}{
		{
			name:     "search across categories",
			criteria: Criteria{SearchTerm: "sum"},
			order:    []string{"arrays", "dp"},
			want:     map[string][]string{"arrays": {"a1", "a2"}, "dp": {"d2"}},
		},
		{
			name:     "difficulty only",
			criteria: Criteria{Difficulty: DifficultyHard},
			order:    []string{"graphs"},
			want:     map[string][]string{"graphs": {"g2"}},
		},
		{
			name:     "not done medium",
			criteria: Criteria{Difficulty: DifficultyMedium, Status: StatusNotDone},
			order:    []string{"graphs"},
			want:     map[string][]string{"graphs": {"g1"}},
		},
		{
			name:     "nothing matches",
			criteria: Criteria{SearchTerm: "zzz"},
			order:    []string{},
			want:     map[string][]string{},
		},
	}
	for _, tt := range tests {
		got := Apply(catalog, m, tt.criteria)
		order := make([]string, 0, len(got.Categories))
		items := make(map[string][]string, len(got.Categories))
		for _, cat := range got.Categories {
			if len(cat.Items) == 0 {
				t.Fatalf("%s: category %q kept with no items", tt.name, cat.ID)
			}
			order = append(order, cat.ID)
			items[cat.ID] = cat.ItemIDs()
		}
		if diff := cmp.Diff(tt.order, order); diff != "" {
			t.Fatalf("%s: category order mismatch (-want +got):\n%s", tt.name, diff)
		}
		if diff := cmp.Diff(tt.want, items); diff != "" {
			t.Fatalf("%s: items mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	catalog := sampleCatalog()
	before := sampleCatalog()
	_ = Apply(catalog, progress.Map{}, Criteria{SearchTerm: "two"})
	if diff := cmp.Diff(before, catalog); diff != "" {
		t.Fatalf("input catalog mutated (-before +after):\n%s", diff)
	}
}

func TestApplyTracksProgressChanges(t *testing.T) {
	catalog := sampleCatalog()
	criteria := Criteria{Status: StatusDone}
	if got := Apply(catalog, progress.Map{}, criteria); len(got.Categories) != 0 {
		t.Fatalf("expected no done items, got %+v", got)
	}
	m := progress.Toggle(progress.Map{}, "g1")
	got := Apply(catalog, m, criteria)
	if len(got.Categories) != 1 || got.Categories[0].ID != "graphs" {
		t.Fatalf("expected graphs after toggle, got %+v", got)
	}
}

func TestParseDifficultyAndStatus(t *testing.T) {
	difficulties := map[string]Difficulty{
		"":       DifficultyAll,
		"all":    DifficultyAll,
		"Easy":   DifficultyEasy,
		"medium": DifficultyMedium,
		"HARD":   DifficultyHard,
	}
	for in, want := range difficulties {
		got, err := ParseDifficulty(in)
		if err != nil || got != want {
			t.Fatalf("ParseDifficulty(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseDifficulty("expert"); err == nil {
		t.Fatal("expected error for unknown difficulty")
	}

	statuses := map[string]Status{
		"":        StatusAll,
		"all":     StatusAll,
		"done":    StatusDone,
		"undone":  StatusNotDone,
		"notdone": StatusNotDone,
		"Todo":    StatusNotDone,
	}
	for in, want := range statuses {
		got, err := ParseStatus(in)
		if err != nil || got != want {
			t.Fatalf("ParseStatus(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseStatus("maybe"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestCriteriaIsZeroAndCycling(t *testing.T) {
	if !(Criteria{}).IsZero() || !(Criteria{Difficulty: DifficultyAll, Status: StatusAll}).IsZero() {
		t.Fatal("empty criteria should be zero")
	}
	if (Criteria{SearchTerm: "  "}).IsZero() {
		t.Fatal("a whitespace search term is still a filter")
	}
	if (Criteria{Status: StatusDone}).IsZero() {
		t.Fatal("status filter is not zero")
	}

	d := DifficultyAll
	seen := []Difficulty{}
	for range Difficulties {
		d = d.Next()
		seen = append(seen, d)
	}
	if diff := cmp.Diff([]Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyAll}, seen); diff != "" {
		t.Fatalf("difficulty cycle mismatch (-want +got):\n%s", diff)
	}
	if StatusNotDone.Next() != StatusAll || Status("bogus").Next() != StatusAll {
		t.Fatal("status cycle should wrap to all")
	}
}
