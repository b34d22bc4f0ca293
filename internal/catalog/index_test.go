package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hammamikhairi/resepi/internal/domain"
)

func TestNormalizeIngredient(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2 cups rice", "rice"},
		{"1 egg", "egg"},
		{"3 eggs", "eggs"},
		{"1 liter water", "water"},
		{"sugar", "sugar"},
		{"  Garam Secukupnya ", "garam secukupnya"},
		{"200gr tepung terigu", "tepung terigu"},
		{"2 sendok makan gula", "makan gula"},
		{"1 1/2 cup sugar", "sugar"},
		{"3 siung bawang putih", "bawang putih"},
		{"5", ""},
		{"", ""},
		{"Bawang 2 siung", "bawang 2 siung"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeIngredient(tt.in); got != tt.want {
				t.Fatalf("NormalizeIngredient(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIngredientIdempotent(t *testing.T) {
	inputs := []string{
		"2 cups rice", "1 egg", "2 sendok makan gula", "2 cups 3 eggs",
		"2 3 eggs", "Santan Kental", "1/2 sdt merica", "4 buah cabai merah",
	}
	for _, in := range inputs {
		once := NormalizeIngredient(in)
		twice := NormalizeIngredient(once)
		if once != twice {
			t.Errorf("not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestBuildIndex(t *testing.T) {
	recipes := []domain.Recipe{
		{ID: "a", Name: "A", Ingredients: []string{"2 cups rice", "1 egg"}},
		{ID: "b", Name: "B", Ingredients: []string{"3 eggs", "1 egg", "2"}},
	}

	got := BuildIndex(recipes)
	want := []string{"egg", "eggs", "rice"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("index mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildIndexEmpty(t *testing.T) {
	if got := BuildIndex(nil); len(got) != 0 {
		t.Fatalf("expected empty index, got %v", got)
	}
}

func TestIndexMemoizesByVersion(t *testing.T) {
	var idx Index
	first := []domain.Recipe{{ID: "a", Name: "A", Ingredients: []string{"1 egg"}}}
	second := []domain.Recipe{{ID: "b", Name: "B", Ingredients: []string{"2 cups rice"}}}

	if diff := cmp.Diff([]string{"egg"}, idx.Names(1, first)); diff != "" {
		t.Fatalf("version 1 (-want +got):\n%s", diff)
	}
	// Same version: cached result even if a different slice is passed.
	if diff := cmp.Diff([]string{"egg"}, idx.Names(1, second)); diff != "" {
		t.Fatalf("cache miss on same version (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"rice"}, idx.Names(2, second)); diff != "" {
		t.Fatalf("version 2 (-want +got):\n%s", diff)
	}
}

func TestPopular(t *testing.T) {
	names := []string{"a", "b", "c"}
	tests := []struct {
		n    int
		want []string
	}{
		{0, nil},
		{2, []string{"a", "b"}},
		{8, []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, Popular(names, tt.n)); diff != "" {
			t.Errorf("Popular(%d) (-want +got):\n%s", tt.n, diff)
		}
	}
}
