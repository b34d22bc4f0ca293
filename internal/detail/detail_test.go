package detail

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hammamikhairi/resepi/internal/domain"
)

func TestNewNilIsClosed(t *testing.T) {
	if v := New(nil); v != nil {
		t.Fatalf("expected nil view, got %+v", v)
	}
	if got := (*View)(nil).Markdown(); got != "" {
		t.Fatalf("nil markdown = %q", got)
	}
	out, err := Render(nil, 80)
	if err != nil || out != "" {
		t.Fatalf("Render(nil) = %q, %v", out, err)
	}
}

func TestNewDefaults(t *testing.T) {
	r := &domain.Recipe{
		ID:          "es-teh",
		Name:        "Es Teh",
		Type:        domain.TypeBeverage,
		Ingredients: []string{"1 liter water", "sugar"},
		Steps:       []string{"Seduh teh.", "Tambahkan gula.", "Sajikan dingin."},
	}
	v := New(r)

	if v.Rating != domain.DefaultRating {
		t.Fatalf("rating = %v, want %v", v.Rating, domain.DefaultRating)
	}
	if v.Description != domain.DefaultDescription {
		t.Fatalf("description = %q", v.Description)
	}
	if v.Badge != "Minuman" {
		t.Fatalf("badge = %q", v.Badge)
	}

	want := []Stat{
		{"Bahan", "2 item"},
		{"Langkah", "3 langkah"},
		{"Porsi", "2-3 orang"},
		{"Waktu", "30 menit"},
	}
	if diff := cmp.Diff(want, v.Stats); diff != "" {
		t.Fatalf("stats (-want +got):\n%s", diff)
	}

	r.Ingredients[0] = "changed"
	if v.Ingredients[0] != "1 liter water" {
		t.Fatal("view shares ingredient storage with the recipe")
	}
}

func TestMarkdownKeepsStepOrder(t *testing.T) {
	rating := 4.2
	v := New(&domain.Recipe{
		ID:          "nasi-goreng",
		Name:        "Nasi Goreng",
		Description: "Enak.",
		Ingredients: []string{"2 cups rice", "1 egg"},
		Steps:       []string{"Panaskan minyak.", "Masukkan nasi.", "Aduk."},
		Rating:      &rating,
	})
	md := v.Markdown()

	for _, want := range []string{
		"# Nasi Goreng",
		"**Makanan** · ★ 4.2",
		"Enak.",
		"- 2 cups rice\n- 1 egg\n",
		"1. Panaskan minyak.\n2. Masukkan nasi.\n3. Aduk.\n",
		"2 item",
		"3 langkah",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestRender(t *testing.T) {
	v := New(&domain.Recipe{ID: "x", Name: "Soto Ayam", Steps: []string{"Rebus ayam."}})
	out, err := Render(v, 60)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "Soto Ayam") {
		t.Fatalf("rendered output lost the title:\n%s", out)
	}
}
