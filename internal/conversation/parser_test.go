package conversation

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/resepi/internal/domain"
	"github.com/hammamikhairi/resepi/internal/logger"
)

func TestKeywordParser(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	parser := NewKeywordParser(log)
	ctx := context.Background()

	tests := []struct {
		input       string
		wantType    domain.EventType
		wantPayload string
	}{
		// Search
		{"cari nasi", domain.EventSearchChanged, "nasi"},
		{"search  Es Teh ", domain.EventSearchChanged, "Es Teh"},
		{"cari", domain.EventSearchChanged, ""},

		// Ingredient
		{"bahan santan", domain.EventIngredientChanged, "santan"},
		{"ingredient rice", domain.EventIngredientChanged, "rice"},
		{"chip gula merah", domain.EventChipClicked, "gula merah"},

		// Filters
		{"clear", domain.EventClearFilters, ""},
		{"hapus", domain.EventClearFilters, ""},
		{"filter", domain.EventToggleFilterPanel, ""},

		// Paging
		{"next", domain.EventNext, ""},
		{"lanjut", domain.EventNext, ""},
		{"prev", domain.EventPrevious, ""},
		{"sebelumnya", domain.EventPrevious, ""},
		{"page 3", domain.EventGoTo, "3"},
		{"halaman 2", domain.EventGoTo, "2"},

		// Detail
		{"1", domain.EventSelectCard, "1"},
		{"12", domain.EventSelectCard, "12"},
		{"open rendang", domain.EventSelectRecipe, "rendang"},
		{"buka 2", domain.EventSelectRecipe, "2"},
		{"tutup", domain.EventCloseDetail, ""},
		{"simpan", domain.EventSaveRecipe, ""},
		{"favorit", domain.EventShowFavourites, ""},
		{"hapus favorit", domain.EventRemoveFavourite, ""},
		{"hapus favorit 2", domain.EventRemoveFavourite, "2"},
		{"unsave rendang", domain.EventRemoveFavourite, "rendang"},
		{"hapus filter", domain.EventClearFilters, ""},

		// One-letter commands
		{"n", domain.EventNext, ""},
		{"p", domain.EventPrevious, ""},
		{"h", domain.EventHelp, ""},
		{"q", domain.EventQuit, ""},
		{"cari n", domain.EventSearchChanged, "n"},

		// Meta
		{"help", domain.EventHelp, ""},
		{"?", domain.EventHelp, ""},
		{"quit", domain.EventQuit, ""},
		{"keluar", domain.EventQuit, ""},

		// Unknown
		{"soto ayam", domain.EventUnknown, "soto ayam"},
		{"123", domain.EventUnknown, "123"},
		{"", domain.EventUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ev, err := parser.Parse(ctx, tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.wantType, ev.Type, "input=%q", tt.input)
			require.Equal(t, tt.wantPayload, ev.Payload, "input=%q", tt.input)
		})
	}
}

func TestAsSearch(t *testing.T) {
	got := AsSearch(&domain.Event{Type: domain.EventUnknown, Payload: "soto"})
	require.Equal(t, domain.Event{Type: domain.EventSearchChanged, Payload: "soto"}, *got)

	next := &domain.Event{Type: domain.EventNext}
	require.Same(t, next, AsSearch(next))

	empty := &domain.Event{Type: domain.EventUnknown}
	require.Equal(t, domain.EventUnknown, AsSearch(empty).Type)
}

func TestCLINotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewCLINotifier(logger.New(logger.LevelOff, nil), WriterPrintFunc(&buf))

	require.NoError(t, n.Notify(context.Background(), "Resep disimpan"))
	require.NoError(t, n.NotifyUrgent(context.Background(), "Gagal"))
	require.Contains(t, buf.String(), "Resep disimpan")
	require.Contains(t, buf.String(), "Gagal")
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		name       string
		ev         domain.EventType
		err        error
		wantMsg    string
		wantUrgent bool
	}{
		{"quiet success", domain.EventNext, nil, "", false},
		{"saved", domain.EventSaveRecipe, nil, "Resep disimpan ke favorit", false},
		{"already saved", domain.EventSaveRecipe, fmt.Errorf("saving: %w", domain.ErrAlreadyExists), "Resep sudah ada di favorit", false},
		{"nothing open", domain.EventSaveRecipe, domain.ErrNoSelection, "Buka resep terlebih dahulu", true},
		{"bad page", domain.EventGoTo, fmt.Errorf("page 9: %w", domain.ErrPageOutOfRange), "Halaman tidak tersedia", true},
		{"missing recipe", domain.EventSelectRecipe, domain.ErrNotFound, "Resep tidak ditemukan", true},
		{"removed", domain.EventRemoveFavourite, nil, "Resep dihapus dari favorit", false},
		{"not a favourite", domain.EventRemoveFavourite, fmt.Errorf("removing: %w", domain.ErrNotFound), "Resep tidak ada di favorit", true},
		{"other", domain.EventNext, errors.New("disk on fire"), "disk on fire", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, urgent := Outcome(tt.ev, tt.err)
			require.Equal(t, tt.wantMsg, msg)
			require.Equal(t, tt.wantUrgent, urgent)
		})
	}
}
