// Package conversation turns typed or spoken commands into page events
// and reports status back to the user.
package conversation

import (
	"context"
	"regexp"
	"strings"

	"github.com/hammamikhairi/resepi/internal/domain"
	"github.com/hammamikhairi/resepi/internal/logger"
)

// Compile-time interface check.
var _ domain.EventParser = (*KeywordParser)(nil)

// KeywordParser matches command lines to events using keywords. Commands
// are accepted in Indonesian and English.
type KeywordParser struct {
	log      *logger.Logger
	patterns []patternRule
}

type patternRule struct {
	regex *regexp.Regexp
	event domain.EventType
	// withArg rules capture the rest of the line as payload.
	withArg bool
}

// NewKeywordParser creates a keyword-based command parser.
func NewKeywordParser(log *logger.Logger) *KeywordParser {
	p := &KeywordParser{log: log}
	p.patterns = []patternRule{
		{regexp.MustCompile(`(?i)^(?:cari|search|find)(?:\s+(.*))?$`), domain.EventSearchChanged, true},
		{regexp.MustCompile(`(?i)^(?:bahan|ingredient|with)(?:\s+(.*))?$`), domain.EventIngredientChanged, true},
		{regexp.MustCompile(`(?i)^(?:chip|tag)\s+(.+)$`), domain.EventChipClicked, true},
		{regexp.MustCompile(`(?i)^(?:halaman|page|goto|go to)\s+(.+)$`), domain.EventGoTo, true},
		{regexp.MustCompile(`(?i)^(?:buka|open|select|pick|lihat)\s+(.+)$`), domain.EventSelectRecipe, true},
		{regexp.MustCompile(`(?i)^(?:hapus favorit|unsave|remove)(?:\s+(.*))?$`), domain.EventRemoveFavourite, true},
		{regexp.MustCompile(`(?i)^(clear|reset|hapus|hapus filter)$`), domain.EventClearFilters, false},
		{regexp.MustCompile(`(?i)^(filter|filters|saring)$`), domain.EventToggleFilterPanel, false},
		{regexp.MustCompile(`(?i)^(next|n|lanjut|selanjutnya)$`), domain.EventNext, false},
		{regexp.MustCompile(`(?i)^(prev|previous|p|back|sebelumnya)$`), domain.EventPrevious, false},
		{regexp.MustCompile(`(?i)^(close|tutup|kembali)$`), domain.EventCloseDetail, false},
		{regexp.MustCompile(`(?i)^(save|simpan|simpan resep)$`), domain.EventSaveRecipe, false},
		{regexp.MustCompile(`(?i)^(favorit|favourites|favorites|fav)$`), domain.EventShowFavourites, false},
		{regexp.MustCompile(`(?i)^(help|h|\?|bantuan)$`), domain.EventHelp, false},
		{regexp.MustCompile(`(?i)^(quit|exit|q|keluar)$`), domain.EventQuit, false},
	}
	return p
}

// Parse converts one command line into an event. Lines that match no
// command come back as EventUnknown with the trimmed line as payload, so
// the caller can treat free speech as a search.
func (p *KeywordParser) Parse(ctx context.Context, input string) (*domain.Event, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return &domain.Event{Type: domain.EventUnknown}, nil
	}

	p.log.Debug("parsing input: %q", trimmed)

	// A bare number is the card label on screen, never an id.
	if len(trimmed) <= 2 && isDigits(trimmed) {
		return &domain.Event{Type: domain.EventSelectCard, Payload: trimmed}, nil
	}

	for _, rule := range p.patterns {
		m := rule.regex.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		p.log.Debug("matched event: %s", rule.event)
		if rule.withArg {
			return &domain.Event{Type: rule.event, Payload: strings.TrimSpace(m[1])}, nil
		}
		return &domain.Event{Type: rule.event}, nil
	}

	p.log.Debug("no match, returning unknown event")
	return &domain.Event{Type: domain.EventUnknown, Payload: trimmed}, nil
}

// AsSearch maps an unmatched line to a search, which is what spoken input
// usually means.
func AsSearch(ev *domain.Event) *domain.Event {
	if ev.Type == domain.EventUnknown && ev.Payload != "" {
		return &domain.Event{Type: domain.EventSearchChanged, Payload: ev.Payload}
	}
	return ev
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}

// Help lists the commands the parser understands.
const Help = `Perintah:
  cari <kata>      cari resep berdasarkan nama
  bahan <bahan>    saring berdasarkan bahan
  chip <bahan>     pilih chip bahan
  filter           tampilkan/sembunyikan panel bahan
  clear            hapus semua filter
  next, prev       halaman berikutnya / sebelumnya
  page <n>         ke halaman n
  <n>              buka kartu nomor n di layar
  open <n|id>      buka resep (nomor kartu atau id)
  close            tutup detail resep
  simpan           simpan resep yang terbuka
  hapus favorit [n|id]
                   hapus resep terbuka (atau kartu n / id) dari favorit
  favorit          tampilkan resep favorit
  help, quit

Satu huruf n, p, h dan q adalah perintah; untuk mencari nama satu
huruf gunakan "cari <huruf>".`
