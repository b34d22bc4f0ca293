// Package catalog holds the browsing pipeline: the ingredient index, the
// filter engine and the paginator. Everything here is pure and cheap to
// recompute on every keystroke.
package catalog

import (
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/hammamikhairi/resepi/internal/domain"
)

// units are the words that may follow a quantity and get stripped with it.
// Multi-word units list only their first word.
var units = map[string]struct{}{
	"cup": {}, "cups": {}, "gelas": {}, "mangkuk": {}, "cangkir": {}, "piring": {},
	"sdm": {}, "sdt": {}, "sendok": {}, "tbsp": {}, "tsp": {},
	"tablespoon": {}, "tablespoons": {}, "teaspoon": {}, "teaspoons": {},
	"g": {}, "gr": {}, "gram": {}, "grams": {}, "kg": {}, "ons": {},
	"ml": {}, "l": {}, "liter": {}, "liters": {}, "oz": {}, "lb": {},
	"siung": {}, "buah": {}, "butir": {}, "lembar": {}, "batang": {},
	"ruas": {}, "ikat": {}, "bungkus": {}, "potong": {}, "genggam": {},
	"kantong": {}, "papan": {}, "helai": {}, "cm": {},
	"pcs": {}, "piece": {}, "pieces": {}, "slice": {}, "slices": {},
	"clove": {}, "cloves": {}, "sachet": {}, "pinch": {},
}

// NormalizeIngredient turns "2 cups rice" into "rice".
//
// A leading token that starts with a digit is removed together with the
// non-space characters glued to it ("200gr"), followed by one unit word
// when the next word is a known unit. The result is trimmed and
// lowercased. The step repeats until nothing changes, so the function is
// idempotent: "1 1/2 cup sugar" becomes "sugar".
//
// Only one unit word goes with each quantity, so "2 sendok makan gula"
// keeps "makan gula". The rest of the name is never guessed at.
func NormalizeIngredient(s string) string {
	out := strings.ToLower(strings.TrimSpace(s))
	for {
		next := stripQuantity(out)
		if next == out {
			return out
		}
		out = next
	}
}

func stripQuantity(s string) string {
	if s == "" || !unicode.IsDigit(rune(s[0])) {
		return s
	}
	end := strings.IndexFunc(s, unicode.IsSpace)
	if end < 0 {
		return ""
	}
	rest := strings.TrimSpace(s[end:])

	word, tail, _ := strings.Cut(rest, " ")
	if _, ok := units[strings.TrimRight(word, ".,")]; ok {
		rest = strings.TrimSpace(tail)
	}
	return rest
}

// BuildIndex returns the sorted distinct normalized ingredient names of the
// collection. Names that normalize to "" are dropped.
func BuildIndex(recipes []domain.Recipe) []string {
	seen := make(map[string]struct{})
	for _, r := range recipes {
		for _, ing := range r.Ingredients {
			name := NormalizeIngredient(ing)
			if name == "" {
				continue
			}
			seen[name] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Index memoizes BuildIndex per collection version. Safe for concurrent use.
type Index struct {
	mu      sync.Mutex
	version uint64
	built   bool
	names   []string
}

// Names returns the index for the collection at the given version,
// rebuilding only when the version differs from the cached one.
func (x *Index) Names(version uint64, recipes []domain.Recipe) []string {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.built && x.version == version {
		return x.names
	}
	x.names = BuildIndex(recipes)
	x.version = version
	x.built = true
	return x.names
}

// Popular returns the first n index entries, the chips shown above the
// full ingredient list.
func Popular(names []string, n int) []string {
	if n <= 0 {
		return nil
	}
	if n > len(names) {
		n = len(names)
	}
	return names[:n]
}
