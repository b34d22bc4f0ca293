package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(nil))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, 3, cfg.PageSize)
	require.Equal(t, 0.1, cfg.RevealThreshold)
	require.Equal(t, 200*time.Millisecond, cfg.RevealStagger)
}

func TestFromLookupOverrides(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{
		EnvPageSize:        "6",
		EnvRevealThreshold: "0.5",
		EnvRevealStagger:   "50ms",
		EnvRecipesFile:     " resep.yaml ",
		EnvChips:           "0",
		EnvType:            "beverage",
	}))
	require.NoError(t, err)
	require.Equal(t, 6, cfg.PageSize)
	require.Equal(t, 0.5, cfg.RevealThreshold)
	require.Equal(t, 50*time.Millisecond, cfg.RevealStagger)
	require.Equal(t, "resep.yaml", cfg.RecipesFile)
	require.Equal(t, 0, cfg.Chips)
	require.Equal(t, "beverage", cfg.Type)
}

func TestFromLookupErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"page size zero", map[string]string{EnvPageSize: "0"}},
		{"page size text", map[string]string{EnvPageSize: "tiga"}},
		{"threshold zero", map[string]string{EnvRevealThreshold: "0"}},
		{"threshold above one", map[string]string{EnvRevealThreshold: "1.5"}},
		{"stagger negative", map[string]string{EnvRevealStagger: "-1s"}},
		{"stagger garbage", map[string]string{EnvRevealStagger: "soon"}},
		{"bad type", map[string]string{EnvType: "dessert"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromLookup(lookupFrom(tt.env))
			require.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("RESEPI_CHIPS=4\nRESEPI_PAGE_SIZE=2\n"), 0o644))

	// Real environment wins over the file.
	t.Setenv(EnvPageSize, "5")
	t.Setenv(EnvChips, "")
	os.Unsetenv(EnvChips)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Chips)
	require.Equal(t, 5, cfg.PageSize)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
}
