package recipe

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/resepi/internal/domain"
)

// collection is the on-disk layout of a recipe file:
//
//	recipes:
//	  - id: nasi-goreng
//	    name: Nasi Goreng
//	    type: food
//	    ingredients: ["2 piring nasi putih", "1 butir telur"]
//	    steps: ["..."]
type collection struct {
	Recipes []domain.Recipe `yaml:"recipes"`
}

// LoadFile reads a YAML recipe collection. Recipes without an id get a
// random one so the browser can still select them.
func LoadFile(path string) ([]domain.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading recipes: %w", err)
	}
	recipes, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recipes, nil
}

// Decode parses a YAML recipe collection from memory.
func Decode(data []byte) ([]domain.Recipe, error) {
	var doc collection
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding recipes: %w", err)
	}

	for i := range doc.Recipes {
		r := &doc.Recipes[i]
		r.ID = strings.TrimSpace(r.ID)
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("recipe #%d: %w", i+1, err)
		}
	}
	return doc.Recipes, nil
}

// Encode writes recipes in the format LoadFile reads.
func Encode(recipes []domain.Recipe) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(collection{Recipes: recipes}); err != nil {
		return nil, fmt.Errorf("encoding recipes: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding recipes: %w", err)
	}
	return buf.Bytes(), nil
}
