// Package catalog loads the read-only item catalog from YAML. The tracker ships
// with an embedded default; a custom file can replace it at startup.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sandeepkv93/leettrack/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

var (
	ErrEmptyCatalog  = errors.New("catalog: no categories defined")
	ErrEmptyCategory = errors.New("catalog: category has no items")
)

type fileCatalog struct {
	Categories []fileCategory `yaml:"categories"`
}

type fileCategory struct {
	ID    string     `yaml:"id"`
	Name  string     `yaml:"name"`
	Items []fileItem `yaml:"items"`
}

type fileItem struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Difficulty string `yaml:"difficulty"`
}

func Default() (model.Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog file, or the embedded default when path is empty.
func Load(path string) (model.Catalog, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return Default()
	}
	raw, err := os.ReadFile(trimmed)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("read catalog %s: %w", trimmed, err)
	}
	out, err := Parse(raw)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("catalog %s: %w", trimmed, err)
	}
	return out, nil
}

func Parse(raw []byte) (model.Catalog, error) {
	var doc fileCatalog
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return model.Catalog{}, fmt.Errorf("decode catalog yaml: %w", err)
	}
	if len(doc.Categories) == 0 {
		return model.Catalog{}, ErrEmptyCatalog
	}

	out := model.Catalog{Categories: make([]model.Category, 0, len(doc.Categories))}
	for _, fc := range doc.Categories {
		cat := model.Category{
			ID:    strings.TrimSpace(fc.ID),
			Name:  strings.TrimSpace(fc.Name),
			Items: make([]model.Item, 0, len(fc.Items)),
		}
		if len(fc.Items) == 0 {
			return model.Catalog{}, fmt.Errorf("%w: %q", ErrEmptyCategory, cat.ID)
		}
		for _, fi := range fc.Items {
			difficulty, err := model.ParseDifficulty(fi.Difficulty)
			if err != nil {
				return model.Catalog{}, fmt.Errorf("item %q: %w", fi.ID, err)
			}
			cat.Items = append(cat.Items, model.Item{
				ID:         strings.TrimSpace(fi.ID),
				Name:       strings.TrimSpace(fi.Name),
				Difficulty: difficulty,
			})
		}
		out.Categories = append(out.Categories, cat)
	}
	if err := out.Validate(); err != nil {
		return model.Catalog{}, err
	}
	return out, nil
}
