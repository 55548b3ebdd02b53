// Package vocab loads vocabulary files. The file format is a YAML
// document with four term lists, one per category:
//
//	activities:
//	  - id: A1
//	    name: Industrial chemical discharge
//	pressures:
//	  - id: P1
//	    name: Chemical pollution of waterways
//	consequences: []
//	controls: []
package vocab

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rvisser/bowlink/internal/models"
)

type fileItem struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type file struct {
	Activities   []fileItem `yaml:"activities"`
	Pressures    []fileItem `yaml:"pressures"`
	Consequences []fileItem `yaml:"consequences"`
	Controls     []fileItem `yaml:"controls"`
}

// Load reads and parses a vocabulary file.
func Load(path string) (models.Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Vocabulary{}, fmt.Errorf("read vocabulary file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML vocabulary data. IDs must be non-empty and unique
// within their category; names are free text and may be anything.
func Parse(data []byte) (models.Vocabulary, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return models.Vocabulary{}, fmt.Errorf("parse vocabulary: %w", err)
	}

	var vocab models.Vocabulary
	var err error
	if vocab.Activities, err = convert(f.Activities, models.CategoryActivity); err != nil {
		return models.Vocabulary{}, err
	}
	if vocab.Pressures, err = convert(f.Pressures, models.CategoryPressure); err != nil {
		return models.Vocabulary{}, err
	}
	if vocab.Consequences, err = convert(f.Consequences, models.CategoryConsequence); err != nil {
		return models.Vocabulary{}, err
	}
	if vocab.Controls, err = convert(f.Controls, models.CategoryControl); err != nil {
		return models.Vocabulary{}, err
	}
	return vocab, nil
}

func convert(items []fileItem, category models.Category) ([]models.VocabularyItem, error) {
	seen := make(map[string]struct{}, len(items))
	out := make([]models.VocabularyItem, 0, len(items))
	for i, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("%s item %d: missing id", category, i)
		}
		if _, dup := seen[item.ID]; dup {
			return nil, fmt.Errorf("%s item %d: duplicate id %q", category, i, item.ID)
		}
		seen[item.ID] = struct{}{}
		out = append(out, models.VocabularyItem{
			ID:       item.ID,
			Name:     item.Name,
			Category: category,
		})
	}
	return out, nil
}
