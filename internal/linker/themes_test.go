package linker

import (
	"testing"

	"github.com/rvisser/bowlink/internal/models"
)

func TestScanThemesPollutionExample(t *testing.T) {
	items := []models.VocabularyItem{
		{ID: "act-1", Name: "Industrial chemical discharge", Category: models.CategoryActivity},
		{ID: "pre-1", Name: "Chemical pollution of waterways", Category: models.CategoryPressure},
	}

	links := ScanThemes(items, DefaultThemes())
	if len(links) != 1 {
		t.Fatalf("got %d links, want 1", len(links))
	}
	l := links[0]
	if l.Score != DefaultThemeStrength {
		t.Errorf("score = %v, want %v", l.Score, DefaultThemeStrength)
	}
	if l.Method != "keyword_pollution" {
		t.Errorf("method = %q, want keyword_pollution", l.Method)
	}
	if l.FromID != "act-1" || l.ToID != "pre-1" {
		t.Errorf("direction %s -> %s, want act-1 -> pre-1", l.FromID, l.ToID)
	}
}

func TestScanThemesSubstringMatch(t *testing.T) {
	// "water" must match inside "waterways".
	items := []models.VocabularyItem{
		{ID: "act-1", Name: "Water abstraction", Category: models.CategoryActivity},
		{ID: "pre-1", Name: "Polluted waterways", Category: models.CategoryPressure},
	}

	links := ScanThemes(items, ThemeTable{
		"water": {Keywords: []string{"water"}, Strength: 0.7},
	})
	if len(links) != 1 {
		t.Fatalf("got %d links, want 1", len(links))
	}
}

func TestScanThemesCrossCategoryOnly(t *testing.T) {
	items := []models.VocabularyItem{
		{ID: "pre-1", Name: "Water contamination", Category: models.CategoryPressure},
		{ID: "pre-2", Name: "Water scarcity", Category: models.CategoryPressure},
		{ID: "con-1", Name: "Poor water quality", Category: models.CategoryConsequence},
	}

	links := ScanThemes(items, DefaultThemes())
	for _, l := range links {
		if l.FromType == l.ToType {
			t.Errorf("same-category theme link emitted: %s -> %s", l.FromID, l.ToID)
		}
	}
	// pre-1/con-1 and pre-2/con-1, but never pre-1/pre-2.
	if len(links) != 2 {
		t.Errorf("got %d links, want 2", len(links))
	}
}

func TestScanThemesDeterministicOrder(t *testing.T) {
	items := testVocabulary()

	first := ScanThemes(items, DefaultThemes())
	for i := 0; i < 5; i++ {
		again := ScanThemes(items, DefaultThemes())
		if len(again) != len(first) {
			t.Fatalf("run %d: got %d links, want %d", i, len(again), len(first))
		}
		for j := range first {
			if first[j] != again[j] {
				t.Fatalf("run %d: link %d differs: %+v vs %+v", i, j, first[j], again[j])
			}
		}
	}
}

func TestScanThemesNoMatch(t *testing.T) {
	items := []models.VocabularyItem{
		{ID: "act-1", Name: "Recreational boating", Category: models.CategoryActivity},
		{ID: "con-1", Name: "Visual amenity decline", Category: models.CategoryConsequence},
	}
	if links := ScanThemes(items, DefaultThemes()); len(links) != 0 {
		t.Errorf("got %d links, want 0", len(links))
	}
}
