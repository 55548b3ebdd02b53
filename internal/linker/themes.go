package linker

import (
	"sort"
	"strings"

	"github.com/rvisser/bowlink/internal/models"
)

// Theme is a curated keyword cluster. Two items of different
// categories whose names both contain any theme keyword get a link of
// the theme's fixed strength.
type Theme struct {
	Keywords []string
	Strength float64
}

// ThemeTable maps theme name to its keyword set and strength.
type ThemeTable map[string]Theme

// DefaultThemeStrength is the edge strength for keyword-theme links.
const DefaultThemeStrength = 0.7

// DefaultThemes returns the hand-curated environmental theme table.
// Callers may pass their own table to ScanThemes instead.
func DefaultThemes() ThemeTable {
	return ThemeTable{
		"water": {
			Keywords: []string{"water", "marine", "sea", "coastal", "river", "estuary", "aquatic"},
			Strength: DefaultThemeStrength,
		},
		"pollution": {
			Keywords: []string{"pollution", "contamination", "chemical", "waste", "discharge", "toxic", "sewage"},
			Strength: DefaultThemeStrength,
		},
		"ecosystem": {
			Keywords: []string{"ecosystem", "habitat", "species", "biodiversity", "wildlife", "flora", "fauna"},
			Strength: DefaultThemeStrength,
		},
		"climate": {
			Keywords: []string{"climate", "warming", "temperature", "carbon", "emission", "acidification"},
			Strength: DefaultThemeStrength,
		},
		"agriculture": {
			Keywords: []string{"agriculture", "farming", "crop", "livestock", "fertiliser", "fertilizer", "pesticide"},
			Strength: DefaultThemeStrength,
		},
		"industrial": {
			Keywords: []string{"industrial", "industry", "manufacturing", "mining", "construction", "dredging"},
			Strength: DefaultThemeStrength,
		},
		"health": {
			Keywords: []string{"health", "disease", "toxin", "exposure", "pathogen", "safety"},
			Strength: DefaultThemeStrength,
		},
		"management": {
			Keywords: []string{"management", "monitoring", "regulation", "policy", "restoration", "protection"},
			Strength: DefaultThemeStrength,
		},
	}
}

// ScanThemes emits a fixed-strength candidate link for every
// cross-category pair of items matched by the same theme. A keyword
// matches as a substring of the normalized name, not per token, so
// "water" also catches "waterways".
func ScanThemes(items []models.VocabularyItem, themes ThemeTable) []models.CandidateLink {
	// Sorted theme order keeps output deterministic across runs.
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)

	var links []models.CandidateLink
	for _, name := range names {
		theme := themes[name]
		matched := matchTheme(items, theme.Keywords)
		method := models.KeywordMethod(name)

		for i := 0; i < len(matched); i++ {
			for j := i + 1; j < len(matched); j++ {
				if matched[i].Category == matched[j].Category {
					continue
				}
				from, to := orient(matched[i], matched[j])
				links = append(links, newLink(from, to, theme.Strength, method))
			}
		}
	}
	return links
}

// matchTheme selects items whose normalized name contains any keyword.
func matchTheme(items []models.VocabularyItem, keywords []string) []models.VocabularyItem {
	var matched []models.VocabularyItem
	for _, item := range items {
		name := Normalize(item.Name)
		if name == "" {
			continue
		}
		for _, kw := range keywords {
			if strings.Contains(name, kw) {
				matched = append(matched, item)
				break
			}
		}
	}
	return matched
}
