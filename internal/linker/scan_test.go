package linker

import (
	"reflect"
	"testing"

	"github.com/rvisser/bowlink/internal/models"
)

func testVocabulary() []models.VocabularyItem {
	return []models.VocabularyItem{
		{ID: "act-1", Name: "Industrial chemical discharge", Category: models.CategoryActivity},
		{ID: "act-2", Name: "Agricultural fertiliser use", Category: models.CategoryActivity},
		{ID: "pre-1", Name: "Chemical pollution of waterways", Category: models.CategoryPressure},
		{ID: "pre-2", Name: "Nutrient enrichment", Category: models.CategoryPressure},
		{ID: "con-1", Name: "Loss of aquatic biodiversity", Category: models.CategoryConsequence},
		{ID: "ctl-1", Name: "Discharge permit regulation", Category: models.CategoryControl},
	}
}

func TestScanSimilarityCrossCategoryOnly(t *testing.T) {
	items := []models.VocabularyItem{
		{ID: "act-1", Name: "Commercial fishing", Category: models.CategoryActivity},
		{ID: "act-2", Name: "Commercial fishing", Category: models.CategoryActivity},
		{ID: "pre-1", Name: "Commercial fishing pressure", Category: models.CategoryPressure},
	}

	links, err := ScanSimilarity(items, 0.3, SimilarityJaccard, 1, nil)
	if err != nil {
		t.Fatalf("ScanSimilarity() error = %v", err)
	}

	for _, l := range links {
		if l.FromType == l.ToType {
			t.Errorf("same-category link emitted: %s -> %s", l.FromID, l.ToID)
		}
		if l.FromID == "act-1" && l.ToID == "act-2" || l.FromID == "act-2" && l.ToID == "act-1" {
			t.Errorf("identical same-category names must not link")
		}
	}
	// act-1 and act-2 each link to pre-1.
	if len(links) != 2 {
		t.Errorf("got %d links, want 2", len(links))
	}
}

func TestScanSimilarityThreshold(t *testing.T) {
	items := []models.VocabularyItem{
		{ID: "act-1", Name: "Industrial chemical discharge", Category: models.CategoryActivity},
		{ID: "pre-1", Name: "Chemical pollution of waterways", Category: models.CategoryPressure},
	}

	// Jaccard here is exactly 0.2; with the default 0.3 threshold the
	// pair is below the line.
	links, err := ScanSimilarity(items, 0.3, SimilarityJaccard, 1, nil)
	if err != nil {
		t.Fatalf("ScanSimilarity() error = %v", err)
	}
	if len(links) != 0 {
		t.Errorf("got %d links, want 0 below threshold", len(links))
	}

	links, err = ScanSimilarity(items, 0.2, SimilarityJaccard, 1, nil)
	if err != nil {
		t.Fatalf("ScanSimilarity() error = %v", err)
	}
	if len(links) != 1 {
		t.Fatalf("got %d links, want 1 at threshold", len(links))
	}
	if links[0].Score != 0.2 || links[0].Method != "similarity_jaccard" {
		t.Errorf("link = %+v, want score 0.2 via similarity_jaccard", links[0])
	}
}

func TestScanSimilarityOrientation(t *testing.T) {
	items := []models.VocabularyItem{
		{ID: "pre-1", Name: "Chemical pollution", Category: models.CategoryPressure},
		{ID: "act-1", Name: "Chemical discharge", Category: models.CategoryActivity},
	}

	links, err := ScanSimilarity(items, 0.1, SimilarityJaccard, 1, nil)
	if err != nil {
		t.Fatalf("ScanSimilarity() error = %v", err)
	}
	if len(links) != 1 {
		t.Fatalf("got %d links, want 1", len(links))
	}
	// The activity comes first regardless of input order.
	if links[0].FromID != "act-1" || links[0].ToID != "pre-1" {
		t.Errorf("link direction %s -> %s, want act-1 -> pre-1", links[0].FromID, links[0].ToID)
	}
}

func TestScanSimilarityUnknownMethod(t *testing.T) {
	if _, err := ScanSimilarity(testVocabulary(), 0.3, SimilarityMethod("bogus"), 1, nil); err == nil {
		t.Error("expected error for unknown method, got nil")
	}
}

func TestScanSimilarityParallelMatchesSequential(t *testing.T) {
	items := testVocabulary()

	sequential, err := ScanSimilarity(items, 0.1, SimilarityJaccard, 1, nil)
	if err != nil {
		t.Fatalf("sequential scan error = %v", err)
	}

	for _, workers := range []int{2, 3, 16} {
		parallel, err := ScanSimilarity(items, 0.1, SimilarityJaccard, workers, nil)
		if err != nil {
			t.Fatalf("parallel scan (workers=%d) error = %v", workers, err)
		}
		if !reflect.DeepEqual(sequential, parallel) {
			t.Errorf("workers=%d: parallel result differs from sequential", workers)
		}
	}
}

func TestScanSimilarityProgress(t *testing.T) {
	items := testVocabulary()

	var lastDone, lastTotal int
	_, err := ScanSimilarity(items, 0.3, SimilarityJaccard, 1, func(done, total int) {
		lastDone, lastTotal = done, total
	})
	if err != nil {
		t.Fatalf("ScanSimilarity() error = %v", err)
	}
	if lastDone != len(items) || lastTotal != len(items) {
		t.Errorf("final progress = %d/%d, want %d/%d", lastDone, lastTotal, len(items), len(items))
	}
}

func TestScanSimilarityEmptyInput(t *testing.T) {
	links, err := ScanSimilarity(nil, 0.3, SimilarityJaccard, 1, nil)
	if err != nil {
		t.Fatalf("ScanSimilarity() error = %v", err)
	}
	if len(links) != 0 {
		t.Errorf("got %d links from empty input, want 0", len(links))
	}
}
