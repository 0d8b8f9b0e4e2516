package ranking

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-12

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestComputeIDFs(t *testing.T) {
	docs := map[string][]string{
		"a.txt": {"moon", "tide"},
		"b.txt": {"moon", "crater"},
	}
	idfs, err := ComputeIDFs(docs)
	if err != nil {
		t.Fatalf("ComputeIDFs: %v", err)
	}
	if len(idfs) != 3 {
		t.Fatalf("got %d terms, want 3: %v", len(idfs), idfs)
	}
	// In every document: exactly zero.
	if !almostEqual(idfs["moon"], 0) {
		t.Errorf("idf(moon) = %v, want 0", idfs["moon"])
	}
	ln2 := math.Log(2)
	if !almostEqual(idfs["tide"], ln2) {
		t.Errorf("idf(tide) = %v, want ln 2", idfs["tide"])
	}
	if !almostEqual(idfs["crater"], ln2) {
		t.Errorf("idf(crater) = %v, want ln 2", idfs["crater"])
	}
}

func TestComputeIDFs_range(t *testing.T) {
	docs := map[string][]string{
		"a": {"x", "y", "z"},
		"b": {"x", "y"},
		"c": {"x"},
	}
	idfs, err := ComputeIDFs(docs)
	if err != nil {
		t.Fatal(err)
	}
	maxIDF := math.Log(float64(len(docs)))
	for term, idf := range idfs {
		if idf < 0 || idf > maxIDF+epsilon {
			t.Errorf("idf(%s) = %v out of [0, ln N]", term, idf)
		}
	}
	if !almostEqual(idfs["x"], 0) {
		t.Errorf("idf(x) = %v, want 0 (appears in every document)", idfs["x"])
	}
	if !almostEqual(idfs["z"], maxIDF) {
		t.Errorf("idf(z) = %v, want ln N (appears in one document)", idfs["z"])
	}
}

func TestComputeIDFs_duplicateTokensCountOnce(t *testing.T) {
	docs := map[string][]string{
		"a": {"echo", "echo", "echo"},
		"b": {"other"},
	}
	idfs, err := ComputeIDFs(docs)
	if err != nil {
		t.Fatal(err)
	}
	// df(echo) must be 1, not 3.
	if !almostEqual(idfs["echo"], math.Log(2)) {
		t.Errorf("idf(echo) = %v, want ln 2", idfs["echo"])
	}
}

func TestComputeIDFs_unseenTermAbsent(t *testing.T) {
	idfs, err := ComputeIDFs(map[string][]string{"a": {"present"}})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := idfs["absent"]; ok {
		t.Error("unseen term should not be in the table")
	}
	// Zero-value lookup is the documented missing-term behavior.
	if idfs["absent"] != 0 {
		t.Errorf("missing-term lookup = %v, want 0", idfs["absent"])
	}
}

func TestComputeIDFs_emptyCorpus(t *testing.T) {
	_, err := ComputeIDFs(map[string][]string{})
	if !errors.Is(err, ErrNoDocuments) {
		t.Errorf("err = %v, want ErrNoDocuments", err)
	}
}

// Duplicating a document under a new identifier raises df for each of its
// terms by one, and IDF never increases.
func TestComputeIDFs_duplicationMonotonic(t *testing.T) {
	base := map[string][]string{
		"a": {"moon", "tide"},
		"b": {"moon"},
	}
	before, err := ComputeIDFs(base)
	if err != nil {
		t.Fatal(err)
	}

	dup := map[string][]string{
		"a":      {"moon", "tide"},
		"b":      {"moon"},
		"a-copy": {"moon", "tide"},
	}
	after, err := ComputeIDFs(dup)
	if err != nil {
		t.Fatal(err)
	}

	for _, term := range []string{"moon", "tide"} {
		if after[term] > before[term]+epsilon {
			t.Errorf("idf(%s) rose from %v to %v after duplication", term, before[term], after[term])
		}
	}
	// moon was in all documents before and after: stays exactly 0.
	if !almostEqual(after["moon"], 0) {
		t.Errorf("idf(moon) = %v, want 0", after["moon"])
	}
	// tide: df 1/2 -> 2/3, strictly smaller idf.
	if !(after["tide"] < before["tide"]) {
		t.Errorf("idf(tide) should strictly decrease: before %v, after %v", before["tide"], after["tide"])
	}
}
