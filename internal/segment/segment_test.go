package segment

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	s := NewSegmenter()

	tests := []struct {
		name    string
		passage string
		want    []string
	}{
		{
			name:    "single sentence",
			passage: "The cat sat.",
			want:    []string{"The cat sat."},
		},
		{
			name:    "multiple sentences",
			passage: "The cat sat. The dog barked! Did anyone notice?",
			want:    []string{"The cat sat.", "The dog barked!", "Did anyone notice?"},
		},
		{
			name:    "stacked terminal punctuation stays together",
			passage: "Really?! Yes.",
			want:    []string{"Really?!", "Yes."},
		},
		{
			name:    "trailing fragment kept",
			passage: "First sentence. then a fragment with no period",
			want:    []string{"First sentence.", "then a fragment with no period"},
		},
		{
			name:    "fragment only",
			passage: "no punctuation here",
			want:    []string{"no punctuation here"},
		},
		{
			name:    "empty",
			passage: "",
			want:    nil,
		},
		{
			name:    "punctuation only",
			passage: "...",
			want:    nil,
		},
		{
			name:    "trailing ellipsis dropped",
			passage: "The cat sat. ...",
			want:    []string{"The cat sat."},
		},
		{
			name:    "wordless fragment between sentences dropped",
			passage: "First. , ! Second.",
			want:    []string{"First.", "Second."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Split(tt.passage)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %v, want %v", tt.passage, got, tt.want)
			}
		})
	}
}

func TestPassages(t *testing.T) {
	text := "First paragraph. Still first.\n\n  Second paragraph.  \nThird"
	got := Passages(text)
	want := []string{"First paragraph. Still first.", "Second paragraph.", "Third"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Passages = %v, want %v", got, want)
	}
}

func TestPassages_empty(t *testing.T) {
	if got := Passages(""); len(got) != 0 {
		t.Errorf("Passages(\"\") = %v, want empty", got)
	}
	if got := Passages("\n\n\n"); len(got) != 0 {
		t.Errorf("Passages(blank lines) = %v, want empty", got)
	}
}
