package wer

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRate(t *testing.T) {
	tests := []struct {
		name       string
		reference  string
		hypothesis string
		want       float64
	}{
		{name: "identical", reference: "hello world", hypothesis: "hello world", want: 0},
		{name: "one substitution", reference: "hello world", hypothesis: "hello word", want: 0.5},
		{name: "insertion", reference: "a b", hypothesis: "a x b", want: 0.5},
		{name: "deletion", reference: "a b c d", hypothesis: "a d", want: 0.5},
		{name: "empty reference", reference: "", hypothesis: "a b", want: 2},
		{name: "both empty", reference: "", hypothesis: "", want: 0},
		{name: "whitespace ignored", reference: " a\tb \n", hypothesis: "a  b", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rate(tt.reference, tt.hypothesis); got != tt.want {
				t.Errorf("Rate(%q, %q) = %v, want %v", tt.reference, tt.hypothesis, got, tt.want)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	got := Distance(strings.Fields("the cat sat on the mat"), strings.Fields("the cat sit on mat"))
	if got != 2 {
		t.Errorf("Distance() = %d, want 2", got)
	}
}

func TestAlign(t *testing.T) {
	got := Align(strings.Fields("hello big world"), strings.Fields("hello world again"))
	want := []WordScore{
		{Word: "hello", Confidence: 1},
		{Word: "world", Confidence: 1},
		{Word: "again", Confidence: 0},
	}
	if len(got) != len(want) {
		t.Fatalf("Align() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Align()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPayload(t *testing.T) {
	doc, rate, err := Payload("hello world", "hello word")
	if err != nil {
		t.Fatalf("Payload() error = %v", err)
	}
	if rate != 0.5 {
		t.Errorf("rate = %v, want 0.5", rate)
	}

	var words []WordScore
	if err := json.Unmarshal(doc, &words); err != nil {
		t.Fatalf("payload is not a word list: %v", err)
	}
	if len(words) != 2 || words[1].Word != "word" || words[1].Confidence != 0 {
		t.Errorf("payload = %s", doc)
	}
}
