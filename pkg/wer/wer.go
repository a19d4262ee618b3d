// Package wer computes word error rate between a reference text and a transcription.
package wer

import (
	"encoding/json"
	"strings"
)

// WordScore is one hypothesis word with 1 when it matched the reference and 0 otherwise.
// It marshals to the list form of a confidence payload.
type WordScore struct {
	Word       string  `json:"word"`
	Confidence float64 `json:"confidence"`
}

// Distance is the word-level Levenshtein distance between reference and hypothesis
func Distance(reference, hypothesis []string) int {
	return table(reference, hypothesis)[len(reference)][len(hypothesis)]
}

// Rate returns Distance over the reference word count, or over 1 when the reference is empty
func Rate(reference, hypothesis string) float64 {
	r, h := strings.Fields(reference), strings.Fields(hypothesis)
	return float64(Distance(r, h)) / float64(max(1, len(r)))
}

// Align scores every hypothesis word against a minimum-edit alignment with the reference
func Align(reference, hypothesis []string) []WordScore {
	d := table(reference, hypothesis)
	scores := make([]WordScore, len(hypothesis))

	i, j := len(reference), len(hypothesis)
	for j > 0 {
		switch {
		case i > 0 && reference[i-1] == hypothesis[j-1] && d[i][j] == d[i-1][j-1]:
			scores[j-1] = WordScore{Word: hypothesis[j-1], Confidence: 1}
			i, j = i-1, j-1
		case d[i][j] == d[i][j-1]+1:
			// inserted word
			scores[j-1] = WordScore{Word: hypothesis[j-1], Confidence: 0}
			j--
		case i > 0 && d[i][j] == d[i-1][j]+1:
			// dropped reference word
			i--
		default:
			scores[j-1] = WordScore{Word: hypothesis[j-1], Confidence: 0}
			i, j = i-1, j-1
		}
	}
	return scores
}

// Payload aligns the two texts and returns the list-form confidence document with the rate
func Payload(reference, hypothesis string) ([]byte, float64, error) {
	r, h := strings.Fields(reference), strings.Fields(hypothesis)
	doc, err := json.Marshal(Align(r, h))
	if err != nil {
		return nil, 0, err
	}
	return doc, float64(Distance(r, h)) / float64(max(1, len(r))), nil
}

func table(r, h []string) [][]int {
	d := make([][]int, len(r)+1)
	for i := range d {
		d[i] = make([]int, len(h)+1)
		d[i][0] = i
	}
	for j := range d[0] {
		d[0][j] = j
	}

	for i := 1; i <= len(r); i++ {
		for j := 1; j <= len(h); j++ {
			if r[i-1] == h[j-1] {
				d[i][j] = d[i-1][j-1]
				continue
			}
			d[i][j] = 1 + min(d[i-1][j-1], d[i][j-1], d[i-1][j])
		}
	}
	return d
}
