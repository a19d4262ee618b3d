package entities

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// SpanScore is one word or span of a transcript with its confidence score
type SpanScore struct {
	Span  string  `json:"span"`
	Score float64 `json:"score"`
}

// ConfidencePayload holds the raw JSON confidence document of a transcript (the `wer` column).
// A nil or empty payload means scoring was not performed.
//
// Two shapes are accepted:
//
//	{"hello": 0.9, "world": 0.3}
//	[{"word": "hello", "confidence": 0.9, "start": 0.12, "end": 0.4}, ...]
//
// Span order is document order as stored. SQLite keeps the bytes exactly as written.
// The Postgres column is jsonb, which drops duplicate object keys and re-sorts them
// (shorter keys first, then bytewise), so object-form order there is jsonb order.
// Array payloads keep their element order on both stores.
type ConfidencePayload []byte

// Present reports whether a payload has been recorded
func (p ConfidencePayload) Present() bool {
	return len(bytes.TrimSpace(p)) > 0 && !bytes.Equal(bytes.TrimSpace(p), []byte("null"))
}

// Validate checks that the payload is a well-formed confidence document
func (p ConfidencePayload) Validate() error {
	_, err := p.Spans()
	return err
}

// Spans parses the payload into its spans, in document order
func (p ConfidencePayload) Spans() ([]SpanScore, error) {
	if !p.Present() {
		return nil, NewValidationError("wer", "is empty")
	}

	dec := json.NewDecoder(bytes.NewReader(p))
	tok, err := dec.Token()
	if err != nil {
		return nil, NewValidationError("wer", "is not valid JSON")
	}

	var spans []SpanScore
	switch tok {
	case json.Delim('{'):
		spans, err = decodeObjectSpans(dec)
	case json.Delim('['):
		spans, err = decodeListSpans(dec)
	default:
		return nil, NewValidationError("wer", "must be a JSON object or array")
	}
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, NewValidationError("wer", "has trailing data")
	}
	return spans, nil
}

// LowConfidence returns the spans scored strictly below threshold, in document order
func (p ConfidencePayload) LowConfidence(threshold float64) ([]SpanScore, error) {
	spans, err := p.Spans()
	if err != nil {
		return nil, err
	}

	low := make([]SpanScore, 0, len(spans))
	for _, s := range spans {
		if s.Score < threshold {
			low = append(low, s)
		}
	}
	return low, nil
}

func decodeObjectSpans(dec *json.Decoder) ([]SpanScore, error) {
	spans := make([]SpanScore, 0)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, NewValidationError("wer", "is not valid JSON")
		}
		span, ok := tok.(string)
		if !ok {
			return nil, NewValidationError("wer", "has a non-string key")
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, NewValidationError("wer", "is not valid JSON")
		}
		score, err := parseScore(raw)
		if err != nil {
			return nil, NewValidationError("wer", fmt.Sprintf("score for %q is not a number", span))
		}
		spans = append(spans, SpanScore{Span: span, Score: score})
	}

	if _, err := dec.Token(); err != nil {
		return nil, NewValidationError("wer", "is not valid JSON")
	}
	return spans, nil
}

func decodeListSpans(dec *json.Decoder) ([]SpanScore, error) {
	spans := make([]SpanScore, 0)
	for i := 0; dec.More(); i++ {
		var item map[string]json.RawMessage
		if err := dec.Decode(&item); err != nil {
			return nil, NewValidationError("wer", fmt.Sprintf("element %d is not an object", i))
		}

		var word string
		if raw, ok := item["word"]; !ok || json.Unmarshal(raw, &word) != nil || word == "" {
			return nil, NewValidationError("wer", fmt.Sprintf("element %d has no word", i))
		}
		score, err := parseScore(item["confidence"])
		if err != nil {
			return nil, NewValidationError("wer", fmt.Sprintf("element %d confidence is not a number", i))
		}
		spans = append(spans, SpanScore{Span: word, Score: score})
	}

	if _, err := dec.Token(); err != nil {
		return nil, NewValidationError("wer", "is not valid JSON")
	}
	return spans, nil
}

// parseScore accepts only JSON numbers; quoted numbers, null and booleans are rejected
func parseScore(raw json.RawMessage) (float64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || (raw[0] != '-' && (raw[0] < '0' || raw[0] > '9')) {
		return 0, errors.New("not a number")
	}
	var score float64
	if err := json.Unmarshal(raw, &score); err != nil {
		return 0, err
	}
	return score, nil
}

// Scan implements sql.Scanner interface for GORM
func (p *ConfidencePayload) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*p = nil
	case []byte:
		*p = append(ConfidencePayload(nil), v...)
	case string:
		*p = ConfidencePayload(v)
	default:
		return fmt.Errorf("cannot scan %T into ConfidencePayload", value)
	}
	return nil
}

// Value implements driver.Valuer interface for GORM
func (p ConfidencePayload) Value() (driver.Value, error) {
	if !p.Present() {
		return nil, nil
	}
	return string(p), nil
}

// MarshalJSON embeds the payload as-is
func (p ConfidencePayload) MarshalJSON() ([]byte, error) {
	if !p.Present() {
		return []byte("null"), nil
	}
	return p, nil
}

// UnmarshalJSON keeps the raw document; JSON null yields an absent payload
func (p *ConfidencePayload) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*p = nil
		return nil
	}
	*p = append(ConfidencePayload(nil), b...)
	return nil
}

// GormDataType tells GORM the column holds JSON
func (ConfidencePayload) GormDataType() string {
	return "json"
}
