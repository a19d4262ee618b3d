package entities

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestConfidencePayload_Spans(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    []SpanScore
		wantErr bool
	}{
		{
			name:    "object keeps document order",
			payload: `{"zeta": 0.1, "alpha": 0.2, "mid": 1}`,
			want:    []SpanScore{{"zeta", 0.1}, {"alpha", 0.2}, {"mid", 1}},
		},
		{
			name:    "word timestamp list",
			payload: `[{"word":"hi","confidence":0.42,"start":0.1,"end":0.3,"speaker":"A"},{"word":"there","confidence":0.97}]`,
			want:    []SpanScore{{"hi", 0.42}, {"there", 0.97}},
		},
		{name: "empty object", payload: `{}`, want: []SpanScore{}},
		{name: "empty list", payload: ` [ ] `, want: []SpanScore{}},
		{name: "negative and exponent scores", payload: `{"a": -0.5, "b": 1e-3}`, want: []SpanScore{{"a", -0.5}, {"b", 0.001}}},
		{name: "free text", payload: `hello world`, wantErr: true},
		{name: "scalar", payload: `0.5`, wantErr: true},
		{name: "string", payload: `"hello"`, wantErr: true},
		{name: "quoted score", payload: `{"a": "0.5"}`, wantErr: true},
		{name: "null score", payload: `{"a": null}`, wantErr: true},
		{name: "nested object score", payload: `{"a": {"score": 1}}`, wantErr: true},
		{name: "truncated", payload: `{"a": 0.5`, wantErr: true},
		{name: "trailing data", payload: `{"a": 0.5} {}`, wantErr: true},
		{name: "list element without word", payload: `[{"confidence": 0.5}]`, wantErr: true},
		{name: "list element with empty word", payload: `[{"word": "", "confidence": 0.5}]`, wantErr: true},
		{name: "list element without confidence", payload: `[{"word": "a"}]`, wantErr: true},
		{name: "list of numbers", payload: `[0.5, 0.2]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConfidencePayload(tt.payload).Spans()
			if tt.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("Spans() error = %v, want ErrValidation", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Spans() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Spans() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfidencePayload_LowConfidence(t *testing.T) {
	t.Run("strictly below threshold", func(t *testing.T) {
		p := ConfidencePayload(`{"hello": 0.9, "world": 0.3, "foo": 0.5}`)
		got, err := p.LowConfidence(0.5)
		if err != nil {
			t.Fatalf("LowConfidence() error = %v", err)
		}
		want := []SpanScore{{Span: "world", Score: 0.3}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("LowConfidence() = %v, want %v", got, want)
		}
	})

	t.Run("payload order preserved", func(t *testing.T) {
		p := ConfidencePayload(`[{"word":"c","confidence":0.1},{"word":"a","confidence":0.9},{"word":"b","confidence":0.2}]`)
		got, err := p.LowConfidence(0.5)
		if err != nil {
			t.Fatalf("LowConfidence() error = %v", err)
		}
		want := []SpanScore{{"c", 0.1}, {"b", 0.2}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("LowConfidence() = %v, want %v", got, want)
		}
	})

	t.Run("nothing below threshold yields empty slice", func(t *testing.T) {
		got, err := ConfidencePayload(`{"a": 0.9}`).LowConfidence(0.1)
		if err != nil {
			t.Fatalf("LowConfidence() error = %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("LowConfidence() = %#v, want empty non-nil slice", got)
		}
	})

	t.Run("absent payload", func(t *testing.T) {
		if _, err := ConfidencePayload(nil).LowConfidence(0.5); !errors.Is(err, ErrValidation) {
			t.Errorf("LowConfidence() error = %v, want ErrValidation", err)
		}
	})
}

func TestConfidencePayload_SQL(t *testing.T) {
	v, err := ConfidencePayload(nil).Value()
	if err != nil || v != nil {
		t.Errorf("nil Value() = %v, %v; want nil, nil", v, err)
	}

	raw := `{"hello": 0.9}`
	v, err = ConfidencePayload(raw).Value()
	if err != nil || v != raw {
		t.Errorf("Value() = %v, %v; want %s", v, err, raw)
	}

	var p ConfidencePayload
	if err := p.Scan(nil); err != nil || p != nil {
		t.Errorf("Scan(nil) = %v, payload %v", err, p)
	}

	src := []byte(raw)
	if err := p.Scan(src); err != nil {
		t.Fatalf("Scan([]byte) error = %v", err)
	}
	src[0] = 'X'
	if string(p) != raw {
		t.Errorf("Scan must copy driver bytes, got %s", p)
	}

	if err := p.Scan(raw); err != nil || string(p) != raw {
		t.Errorf("Scan(string) = %v, payload %s", err, p)
	}

	if err := p.Scan(42); err == nil {
		t.Error("Scan(int) error = nil, want error")
	}
}

func TestConfidencePayload_JSON(t *testing.T) {
	var body struct {
		WER ConfidencePayload `json:"wer"`
	}

	if err := json.Unmarshal([]byte(`{"wer": null}`), &body); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if body.WER.Present() {
		t.Errorf("null payload should be absent, got %s", body.WER)
	}

	if err := json.Unmarshal([]byte(`{"wer": {"a": 0.25}}`), &body); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if string(body.WER) != `{"a": 0.25}` {
		t.Errorf("WER = %s", body.WER)
	}

	out, err := json.Marshal(Transcript{ID: 1, FileID: 2, Path: "p"})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if _, ok := decoded["wer"]; ok {
		t.Errorf("absent payload should be omitted, got %s", out)
	}
}
