package common

import (
	"strings"
	"testing"
)

type sample struct {
	ID         string            `json:"id"`
	Prediction map[string]string `json:"prediction"`
	Insights   map[string]int    `json:"insights"`
}

func TestFilterFields(t *testing.T) {
	s := sample{
		ID:         "abc",
		Prediction: map[string]string{"label": "real"},
		Insights:   map[string]int{"word_count": 4},
	}

	tests := []struct {
		name   string
		fields string
		want   []string
	}{
		{name: "no filter keeps all", fields: "", want: []string{"id", "prediction", "insights"}},
		{name: "single field", fields: "prediction", want: []string{"prediction"}},
		{name: "alias", fields: "pred, request", want: []string{"prediction", "id"}},
		{name: "unknown field dropped", fields: "nope", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterFields(s, tt.fields)
			if len(got) != len(tt.want) {
				t.Fatalf("FilterFields() = %v, want keys %v", got, tt.want)
			}
			for _, k := range tt.want {
				if _, ok := got[k]; !ok {
					t.Errorf("missing key %q in %v", k, got)
				}
			}
		})
	}
}

func TestMarshal(t *testing.T) {
	v := map[string]int{"word_count": 4}

	data, err := Marshal(v, "json")
	if err != nil {
		t.Fatalf("Marshal(json) error = %v", err)
	}
	if !strings.Contains(string(data), `"word_count": 4`) {
		t.Errorf("Marshal(json) = %s", data)
	}

	data, err = Marshal(v, "yaml")
	if err != nil {
		t.Fatalf("Marshal(yaml) error = %v", err)
	}
	if strings.TrimSpace(string(data)) != "word_count: 4" {
		t.Errorf("Marshal(yaml) = %q", data)
	}

	if _, err := Marshal(v, "xml"); err == nil {
		t.Error("Marshal(xml) expected error")
	}
}

func TestContentHash(t *testing.T) {
	got := ContentHash([]byte("abc"))
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got != want {
		t.Errorf("ContentHash() = %s, want %s", got, want)
	}
}
