package form

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildPayload_Example(t *testing.T) {
	p := BuildPayload([]Field{
		{Label: "x", Value: "3"},
		{Label: "y", Value: "ihsan's typo"},
	})

	body, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"x":"3","y":"ihsan's typo","equation_type":"implicit"}`
	if string(body) != want {
		t.Errorf("Marshal() = %s, want %s", body, want)
	}
}

func TestBuildPayload_KeyCount(t *testing.T) {
	for n := 0; n <= 5; n++ {
		t.Run(fmt.Sprintf("%d fields", n), func(t *testing.T) {
			fields := make([]Field, n)
			for i := range fields {
				fields[i] = Field{Label: fmt.Sprintf("p%d", i), Value: fmt.Sprint(i)}
			}

			p := BuildPayload(fields)

			if p.Len() != n+1 {
				t.Errorf("Len() = %d, want %d", p.Len(), n+1)
			}
			if v, ok := p.Get(EquationTypeKey); !ok || v != EquationImplicit {
				t.Errorf("Get(%q) = %q, %v", EquationTypeKey, v, ok)
			}
		})
	}
}

func TestBuildPayload_DuplicateLabelsLastWins(t *testing.T) {
	p := BuildPayload([]Field{
		{Label: "x", Value: "1"},
		{Label: "y", Value: "2"},
		{Label: "x", Value: "3"},
	})

	if v, _ := p.Get("x"); v != "3" {
		t.Errorf("Get(x) = %q, want 3", v)
	}
	if diff := cmp.Diff([]string{"x", "y", EquationTypeKey}, p.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildPayload_EquationTypeLabelOverridden(t *testing.T) {
	p := BuildPayload([]Field{
		{Label: EquationTypeKey, Value: "explicit"},
		{Label: "N", Value: "10"},
	})

	if v, _ := p.Get(EquationTypeKey); v != EquationImplicit {
		t.Errorf("Get(%q) = %q, want %q", EquationTypeKey, v, EquationImplicit)
	}
	if diff := cmp.Diff([]string{EquationTypeKey, "N"}, p.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
}

func TestPayload_RoundTrip(t *testing.T) {
	orig := BuildPayload([]Field{
		{Label: "N", Value: "10"},
		{Label: "quote \"q\"", Value: "<&>"},
		{Label: "unicode", Value: "ψ(x) = sin x"},
		{Label: "", Value: ""},
	})

	body, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !json.Valid(body) {
		t.Fatalf("Marshal() produced invalid JSON: %s", body)
	}

	var decoded Payload
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if diff := cmp.Diff(orig.Keys(), decoded.Keys()); diff != "" {
		t.Errorf("key order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(payloadMap(orig), payloadMap(&decoded)); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}

	var generic map[string]string
	if err := json.Unmarshal(body, &generic); err != nil {
		t.Fatalf("Unmarshal() into map error = %v", err)
	}
	if diff := cmp.Diff(payloadMap(orig), generic); diff != "" {
		t.Errorf("generic decode mismatch (-want +got):\n%s", diff)
	}
}

func TestPayload_UnmarshalErrors(t *testing.T) {
	inputs := []string{
		`["x"]`,
		`{"x": 3}`,
		`{"x": "1"`,
		`"implicit"`,
	}
	for _, in := range inputs {
		var p Payload
		if err := json.Unmarshal([]byte(in), &p); err == nil {
			t.Errorf("Unmarshal(%s) expected error", in)
		}
	}
}

func TestPayload_ZeroValueSet(t *testing.T) {
	var p Payload
	p.Set("a", "1")
	if p.Len() != 1 {
		t.Errorf("Len() = %d, want 1", p.Len())
	}

	body, err := json.Marshal(&p)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(body) != `{"a":"1"}` {
		t.Errorf("Marshal() = %s", body)
	}
}

// payloadMap flattens p for order-insensitive comparisons
func payloadMap(p *Payload) map[string]string {
	out := make(map[string]string, p.Len())
	for _, k := range p.Keys() {
		out[k], _ = p.Get(k)
	}
	return out
}
