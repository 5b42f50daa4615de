package pkg

import (
	"encoding/json"
	"testing"
)

type patchBody struct {
	Note Optional[string] `json:"note"`
	Qty  Optional[int]    `json:"qty"`
}

func TestOptional_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		noteSet  bool
		noteNull bool
		note     string
	}{
		{name: "absent", body: `{}`},
		{name: "null", body: `{"note":null}`, noteSet: true, noteNull: true},
		{name: "value", body: `{"note":"call back"}`, noteSet: true, note: "call back"},
		{name: "empty string is a value", body: `{"note":""}`, noteSet: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var p patchBody
			if err := json.Unmarshal([]byte(tc.body), &p); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Note.Set != tc.noteSet || p.Note.Null != tc.noteNull || p.Note.Value != tc.note {
				t.Fatalf("unexpected optional: %+v", p.Note)
			}
			if p.Qty.Set {
				t.Fatalf("qty should stay unset")
			}
		})
	}

	t.Run("type mismatch", func(t *testing.T) {
		var p patchBody
		if err := json.Unmarshal([]byte(`{"qty":"many"}`), &p); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestOptional_ApplyTo(t *testing.T) {
	old := "old"

	dst := &old
	Optional[string]{}.ApplyTo(&dst)
	if dst == nil || *dst != "old" {
		t.Fatalf("absent must keep the value")
	}

	Null[string]().ApplyTo(&dst)
	if dst != nil {
		t.Fatalf("null must clear the value")
	}

	Some("new").ApplyTo(&dst)
	if dst == nil || *dst != "new" {
		t.Fatalf("value must be set")
	}
	if !Some(1).HasValue() || Null[int]().HasValue() {
		t.Fatalf("unexpected HasValue")
	}
}
