package todo

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	edited := t0.Add(90 * time.Second).Add(123456789)
	original := List{
		{ID: "a", Text: "Buy milk", Done: true, CreatedAt: t0},
		{ID: "b", Text: "Walk dog", CreatedAt: t0.Add(time.Second), EditedAt: &edited},
	}

	raw, err := Encode(original)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	decoded, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !reflect.DeepEqual(decoded, original) {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", decoded, original)
	}
}

func TestEncodeNil(t *testing.T) {
	raw, err := Encode(nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if raw != "[]" {
		t.Errorf("Encode(nil) = %q, want []", raw)
	}
	l, err := Decode(raw)
	if err != nil || l == nil || l.Len() != 0 {
		t.Errorf("Decode([]) = %#v, %v", l, err)
	}
}

func TestEncodeWritesNullEditedAt(t *testing.T) {
	raw, err := Encode(List{{ID: "a", Text: "A", CreatedAt: t0}})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(raw, `"editedAt":null`) {
		t.Errorf("expected explicit null editedAt in %s", raw)
	}
}

func TestDecodeAssignsMissingIDs(t *testing.T) {
	raw := `[{"text":"legacy","done":false,"createdAt":"2026-10-18T09:30:00Z","editedAt":null}]`
	l, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if l[0].ID == "" {
		t.Error("expected an id to be assigned")
	}
}

func TestDecodeNormalizesToUTC(t *testing.T) {
	raw := `[{"id":"a","text":"x","done":false,"createdAt":"2026-10-18T11:30:00+02:00","editedAt":"2026-10-18T12:00:00+02:00"}]`
	l, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !reflect.DeepEqual(l[0].CreatedAt, t0) {
		t.Errorf("CreatedAt = %v, want %v", l[0].CreatedAt, t0)
	}
	if l[0].EditedAt.Location() != time.UTC {
		t.Errorf("EditedAt location = %v, want UTC", l[0].EditedAt.Location())
	}
}

func TestDecodeKeepsEditedBeforeCreated(t *testing.T) {
	raw := `[{"id":"a","text":"a","done":false,"createdAt":"2026-10-18T09:30:00Z","editedAt":"2026-10-18T09:00:00Z"}]`
	l, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(l) != 1 || l[0].EditedAt == nil || !l[0].EditedAt.Before(l[0].CreatedAt) {
		t.Errorf("Decode = %+v, want the task with its stamps unchanged", l)
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{oops`},
		{"empty string", ``},
		{"null", `null`},
		{"object instead of array", `{"tasks":[]}`},
		{"blank text", `[{"text":"  ","done":false,"createdAt":"2026-10-18T09:30:00Z"}]`},
		{"missing createdAt", `[{"text":"a","done":false}]`},
		{"bad timestamp", `[{"text":"a","done":false,"createdAt":"yesterday"}]`},
		{"done not bool", `[{"text":"a","done":"yes","createdAt":"2026-10-18T09:30:00Z"}]`},
		{"unknown field", `[{"text":"a","done":false,"createdAt":"2026-10-18T09:30:00Z","priority":1}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if l, err := Decode(tt.raw); err == nil {
				t.Errorf("Decode(%s) = %+v, want error", tt.raw, l)
			}
		})
	}
}
