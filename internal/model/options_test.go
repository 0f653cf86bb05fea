package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestOptionMapOrderedRoundTrip(t *testing.T) {
	om := NewOptionMap()
	om.Set("c", "third")
	om.Set("a", "first")
	om.Set("b", "second")

	data, err := json.Marshal(om)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"c":"third","a":"first","b":"second"}`
	if string(data) != want {
		t.Fatalf("marshal = %s, want %s", data, want)
	}

	var back OptionMap
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(back.Keys(), []string{"c", "a", "b"}) {
		t.Errorf("keys after round-trip = %v, want [c a b]", back.Keys())
	}
	if v, ok := back.Get("a"); !ok || v != "first" {
		t.Errorf("Get(a) = (%q, %v), want (first, true)", v, ok)
	}
}

func TestOptionMapSetReplacesWithoutReordering(t *testing.T) {
	om := NewOptionMap()
	om.Set("a", "one")
	om.Set("b", "two")
	om.Set("a", "uno")

	if om.Len() != 2 {
		t.Fatalf("len = %d, want 2", om.Len())
	}
	if !reflect.DeepEqual(om.Keys(), []string{"a", "b"}) {
		t.Errorf("keys = %v, want [a b]", om.Keys())
	}
	if v, _ := om.Get("a"); v != "uno" {
		t.Errorf("Get(a) = %q, want uno", v)
	}
}

func TestOptionMapContainsFold(t *testing.T) {
	om := NewOptionMap()
	om.Set("a", "first")
	om.Set("B", "second")

	tests := []struct {
		key  string
		want bool
	}{
		{"a", true},
		{"A", true},
		{"b", true},
		{"B", true},
		{"c", false},
		{"", false},
	}
	for _, tc := range tests {
		if got := om.ContainsFold(tc.key); got != tc.want {
			t.Errorf("ContainsFold(%q) = %v, want %v", tc.key, got, tc.want)
		}
	}
}

func TestOptionMapCloneIsIndependent(t *testing.T) {
	om := NewOptionMap()
	om.Set("a", "first")
	om.Set("b", "second")

	clone := om.Clone()
	om.Set("a", "mutated")
	om.Set("c", "third")

	if v, _ := clone.Get("a"); v != "first" {
		t.Errorf("clone Get(a) = %q, want first", v)
	}
	if clone.Len() != 2 {
		t.Errorf("clone len = %d, want 2", clone.Len())
	}
	if !reflect.DeepEqual(clone.Keys(), []string{"a", "b"}) {
		t.Errorf("clone keys = %v, want [a b]", clone.Keys())
	}
}

func TestOptionMapUnmarshalRejectsNonObject(t *testing.T) {
	var om OptionMap
	for _, raw := range []string{`["a","b"]`, `"a"`, `3`} {
		if err := json.Unmarshal([]byte(raw), &om); err == nil {
			t.Errorf("expected error for %s", raw)
		}
	}
}

func TestOptionMapMarshalEmpty(t *testing.T) {
	var om OptionMap
	data, err := json.Marshal(om)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("marshal = %s, want {}", data)
	}
}
