package store

import (
	"context"
	"testing"
)

type record struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	in := []record{{ID: "a", Count: 1}, {ID: "b", Count: 2}}
	if err := m.Put(ctx, KeyDemands, in); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var out []record
	if err := m.Get(ctx, KeyDemands, &out); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(out) != 2 || out[0].ID != "a" || out[1].Count != 2 {
		t.Errorf("out = %+v", out)
	}
}

func TestMemoryMissingKeyLeavesValueUntouched(t *testing.T) {
	m := NewMemory()
	out := []record{{ID: "preexisting"}}
	if err := m.Get(context.Background(), "nope", &out); err != nil {
		t.Fatalf("Get on missing key: %v", err)
	}
	if len(out) != 1 || out[0].ID != "preexisting" {
		t.Errorf("missing key should leave the destination untouched, got %+v", out)
	}
}

func TestMemoryPutCopiesValue(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	in := []record{{ID: "a", Count: 1}}
	m.Put(ctx, KeyStock, in)
	in[0].Count = 99 // mutating the caller's slice must not affect the store

	var out []record
	m.Get(ctx, KeyStock, &out)
	if out[0].Count != 1 {
		t.Errorf("stored value aliased caller memory: %+v", out)
	}
}
