package handle

import (
	"sync"
	"testing"
)

func TestTable_RegisterLookupRelease(t *testing.T) {
	var tbl Table

	id := tbl.Register("value")
	if id == 0 {
		t.Fatal("Register returned zero id")
	}

	got, ok := tbl.Lookup(id)
	if !ok {
		t.Fatal("Lookup failed for registered id")
	}
	if got != "value" {
		t.Errorf("Lookup = %v, want %q", got, "value")
	}

	if !tbl.Release(id) {
		t.Fatal("Release returned false for registered id")
	}
	if _, ok := tbl.Lookup(id); ok {
		t.Error("Lookup succeeded after Release")
	}
	if tbl.Release(id) {
		t.Error("second Release returned true")
	}
}

func TestTable_ZeroID(t *testing.T) {
	var tbl Table
	if _, ok := tbl.Lookup(0); ok {
		t.Error("Lookup(0) should fail")
	}
	if tbl.Release(0) {
		t.Error("Release(0) should fail")
	}
}

func TestTable_IDsAreUnique(t *testing.T) {
	var tbl Table
	seen := make(map[ID]bool)
	for i := 0; i < 100; i++ {
		id := tbl.Register(i)
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
	if tbl.Len() != 100 {
		t.Errorf("Len = %d, want 100", tbl.Len())
	}
}

func TestTable_Concurrent(t *testing.T) {
	var tbl Table
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				id := tbl.Register(n*100 + j)
				if _, ok := tbl.Lookup(id); !ok {
					t.Errorf("Lookup(%d) failed", id)
				}
				tbl.Release(id)
			}
		}(i)
	}
	wg.Wait()
	if tbl.Len() != 0 {
		t.Errorf("Len = %d after releasing everything, want 0", tbl.Len())
	}
}
