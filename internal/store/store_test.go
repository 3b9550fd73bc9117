package store_test

import (
	"testing"

	"github.com/shess-dev/shess/internal/store"
)

func TestCacheGetPutRoundTrip(t *testing.T) {
	c, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer c.Close()

	const hash = uint64(0xdeadbeefcafef00d)
	if _, _, ok := c.Get(hash); ok {
		t.Fatal("expected a miss on an empty cache")
	}

	c.Put(hash, 137, 6)
	score, depth, ok := c.Get(hash)
	if !ok {
		t.Fatal("expected a hit after Put")
	}
	if score != 137 || depth != 6 {
		t.Errorf("Get = (%d, %d), want (137, 6)", score, depth)
	}

	c.Put(hash, -42, 8)
	score, depth, ok = c.Get(hash)
	if !ok || score != -42 || depth != 8 {
		t.Errorf("Get after overwrite = (%d, %d, %v), want (-42, 8, true)", score, depth, ok)
	}
}

func TestCacheExportImport(t *testing.T) {
	src, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open src: %v", err)
	}
	defer src.Close()

	entries := map[uint64][2]int{
		1:              {10, 1},
		2:              {-20, 2},
		0xffffffffffff: {30, 3},
	}
	for hash, e := range entries {
		src.Put(hash, e[0], e[1])
	}

	type record struct {
		hash  uint64
		score int
		depth int
	}
	var exported []record
	err = src.Export(func(hash uint64, score int, depth int) error {
		exported = append(exported, record{hash, score, depth})
		return nil
	})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(exported) != len(entries) {
		t.Fatalf("exported %d entries, want %d", len(exported), len(entries))
	}

	dst, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open dst: %v", err)
	}
	defer dst.Close()

	i := 0
	err = dst.Import(func() (hash uint64, score int, depth int, ok bool) {
		if i >= len(exported) {
			return 0, 0, 0, false
		}
		e := exported[i]
		i++
		return e.hash, e.score, e.depth, true
	})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	for hash, want := range entries {
		score, depth, ok := dst.Get(hash)
		if !ok || score != want[0] || depth != want[1] {
			t.Errorf("dst.Get(%d) = (%d, %d, %v), want (%d, %d, true)", hash, score, depth, ok, want[0], want[1])
		}
	}
}
