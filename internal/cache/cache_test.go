package cache

import (
	"strconv"
	"sync"
	"testing"
)

func TestCacheGetSet(t *testing.T) {
	c := New[string, int](4)

	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) found a value")
	}

	c.Set("a", 1)
	c.Set("a", 2)
	if v, ok := c.Get("a"); !ok || v != 2 {
		t.Errorf("Get(a) = %d, %v; want 2, true", v, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, string](3)
	c.Set(1, "one")
	c.Set(2, "two")
	c.Set(3, "three")

	// Touch 1 so 2 becomes the oldest.
	c.Get(1)
	c.Set(4, "four")

	if _, ok := c.Get(2); ok {
		t.Error("oldest entry 2 was not evicted")
	}
	for _, k := range []int{1, 3, 4} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("entry %d was evicted", k)
		}
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
}

func TestCacheSetRefreshesEntry(t *testing.T) {
	c := New[int, int](2)
	c.Set(1, 1)
	c.Set(2, 2)
	c.Set(1, 10)
	c.Set(3, 3)

	if _, ok := c.Get(2); ok {
		t.Error("entry 2 should have been evicted")
	}
	if v, _ := c.Get(1); v != 10 {
		t.Errorf("Get(1) = %d, want 10", v)
	}
}

func TestCacheDeleteAndClear(t *testing.T) {
	c := New[int, int](0)
	for i := range 10 {
		c.Set(i, i)
	}
	if c.Len() != 10 {
		t.Fatalf("Len() = %d, want 10 (unlimited)", c.Len())
	}

	if !c.Delete(5) {
		t.Error("Delete(5) = false")
	}
	if c.Delete(5) {
		t.Error("second Delete(5) = true")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d", c.Len())
	}
	c.Set(1, 1)
	if v, ok := c.Get(1); !ok || v != 1 {
		t.Error("cache unusable after Clear")
	}
}

func TestCacheEvictionOrderAfterDelete(t *testing.T) {
	c := New[int, int](2)
	c.Set(1, 1)
	c.Set(2, 2)
	c.Delete(1)
	c.Set(3, 3)
	c.Set(4, 4)

	if _, ok := c.Get(2); ok {
		t.Error("entry 2 should have been evicted")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[string, int](16)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				k := strconv.Itoa((g + i) % 32)
				c.Set(k, i)
				c.Get(k)
			}
		}()
	}
	wg.Wait()

	if c.Len() > 16 {
		t.Errorf("Len() = %d, exceeds capacity", c.Len())
	}
}

func BenchmarkCacheGet(b *testing.B) {
	c := New[string, int](1000)
	for i := range 100 {
		c.Set(strconv.Itoa(i), i)
	}

	b.ResetTimer()
	for b.Loop() {
		c.Get("50")
	}
}
