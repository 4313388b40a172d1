package meshcache

import (
	"errors"
	"strconv"
	"sync"
	"testing"
)

func TestCacheGetSet(t *testing.T) {
	c := New[string, int](10)
	c.Set("box", 42)

	val, ok := c.Get("box")
	if !ok || val != 42 {
		t.Errorf("Get(box) = %d, %v; want 42, true", val, ok)
	}
	if _, ok := c.Get("sphere"); ok {
		t.Error("expected sphere to be missing")
	}

	s := c.Stats()
	if s.Hits != 1 || s.Misses != 1 {
		t.Errorf("hits/misses = %d/%d, want 1/1", s.Hits, s.Misses)
	}
	if s.HitRate() != 0.5 {
		t.Errorf("HitRate() = %v, want 0.5", s.HitRate())
	}
}

func TestCacheGetOrBuild(t *testing.T) {
	c := New[string, int](10)
	builds := 0
	build := func() (int, error) {
		builds++
		return 100, nil
	}

	val, hit, err := c.GetOrBuild("key", build)
	if err != nil || hit || val != 100 {
		t.Fatalf("first GetOrBuild = %d, %v, %v; want 100, false, nil", val, hit, err)
	}
	val, hit, err = c.GetOrBuild("key", build)
	if err != nil || !hit || val != 100 {
		t.Fatalf("second GetOrBuild = %d, %v, %v; want 100, true, nil", val, hit, err)
	}
	if builds != 1 {
		t.Errorf("build called %d times, want 1", builds)
	}
}

func TestCacheGetOrBuildError(t *testing.T) {
	c := New[string, int](10)
	errBuild := errors.New("bad parameters")

	_, _, err := c.GetOrBuild("key", func() (int, error) { return 0, errBuild })
	if !errors.Is(err, errBuild) {
		t.Fatalf("err = %v, want %v", err, errBuild)
	}
	if c.Len() != 0 {
		t.Errorf("failed build was stored: Len() = %d", c.Len())
	}
}

func TestCacheDeleteAndClear(t *testing.T) {
	c := New[string, int](10)
	c.Set("a", 1)
	c.Set("b", 2)

	if !c.Delete("a") {
		t.Error("Delete(a) = false, want true")
	}
	if c.Delete("a") {
		t.Error("second Delete(a) = true, want false")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d", c.Len())
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](4)
	for i := range 4 {
		c.Set(i, i)
	}
	// Touch 0 so 1 becomes the oldest.
	c.Get(0)
	c.Set(4, 4)

	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
	if _, ok := c.Get(0); !ok {
		t.Error("recently used entry 0 was evicted")
	}
	if _, ok := c.Get(1); ok {
		t.Error("oldest entry 1 survived eviction")
	}
	if ev := c.Stats().Evictions; ev != 2 {
		t.Errorf("Evictions = %d, want 2", ev)
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[string, int](100)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				key := strconv.Itoa(i % 50)
				_, _, _ = c.GetOrBuild(key, func() (int, error) { return g, nil })
			}
		}()
	}
	wg.Wait()

	if c.Len() != 50 {
		t.Errorf("Len() = %d, want 50", c.Len())
	}
	if m := c.Stats().Misses; m != 50 {
		t.Errorf("Misses = %d, want 50 (each key built once)", m)
	}
}

func BenchmarkCacheGetOrBuild(b *testing.B) {
	c := New[string, int](1000)
	for i := 0; b.Loop(); i++ {
		_, _, _ = c.GetOrBuild(strconv.Itoa(i%100), func() (int, error) { return i, nil })
	}
}
