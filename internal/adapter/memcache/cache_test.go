package memcache

import (
	"fmt"
	"testing"
	"time"

	"github.com/lully/dayplan/internal/domain"
)

func TestCachePutGet(t *testing.T) {
	c := New()
	plan := domain.Plan{Name: "Francis", Day: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)}

	if _, ok := c.Get("2026-03-05|07:00|3|19:00"); ok {
		t.Fatal("unexpected hit on empty cache")
	}
	c.Put("2026-03-05|07:00|3|19:00", plan)
	got, ok := c.Get("2026-03-05|07:00|3|19:00")
	if !ok {
		t.Fatal("want hit after put")
	}
	if got.Name != "Francis" {
		t.Errorf("got %q", got.Name)
	}
}

func TestCacheCapsEntries(t *testing.T) {
	c := New()
	for i := 0; i < defaultMaxEntries+10; i++ {
		c.Put(fmt.Sprintf("key-%d", i), domain.Plan{})
	}
	c.mu.RLock()
	n := len(c.plans)
	c.mu.RUnlock()
	if n > defaultMaxEntries {
		t.Fatalf("cache grew to %d entries, cap is %d", n, defaultMaxEntries)
	}
}

func TestCacheReplaceDoesNotEvict(t *testing.T) {
	c := New()
	for i := 0; i < defaultMaxEntries; i++ {
		c.Put(fmt.Sprintf("key-%d", i), domain.Plan{})
	}
	c.Put("key-0", domain.Plan{Name: "updated"})
	for i := 0; i < defaultMaxEntries; i++ {
		if _, ok := c.Get(fmt.Sprintf("key-%d", i)); !ok {
			t.Fatalf("key-%d evicted by an in-place replacement", i)
		}
	}
}
