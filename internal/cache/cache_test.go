package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTLCache_GetSet(t *testing.T) {
	c := New(time.Minute)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("k", 42)
	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestTTLCache_Expiry(t *testing.T) {
	c := New(time.Minute)
	base := time.Unix(1000, 0)
	c.now = func() time.Time { return base }

	c.Set("k", "v")

	c.now = func() time.Time { return base.Add(59 * time.Second) }
	_, ok := c.Get("k")
	assert.True(t, ok)

	c.now = func() time.Time { return base.Add(61 * time.Second) }
	_, ok = c.Get("k")
	assert.False(t, ok, "entry must expire after the TTL")
}

func TestTTLCache_Invalidate(t *testing.T) {
	c := New(time.Minute)
	c.Set("config:org1:fmt1", 1)
	c.Set("config:org1:fmt2", 2)
	c.Set("config:org2:fmt1", 3)

	c.Invalidate("config:org1:fmt1")
	_, ok := c.Get("config:org1:fmt1")
	assert.False(t, ok)
	_, ok = c.Get("config:org1:fmt2")
	assert.True(t, ok)

	c.InvalidatePrefix("config:org1:")
	_, ok = c.Get("config:org1:fmt2")
	assert.False(t, ok)
	_, ok = c.Get("config:org2:fmt1")
	assert.True(t, ok)
}

func TestTTLCache_Concurrent(t *testing.T) {
	c := New(time.Minute)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			c.Set("k", i)
		}
	}()
	for i := 0; i < 1000; i++ {
		c.Get("k")
		c.Invalidate("other")
	}
	<-done
}
