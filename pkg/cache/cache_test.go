package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyIsDeterministic(t *testing.T) {
	a := Key("skills: go", "developer jobs in usa", "j1,j2")
	assert.Equal(t, a, Key("skills: go", "developer jobs in usa", "j1,j2"))
	assert.NotEqual(t, a, Key("skills: go", "developer jobs in usa", "j2,j1"))
	// separator keeps part boundaries distinct
	assert.NotEqual(t, Key("ab", "c"), Key("a", "bc"))
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMemory(10)
	m.now = func() time.Time { return now }

	m.Set(ctx, "k", []byte(`{"jobs":[]}`), time.Hour)
	got, ok := m.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, []byte(`{"jobs":[]}`), got)

	now = now.Add(time.Hour)
	_, ok = m.Get(ctx, "k")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
}

func TestMemoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(10)
	payload := []byte("abc")
	m.Set(ctx, "k", payload, time.Minute)
	payload[0] = 'x'

	got, _ := m.Get(ctx, "k")
	assert.Equal(t, "abc", string(got))
	got[1] = 'y'
	again, _ := m.Get(ctx, "k")
	assert.Equal(t, "abc", string(again))
}

func TestMemoryEvictsWhenFull(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(2)
	m.Set(ctx, "a", []byte("1"), time.Minute)
	m.Set(ctx, "b", []byte("2"), time.Hour)
	m.Set(ctx, "c", []byte("3"), time.Hour)

	assert.Equal(t, 2, m.Len())
	_, ok := m.Get(ctx, "a")
	assert.False(t, ok)
}

func TestMemoryIgnoresNonPositiveTTL(t *testing.T) {
	m := NewMemory(1)
	m.Set(context.Background(), "k", []byte("v"), 0)
	assert.Equal(t, 0, m.Len())
}

func TestTieredBackfillsL1(t *testing.T) {
	ctx := context.Background()
	l1, l2 := NewMemory(10), NewMemory(10)
	c := &Tiered{L1: l1, L2: l2, L1TTL: time.Minute}

	l2.Set(ctx, "k", []byte("v"), time.Hour)
	got, ok := c.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, "v", string(got))
	assert.Equal(t, 1, l1.Len())

	c.Set(ctx, "k2", []byte("v2"), time.Hour)
	_, ok = l2.Get(ctx, "k2")
	assert.True(t, ok)

	_, ok = c.Get(ctx, "missing")
	assert.False(t, ok)
}

func TestNoop(t *testing.T) {
	var c Cache = Noop{}
	c.Set(context.Background(), "k", []byte("v"), time.Hour)
	_, ok := c.Get(context.Background(), "k")
	assert.False(t, ok)
}

func TestRedisRoundTrip(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	ctx := context.Background()
	r, err := NewRedis(ctx, url)
	require.NoError(t, err)
	defer r.Close()

	key := Key("test", time.Now().String())
	r.Set(ctx, key, []byte(`{"a":1}`), time.Minute)
	got, ok := r.Get(ctx, key)
	require.True(t, ok)
	assert.Equal(t, `{"a":1}`, string(got))
}

func TestNewRedisBadURL(t *testing.T) {
	_, err := NewRedis(context.Background(), "not-a-url://")
	assert.Error(t, err)
}
