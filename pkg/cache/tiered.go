package cache

import (
	"context"
	"time"
)

// Tiered checks a fast local cache before a shared one and back-fills L1 on L2 hits.
type Tiered struct {
	L1 Cache
	L2 Cache
	// L1TTL bounds how long back-filled entries live locally.
	L1TTL time.Duration
}

func (t *Tiered) Get(ctx context.Context, key string) ([]byte, bool) {
	if data, ok := t.L1.Get(ctx, key); ok {
		return data, true
	}
	data, ok := t.L2.Get(ctx, key)
	if !ok {
		return nil, false
	}
	if t.L1TTL > 0 {
		t.L1.Set(ctx, key, data, t.L1TTL)
	}
	return data, true
}

func (t *Tiered) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	l1ttl := ttl
	if t.L1TTL > 0 && t.L1TTL < ttl {
		l1ttl = t.L1TTL
	}
	t.L1.Set(ctx, key, value, l1ttl)
	t.L2.Set(ctx, key, value, ttl)
}
