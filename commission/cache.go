package commission

import (
	"encoding/binary"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/satheeshds/commissions/models"
	"github.com/zeebo/xxh3"
)

// CachedResolver memoizes another resolver by (input fingerprint, window).
// It is an optional decorator; results are identical to the wrapped resolver.
type CachedResolver struct {
	next  TrancheResolver
	cache *gocache.Cache
}

// NewCachedResolver wraps next with an in-memory cache whose entries live for ttl.
func NewCachedResolver(next TrancheResolver, ttl time.Duration) *CachedResolver {
	return &CachedResolver{
		next:  next,
		cache: gocache.New(ttl, 2*ttl),
	}
}

// Resolve returns the cached rows for identical inputs, resolving on a miss.
// The returned slice is shared and must not be modified.
func (c *CachedResolver) Resolve(txns []models.Transaction, idx TrancheIndex, r Range) []EffectiveTranche {
	key := Fingerprint(txns, idx) + "/" + r.String()
	if rows, ok := c.cache.Get(key); ok {
		return rows.([]EffectiveTranche)
	}
	rows := c.next.Resolve(txns, idx, r)
	c.cache.SetDefault(key, rows)
	return rows
}

// Invalidate drops every cached entry.
func (c *CachedResolver) Invalidate() {
	c.cache.Flush()
}

// Len is the number of live cache entries.
func (c *CachedResolver) Len() int {
	return c.cache.ItemCount()
}

// Fingerprint hashes every field of txns and their indexed tranches that the
// resolver reads.
func Fingerprint(txns []models.Transaction, idx TrancheIndex) string {
	h := xxh3.New()
	var buf []byte
	num := func(v int64) {
		buf = binary.LittleEndian.AppendUint64(buf[:0], uint64(v))
		h.Write(buf)
	}
	str := func(s string) {
		num(int64(len(s)))
		h.Write([]byte(s))
	}
	for _, t := range txns {
		num(t.ID)
		num(int64(t.Year))
		num(int64(t.Month))
		num(int64(t.NetCommission))
		num(int64(t.Cost))
		num(int64(t.Credit))
		num(int64(t.PropertyValue))
		str(string(t.Branch))
		str(t.Agent)
		tranches := idx[t.ID]
		num(int64(len(tranches)))
		for _, tr := range tranches {
			num(tr.ID)
			num(int64(tr.Year))
			num(int64(tr.Month))
			num(int64(tr.Amount))
			num(int64(tr.Probability))
			str(string(tr.Status))
		}
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
