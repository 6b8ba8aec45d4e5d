package sales

import (
	"fmt"
	"sync/atomic"
	"time"
)

// SaleOrderPrefix prefixes order ids generated for recorded sales.
const SaleOrderPrefix = "ORD"

// OrderIDGenerator produces <prefix>-YYYYMMDD-<unix millis> ids. The
// millisecond suffix never repeats for one generator: a call landing in the
// same millisecond as the previous one takes the next free value.
type OrderIDGenerator struct {
	prefix string
	now    func() time.Time
	last   atomic.Int64
}

func NewOrderIDGenerator(prefix string, now func() time.Time) *OrderIDGenerator {
	if now == nil {
		now = time.Now
	}
	return &OrderIDGenerator{prefix: prefix, now: now}
}

func (g *OrderIDGenerator) Next() string {
	t := g.now()
	ms := t.UnixMilli()
	for {
		prev := g.last.Load()
		next := ms
		if next <= prev {
			next = prev + 1
		}
		if g.last.CompareAndSwap(prev, next) {
			return fmt.Sprintf("%s-%s-%d", g.prefix, t.Format("20060102"), next)
		}
	}
}
