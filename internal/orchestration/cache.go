package orchestration

import (
	"sync"

	"github.com/4310V343k/labs-project-stuffs/internal/bignum"
)

// operandCacheLimit bounds the number of parsed operands kept alive. The
// interactive screen reuses at most a handful of operands between runs.
const operandCacheLimit = 8

// OperandCache memoizes parsed operands keyed by their decimal text, so that
// repeated executions on unchanged inputs skip the parse phase. bignum.Int
// values are immutable, making shared storage safe across goroutines.
type OperandCache struct {
	mu      sync.Mutex
	entries map[string]bignum.Int
}

// NewOperandCache creates an empty cache.
func NewOperandCache() *OperandCache {
	return &OperandCache{entries: make(map[string]bignum.Int)}
}

// Get returns the cached value for text, if present.
func (c *OperandCache) Get(text string) (bignum.Int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[text]
	return v, ok
}

// Put stores a parsed operand. When the cache is full it is reset first;
// with the handful of operands a session touches, plain reset beats an
// eviction policy.
func (c *OperandCache) Put(text string, v bignum.Int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= operandCacheLimit {
		c.entries = make(map[string]bignum.Int)
	}
	c.entries[text] = v
}

// Len reports the number of cached operands.
func (c *OperandCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
