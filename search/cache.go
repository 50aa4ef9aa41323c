package search

import (
	"container/list"

	"github.com/wyvernchess/wyvern/zobrist"
)

// entrySize approximates the in-memory footprint of one cache slot (hash,
// depth, score, and the bookkeeping the list/map pair need), used to turn a
// byte budget into an entry-count capacity.
const entrySize = 48

type cacheEntry struct {
	hash       zobrist.Key
	depth      int
	whiteScore float32
}

// Cache is a bounded transposition table keyed on Zobrist hash, storing
// (search depth, White-perspective score) and evicting strictly by least
// recent use on every probe or insert.
type Cache struct {
	capacity int
	order    *list.List // front = most recently used
	index    map[zobrist.Key]*list.Element
}

// NewCache builds a Cache sized to hold roughly byteBudget bytes worth of
// entries.
func NewCache(byteBudget int) *Cache {
	capacity := byteBudget / entrySize
	if capacity < 1 {
		capacity = 1
	}
	return &Cache{
		capacity: capacity,
		order:    list.New(),
		index:    make(map[zobrist.Key]*list.Element, capacity),
	}
}

// Get looks up hash, returning its stored depth and White-perspective score.
// A hit counts as a use and moves the entry to the front of the LRU order.
func (c *Cache) Get(hash zobrist.Key) (depth int, whiteScore float32, ok bool) {
	el, found := c.index[hash]
	if !found {
		return 0, 0, false
	}
	c.order.MoveToFront(el)
	e := el.Value.(*cacheEntry)
	return e.depth, e.whiteScore, true
}

// Put records (depth, whiteScore) for hash, overwriting any existing entry,
// and evicts the least-recently-used entry if this insert would exceed
// capacity.
func (c *Cache) Put(hash zobrist.Key, depth int, whiteScore float32) {
	if el, found := c.index[hash]; found {
		e := el.Value.(*cacheEntry)
		e.depth = depth
		e.whiteScore = whiteScore
		c.order.MoveToFront(el)
		return
	}

	e := &cacheEntry{hash: hash, depth: depth, whiteScore: whiteScore}
	el := c.order.PushFront(e)
	c.index[hash] = el

	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.index, oldest.Value.(*cacheEntry).hash)
		}
	}
}

// Reset empties the cache, used on ucinewgame.
func (c *Cache) Reset() {
	c.order.Init()
	c.index = make(map[zobrist.Key]*list.Element, c.capacity)
}

// Len reports the number of entries currently stored.
func (c *Cache) Len() int { return c.order.Len() }
