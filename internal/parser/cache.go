package parser

import (
	"fmt"
	"log/slog"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/novalym/velm-native/internal/lang"
)

// DefaultQueryCacheSize is the number of compiled queries kept by default.
const DefaultQueryCacheSize = 128

// compiledQuery is a read-only compiled pattern shared by concurrent executions.
// refs counts in-flight executions; the query is closed once it has been
// evicted and the last execution released it.
type compiledQuery struct {
	query   *tree_sitter.Query
	refs    int
	evicted bool
}

type queryKey struct {
	grammar *grammar
	pattern string
}

// queryCache holds compiled queries. mu guards the LRU and every refcount;
// it is never held while parsing, compiling or executing.
type queryCache struct {
	mu      sync.Mutex
	entries *lru.Cache[queryKey, *compiledQuery]
}

var queries = mustQueryCache(DefaultQueryCacheSize)

func newQueryCache(size int) (*queryCache, error) {
	entries, err := lru.NewWithEvict(size, func(_ queryKey, cq *compiledQuery) {
		cq.evicted = true
		if cq.refs == 0 {
			cq.query.Close()
		}
	})
	if err != nil {
		return nil, err
	}
	return &queryCache{entries: entries}, nil
}

func mustQueryCache(size int) *queryCache {
	c, err := newQueryCache(size)
	if err != nil {
		panic(fmt.Sprintf("query cache: %v", err))
	}
	return c
}

// SetQueryCacheSize changes how many compiled queries are retained.
func SetQueryCacheSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("query cache size must be positive, got %d", size)
	}
	queries.mu.Lock()
	defer queries.mu.Unlock()
	if n := queries.entries.Resize(size); n > 0 {
		slog.Debug("query.cache.resize", "size", size, "evicted", n)
	}
	return nil
}

// acquire returns the compiled query for pattern, compiling it outside the
// lock on a miss. The caller must release the result.
func (c *queryCache) acquire(l lang.Language, g *grammar, pattern string) (*compiledQuery, error) {
	key := queryKey{grammar: g, pattern: pattern}

	c.mu.Lock()
	if cq, ok := c.entries.Get(key); ok {
		cq.refs++
		c.mu.Unlock()
		return cq, nil
	}
	c.mu.Unlock()

	q, qerr := tree_sitter.NewQuery(g.lang, pattern)
	if qerr != nil {
		return nil, &QueryError{
			Language: l,
			Row:      qerr.Row,
			Column:   qerr.Column,
			Offset:   qerr.Offset,
			Message:  qerr.Message,
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Another caller may have compiled the same pattern meanwhile.
	if cq, ok := c.entries.Get(key); ok {
		q.Close()
		cq.refs++
		return cq, nil
	}
	cq := &compiledQuery{query: q, refs: 1}
	c.entries.Add(key, cq)
	return cq, nil
}

func (c *queryCache) release(cq *compiledQuery) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cq.refs--
	if cq.refs == 0 && cq.evicted {
		cq.query.Close()
	}
}
