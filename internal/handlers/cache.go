package handlers

import (
	"sync"

	"prscope/internal/models"
)

// analysisCache keeps the most recent analysis keyed by PR URL so
// re-rendering with a different threshold or sort order does not refetch.
// Presentation-layer state only; the pipeline itself stays stateless.
type analysisCache struct {
	mu     sync.RWMutex
	prURL  string
	result *models.AnalysisResult
}

func newAnalysisCache() *analysisCache {
	return &analysisCache{}
}

// Get returns the cached result for prURL, or nil if a different URL (or
// nothing) is cached
func (c *analysisCache) Get(prURL string) *models.AnalysisResult {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.prURL != prURL {
		return nil
	}
	return c.result
}

// Latest returns whatever analysis is cached, regardless of URL
func (c *analysisCache) Latest() *models.AnalysisResult {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.result
}

// Put replaces the cached analysis
func (c *analysisCache) Put(prURL string, result *models.AnalysisResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prURL = prURL
	c.result = result
}
