package memory

import (
	"context"
	"sync"
	"time"

	"github.com/alerta-golpe/api-go/repositories"
	"github.com/alerta-golpe/api-go/types"
)

// DomainCache keeps domain checks in a map. TTLs are recorded, not enforced.
type DomainCache struct {
	mu      sync.Mutex
	entries map[string]types.DomainCheckResult
	TTLs    map[string]time.Duration
	Fail    error
}

func NewDomainCache() *DomainCache {
	return &DomainCache{
		entries: map[string]types.DomainCheckResult{},
		TTLs:    map[string]time.Duration{},
	}
}

var _ repositories.DomainCache = (*DomainCache)(nil)

func (c *DomainCache) Get(_ context.Context, domain string) (*types.DomainCheckResult, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Fail != nil {
		return nil, false, c.Fail
	}
	result, ok := c.entries[domain]
	if !ok {
		return nil, false, nil
	}
	return &result, true, nil
}

func (c *DomainCache) Set(_ context.Context, domain string, result *types.DomainCheckResult, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Fail != nil {
		return c.Fail
	}
	c.entries[domain] = *result
	c.TTLs[domain] = ttl
	return nil
}

func (c *DomainCache) Delete(_ context.Context, domain string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Fail != nil {
		return c.Fail
	}
	delete(c.entries, domain)
	delete(c.TTLs, domain)
	return nil
}
