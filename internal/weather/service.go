package weather

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	log "github.com/sirupsen/logrus"
)

// ErrUnknownProvider is returned for a provider name that is not registered.
var ErrUnknownProvider = errors.New("unknown weather provider")

// Service serves provider conditions through the cache configured on each
// provider.
type Service struct {
	store     Store
	providers map[string]Provider
}

// NewService creates a new Service. Later providers replace earlier ones with
// the same name.
func NewService(store Store, providers []Provider) *Service {
	s := &Service{
		store:     store,
		providers: make(map[string]Provider, len(providers)),
	}
	for _, p := range providers {
		s.providers[p.Name()] = p
	}
	return s
}

// Provider returns the provider registered under name.
func (s *Service) Provider(name string) (Provider, error) {
	p, ok := s.providers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, name)
	}
	return p, nil
}

// Providers returns the registered provider names in sorted order.
func (s *Service) Providers() []string {
	names := make([]string, 0, len(s.providers))
	for name := range s.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Current returns the conditions of the named provider, from cache while the
// cached entry is fresh.
func (s *Service) Current(ctx context.Context, name string) (Conditions, error) {
	p, err := s.Provider(name)
	if err != nil {
		return Conditions{}, err
	}

	key := cacheKey(p)
	if p.CacheTTL() > 0 {
		if c, err := s.store.Get(key); err == nil {
			return c, nil
		}
	}
	return s.fetch(ctx, p, key)
}

// Invalidate drops the cached conditions of the named provider.
func (s *Service) Invalidate(name string) error {
	p, err := s.Provider(name)
	if err != nil {
		return err
	}
	s.store.Delete(cacheKey(p))
	return nil
}

// Refresh fetches fresh conditions from all providers concurrently. Failed
// providers keep their last cached entry.
func (s *Service) Refresh(ctx context.Context) error {
	if len(s.providers) == 0 {
		log.Error("No weather providers configured")
		return fmt.Errorf("no weather providers configured")
	}

	var wg sync.WaitGroup
	for _, p := range s.providers {
		wg.Add(1)
		go func(p Provider) {
			defer wg.Done()
			if _, err := s.fetch(ctx, p, cacheKey(p)); err != nil {
				log.WithFields(log.Fields{"provider": p.Name(), "err": err}).Warn("Refreshing conditions")
			}
		}(p)
	}
	wg.Wait()
	return nil
}

func (s *Service) fetch(ctx context.Context, p Provider, key string) (Conditions, error) {
	c, err := p.Conditions(ctx)
	if err != nil {
		return Conditions{}, fmt.Errorf("provider %s: %w", p.Name(), err)
	}
	if ttl := p.CacheTTL(); ttl > 0 {
		s.store.Save(key, c, ttl)
	}
	log.WithFields(log.Fields{"provider": p.Name(), "icon": c.Icon}).Debug("Fetched conditions")
	return c, nil
}

func cacheKey(p Provider) string {
	return p.CacheKey() + "_" + p.Name()
}
