// Package fetch retrieves the model catalog, preferring a fresh local
// snapshot and falling back to the network.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/JoeyWangTW/model-lookup/internal/cache"
	"github.com/JoeyWangTW/model-lookup/internal/catalog"
	"github.com/JoeyWangTW/model-lookup/internal/httpclient"
)

// Origin reports where a returned catalog came from.
type Origin string

const (
	// OriginNetwork means the catalog was fetched from the endpoint.
	OriginNetwork Origin = "network"
	// OriginCache means a fresh snapshot served the request.
	OriginCache Origin = "cache"
	// OriginStale means the endpoint failed and an expired snapshot
	// served the request instead.
	OriginStale Origin = "stale-cache"
)

// Classification errors, matched with errors.Is.
var (
	// ErrNetwork reports that the endpoint could not be fetched and no
	// cached snapshot was available to fall back to.
	ErrNetwork = errors.New("network error: catalog unreachable and no cached copy")
	// ErrParse reports a catalog body that does not match the expected shape.
	ErrParse = errors.New("parse error: unexpected catalog response shape")
)

// Config holds fetcher settings.
type Config struct {
	Endpoint string
	TTL      time.Duration
	NoCache  bool
}

// Fetcher loads the catalog from the snapshot store or the network.
type Fetcher struct {
	cfg    Config
	client *httpclient.Client
	store  cache.Store
}

// New creates a Fetcher. A nil store disables caching entirely.
func New(cfg Config, client *httpclient.Client, store cache.Store) *Fetcher {
	return &Fetcher{cfg: cfg, client: client, store: store}
}

// Catalog returns the model list. A fresh snapshot is served without
// touching the network; otherwise a single GET refreshes the snapshot.
// When the GET fails and an expired snapshot exists, the stale models
// are served with a warning instead of an error.
func (f *Fetcher) Catalog(ctx context.Context) ([]catalog.Entry, Origin, error) {
	var stale *cache.Snapshot
	if f.store != nil && !f.cfg.NoCache {
		snap, err := f.store.Load()
		switch {
		case err == nil && snap.Fresh(f.cfg.TTL):
			return snap.Models, OriginCache, nil
		case err == nil:
			stale = snap
		case !os.IsNotExist(err):
			slog.Warn("unreadable cache snapshot, refetching", "error", err)
		}
	}

	models, err := f.Refresh(ctx)
	if err != nil {
		if stale != nil {
			slog.Warn("catalog fetch failed, serving stale cache",
				"age", stale.Age().Round(time.Second), "error", err)
			return stale.Models, OriginStale, nil
		}
		return nil, "", err
	}
	return models, OriginNetwork, nil
}

// Refresh fetches from the network regardless of snapshot freshness and
// rewrites the snapshot on success.
func (f *Fetcher) Refresh(ctx context.Context) ([]catalog.Entry, error) {
	resp, err := f.client.Get(ctx, f.cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	models, err := catalog.ParseModels(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if f.store != nil && !f.cfg.NoCache {
		snap := &cache.Snapshot{FetchedAt: time.Now(), Models: models}
		if err := f.store.Save(snap); err != nil {
			slog.Warn("saving catalog snapshot failed", "error", err)
		}
	}
	return models, nil
}
