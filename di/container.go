// Package di wires drivers, gateways and usecases into the object graph the
// server and CLI share.
package di

import (
	"context"
	"fmt"
	"net/http"

	"pai/config"
	"pai/driver/bluesky_client"
	"pai/driver/postgres_db"
	"pai/driver/sqlite_db"
	"pai/gateway/bluesky_gateway"
	"pai/gateway/item_storage_gateway"
	"pai/gateway/rss_source_gateway"
	"pai/port/fetch_source_port"
	"pai/port/storage_port"
	"pai/usecase/fetch_items_usecase"
	"pai/usecase/item_stats_usecase"
	"pai/usecase/sync_usecase"
	"pai/utils"
	"pai/utils/rate_limiter"
	"pai/utils/rss_builder"
)

type ApplicationComponents struct {
	SyncUsecase            *sync_usecase.SyncUsecase
	FetchItemsListUsecase  *fetch_items_usecase.FetchItemsListUsecase
	FetchSingleItemUsecase *fetch_items_usecase.FetchSingleItemUsecase
	ItemStatsUsecase       *item_stats_usecase.ItemStatsUsecase
	RSSBuilder             *rss_builder.Builder
	Storage                storage_port.StoragePort

	// VerifySchema checks the active backend's schema. Used by db-check.
	VerifySchema func(ctx context.Context) error

	closers []func() error
}

// NewApplicationComponents opens the configured storage backend, builds a
// gateway for every enabled source, and wires the usecases.
func NewApplicationComponents(ctx context.Context, cfg *config.Config, sources *config.SourcesConfig) (*ApplicationComponents, error) {
	components := &ApplicationComponents{}

	storage, verify, err := components.openStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	httpClient := utils.NewSecureHTTPClient()
	limiter := rate_limiter.NewHostRateLimiter(cfg.RateLimit.HostInterval)
	fetchSources := buildFetchSources(sources, httpClient, limiter)

	components.Storage = storage
	components.VerifySchema = verify
	components.SyncUsecase = sync_usecase.NewSyncUsecase(fetchSources, storage, cfg.Sync.SourceTimeout, cfg.Sync.MaxParallel)
	components.FetchItemsListUsecase = fetch_items_usecase.NewFetchItemsListUsecase(storage)
	components.FetchSingleItemUsecase = fetch_items_usecase.NewFetchSingleItemUsecase(storage)
	components.ItemStatsUsecase = item_stats_usecase.NewItemStatsUsecase(storage)
	components.RSSBuilder = rss_builder.NewBuilder()

	return components, nil
}

func (c *ApplicationComponents) openStorage(ctx context.Context, cfg *config.Config) (storage_port.StoragePort, func(context.Context) error, error) {
	switch cfg.Database.Backend {
	case "sqlite":
		repo, err := sqlite_db.Open(cfg.Database.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite backend: %w", err)
		}
		c.closers = append(c.closers, repo.Close)
		return item_storage_gateway.NewItemStorageGateway(repo), repo.VerifySchema, nil

	case "postgres":
		pool, err := postgres_db.NewPool(ctx, cfg.Database.URL, cfg.Database.MaxConns)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres backend: %w", err)
		}
		c.closers = append(c.closers, func() error {
			pool.Close()
			return nil
		})
		repo := postgres_db.NewPostgresRepository(pool)
		if err := repo.InitSchema(ctx); err != nil {
			return nil, nil, err
		}
		return item_storage_gateway.NewItemStorageGateway(repo), repo.VerifySchema, nil

	default:
		return nil, nil, fmt.Errorf("unknown database backend %q", cfg.Database.Backend)
	}
}

func buildFetchSources(sources *config.SourcesConfig, httpClient *http.Client, limiter *rate_limiter.HostRateLimiter) []fetch_source_port.FetchSourcePort {
	var fetchSources []fetch_source_port.FetchSourcePort
	if sources == nil {
		return fetchSources
	}

	if s := sources.Substack; s != nil && s.Enabled {
		fetchSources = append(fetchSources,
			rss_source_gateway.NewSubstackGateway(s.BaseURL, httpClient, limiter))
	}
	if b := sources.Bluesky; b != nil && b.Enabled {
		client := bluesky_client.NewClient("", httpClient)
		fetchSources = append(fetchSources,
			bluesky_gateway.NewBlueskyGateway(client, b.Handle, limiter))
	}
	for _, l := range sources.Leaflet {
		if l.Enabled {
			fetchSources = append(fetchSources,
				rss_source_gateway.NewLeafletGateway(l.ID, l.BaseURL, httpClient, limiter))
		}
	}
	for _, b := range sources.BearBlog {
		if b.Enabled {
			fetchSources = append(fetchSources,
				rss_source_gateway.NewBearBlogGateway(b.ID, b.BaseURL, httpClient, limiter))
		}
	}

	return fetchSources
}

// Close releases the storage backend.
func (c *ApplicationComponents) Close() error {
	var firstErr error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
