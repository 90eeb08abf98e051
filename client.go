// Package coursefind is the embedded SDK for the course catalog search
// service. It wires the same search pipeline the HTTP server uses
// directly against a Redis-backed catalog, without the transport layer.
package coursefind

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coursefind/coursefind/internal/db"
	dbRedis "github.com/coursefind/coursefind/internal/db/redis"
	catalogrepo "github.com/coursefind/coursefind/internal/repository/catalog"
	ingestuc "github.com/coursefind/coursefind/internal/usecase/ingest"
	searchuc "github.com/coursefind/coursefind/internal/usecase/search"
	suggestuc "github.com/coursefind/coursefind/internal/usecase/suggest"
)

const (
	defaultIndexName        = "courses"
	defaultReadinessTimeout = 10 * time.Second
)

// Client is the coursefind SDK entry point.
type Client struct {
	store      db.Store
	repo       *catalogrepo.Repo
	searchSvc  *searchuc.Service
	suggestSvc *suggestuc.Service
	ingestSvc  *ingestuc.Service
}

// New creates a coursefind Client and connects to the catalog store.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{indexName: defaultIndexName}
	for _, o := range opts {
		o(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("coursefind: catalog address required (use WithRedis)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
	})
	if err != nil {
		return nil, fmt.Errorf("coursefind: create store: %w", err)
	}

	ctx := context.Background()
	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("coursefind: catalog store not ready: %w", err)
	}

	return wireClient(store, cfg), nil
}

func wireClient(store db.Store, cfg *clientConfig) *Client {
	repo := catalogrepo.New(store, cfg.indexName)
	if cfg.searchTimeout > 0 {
		repo = repo.WithTimeout(cfg.searchTimeout)
	}

	return &Client{
		store:      store,
		repo:       repo,
		searchSvc:  searchuc.New(repo),
		suggestSvc: suggestuc.New(repo, cfg.suggestLimit),
		ingestSvc:  ingestuc.New(repo, nil),
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks catalog store connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// EnsureIndex provisions the course index. Idempotent.
func (c *Client) EnsureIndex(ctx context.Context) error {
	if _, err := c.repo.EnsureIndex(ctx); err != nil {
		return fmt.Errorf("ensure index: %w", err)
	}
	return nil
}

// Upsert validates and writes a batch of courses.
func (c *Client) Upsert(ctx context.Context, courses []Course) error {
	if _, err := c.ingestSvc.Upsert(ctx, toInternalCourses(courses)); err != nil {
		return fmt.Errorf("upsert: %w", err)
	}
	return nil
}

// Get retrieves a single course by id.
func (c *Client) Get(ctx context.Context, id string) (Course, error) {
	dc, err := c.searchSvc.Get(ctx, id)
	if err != nil {
		return Course{}, err
	}
	return fromInternalCourse(dc), nil
}

// Count returns the number of indexed courses.
func (c *Client) Count(ctx context.Context) (int, error) {
	return c.repo.Count(ctx)
}

// Suggest returns distinct values of field starting with prefix.
func (c *Client) Suggest(ctx context.Context, field, prefix string) ([]string, error) {
	return c.suggestSvc.Suggest(ctx, field, prefix)
}
