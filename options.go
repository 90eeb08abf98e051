package coursefind

import "time"

// Option configures the Client.
type Option func(*clientConfig)

type clientConfig struct {
	addrs         []string
	username      string
	password      string
	indexName     string
	searchTimeout time.Duration
	suggestLimit  int
}

// WithRedis sets the Redis addresses to connect to.
func WithRedis(addrs ...string) Option {
	return func(c *clientConfig) { c.addrs = addrs }
}

// WithCredentials sets the Redis username and password.
func WithCredentials(username, password string) Option {
	return func(c *clientConfig) {
		c.username = username
		c.password = password
	}
}

// WithIndex overrides the course index name (default "courses").
func WithIndex(name string) Option {
	return func(c *clientConfig) { c.indexName = name }
}

// WithSearchTimeout overrides the per-call search timeout.
func WithSearchTimeout(d time.Duration) Option {
	return func(c *clientConfig) { c.searchTimeout = d }
}

// WithSuggestLimit caps the number of autocomplete suggestions.
func WithSuggestLimit(n int) Option {
	return func(c *clientConfig) { c.suggestLimit = n }
}
