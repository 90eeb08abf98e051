package redis

import "github.com/redis/rueidis"

// NewStoreForTest wraps an existing (possibly mock) rueidis client.
func NewStoreForTest(c rueidis.Client) *Store {
	return &Store{client: c}
}
