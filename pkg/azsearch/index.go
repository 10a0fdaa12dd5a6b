package azsearch

import (
	"context"
	"errors"
	"fmt"
)

// CreateIndex creates a new index from the given definition. It fails with
// ErrConflict if an index with the same name already exists.
func (c *Client) CreateIndex(ctx context.Context, idx Index) (*Index, error) {
	var created Index
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(idx).
		SetResult(&created).
		Post("/indexes")
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	if err := httpError(resp, ErrConflict); err != nil {
		return nil, fmt.Errorf("create index %q: %w", idx.Name, err)
	}
	return &created, nil
}

// CreateOrUpdateIndex creates the index if it does not exist, or updates the
// definition in place if it does. This is the idempotent way to converge an
// index onto a desired schema.
func (c *Client) CreateOrUpdateIndex(ctx context.Context, idx Index) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(idx).
		Put(indexPath(idx.Name))
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}
	if err := httpError(resp, ErrIndexNotFound); err != nil {
		return fmt.Errorf("create or update index %q: %w", idx.Name, err)
	}
	return nil
}

// GetIndex fetches the definition of a named index.
func (c *Client) GetIndex(ctx context.Context, name string) (*Index, error) {
	var idx Index
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&idx).
		Get(indexPath(name))
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	if err := httpError(resp, ErrIndexNotFound); err != nil {
		return nil, fmt.Errorf("get index %q: %w", name, err)
	}
	return &idx, nil
}

// IndexExists reports whether the named index exists on the service.
func (c *Client) IndexExists(ctx context.Context, name string) (bool, error) {
	_, err := c.GetIndex(ctx, name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrIndexNotFound) {
		return false, nil
	}
	return false, err
}

// DeleteIndex removes the named index and all documents in it.
func (c *Client) DeleteIndex(ctx context.Context, name string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete(indexPath(name))
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}
	if err := httpError(resp, ErrIndexNotFound); err != nil {
		return fmt.Errorf("delete index %q: %w", name, err)
	}
	return nil
}

// ListIndexes returns the definitions of all indexes on the service.
func (c *Client) ListIndexes(ctx context.Context) ([]Index, error) {
	var out struct {
		Value []Index `json:"value"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/indexes")
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	if err := httpError(resp, ErrRequestFailed); err != nil {
		return nil, fmt.Errorf("list indexes: %w", err)
	}
	return out.Value, nil
}

// IndexStatistics reports document count and storage consumption of an index.
type IndexStatistics struct {
	DocumentCount   int64 `json:"documentCount"`
	StorageSize     int64 `json:"storageSize"`
	VectorIndexSize int64 `json:"vectorIndexSize"`
}

// GetIndexStatistics fetches usage statistics for a named index. Counts are
// refreshed by the service every few minutes and may lag recent writes.
func (c *Client) GetIndexStatistics(ctx context.Context, name string) (*IndexStatistics, error) {
	var stats IndexStatistics
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&stats).
		Get(indexPath(name) + "/stats")
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	if err := httpError(resp, ErrIndexNotFound); err != nil {
		return nil, fmt.Errorf("index statistics %q: %w", name, err)
	}
	return &stats, nil
}

// EnsureIndex converges the client's bound index onto the given definition.
// The definition's name is overridden with the bound index name so callers
// can reuse one schema across environments.
func (c *Client) EnsureIndex(ctx context.Context, idx Index) error {
	idx.Name = c.indexName
	return c.CreateOrUpdateIndex(ctx, idx)
}
