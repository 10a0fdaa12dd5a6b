package azsearch

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Document is a single search document. Field names must match the index
// schema; the key field value addresses the document on the service.
type Document map[string]any

// IndexAction is the per-document operation of an indexing batch.
type IndexAction string

const (
	ActionUpload        IndexAction = "upload"
	ActionMerge         IndexAction = "merge"
	ActionMergeOrUpload IndexAction = "mergeOrUpload"
	ActionDelete        IndexAction = "delete"
)

// IndexResult is the service's verdict on one document of a batch.
type IndexResult struct {
	Key          string `json:"key"`
	Status       bool   `json:"status"`
	ErrorMessage string `json:"errorMessage"`
	StatusCode   int    `json:"statusCode"`
}

// UploadOption adjusts how a document batch is prepared.
type UploadOption func(*uploadOptions)

type uploadOptions struct {
	keyField string
}

// WithGeneratedKeys fills the named key field with a random UUID for any
// document in the batch that does not carry one. Useful when documents are
// produced by a pipeline that has no natural identifier.
func WithGeneratedKeys(keyField string) UploadOption {
	return func(o *uploadOptions) { o.keyField = keyField }
}

// UploadDocuments adds documents to the bound index, replacing any existing
// document with the same key.
func (c *Client) UploadDocuments(ctx context.Context, docs []Document, opts ...UploadOption) ([]IndexResult, error) {
	return c.indexBatch(ctx, ActionUpload, docs, opts...)
}

// MergeDocuments patches fields of existing documents. A document whose key
// is not present in the index fails with a per-document 404 result.
func (c *Client) MergeDocuments(ctx context.Context, docs []Document) ([]IndexResult, error) {
	return c.indexBatch(ctx, ActionMerge, docs)
}

// MergeOrUploadDocuments patches existing documents and uploads the rest.
func (c *Client) MergeOrUploadDocuments(ctx context.Context, docs []Document, opts ...UploadOption) ([]IndexResult, error) {
	return c.indexBatch(ctx, ActionMergeOrUpload, docs, opts...)
}

// DeleteDocuments removes documents by key from the bound index. Deleting a
// key that does not exist is reported as success by the service.
func (c *Client) DeleteDocuments(ctx context.Context, keyField string, keys ...string) ([]IndexResult, error) {
	docs := make([]Document, 0, len(keys))
	for _, key := range keys {
		docs = append(docs, Document{keyField: key})
	}
	return c.indexBatch(ctx, ActionDelete, docs)
}

func (c *Client) indexBatch(ctx context.Context, action IndexAction, docs []Document, opts ...UploadOption) ([]IndexResult, error) {
	if len(docs) == 0 {
		return nil, nil
	}

	var options uploadOptions
	for _, opt := range opts {
		opt(&options)
	}

	value := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		item := make(map[string]any, len(doc)+1)
		for k, v := range doc {
			item[k] = v
		}
		if options.keyField != "" {
			if key, ok := item[options.keyField]; !ok || key == "" {
				item[options.keyField] = uuid.NewString()
			}
		}
		item["@search.action"] = string(action)
		value = append(value, item)
	}

	var out struct {
		Value []IndexResult `json:"value"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]any{"value": value}).
		SetResult(&out).
		Post(c.docsPath("/search.index"))
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}

	// 207 means the batch was accepted but some documents were rejected;
	// resty treats it as a success status, so check the per-document results.
	if err := httpError(resp, ErrIndexNotFound); err != nil {
		return nil, fmt.Errorf("%s documents: %w", action, err)
	}

	var failed []string
	for _, r := range out.Value {
		if !r.Status {
			failed = append(failed, fmt.Sprintf("%s (%d): %s", r.Key, r.StatusCode, r.ErrorMessage))
		}
	}
	if len(failed) > 0 {
		return out.Value, fmt.Errorf("%w: %s", ErrPartialFailure, strings.Join(failed, "; "))
	}

	return out.Value, nil
}

// GetDocument retrieves a single document from the bound index by key.
func (c *Client) GetDocument(ctx context.Context, key string) (Document, error) {
	var doc Document
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&doc).
		Get(c.docsPath("('" + url.PathEscape(key) + "')"))
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	if err := httpError(resp, ErrDocumentNotFound); err != nil {
		return nil, fmt.Errorf("get document %q: %w", key, err)
	}
	// The lookup response carries OData annotations alongside the fields.
	delete(doc, "@odata.context")
	return doc, nil
}

// CountDocuments returns the number of documents in the bound index.
func (c *Client) CountDocuments(ctx context.Context) (int64, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(c.docsPath("/$count"))
	if err != nil {
		return 0, errors.Join(ErrRequestFailed, err)
	}
	if err := httpError(resp, ErrIndexNotFound); err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}

	// The count endpoint answers with a bare integer, optionally prefixed
	// with a BOM depending on service version.
	body := strings.TrimPrefix(strings.TrimSpace(string(resp.Body())), "\ufeff")
	n, err := strconv.ParseInt(body, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("count documents: unexpected body %q: %w", body, err)
	}
	return n, nil
}
