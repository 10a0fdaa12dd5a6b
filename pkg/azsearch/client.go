package azsearch

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client is a handle to an Azure AI Search service bound to an endpoint, a
// default index and an admin credential. It is immutable after construction
// and safe for concurrent use.
//
// Construction performs no network I/O; the first request is issued by the
// first operation called on the client.
type Client struct {
	http       *resty.Client
	endpoint   string
	indexName  string
	apiVersion string
}

// New creates a new Azure AI Search client from the given configuration.
// It validates that the endpoint, admin key and index name are non-empty and
// that the endpoint parses as an absolute URL. No connection is attempted.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.AdminKey) == "" {
		return nil, ErrMissingAdminKey
	}
	if strings.TrimSpace(cfg.IndexName) == "" {
		return nil, ErrMissingIndexName
	}

	endpoint, err := normalizeEndpoint(cfg.Endpoint)
	if err != nil {
		return nil, err
	}

	apiVersion := cfg.APIVersion
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	retryWait := cfg.RetryWaitTime
	if retryWait <= 0 {
		retryWait = time.Second
	}

	httpClient := resty.New().
		SetBaseURL(endpoint).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("api-key", cfg.AdminKey).
		SetQueryParam("api-version", apiVersion)

	if cfg.MaxRetries > 0 {
		httpClient.
			SetRetryCount(cfg.MaxRetries).
			SetRetryWaitTime(retryWait).
			AddRetryCondition(func(r *resty.Response, err error) bool {
				if err != nil {
					return true
				}
				switch r.StatusCode() {
				case http.StatusTooManyRequests,
					http.StatusBadGateway,
					http.StatusServiceUnavailable,
					http.StatusGatewayTimeout:
					return true
				}
				return false
			})
	}

	return &Client{
		http:       httpClient,
		endpoint:   endpoint,
		indexName:  cfg.IndexName,
		apiVersion: apiVersion,
	}, nil
}

// Endpoint returns the normalized service URL the client is bound to.
func (c *Client) Endpoint() string { return c.endpoint }

// IndexName returns the index the client's document operations target.
func (c *Client) IndexName() string { return c.indexName }

// APIVersion returns the REST API version sent with every request.
func (c *Client) APIVersion() string { return c.apiVersion }

func normalizeEndpoint(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrMissingEndpoint
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", errors.Join(ErrInvalidEndpoint, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: %q must include scheme and host", ErrInvalidEndpoint, raw)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// serviceError mirrors the OData error envelope the service returns for
// non-2xx responses.
type serviceError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// httpError maps a non-success response to a sentinel error, attaching the
// service's own error message when the body carries one. The notFound
// sentinel lets callers distinguish a missing index from a missing document.
func httpError(resp *resty.Response, notFound error) error {
	if resp.IsSuccess() {
		return nil
	}

	var sentinel error
	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		sentinel = ErrUnauthorized
	case http.StatusNotFound:
		sentinel = notFound
	case http.StatusConflict, http.StatusPreconditionFailed:
		sentinel = ErrConflict
	case http.StatusTooManyRequests:
		sentinel = ErrThrottled
	default:
		sentinel = ErrRequestFailed
	}

	msg := strings.TrimSpace(string(resp.Body()))
	var body serviceError
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error.Message != "" {
		msg = body.Error.Message
		if body.Error.Code != "" {
			msg = body.Error.Code + ": " + msg
		}
	}

	return errors.Join(sentinel, fmt.Errorf("status %d: %s", resp.StatusCode(), msg))
}

// indexPath returns the management path for a named index.
func indexPath(name string) string {
	return "/indexes/" + url.PathEscape(name)
}

// docsPath returns a documents sub-path for the client's bound index.
func (c *Client) docsPath(suffix string) string {
	return indexPath(c.indexName) + "/docs" + suffix
}
