package azsearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// QueryType selects the query parser applied to the search text.
type QueryType string

const (
	QuerySimple   QueryType = "simple"
	QueryFull     QueryType = "full"
	QuerySemantic QueryType = "semantic"
)

// VectorQuery is one vector clause of a search request. Vector queries can be
// combined with a text query for hybrid search; the service fuses both result
// sets with reciprocal rank fusion.
type VectorQuery struct {
	Kind       string    `json:"kind"`
	Vector     []float32 `json:"vector"`
	KNearest   int       `json:"k,omitempty"`
	Fields     string    `json:"fields,omitempty"`
	Exhaustive bool      `json:"exhaustive,omitempty"`
	Weight     float64   `json:"weight,omitempty"`
}

// NewVectorQuery returns a vector clause against the given embedding field.
func NewVectorQuery(vector []float32, k int, field string) VectorQuery {
	return VectorQuery{Kind: "vector", Vector: vector, KNearest: k, Fields: field}
}

// SearchRequest is the body of a query against the documents collection.
// The zero value matches everything ("*" semantics with no paging limits
// beyond the service default page size).
type SearchRequest struct {
	Search                string        `json:"search,omitempty"`
	QueryType             QueryType     `json:"queryType,omitempty"`
	SearchMode            string        `json:"searchMode,omitempty"`
	SearchFields          string        `json:"searchFields,omitempty"`
	Select                string        `json:"select,omitempty"`
	Filter                string        `json:"filter,omitempty"`
	OrderBy               string        `json:"orderby,omitempty"`
	Top                   int           `json:"top,omitempty"`
	Skip                  int           `json:"skip,omitempty"`
	Count                 bool          `json:"count,omitempty"`
	Facets                []string      `json:"facets,omitempty"`
	ScoringProfile        string        `json:"scoringProfile,omitempty"`
	SemanticConfiguration string        `json:"semanticConfiguration,omitempty"`
	Answers               string        `json:"answers,omitempty"`
	Captions              string        `json:"captions,omitempty"`
	VectorQueries         []VectorQuery `json:"vectorQueries,omitempty"`
}

// Caption is a semantic caption extracted from a matched document.
type Caption struct {
	Text       string `json:"text"`
	Highlights string `json:"highlights"`
}

// SearchResult is one matched document with its relevance annotations.
type SearchResult struct {
	Score         float64
	RerankerScore float64
	Captions      []Caption
	Document      Document
}

// MarshalJSON emits the service's flat result shape, so results survive a
// store-and-reload cycle (for example through the searchcache package).
func (r SearchResult) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Document)+3)
	for k, v := range r.Document {
		out[k] = v
	}
	out["@search.score"] = r.Score
	if r.RerankerScore != 0 {
		out["@search.rerankerScore"] = r.RerankerScore
	}
	if len(r.Captions) > 0 {
		out["@search.captions"] = r.Captions
	}
	return json.Marshal(out)
}

// UnmarshalJSON splits the service's flat result object into relevance
// annotations and plain document fields.
func (r *SearchResult) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["@search.score"]; ok {
		if err := json.Unmarshal(v, &r.Score); err != nil {
			return err
		}
	}
	if v, ok := raw["@search.rerankerScore"]; ok {
		_ = json.Unmarshal(v, &r.RerankerScore)
	}
	if v, ok := raw["@search.captions"]; ok {
		_ = json.Unmarshal(v, &r.Captions)
	}

	r.Document = make(Document, len(raw))
	for k, v := range raw {
		if len(k) > 0 && k[0] == '@' {
			continue
		}
		var val any
		if err := json.Unmarshal(v, &val); err != nil {
			return err
		}
		r.Document[k] = val
	}
	return nil
}

// FacetValue is one bucket of a facet aggregation.
type FacetValue struct {
	Value any   `json:"value"`
	Count int64 `json:"count"`
}

// SearchResults is a page of query matches.
type SearchResults struct {
	Results  []SearchResult          `json:"value"`
	Count    int64                   `json:"@odata.count"`
	Facets   map[string][]FacetValue `json:"@search.facets"`
	NextLink string                  `json:"@odata.nextLink"`
}

// Search executes a query against the bound index. A nil-equivalent request
// matches all documents.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*SearchResults, error) {
	var results SearchResults
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&results).
		Post(c.docsPath("/search.post.search"))
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	if err := httpError(resp, ErrIndexNotFound); err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return &results, nil
}

// SuggestRequest is the body of a suggestions query.
type SuggestRequest struct {
	Search        string `json:"search"`
	SuggesterName string `json:"suggesterName"`
	Select        string `json:"select,omitempty"`
	Filter        string `json:"filter,omitempty"`
	Top           int    `json:"top,omitempty"`
	Fuzzy         bool   `json:"fuzzy,omitempty"`
}

// Suggestion is one suggested document with the matched text.
type Suggestion struct {
	Text     string
	Document Document
}

// MarshalJSON emits the service's flat suggestion shape, mirroring
// UnmarshalJSON.
func (s Suggestion) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.Document)+1)
	for k, v := range s.Document {
		out[k] = v
	}
	out["@search.text"] = s.Text
	return json.Marshal(out)
}

func (s *Suggestion) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if v, ok := raw["@search.text"]; ok {
		if err := json.Unmarshal(v, &s.Text); err != nil {
			return err
		}
	}
	s.Document = make(Document, len(raw))
	for k, v := range raw {
		if len(k) > 0 && k[0] == '@' {
			continue
		}
		var val any
		if err := json.Unmarshal(v, &val); err != nil {
			return err
		}
		s.Document[k] = val
	}
	return nil
}

// Suggest returns type-ahead suggestions from a suggester declared on the
// bound index.
func (c *Client) Suggest(ctx context.Context, req SuggestRequest) ([]Suggestion, error) {
	var out struct {
		Value []Suggestion `json:"value"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post(c.docsPath("/search.post.suggest"))
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	if err := httpError(resp, ErrIndexNotFound); err != nil {
		return nil, fmt.Errorf("suggest: %w", err)
	}
	return out.Value, nil
}

// AutocompleteRequest is the body of an autocomplete query. Mode is one of
// "oneTerm", "twoTerms" or "oneTermWithContext"; empty defaults to oneTerm.
type AutocompleteRequest struct {
	Search        string `json:"search"`
	SuggesterName string `json:"suggesterName"`
	Mode          string `json:"autocompleteMode,omitempty"`
	Top           int    `json:"top,omitempty"`
	Fuzzy         bool   `json:"fuzzy,omitempty"`
}

// AutocompleteItem is one completion of the partial query term.
type AutocompleteItem struct {
	Text          string `json:"text"`
	QueryPlusText string `json:"queryPlusText"`
}

// Autocomplete completes the last term of the search text using a suggester
// declared on the bound index.
func (c *Client) Autocomplete(ctx context.Context, req AutocompleteRequest) ([]AutocompleteItem, error) {
	var out struct {
		Value []AutocompleteItem `json:"value"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post(c.docsPath("/search.post.autocomplete"))
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	if err := httpError(resp, ErrIndexNotFound); err != nil {
		return nil, fmt.Errorf("autocomplete: %w", err)
	}
	return out.Value, nil
}
