package azsearch

// DataType enumerates the EDM field types understood by the service.
type DataType string

const (
	TypeString            DataType = "Edm.String"
	TypeInt32             DataType = "Edm.Int32"
	TypeInt64             DataType = "Edm.Int64"
	TypeDouble            DataType = "Edm.Double"
	TypeBoolean           DataType = "Edm.Boolean"
	TypeDateTimeOffset    DataType = "Edm.DateTimeOffset"
	TypeGeographyPoint    DataType = "Edm.GeographyPoint"
	TypeComplex           DataType = "Edm.ComplexType"
	TypeStringCollection  DataType = "Collection(Edm.String)"
	TypeSingleCollection  DataType = "Collection(Edm.Single)"
	TypeDoubleCollection  DataType = "Collection(Edm.Double)"
	TypeComplexCollection DataType = "Collection(Edm.ComplexType)"
)

// Field describes a single index field.
//
// The boolean attributes are marshaled explicitly, so the zero value of a
// Field is a plain stored field with every capability switched off. Use the
// constructor helpers for the common shapes. Retrievable is a pointer because
// the service defaults it to true; nil leaves the service default in place.
type Field struct {
	Name                string   `json:"name"`
	Type                DataType `json:"type"`
	Key                 bool     `json:"key"`
	Searchable          bool     `json:"searchable"`
	Filterable          bool     `json:"filterable"`
	Sortable            bool     `json:"sortable"`
	Facetable           bool     `json:"facetable"`
	Retrievable         *bool    `json:"retrievable,omitempty"`
	Analyzer            string   `json:"analyzer,omitempty"`
	Dimensions          int      `json:"dimensions,omitempty"`
	VectorSearchProfile string   `json:"vectorSearchProfile,omitempty"`
	Fields              []Field  `json:"fields,omitempty"`
}

// KeyField returns the document key field. Keys are always Edm.String and
// filterable so individual documents can be addressed and purged.
func KeyField(name string) Field {
	return Field{Name: name, Type: TypeString, Key: true, Filterable: true, Sortable: true}
}

// SearchableField returns a full-text searchable string field.
func SearchableField(name string) Field {
	return Field{Name: name, Type: TypeString, Searchable: true}
}

// SimpleField returns a field of the given type that is filterable, sortable
// and facetable but not analyzed for full-text search.
func SimpleField(name string, typ DataType) Field {
	return Field{Name: name, Type: typ, Filterable: true, Sortable: true, Facetable: true}
}

// VectorField returns an embedding field with the given dimensionality bound
// to a vector search profile declared on the index.
func VectorField(name string, dimensions int, profile string) Field {
	return Field{
		Name:                name,
		Type:                TypeSingleCollection,
		Searchable:          true,
		Dimensions:          dimensions,
		VectorSearchProfile: profile,
	}
}

// Index is the JSON model of an index definition as accepted by the service's
// create and create-or-update operations.
type Index struct {
	Name            string           `json:"name"`
	Fields          []Field          `json:"fields"`
	Suggesters      []Suggester      `json:"suggesters,omitempty"`
	ScoringProfiles []ScoringProfile `json:"scoringProfiles,omitempty"`
	CORSOptions     *CORSOptions     `json:"corsOptions,omitempty"`
	Semantic        *SemanticSearch  `json:"semantic,omitempty"`
	VectorSearch    *VectorSearch    `json:"vectorSearch,omitempty"`
	ETag            string           `json:"@odata.etag,omitempty"`
}

// Suggester powers the suggest and autocomplete operations over the named
// source fields. The service accepts only the "analyzingInfixMatching" mode.
type Suggester struct {
	Name         string   `json:"name"`
	SearchMode   string   `json:"searchMode"`
	SourceFields []string `json:"sourceFields"`
}

// NewSuggester returns a suggester with the only supported search mode set.
func NewSuggester(name string, sourceFields ...string) Suggester {
	return Suggester{Name: name, SearchMode: "analyzingInfixMatching", SourceFields: sourceFields}
}

// ScoringProfile boosts documents by field weights at query time.
type ScoringProfile struct {
	Name      string            `json:"name"`
	Text      *TextWeights      `json:"text,omitempty"`
	Functions []ScoringFunction `json:"functions,omitempty"`
}

// TextWeights maps field names to relative boost weights.
type TextWeights struct {
	Weights map[string]float64 `json:"weights"`
}

// ScoringFunction is one scoring function inside a profile. Only the subset
// used for freshness and magnitude boosts is modeled.
type ScoringFunction struct {
	Type          string         `json:"type"`
	FieldName     string         `json:"fieldName"`
	Boost         float64        `json:"boost"`
	Interpolation string         `json:"interpolation,omitempty"`
	Freshness     map[string]any `json:"freshness,omitempty"`
	Magnitude     map[string]any `json:"magnitude,omitempty"`
}

// CORSOptions controls browser access to the index.
type CORSOptions struct {
	AllowedOrigins  []string `json:"allowedOrigins"`
	MaxAgeInSeconds int64    `json:"maxAgeInSeconds,omitempty"`
}

// VectorSearch declares the algorithms and profiles vector fields bind to.
type VectorSearch struct {
	Algorithms []VectorAlgorithm `json:"algorithms,omitempty"`
	Profiles   []VectorProfile   `json:"profiles,omitempty"`
}

// VectorAlgorithm configures one approximate or exhaustive nearest-neighbor
// algorithm. Kind is "hnsw" or "exhaustiveKnn".
type VectorAlgorithm struct {
	Name                    string                   `json:"name"`
	Kind                    string                   `json:"kind"`
	HNSWParameters          *HNSWParameters          `json:"hnswParameters,omitempty"`
	ExhaustiveKNNParameters *ExhaustiveKNNParameters `json:"exhaustiveKnnParameters,omitempty"`
}

// HNSWParameters tunes the HNSW graph. Zero values defer to service defaults.
type HNSWParameters struct {
	M              int    `json:"m,omitempty"`
	EfConstruction int    `json:"efConstruction,omitempty"`
	EfSearch       int    `json:"efSearch,omitempty"`
	Metric         string `json:"metric,omitempty"`
}

// ExhaustiveKNNParameters configures brute-force search.
type ExhaustiveKNNParameters struct {
	Metric string `json:"metric,omitempty"`
}

// VectorProfile names a reusable algorithm binding for vector fields.
type VectorProfile struct {
	Name      string `json:"name"`
	Algorithm string `json:"algorithm"`
}

// HNSWAlgorithm returns an HNSW algorithm entry with cosine similarity, the
// metric embedding models are normalized for.
func HNSWAlgorithm(name string) VectorAlgorithm {
	return VectorAlgorithm{
		Name: name,
		Kind: "hnsw",
		HNSWParameters: &HNSWParameters{
			M:              4,
			EfConstruction: 400,
			EfSearch:       500,
			Metric:         "cosine",
		},
	}
}

// ExhaustiveKNNAlgorithm returns a brute-force algorithm entry with cosine
// similarity.
func ExhaustiveKNNAlgorithm(name string) VectorAlgorithm {
	return VectorAlgorithm{
		Name: name,
		Kind: "exhaustiveKnn",
		ExhaustiveKNNParameters: &ExhaustiveKNNParameters{
			Metric: "cosine",
		},
	}
}

// SemanticSearch holds the semantic ranking configurations of an index.
type SemanticSearch struct {
	DefaultConfiguration string                  `json:"defaultConfiguration,omitempty"`
	Configurations       []SemanticConfiguration `json:"configurations,omitempty"`
}

// SemanticConfiguration tells the semantic ranker which fields carry the
// title, content and keywords of a document.
type SemanticConfiguration struct {
	Name              string                    `json:"name"`
	PrioritizedFields SemanticPrioritizedFields `json:"prioritizedFields"`
}

// SemanticPrioritizedFields ranks index fields by semantic role.
type SemanticPrioritizedFields struct {
	TitleField     *SemanticField  `json:"titleField,omitempty"`
	ContentFields  []SemanticField `json:"prioritizedContentFields,omitempty"`
	KeywordsFields []SemanticField `json:"prioritizedKeywordsFields,omitempty"`
}

// SemanticField names one index field inside a semantic configuration.
type SemanticField struct {
	FieldName string `json:"fieldName"`
}
