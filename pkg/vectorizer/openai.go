package vectorizer

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

// DefaultOpenAIModel balances quality and cost for search workloads.
const DefaultOpenAIModel = openai.EmbeddingModelTextEmbedding3Small

// maxBatchSize is the upper bound of inputs per embeddings request.
const maxBatchSize = 100

// modelDimensions maps known embedding models to their native output size.
var modelDimensions = map[openai.EmbeddingModel]int{
	openai.EmbeddingModelTextEmbedding3Small: 1536,
	openai.EmbeddingModelTextEmbedding3Large: 3072,
	openai.EmbeddingModelTextEmbeddingAda002: 1536,
}

// OpenAIConfig configures the OpenAI embedding provider with environment
// variable mapping.
type OpenAIConfig struct {
	// APIKey authenticates against the embeddings API.
	APIKey string `env:"OPENAI_API_KEY,required,notEmpty"`

	// Model selects the embedding model. Defaults to text-embedding-3-small.
	Model string `env:"OPENAI_EMBEDDING_MODEL"`

	// BaseURL overrides the API endpoint, e.g. for an Azure OpenAI deployment.
	BaseURL string `env:"OPENAI_BASE_URL"`
}

// OpenAIProvider implements Provider on the official OpenAI client.
type OpenAIProvider struct {
	client     openai.Client
	model      openai.EmbeddingModel
	dimensions int
}

// NewOpenAIProvider creates an OpenAI embedding provider.
func NewOpenAIProvider(cfg OpenAIConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}

	model := openai.EmbeddingModel(cfg.Model)
	if model == "" {
		model = DefaultOpenAIModel
	}
	dimensions, ok := modelDimensions[model]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidModel, model)
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &OpenAIProvider{
		client:     openai.NewClient(opts...),
		model:      model,
		dimensions: dimensions,
	}, nil
}

// Vectorize converts a single text into an embedding.
func (p *OpenAIProvider) Vectorize(ctx context.Context, text string) (Vector, error) {
	vectors, err := p.VectorizeBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vectors) == 0 {
		return nil, ErrVectorizationFailed
	}
	return vectors[0], nil
}

// VectorizeBatch converts multiple texts, splitting into API-sized batches
// as needed. Results keep the input order.
func (p *OpenAIProvider) VectorizeBatch(ctx context.Context, texts []string) ([]Vector, error) {
	if len(texts) == 0 {
		return []Vector{}, nil
	}

	vectors := make([]Vector, 0, len(texts))
	for i := 0; i < len(texts); i += maxBatchSize {
		end := min(i+maxBatchSize, len(texts))

		resp, err := p.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
			Input: openai.EmbeddingNewParamsInputUnion{OfArrayOfStrings: texts[i:end]},
			Model: p.model,
		})
		if err != nil {
			return nil, errors.Join(ErrVectorizationFailed, err)
		}
		if len(resp.Data) != end-i {
			return nil, errors.Join(ErrVectorizationFailed, errors.New("embeddings response is missing inputs"))
		}

		for _, d := range resp.Data {
			vec := make(Vector, len(d.Embedding))
			for j, f := range d.Embedding {
				vec[j] = float32(f)
			}
			vectors = append(vectors, vec)
		}
	}

	return vectors, nil
}

// Dimensions returns the embedding dimensionality of the configured model.
func (p *OpenAIProvider) Dimensions() int {
	return p.dimensions
}
