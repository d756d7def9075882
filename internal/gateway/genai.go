package gateway

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// GenAIGenerator - реализация Generator поверх Gemini API
type GenAIGenerator struct {
	client  *genai.Client
	timeout time.Duration
}

// NewGenAIGenerator оборачивает уже сконфигурированный клиент genai
func NewGenAIGenerator(client *genai.Client, timeout time.Duration) *GenAIGenerator {
	return &GenAIGenerator{
		client:  client,
		timeout: timeout,
	}
}

// Generate выполняет один запрос к модели. Повторов нет.
func (g *GenAIGenerator) Generate(ctx context.Context, spec *PromptSpec) (*Generation, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := g.client.Models.GenerateContent(ctx, spec.Model, BuildContents(spec), BuildConfig(spec))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrServiceFailure, err)
	}
	return FromResponse(resp), nil
}

// BuildContents собирает части запроса: изображение (если есть) и текст
func BuildContents(spec *PromptSpec) []*genai.Content {
	parts := make([]*genai.Part, 0, 2)
	if spec.Image != nil {
		parts = append(parts, genai.NewPartFromBytes(spec.Image.Data, spec.Image.MIMEType))
	}
	parts = append(parts, genai.NewPartFromText(spec.Text))
	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
}

// BuildConfig переводит схему ответа и инструмент grounding в конфиг запроса
func BuildConfig(spec *PromptSpec) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}

	if spec.Schema != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = spec.Schema
	}

	switch spec.Grounding {
	case GroundingWebSearch:
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	case GroundingMaps:
		cfg.Tools = []*genai.Tool{{GoogleMaps: &genai.GoogleMaps{}}}
		if spec.Bias != nil {
			cfg.ToolConfig = &genai.ToolConfig{
				RetrievalConfig: &genai.RetrievalConfig{
					LatLng: &genai.LatLng{
						Latitude:  genai.Ptr(spec.Bias.Latitude),
						Longitude: genai.Ptr(spec.Bias.Longitude),
					},
				},
			}
		}
	}
	return cfg
}

// FromResponse достает текст и цитаты из первого кандидата
func FromResponse(resp *genai.GenerateContentResponse) *Generation {
	gen := &Generation{}
	if resp == nil {
		return gen
	}
	gen.Text = resp.Text()

	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].GroundingMetadata == nil {
		return gen
	}
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk == nil {
			continue
		}
		switch {
		case chunk.Web != nil:
			gen.Citations = append(gen.Citations, Citation{Kind: CitationWeb, Title: chunk.Web.Title, URI: chunk.Web.URI})
		case chunk.Maps != nil:
			gen.Citations = append(gen.Citations, Citation{Kind: CitationMaps, Title: chunk.Maps.Title, URI: chunk.Maps.URI})
		}
	}
	return gen
}
