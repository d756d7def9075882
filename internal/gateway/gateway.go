package gateway

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

//go:generate mockgen -source=gateway.go -destination=mocks/generator_mock.go -package=mocks

var (
	// ErrServiceFailure - сеть или сам сервис модели вернули ошибку
	ErrServiceFailure = errors.New("intelligence service failure")
	// ErrMalformedResponse - ответ не JSON или не совпал со схемой
	ErrMalformedResponse = errors.New("malformed intelligence response")
	// ErrValidation - пустой или некорректный входной параметр
	ErrValidation = errors.New("validation failed")
	// ErrLookupFailed - справочный запрос не удался, вызывающий обязан показать сообщение
	ErrLookupFailed = errors.New("lookup failed")
)

// GroundingTool - какой инструмент grounding подключить к запросу
type GroundingTool string

const (
	GroundingNone      GroundingTool = ""
	GroundingWebSearch GroundingTool = "web-search"
	GroundingMaps      GroundingTool = "maps"
)

// CitationKind - источник цитаты в метаданных grounding
type CitationKind string

const (
	CitationWeb  CitationKind = "web"
	CitationMaps CitationKind = "maps"
)

// InlineImage - изображение, передаваемое вместе с запросом
type InlineImage struct {
	Data     []byte
	MIMEType string
}

// LatLng - смещение поиска по картам к заданной точке
type LatLng struct {
	Latitude  float64
	Longitude float64
}

// PromptSpec - описание одного вызова модели
type PromptSpec struct {
	Model     string
	Text      string
	Image     *InlineImage
	Schema    *genai.Schema
	Grounding GroundingTool
	Bias      *LatLng
}

// Citation - одна запись из метаданных grounding, без нормализации
type Citation struct {
	Kind  CitationKind
	Title string
	URI   string
}

// Generation - ответ модели: текст (JSON, если задана схема) и цитаты
type Generation struct {
	Text      string
	Citations []Citation
}

// Generator - удаленная модель: запрос внутрь, структурированный ответ наружу
type Generator interface {
	Generate(ctx context.Context, spec *PromptSpec) (*Generation, error)
}
