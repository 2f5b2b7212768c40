package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"superprecos/internal/model"
)

// ErrDecode indica que a resposta do modelo não está no formato esperado.
var ErrDecode = errors.New("resposta do modelo fora do formato")

var expectedFields = []string{"category", "subcategory", "brand", "volume", "weight", "details"}

var validCategories = map[string]bool{
	model.CategoryMilk:         true,
	model.CategoryOliveOil:     true,
	model.CategorySunflowerOil: true,
}

// Completer é a parte do cliente OpenAI usada aqui; *openai.Client satisfaz.
type Completer interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Adapter struct {
	Client Completer
	Model  string
	Cache  Cache // opcional
}

func NewAdapter(client Completer, modelName string, cache Cache) *Adapter {
	if modelName == "" {
		modelName = openai.GPT4oMini
	}
	return &Adapter{Client: client, Model: modelName, Cache: cache}
}

// Enrich extrai os atributos estruturados de um nome de produto. Respostas que não
// decodificam voltam como ErrDecode; não há nova tentativa.
func (a *Adapter) Enrich(ctx context.Context, name string) (model.EnrichedAttributes, error) {
	if a.Cache != nil {
		if attrs, ok := a.Cache.Get(ctx, name); ok {
			return attrs, nil
		}
	}

	resp, err := a.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.Model,
		Temperature: math.SmallestNonzeroFloat32, // 0 seria omitido no JSON
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt()},
			{Role: openai.ChatMessageRoleUser, Content: name},
		},
	})
	if err != nil {
		return model.EnrichedAttributes{}, fmt.Errorf("chamada ao modelo para %q: %w", name, err)
	}
	if len(resp.Choices) == 0 {
		log.Printf("[Enrich] Resposta sem choices para %q", name)
		return model.EnrichedAttributes{}, fmt.Errorf("%q sem choices: %w", name, ErrDecode)
	}

	attrs, err := Decode(resp.Choices[0].Message.Content)
	if err != nil {
		log.Printf("[Enrich] Falha ao decodificar resposta para %q: %v", name, err)
		return model.EnrichedAttributes{}, err
	}

	if a.Cache != nil {
		if err := a.Cache.Set(ctx, name, attrs); err != nil {
			log.Printf("[Enrich] Erro ao gravar cache de %q: %v", name, err)
		}
	}
	return attrs, nil
}

// Decode valida a linha JSON devolvida pelo modelo: exatamente os seis campos e
// categoria dentro do conjunto fechado.
func Decode(content string) (model.EnrichedAttributes, error) {
	content = strings.TrimSpace(content)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &fields); err != nil {
		return model.EnrichedAttributes{}, fmt.Errorf("%v: %w", err, ErrDecode)
	}
	if len(fields) != len(expectedFields) {
		return model.EnrichedAttributes{}, fmt.Errorf("%d campos: %w", len(fields), ErrDecode)
	}
	for _, f := range expectedFields {
		if _, ok := fields[f]; !ok {
			return model.EnrichedAttributes{}, fmt.Errorf("campo %q ausente: %w", f, ErrDecode)
		}
	}

	var attrs model.EnrichedAttributes
	if err := json.Unmarshal([]byte(content), &attrs); err != nil {
		return model.EnrichedAttributes{}, fmt.Errorf("%v: %w", err, ErrDecode)
	}
	if attrs.Category != nil && !validCategories[*attrs.Category] {
		return model.EnrichedAttributes{}, fmt.Errorf("categoria %q: %w", *attrs.Category, ErrDecode)
	}
	return attrs, nil
}
