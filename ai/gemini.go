// Package ai wraps the Gemini API for natural-language catalog queries and
// organization advice. Every entry point fails closed: on any error the
// caller gets a neutral result and the catalog keeps working with its last
// literal filter state.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"google.golang.org/genai"

	"github.com/isaac-pipcode/Cat-logo-de-HDs/models"
)

const (
	DefaultModel = "gemini-2.5-flash"

	// organizeSampleLimit caps how many file descriptors are sent with an
	// organization request.
	organizeSampleLimit = 50

	// FallbackAdvice is the neutral answer returned when no organization
	// suggestion could be produced.
	FallbackAdvice = "Não foi possível gerar sugestões no momento."
)

// SearchParams is the structured translation of a natural-language query.
type SearchParams struct {
	Query     string  `json:"query,omitempty"`
	Type      string  `json:"type,omitempty"`
	MinSizeMB float64 `json:"minSizeMB,omitempty"`
	MinSizeGB float64 `json:"minSizeGB,omitempty"`
}

// MinSizeBytes converts the translated size floor to bytes. The GB field
// wins when both are set.
func (p *SearchParams) MinSizeBytes() int64 {
	if p.MinSizeGB > 0 {
		return int64(p.MinSizeGB * 1024 * 1024 * 1024)
	}
	if p.MinSizeMB > 0 {
		return int64(p.MinSizeMB * 1024 * 1024)
	}
	return 0
}

// Assistant holds a Gemini client for the two catalog entry points.
type Assistant struct {
	client *genai.Client
	model  string
}

// NewAssistant creates an Assistant against the Gemini API using the
// GEMINI_API_KEY environment variable. An empty model selects the default.
func NewAssistant(ctx context.Context, model string) (*Assistant, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	if model == "" {
		model = DefaultModel
	}
	return &Assistant{client: client, model: model}, nil
}

// TranslateQuery converts a natural-language search (Portuguese or
// English) into structured parameters. Returns nil on any failure.
func (a *Assistant) TranslateQuery(ctx context.Context, text string) *SearchParams {
	prompt := fmt.Sprintf(`You are a helper for a file system catalog.
The user is searching for files using natural language in Portuguese or English.
Convert the user's query into structured search parameters.

User Query: %q

Available parameters:
- query: keywords to search in filename (string)
- type: one of ['imagem', 'video', 'audio', 'documento', 'arquivo', 'executavel', 'codigo', 'outros'] (string)
- minSizeMB: minimum size in Megabytes (number)
- minSizeGB: minimum size in Gigabytes (number)

Return JSON.`, text)

	resp, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"query":     {Type: genai.TypeString},
				"type":      {Type: genai.TypeString},
				"minSizeMB": {Type: genai.TypeNumber},
				"minSizeGB": {Type: genai.TypeNumber},
			},
		},
	})
	if err != nil {
		log.Printf("Gemini translate error: %v", err)
		return nil
	}

	var params SearchParams
	if err := json.Unmarshal([]byte(resp.Text()), &params); err != nil {
		log.Printf("Gemini translate: malformed response: %v", err)
		return nil
	}
	return &params
}

// SuggestOrganization asks for cleanup advice over a sample of cataloged
// files. Returns an apology message in Portuguese on any failure.
func (a *Assistant) SuggestOrganization(ctx context.Context, sample []string) string {
	if len(sample) > organizeSampleLimit {
		sample = sample[:organizeSampleLimit]
	}

	prompt := fmt.Sprintf(`I have a list of files on my hard drive. Analyze them and suggest a folder structure or cleanup strategy in Portuguese.

Files:
%s`, strings.Join(sample, "\n"))

	resp, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(prompt), nil)
	if err != nil {
		log.Printf("Gemini organization error: %v", err)
		return FallbackAdvice
	}

	text := resp.Text()
	if text == "" {
		return FallbackAdvice
	}
	return text
}

// SampleDescriptors renders file records as "path (size MB)" lines for the
// organization prompt.
func SampleDescriptors(files []models.FileItem, limit int) []string {
	if limit <= 0 || limit > len(files) {
		limit = len(files)
	}
	out := make([]string, 0, limit)
	for _, f := range files[:limit] {
		out = append(out, fmt.Sprintf("%s (%.1fMB)", f.Path, float64(f.Size)/1024/1024))
	}
	return out
}
