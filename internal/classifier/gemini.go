package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiName is the backend name of the Gemini predictor.
const GeminiName = "gemini"

const defaultGeminiModel = "gemini-1.5-flash"

const geminiInstruction = `You are a news credibility classifier.
Given a news text, estimate how likely it is to be genuine reporting versus fabricated or misleading content.
Answer with a single JSON object and nothing else:
{"real_probability": <number between 0 and 1>, "fake_probability": <number between 0 and 1>}`

// GeminiConfig selects the Google Generative AI model.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// Gemini asks a Google Generative AI model for class probabilities.
type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

var _ Predictor = (*Gemini)(nil)

// NewGemini creates the API client. Close must be called on shutdown.
func NewGemini(ctx context.Context, cfg GeminiConfig) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	name := cfg.Model
	if name == "" {
		name = defaultGeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := client.GenerativeModel(name)
	model.SetTemperature(0)
	model.ResponseMIMEType = "application/json"
	model.SystemInstruction = genai.NewUserContent(genai.Text(geminiInstruction))

	return &Gemini{client: client, model: model}, nil
}

// Predict sends text to the model and parses the JSON answer.
func (g *Gemini) Predict(ctx context.Context, text string) (Probabilities, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(text))
	if err != nil {
		return Probabilities{}, fmt.Errorf("%w: generate content: %v", ErrModelUnavailable, err)
	}

	answer := responseText(resp)
	if answer == "" {
		return Probabilities{}, fmt.Errorf("%w: empty model answer", ErrModelUnavailable)
	}

	probs, err := parseModelAnswer(answer)
	if err != nil {
		return Probabilities{}, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	return probs, nil
}

// Ready counts tokens of a tiny prompt, which needs the model to exist
// and the key to be accepted without generating anything.
func (g *Gemini) Ready(ctx context.Context) (bool, error) {
	if _, err := g.model.CountTokens(ctx, genai.Text("ping")); err != nil {
		return false, nil
	}
	return true, nil
}

// Name returns GeminiName.
func (g *Gemini) Name() string {
	return GeminiName
}

// Close releases the underlying connection.
func (g *Gemini) Close() error {
	return g.client.Close()
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}

	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
		// first candidate with content is the answer
		if b.Len() > 0 {
			break
		}
	}
	return strings.TrimSpace(b.String())
}

// parseModelAnswer extracts the JSON object from the model answer. Models
// sometimes wrap it in a markdown fence, so everything outside the outermost
// braces is ignored.
func parseModelAnswer(answer string) (Probabilities, error) {
	start := strings.IndexByte(answer, '{')
	end := strings.LastIndexByte(answer, '}')
	if start < 0 || end <= start {
		return Probabilities{}, errors.New("model answer contains no JSON object")
	}

	var raw struct {
		Real *float64 `json:"real_probability"`
		Fake *float64 `json:"fake_probability"`
	}
	if err := json.Unmarshal([]byte(answer[start:end+1]), &raw); err != nil {
		return Probabilities{}, fmt.Errorf("decode model answer: %w", err)
	}

	switch {
	case raw.Real == nil && raw.Fake == nil:
		return Probabilities{}, errors.New("model answer has no probabilities")
	case raw.Fake == nil:
		return Probabilities{Real: *raw.Real, Fake: 1 - *raw.Real}.Normalize()
	case raw.Real == nil:
		return Probabilities{Real: 1 - *raw.Fake, Fake: *raw.Fake}.Normalize()
	}
	return Probabilities{Real: *raw.Real, Fake: *raw.Fake}.Normalize()
}
