// Package advisor asks a Gemini model for a diagnosis of a leveraged
// snapshot, either one-shot or in an interactive session.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

var (
	// ErrMissingCredential is returned when no API key is available.
	ErrMissingCredential = errors.New("missing API key, set GEMINI_API_KEY")
	// ErrEmptyResponse is returned when the model answered without text.
	ErrEmptyResponse = errors.New("empty response from the model")
)

// Generator generates content from a prompt. *genai.Models implements it.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// APIKey returns the Gemini API key from the environment.
func APIKey() string {
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		return k
	}
	return os.Getenv("GOOGLE_API_KEY")
}

// NewClient creates a Gemini client for apiKey.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, ErrMissingCredential
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}
	return client, nil
}

// Advisor produces one-shot diagnoses.
type Advisor struct {
	Model     string
	Generator Generator
}

// New returns an Advisor backed by the Gemini API.
func New(ctx context.Context, apiKey, model string) (*Advisor, error) {
	client, err := NewClient(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	return &Advisor{Model: model, Generator: client.Models}, nil
}

// Diagnose sends the prompt and returns the model's markdown answer.
func (a *Advisor) Diagnose(ctx context.Context, prompt string) (string, error) {
	if a.Generator == nil {
		return "", ErrMissingCredential
	}
	model := a.Model
	if model == "" {
		model = DefaultModel
	}
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0.2)),
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: SystemInstruction}},
		},
	}

	logrus.WithField("model", model).Debug("sending diagnosis request")
	resp, err := a.Generator.GenerateContent(ctx, model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("diagnosis failed: %w", err)
	}
	if resp == nil {
		return "", ErrEmptyResponse
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
