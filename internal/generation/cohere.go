// Package generation wraps the third-party text-generation API behind a
// narrow interface: ingredients in, recipe text out, or failure. A failed
// call must never touch auth or history state.
package generation

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mbelda/fridgechef-be/internal/apperror"
)

// Generator produces a recipe from free-text ingredients.
type Generator interface {
	Generate(ctx context.Context, ingredients string) (string, error)
}

// CohereClient calls the Cohere generate endpoint.
type CohereClient struct {
	client *resty.Client
	apiURL string
}

// NewCohereClient creates a client for the given endpoint. The timeout bounds
// the whole outbound call; no retries are attempted.
func NewCohereClient(apiURL, apiKey string, timeout time.Duration) *CohereClient {
	client := resty.New().
		SetTimeout(timeout).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json")

	return &CohereClient{client: client, apiURL: apiURL}
}

type generateRequest struct {
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

type generateResponse struct {
	Generations []struct {
		Text string `json:"text"`
	} `json:"generations"`
}

// Generate requests a recipe suggestion for the given ingredients.
func (c *CohereClient) Generate(ctx context.Context, ingredients string) (string, error) {
	body := generateRequest{
		Prompt: fmt.Sprintf(
			"I have the following ingredients: %s. Suggest a simple, delicious recipe I can make. Include a title and numbered steps.",
			ingredients),
		MaxTokens:   500,
		Temperature: 0.7,
	}

	var result generateResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		Post(c.apiURL)
	if err != nil {
		return "", apperror.NewExternal("failed to generate recipe", err)
	}
	if resp.IsError() {
		return "", apperror.NewExternal("failed to generate recipe",
			fmt.Errorf("generation API returned status %d", resp.StatusCode()))
	}
	if len(result.Generations) == 0 {
		return "", apperror.NewExternal("failed to generate recipe",
			fmt.Errorf("generation API returned no generations"))
	}

	return result.Generations[0].Text, nil
}
