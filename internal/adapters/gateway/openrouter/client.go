// Package openrouter is the HTTP adapter for the OpenRouter chat-completion
// gateway. It performs exactly one attempt per call and maps every failure to
// a domain.ClassifiedError; the retry policy lives in usecase/translator.
package openrouter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/quasarbright/clanker-translate/internal/adapters/prompt"
	"github.com/quasarbright/clanker-translate/internal/domain"
)

const (
	defaultBaseURL = "https://openrouter.ai"

	// Low temperature favors deterministic output; the token ceiling is
	// generous so long explanations are not truncated.
	temperature = 0.3
	maxTokens   = 4000

	refererHeader = "https://clanker-translate.app"
	titleHeader   = "clanker-translate"
)

type Client struct {
	BaseURL string
	http    *resty.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	c := resty.New()
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &Client{BaseURL: baseURL, http: c}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Translate performs one chat-completion call. Non-success statuses are
// classified without reading the error body; a missing first choice is an
// invalid_response; transport failures become network errors, except context
// cancellation which is returned unchanged so the caller never retries it.
func (c *Client) Translate(ctx context.Context, req domain.TranslationRequest) (domain.TranslationResponse, error) {
	body := chatRequest{
		Model: req.Model,
		Messages: []chatMessage{
			{Role: "system", Content: prompt.SystemPrompt()},
			{Role: "user", Content: prompt.UserPrompt(req)},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
	var resp chatResponse
	rr, err := c.http.R().SetContext(ctx).
		SetHeader("Authorization", "Bearer "+req.APIKey).
		SetHeader("HTTP-Referer", refererHeader).
		SetHeader("X-Title", titleHeader).
		SetHeader("Content-Type", "application/json").
		SetBody(body).SetResult(&resp).
		Post(apiURL(c.BaseURL, "/chat/completions"))
	if err != nil {
		if ctx.Err() != nil {
			return domain.TranslationResponse{}, ctx.Err()
		}
		return domain.TranslationResponse{}, domain.NewClassifiedError(domain.ErrNetwork, err.Error())
	}
	if rr.IsError() {
		return domain.TranslationResponse{}, domain.ClassifyStatus(rr.StatusCode(), "gateway returned "+rr.Status())
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return domain.TranslationResponse{}, domain.NewClassifiedError(domain.ErrInvalidResponse, "no message content in gateway response")
	}
	return ParseContent(resp.Choices[0].Message.Content), nil
}

type modelsResponse struct {
	Data []struct {
		ID            string `json:"id"`
		Name          string `json:"name"`
		Description   string `json:"description"`
		ContextLength int    `json:"context_length"`
	} `json:"data"`
}

// ListModels fetches the gateway's model catalog. Display names default to
// the model id.
func (c *Client) ListModels(ctx context.Context, apiKey string) ([]domain.ModelInfo, error) {
	var resp modelsResponse
	rr, err := c.http.R().SetContext(ctx).
		SetHeader("Authorization", "Bearer "+apiKey).
		SetResult(&resp).
		Get(apiURL(c.BaseURL, "/models"))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, domain.NewClassifiedError(domain.ErrNetwork, err.Error())
	}
	if rr.IsError() {
		return nil, domain.ClassifyStatus(rr.StatusCode(), "gateway returned "+rr.Status())
	}
	out := make([]domain.ModelInfo, 0, len(resp.Data))
	for _, d := range resp.Data {
		name := d.Name
		if name == "" {
			name = d.ID
		}
		out = append(out, domain.ModelInfo{ID: d.ID, Name: name, Description: d.Description, ContextTokens: d.ContextLength})
	}
	return out, nil
}

// ValidateKey treats any non-error status from the models listing as proof
// the key works.
func (c *Client) ValidateKey(ctx context.Context, apiKey string) error {
	_, err := c.ListModels(ctx, apiKey)
	return err
}

// apiURL joins the base with /api/v1 without duplicating it when the
// configured base already carries the prefix.
func apiURL(base, tail string) string {
	b := strings.TrimRight(base, "/")
	if i := strings.Index(b, "/api/v1"); i >= 0 {
		return b[:i+len("/api/v1")] + tail
	}
	return fmt.Sprintf("%s/api/v1%s", b, tail)
}
