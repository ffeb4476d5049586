// Package gemini rewrites user stories with a Gemini text model.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const promptTemplate = "Rewrite the following content into a single improved version. Output only the improved text:\n\n%s"

var ErrEmptyResponse = errors.New("model returned no text")

type Client struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	timeout time.Duration
}

// New dials the Gemini API. The caller owns the client and must Close it.
func New(ctx context.Context, apiKey, model string, timeout time.Duration) (*Client, error) {
	const op = "storyteller.gemini.New"

	if apiKey == "" {
		return nil, fmt.Errorf("%s: api key is not set", op)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Client{
		client:  client,
		model:   client.GenerativeModel(model),
		timeout: timeout,
	}, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// Enhance asks the model for an improved version of content.
func (c *Client) Enhance(ctx context.Context, content string) (string, error) {
	const op = "storyteller.gemini.Enhance"

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.model.GenerateContent(ctx, genai.Text(Prompt(content)))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	text := responseText(resp)
	if text == "" {
		return "", fmt.Errorf("%s: %w", op, ErrEmptyResponse)
	}

	return text, nil
}

func Prompt(content string) string {
	return fmt.Sprintf(promptTemplate, content)
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	return strings.TrimSpace(sb.String())
}
