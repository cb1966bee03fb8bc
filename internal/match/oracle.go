package match

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"vendortag/internal/config"
)

// Oracle is the optional nondeterministic fallback classifier. Any error
// it returns is swallowed by the Matcher.
type Oracle interface {
	Pick(ctx context.Context, query string, candidates ReferenceList) (string, error)
}

type OpenAIOracle struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	limiter *RateLimiter
}

// NewOpenAIOracle returns nil when no API key is configured, disabling the
// fallback path entirely.
func NewOpenAIOracle(cfg config.Config) *OpenAIOracle {
	if !cfg.OracleEnabled() {
		return nil
	}
	return &OpenAIOracle{
		client:  openai.NewClient(cfg.OpenAIAPIKey),
		model:   cfg.OpenAIModel,
		timeout: time.Duration(cfg.OpenAITimeoutMs) * time.Millisecond,
		limiter: NewRateLimiter(cfg.OracleRateLimitRPS),
	}
}

func (o *OpenAIOracle) Pick(ctx context.Context, query string, candidates ReferenceList) (string, error) {
	o.limiter.WaitTurn()

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	prompt := fmt.Sprintf(
		"Given the sheet name '%s' and vendor list [%s], pick exactly the vendor that best matches or return empty string.",
		query, strings.Join(candidates, ", "),
	)
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are a helpful assistant."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0,
		MaxTokens:   16,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
