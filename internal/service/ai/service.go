package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pi2026/clubsite/backend/internal/config"
	"github.com/pi2026/clubsite/backend/internal/model/chat"
)

// ErrNotConfigured means the provider credentials or endpoint are missing;
// no network call is attempted in that state.
var ErrNotConfigured = errors.New("model provider is not configured")

// noContentFallback is returned when a successful provider response carries
// no extractable text in any known shape.
const noContentFallback = "模型没有返回内容，请稍后再试。"

// HTTPError carries a non-2xx provider status plus a short body excerpt
// for diagnostics.
type HTTPError struct {
	Status  int
	Excerpt string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.Status, e.Excerpt)
}

const bodyExcerptLimit = 200

// Service encapsulates the outbound call to the completion provider.
type Service struct {
	cfg    config.ProviderConfig
	client *http.Client
}

// NewService creates a gateway instance for the configured provider.
func NewService(cfg config.ProviderConfig) *Service {
	return &Service{
		cfg: cfg,
		// The original design had no outbound timeout; this bound keeps a
		// hung provider from pinning a request forever.
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// request/response shapes for the provider's responses endpoint.

type providerMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type providerRequest struct {
	Model           string            `json:"model"`
	Input           []providerMessage `json:"input"`
	MaxOutputTokens int               `json:"max_output_tokens"`
}

type providerFragment struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type providerItem struct {
	Content []providerFragment `json:"content"`
}

type providerResponse struct {
	OutputText string         `json:"output_text"`
	Output     []providerItem `json:"output"`
}

// Answer sends the conversation to the provider and extracts the reply
// text. turns is the prior transcript in order; message is the new user
// message, already validated by the caller.
func (s *Service) Answer(ctx context.Context, turns []chat.Turn, message string) (string, error) {
	if !s.cfg.Enabled() {
		return "", ErrNotConfigured
	}

	input := make([]providerMessage, 0, len(turns)+2)
	input = append(input, providerMessage{Role: "system", Content: systemPrompt})
	for _, turn := range turns {
		input = append(input, providerMessage{Role: turn.Role, Content: turn.Content})
	}
	input = append(input, providerMessage{Role: chat.RoleUser, Content: message})

	payload, err := json.Marshal(providerRequest{
		Model:           s.cfg.Model,
		Input:           input,
		MaxOutputTokens: s.cfg.MaxOutputTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal provider request: %w", err)
	}

	endpoint := strings.TrimSuffix(s.cfg.BaseURL, "/") + "/responses"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build provider request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call provider: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read provider response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &HTTPError{Status: resp.StatusCode, Excerpt: excerpt(body)}
	}

	var parsed providerResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("parse provider response: %w", err)
	}

	answer := extractText(parsed)
	log.Printf("[ai] provider answered, length=%d", len(answer))
	return answer, nil
}

// extractText walks the fallback chain over the provider's two response
// shapes: a plain-text field in simple mode, otherwise output items whose
// content fragments are tagged as text.
func extractText(resp providerResponse) string {
	if strings.TrimSpace(resp.OutputText) != "" {
		return resp.OutputText
	}

	var parts []string
	for _, item := range resp.Output {
		for _, fragment := range item.Content {
			if fragment.Type == "output_text" && fragment.Text != "" {
				parts = append(parts, fragment.Text)
			}
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, "\n")
	}

	return noContentFallback
}

func excerpt(body []byte) string {
	text := string(body)
	if len(text) > bodyExcerptLimit {
		text = text[:bodyExcerptLimit]
	}
	return text
}
