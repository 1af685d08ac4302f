package aicoach

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/fitcoach/fitcoach/internal/telemetry/metrics"
)

const (
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	DefaultModel   = "llama-3.3-70b-versatile"

	completionTemperature = 0.7
	completionMaxTokens   = 1500

	// generated texts are cached for an hour, the same summary sent twice
	// within that window skips the upstream call
	cacheTTLSeconds = 3600
	cacheSizeBytes  = 10 * 1024 * 1024
)

var ErrAPIKeyMissing = errors.New("ai api key is missing")

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	cache      *freecache.Cache
	metrics    *metrics.Manager
}

func NewClient(baseURL, apiKey, model string, metricsManager *metrics.Manager) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	if apiKey == "" {
		log.Warnln("ai api key is not set, ai endpoints will fail until it is configured")
	}
	return &Client{
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   2 * time.Minute,
		},
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		cache:   freecache.NewCache(cacheSizeBytes),
		metrics: metricsManager,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate sends a system + user prompt pair to the chat completions API
// and returns the model's text.
func (c *Client) Generate(ctx context.Context, systemPrompt, userContent string) (string, error) {
	if c.apiKey == "" {
		return "", ErrAPIKeyMissing
	}

	cacheKey := completionCacheKey(c.model, systemPrompt, userContent)
	if cached, err := c.cache.Get(cacheKey); err == nil {
		log.Tracef("ai completion cache hit, model %s", c.model)
		return string(cached), nil
	}

	reqJson, err := json.Marshal(chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userContent},
		},
		Temperature: completionTemperature,
		MaxTokens:   completionMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost,
		c.baseURL+"/chat/completions",
		bytes.NewReader(reqJson),
	)
	if err != nil {
		return "", fmt.Errorf("create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	callStart := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	c.metrics.HistogramAiCallDuration.Observe(time.Since(callStart).Seconds())

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read completion response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Errorf("ai completion api error, status %d: %s", resp.StatusCode, respBytes)
		return "", fmt.Errorf("completion api status %d", resp.StatusCode)
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(respBytes, &completion); err != nil {
		return "", fmt.Errorf("unmarshal completion response: %w", err)
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", errors.New("empty response from ai")
	}

	resultText := completion.Choices[0].Message.Content
	if err := c.cache.Set(cacheKey, []byte(resultText), cacheTTLSeconds); err != nil {
		log.Debugf("cache ai completion: %s", err)
	}

	return resultText, nil
}

func completionCacheKey(model, systemPrompt, userContent string) []byte {
	h := sha256.New()
	h.Write([]byte(model))
	h.Write([]byte{0})
	h.Write([]byte(systemPrompt))
	h.Write([]byte{0})
	h.Write([]byte(userContent))
	return h.Sum(nil)
}
