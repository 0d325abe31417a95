// Package spam consumes a binary verdict from an external classification
// service. Classification itself is out of scope; when no endpoint is
// configured every comment passes.
package spam

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"blog-comments/internal/config"
)

type Candidate struct {
	Author    string `json:"author"`
	Email     string `json:"email"`
	IP        string `json:"ip"`
	UserAgent string `json:"user_agent"`
	Content   string `json:"content"`
	Path      string `json:"path"`
}

type Checker interface {
	Check(ctx context.Context, candidate Candidate) (bool, error)
}

func NewChecker(cfg *config.Config) Checker {
	if cfg.SpamAPIURL == "" {
		return disabledChecker{}
	}
	return &httpChecker{
		endpoint: cfg.SpamAPIURL,
		apiKey:   cfg.SpamAPIKey,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type disabledChecker struct{}

func (disabledChecker) Check(ctx context.Context, candidate Candidate) (bool, error) {
	return false, nil
}

type httpChecker struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func (c *httpChecker) Check(ctx context.Context, candidate Candidate) (bool, error) {
	body, err := json.Marshal(candidate)
	if err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("spam service returned status %d", resp.StatusCode)
	}

	var verdict struct {
		Spam bool `json:"spam"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&verdict); err != nil {
		return false, err
	}
	return verdict.Spam, nil
}
