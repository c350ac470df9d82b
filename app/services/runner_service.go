package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// RunnerConfig describes the remote code-execution service.
type RunnerConfig struct {
	URL      string
	Token    string
	FileName string
	Timeout  time.Duration
}

// RunnerService forwards user-submitted code to a remote execution API and
// relays the combined output. One outbound call per inbound request; no
// retries, queueing, or concurrency control.
type RunnerService struct {
	cfg    RunnerConfig
	client *http.Client
	logger zerolog.Logger
}

// NewRunnerService creates a new RunnerService
func NewRunnerService(cfg RunnerConfig, logger zerolog.Logger) *RunnerService {
	if cfg.FileName == "" {
		cfg.FileName = "main.py"
	}
	return &RunnerService{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

type runRequest struct {
	Files []runFile `json:"files"`
}

type runFile struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

type runResponse struct {
	Stdout string `json:"stdout"`
	Stderr string `json:"stderr"`
}

// StripZeroWidth removes zero-width-space characters that editors and chat
// clients sneak into pasted code.
func StripZeroWidth(code string) string {
	return strings.ReplaceAll(code, "\u200b", "")
}

// Run submits code as a single source file and returns stdout concatenated
// with an "STDERR:"-prefixed block when stderr is non-empty, trimmed of
// surrounding whitespace. Transport failures, non-2xx statuses, and
// undecodable bodies surface as errors; the caller maps them to a gateway
// error response.
func (s *RunnerService) Run(ctx context.Context, code string) (string, error) {
	payload, err := json.Marshal(runRequest{
		Files: []runFile{{Name: s.cfg.FileName, Content: code}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode run request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build run request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.Token)

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("run request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("run service returned status %d", resp.StatusCode)
	}

	var result runResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode run response: %w", err)
	}

	s.logger.Debug().
		Dur("duration", time.Since(start)).
		Int("code_bytes", len(code)).
		Msg("code snippet executed")

	out := result.Stdout
	if result.Stderr != "" {
		out += "STDERR:\n" + result.Stderr
	}
	return strings.TrimSpace(out), nil
}
