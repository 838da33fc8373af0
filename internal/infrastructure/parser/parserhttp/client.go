// Package parserhttp talks to the dedicated resume-parsing service. The
// service owns the heavyweight parsing models; this client ships it a
// document and gets structured fields back. Calls are rate limited and
// guarded by retry plus a circuit breaker; a failed parse degrades the
// document to heuristic-only extraction, it never fails the batch.
package parserhttp

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/talentops/resume-intake/internal/core/domain"
	"github.com/talentops/resume-intake/internal/infrastructure/resilience"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	executor   *resilience.Executor
}

type Options struct {
	Timeout           time.Duration
	RequestsPerSecond float64
	Resilience        resilience.Config
}

func New(baseURL string, opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	rps := opts.RequestsPerSecond
	if rps <= 0 {
		rps = 2
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		executor:   resilience.NewExecutor("parser.parse", opts.Resilience, classifyParserError),
	}
}

type parseRequest struct {
	FileName string `json:"file_name"`
	Content  string `json:"content"`
}

func (c *Client) Parse(ctx context.Context, doc domain.IncomingDocument) (domain.ParsedResume, error) {
	raw, err := os.ReadFile(doc.FilePath)
	if err != nil {
		return domain.ParsedResume{}, fmt.Errorf("read document for parsing: %w", err)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return domain.ParsedResume{}, err
	}

	request := parseRequest{
		FileName: doc.FileName,
		Content:  base64.StdEncoding.EncodeToString(raw),
	}

	var parsed domain.ParsedResume
	call := func(ctx context.Context) error {
		return c.postJSON(ctx, "/api/parse", request, &parsed)
	}
	if err := c.executor.Execute(ctx, call); err != nil {
		return domain.ParsedResume{}, wrapTemporaryIfNeeded("parse resume", err)
	}

	normalizeParsed(&parsed)
	return parsed, nil
}

// normalizeParsed applies the same normalization the heuristic path uses, so
// downstream merging never sees raw engine output.
func normalizeParsed(p *domain.ParsedResume) {
	p.Email = domain.NormalizeEmail(p.Email)
	p.Phone = domain.NormalizePhone(p.Phone)
	p.Name = strings.TrimSpace(p.Name)

	skills := p.Skills[:0]
	for _, s := range p.Skills {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	p.Skills = skills
}

func (c *Client) postJSON(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal parse request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create parse request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("parser request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return newStatusError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode parse response: %w", err)
	}
	return nil
}

func newStatusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	return &HTTPStatusError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       strings.TrimSpace(string(body)),
	}
}
