// Package regoscan extracts vehicle registration details from a photo of the
// registration paperwork via an external extraction service.
package regoscan

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	dErrors "motorvault/pkg/domain-errors"
)

// Extraction is the set of fields the extraction service can read off a
// registration document. Fields it could not read are left empty.
type Extraction struct {
	Rego     string `json:"rego"`
	VIN      string `json:"vin"`
	Make     string `json:"make"`
	Model    string `json:"model"`
	Year     int    `json:"year"`
	Color    string `json:"color"`
	BodyType string `json:"body_type"`
}

// Extractor turns a base64-encoded image into structured registration data.
type Extractor interface {
	Extract(ctx context.Context, imageBase64 string) (Extraction, error)
}

// HTTPExtractor calls a remote extraction endpoint. The endpoint replies with
// JSON, sometimes wrapped in a markdown code fence, which is stripped before
// decoding.
type HTTPExtractor struct {
	client *http.Client
	url    string
	apiKey string
}

func NewHTTPExtractor(url, apiKey string) *HTTPExtractor {
	return &HTTPExtractor{
		client: &http.Client{Timeout: 30 * time.Second},
		url:    url,
		apiKey: apiKey,
	}
}

func (e *HTTPExtractor) Extract(ctx context.Context, imageBase64 string) (Extraction, error) {
	payload, err := json.Marshal(map[string]string{"image": imageBase64})
	if err != nil {
		return Extraction{}, dErrors.Wrap(err, dErrors.CodeInternal, "encode extraction request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, bytes.NewReader(payload))
	if err != nil {
		return Extraction{}, dErrors.Wrap(err, dErrors.CodeInternal, "build extraction request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.apiKey)

	resp, err := e.client.Do(req)
	if err != nil {
		return Extraction{}, dErrors.Wrap(err, dErrors.CodeInternal, "call extraction service")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Extraction{}, dErrors.Wrap(err, dErrors.CodeInternal, "read extraction response")
	}
	if resp.StatusCode != http.StatusOK {
		return Extraction{}, dErrors.New(dErrors.CodeInternal,
			fmt.Sprintf("extraction service returned status %d", resp.StatusCode))
	}

	var out Extraction
	if err := json.Unmarshal([]byte(StripCodeFence(string(body))), &out); err != nil {
		return Extraction{}, dErrors.Wrap(err, dErrors.CodeInternal, "decode extraction response")
	}
	return out, nil
}

// StripCodeFence removes a surrounding ```json ... ``` (or bare ```) fence.
// Responses without a fence pass through unchanged.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
