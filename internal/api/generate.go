package api

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	http "github.com/bogdanfinn/fhttp"
	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/docchat/internal/errors"
	"github.com/diogo/docchat/internal/models"
)

// maxErrorBody caps how much of an error response is kept for diagnostics.
const maxErrorBody = 4096

// GenerateContent sends a prompt to Gemini and returns the answer text.
// A structurally valid but empty answer is replaced with the designated
// placeholder so callers never receive an empty string on success.
func (c *Client) GenerateContent(prompt string) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	if c.IsClosed() {
		return "", fmt.Errorf("client is closed")
	}

	endpoint := fmt.Sprintf(models.EndpointGenerate, c.Model())

	payload, err := buildPayload(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to build payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, endpoint+"?key="+c.apiKey, strings.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range models.DefaultHeaders() {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", apierrors.NewTimeoutError(err.Error())
		}
		return "", apierrors.NewNetworkError("generate content", endpoint, err)
	}
	defer func() {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	if resp.StatusCode != 200 {
		errorBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", apierrors.NewAPIError(resp.StatusCode, endpoint, string(errorBody))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apierrors.NewNetworkError("read response", endpoint, err)
	}

	return parseResponse(body)
}

// isTimeout matches the deadline errors the underlying client surfaces.
func isTimeout(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "deadline exceeded") ||
		strings.Contains(msg, "Timeout")
}

// buildPayload creates the generateContent request body:
// {"contents":[{"parts":[{"text":prompt}]}]}
func buildPayload(prompt string) (string, error) {
	body := map[string]interface{}{
		"contents": []interface{}{
			map[string]interface{}{
				"parts": []interface{}{
					map[string]interface{}{"text": prompt},
				},
			},
		},
	}

	data, err := json.Marshal(body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Paths into the generateContent response JSON.
const (
	PathAnswerText   = "candidates.0.content.parts.0.text"
	PathErrorMessage = "error.message"
)

// parseResponse extracts the answer text from the response body
func parseResponse(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", apierrors.NewParseError("response is not valid JSON", "")
	}

	parsed := gjson.ParseBytes(body)

	// A 200 with an embedded error object still counts as a failure.
	if errMsg := parsed.Get(PathErrorMessage); errMsg.Exists() {
		return "", apierrors.NewParseError(errMsg.String(), PathErrorMessage)
	}

	answer := parsed.Get(PathAnswerText)
	if !answer.Exists() {
		if !parsed.Get("candidates").Exists() {
			return "", apierrors.NewParseError("no candidates in response", "candidates")
		}
		// Candidates present but no text part: treat as an empty answer.
		return models.EmptyAnswerPlaceholder, nil
	}

	text := answer.String()
	if text == "" {
		return models.EmptyAnswerPlaceholder, nil
	}
	return text, nil
}
