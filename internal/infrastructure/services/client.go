// internal/infrastructure/services/client.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// apiClient is the shared HTTP plumbing for the remote microservice clients
type apiClient struct {
	service    string
	baseURL    string
	httpClient *http.Client
}

func newAPIClient(service, baseURL string, timeout time.Duration) *apiClient {
	return &apiClient{
		service: service,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// call makes an HTTP call to the remote service and returns the raw body.
// Network failures become TransportError, non-2xx responses RejectedError.
func (c *apiClient) call(ctx context.Context, method, endpoint string, data interface{}, authToken string) ([]byte, error) {
	var reqBody []byte
	var err error

	if data != nil {
		reqBody, err = json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request data: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Set headers
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	// Make request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Service: c.service, Err: err}
	}
	defer resp.Body.Close()

	// Read response
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Service: c.service, Err: err}
	}

	// Check status code
	if resp.StatusCode >= 400 {
		return nil, &RejectedError{
			Service:    c.service,
			StatusCode: resp.StatusCode,
			Message:    extractMessage(respBody),
		}
	}

	return respBody, nil
}

// callJSON makes an HTTP call and decodes the JSON response into dest
func (c *apiClient) callJSON(ctx context.Context, method, endpoint string, data interface{}, authToken string, dest interface{}) error {
	respBody, err := c.call(ctx, method, endpoint, data, authToken)
	if err != nil {
		return err
	}

	if dest == nil {
		return nil
	}

	if err := json.Unmarshal(respBody, dest); err != nil {
		return fmt.Errorf("failed to parse %s service response: %w", c.service, err)
	}

	return nil
}

// extractMessage pulls a human-readable message out of an error body.
// The services answer with plain text or a JSON object holding a
// message/error field.
func extractMessage(body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return ""
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, key := range []string{"message", "error", "detail"} {
			if v, ok := payload[key].(string); ok && v != "" {
				return v
			}
		}
	}

	return text
}
