package regsdk

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

// Client is a client for the enrolld registration service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new registration service client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			// Registration and validation intentionally stall for several
			// seconds, so the timeout is generous.
			Timeout: 30 * time.Second,
		},
	}
}

// CreateUser registers a new user account. The service sends the validation
// code to the account's e-mail address out of band.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/users", req, "", "")
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusCreated); err != nil {
		return nil, err
	}

	return &user, nil
}

// GetSelf fetches the account matching the given credentials. Only
// validated accounts can authenticate here.
func (c *Client) GetSelf(ctx context.Context, email, password string) (*UserResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/users/self", nil, email, password)
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}

	return &user, nil
}

// Validate submits the e-mailed code to validate the account.
func (c *Client) Validate(ctx context.Context, email, password, code string) error {
	payload := map[string]string{"code": code}
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/users/self/validate", payload, email, password)
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}

// GetLiveness checks if the service is alive.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/livez", nil, "", "")
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}

	return &health, nil
}

// GetReadiness checks if the service is ready.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/readyz", nil, "", "")
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}

	return &health, nil
}

// doRequest performs an HTTP request, JSON-encoding the body when present
// and attaching Basic credentials when an email is given.
func (c *Client) doRequest(
	ctx context.Context,
	method, path string,
	body any,
	email, password string,
) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if email != "" {
		req.SetBasicAuth(email, password)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	return resp, nil
}

// decodeJSON decodes a JSON response into the target. Returns a typed
// *Problem if the response indicates an error.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseProblem(resp, bodyBytes)
	}

	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// checkStatusNoContent returns a typed error if the response status is not
// 204 No Content.
func checkStatusNoContent(resp *http.Response) error {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return parseProblem(resp, bodyBytes)
	}

	return nil
}

// parseProblem turns an error response into a *Problem, synthesizing one
// when the body is not a problem document.
func parseProblem(resp *http.Response, body []byte) error {
	var problem Problem
	if err := json.Unmarshal(body, &problem); err == nil && problem.Type != "" {
		problem.Status = resp.StatusCode
		return &problem
	}

	return &Problem{
		Status: resp.StatusCode,
		Type:   "urn:error:unexpected-response",
		Title:  "Unexpected Response",
		Detail: fmt.Sprintf("unexpected status %d", resp.StatusCode),
	}
}
