// Package client is the caller side of the login flow: it submits
// credentials and resolves the dashboard the user should be sent to.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/taekwondodev/go-role-login/internal/dto"
	"github.com/taekwondodev/go-role-login/internal/models"
	"github.com/taekwondodev/go-role-login/internal/routing"
)

const loginPath = "/api/auth/login"

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client for the server at baseURL. A nil httpClient gets a
// client with a 10 second timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type Result struct {
	Message     string
	Role        models.Role
	Destination string
}

// LoginError carries the message the server sent with a failed login.
type LoginError struct {
	Status  int
	Message string
}

func (e *LoginError) Error() string {
	return fmt.Sprintf("login failed (%d): %s", e.Status, e.Message)
}

func (c *Client) Login(ctx context.Context, username, password string) (*Result, error) {
	body, err := json.Marshal(dto.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+loginPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send login request: %w", err)
	}
	defer resp.Body.Close()

	var res dto.LoginResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&res)

	if resp.StatusCode != http.StatusOK {
		msg := res.Message
		if decodeErr != nil || msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &LoginError{Status: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode login response: %w", decodeErr)
	}

	dest, err := routing.Destination(res.Role)
	if err != nil {
		return nil, err
	}

	return &Result{Message: res.Message, Role: res.Role, Destination: dest}, nil
}

// Follow requests the destination of a successful login, the way a browser
// would after a full page redirect.
func (c *Client) Follow(ctx context.Context, result *Result) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+result.Destination, nil)
	if err != nil {
		return nil, err
	}
	return c.httpClient.Do(req)
}
