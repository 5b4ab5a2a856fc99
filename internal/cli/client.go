package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// envelope mirrors the server's standard response body
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	User    json.RawMessage `json:"user"`
	Error   *string         `json:"error"`
}

type client struct {
	http    *http.Client
	baseURL string
	token   string
}

func newClient() *client {
	return &client{
		http:    &http.Client{Timeout: 10 * time.Second},
		baseURL: serverURL(),
		token:   LoadToken(),
	}
}

// do performs a request against the server and decodes the response
// envelope. Business failures come back as HTTP 200 with success=false,
// so both transport and envelope errors surface here. The session cookie,
// if the server sets one, is returned so login/signup can persist it.
func (c *client) do(method, path string, body any) (*envelope, string, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, "", err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, "", err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, "", fmt.Errorf("unexpected response from server (status %d): %w", resp.StatusCode, err)
	}

	var sessionToken string
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "session" {
			sessionToken = cookie.Value
		}
	}

	if !env.Success {
		msg := "request failed"
		if env.Error != nil {
			msg = *env.Error
		}
		return &env, sessionToken, fmt.Errorf("%s", msg)
	}

	return &env, sessionToken, nil
}

func (c *client) get(path string) (*envelope, error) {
	env, _, err := c.do(http.MethodGet, path, nil)
	return env, err
}

func (c *client) post(path string, body any) (*envelope, string, error) {
	return c.do(http.MethodPost, path, body)
}

// printJSON writes v as indented JSON when --output json is requested
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func jsonOutput() bool {
	return flagOutput == "json"
}
