package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nikharmsingh/leetcode-scraper/internal/apperrors"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Session carries the cookie pair and anti-forgery token from a prior login
// against the catalog site. It is a plain value passed into each call, never
// stored on the client, so concurrent requests for different users cannot
// cross-contaminate. The zero value makes anonymous calls.
type Session struct {
	SessionToken string
	CSRFToken    string
}

func (s Session) IsZero() bool {
	return s.SessionToken == "" && s.CSRFToken == ""
}

// Client issues GraphQL queries against the external problem catalog. Every
// call is bounded by the configured timeout on top of the caller's context.
type Client struct {
	url        string
	httpClient *http.Client
	timeout    time.Duration
}

func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{},
		timeout:    timeout,
	}
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

// query posts one GraphQL document and decodes the "data" object into out.
// A transport failure, non-2xx status, or an errors array in the payload all
// surface as ErrUpstream.
func (c *Client) query(ctx context.Context, sess Session, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("%w: encode query: %v", apperrors.ErrUpstream, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: build request: %v", apperrors.ErrUpstream, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if !sess.IsZero() {
		req.AddCookie(&http.Cookie{Name: "LEETCODE_SESSION", Value: sess.SessionToken})
		req.AddCookie(&http.Cookie{Name: "csrftoken", Value: sess.CSRFToken})
		req.Header.Set("x-csrftoken", sess.CSRFToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: catalog returned status %d", apperrors.ErrUpstream, resp.StatusCode)
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphqlError  `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("%w: decode response: %v", apperrors.ErrUpstream, err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrUpstream, envelope.Errors[0].Message)
	}
	if len(envelope.Data) == 0 {
		return fmt.Errorf("%w: response missing data", apperrors.ErrUpstream)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("%w: decode data: %v", apperrors.ErrUpstream, err)
	}
	return nil
}
