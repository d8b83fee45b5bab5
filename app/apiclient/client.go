// Package apiclient is the typed client for the external board REST API.
// All JSON parsing happens here; views only ever see models or errors.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"boardfront/app/models"
)

// Client talks to one board API server. The zero value is not usable;
// construct with New. Client is safe for concurrent use.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New creates a client for the API at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// WithToken returns a copy of the client that sends the given bearer
// token. An empty token returns the receiver unchanged.
func (c *Client) WithToken(token string) *Client {
	if token == "" {
		return c
	}
	cp := *c
	cp.token = token
	return &cp
}

// ListPosts fetches the post collection in server order.
func (c *Client) ListPosts(ctx context.Context) ([]*models.Post, error) {
	var env struct {
		Posts []*models.Post `json:"posts"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/posts", nil, &env); err != nil {
		return nil, err
	}
	if env.Posts == nil {
		return nil, fmt.Errorf("list posts: %w", ErrMalformedResponse)
	}
	return env.Posts, nil
}

// GetPost fetches a single post including its comment list.
func (c *Client) GetPost(ctx context.Context, id int) (*models.Post, error) {
	var env struct {
		Post *models.Post `json:"post"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/posts/%d", id), nil, &env); err != nil {
		return nil, err
	}
	if env.Post == nil {
		return nil, fmt.Errorf("get post %d: %w", id, ErrMalformedResponse)
	}
	return env.Post, nil
}

// CreatePost submits a new post and returns the server's copy.
func (c *Client) CreatePost(ctx context.Context, draft models.NewPostDraft) (*models.Post, error) {
	var env struct {
		Post *models.Post `json:"post"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/posts", draft, &env); err != nil {
		return nil, err
	}
	if env.Post == nil {
		return nil, fmt.Errorf("create post: %w", ErrMalformedResponse)
	}
	return env.Post, nil
}

// AddComment submits a comment or reply on the given post. The canonical
// success shape is a single created comment; the caller appends it.
func (c *Client) AddComment(ctx context.Context, postID int, draft models.NewCommentDraft) (*models.Comment, error) {
	draft.PostID = postID
	var env struct {
		Comment *models.Comment `json:"comment"`
	}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/posts/%d/comments", postID), draft, &env); err != nil {
		return nil, err
	}
	if env.Comment == nil {
		return nil, fmt.Errorf("add comment: %w", ErrMalformedResponse)
	}
	return env.Comment, nil
}

// AuthResult is the session payload of a successful login or
// registration. The backend defines the shape; unknown fields are
// ignored and missing ones are left zero.
type AuthResult struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}

// Login authenticates with the board API.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (*AuthResult, error) {
	var res AuthResult
	if err := c.do(ctx, http.MethodPost, "/api/login", creds, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Register creates an account with the board API.
func (c *Client) Register(ctx context.Context, creds models.Credentials) (*AuthResult, error) {
	var res AuthResult
	if err := c.do(ctx, http.MethodPost, "/api/register", creds, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.failure(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%s %s: %w: %v", method, path, ErrMalformedResponse, err)
		}
	}
	return nil
}

// failure turns a non-2xx response into an APIError. A body that is not
// JSON, or carries no message field, leaves Message empty and the caller
// falls back to the generic text.
func (c *Client) failure(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		apiErr.Message = payload.Message
	}
	return apiErr
}
