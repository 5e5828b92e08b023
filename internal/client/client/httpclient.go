package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/usersvc/internal/common"
)

type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient returns a client for the service at baseURL, for example
// "http://127.0.0.1:8080".
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("bad server address: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("bad server address %q: scheme must be http or https", baseURL)
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}, nil
}

type envelope struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Error   string            `json:"error"`
	Fields  map[string]string `json:"fields"`
	Detail  string            `json:"detail"`
	Token   string            `json:"token"`
	User    *User             `json:"user"`
}

func (c *HTTPClient) do(ctx context.Context, method, path, token string, body any) (int, *envelope, error) {
	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		rdr = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return 0, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthHeaderName, common.BearerPrefix+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil && !errors.Is(err, io.EOF) {
		return resp.StatusCode, nil, fmt.Errorf("bad response (%d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, &env, &APIError{
			Status:  resp.StatusCode,
			Code:    env.Error,
			Message: env.Message,
			Fields:  env.Fields,
			Detail:  env.Detail,
		}
	}

	return resp.StatusCode, &env, nil
}

func (c *HTTPClient) reply(ctx context.Context, method, path, token string, body any) (*Reply, error) {
	status, env, err := c.do(ctx, method, path, token, body)
	if err != nil {
		return nil, err
	}
	return &Reply{Status: status, Message: env.Message}, nil
}

func (c *HTTPClient) Register(ctx context.Context, name, email string, password []byte) (*Reply, error) {
	return c.reply(ctx, http.MethodPost, "/user/register", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": string(password),
	})
}

func (c *HTTPClient) Login(ctx context.Context, email string, password []byte) (*Session, error) {
	_, env, err := c.do(ctx, http.MethodPost, "/user/login", "", map[string]string{
		"email":    email,
		"password": string(password),
	})
	if err != nil {
		return nil, err
	}
	if env.Token == "" || env.User == nil {
		return nil, errors.New("login reply without token")
	}
	return &Session{Token: env.Token, User: *env.User}, nil
}

func (c *HTTPClient) Update(ctx context.Context, token string, p Profile) (*Reply, error) {
	body := map[string]string{}
	if p.Name != "" {
		body["name"] = p.Name
	}
	if p.Email != "" {
		body["email"] = p.Email
	}
	if len(p.Password) > 0 {
		body["password"] = string(p.Password)
	}
	return c.reply(ctx, http.MethodPut, "/user/update", token, body)
}

func (c *HTTPClient) Delete(ctx context.Context, token, id string) (*Reply, error) {
	return c.reply(ctx, http.MethodDelete, "/user/delete/"+url.PathEscape(id), token, nil)
}

// Ping checks GET /health.
func (c *HTTPClient) Ping(ctx context.Context) error {
	_, _, err := c.do(ctx, http.MethodGet, "/health", "", nil)
	return err
}
