// Package client is the REST client for the noteshop API, consumed by the
// CLI storefront. It owns no state beyond the base URL and the credential
// manager it reads bearer tokens from.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"noteshop/pkg/credential"
	"noteshop/pkg/purchase"
	"noteshop/pkg/song"
	"noteshop/pkg/user"
)

type Client struct {
	BaseURL    string
	Credential *credential.Manager
	httpClient *http.Client
}

func New(baseURL string, cred *credential.Manager) *Client {
	return &Client{
		BaseURL:    baseURL,
		Credential: cred,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Register(form user.RegisterForm) error {
	return c.authenticate("/api/register", form)
}

func (c *Client) Login(username, password string) error {
	return c.authenticate("/api/login", map[string]string{
		"username": username,
		"password": password,
	})
}

func (c *Client) authenticate(path string, form any) error {
	body, err := json.Marshal(form)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Post(c.BaseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("auth failed: %s", string(respBody))
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return err
	}
	if !credential.IsValid(result.Token) {
		return fmt.Errorf("server issued an unusable token")
	}

	return c.Credential.SetToken(result.Token)
}

// Logout invalidates the server session and drops the local credential
// even when the server call fails.
func (c *Client) Logout() error {
	_, err := c.do(http.MethodPost, "/api/logout", nil, nil)
	if clearErr := c.Credential.ClearToken(); clearErr != nil && err == nil {
		err = clearErr
	}
	return err
}

func (c *Client) Songs(page int, category string) (*song.Page, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	if category != "" {
		query.Set("category", category)
	}

	var result song.Page
	if _, err := c.do(http.MethodGet, "/api/songs/?"+query.Encode(), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Song(songID string) (*song.Song, error) {
	var result song.Song
	if _, err := c.do(http.MethodGet, "/api/song/"+songID, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ReportView satisfies viewtrack.Reporter.
func (c *Client) ReportView(songID string) error {
	_, err := c.do(http.MethodPost, "/api/song/"+songID+"/view", nil, nil)
	return err
}

func (c *Client) Purchases() ([]*purchase.Purchase, error) {
	var result []*purchase.Purchase
	if _, err := c.do(http.MethodGet, "/api/purchases", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) Purchase(songID string) (*purchase.Purchase, error) {
	form := map[string]string{
		"songId":       songID,
		"purchaseType": purchase.TypeSong,
	}
	var result purchase.Purchase
	if _, err := c.do(http.MethodPost, "/api/purchases", form, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) do(method, path string, form, out any) (int, error) {
	var body io.Reader
	if form != nil {
		raw, err := json.Marshal(form)
		if err != nil {
			return 0, err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, body)
	if err != nil {
		return 0, err
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Credential.ValidToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to connect: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return resp.StatusCode, fmt.Errorf("request failed (%d): %s", resp.StatusCode, string(respBody))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("bad response body: %w", err)
		}
	}
	return resp.StatusCode, nil
}
