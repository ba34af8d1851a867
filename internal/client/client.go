// Package client fala com a API HTTP do sweaters. É usado pelo comando "play".
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sweaters/internal/models"
)

const defaultTimeout = 5 * time.Second

// Client (outbound) de uma instância da API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// APIError é a resposta de erro da API já decodificada.
type APIError struct {
	StatusCode int
	Message    string
	Kind       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Kind, e.Message)
}

// do faz a requisição e decodifica o envelope; status >= 400 vira *APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values) (models.APIResponse, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return models.APIResponse{}, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.APIResponse{}, err
	}
	defer resp.Body.Close()

	var body models.APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.APIResponse{}, fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		kind, _ := body.Data["error"].(string)
		return body, &APIError{StatusCode: resp.StatusCode, Message: body.Message, Kind: kind}
	}
	return body, nil
}

func (c *Client) CreateUser(ctx context.Context, username, email, fullName string) (models.User, error) {
	q := url.Values{"username": {username}, "email": {email}}
	if fullName != "" {
		q.Set("full_name", fullName)
	}
	resp, err := c.do(ctx, http.MethodPost, "/users", q)
	if err != nil {
		return models.User{}, err
	}
	if resp.User == nil {
		return models.User{}, fmt.Errorf("create user: empty response")
	}
	return *resp.User, nil
}

func (c *Client) GetUser(ctx context.Context, userID string) (models.User, error) {
	resp, err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(userID), nil)
	if err != nil {
		return models.User{}, err
	}
	if resp.User == nil {
		return models.User{}, fmt.Errorf("get user: empty response")
	}
	return *resp.User, nil
}

// StartGame começa uma partida; userID vazio joga como convidado.
func (c *Client) StartGame(ctx context.Context, userID string) (models.SessionResult, error) {
	q := url.Values{}
	if userID != "" {
		q.Set("userid", userID)
	}
	resp, err := c.do(ctx, http.MethodGet, "/start-game", q)
	if err != nil {
		return models.SessionResult{}, err
	}
	return sessionResult(resp), nil
}

func (c *Client) ResetGame(ctx context.Context, gameID, userID string) (models.SessionResult, error) {
	q := url.Values{}
	if gameID != "" {
		q.Set("gameid", gameID)
	}
	if userID != "" {
		q.Set("userid", userID)
	}
	resp, err := c.do(ctx, http.MethodPost, "/reset-game", q)
	if err != nil {
		return models.SessionResult{}, err
	}
	return sessionResult(resp), nil
}

func (c *Client) PullCard(ctx context.Context, userID, gameID string) (models.DrawResult, error) {
	q := url.Values{"userid": {userID}, "gameid": {gameID}}
	resp, err := c.do(ctx, http.MethodGet, "/pull-card", q)
	if err != nil {
		return models.DrawResult{}, err
	}

	// data volta como mapa genérico; reencoda para a struct tipada
	raw, err := json.Marshal(resp.Data)
	if err != nil {
		return models.DrawResult{}, err
	}
	var result models.DrawResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return models.DrawResult{}, fmt.Errorf("decode draw: %w", err)
	}
	return result, nil
}

func sessionResult(resp models.APIResponse) models.SessionResult {
	str := func(k string) string {
		s, _ := resp.Data[k].(string)
		return s
	}
	return models.SessionResult{Message: resp.Message, GameID: str("game_id"), OwnerID: str("user_id")}
}
