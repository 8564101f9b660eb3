package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/nkartsev/artvault/internal/client/models"
	"github.com/nkartsev/artvault/internal/netx"
)

// HTTPClient talks to the gallery API over HTTP/JSON. It deliberately
// carries no request timeout: a hung request leaves the owning component
// in its loading state, which is the documented behavior.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

func (c *HTTPClient) ConnectWallet(ctx context.Context, walletAddress string) (*models.ConnectResult, error) {
	body := map[string]string{"wallet_address": walletAddress}

	var result models.ConnectResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/users/connect", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (*models.User, error) {
	path := fmt.Sprintf("/api/users/%d/profile", userID)

	var result struct {
		User *models.User `json:"user"`
	}
	if err := c.doJSON(ctx, http.MethodPut, path, update, &result); err != nil {
		return nil, err
	}
	return result.User, nil
}

func (c *HTTPClient) CheckUsername(ctx context.Context, username string) (bool, error) {
	path := "/api/users/check-username/" + url.PathEscape(username)

	var result struct {
		Available bool `json:"available"`
	}
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &result); err != nil {
		return false, err
	}
	return result.Available, nil
}

func (c *HTTPClient) ListArtworks(ctx context.Context, query models.ArtworkQuery) (*models.ArtworkPage, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(query.Page))
	params.Set("per_page", strconv.Itoa(query.PerPage))
	if query.FileType.Valid() {
		params.Set("file_type", string(query.FileType))
	}
	if s := strings.TrimSpace(query.Search); s != "" {
		params.Set("search", s)
	}
	if query.UserID != 0 {
		params.Set("user_id", strconv.FormatInt(query.UserID, 10))
	}

	var page models.ArtworkPage
	if err := c.doJSON(ctx, http.MethodGet, "/api/artworks?"+params.Encode(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *HTTPClient) CreateArtwork(ctx context.Context, submission models.ArtworkSubmission) (*models.Artwork, error) {
	fields := map[string]string{
		"title":       submission.Title,
		"description": submission.Description,
		"user_id":     strconv.FormatInt(submission.UserID, 10),
	}

	body, contentType, err := netx.BuildMultipart(fields, "file", submission.FileName, submission.ContentType, submission.Data)
	if err != nil {
		return nil, fmt.Errorf("building upload body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/artworks", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	var result struct {
		Artwork *models.Artwork `json:"artwork"`
	}
	if err := c.send(req, &result); err != nil {
		return nil, err
	}
	return result.Artwork, nil
}

func (c *HTTPClient) LikeArtwork(ctx context.Context, artworkID int64) (int, error) {
	path := fmt.Sprintf("/api/artworks/%d/like", artworkID)

	var result struct {
		Likes int `json:"likes"`
	}
	if err := c.doJSON(ctx, http.MethodPost, path, nil, &result); err != nil {
		return 0, err
	}
	return result.Likes, nil
}

func (c *HTTPClient) GetArtwork(ctx context.Context, artworkID int64) (*models.Artwork, error) {
	path := fmt.Sprintf("/api/artworks/%d", artworkID)

	var artwork models.Artwork
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &artwork); err != nil {
		return nil, err
	}
	return &artwork, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, userID int64) (*models.UserDetail, error) {
	path := fmt.Sprintf("/api/users/%d", userID)

	var detail models.UserDetail
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// doJSON issues a request with an optional JSON body and decodes a JSON
// response into out.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// send executes the request and maps the response: 2xx decodes into out,
// anything else becomes a sentinel or a ServerError with the verbatim
// server-reported message.
func (c *HTTPClient) send(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
		return nil
	}

	var payload struct {
		Error string `json:"error"`
	}
	data, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(data, &payload)

	if payload.Error != "" {
		return &ServerError{StatusCode: resp.StatusCode, Message: payload.Error}
	}
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return fmt.Errorf("unexpected status %s", resp.Status)
}
