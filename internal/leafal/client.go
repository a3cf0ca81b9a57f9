package leafal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"leafdesk/internal/domain"
)

const (
	profilePath = "users/index.php"
	tokenPath   = "desktop/token/index.php"
	mePath      = "users/me/index.php"
)

// Client talks to the leafal.io API over HTTP.
type Client struct {
	base     string
	clientID string
	bearer   string
	http     *http.Client
}

// New returns a client rooted at base that identifies itself with clientID.
// A nil httpClient falls back to http.DefaultClient.
func New(base, clientID string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		base:     strings.TrimSuffix(base, "/"),
		clientID: clientID,
		http:     httpClient,
	}
}

// Authenticated returns a derived client that presents token as a bearer
// credential on every request. The receiver is unchanged.
func (c *Client) Authenticated(token string) domain.ProfileService {
	out := *c
	out.bearer = token
	return &out
}

func (c *Client) ProfileByUsername(ctx context.Context, username string) (domain.RemoteProfile, error) {
	// Absent success flags mean success; pre-set before decoding.
	out := domain.RemoteProfile{Success: true}
	err := c.postForm(ctx, profilePath, url.Values{"username": {username}}, c.bearer, &out)
	return out, err
}

func (c *Client) ProfileByID(ctx context.Context, id int64) (domain.RemoteProfile, error) {
	out := domain.RemoteProfile{Success: true}
	err := c.postForm(ctx, profilePath, url.Values{"id": {strconv.FormatInt(id, 10)}}, c.bearer, &out)
	return out, err
}

func (c *Client) Authenticate(ctx context.Context, username, password string) (domain.AuthResult, error) {
	out := domain.AuthResult{Success: true}
	err := c.postForm(ctx, tokenPath, url.Values{
		"username": {username},
		"password": {password},
	}, c.bearer, &out)
	return out, err
}

func (c *Client) WhoAmI(ctx context.Context, token string) (domain.WhoAmI, error) {
	out := domain.WhoAmI{Success: true}
	err := c.postForm(ctx, mePath, nil, token, &out)
	return out, err
}

// DownloadAvatar fetches raw image bytes from rawURL, which the remote
// service hands out as an absolute URL.
func (c *Client) DownloadAvatar(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Client-Id", c.clientID)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode/100 != 2 {
		resp.Body.Close()
		return nil, fmt.Errorf("leafal get %s: %s", rawURL, resp.Status)
	}
	return resp.Body, nil
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values, bearer string, out any) error {
	body := ""
	if form != nil {
		body = form.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/"+path, strings.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Client-Id", c.clientID)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("leafal post %s: %s", path, resp.Status)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

var _ domain.ProfileService = (*Client)(nil)
