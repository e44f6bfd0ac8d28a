package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bnema/careerbot/internal/domain"
	"github.com/bnema/careerbot/internal/ports"
)

const (
	DefaultBaseURL = "https://identitytoolkit.googleapis.com/v1/"

	signUpPath        = "accounts:signUp"
	signInPath        = "accounts:signInWithPassword"
	sendOOBCodePath   = "accounts:sendOobCode"
	lookupPath        = "accounts:lookup"
	verifyEmailType   = "VERIFY_EMAIL"
	maxResponseBytes  = 1 << 20
	defaultReqTimeout = 30 * time.Second
)

// Client is an identity provider backed by the Firebase Identity Toolkit
// REST API. New accounts must verify their email before logging in.
type Client struct {
	APIKey         string
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

var _ ports.IdentityProvider = (*Client)(nil)

type credentialsRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type authResponse struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
	IDToken string `json:"idToken"`
}

type oobCodeRequest struct {
	RequestType string `json:"requestType"`
	IDToken     string `json:"idToken"`
}

type lookupRequest struct {
	IDToken string `json:"idToken"`
}

type lookupResponse struct {
	Users []struct {
		LocalID       string `json:"localId"`
		Email         string `json:"email"`
		EmailVerified bool   `json:"emailVerified"`
	} `json:"users"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) RequiresVerification() bool {
	return true
}

func (c *Client) Register(ctx context.Context, email, password string) (domain.Identity, error) {
	var resp authResponse
	err := c.call(ctx, signUpPath, credentialsRequest{Email: email, Password: password, ReturnSecureToken: true}, &resp)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("sign up: %w", err)
	}

	return domain.Identity{
		UserID: domain.UserID(resp.LocalID),
		Email:  resp.Email,
		Token:  resp.IDToken,
	}, nil
}

// Authenticate signs in and then looks the account up, since the sign-in
// response does not report whether the email is verified.
func (c *Client) Authenticate(ctx context.Context, email, password string) (domain.Identity, error) {
	var signIn authResponse
	err := c.call(ctx, signInPath, credentialsRequest{Email: email, Password: password, ReturnSecureToken: true}, &signIn)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("sign in: %w", err)
	}

	var lookup lookupResponse
	if err := c.call(ctx, lookupPath, lookupRequest{IDToken: signIn.IDToken}, &lookup); err != nil {
		return domain.Identity{}, fmt.Errorf("look up account: %w", err)
	}
	if len(lookup.Users) == 0 {
		return domain.Identity{}, domain.NewExternalError(domain.CodeUserNotFound, domain.ErrUserNotFound)
	}

	return domain.Identity{
		UserID:   domain.UserID(signIn.LocalID),
		Email:    signIn.Email,
		Verified: lookup.Users[0].EmailVerified,
		Token:    signIn.IDToken,
	}, nil
}

func (c *Client) SendVerification(ctx context.Context, identity domain.Identity) error {
	if identity.Token == "" {
		return errors.New("identity token is required to send a verification email")
	}

	if err := c.call(ctx, sendOOBCodePath, oobCodeRequest{RequestType: verifyEmailType, IDToken: identity.Token}, nil); err != nil {
		return fmt.Errorf("send verification email: %w", err)
	}

	return nil
}

func (c *Client) call(ctx context.Context, path string, body any, out any) error {
	endpoint, err := c.endpoint(path)
	if err != nil {
		return err
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// decodeError maps the provider's error message, e.g. "WEAK_PASSWORD :
// Password should be at least 6 characters", onto a known code.
func decodeError(resp *http.Response) error {
	var payload errorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil || payload.Error.Message == "" {
		return domain.NewExternalError(domain.CodeUnknown, fmt.Errorf("status %d", resp.StatusCode))
	}

	raw := payload.Error.Message
	return domain.NewExternalError(domain.MatchErrorCode(raw), fmt.Errorf("status %d: %s", resp.StatusCode, raw))
}

func (c *Client) endpoint(path string) (string, error) {
	if c.APIKey == "" {
		return "", errors.New("firebase api key is required")
	}

	baseURL := c.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse identity base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("identity base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("identity base url host is required")
	}

	endpoint := parsed.JoinPath(path)
	query := endpoint.Query()
	query.Set("key", c.APIKey)
	endpoint.RawQuery = query.Encode()

	return endpoint.String(), nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	timeout := c.RequestTimeout
	if timeout <= 0 {
		timeout = defaultReqTimeout
	}

	return context.WithTimeout(ctx, timeout)
}
