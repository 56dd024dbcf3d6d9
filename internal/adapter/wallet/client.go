package wallet

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"monero-wallet-manager/pkg/apperror"

	"github.com/icholy/digest"
	"github.com/rs/zerolog"
)

// Authentication schemes understood by monero-wallet-rpc.
const (
	SchemeBasic  = "basic"
	SchemeDigest = "digest"
)

const defaultTimeout = 30 * time.Second

// Config holds the wallet RPC endpoint settings.
type Config struct {
	BaseURL    string
	Username   string
	Password   string
	AuthScheme string // basic (default) or digest
	Timeout    time.Duration
}

// Client is a JSON-RPC 2.0 client for monero-wallet-rpc. A single instance
// is constructed at startup and shared by all handlers and the withdrawal
// consumer. The request id is an advisory correlation token only.
type Client struct {
	baseURL  string
	endpoint string
	uriPath  string
	username string
	password string
	scheme   string
	http     *http.Client
	log      zerolog.Logger
	reqID    atomic.Uint64
}

// NewClient creates a wallet RPC client.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")

	scheme := strings.ToLower(strings.TrimSpace(cfg.AuthScheme))
	if scheme == "" {
		scheme = SchemeBasic
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	endpoint := baseURL + "/json_rpc"
	uriPath := "/json_rpc"
	if u, err := url.Parse(endpoint); err == nil && u.Path != "" {
		uriPath = u.Path
	}

	return &Client{
		baseURL:  baseURL,
		endpoint: endpoint,
		uriPath:  uriPath,
		username: cfg.Username,
		password: cfg.Password,
		scheme:   scheme,
		http:     &http.Client{Timeout: timeout},
		log:      log,
	}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// Call performs one JSON-RPC call. A nil params value omits the params key
// from the envelope entirely; a non-nil empty struct is still serialized.
//
// Authentication: the first attempt uses the configured scheme. A 401 whose
// WWW-Authenticate challenge mentions digest triggers exactly one retry with
// digest credentials, whatever the configured default — this covers wallets
// that require digest when the client was configured for basic. No other
// retries are performed.
func (c *Client) Call(ctx context.Context, method string, params any) (json.RawMessage, error) {
	id := c.reqID.Add(1)
	payload, err := json.Marshal(rpcRequest{JSONRPC: "2.0", ID: id, Method: method, Params: params})
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("marshal %s request: %w", method, err))
	}

	auth := ""
	if c.hasCredentials() && c.scheme == SchemeBasic {
		auth = basicAuthorization(c.username, c.password)
	}

	resp, err := c.post(ctx, payload, auth)
	if err != nil {
		return nil, apperror.ErrWalletUnreachable(c.baseURL, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		challenge := resp.Header.Get("WWW-Authenticate")
		drainAndClose(resp)

		if !c.hasCredentials() || !strings.Contains(strings.ToLower(challenge), SchemeDigest) {
			return nil, apperror.ErrWalletHTTP(http.StatusUnauthorized, c.scheme, challenge)
		}

		digestAuth, derr := c.digestAuthorization(challenge)
		if derr != nil {
			return nil, apperror.Wrap("RPC_002",
				fmt.Sprintf("unusable digest challenge %q from wallet RPC", challenge),
				http.StatusInternalServerError, derr)
		}

		c.log.Debug().Str("method", method).Msg("wallet RPC requested digest auth, retrying")
		resp, err = c.post(ctx, payload, digestAuth)
		if err != nil {
			return nil, apperror.ErrWalletUnreachable(c.baseURL, err)
		}
	}
	defer drainAndClose(resp)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, apperror.ErrWalletHTTP(resp.StatusCode, c.scheme, resp.Header.Get("WWW-Authenticate"))
	}

	var envelope rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("decode %s response: %w", method, err))
	}
	if envelope.Error != nil {
		return nil, apperror.ErrWalletRPC(envelope.Error.Code, envelope.Error.Message)
	}
	if len(envelope.Result) == 0 {
		return json.RawMessage(`{}`), nil
	}
	return envelope.Result, nil
}

func (c *Client) post(ctx context.Context, payload []byte, authorization string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	return c.http.Do(req)
}

func (c *Client) hasCredentials() bool {
	return c.username != "" || c.password != ""
}

func (c *Client) digestAuthorization(challenge string) (string, error) {
	chal, err := digest.ParseChallenge(challenge)
	if err != nil {
		return "", err
	}
	cred, err := digest.Digest(chal, digest.Options{
		Method:   http.MethodPost,
		URI:      c.uriPath,
		Count:    1,
		Username: c.username,
		Password: c.password,
	})
	if err != nil {
		return "", err
	}
	return cred.String(), nil
}

func basicAuthorization(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}

func drainAndClose(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
