package stakecube

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
	"resty.dev/v3"

	httpClient "stakecube/internal/http"
	"stakecube/internal/nonce"
	"stakecube/pkg/core"
)

const exchangeName = "stakecube"

// Client is a StakeCube v2 REST client bound to one credential pair.
// Every call is signed with a fresh nonce; a Client is safe for concurrent use.
type Client struct {
	config     *core.Config
	creds      core.Credentials
	httpClient *httpClient.Client
	nonce      nonce.Source
	logger     zerolog.Logger
}

// Option is a functional option for configuring the Client.
type Option func(*Options)

// Options holds configuration options for the Client.
type Options struct {
	Logger zerolog.Logger
	Nonce  nonce.Source
}

// WithLogger returns an option that sets the logger for the client.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithNonceSource replaces the default millisecond nonce generator.
func WithNonceSource(src nonce.Source) Option {
	return func(o *Options) {
		o.Nonce = src
	}
}

// NewClient creates a Client for the production API using the given key pair.
// It fails if either key is empty.
func NewClient(publicKey, privateKey string, opts ...Option) (*Client, error) {
	config := core.DefaultConfig().WithCredentials(&core.Credentials{
		APIKey:    publicKey,
		SecretKey: privateKey,
	})
	return New(config, opts...)
}

// New creates a Client from config. The config must carry non-empty credentials.
func New(config *core.Config, opts ...Option) (*Client, error) {
	if config == nil {
		return nil, core.NewExchangeError(exchangeName, core.ErrorTypeConfiguration, 0, "config is required").
			WithCode(core.ErrCodeInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	options := &Options{
		Logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.Nonce == nil {
		options.Nonce = nonce.New()
	}

	logger := options.Logger.With().Str("exchange", exchangeName).Logger()
	if config.LogLevel != "" {
		if level, err := zerolog.ParseLevel(config.LogLevel); err == nil {
			logger = logger.Level(level)
		}
	}

	hc, err := httpClient.NewClient(&httpClient.Config{
		BaseURL: config.BaseURL,
		Timeout: config.Timeout,
		Headers: map[string]string{"User-Agent": config.UserAgent},
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create http client: %w", err)
	}

	return &Client{
		config:     config,
		creds:      *config.Credentials,
		httpClient: hc,
		nonce:      options.Nonce,
		logger:     logger,
	}, nil
}

// Name returns the exchange identifier "stakecube".
func (c *Client) Name() string {
	return exchangeName
}

// Version returns the API version.
func (c *Client) Version() string {
	return "2"
}

// Close releases the HTTP transport. Calls made after Close fail with a transport error.
func (c *Client) Close() error {
	return c.httpClient.Close()
}

// Sign returns the lowercase hex HMAC-SHA256 of message keyed by the private key.
func (c *Client) Sign(message string) string {
	return signHMAC(message, c.creds.SecretKey)
}

func signHMAC(message, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(message))
	return hex.EncodeToString(h.Sum(nil))
}

// signedPayload appends a fresh nonce to the request parameters and returns
// the canonical encoding with its signature attached.
func (c *Client) signedPayload(req *core.Request) string {
	params := append(core.Params(nil), req.Params...)
	params.Set("nonce", strconv.FormatInt(c.nonce.Next(), 10))

	payload := params.Encode()
	return payload + "&signature=" + c.Sign(payload)
}

func (c *Client) getRequest(ctx context.Context, req *core.Request) (core.Envelope, error) {
	signed := c.signedPayload(req)
	resp, err := c.httpClient.Get(ctx, req.Path+"?"+signed,
		httpClient.WithHeader("X-API-KEY", c.creds.APIKey))
	return c.handleResponse(req, resp, err)
}

func (c *Client) postRequest(ctx context.Context, req *core.Request) (core.Envelope, error) {
	signed := c.signedPayload(req)
	resp, err := c.httpClient.PostForm(ctx, req.Path, signed,
		httpClient.WithHeader("X-API-KEY", c.creds.APIKey))
	return c.handleResponse(req, resp, err)
}

func (c *Client) do(ctx context.Context, req *core.Request) (core.Envelope, error) {
	switch req.Method {
	case http.MethodGet:
		return c.getRequest(ctx, req)
	case http.MethodPost:
		return c.postRequest(ctx, req)
	default:
		return nil, fmt.Errorf("unsupported method: %s", req.Method)
	}
}

func (c *Client) handleResponse(req *core.Request, resp *resty.Response, err error) (core.Envelope, error) {
	if err != nil {
		code := core.ErrCodeNetwork
		if errors.Is(err, core.ErrClientClosed) {
			code = core.ErrCodeClientClosed
		}
		c.logger.Error().Err(err).
			Str("method", req.Method).
			Str("path", req.Path).
			Msg("http request failed")
		return nil, core.NewExchangeError(exchangeName, core.ErrorTypeTransport, 0, err.Error()).
			WithCode(code).
			Wrap(err)
	}

	env, err := parseEnvelope(resp)
	if err != nil {
		var exErr *core.ExchangeError
		if errors.As(err, &exErr) && exErr.Type == core.ErrorTypeAPI {
			c.logger.Warn().
				Str("path", req.Path).
				Str("error", exErr.Message).
				Msg("request rejected")
		}
		return nil, err
	}
	return env, nil
}

// parseEnvelope decodes the response body and enforces the success flag.
func parseEnvelope(resp *resty.Response) (core.Envelope, error) {
	if resp == nil {
		return nil, core.NewExchangeError(exchangeName, core.ErrorTypeTransport, 0, "nil response").
			WithCode(core.ErrCodeMalformedResponse)
	}

	var env core.Envelope
	decodeErr := sonic.Unmarshal(resp.Bytes(), &env)

	if !resp.IsSuccess() {
		msg := fmt.Sprintf("HTTP error: %s", resp.Status())
		if decodeErr == nil && env.ErrorMessage() != "" {
			msg += ": " + env.ErrorMessage()
		}
		return nil, core.NewExchangeError(exchangeName, core.ErrorTypeTransport, resp.StatusCode(), msg).
			WithCode(core.ErrCodeHTTPStatus)
	}

	if decodeErr != nil {
		return nil, core.NewExchangeError(exchangeName, core.ErrorTypeTransport, resp.StatusCode(),
			fmt.Sprintf("unmarshal response: %v", decodeErr)).
			WithCode(core.ErrCodeMalformedResponse).
			Wrap(decodeErr)
	}
	if env == nil {
		return nil, core.NewExchangeError(exchangeName, core.ErrorTypeTransport, resp.StatusCode(), "empty response envelope").
			WithCode(core.ErrCodeMalformedResponse)
	}

	if !env.Success() {
		msg := env.ErrorMessage()
		if msg == "" {
			msg = "request rejected"
		}
		return nil, core.NewExchangeError(exchangeName, core.ErrorTypeAPI, resp.StatusCode(), msg).
			WithCode(core.ErrCodeRejected)
	}

	return env, nil
}
