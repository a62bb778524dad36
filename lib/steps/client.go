package steps

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

// Result is a successful step change as reported by the remote endpoint.
type Result struct {
	Account string
	Steps   int
	Message string
}

// Client calls the remote step endpoint. One GET per Change, never retried.
type Client struct {
	http    *resty.Client
	apiURL  string
	ckey    string
	timeout time.Duration
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithRestyClient replaces the underlying resty client (the timeout is still applied to it).
func WithRestyClient(rc *resty.Client) ClientOption {
	return func(c *Client) { c.http = rc }
}

// NewClient builds a Client from explicit configuration; it reads no globals.
func NewClient(cfg Config, opts ...ClientOption) *Client {
	c := &Client{
		apiURL:  cfg.APIURL,
		ckey:    cfg.CKey,
		timeout: cfg.Timeout,
	}
	if c.apiURL == "" {
		c.apiURL = DefaultAPIURL
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	for _, o := range opts {
		o(c)
	}
	if c.http == nil {
		c.http = resty.New()
	}
	c.http.SetTimeout(c.timeout).SetRetryCount(0)
	return c
}

// Change asks the endpoint to set req.Steps on the account.
// Returns ErrMissingCKey without any network I/O when no key is configured.
func (c *Client) Change(ctx context.Context, req Request) (Result, error) {
	if c.ckey == "" {
		return Result{}, ErrMissingCKey
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"ckey":  c.ckey,
			"user":  req.Account,
			"pass":  req.Password,
			"steps": strconv.Itoa(req.Steps),
		}).
		Get(c.apiURL)
	if err != nil {
		if isTimeout(err) {
			return Result{}, ErrTimeout
		}
		return Result{}, &NetworkError{Err: stripURL(err)}
	}
	if resp.StatusCode() != http.StatusOK {
		return Result{}, &StatusError{Code: resp.StatusCode()}
	}
	res, err := interpret(resp.Body(), req.Steps)
	if err != nil {
		return Result{}, err
	}
	res.Account = req.Account
	return res, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// stripURL drops the request URL from transport errors; its query carries ckey and the password.
func stripURL(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) && ue.Err != nil {
		return ue.Err
	}
	return err
}
