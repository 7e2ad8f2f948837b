package stakecube

import (
	"context"
	"net/http"

	"github.com/cockroachdb/apd/v3"

	"stakecube/pkg/core"
)

const (
	pathAccount    = "/user/account"
	pathWithdraw   = "/user/withdraw"
	pathRateLimits = "/user/rateLimits"
)

type withdrawArgs struct {
	Ticker  string       `param:"ticker" validate:"required"`
	Address string       `param:"address" validate:"required"`
	Amount  *apd.Decimal `param:"amount" validate:"gt=0"`
}

// GetAccount returns balances and account details.
func (c *Client) GetAccount(ctx context.Context) (core.Envelope, error) {
	return c.do(ctx, core.NewRequest(http.MethodGet, pathAccount))
}

// GetRateLimits returns the request quotas the API applies to this key.
func (c *Client) GetRateLimits(ctx context.Context) (core.Envelope, error) {
	return c.do(ctx, core.NewRequest(http.MethodGet, pathRateLimits))
}

// Withdraw sends amount of ticker to address.
func (c *Client) Withdraw(ctx context.Context, ticker, address string, amount *apd.Decimal) (core.Envelope, error) {
	args := withdrawArgs{Ticker: ticker, Address: address, Amount: amount}
	if err := validateArgs(args); err != nil {
		return nil, err
	}

	req := core.NewRequest(http.MethodPost, pathWithdraw).
		SetParam("ticker", args.Ticker).
		SetParam("address", args.Address).
		SetParam("amount", formatDecimal(args.Amount))
	return c.do(ctx, req)
}
