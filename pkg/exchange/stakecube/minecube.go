package stakecube

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"stakecube/pkg/core"
)

const (
	pathMineCubeInfo       = "/minecube/info"
	pathMineCubeMiners     = "/minecube/miner"
	pathMineCubePayoutCoin = "/minecube/payoutCoin"
	pathMineCubeBuyWorkers = "/minecube/buyWorkers"
)

type minersArgs struct {
	Coin string `param:"coin" validate:"oneof=BTC DASH ETH LTC"`
}

type payoutCoinArgs struct {
	Coin string `param:"coin" validate:"oneof=BTC DASH ETH LTC SCC"`
}

type buyWorkersArgs struct {
	Method string `param:"method" validate:"oneof=BTC DASH ETH LTC SCC CREDITS"`
	Amount int    `param:"amount" validate:"gt=0"`
}

// GetMineCubeInfo returns the MineCube pool overview.
func (c *Client) GetMineCubeInfo(ctx context.Context) (core.Envelope, error) {
	return c.do(ctx, core.NewRequest(http.MethodGet, pathMineCubeInfo))
}

// GetMineCubeMiners returns the miners mining coin (BTC, DASH, ETH or LTC).
func (c *Client) GetMineCubeMiners(ctx context.Context, coin string) (core.Envelope, error) {
	args := minersArgs{Coin: strings.ToUpper(coin)}
	if err := validateArgs(args); err != nil {
		return nil, err
	}

	req := core.NewRequest(http.MethodGet, pathMineCubeMiners).
		SetParam("coin", args.Coin)
	return c.do(ctx, req)
}

// SetMineCubePayoutCoin selects the coin MineCube rewards are paid in.
func (c *Client) SetMineCubePayoutCoin(ctx context.Context, coin string) (core.Envelope, error) {
	args := payoutCoinArgs{Coin: strings.ToUpper(coin)}
	if err := validateArgs(args); err != nil {
		return nil, err
	}

	req := core.NewRequest(http.MethodPost, pathMineCubePayoutCoin).
		SetParam("coin", args.Coin)
	return c.do(ctx, req)
}

// BuyMineCubeWorkers buys amount workers, paying with method.
func (c *Client) BuyMineCubeWorkers(ctx context.Context, method string, amount int) (core.Envelope, error) {
	args := buyWorkersArgs{Method: strings.ToUpper(method), Amount: amount}
	if err := validateArgs(args); err != nil {
		return nil, err
	}

	req := core.NewRequest(http.MethodPost, pathMineCubeBuyWorkers).
		SetParam("method", args.Method).
		SetParam("amount", strconv.Itoa(args.Amount))
	return c.do(ctx, req)
}
