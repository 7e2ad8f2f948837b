package stakecube

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"stakecube/pkg/core"
)

const (
	pathArbitrageInfo = "/exchange/spot/arbitrageInfo"
	pathMarkets       = "/exchange/spot/markets"
	pathOhlcData      = "/exchange/spot/ohlcData"
	pathTrades        = "/exchange/spot/trades"
	pathOrderBook     = "/exchange/spot/orderbook"

	defaultTradeLimit = 100
)

type arbitrageArgs struct {
	Ticker string `param:"ticker" validate:"required"`
}

type marketsArgs struct {
	Base    string `param:"base" validate:"required"`
	OrderBy string `param:"orderBy" validate:"oneof=volume change"`
}

type ohlcArgs struct {
	Market   string `param:"market" validate:"required"`
	Interval string `param:"interval" validate:"oneof=1m 5m 15m 30m 1h 4h 1d 1w 1mo"`
}

type tradesArgs struct {
	Market string `param:"market" validate:"required"`
	Limit  int    `param:"limit" validate:"gte=1,lte=1000"`
}

type orderBookArgs struct {
	Market string `param:"market" validate:"required"`
	Side   string `param:"side" validate:"omitempty,oneof=BUY SELL"`
}

// GetArbitrageInfo returns cross-market arbitrage data for ticker.
func (c *Client) GetArbitrageInfo(ctx context.Context, ticker string) (core.Envelope, error) {
	args := arbitrageArgs{Ticker: ticker}
	if err := validateArgs(args); err != nil {
		return nil, err
	}

	req := core.NewRequest(http.MethodGet, pathArbitrageInfo).
		SetParam("ticker", args.Ticker)
	return c.do(ctx, req)
}

// GetMarkets lists the spot markets quoted in base, sorted by orderBy
// ("volume" or "change", case-insensitive). An empty orderBy sorts by volume.
func (c *Client) GetMarkets(ctx context.Context, base string, orderBy core.MarketOrder) (core.Envelope, error) {
	args := marketsArgs{
		Base:    base,
		OrderBy: strings.ToLower(string(orderBy)),
	}
	if args.OrderBy == "" {
		args.OrderBy = string(core.OrderByVolume)
	}
	if err := validateArgs(args); err != nil {
		return nil, err
	}

	req := core.NewRequest(http.MethodGet, pathMarkets).
		SetParam("base", args.Base).
		SetParam("orderBy", args.OrderBy)
	return c.do(ctx, req)
}

// GetOhlcData returns candles for market at the given interval.
func (c *Client) GetOhlcData(ctx context.Context, market string, interval core.Interval) (core.Envelope, error) {
	args := ohlcArgs{Market: market, Interval: string(interval)}
	if err := validateArgs(args); err != nil {
		return nil, err
	}

	req := core.NewRequest(http.MethodGet, pathOhlcData).
		SetParam("market", args.Market).
		SetParam("interval", args.Interval)
	return c.do(ctx, req)
}

// GetTrades returns the public trade history of market. A zero limit
// requests the default of 100 trades.
func (c *Client) GetTrades(ctx context.Context, market string, limit int) (core.Envelope, error) {
	args := tradesArgs{Market: market, Limit: limitOrDefault(limit)}
	if err := validateArgs(args); err != nil {
		return nil, err
	}

	req := core.NewRequest(http.MethodGet, pathTrades).
		SetParam("market", args.Market).
		SetParam("limit", strconv.Itoa(args.Limit))
	return c.do(ctx, req)
}

// GetOrderBook returns the order book of market. side may be "BUY" or
// "SELL" in any case to fetch one side only, or empty for both.
func (c *Client) GetOrderBook(ctx context.Context, market string, side string) (core.Envelope, error) {
	args := orderBookArgs{Market: market, Side: strings.ToUpper(side)}
	if err := validateArgs(args); err != nil {
		return nil, err
	}

	req := core.NewRequest(http.MethodGet, pathOrderBook).
		SetParam("market", args.Market).
		SetParamIf("side", args.Side)
	return c.do(ctx, req)
}

func limitOrDefault(limit int) int {
	if limit == 0 {
		return defaultTradeLimit
	}
	return limit
}
