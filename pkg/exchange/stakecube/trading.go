package stakecube

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"

	"stakecube/pkg/core"
)

const (
	pathMyTrades       = "/exchange/spot/myTrades"
	pathOpenOrders     = "/exchange/spot/myOpenOrder"
	pathOrderHistory   = "/exchange/spot/myOrderHistory"
	pathPostOrder      = "/exchange/spot/order"
	pathCancelOrder    = "/exchange/spot/cancel"
	pathCancelAllOrder = "/exchange/spot/cancelAll"
)

type historyArgs struct {
	Market string `param:"market"`
	Limit  int    `param:"limit" validate:"gte=1,lte=1000"`
}

type postOrderArgs struct {
	Market string       `param:"market" validate:"required"`
	Side   string       `param:"side" validate:"oneof=BUY SELL"`
	Price  *apd.Decimal `param:"price" validate:"gt=0"`
	Amount *apd.Decimal `param:"amount" validate:"gt=0"`
}

type cancelOrderArgs struct {
	OrderID int64 `param:"orderId" validate:"gt=0"`
}

type cancelAllArgs struct {
	Market string `param:"market" validate:"required"`
}

// GetMyTrades returns the account's own trades, optionally for one market.
// A zero limit requests the default of 100 trades.
func (c *Client) GetMyTrades(ctx context.Context, market string, limit int) (core.Envelope, error) {
	return c.history(ctx, pathMyTrades, market, limit)
}

// GetOrderHistory returns the account's closed orders, optionally for one market.
func (c *Client) GetOrderHistory(ctx context.Context, market string, limit int) (core.Envelope, error) {
	return c.history(ctx, pathOrderHistory, market, limit)
}

func (c *Client) history(ctx context.Context, path, market string, limit int) (core.Envelope, error) {
	args := historyArgs{Market: market, Limit: limitOrDefault(limit)}
	if err := validateArgs(args); err != nil {
		return nil, err
	}

	req := core.NewRequest(http.MethodGet, path).
		SetParamIf("market", args.Market).
		SetParam("limit", strconv.Itoa(args.Limit))
	return c.do(ctx, req)
}

// GetOpenOrders returns the account's open orders, optionally for one market.
func (c *Client) GetOpenOrders(ctx context.Context, market string) (core.Envelope, error) {
	req := core.NewRequest(http.MethodGet, pathOpenOrders).
		SetParamIf("market", market)
	return c.do(ctx, req)
}

// PostOrder places a limit order. side is "buy" or "sell" in any case.
func (c *Client) PostOrder(ctx context.Context, market, side string, price, amount *apd.Decimal) (core.Envelope, error) {
	args := postOrderArgs{
		Market: market,
		Side:   strings.ToUpper(side),
		Price:  price,
		Amount: amount,
	}
	if err := validateArgs(args); err != nil {
		return nil, err
	}

	req := core.NewRequest(http.MethodPost, pathPostOrder).
		SetParam("market", args.Market).
		SetParam("side", args.Side).
		SetParam("price", formatDecimal(args.Price)).
		SetParam("amount", formatDecimal(args.Amount))
	return c.do(ctx, req)
}

// CancelOrder cancels one open order.
func (c *Client) CancelOrder(ctx context.Context, orderID int64) (core.Envelope, error) {
	args := cancelOrderArgs{OrderID: orderID}
	if err := validateArgs(args); err != nil {
		return nil, err
	}

	req := core.NewRequest(http.MethodPost, pathCancelOrder).
		SetParam("orderId", strconv.FormatInt(args.OrderID, 10))
	return c.do(ctx, req)
}

// CancelAll cancels every open order in market.
func (c *Client) CancelAll(ctx context.Context, market string) (core.Envelope, error) {
	args := cancelAllArgs{Market: market}
	if err := validateArgs(args); err != nil {
		return nil, err
	}

	req := core.NewRequest(http.MethodPost, pathCancelAllOrder).
		SetParam("market", args.Market)
	return c.do(ctx, req)
}
