package exchange

import (
	"context"

	"github.com/cockroachdb/apd/v3"

	"stakecube/pkg/core"
)

// Exchange is the full StakeCube v2 REST surface. Every method returns the
// decoded response envelope unchanged, or an *core.ExchangeError.
type Exchange interface {
	Name() string
	Version() string
	Close() error

	GetArbitrageInfo(ctx context.Context, ticker string) (core.Envelope, error)
	GetMarkets(ctx context.Context, base string, orderBy core.MarketOrder) (core.Envelope, error)
	GetOhlcData(ctx context.Context, market string, interval core.Interval) (core.Envelope, error)
	GetTrades(ctx context.Context, market string, limit int) (core.Envelope, error)
	GetOrderBook(ctx context.Context, market string, side string) (core.Envelope, error)

	GetMineCubeInfo(ctx context.Context) (core.Envelope, error)
	GetMineCubeMiners(ctx context.Context, coin string) (core.Envelope, error)
	SetMineCubePayoutCoin(ctx context.Context, coin string) (core.Envelope, error)
	BuyMineCubeWorkers(ctx context.Context, method string, amount int) (core.Envelope, error)

	GetAccount(ctx context.Context) (core.Envelope, error)
	GetRateLimits(ctx context.Context) (core.Envelope, error)
	Withdraw(ctx context.Context, ticker, address string, amount *apd.Decimal) (core.Envelope, error)

	GetMyTrades(ctx context.Context, market string, limit int) (core.Envelope, error)
	GetOrderHistory(ctx context.Context, market string, limit int) (core.Envelope, error)
	GetOpenOrders(ctx context.Context, market string) (core.Envelope, error)
	PostOrder(ctx context.Context, market, side string, price, amount *apd.Decimal) (core.Envelope, error)
	CancelOrder(ctx context.Context, orderID int64) (core.Envelope, error)
	CancelAll(ctx context.Context, market string) (core.Envelope, error)
}
