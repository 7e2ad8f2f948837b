package core

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
)

// OrderSide represents the direction of an order.
type OrderSide string

// Order side constants.
const (
	SideBuy  OrderSide = "BUY"
	SideSell OrderSide = "SELL"
)

// ParseOrderSide accepts any case variant of "buy" or "sell".
func ParseOrderSide(s string) (OrderSide, error) {
	switch side := OrderSide(strings.ToUpper(strings.TrimSpace(s))); side {
	case SideBuy, SideSell:
		return side, nil
	default:
		return "", fmt.Errorf("invalid order side %q", s)
	}
}

// Interval is a candle timeframe code accepted by the OHLC endpoint.
type Interval string

// Interval constants.
const (
	Interval1m  Interval = "1m"
	Interval5m  Interval = "5m"
	Interval15m Interval = "15m"
	Interval30m Interval = "30m"
	Interval1h  Interval = "1h"
	Interval4h  Interval = "4h"
	Interval1d  Interval = "1d"
	Interval1w  Interval = "1w"
	Interval1mo Interval = "1mo"
)

// Intervals lists every supported timeframe, shortest first.
var Intervals = []Interval{
	Interval1m, Interval5m, Interval15m, Interval30m,
	Interval1h, Interval4h, Interval1d, Interval1w, Interval1mo,
}

// MarketOrder selects how the market listing is sorted.
type MarketOrder string

const (
	OrderByVolume MarketOrder = "volume"
	OrderByChange MarketOrder = "change"
)

// Envelope is a decoded API response. Every response carries a boolean
// "success" and, on failure, an "error" string; the remaining fields are
// endpoint specific.
type Envelope map[string]any

// Success reports the value of the "success" field. A missing or
// non-boolean field counts as false.
func (e Envelope) Success() bool {
	v, _ := e["success"].(bool)
	return v
}

// ErrorMessage returns the "error" field, or "" when absent.
func (e Envelope) ErrorMessage() string {
	v, _ := e["error"].(string)
	return v
}

// Decode converts the field named key into v.
func (e Envelope) Decode(key string, v any) error {
	raw, ok := e[key]
	if !ok {
		return fmt.Errorf("envelope has no %q field", key)
	}
	data, err := sonic.Marshal(raw)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := sonic.Unmarshal(data, v); err != nil {
		return fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return nil
}
