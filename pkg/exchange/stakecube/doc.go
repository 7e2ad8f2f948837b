// Package stakecube implements a client for the StakeCube v2 REST API.
//
// Every request carries a fresh millisecond nonce and an HMAC-SHA256
// signature over the canonical parameter string, keyed by the private key.
// GET requests send that string as the query, POST requests as the form
// body, each followed by "&signature=<hex>".
//
// The package includes:
//   - Client: signing, dispatch and envelope checking
//   - Endpoint methods for market data, MineCube, account and trading
//   - A declarative argument validation layer run before any request is sent
//
// Example usage:
//
//	client, err := stakecube.NewClient(publicKey, privateKey)
//	env, err := client.GetOhlcData(ctx, "SCC_BTC", core.Interval1h)
package stakecube
