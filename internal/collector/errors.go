package collector

import (
	"errors"
	"fmt"
)

// EmptyInputError reports that the source returned no price samples for a
// coin, usually because the id is unknown.
type EmptyInputError struct {
	CoinID string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("no market data for %q", e.CoinID)
}

// UpstreamFetchError reports a transport, status or decode failure while
// talking to the market-data source.
type UpstreamFetchError struct {
	CoinID string
	Source string
	Err    error
}

func (e *UpstreamFetchError) Error() string {
	return fmt.Sprintf("fetch %q from %s: %v", e.CoinID, e.Source, e.Err)
}

func (e *UpstreamFetchError) Unwrap() error { return e.Err }

// Describe turns a collection error into the plain-text message shown to
// the operator.
func Describe(err error) string {
	var empty *EmptyInputError
	var upstream *UpstreamFetchError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &empty):
		return fmt.Sprintf("No data available for %q. Check the coin id and try again.", empty.CoinID)
	case errors.As(err, &upstream):
		return fmt.Sprintf("Failed to fetch market data for %q. Please try again later.", upstream.CoinID)
	default:
		return "Something went wrong while computing indicators."
	}
}
