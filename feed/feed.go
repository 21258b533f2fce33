// Package feed pulls historical close series from the alpaca market data API.
package feed

import (
	"os"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v2/marketdata"
	"github.com/pkg/errors"
)

// NewClient builds a market data client from the standard alpaca env vars
// (APCA_API_KEY_ID, APCA_API_SECRET_KEY).
func NewClient() marketdata.Client {
	return marketdata.NewClient(marketdata.ClientOpts{
		ApiKey:    os.Getenv("APCA_API_KEY_ID"),
		ApiSecret: os.Getenv("APCA_API_SECRET_KEY"),
	})
}

// Closes returns the daily close series for symbol over the trailing number
// of calendar days, earliest bar first.
func Closes(client marketdata.Client, symbol string, days int) ([]float64, error) {
	nyc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return nil, errors.Wrap(err, "load market timezone")
	}
	now := time.Now().In(nyc)
	year, month, day := now.Date()
	start := time.Date(year, month, day-days, 0, 0, 0, 0, nyc)
	end := time.Date(year, month, day, 0, 0, 0, 0, nyc)

	var closes []float64
	for item := range client.GetBarsAsync(symbol, marketdata.GetBarsParams{
		Start:     start,
		End:       end,
		TimeFrame: marketdata.OneDay,
		Feed:      "iex",
	}) {
		if item.Error != nil {
			return nil, errors.Wrapf(item.Error, "fetch %s bars", symbol)
		}
		closes = append(closes, item.Bar.Close)
	}
	return closes, nil
}
