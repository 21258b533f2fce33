package cmd

import (
	"fmt"
	"math"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"skyscraper/mcgd/indicator"
	"skyscraper/mcgd/stream"
)

var streamCmd = &cobra.Command{
	Use:   "stream <symbol>",
	Short: "Stream live trades and print one indicator value per trade",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := params(cmd)
		if err != nil {
			return err
		}
		if p.Offset != 0 || p.Fill != nil {
			return errors.New("--offset and fill options only apply to batch output")
		}
		// Each value depends only on the adjacent raw price pair, so the
		// stream can be folded one trade at a time with no carried state
		// beyond the previous price.
		length, c := indicator.NormalizeParams(p.Length, p.C)

		prices, err := stream.Trades(args[0])
		if err != nil {
			return err
		}

		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt)

		prev := math.NaN()
		for {
			select {
			case price, ok := <-prices:
				if !ok {
					return errors.New("data stream closed")
				}
				var v float64
				if math.IsNaN(prev) {
					// first observation: the indicator starts at the price
					v = price
				} else {
					v = indicator.Step(prev, price, length, c)
				}
				fmt.Printf("%s\t%s\n", formatValue(price, flags.Round), formatValue(v, flags.Round))
				prev = price
			case <-interrupt:
				return nil
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(streamCmd)
}
