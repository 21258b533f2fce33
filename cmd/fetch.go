package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"skyscraper/mcgd/feed"
	"skyscraper/mcgd/indicator"
)

var fetchDays int

var fetchCmd = &cobra.Command{
	Use:   "fetch <symbol>",
	Short: "Fetch daily closes from alpaca and compute the indicator",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		symbol := args[0]
		closes, err := feed.Closes(feed.NewClient(), symbol, fetchDays)
		if err != nil {
			return err
		}
		log.Debug("fetched daily closes", "symbol", symbol, "bars", len(closes))

		p, err := params(cmd)
		if err != nil {
			return err
		}
		s := indicator.McGinleyDynamic(closes, p)
		if s == nil {
			length, _ := indicator.NormalizeParams(p.Length, p.C)
			return errors.Errorf("%s: only %d daily closes available, need at least %d", symbol, len(closes), length)
		}
		printSeries(closes, s)
		return nil
	},
}

func init() {
	fetchCmd.Flags().IntVar(&fetchDays, "days", 90, "trailing calendar days of daily bars")
	rootCmd.AddCommand(fetchCmd)
}
