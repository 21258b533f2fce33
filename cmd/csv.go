package cmd

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"skyscraper/mcgd/indicator"
)

var csvCmd = &cobra.Command{
	Use:   "csv <file>",
	Short: "Compute the indicator over close prices from a CSV file ('-' for stdin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var r io.Reader = os.Stdin
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, "Failed to open close series")
			}
			defer f.Close()
			r = f
		}

		closes, err := readCloses(r)
		if err != nil {
			return err
		}

		p, err := params(cmd)
		if err != nil {
			return err
		}
		s := indicator.McGinleyDynamic(closes, p)
		if s == nil {
			length, _ := indicator.NormalizeParams(p.Length, p.C)
			return errors.Errorf("need at least %d closes, got %d", length, len(closes))
		}
		printSeries(closes, s)
		return nil
	},
}

// readCloses parses one close per record, using the last field of each row.
// A first row that does not parse is treated as a header.
func readCloses(r io.Reader) ([]float64, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "Failed to read close series")
	}

	var closes []float64
	for i, record := range records {
		if len(record) == 0 {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(record[len(record)-1]), 64)
		if err != nil {
			if i == 0 {
				continue
			}
			return nil, errors.Wrapf(err, "Failed to parse close at row %d", i+1)
		}
		closes = append(closes, v)
	}
	return closes, nil
}

func init() {
	rootCmd.AddCommand(csvCmd)
}
