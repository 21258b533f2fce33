package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"skyscraper/mcgd/indicator"
)

type Flags struct {
	Length     int
	C          float64
	Offset     int
	Fill       float64
	FillMethod string
	Round      int32
	LogLevel   string
	Debug      bool
}

var flags Flags

var rootCmd = &cobra.Command{
	Use:   "mcgd",
	Short: "McGinley Dynamic indicator over close price series",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetOutput(os.Stderr)
		if flags.Debug {
			log.SetLevel(log.DebugLevel)
			return nil
		}
		logLevel, err := log.ParseLevel(flags.LogLevel)
		if err != nil {
			return errors.Wrap(err, "Failed to parse log level")
		}
		log.SetLevel(logLevel)
		return nil
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flags.Length, "length", "n", indicator.DefaultLength, "indicator period (non-positive falls back to 10)")
	rootCmd.PersistentFlags().Float64Var(&flags.C, "c", indicator.DefaultC, "denominator multiplier in (0, 1] (invalid falls back to 1)")
	rootCmd.PersistentFlags().IntVar(&flags.Offset, "offset", 0, "shift the result by this many periods")
	rootCmd.PersistentFlags().Float64Var(&flags.Fill, "fill", 0, "fill gaps with this literal value")
	rootCmd.PersistentFlags().StringVar(&flags.FillMethod, "fill-method", "", "fill gaps by strategy (ffill, bfill)")
	rootCmd.PersistentFlags().Int32Var(&flags.Round, "round", 4, "decimal places in printed values")

	// Debug mode
	rootCmd.PersistentFlags().BoolVarP(&flags.Debug, "debug", "d", false, "Debug mode")
	// log level
	rootCmd.PersistentFlags().StringVarP(&flags.LogLevel, "loglevel", "l", "info", "Log level (debug, info, warn, error, fatal)")
}

// params assembles indicator parameters from the command line. --fill and
// --fill-method are mutually exclusive.
func params(cmd *cobra.Command) (indicator.Params, error) {
	p := indicator.Params{
		Length: flags.Length,
		C:      flags.C,
		Offset: flags.Offset,
	}

	literal := cmd.Flags().Changed("fill")
	method := cmd.Flags().Changed("fill-method")
	if literal && method {
		return p, errors.New("--fill and --fill-method are mutually exclusive")
	}
	if literal {
		p.Fill = &indicator.Fill{Method: indicator.FillValue, Value: flags.Fill}
	}
	if method {
		switch flags.FillMethod {
		case "ffill":
			p.Fill = &indicator.Fill{Method: indicator.FillForward}
		case "bfill":
			p.Fill = &indicator.Fill{Method: indicator.FillBackward}
		default:
			return p, errors.Errorf("unknown fill method %q", flags.FillMethod)
		}
	}
	return p, nil
}
