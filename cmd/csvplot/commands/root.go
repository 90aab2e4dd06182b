// Package commands implements the csvplot command line.
package commands

import (
	"fmt"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ukaji3/csvplot-go/pkg/csvplot"
)

// DisplayFactory creates the display a chart is shown on.
type DisplayFactory func(opts csvplot.Options) csvplot.Display

// NewRootCmd creates the csvplot root command. Charts are shown on the
// display returned by newDisplay.
func NewRootCmd(newDisplay DisplayFactory) *cobra.Command {
	var (
		verbose   bool
		delimiter string
		opts      = csvplot.DefaultOptions()
	)

	cmd := &cobra.Command{
		Use:   "csvplot [input.csv]",
		Short: "Plot the numeric columns of a CSV file on a log scale",
		Long: `csvplot reads a CSV file (or an Excel workbook) with a header row and
shows a line chart of every numeric column against the row index, with a
logarithmic y-axis. The command returns when the chart window is closed.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Configure log level
			if verbose {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.InfoLevel)
			}
			log.SetOutput(cmd.ErrOrStderr())

			comma, err := parseDelimiter(delimiter)
			if err != nil {
				return err
			}
			opts.Comma = comma

			return csvplot.Render(args[0], opts, newDisplay(opts))
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Increase logging verbosity")
	cmd.Flags().StringVar(&opts.Title, "title", "", "Chart title")
	cmd.Flags().StringVar(&opts.Sheet, "sheet", "", "Workbook sheet to plot (default: first sheet)")
	cmd.Flags().StringVar(&delimiter, "delimiter", string(opts.Comma), "Field delimiter for delimited text input")
	cmd.Flags().IntVar(&opts.Width, "width", opts.Width, "Initial window width in pixels")
	cmd.Flags().IntVar(&opts.Height, "height", opts.Height, "Initial window height in pixels")

	return cmd
}

// parseDelimiter accepts a single character, or the escape `\t` for tab.
func parseDelimiter(s string) (rune, error) {
	if s == `\t` {
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %q must be a single character", csvplot.ErrInvalidDelimiter, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
