// Command piptrade-chart fetches the dataset once and writes the filtered chart
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"piptrade/internal/client"
	"piptrade/internal/core/filter"
	"piptrade/internal/platform/config"
	"piptrade/internal/platform/logger"
)

var (
	flagURL    string
	flagOut    string
	flagFormat string
	flagOpts   bool

	criteria = map[filter.Key]*string{}
)

var rootCmd = &cobra.Command{
	Use:   "piptrade-chart",
	Short: "Render the intensity by topic chart for a filtered record set",
	Long: `Render the intensity by topic chart for a filtered record set.

Usage:
  piptrade-chart --topic gas --out gas.svg
  piptrade-chart --region Asia --format json
  piptrade-chart --options

Every filter flag is optional; an empty value leaves that field unconstrained.`,
	Args:          cobra.NoArgs,
	RunE:          runChart,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVar(&flagURL, "url", "http://localhost:6000", "base URL of a running piptrade-api")
	rootCmd.Flags().StringVarP(&flagOut, "out", "o", "-", "output file, - for stdout")
	rootCmd.Flags().StringVar(&flagFormat, "format", formatSVG, "output format: svg | json")
	rootCmd.Flags().BoolVar(&flagOpts, "options", false, "print the selectable values per filter and exit")
	for _, k := range filter.Keys() {
		v := new(string)
		criteria[k] = v
		rootCmd.Flags().StringVar(v, string(k), "", fmt.Sprintf("only records whose %s equals this value", k.Field()))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func runChart(cmd *cobra.Command, _ []string) error {
	config.LoadDotEnv()
	if flagFormat != formatSVG && flagFormat != formatJSON {
		return fmt.Errorf("unknown format %q, want svg or json", flagFormat)
	}

	s := client.NewSession(client.New(client.Options{BaseURL: flagURL, UserAgent: "piptrade-chart"}))
	s.Load(cmd.Context())

	c := filter.Criteria{}
	for k, v := range criteria {
		c = c.With(k, *v)
	}
	s.SetCriteria(c)

	w, closeOut, err := openOut(flagOut)
	if err != nil {
		return err
	}
	defer closeOut()

	if flagOpts {
		return writeOptions(w, s)
	}
	if err := write(w, s, flagFormat); err != nil {
		return err
	}

	logger.Named("chart").Info().
		Int("records", len(s.Records())).
		Int("visible", len(s.Visible())).
		Strs("active", keyNames(c.Active())).
		Str("out", flagOut).
		Msg("chart written")
	return nil
}
