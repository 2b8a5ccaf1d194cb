// Package cli implements the trendctl command line tool.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"trend-srv/internal/analysis"
	"trend-srv/internal/model"
	"trend-srv/internal/source"
)

const Version = "1.0.0"

// AnalyzerFactory builds the pipeline once the flags are parsed.
type AnalyzerFactory func(ctx context.Context, debug bool) (analysis.Analyzer, error)

// NewRootCmd creates the root command
func NewRootCmd(out io.Writer, factory AnalyzerFactory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "trendctl",
		Short: "trendctl - Product sentiment and trend analysis",
		Long: `trendctl runs the product trend pipeline locally: it gathers mentions from
the configured sources, estimates sentiment, forecasts sales and predicts the trend.`,
		SilenceUsage: true,
	}
	rootCmd.SetOut(out)

	// Add subcommands
	rootCmd.AddCommand(newAnalyzeCmd(factory))
	rootCmd.AddCommand(newSourcesCmd())
	rootCmd.AddCommand(newVersionCmd())

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	return rootCmd
}

// newAnalyzeCmd creates the analyze command
func newAnalyzeCmd(factory AnalyzerFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [--product PRODUCT | PRODUCT]",
		Short: "Analyze sentiment and trend for a product",
		Long: `Run the full analysis pipeline for a product and print the report as JSON.
Example: trendctl analyze --product "iPhone 15" --sources reddit,news --pretty`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			product, _ := cmd.Flags().GetString("product")
			if product == "" && len(args) == 1 {
				product = args[0]
			}
			debug, _ := cmd.Flags().GetBool("debug")
			sources, _ := cmd.Flags().GetStringSlice("sources")
			pretty, _ := cmd.Flags().GetBool("pretty")
			timeout, _ := cmd.Flags().GetDuration("timeout")

			return runAnalyzeCommand(cmd.Context(), cmd.OutOrStdout(), factory, analyzeOptions{
				product: product,
				sources: sources,
				pretty:  pretty,
				timeout: timeout,
				debug:   debug,
			})
		},
	}

	// Analyze command flags
	cmd.Flags().String("product", "", "Product name to analyze")
	cmd.Flags().StringSlice("sources", []string{model.SourceDefault}, "Comma separated source ids")
	cmd.Flags().Bool("pretty", false, "Indent the JSON output")
	cmd.Flags().Duration("timeout", 2*time.Minute, "Overall analysis deadline")

	return cmd
}

// newSourcesCmd creates the sources command
func newSourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List the supported data sources",
		Run: func(cmd *cobra.Command, args []string) {
			for _, info := range source.Catalog() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-14s %-14s %s\n", info.ID, info.Name, info.Description)
			}
		},
	}
}

// newVersionCmd creates the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "trendctl v%s\n", Version)
		},
	}
}

type analyzeOptions struct {
	product string
	sources []string
	pretty  bool
	timeout time.Duration
	debug   bool
}

// runAnalyzeCommand executes the analysis workflow and writes the report.
func runAnalyzeCommand(ctx context.Context, out io.Writer, factory AnalyzerFactory, opts analyzeOptions) error {
	product := strings.TrimSpace(opts.product)
	if product == "" {
		return analysis.ErrProductRequired
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	analyzer, err := factory(ctx, opts.debug)
	if err != nil {
		return fmt.Errorf("failed to build pipeline: %w", err)
	}

	report := analyzer.Analyze(ctx, product, opts.sources)

	var data []byte
	if opts.pretty {
		data, err = json.MarshalIndent(report, "", "  ")
	} else {
		data, err = json.Marshal(report)
	}
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
