package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"imagecheck/internal/modules/checker"
	"imagecheck/internal/modules/filereader"
	"imagecheck/internal/modules/pipeline"
	"imagecheck/internal/modules/reporter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var (
	urlsPath string
	timeout  time.Duration
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "imagecheck",
	Short: "Check that image URLs are reachable and report their content type",
	Long: `Sends one GET request per image URL, with a browser User-Agent and
certificate verification disabled, and prints a tab-separated line per URL:

  OK<TAB>status<TAB>content-type<TAB>url
  ERROR<TAB>description<TAB>url

Without --file the built-in image list is checked. Failed URLs never change
the exit status.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. level is raised or lowered by --log-level.
func Execute(ctx context.Context, logger *zap.Logger, level zap.AtomicLevel) {
	configure(ctx, logger, level)
	if err := rootCmd.Execute(); err != nil {
		logger.Error("execution failed", zap.Error(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&urlsPath, "file", "f", "", "CSV or YAML file with URLs to check instead of the built-in list")
	rootCmd.Flags().DurationVarP(&timeout, "timeout", "t", checker.DefaultTimeout, "Per-request timeout")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	pflag.CommandLine.AddFlagSet(rootCmd.Flags())
}

func configure(ctx context.Context, logger *zap.Logger, level zap.AtomicLevel) {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := level.UnmarshalText([]byte(logLevel)); err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
		}
		return nil
	}
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return run(ctx, cmd, logger)
	}
}

func run(ctx context.Context, cmd *cobra.Command, logger *zap.Logger) error {
	source := filereader.FromList(filereader.DefaultURLs)
	if urlsPath != "" {
		source = filereader.New(urlsPath)
	}

	logger.Info("starting URL checks",
		zap.String("file", urlsPath),
		zap.Duration("timeout", timeout))

	// The trust policy is built once and only handed to this run's checker.
	check := checker.New(checker.Options{
		Timeout:   timeout,
		UserAgent: checker.DefaultUserAgent,
		Trust:     checker.TrustEverything(),
	}, logger)

	p := pipeline.New(logger).
		AddStage(source).
		AddStage(check).
		AddStage(reporter.New(cmd.OutOrStdout()))

	input := make(chan interface{})
	close(input)

	if err := p.Run(ctx, input); err != nil {
		return fmt.Errorf("check urls: %w", err)
	}
	logger.Info("processing completed gracefully")
	return nil
}
