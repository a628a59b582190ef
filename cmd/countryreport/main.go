package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/countryreport/internal/adapters/fs"
	logAdapter "github.com/bft-labs/countryreport/internal/adapters/log"
	"github.com/bft-labs/countryreport/internal/adapters/s3store"
	"github.com/bft-labs/countryreport/internal/app"
	"github.com/bft-labs/countryreport/internal/cliconfig"
	"github.com/bft-labs/countryreport/internal/domain"
	"github.com/bft-labs/countryreport/internal/ports"
)

const longHelp = `Read country names, one per line, and write a report of sixteen
fixed analyses (length filters, prefix and suffix checks, sorting, grouping
by first letter, longest and shortest names, case transforms and existence
checks) to a text file.

Every run starts from an empty report. I/O failures are logged and the run
carries on with the remaining sections.

Configuration is read from flags, COUNTRYREPORT_* environment variables and
$HOME/.countryreport/config.toml, in that order of precedence.`

var exampleUsage = strings.TrimSpace(`
  countryreport
  countryreport --input countries.txt --root-dir out --blank-lines skip --summary
  countryreport --watch --input countries.txt
  countryreport --publish-bucket reports --publish-endpoint https://<account>.r2.cloudflarestorage.com
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := logAdapter.NewConsoleLogger(os.Stderr, zerolog.InfoLevel)

	root := &cobra.Command{
		Use:           "countryreport",
		Short:         "Generate a country name report from a text file",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			// Environment overrides the file; flags override both (changed map).
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			level, _ := logAdapter.ParseLevel(cfg.LogLevel)
			log = log.Level(level)
			log.Debug().Interface("config", cfg.Redacted()).Msg("configuration")

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return run(ctx, cfg, logAdapter.NewZerologAdapter(log))
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.countryreport/config.toml)")
	root.Flags().StringVar(&cfg.InputPath, "input", cfg.InputPath, "input file with one country name per line")
	root.Flags().StringVar(&cfg.RootDir, "root-dir", cfg.RootDir, "report root directory")
	root.Flags().StringVar(&cfg.SubDir, "sub-dir", cfg.SubDir, "report directory nested under root-dir")
	root.Flags().StringVar(&cfg.FileName, "file-name", cfg.FileName, "report file name")
	root.Flags().StringVar(&cfg.BlankLines, "blank-lines", cfg.BlankLines, "blank input lines: abort or skip")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")

	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "re-run whenever the input file changes")
	root.Flags().DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "quiet period after an input change before re-running")
	root.Flags().BoolVar(&cfg.Summary, "summary", cfg.Summary, "print a run summary table to stdout")

	root.Flags().StringVar(&cfg.PublishBucket, "publish-bucket", cfg.PublishBucket, "upload the report to this S3 bucket")
	root.Flags().StringVar(&cfg.PublishKey, "publish-key", cfg.PublishKey, "object key for the uploaded report (defaults to file-name)")
	root.Flags().StringVar(&cfg.PublishEndpoint, "publish-endpoint", cfg.PublishEndpoint, "custom S3 endpoint (R2, MinIO)")
	root.Flags().StringVar(&cfg.PublishRegion, "publish-region", cfg.PublishRegion, "S3 region")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("countryreport")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg cliconfig.Config, logger *logAdapter.ZerologAdapter) error {
	policy, err := domain.ParseBlankLinePolicy(cfg.BlankLines)
	if err != nil {
		return err
	}

	var publisher ports.ReportPublisher
	if cfg.PublishBucket != "" {
		p, err := s3store.NewPublisher(ctx, s3store.Config{
			Bucket:          cfg.PublishBucket,
			Key:             cfg.PublishKey,
			Endpoint:        cfg.PublishEndpoint,
			Region:          cfg.PublishRegion,
			AccessKeyID:     cfg.AccessKeyID,
			SecretAccessKey: cfg.SecretAccessKey,
		}, logger)
		if err != nil {
			return fmt.Errorf("create publisher: %w", err)
		}
		publisher = p
	}

	pipeline := app.NewPipeline(
		app.PipelineConfig{
			InputPath: cfg.InputPath,
			RootDir:   cfg.RootDir,
			SubDir:    cfg.SubDir,
			FileName:  cfg.FileName,
		},
		fs.NewCountryFileLoader(policy, logger),
		fs.NewReportFile(logger),
		publisher,
		logger,
	)

	report := func(res app.Result, err error) {
		if err == nil && cfg.Summary {
			app.RenderSummary(os.Stdout, res)
		}
	}

	if cfg.Watch {
		w := app.NewWatcher(pipeline, cfg.InputPath, cfg.Debounce, logger, report)
		if err := w.Run(ctx); err != nil {
			return err
		}
		logger.Info("received signal, stopped watching")
		return nil
	}

	res, err := pipeline.Run(ctx)
	report(res, err)
	return err
}
