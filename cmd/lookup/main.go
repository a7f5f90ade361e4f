package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/JoeyWangTW/model-lookup/internal/cache"
	"github.com/JoeyWangTW/model-lookup/internal/catalog"
	"github.com/JoeyWangTW/model-lookup/internal/config"
	"github.com/JoeyWangTW/model-lookup/internal/diff"
	"github.com/JoeyWangTW/model-lookup/internal/fetch"
	"github.com/JoeyWangTW/model-lookup/internal/httpclient"
	"github.com/JoeyWangTW/model-lookup/internal/logging"
	"github.com/JoeyWangTW/model-lookup/internal/match"
	"github.com/JoeyWangTW/model-lookup/internal/render"
	"github.com/JoeyWangTW/model-lookup/internal/translate"
)

var cfgFile string

func main() {
	var (
		listProvider string
		noCache      bool
		limit        int
	)

	rootCmd := &cobra.Command{
		Use:   "lookup <term> [<term>...]",
		Short: "Find model IDs in the OpenRouter catalog",
		Long: "Searches the OpenRouter model catalog and prints matching models\n" +
			"with their provider-native IDs. Results are cached locally for an hour.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listProvider == "" && len(args) == 0 {
				return errors.New("provide search terms or --list <provider>")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logging.Init(cfg.LogLevel)
			cmd.SilenceUsage = true

			f := newFetcher(cfg, noCache)
			models, _, err := f.Catalog(cmd.Context())
			if err != nil {
				return err
			}

			if listProvider != "" {
				matches := match.ListProvider(models, listProvider)
				if len(matches) == 0 {
					fmt.Print(render.NoProviderResults(listProvider))
					return nil
				}
				fmt.Print(render.ProviderList(listProvider, matches))
				return nil
			}

			if limit <= 0 {
				limit = cfg.MaxResults
			}
			matches := match.Search(models, args, limit)
			if len(matches) == 0 {
				fmt.Print(render.NoResults(args))
				return nil
			}
			fmt.Print(render.Results(args, matches))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")
	rootCmd.Flags().StringVar(&listProvider, "list", "", "List all models for a provider instead of searching")
	rootCmd.Flags().BoolVar(&noCache, "no-cache", false, "Bypass the snapshot cache")
	rootCmd.Flags().IntVar(&limit, "limit", 0, "Maximum search results (default: from config)")

	rootCmd.AddCommand(
		providersCmd(),
		refreshCmd(),
		diffCmd(),
		exportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func providersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List providers with native ID translation rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range translate.Providers() {
				fmt.Println(p)
			}
			return nil
		},
	}
}

func refreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Force a catalog fetch and rewrite the snapshot cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logging.Init(cfg.LogLevel)
			cmd.SilenceUsage = true

			f := newFetcher(cfg, false)
			models, err := f.Refresh(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("Fetched %d models to %s\n", len(models), cfg.CachePath)
			return nil
		},
	}
}

func diffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "Show catalog changes since the cached snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logging.Init(cfg.LogLevel)
			cmd.SilenceUsage = true

			snap, err := cache.NewFileStore(cfg.CachePath).Load()
			if err != nil {
				if os.IsNotExist(err) {
					return errors.New("no cached snapshot to compare against; run refresh first")
				}
				return fmt.Errorf("loading snapshot: %w", err)
			}

			f := newFetcher(cfg, false)
			models, err := f.Refresh(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Print(diff.Compute(snap.Models, models).Render(snap.FetchedAt))
			return nil
		},
	}
}

// exportDoc is the envelope written by the export command.
type exportDoc struct {
	FetchedVia string          `json:"fetched_via" yaml:"fetched_via"`
	Count      int             `json:"count" yaml:"count"`
	Models     []catalog.Entry `json:"models" yaml:"models"`
}

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Dump the current catalog as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logging.Init(cfg.LogLevel)
			cmd.SilenceUsage = true

			format, _ := cmd.Flags().GetString("format")
			output, _ := cmd.Flags().GetString("output")

			f := newFetcher(cfg, false)
			models, origin, err := f.Catalog(cmd.Context())
			if err != nil {
				return err
			}

			doc := exportDoc{FetchedVia: string(origin), Count: len(models), Models: models}
			var data []byte
			switch format {
			case "yaml":
				data, err = yaml.Marshal(doc)
			case "json":
				data, err = json.MarshalIndent(doc, "", "  ")
			default:
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}
			if err != nil {
				return fmt.Errorf("encoding catalog: %w", err)
			}

			if output == "" || output == "-" {
				_, err := os.Stdout.Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			slog.Info("catalog exported", "path", output, "models", len(models))
			return nil
		},
	}

	cmd.Flags().String("format", "json", "Output format: json or yaml")
	cmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")

	return cmd
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func newFetcher(cfg *config.Config, noCache bool) *fetch.Fetcher {
	opts := []httpclient.Option{
		httpclient.WithTimeout(cfg.Timeout()),
		httpclient.WithRateLimit(10), // 10 RPS
	}
	if cfg.APIKey != "" {
		opts = append(opts, httpclient.WithAuthToken(cfg.APIKey))
	}
	client := httpclient.New(opts...)

	store := cache.NewFileStore(cfg.CachePath)

	return fetch.New(fetch.Config{
		Endpoint: cfg.Endpoint,
		TTL:      cfg.TTL(),
		NoCache:  noCache || cfg.NoCache,
	}, client, store)
}
