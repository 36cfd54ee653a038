// Package main provides the CLI entrypoint for the subdomain enumeration service.
// The root command performs a one-shot enumeration; subcommands (serve, migrate,
// jwt) run the HTTP API with background workers and its supporting tooling.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"subenum/internal/config"
	"subenum/internal/enumerator"
	"subenum/pkg/ctsearch/censys"
	"subenum/pkg/logger"
	"subenum/pkg/storage/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// newCensysClient builds the certificate-search client from config, letting
// command-line flags override the configured (or environment-provided)
// credentials. Missing credentials is an error: the provider rejects
// unauthenticated searches anyway, so fail early with a usable message.
func newCensysClient(cfg *config.Config, apiID, apiSecret string) (*censys.Client, error) {
	if apiID == "" {
		apiID = cfg.Censys.APIID
	}
	if apiSecret == "" {
		apiSecret = cfg.Censys.APISecret
	}
	if apiID == "" || apiSecret == "" {
		return nil, fmt.Errorf("missing Censys credentials: " +
			"pass --censys-api-id/--censys-api-secret or set CENSYS_API_ID/CENSYS_API_SECRET")
	}

	return censys.New(&http.Client{Timeout: cfg.Censys.Timeout}, apiID, apiSecret), nil
}

// runEnumerate performs the one-shot enumeration: a single certificate search
// for the given domain, hostnames printed one per line to stdout and
// optionally written to outputPath.
func runEnumerate(cmd *cobra.Command, cfg *config.Config, rawDomain string) error {
	apiID, _ := cmd.Flags().GetString("censys-api-id")
	apiSecret, _ := cmd.Flags().GetString("censys-api-secret")
	outputPath, _ := cmd.Flags().GetString("output")

	client, err := newCensysClient(cfg, apiID, apiSecret)
	if err != nil {
		return err
	}

	result, _, err := enumerator.Discover(cmd.Context(), client, rawDomain)
	if err != nil {
		return err
	}

	for _, host := range result.Subdomains {
		fmt.Println(host) //nolint: forbidigo
	}

	if outputPath != "" {
		content := strings.Join(result.Subdomains, "\n")
		if content != "" {
			content += "\n"
		}
		if err := os.WriteFile(outputPath, []byte(content), 0o600); err != nil {
			return fmt.Errorf("could not write output file: %w", err)
		}
	}

	return nil
}

// configPathFromArgs extracts the config file path from raw arguments. Cobra
// does not expose flag values before command execution, and the standard flag
// package stops at the first unknown flag, so the path is scanned manually.
func configPathFromArgs(args []string) string {
	configPath := "config.yml"
	for i, arg := range args {
		switch {
		case arg == "-c" || arg == "--config":
			if i+1 < len(args) {
				configPath = args[i+1]
			}
		case strings.HasPrefix(arg, "--config="):
			configPath = strings.TrimPrefix(arg, "--config=")
		}
	}

	return configPath
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	log.Println("loading config ...")
	cfg, err := config.Load(configPathFromArgs(os.Args[1:]))
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	logger.Setup(cfg.Environment)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd := &cobra.Command{
		Use:          "subenum [flags] domain",
		Short:        "Enumerates subdomains of a domain from certificate-transparency data",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnumerate(cmd, cfg, args[0])
		},
	}
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")
	rootCmd.Flags().StringP("output", "o", "", "Also write discovered subdomains to this file")
	rootCmd.Flags().String("censys-api-id", "", "Censys API ID (falls back to CENSYS_API_ID)")
	rootCmd.Flags().String("censys-api-secret", "", "Censys API secret (falls back to CENSYS_API_SECRET)")

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		JWTCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
