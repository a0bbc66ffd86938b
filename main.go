package main

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/technomonkey-7/ugc-portfolio/internal/cache"
	"github.com/technomonkey-7/ugc-portfolio/internal/config"
	"github.com/technomonkey-7/ugc-portfolio/internal/content"
	"github.com/technomonkey-7/ugc-portfolio/internal/imageurl"
	"github.com/technomonkey-7/ugc-portfolio/internal/logger"
	"github.com/technomonkey-7/ugc-portfolio/internal/sanity"
	"github.com/technomonkey-7/ugc-portfolio/server"
)

var (
	version = "dev"
)

//go:embed templates/*.html
var templatesFiles embed.FS

//go:embed static
var staticFiles embed.FS

var rootCmd = &cobra.Command{
	Use:          "portfolio",
	Short:        "UGC portfolio site backed by a Sanity content store",
	Version:      version,
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the website",
	RunE:  runServe,
}

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Fetch every section once and print where its content came from",
	RunE:  runContent,
}

func main() {
	rootCmd.SetVersionTemplate(server.FormatBuildVersion(version) + "\n")
	rootCmd.AddCommand(serveCmd, contentCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type app struct {
	cfg     *config.Config
	content *content.Service
	flush   func()
}

func setup() (*app, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	log, flush, err := logger.New(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(log)

	client, err := sanity.NewClient(sanity.Config{
		ProjectID:  cfg.Sanity.ProjectID,
		Dataset:    cfg.Sanity.Dataset,
		APIVersion: cfg.Sanity.APIVersion,
		Token:      cfg.Sanity.Token,
		UseCDN:     cfg.Sanity.UseCDN,
		Timeout:    cfg.Sanity.Timeout,
	}, sanity.WithCache(cache.NewCache(cfg.Cache.TTL)))
	if err != nil {
		flush()
		return nil, fmt.Errorf("failed to create content store client: %w", err)
	}

	defaults, err := content.LoadDefaults(cfg.Content.DefaultsFile)
	if err != nil {
		flush()
		return nil, fmt.Errorf("failed to load content defaults: %w", err)
	}

	images := imageurl.New(cfg.Sanity.ProjectID, cfg.Sanity.Dataset)

	return &app{
		cfg:     cfg,
		content: content.NewService(client, images, defaults),
		flush:   flush,
	}, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.flush()

	tmpl, err := template.New("").ParseFS(templatesFiles, "templates/*.html")
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}
	assets := http.FS(staticFiles)

	srv := server.NewServer(version, a.cfg.ServerAddr(), assets, tmpl.ExecuteTemplate, a.content, a.cfg.Server.RequestsPerMinute)

	go srv.Start()

	slog.Info("Started server",
		slog.String("listen_addr", a.cfg.ServerAddr()),
		slog.String("version", version),
		slog.String("dataset", a.cfg.Sanity.Dataset),
	)
	si := make(chan os.Signal, 1)
	signal.Notify(si, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-si
	slog.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

func runContent(cmd *cobra.Command, _ []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.flush()

	return content.WriteReport(cmd.OutOrStdout(), a.content.Report(cmd.Context()))
}
