package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/ps-broker/osb-gateway/api/config"
	"github.com/ps-broker/osb-gateway/api/handlers"
	"github.com/ps-broker/osb-gateway/api/middleware"
	"github.com/ps-broker/osb-gateway/api/routing"
	"github.com/ps-broker/osb-gateway/globalcatalog"
	"github.com/ps-broker/osb-gateway/provisioning"
	"github.com/ps-broker/osb-gateway/version"

	"github.com/blendle/zapdriver"
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
)

const imagesMountPath = "/images"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("configuration could not be loaded: %v", err))
	}

	logger, err := newLogger(cfg)
	if err != nil {
		panic(fmt.Sprintf("could not create logger: %v", err))
	}

	tokenProvider, err := globalcatalog.NewIAMTokenProvider(cfg.IAMTokenURL, cfg.IAMAPIKey)
	if err != nil {
		panic(fmt.Sprintf("could not create token provider: %v", err))
	}

	catalogClient, err := globalcatalog.NewClient(cfg.GlobalCatalogURL)
	if err != nil {
		panic(fmt.Sprintf("could not create catalog client: %v", err))
	}

	lifecycleClient, err := provisioning.NewClient(cfg.BrokerBackendURL, tokenProvider)
	if err != nil {
		panic(fmt.Sprintf("could not create provisioning client: %v", err))
	}

	decoderValidator := handlers.NewDefaultDecoderValidator()

	routerBuilder := routing.NewRouterBuilder()
	routerBuilder.UseMiddleware(
		middleware.Correlation(logger),
		middleware.HTTPLogging,
		middleware.BrokerAPIVersion(versionExemptPrefixes(cfg)),
	)

	routerBuilder.LoadRoutes(handlers.NewRoot(cfg.Environment, cfg.RootPath))

	for _, line := range cfg.ProductLines() {
		broker, err := handlers.NewBroker(
			line.Prefix,
			line.CatalogID,
			tokenProvider,
			catalogClient,
			lifecycleClient,
			decoderValidator,
		)
		if err != nil {
			panic(fmt.Sprintf("could not build route set for %q: %v", line.Prefix, err))
		}
		routerBuilder.LoadRoutes(broker)
	}

	ensureImagesDir(logger, cfg.ImagesDir)
	routerBuilder.Mount(imagesMountPath, http.StripPrefix(imagesMountPath, http.FileServer(http.Dir(cfg.ImagesDir))))

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           routerBuilder.Build(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("starting broker API gateway", "version", version.Version, "addr", cfg.ListenAddr, "environment", cfg.Environment)
	if err := server.ListenAndServe(); err != nil {
		logger.Error(err, "server shut down")
		os.Exit(1)
	}
}

func newLogger(cfg config.Config) (logr.Logger, error) {
	var (
		zapLogger *zap.Logger
		err       error
	)
	if cfg.IsDevelopment() {
		zapLogger, err = zap.NewDevelopment()
	} else {
		zapLogger, err = zapdriver.NewProduction()
	}
	if err != nil {
		return logr.Logger{}, err
	}

	return zapr.NewLogger(zapLogger), nil
}

// versionExemptPrefixes lists the path prefixes that bypass the broker API
// version gate, in evaluation order. Per product line status probes stay
// reachable without the header.
func versionExemptPrefixes(cfg config.Config) []string {
	prefixes := []string{"/docs", "/openapi.json", imagesMountPath}
	if cfg.RootPath != "" {
		prefixes = append(prefixes, cfg.RootPath+imagesMountPath)
	}
	for _, line := range cfg.ProductLines() {
		prefixes = append(prefixes, "/"+line.Prefix+"/status")
	}
	return prefixes
}

func ensureImagesDir(logger logr.Logger, dir string) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Error(err, "could not create images directory", "dir", dir)
		return
	}
	logger.Info("serving static images", "dir", dir, "mountPath", imagesMountPath)
}
