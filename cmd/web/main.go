package main

import (
	"context"
	"flag"
	"html/template"
	"log"
	"net/http"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/drahman/folio-web/internal/config"
	"github.com/drahman/folio-web/internal/content"
	"github.com/drahman/folio-web/internal/ui"
)

var (
	cfg          *config.Config
	templatesDir = "templates"
	publicDir    = "public"
	// devMode reparses templates and reloads documents per request
	devMode    bool
	tmplCache  *template.Template
	store      *content.Store
	uiSettings = ui.Default()
)

func main() {
	cfgPath := flag.String("config", "folio.yml", "config file path")
	flag.Parse()

	var err error
	cfg, err = config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := newLogger(cfg.Dev)
	defer func() { _ = logger.Sync() }()

	devMode = cfg.Dev
	templatesDir = cfg.TemplatesDir
	publicDir = cfg.PublicDir

	if !devMode {
		// Parse templates once in production
		tc, err := parseTemplates()
		if err != nil {
			logger.Fatal("parse templates", zap.Error(err))
		}
		tmplCache = tc
	}

	store = content.NewStore(cfg.DataDir, logger.Named("content"))
	store.Load(context.Background())

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newRouter(logger),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("web listening", zap.String("addr", cfg.Addr), zap.Bool("dev", devMode))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("listen", zap.Error(err))
	}
}

func newLogger(dev bool) *zap.Logger {
	if dev {
		l, err := zap.NewDevelopment()
		if err != nil {
			log.Fatalf("init logger: %v", err)
		}
		return l
	}
	l, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	return l
}
