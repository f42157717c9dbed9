package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"docanalyzer-backend/internal/analyses"
	"docanalyzer-backend/internal/analyzer"
	"docanalyzer-backend/internal/documents"
	"docanalyzer-backend/internal/registry"
	"docanalyzer-backend/internal/shared/config"
	"docanalyzer-backend/internal/shared/server"
	"docanalyzer-backend/internal/shared/storage/db"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	DocumentsRepo documents.Repo
	AnalysesRepo  analyses.Repo

	DocumentsService *documents.Service
	RegistryService  *registry.Service
	AnalyzerService  *analyzer.Service
}

// Build prepares shared dependencies and wires routes. With no
// DATABASE_URL in a dev-like environment it falls back to in-memory
// stores, which is also how handler tests run.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg, DB: sqlDB}
	buildServices(app)

	app.Router = server.NewRouter(cfg,
		registry.NewHandler(app.RegistryService),
		documents.NewHandler(app.DocumentsService),
		analyzer.NewHandler(app.AnalyzerService),
	)
	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory stores")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory stores: %v", err)
			return nil, nil
		}
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildServices(app *App) {
	if app.DB != nil {
		app.DocumentsRepo = &documents.PGRepo{DB: app.DB}
		app.AnalysesRepo = &analyses.PGRepo{DB: app.DB}
	} else {
		docMem := documents.NewMemoryRepo()
		analysisMem := analyses.NewMemoryRepo(docMem)
		// Mirror the FK cascade the Postgres schema provides.
		docMem.Cascade = analysisMem.DeleteForDocument
		app.DocumentsRepo = docMem
		app.AnalysesRepo = analysisMem
	}

	llm := analyzer.Client(analyzer.PlaceholderClient{})
	if strings.TrimSpace(app.Config.OpenAIAPIKey) != "" {
		client, err := analyzer.NewOpenAIClient(app.Config.OpenAIAPIKey, app.Config.OpenAIModel)
		if err != nil {
			log.Printf("bootstrap: openai client unavailable: %v", err)
		} else {
			llm = client
		}
	}

	app.DocumentsService = documents.NewService(app.DocumentsRepo)
	app.RegistryService = registry.NewService(app.DocumentsRepo, app.AnalysesRepo)
	app.AnalyzerService = analyzer.NewService(app.DocumentsRepo, app.AnalysesRepo, llm)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
