package main

import (
	"database/sql"
	"log/slog"

	"github.com/phrazzld/qa-api/internal/config"
	"github.com/phrazzld/qa-api/internal/platform/postgres"
	"github.com/phrazzld/qa-api/internal/store"
	"github.com/prometheus/client_golang/prometheus"
)

// application holds the shared dependencies of the running server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	questions store.QuestionStore
	answers   store.AnswerStore

	registerer prometheus.Registerer
	gatherer   prometheus.Gatherer
}

// newApplication wires the postgres stores onto db. Metrics go to the
// default Prometheus registry.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	return &application{
		config:     cfg,
		logger:     logger,
		db:         db,
		questions:  postgres.NewQuestionStore(db, logger),
		answers:    postgres.NewAnswerStore(db, logger),
		registerer: prometheus.DefaultRegisterer,
		gatherer:   prometheus.DefaultGatherer,
	}
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db == nil {
		return
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error("Failed to close database connection", "error", err)
		return
	}
	app.logger.Info("Database connection closed")
}
