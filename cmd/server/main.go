// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal packages.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	authhandler "sciport/internal/auth/handler"
	"sciport/internal/auth/jwt"
	authservice "sciport/internal/auth/service"
	"sciport/internal/auth/store/revocation"
	cataloghandler "sciport/internal/catalog/handler"
	"sciport/internal/catalog/legacy"
	catalogmetrics "sciport/internal/catalog/metrics"
	catalogservice "sciport/internal/catalog/service"
	catalogstore "sciport/internal/catalog/store"
	"sciport/internal/catalog/sqltemplate"
	"sciport/internal/dashboard"
	httpapi "sciport/internal/http"
	"sciport/internal/platform/config"
	"sciport/internal/platform/database"
	"sciport/internal/platform/httpserver"
	"sciport/internal/platform/logger"
	"sciport/internal/platform/middleware"
	"sciport/internal/platform/redis"
	userstore "sciport/internal/user/store"
)

func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	appDB, err := database.OpenMySQL(cfg.AppDB)
	if err != nil {
		log.Error("failed to connect to legacy database", "error", err)
		os.Exit(1)
	}
	defer appDB.Close()

	usersDB, err := database.OpenPostgres(cfg.UsersDB)
	if err != nil {
		log.Error("failed to connect to users database", "error", err)
		os.Exit(1)
	}
	defer usersDB.Close()

	templates, err := sqltemplate.New(cfg.SQLTemplateBase)
	if err != nil {
		log.Error("failed to resolve template base", "error", err)
		os.Exit(1)
	}
	reader, err := legacy.NewReader(templates, legacy.NewMySQLExecutor(appDB), cfg.AppLocale)
	if err != nil {
		log.Error("failed to build legacy reader", "error", err)
		os.Exit(1)
	}

	tokens := jwt.New(cfg.JWTSecret, cfg.JWTExpiresIn)

	var trl revocation.TokenRevocationList = revocation.NewInMemoryTRL()
	redisClient, err := redis.New(cfg.RedisURL)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		trl = revocation.NewRedisTRL(redisClient.Client)
		log.Info("using redis token revocation list")
	}

	requireAuth := middleware.RequireAuth(tokens, trl, log)
	requireAdmin := func(next http.Handler) http.Handler {
		return requireAuth(middleware.RequireRole("admin", log)(next))
	}

	m := catalogmetrics.New()

	// The curated Postgres table serves /api/projects; the legacy projection
	// still backs finance budget lookups.
	pgProjects, err := catalogstore.NewPostgresProjectStore(usersDB, cfg.ProjectsTable)
	if err != nil {
		log.Error("invalid projects table configuration", "error", err)
		os.Exit(1)
	}
	legacyProjects := catalogstore.NewLegacyProjectStore(reader)
	employees := catalogstore.NewLegacyEmployeeStore(reader)
	publications := catalogstore.NewLegacyPublicationStore(reader)
	finances := catalogstore.NewLegacyFinanceStore(reader, legacyProjects)

	projectSvc := catalogservice.NewProjectService(pgProjects, log, m)
	employeeSvc := catalogservice.NewEmployeeService(employees, log, m)
	publicationSvc := catalogservice.NewPublicationService(publications, log, m)
	financeSvc := catalogservice.NewFinanceService(finances, log, m)

	users := userstore.NewPostgres(usersDB)
	authSvc := authservice.New(users, tokens, trl, log)

	dashboardSvc := dashboard.NewService(projectSvc, employeeSvc, publicationSvc, financeSvc, log)

	router := httpapi.NewRouter(httpapi.Deps{
		Auth:         authhandler.New(authSvc, log, requireAuth),
		Projects:     cataloghandler.NewProjectHandler(projectSvc, log, requireAdmin),
		Employees:    cataloghandler.NewEmployeeHandler(employeeSvc, log, requireAdmin),
		Publications: cataloghandler.NewPublicationHandler(publicationSvc, log, requireAdmin),
		Finances:     cataloghandler.NewFinanceHandler(financeSvc, log, requireAdmin),
		Dashboard:    dashboard.NewHandler(dashboardSvc, log),
		Redis:        redisClient,
	})

	srv := httpserver.New(cfg.Addr(), router)

	log.Info("starting sciport server", "addr", cfg.Addr(), "locale", cfg.AppLocale)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
