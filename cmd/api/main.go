package main

import (
	"context"
	"time"

	"github.com/revops/revenue-analytics-api/infrastructure/database/postgres"
	"github.com/revops/revenue-analytics-api/infrastructure/repository"
	"github.com/revops/revenue-analytics-api/internal/api"
	"github.com/revops/revenue-analytics-api/internal/config"
	"github.com/revops/revenue-analytics-api/internal/scheduler"
	"github.com/revops/revenue-analytics-api/internal/usecases/driving"
	"github.com/revops/revenue-analytics-api/internal/usecases/recommending"
	"github.com/revops/revenue-analytics-api/internal/usecases/risking"
	"github.com/revops/revenue-analytics-api/internal/usecases/summarizing"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	// A conexão é construída uma única vez aqui e injetada nos repositórios;
	// o motor de análise só lê, quem escreve é o script de seed
	dealRepo := repository.NewDealRepository(pgConn)
	repRepo := repository.NewRepRepository(pgConn)
	accountRepo := repository.NewAccountRepository(pgConn)
	targetRepo := repository.NewTargetRepository(pgConn)

	summarizer := summarizing.NewService(dealRepo, targetRepo)
	driverAnalyzer := driving.NewService(dealRepo)
	riskAnalyzer := risking.NewService(dealRepo, repRepo, accountRepo)
	recommender := recommending.NewService(riskAnalyzer, dealRepo, accountRepo)

	digestService := scheduler.NewAnalyticsDigestService(
		summarizer,
		driverAnalyzer,
		riskAnalyzer,
		recommender,
		cfg,
	)

	if err := digestService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do digest de análises")
	}

	server, err := api.New(
		cfg,
		summarizer,
		driverAnalyzer,
		riskAnalyzer,
		recommender,
		digestService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
