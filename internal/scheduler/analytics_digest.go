// Package scheduler contém o agendador do digest diário de análises
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/revops/revenue-analytics-api/internal/config"
	"github.com/revops/revenue-analytics-api/internal/usecases/driving"
	"github.com/revops/revenue-analytics-api/internal/usecases/recommending"
	"github.com/revops/revenue-analytics-api/internal/usecases/risking"
	"github.com/revops/revenue-analytics-api/internal/usecases/summarizing"
	"github.com/revops/revenue-analytics-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

type AnalyticsDigestConfig struct {
	CronSchedule string
	Enabled      bool
}

// AnalyticsDigestService roda as quatro operações de análise em um horário
// agendado e registra um resumo em log. Somente leitura: nada é persistido,
// cada execução recalcula tudo como uma requisição normal faria.
type AnalyticsDigestService struct {
	scheduler         *gocron.Scheduler
	summarizer        summarizing.Summarizer
	driverAnalyzer    driving.DriverAnalyzer
	riskAnalyzer      risking.RiskAnalyzer
	recommender       recommending.Recommender
	config            AnalyticsDigestConfig
	runRunning        bool
	runMutex          sync.Mutex
	lastRunStartedAt  time.Time
	lastRunFinishedAt time.Time
}

func NewAnalyticsDigestService(
	summarizer summarizing.Summarizer,
	driverAnalyzer driving.DriverAnalyzer,
	riskAnalyzer risking.RiskAnalyzer,
	recommender recommending.Recommender,
	cfg *config.Config,
) *AnalyticsDigestService {
	digestConfig := AnalyticsDigestConfig{
		CronSchedule: cfg.AnalyticsDigest.CronSchedule,
		Enabled:      cfg.AnalyticsDigest.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": digestConfig.CronSchedule,
	}).Info("Configuração do agendador de digest de análises carregada")

	return &AnalyticsDigestService{
		scheduler:      scheduler,
		summarizer:     summarizer,
		driverAnalyzer: driverAnalyzer,
		riskAnalyzer:   riskAnalyzer,
		recommender:    recommender,
		config:         digestConfig,
	}
}

func (s *AnalyticsDigestService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de digest de análises desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de digest de análises")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunDigest(); err != nil {
			logrus.WithError(err).Error("Erro na execução do digest de análises")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar digest de análises: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do digest de análises")
		s.scheduler.Stop()
	}()

	return nil
}

// RunDigest executa as quatro operações e registra o resumo em log
func (s *AnalyticsDigestService) RunDigest() error {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	if s.runRunning {
		logrus.Warn("Digest de análises já está em execução")
		return nil
	}

	s.runRunning = true
	s.lastRunStartedAt = time.Now()
	defer func() {
		s.runRunning = false
		s.lastRunFinishedAt = time.Now()
	}()

	logrus.Info("Iniciando digest de análises")

	summary, err := s.summarizer.GetSummary()
	if err != nil {
		logrus.WithError(err).Error("Digest: erro ao calcular resumo")
		return err
	}

	drivers, err := s.driverAnalyzer.GetDrivers()
	if err != nil {
		logrus.WithError(err).Error("Digest: erro ao calcular indicadores")
		return err
	}

	risks, err := s.riskAnalyzer.GetRiskFactors()
	if err != nil {
		logrus.WithError(err).Error("Digest: erro ao detectar fatores de risco")
		return err
	}

	recommendations, err := s.recommender.GetRecommendations()
	if err != nil {
		logrus.WithError(err).Error("Digest: erro ao gerar recomendações")
		return err
	}

	logrus.WithFields(logrus.Fields{
		"revenue":              summary.CurrentQuarterRevenue,
		"target":               summary.Target,
		"gap":                  summary.Gap,
		"pipeline":             drivers.PipelineSize,
		"win_rate":             drivers.WinRate,
		"stale_deals":          len(risks.StaleDeals),
		"underperforming_reps": len(risks.UnderperformingReps),
		"low_activity":         len(risks.LowActivityAccounts),
		"recommendations":      len(recommendations),
	}).Info("Digest de análises concluído")

	logrus.Debug("Digest: recomendações geradas\n", utils.PrettyJson(recommendations))

	return nil
}

// TriggerManualRun dispara manualmente uma execução do digest
func (s *AnalyticsDigestService) TriggerManualRun() {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Info("Digest de análises já em andamento, ignorando solicitação manual")
		return
	}
	s.runMutex.Unlock()

	logrus.Info("Iniciando execução manual do digest de análises")
	go s.RunDigest()
}

// GetStatus retorna o status atual do agendador
func (s *AnalyticsDigestService) GetStatus() map[string]any {
	return map[string]any{
		"enabled":              s.config.Enabled,
		"cron":                 s.config.CronSchedule,
		"last_run_started_at":  s.lastRunStartedAt,
		"last_run_finished_at": s.lastRunFinishedAt,
	}
}
