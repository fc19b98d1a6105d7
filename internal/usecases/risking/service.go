// Package risking detecta as três famílias de risco da carteira: negócios
// estagnados, vendedores abaixo da meta de conversão e contas sem atividade.
package risking

import (
	"sort"
	"time"

	"github.com/revops/revenue-analytics-api/infrastructure/repository"
	"github.com/revops/revenue-analytics-api/internal/domain"
	"github.com/revops/revenue-analytics-api/pkg/utils"
)

// Limiares fixos de política. Não são configuráveis de propósito: mudá-los é
// uma decisão de produto, não de implantação.
const (
	StaleDealThresholdDays  = 30
	InactivityThresholdDays = 30
	RepClosureWindowDays    = 90
	MinClosuresForRate      = 5
	UnderperformingWinRate  = 30.0
	RiskListLimit           = 20

	// NeverActiveSentinel marca contas que nunca registraram atividade
	NeverActiveSentinel = 999
)

type RiskAnalyzer interface {
	// GetRiskFactors roda os três detectores de forma independente
	GetRiskFactors() (*domain.RiskFactors, error)
}

type Service struct {
	dealRepo    repository.DealRepository
	repRepo     repository.RepRepository
	accountRepo repository.AccountRepository
	now         func() time.Time
}

func NewService(
	dealRepo repository.DealRepository,
	repRepo repository.RepRepository,
	accountRepo repository.AccountRepository,
) RiskAnalyzer {
	return &Service{
		dealRepo:    dealRepo,
		repRepo:     repRepo,
		accountRepo: accountRepo,
		now:         time.Now,
	}
}

func (s *Service) GetRiskFactors() (*domain.RiskFactors, error) {
	now := s.now()

	staleDeals, err := s.staleDeals(now)
	if err != nil {
		return nil, err
	}

	underperformingReps, err := s.underperformingReps(now)
	if err != nil {
		return nil, err
	}

	lowActivityAccounts, err := s.lowActivityAccounts(now)
	if err != nil {
		return nil, err
	}

	return &domain.RiskFactors{
		StaleDeals:          staleDeals,
		UnderperformingReps: underperformingReps,
		LowActivityAccounts: lowActivityAccounts,
	}, nil
}

// staleDeals lista negócios abertos há mais de 30 dias, dos mais antigos
// para os mais recentes
func (s *Service) staleDeals(now time.Time) ([]*domain.StaleDeal, error) {
	cutoff := now.AddDate(0, 0, -StaleDealThresholdDays)

	deals, err := s.dealRepo.ListStaleOpenDeals(cutoff, RiskListLimit)
	if err != nil {
		return nil, err
	}

	staleDeals := make([]*domain.StaleDeal, 0, len(deals))
	for _, deal := range deals {
		amount := 0.0
		if deal.Amount != nil {
			amount = *deal.Amount
		}

		staleDeals = append(staleDeals, &domain.StaleDeal{
			DealID:          deal.DealID,
			AccountID:       deal.AccountID,
			RepID:           deal.RepID,
			Amount:          amount,
			Stage:           deal.Stage,
			DaysSinceUpdate: wholeDaysSince(now, deal.CreatedAt),
			CreatedAt:       deal.CreatedAt.Format(time.DateOnly),
		})
	}

	return staleDeals, nil
}

// underperformingReps aplica a regra de conversão sobre os fechamentos dos
// últimos 90 dias. Vendedores com menos de 5 fechamentos já chegam filtrados
// do repositório; aqui ficam só os com taxa abaixo de 30%, do pior para o
// melhor.
func (s *Service) underperformingReps(now time.Time) ([]*domain.UnderperformingRep, error) {
	since := now.AddDate(0, 0, -RepClosureWindowDays)

	stats, err := s.repRepo.ClosureStatsSince(since, MinClosuresForRate)
	if err != nil {
		return nil, err
	}

	reps := make([]*domain.UnderperformingRep, 0)
	for _, entry := range stats {
		if entry.TotalClosed == 0 {
			continue
		}

		winRate := utils.RoundWithTwoDecimalPlace(float64(entry.ClosedWon) / float64(entry.TotalClosed) * 100)
		if winRate >= UnderperformingWinRate {
			continue
		}

		reps = append(reps, &domain.UnderperformingRep{
			RepID:      entry.RepID,
			Name:       entry.Name,
			WinRate:    winRate,
			TotalDeals: entry.TotalClosed,
			ClosedWon:  entry.ClosedWon,
			ClosedLost: entry.ClosedLost,
		})
	}

	sort.SliceStable(reps, func(i, j int) bool {
		return reps[i].WinRate < reps[j].WinRate
	})

	if len(reps) > RiskListLimit {
		reps = reps[:RiskListLimit]
	}

	return reps, nil
}

// lowActivityAccounts lista contas com negócios abertos e sem atividade nos
// últimos 30 dias. Os dias de inatividade são calculados contra o relógio
// real, não contra o instante da consulta no banco.
func (s *Service) lowActivityAccounts(now time.Time) ([]*domain.LowActivityAccount, error) {
	cutoff := now.AddDate(0, 0, -InactivityThresholdDays)

	rows, err := s.accountRepo.ListDormant(cutoff, RiskListLimit)
	if err != nil {
		return nil, err
	}

	accounts := make([]*domain.LowActivityAccount, 0, len(rows))
	for _, row := range rows {
		days := NeverActiveSentinel
		if row.LastActivity != nil {
			days = wholeDaysSince(now, *row.LastActivity)
		}

		accounts = append(accounts, &domain.LowActivityAccount{
			AccountID:             row.AccountID,
			Name:                  row.Name,
			Segment:               row.Segment,
			DaysSinceLastActivity: days,
			OpenDeals:             row.OpenDeals,
		})
	}

	return accounts, nil
}

func wholeDaysSince(now, past time.Time) int {
	return int(now.Sub(past).Hours() / 24)
}
