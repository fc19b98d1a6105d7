// Package summarizing calcula o resumo trimestral de receita: realizado
// contra meta e a variação em relação ao trimestre de comparação.
package summarizing

import (
	"time"

	"github.com/revops/revenue-analytics-api/infrastructure/repository"
	"github.com/revops/revenue-analytics-api/internal/domain"
	"github.com/revops/revenue-analytics-api/internal/period"
	"github.com/revops/revenue-analytics-api/pkg/utils"
)

type Summarizer interface {
	// GetSummary monta o resumo do trimestre civil corrente
	GetSummary() (*domain.Summary, error)
}

type Service struct {
	dealRepo   repository.DealRepository
	targetRepo repository.TargetRepository
	now        func() time.Time
}

func NewService(
	dealRepo repository.DealRepository,
	targetRepo repository.TargetRepository,
) Summarizer {
	return &Service{
		dealRepo:   dealRepo,
		targetRepo: targetRepo,
		now:        time.Now,
	}
}

func (s *Service) GetSummary() (*domain.Summary, error) {
	current := period.FromTime(s.now())

	revenue, err := s.dealRepo.SumClosedWonBetween(current.Start, current.End)
	if err != nil {
		return nil, err
	}

	target, err := s.targetRepo.SumForMonths(current.Months())
	if err != nil {
		return nil, err
	}

	gap := revenue - target
	gapPercentage := 0.0
	if target > 0 {
		gapPercentage = utils.RoundWithTwoDecimalPlace(gap / target * 100)
	}

	previous := current.Previous()
	previousRevenue, err := s.dealRepo.SumClosedWonBetween(previous.Start, previous.End)
	if err != nil {
		return nil, err
	}

	lastYear := current.SameQuarterLastYear()
	lastYearRevenue, err := s.dealRepo.SumClosedWonBetween(lastYear.Start, lastYear.End)
	if err != nil {
		return nil, err
	}

	// YoY tem preferência quando há receita no mesmo trimestre do ano
	// anterior; sem base de comparação anual, cai para QoQ
	change := buildChange(domain.ChangeTypeQoQ, revenue, previousRevenue)
	if lastYearRevenue > 0 {
		change = buildChange(domain.ChangeTypeYoY, revenue, lastYearRevenue)
	}

	return &domain.Summary{
		CurrentQuarterRevenue: revenue,
		Target:                target,
		Gap:                   gap,
		GapPercentage:         gapPercentage,
		Change:                change,
	}, nil
}

// buildChange calcula a variação contra a receita de referência. Denominador
// zero resulta em percentual zero, nunca em NaN ou infinito.
func buildChange(changeType string, revenue, baseline float64) domain.Change {
	value := revenue - baseline

	percentage := 0.0
	if baseline > 0 {
		percentage = utils.RoundWithTwoDecimalPlace(value / baseline * 100)
	}

	return domain.Change{
		Type:       changeType,
		Value:      value,
		Percentage: percentage,
	}
}
