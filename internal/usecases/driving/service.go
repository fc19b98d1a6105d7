// Package driving calcula os quatro indicadores antecedentes de receita:
// pipeline aberto, taxa de conversão, ticket médio e ciclo de venda.
package driving

import (
	"math"
	"time"

	"github.com/revops/revenue-analytics-api/infrastructure/repository"
	"github.com/revops/revenue-analytics-api/internal/domain"
	"github.com/revops/revenue-analytics-api/internal/period"
)

type DriverAnalyzer interface {
	// GetDrivers calcula os indicadores do trimestre civil corrente
	GetDrivers() (*domain.Drivers, error)
}

type Service struct {
	dealRepo repository.DealRepository
	now      func() time.Time
}

func NewService(dealRepo repository.DealRepository) DriverAnalyzer {
	return &Service{
		dealRepo: dealRepo,
		now:      time.Now,
	}
}

func (s *Service) GetDrivers() (*domain.Drivers, error) {
	current := period.FromTime(s.now())

	// Negócios criados depois do fim do trimestre corrente ficam de fora do
	// pipeline (só relevante para dados retro ou pós-datados)
	pipelineSize, err := s.dealRepo.SumOpenPipeline(&current.End)
	if err != nil {
		return nil, err
	}

	won, lost, err := s.dealRepo.CountClosuresBetween(current.Start, current.End)
	if err != nil {
		return nil, err
	}

	winRate := 0.0
	if totalClosed := won + lost; totalClosed > 0 {
		winRate = float64(won) / float64(totalClosed) * 100
	}

	averageDealSize, err := s.dealRepo.AvgWonAmountBetween(current.Start, current.End)
	if err != nil {
		return nil, err
	}

	cycleDays, err := s.dealRepo.AvgSalesCycleDaysBetween(current.Start, current.End)
	if err != nil {
		return nil, err
	}

	return &domain.Drivers{
		PipelineSize:    pipelineSize,
		WinRate:         winRate,
		AverageDealSize: math.Round(averageDealSize),
		SalesCycleTime:  int(math.Round(cycleDays)),
	}, nil
}
