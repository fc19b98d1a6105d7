// Package recommending sintetiza os fatores de risco e duas agregações
// diretas em uma lista curta de recomendações acionáveis.
package recommending

import (
	"fmt"
	"math"
	"time"

	"github.com/revops/revenue-analytics-api/infrastructure/repository"
	"github.com/revops/revenue-analytics-api/internal/domain"
	"github.com/revops/revenue-analytics-api/internal/period"
	"github.com/revops/revenue-analytics-api/internal/usecases/risking"
)

const (
	// A resposta sempre carrega entre 3 e 5 recomendações
	MinRecommendations = 3
	MaxRecommendations = 5

	// Cobertura mínima de pipeline em relação à receita do mês corrente.
	// O recorte aqui é por mês civil, não por trimestre, diferente do
	// resumo e dos indicadores; comportamento observado do produto.
	PipelineCoverageFactor = 3.0

	// Piso da razão entre ticket médio aberto e ticket médio ganho
	DealSizeRatioFloor = 0.7

	// Volume de negócios estagnados que dispara a recomendação genérica
	StaleVolumeThreshold = 5

	enterpriseSegment = "Enterprise"
)

type Recommender interface {
	// GetRecommendations avalia as regras em ordem fixa e devolve de 3 a 5
	// itens, truncados na ordem de avaliação
	GetRecommendations() ([]*domain.Recommendation, error)
}

type Service struct {
	riskAnalyzer risking.RiskAnalyzer
	dealRepo     repository.DealRepository
	accountRepo  repository.AccountRepository
	now          func() time.Time
}

func NewService(
	riskAnalyzer risking.RiskAnalyzer,
	dealRepo repository.DealRepository,
	accountRepo repository.AccountRepository,
) Recommender {
	return &Service{
		riskAnalyzer: riskAnalyzer,
		dealRepo:     dealRepo,
		accountRepo:  accountRepo,
		now:          time.Now,
	}
}

func (s *Service) GetRecommendations() ([]*domain.Recommendation, error) {
	risks, err := s.riskAnalyzer.GetRiskFactors()
	if err != nil {
		return nil, err
	}

	recommendations := make([]*domain.Recommendation, 0, MaxRecommendations)

	// Regra 1: foco em negócios estagnados
	staleRec, err := s.staleDealRecommendation(risks.StaleDeals)
	if err != nil {
		return nil, err
	}
	if staleRec != nil {
		recommendations = append(recommendations, staleRec)
	}

	// Regra 2: coaching do pior vendedor (a lista já vem ordenada do pior
	// para o melhor)
	if len(risks.UnderperformingReps) > 0 {
		worst := risks.UnderperformingReps[0]
		recommendations = append(recommendations, &domain.Recommendation{
			Priority: domain.PriorityHigh,
			Title:    fmt.Sprintf("Coach %s on win rate", worst.Name),
			Description: fmt.Sprintf(
				"%s has a win rate of %.1f%% (%d/%d deals), well below the target of 30%%.",
				worst.Name, worst.WinRate, worst.ClosedWon, worst.TotalDeals,
			),
			Action: fmt.Sprintf(
				"Schedule coaching session with %s to improve deal qualification and closing techniques",
				worst.Name,
			),
		})
	}

	// Regra 3: campanha de ativação para o segmento dominante
	if rec := segmentActivityRecommendation(risks.LowActivityAccounts); rec != nil {
		recommendations = append(recommendations, rec)
	}

	// Regra 4: cobertura de pipeline
	coverageRec, err := s.pipelineCoverageRecommendation()
	if err != nil {
		return nil, err
	}
	if coverageRec != nil {
		recommendations = append(recommendations, coverageRec)
	}

	// Regra 5: otimização de tamanho de negócio
	dealSizeRec, err := s.dealSizeRecommendation()
	if err != nil {
		return nil, err
	}
	if dealSizeRec != nil {
		recommendations = append(recommendations, dealSizeRec)
	}

	// Regra de preenchimento: abaixo do mínimo entra um único item genérico
	if len(recommendations) < MinRecommendations {
		recommendations = append(recommendations, &domain.Recommendation{
			Priority:    domain.PriorityLow,
			Title:       "Maintain consistent activity levels",
			Description: "Continue regular outreach and follow-ups to maintain pipeline health.",
			Action:      "Review activity metrics weekly and ensure all reps meet activity targets",
		})
	}

	if len(recommendations) > MaxRecommendations {
		recommendations = recommendations[:MaxRecommendations]
	}

	return recommendations, nil
}

// staleDealRecommendation prioriza negócios estagnados de contas Enterprise;
// sem nenhum Enterprise, só recomenda quando o volume total passa do limiar
func (s *Service) staleDealRecommendation(staleDeals []*domain.StaleDeal) (*domain.Recommendation, error) {
	if len(staleDeals) == 0 {
		return nil, nil
	}

	accountIDs := make([]string, 0, len(staleDeals))
	for _, deal := range staleDeals {
		accountIDs = append(accountIDs, deal.AccountID)
	}

	segments, err := s.accountRepo.SegmentsByIDs(accountIDs)
	if err != nil {
		return nil, err
	}

	enterpriseStale := 0
	for _, deal := range staleDeals {
		if segments[deal.AccountID] == enterpriseSegment {
			enterpriseStale++
		}
	}

	if enterpriseStale > 0 {
		return &domain.Recommendation{
			Priority: domain.PriorityHigh,
			Title:    "Focus on Enterprise deals older than 30 days",
			Description: fmt.Sprintf(
				"%d Enterprise deals have been open for more than 30 days, representing significant revenue at risk.",
				enterpriseStale,
			),
			Action: fmt.Sprintf("Review and prioritize %d stale Enterprise deals", enterpriseStale),
		}, nil
	}

	if len(staleDeals) > StaleVolumeThreshold {
		return &domain.Recommendation{
			Priority: domain.PriorityHigh,
			Title:    "Address stale pipeline",
			Description: fmt.Sprintf(
				"%d deals have been open for more than 30 days without progress.",
				len(staleDeals),
			),
			Action: fmt.Sprintf("Review %d stale deals and create action plans", len(staleDeals)),
		}, nil
	}

	return nil, nil
}

// segmentActivityRecommendation agrupa as contas inativas por segmento e
// recomenda uma campanha para o maior grupo. O desempate é determinístico:
// um segmento só assume a liderança com contagem estritamente maior, então
// em caso de empate vence o segmento que atinge a contagem vencedora
// primeiro na ordem da lista ranqueada.
func segmentActivityRecommendation(accounts []*domain.LowActivityAccount) *domain.Recommendation {
	if len(accounts) == 0 {
		return nil
	}

	counts := make(map[string]int, len(accounts))
	topSegment := ""
	topCount := 0
	for _, account := range accounts {
		counts[account.Segment]++
		if counts[account.Segment] > topCount {
			topCount = counts[account.Segment]
			topSegment = account.Segment
		}
	}

	return &domain.Recommendation{
		Priority: domain.PriorityMedium,
		Title:    fmt.Sprintf("Increase activity for %s segment", topSegment),
		Description: fmt.Sprintf(
			"%d %s accounts have no activity in the last 30 days but have open deals.",
			topCount, topSegment,
		),
		Action: fmt.Sprintf(
			"Create outreach campaign for %d %s accounts with open deals",
			topCount, topSegment,
		),
	}
}

func (s *Service) pipelineCoverageRecommendation() (*domain.Recommendation, error) {
	pipelineSize, err := s.dealRepo.SumOpenPipeline(nil)
	if err != nil {
		return nil, err
	}

	monthRevenue, err := s.dealRepo.SumClosedWonSince(period.StartOfMonth(s.now()))
	if err != nil {
		return nil, err
	}

	if pipelineSize <= 0 || monthRevenue <= 0 || pipelineSize >= monthRevenue*PipelineCoverageFactor {
		return nil, nil
	}

	return &domain.Recommendation{
		Priority: domain.PriorityMedium,
		Title:    "Build pipeline to ensure future revenue",
		Description: fmt.Sprintf(
			"Current pipeline ($%dk) is less than 3x current month revenue. Aim for 3-4x coverage.",
			int(math.Round(pipelineSize/1000)),
		),
		Action: "Focus on prospecting and deal creation to build pipeline coverage",
	}, nil
}

func (s *Service) dealSizeRecommendation() (*domain.Recommendation, error) {
	since := s.now().AddDate(0, 0, -risking.RepClosureWindowDays)

	avgWon, err := s.dealRepo.AvgWonAmountSince(since)
	if err != nil {
		return nil, err
	}

	avgOpen, err := s.dealRepo.AvgOpenAmount()
	if err != nil {
		return nil, err
	}

	if avgOpen <= 0 || avgWon <= 0 || avgOpen >= avgWon*DealSizeRatioFloor {
		return nil, nil
	}

	return &domain.Recommendation{
		Priority: domain.PriorityLow,
		Title:    "Focus on larger deals",
		Description: fmt.Sprintf(
			"Average open deal size ($%d) is significantly lower than average won deal size ($%d).",
			int(math.Round(avgOpen)), int(math.Round(avgWon)),
		),
		Action: "Review deal qualification criteria and focus on larger opportunities",
	}, nil
}
