package domain

import "time"

// Tipos de variação reportados no resumo trimestral
const (
	ChangeTypeYoY = "YoY"
	ChangeTypeQoQ = "QoQ"
)

// Change é a variação de receita reportada no resumo. O resumo carrega
// exatamente uma variação: YoY quando há receita no mesmo trimestre do ano
// anterior, QoQ caso contrário.
type Change struct {
	Type       string  `json:"type"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

// Summary é a resposta de /api/summary
type Summary struct {
	CurrentQuarterRevenue float64 `json:"currentQuarterRevenue"`
	Target                float64 `json:"target"`
	Gap                   float64 `json:"gap"`
	GapPercentage         float64 `json:"gapPercentage"`
	Change                Change  `json:"change"`
}

// Drivers é a resposta de /api/drivers
type Drivers struct {
	PipelineSize    float64 `json:"pipelineSize"`
	WinRate         float64 `json:"winRate"`
	AverageDealSize float64 `json:"averageDealSize"`
	SalesCycleTime  int     `json:"salesCycleTime"`
}

// StaleDeal é um negócio aberto há mais de 30 dias
type StaleDeal struct {
	DealID          string  `json:"deal_id"`
	AccountID       string  `json:"account_id"`
	RepID           string  `json:"rep_id"`
	Amount          float64 `json:"amount"`
	Stage           string  `json:"stage"`
	DaysSinceUpdate int     `json:"daysSinceUpdate"`
	CreatedAt       string  `json:"created_at"`
}

// UnderperformingRep é um vendedor com taxa de conversão abaixo de 30%
// nos últimos 90 dias (mínimo de 5 negócios fechados)
type UnderperformingRep struct {
	RepID      string  `json:"rep_id"`
	Name       string  `json:"name"`
	WinRate    float64 `json:"winRate"`
	TotalDeals int     `json:"totalDeals"`
	ClosedWon  int     `json:"closedWon"`
	ClosedLost int     `json:"closedLost"`
}

// LowActivityAccount é uma conta com negócios abertos e sem atividade
// recente. DaysSinceLastActivity carrega 999 quando nunca houve atividade.
type LowActivityAccount struct {
	AccountID             string `json:"account_id"`
	Name                  string `json:"name"`
	Segment               string `json:"segment"`
	DaysSinceLastActivity int    `json:"daysSinceLastActivity"`
	OpenDeals             int    `json:"openDeals"`
}

// RiskFactors é a resposta de /api/risk-factors
type RiskFactors struct {
	StaleDeals          []*StaleDeal          `json:"staleDeals"`
	UnderperformingReps []*UnderperformingRep `json:"underperformingReps"`
	LowActivityAccounts []*LowActivityAccount `json:"lowActivityAccounts"`
}

// Prioridades de recomendação
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Recommendation é um item acionável sintetizado a partir dos fatores de risco
type Recommendation struct {
	Priority    string `json:"priority"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

// RepClosureStats agrega os fechamentos de um vendedor em uma janela móvel.
// Linha intermediária do repositório, não aparece na API.
type RepClosureStats struct {
	RepID       string
	Name        string
	ClosedWon   int
	ClosedLost  int
	TotalClosed int
}

// DormantAccountRow é a linha intermediária da consulta de contas inativas:
// conta com negócios abertos e a data da última atividade sobre eles
type DormantAccountRow struct {
	AccountID    string
	Name         string
	Segment      string
	OpenDeals    int
	LastActivity *time.Time
}
