package domain

import "time"

// Estágios sentinela que encerram um negócio. Qualquer outro valor de
// estágio é considerado um negócio aberto.
const (
	StageClosedWon  = "Closed Won"
	StageClosedLost = "Closed Lost"
)

// StageClass é a classificação fechada de um estágio de negócio.
// A classificação acontece na fronteira de leitura do banco; a partir
// daí toda a lógica trabalha com o enum e não com strings.
type StageClass int

const (
	StageClassOpen StageClass = iota
	StageClassWon
	StageClassLost
)

// ClassifyStage classifica o texto livre de estágio em uma das três classes
func ClassifyStage(stage string) StageClass {
	switch stage {
	case StageClosedWon:
		return StageClassWon
	case StageClosedLost:
		return StageClassLost
	default:
		return StageClassOpen
	}
}

// IsClosed informa se a classe representa um estágio terminal
func (c StageClass) IsClosed() bool {
	return c == StageClassWon || c == StageClassLost
}

// Deal representa um negócio. Amount e ClosedAt são opcionais:
// amount nulo nunca contribui para somas e médias, e closed_at só é
// preenchido quando o estágio é um dos sentinelas fechados.
type Deal struct {
	DealID    string     `json:"deal_id"`
	AccountID string     `json:"account_id"`
	RepID     string     `json:"rep_id"`
	Stage     string     `json:"stage"`
	Amount    *float64   `json:"amount"`
	CreatedAt time.Time  `json:"created_at"`
	ClosedAt  *time.Time `json:"closed_at"`
}

// StageClass retorna a classificação do estágio do negócio
func (d *Deal) StageClass() StageClass {
	return ClassifyStage(d.Stage)
}
