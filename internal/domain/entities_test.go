package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStage(t *testing.T) {
	tests := []struct {
		name         string
		stage        string
		expect       StageClass
		expectClosed bool
	}{
		{
			name:         "Closed Won é terminal",
			stage:        "Closed Won",
			expect:       StageClassWon,
			expectClosed: true,
		},
		{
			name:         "Closed Lost é terminal",
			stage:        "Closed Lost",
			expect:       StageClassLost,
			expectClosed: true,
		},
		{
			name:         "Qualquer outro estágio é aberto",
			stage:        "Proposal",
			expect:       StageClassOpen,
			expectClosed: false,
		},
		{
			name:         "A comparação diferencia maiúsculas",
			stage:        "closed won",
			expect:       StageClassOpen,
			expectClosed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class := ClassifyStage(tt.stage)

			assert.Equal(t, tt.expect, class)
			assert.Equal(t, tt.expectClosed, class.IsClosed())
		})
	}
}

func TestDealStageClass(t *testing.T) {
	deal := &Deal{DealID: "D001", Stage: "Closed Won"}

	assert.Equal(t, StageClassWon, deal.StageClass())
}
