package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/revops/revenue-analytics-api/internal/usecases/summarizing"
	"github.com/revops/revenue-analytics-api/pkg/apiErrors"
	"github.com/revops/revenue-analytics-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetSummary retorna o resumo de receita do trimestre corrente
func GetSummary(service summarizing.Summarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		summary, err := service.GetSummary()
		if err != nil {
			logger.WithError(err).Error("summary: erro ao calcular resumo do trimestre")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular resumo de receita", nil)
			return
		}

		logger.WithFields(log.Fields{
			"revenue":     summary.CurrentQuarterRevenue,
			"target":      summary.Target,
			"change_type": summary.Change.Type,
		}).Info("summary: resumo calculado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithError(err).Error("summary: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
