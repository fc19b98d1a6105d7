package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/revops/revenue-analytics-api/internal/scheduler"
	"github.com/revops/revenue-analytics-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// Tipos de cron job que podem ser disparadas manualmente
const (
	CronJobTypeDigest = "digest"
)

// CronJobServices contém os serviços de cron necessários para execução manual
type CronJobServices struct {
	AnalyticsDigestService *scheduler.AnalyticsDigestService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeDigest:
			if services.AnalyticsDigestService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de digest de análises não disponível", nil)
				return
			}
			services.AnalyticsDigestService.TriggerManualRun()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: digest", nil)
			return
		}

		logrus.WithField("type", cronType).Info("Cron job disparada manualmente")

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{
			"digest": services.AnalyticsDigestService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
