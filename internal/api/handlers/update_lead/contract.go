package update_lead

import (
	"context"

	"github.com/m04kA/SMC-OutreachService/internal/service/leads/models"
)

type LeadsService interface {
	UpdateCallState(ctx context.Context, leadID string, req *models.UpdateLeadRequest) (*models.LeadResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
