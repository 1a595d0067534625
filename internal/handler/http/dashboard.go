package http

import (
	"net/http"

	"github.com/moath17/taskdashbord-sub001/internal/domain/dashboard"
	"github.com/moath17/taskdashbord-sub001/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetSummary returns the role-scoped dashboard
	GetSummary(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetSummary handles GET /dashboard
func (h *dashboardHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
