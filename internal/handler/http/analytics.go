package http

import (
	"net/http"

	"github.com/moath17/taskdashbord-sub001/internal/domain/analytics"
	"github.com/moath17/taskdashbord-sub001/internal/handler/http/response"
	"github.com/moath17/taskdashbord-sub001/internal/pkg/validator"
)

type AnalyticsHandler interface {
	// GetGoalRisks returns per-goal risk reports, sorted by score descending
	GetGoalRisks(w http.ResponseWriter, r *http.Request)
	// GetDashboard returns the combined analytics dashboard
	GetDashboard(w http.ResponseWriter, r *http.Request)
	// GetWorkloads returns per-user workload reports (manager only)
	GetWorkloads(w http.ResponseWriter, r *http.Request)
}

type analyticsHandlerImpl struct {
	analyticsService analytics.AnalyticsService
}

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &analyticsHandlerImpl{analyticsService: analyticsService}
}

// GetGoalRisks handles GET /analytics/goals
func (h *analyticsHandlerImpl) GetGoalRisks(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("owner_id") // optional, narrows to one owner
	if ownerID != "" {
		if err := validator.Var("owner_id", ownerID, "uuid"); err != nil {
			response.HandleError(w, err)
			return
		}
	}

	result, err := h.analyticsService.GoalRisks(r.Context(), ownerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDashboard handles GET /analytics/dashboard
func (h *analyticsHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.analyticsService.Dashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetWorkloads handles GET /analytics/workload
func (h *analyticsHandlerImpl) GetWorkloads(w http.ResponseWriter, r *http.Request) {
	result, err := h.analyticsService.Workloads(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
