package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gymflow/gymflow/internal/application/membership/usecases"
	"github.com/gymflow/gymflow/internal/shared/logger"
	"github.com/gymflow/gymflow/internal/shared/utils"
)

type PlanHandler struct {
	listPlansUC listPlansUseCase
	logger      logger.Interface
}

func NewPlanHandler(listPlansUC listPlansUseCase, logger logger.Interface) *PlanHandler {
	return &PlanHandler{
		listPlansUC: listPlansUC,
		logger:      logger,
	}
}

// ListPlans returns the plans open for purchase. Retired plans are never listed here.
func (h *PlanHandler) ListPlans(c *gin.Context) {
	plans, err := h.listPlansUC.Execute(c.Request.Context(), usecases.ListPlansQuery{})
	if err != nil {
		h.logger.Errorw("failed to list plans", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", plans)
}
