package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gymflow/gymflow/internal/application/membership/usecases"
	"github.com/gymflow/gymflow/internal/shared/logger"
	"github.com/gymflow/gymflow/internal/shared/utils"
)

// PlanChangeHandler drives the three-step plan change: calculate, initiate, confirm.
type PlanChangeHandler struct {
	calculateUC calculatePlanChangeUseCase
	initiateUC  initiatePlanChangeUseCase
	confirmUC   confirmPlanChangeUseCase
	logger      logger.Interface
}

func NewPlanChangeHandler(
	calculateUC calculatePlanChangeUseCase,
	initiateUC initiatePlanChangeUseCase,
	confirmUC confirmPlanChangeUseCase,
	logger logger.Interface,
) *PlanChangeHandler {
	return &PlanChangeHandler{
		calculateUC: calculateUC,
		initiateUC:  initiateUC,
		confirmUC:   confirmUC,
		logger:      logger,
	}
}

type CalculatePlanChangeRequest struct {
	NewPlanID uint `json:"new_plan_id" binding:"required,gt=0"`
}

type InitiatePlanChangeRequest struct {
	RequestID string `json:"request_id" binding:"required,uuid"`
}

// ConfirmPlanChangeRequest carries the password for downgrades or the payment
// receipt for upgrades. Which one is checked depends on the stored request.
type ConfirmPlanChangeRequest struct {
	RequestID      string `json:"request_id" binding:"required,uuid"`
	Password       string `json:"password" binding:"omitempty,max=128"`
	PaymentReceipt string `json:"payment_receipt" binding:"omitempty,max=2048"`
}

func (h *PlanChangeHandler) Calculate(c *gin.Context) {
	memberID, err := utils.GetMemberIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CalculatePlanChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for plan change calculation", "member_id", memberID, "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}

	result, err := h.calculateUC.Execute(c.Request.Context(), usecases.CalculatePlanChangeCommand{
		MemberID:  memberID,
		NewPlanID: req.NewPlanID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *PlanChangeHandler) Initiate(c *gin.Context) {
	memberID, err := utils.GetMemberIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req InitiatePlanChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}

	result, err := h.initiateUC.Execute(c.Request.Context(), usecases.InitiatePlanChangeCommand{
		MemberID:  memberID,
		RequestID: req.RequestID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *PlanChangeHandler) Confirm(c *gin.Context) {
	memberID, err := utils.GetMemberIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ConfirmPlanChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}

	result, err := h.confirmUC.Execute(c.Request.Context(), usecases.ConfirmPlanChangeCommand{
		MemberID:       memberID,
		RequestID:      req.RequestID,
		Password:       req.Password,
		PaymentReceipt: req.PaymentReceipt,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan changed successfully", result)
}
