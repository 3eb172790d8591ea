package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/gymflow/gymflow/internal/application/membership/usecases"
	"github.com/gymflow/gymflow/internal/domain/member"
	"github.com/gymflow/gymflow/internal/shared/errors"
	"github.com/gymflow/gymflow/internal/shared/logger"
	"github.com/gymflow/gymflow/internal/shared/utils"
)

const dateOfBirthLayout = "2006-01-02"

// SubscriptionHandler serves the status-changing endpoints of the caller's membership.
type SubscriptionHandler struct {
	pauseUC      pauseMembershipUseCase
	resumeUC     resumeMembershipUseCase
	cancelUC     cancelMembershipUseCase
	reactivateUC reactivateMembershipUseCase
	subscribeUC  subscribeUseCase
	autoRenewUC  setAutoRenewUseCase
	logger       logger.Interface
}

func NewSubscriptionHandler(
	pauseUC pauseMembershipUseCase,
	resumeUC resumeMembershipUseCase,
	cancelUC cancelMembershipUseCase,
	reactivateUC reactivateMembershipUseCase,
	subscribeUC subscribeUseCase,
	autoRenewUC setAutoRenewUseCase,
	logger logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		pauseUC:      pauseUC,
		resumeUC:     resumeUC,
		cancelUC:     cancelUC,
		reactivateUC: reactivateUC,
		subscribeUC:  subscribeUC,
		autoRenewUC:  autoRenewUC,
		logger:       logger,
	}
}

type PauseRequest struct {
	DurationDays int `json:"duration_days" binding:"required,pause_days"`
}

type CancelRequest struct {
	Reason string `json:"reason" binding:"omitempty,max=500"`
}

type PersonalDataRequest struct {
	FullName    *string `json:"full_name" binding:"omitempty,min=1,max=100"`
	Phone       *string `json:"phone" binding:"omitempty,max=32"`
	Address     *string `json:"address" binding:"omitempty,max=255"`
	DateOfBirth *string `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
}

type ReactivateRequest struct {
	NewPlanID           uint                 `json:"new_plan_id" binding:"required,gt=0"`
	PersonalData        *PersonalDataRequest `json:"personal_data"`
	ConfirmPersonalData bool                 `json:"confirm_personal_data"`
	AutoRenew           *bool                `json:"auto_renew"`
	PaymentReceipt      string               `json:"payment_receipt" binding:"omitempty,max=2048"`
}

type SubscribeRequest struct {
	PlanID         uint   `json:"plan_id" binding:"required,gt=0"`
	AutoRenew      *bool  `json:"auto_renew"`
	PaymentReceipt string `json:"payment_receipt" binding:"omitempty,max=2048"`
}

type AutoRenewRequest struct {
	AutoRenew *bool `json:"auto_renew" binding:"required"`
}

func (h *SubscriptionHandler) Pause(c *gin.Context) {
	memberID, err := utils.GetMemberIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req PauseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for pause", "member_id", memberID, "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}

	result, err := h.pauseUC.Execute(c.Request.Context(), usecases.PauseMembershipCommand{
		MemberID:     memberID,
		DurationDays: req.DurationDays,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Membership paused", result)
}

func (h *SubscriptionHandler) Resume(c *gin.Context) {
	memberID, err := utils.GetMemberIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.resumeUC.Execute(c.Request.Context(), memberID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Membership resumed", result)
}

// Cancel accepts an empty body; the reason is optional.
func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	memberID, err := utils.GetMemberIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CancelRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
			return
		}
	}

	result, err := h.cancelUC.Execute(c.Request.Context(), usecases.CancelMembershipCommand{
		MemberID: memberID,
		Reason:   req.Reason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Membership cancelled", result)
}

func (h *SubscriptionHandler) Reactivate(c *gin.Context) {
	memberID, err := utils.GetMemberIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ReactivateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}

	personalData, err := req.PersonalData.toDomain()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.reactivateUC.Execute(c.Request.Context(), usecases.ReactivateMembershipCommand{
		MemberID:            memberID,
		NewPlanID:           req.NewPlanID,
		PersonalData:        personalData,
		ConfirmPersonalData: req.ConfirmPersonalData,
		AutoRenew:           lo.FromPtrOr(req.AutoRenew, true),
		PaymentReceipt:      req.PaymentReceipt,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Membership reactivated")
}

func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	memberID, err := utils.GetMemberIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}

	result, err := h.subscribeUC.Execute(c.Request.Context(), usecases.SubscribeCommand{
		MemberID:       memberID,
		PlanID:         req.PlanID,
		AutoRenew:      lo.FromPtrOr(req.AutoRenew, true),
		PaymentReceipt: req.PaymentReceipt,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Membership created")
}

func (h *SubscriptionHandler) SetAutoRenew(c *gin.Context) {
	memberID, err := utils.GetMemberIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AutoRenewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}

	result, err := h.autoRenewUC.Execute(c.Request.Context(), usecases.SetAutoRenewCommand{
		MemberID:  memberID,
		AutoRenew: *req.AutoRenew,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (r *PersonalDataRequest) toDomain() (*member.PersonalData, error) {
	if r == nil {
		return nil, nil
	}

	data := &member.PersonalData{
		FullName: r.FullName,
		Phone:    r.Phone,
		Address:  r.Address,
	}
	if r.DateOfBirth != nil {
		dob, err := time.Parse(dateOfBirthLayout, *r.DateOfBirth)
		if err != nil {
			return nil, errors.NewValidationError("Invalid date_of_birth", "expected YYYY-MM-DD")
		}
		data.DateOfBirth = &dob
	}
	return data, nil
}
