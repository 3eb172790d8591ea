package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gymflow/gymflow/internal/application/membership/usecases"
	"github.com/gymflow/gymflow/internal/interfaces/http/middleware"
	"github.com/gymflow/gymflow/internal/shared/logger"
	"github.com/gymflow/gymflow/internal/shared/utils"
)

// MembershipHandler serves read endpoints about the caller's own membership.
type MembershipHandler struct {
	getMembershipUC getMembershipUseCase
	checkAccessUC   checkAccessUseCase
	listHistoryUC   listHistoryUseCase
	listEventsUC    listEventsUseCase
	logger          logger.Interface
}

func NewMembershipHandler(
	getMembershipUC getMembershipUseCase,
	checkAccessUC checkAccessUseCase,
	listHistoryUC listHistoryUseCase,
	listEventsUC listEventsUseCase,
	logger logger.Interface,
) *MembershipHandler {
	return &MembershipHandler{
		getMembershipUC: getMembershipUC,
		checkAccessUC:   checkAccessUC,
		listHistoryUC:   listHistoryUC,
		listEventsUC:    listEventsUC,
		logger:          logger,
	}
}

func (h *MembershipHandler) GetMembership(c *gin.Context) {
	memberID, err := utils.GetMemberIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getMembershipUC.Execute(c.Request.Context(), memberID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *MembershipHandler) GetAccess(c *gin.Context) {
	memberID, err := utils.GetMemberIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.checkAccessUC.Execute(c.Request.Context(), memberID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetHistory lists record versions newest first, paginated with page and page_size.
func (h *MembershipHandler) GetHistory(c *gin.Context) {
	memberID, err := utils.GetMemberIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	p := utils.ParsePagination(c)
	result, err := h.listHistoryUC.Execute(c.Request.Context(), usecases.ListHistoryQuery{
		MemberID: memberID,
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Versions, result.Total, result.Page, result.PageSize)
}

func (h *MembershipHandler) ListEvents(c *gin.Context) {
	memberID, err := utils.GetMemberIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listEventsUC.Execute(c.Request.Context(), memberID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CheckIn records a facility entry. The route is guarded by MembershipAccess,
// so reaching it means access was granted.
func (h *MembershipHandler) CheckIn(c *gin.Context) {
	access, ok := middleware.GetAccessFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusForbidden, "membership access was not checked")
		return
	}

	h.logger.Infow("member checked in", "member_id", access.MemberID, "valid_until", access.ValidUntil)
	utils.SuccessResponse(c, http.StatusOK, "Check-in recorded", access)
}
