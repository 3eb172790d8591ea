package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gymflow/gymflow/internal/application/membership/usecases"
	"github.com/gymflow/gymflow/internal/shared/logger"
	"github.com/gymflow/gymflow/internal/shared/utils"
)

// StaffHandler exposes another member's membership to front desk and admin roles.
// Authorization is enforced by the permission middleware on the route group.
type StaffHandler struct {
	getMembershipUC     getMembershipUseCase
	checkAccessUC       checkAccessUseCase
	listHistoryUC       listHistoryUseCase
	listCancellationsUC listCancellationsUseCase
	logger              logger.Interface
}

func NewStaffHandler(
	getMembershipUC getMembershipUseCase,
	checkAccessUC checkAccessUseCase,
	listHistoryUC listHistoryUseCase,
	listCancellationsUC listCancellationsUseCase,
	logger logger.Interface,
) *StaffHandler {
	return &StaffHandler{
		getMembershipUC:     getMembershipUC,
		checkAccessUC:       checkAccessUC,
		listHistoryUC:       listHistoryUC,
		listCancellationsUC: listCancellationsUC,
		logger:              logger,
	}
}

func (h *StaffHandler) GetMemberMembership(c *gin.Context) {
	memberID, err := parseMemberID(c)
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

func (h *StaffHandler) GetMemberAccess(c *gin.Context) {
	memberID, err := parseMemberID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.checkAccessUC.Execute(c.Request.Context(), memberID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Debugw("staff access lookup", "member_id", memberID, "allowed", result.Allowed, "staff_role", utils.GetRoleFromContext(c))
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *StaffHandler) GetMemberHistory(c *gin.Context) {
	memberID, err := parseMemberID(c)
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

func (h *StaffHandler) ListMemberCancellations(c *gin.Context) {
	memberID, err := parseMemberID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listCancellationsUC.Execute(c.Request.Context(), memberID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func parseMemberID(c *gin.Context) (uint, error) {
	return utils.ParseUintParam(c, "member_id", "member")
}
