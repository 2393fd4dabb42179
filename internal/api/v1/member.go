package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gymflow/gymflow/internal/api/dto"
	"github.com/gymflow/gymflow/internal/domain/member"
	ierr "github.com/gymflow/gymflow/internal/errors"
	"github.com/gymflow/gymflow/internal/logger"
	"github.com/gymflow/gymflow/internal/service"
	"github.com/gymflow/gymflow/internal/types"
)

type MemberHandler struct {
	memberService service.MemberService
	logger        *logger.Logger
}

func NewMemberHandler(memberService service.MemberService, logger *logger.Logger) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
		logger:        logger,
	}
}

func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.memberService.CreateMember(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *MemberHandler) GetMember(c *gin.Context) {
	resp, err := h.memberService.GetMember(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MemberHandler) ListMembers(c *gin.Context) {
	filter := member.NewFilter()
	filter.QueryFilter = queryFilterFromParams(c)
	filter.Search = c.Query("search")
	if status := c.Query("status"); status != "" {
		filter.MemberStatuses = []types.MemberStatus{types.MemberStatus(status)}
	}
	if planID := c.Query("plan_id"); planID != "" {
		filter.PlanIDs = []string{planID}
	}

	resp, err := h.memberService.GetMembers(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MemberHandler) UpdateMember(c *gin.Context) {
	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.memberService.UpdateMember(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MemberHandler) DeleteMember(c *gin.Context) {
	if err := h.memberService.DeleteMember(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "member deleted"})
}
