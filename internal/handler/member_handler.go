package handler

import (
	"net/http"

	"Nova_Community/internal/middleware"
	"Nova_Community/internal/pkg"
	"Nova_Community/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MemberHandler struct {
	svc *service.MemberService
}

type MemberAddReq struct {
	Community string `json:"community"`
	User      string `json:"user"`
	Role      string `json:"role"`
}

func NewMemberHandler(db *gorm.DB) *MemberHandler {
	return &MemberHandler{svc: service.NewMemberService(db)}
}

// Add 加成员，仅社区 owner 可用
func (h *MemberHandler) Add(c *gin.Context) {
	var req MemberAddReq
	if err := c.ShouldBindJSON(&req); err != nil {
		pkg.Fail(c, pkg.InvalidInput("", "Invalid request body."))
		return
	}

	member, err := h.svc.AddMember(middleware.UserIDFromCtx(c), req.Community, req.User, req.Role)
	if err != nil {
		pkg.FailWith(c, err)
		return
	}

	pkg.OK(c, http.StatusOK, gin.H{
		"id":         member.ID,
		"community":  member.CommunityID,
		"user":       member.UserID,
		"role":       member.RoleID,
		"created_at": member.CreatedAt,
	}, nil)
}

// Remove 移除成员，仅该成员所在社区的 owner 可用
func (h *MemberHandler) Remove(c *gin.Context) {
	if err := h.svc.RemoveMember(middleware.UserIDFromCtx(c), c.Param("id")); err != nil {
		pkg.FailWith(c, err)
		return
	}

	pkg.OK(c, http.StatusOK, gin.H{"removed": true}, nil)
}
