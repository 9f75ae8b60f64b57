package handler

import (
	"net/http"
	"strconv"

	"Nova_Community/internal/pkg"
	"Nova_Community/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RoleHandler struct {
	svc *service.RoleService
}

type RoleCreateReq struct {
	Name string `json:"name"`
}

func NewRoleHandler(db *gorm.DB) *RoleHandler {
	return &RoleHandler{svc: service.NewRoleService(db)}
}

func (h *RoleHandler) Create(c *gin.Context) {
	var req RoleCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		pkg.Fail(c, pkg.InvalidInput("", "Invalid request body."))
		return
	}

	role, err := h.svc.CreateRole(req.Name)
	if err != nil {
		pkg.FailWith(c, err)
		return
	}

	pkg.OK(c, http.StatusOK, gin.H{
		"id":         role.ID,
		"name":       role.Name,
		"created_at": role.CreatedAt,
		"updated_at": role.UpdatedAt,
	}, nil)
}

func (h *RoleHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	perPage, _ := strconv.Atoi(c.Query("per_page"))

	roles, meta, err := h.svc.ListRoles(page, perPage)
	if err != nil {
		pkg.FailWith(c, err)
		return
	}

	pkg.OK(c, http.StatusOK, roles, meta)
}
