package handler

import (
	"net/http"
	"strconv"

	"Nova_Community/internal/middleware"
	"Nova_Community/internal/pkg"
	"Nova_Community/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommunityHandler struct {
	svc *service.CommunityService
}

type CommunityCreateReq struct {
	Name string `json:"name"`
}

func NewCommunityHandler(db *gorm.DB) *CommunityHandler {
	return &CommunityHandler{
		svc: service.NewCommunityService(db),
	}
}

func (h *CommunityHandler) Create(c *gin.Context) {
	var req CommunityCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		pkg.Fail(c, pkg.InvalidInput("", "Invalid request body."))
		return
	}

	community, err := h.svc.CreateCommunity(middleware.UserIDFromCtx(c), req.Name)
	if err != nil {
		pkg.FailWith(c, err)
		return
	}

	pkg.OK(c, http.StatusOK, gin.H{
		"id":         community.ID,
		"name":       community.Name,
		"slug":       community.Slug,
		"owner":      community.OwnerID,
		"created_at": community.CreatedAt,
		"updated_at": community.UpdatedAt,
	}, nil)
}

func (h *CommunityHandler) List(c *gin.Context) {
	page, perPage := pageParams(c)

	views, meta, err := h.svc.ListCommunities(page, perPage)
	if err != nil {
		pkg.FailWith(c, err)
		return
	}

	pkg.OK(c, http.StatusOK, views, meta)
}

func (h *CommunityHandler) ListMembers(c *gin.Context) {
	page, perPage := pageParams(c)

	views, meta, err := h.svc.ListMembers(c.Param("id"), page, perPage)
	if err != nil {
		pkg.FailWith(c, err)
		return
	}

	pkg.OK(c, http.StatusOK, views, meta)
}

// MyOwned 当前用户拥有的社区
func (h *CommunityHandler) MyOwned(c *gin.Context) {
	page, perPage := pageParams(c)

	views, meta, err := h.svc.ListOwned(middleware.UserIDFromCtx(c), page, perPage)
	if err != nil {
		pkg.FailWith(c, err)
		return
	}

	pkg.OK(c, http.StatusOK, views, meta)
}

// MyJoined 当前用户加入的社区
func (h *CommunityHandler) MyJoined(c *gin.Context) {
	page, perPage := pageParams(c)

	views, meta, err := h.svc.ListJoined(middleware.UserIDFromCtx(c), page, perPage)
	if err != nil {
		pkg.FailWith(c, err)
		return
	}

	pkg.OK(c, http.StatusOK, views, meta)
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.Query("page"))
	perPage, _ := strconv.Atoi(c.Query("per_page"))
	return page, perPage
}
