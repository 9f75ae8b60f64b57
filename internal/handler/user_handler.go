package handler

import (
	"net/http"
	"time"

	"Nova_Community/internal/middleware"
	"Nova_Community/internal/model"
	"Nova_Community/internal/pkg"
	"Nova_Community/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserHandler struct {
	svc *service.UserService
}

// SignupReq 注册请求体
type SignupReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SigninReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userData 响应里的用户信息，不包含密码
type userData struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserData(u *model.User) userData {
	return userData{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}

func NewUserHandler(db *gorm.DB, smtp pkg.SMTPConfig) *UserHandler {
	return &UserHandler{
		svc: service.NewUserService(db, smtp),
	}
}

// Signup 注册接口，token 放在 meta.access_token
func (h *UserHandler) Signup(c *gin.Context) {
	var req SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		pkg.Fail(c, pkg.InvalidInput("", "Invalid request body."))
		return
	}

	user, token, err := h.svc.Signup(req.Name, req.Email, req.Password)
	if err != nil {
		pkg.FailWith(c, err)
		return
	}

	pkg.OK(c, http.StatusOK, newUserData(user), gin.H{"access_token": token})
}

// Signin 登录接口
func (h *UserHandler) Signin(c *gin.Context) {
	var req SigninReq
	if err := c.ShouldBindJSON(&req); err != nil {
		pkg.Fail(c, pkg.InvalidInput("", "Invalid request body."))
		return
	}

	user, token, err := h.svc.Signin(req.Email, req.Password)
	if err != nil {
		pkg.FailWith(c, err)
		return
	}

	pkg.OK(c, http.StatusOK, newUserData(user), gin.H{"access_token": token})
}

// Me 当前用户资料
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.svc.Me(middleware.UserIDFromCtx(c))
	if err != nil {
		pkg.FailWith(c, err)
		return
	}

	pkg.OK(c, http.StatusOK, newUserData(user), nil)
}
