package router

import (
	"Nova_Community/internal/handler"
	"Nova_Community/internal/middleware"
	"Nova_Community/internal/pkg"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// InitRouter db 传 nil 时各 handler 使用包级 MySQL 连接
func InitRouter(db *gorm.DB, smtp pkg.SMTPConfig) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	user := handler.NewUserHandler(db, smtp)
	role := handler.NewRoleHandler(db)
	community := handler.NewCommunityHandler(db)
	member := handler.NewMemberHandler(db)

	// 认证相关接口
	authGroup := r.Group("/v1/auth")
	{
		authGroup.POST("/signup", user.Signup)
		authGroup.POST("/signin", user.Signin)
		authGroup.GET("/me", middleware.AuthMiddleware(), user.Me)
	}

	// 角色目录接口，无需登录
	roleGroup := r.Group("/v1/role")
	{
		roleGroup.POST("", role.Create)
		roleGroup.GET("", role.List)
	}

	// 社区相关接口
	communityGroup := r.Group("/v1/community")
	{
		communityGroup.POST("", middleware.AuthMiddleware(), community.Create)
		communityGroup.GET("", community.List)
		communityGroup.GET("/me/owner", middleware.AuthMiddleware(), community.MyOwned)
		communityGroup.GET("/me/member", middleware.AuthMiddleware(), community.MyJoined)
		communityGroup.GET("/:id/members", community.ListMembers)
	}

	// 成员相关接口，登录态
	memberGroup := r.Group("/v1/member")
	memberGroup.Use(middleware.AuthMiddleware())
	{
		memberGroup.POST("", member.Add)
		memberGroup.DELETE("/:id", member.Remove)
	}

	return r
}
