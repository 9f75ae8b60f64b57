package pkg

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"
)

// Content 成功信封的 content 部分
type Content struct {
	Meta any `json:"meta,omitempty"`
	Data any `json:"data"`
}

// PageMeta 分页元信息，pages = ceil(total/perPage)
type PageMeta struct {
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
	Page  int   `json:"page"`
}

func NewPageMeta(total int64, page, perPage int) PageMeta {
	pages := (total + int64(perPage) - 1) / int64(perPage)
	return PageMeta{Total: total, Pages: pages, Page: page}
}

// OK 成功信封：{status:true, content:{data, meta?}}
func OK(c *gin.Context, status int, data any, meta any) {
	c.JSON(status, gin.H{
		"status":  true,
		"content": Content{Meta: meta, Data: data},
	})
}

// Fail 失败信封：{status:false, errors:[...]}，500 也走同一形状
func Fail(c *gin.Context, errs ...*AppError) {
	status := 500
	if len(errs) > 0 {
		status = errs[0].Status
	}
	c.JSON(status, gin.H{
		"status": false,
		"errors": errs,
	})
}

// FailWith 将 service 层错误翻译为信封，非 AppError 的按 500 兜底避免泄内部细节
func FailWith(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		Fail(c, appErr)
		return
	}
	log.Printf("internal error: %v", err)
	Fail(c, Internal())
}
