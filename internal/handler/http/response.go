package http

import (
	"babysquares/internal/view"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 返回纯文本错误，htmx 默认不会把 4xx/5xx 响应交换进页面。
func ErrorResponse(c *gin.Context, code int, message string) {
	c.String(code, message)
}

// HTMLResponse 返回渲染好的 HTML 页面或片段。
func HTMLResponse(c *gin.Context, code int, body []byte) {
	c.Data(code, view.ContentType, body)
}
