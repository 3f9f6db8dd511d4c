package http

import (
	"net/http"

	"github.com/bingooh/b-go-precheck/util"
	"github.com/gin-gonic/gin"
)

// NoRouteHandler 未找到路由时返回404错误响应，响应格式同MWErrorHandler
func NoRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		err := NewError(http.StatusNotFound, util.ErrCodeNotFound, `页面未找到`)
		c.JSON(err.Status(), err)
	}
}
