package response

import "github.com/gin-gonic/gin"

// 接口返回裸 JSON（数组/对象），不包信封；出错时统一 {"error": msg}。

type ErrorBody struct {
	Error string `json:"error"`
}

func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorBody{Error: msg})
}

// AbortError 中间件用：终止链路并返回错误
func AbortError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, ErrorBody{Error: msg})
}
