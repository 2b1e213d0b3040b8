package api

import (
	"github.com/gin-gonic/gin"
)

// Mã lỗi trong response của endpoint callable,
// client phân nhánh theo code nên giá trị phải giữ ổn định.
const (
	CodeInvalidArgument = "invalid-argument"
	CodeInternal        = "internal"
)

type CallableError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}

func invalidArgumentResponse(message string) gin.H {
	return gin.H{"error": CallableError{Code: CodeInvalidArgument, Message: message}}
}

func internalResponse(message string) gin.H {
	return gin.H{"error": CallableError{Code: CodeInternal, Message: message}}
}
