package pkg

import "net/http"

// 错误码与原接口保持一致
const (
	CodeInvalidInput       = "INVALID_INPUT"
	CodeInvalidEmail       = "INVALID_EMAIL"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeResourceExists     = "RESOURCE_EXISTS"
	CodeResourceNotFound   = "RESOURCE_NOT_FOUND"
	CodeNotSignedIn        = "NOT_SIGNEDIN"
	CodeNotAllowed         = "NOT_ALLOWED_ACCESS"
	CodeInternal           = "INTERNAL_ERROR"
)

// AppError 业务错误，handler 层翻译成统一错误信封
type AppError struct {
	Status  int    `json:"-"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func (e *AppError) Error() string { return e.Message }

func NewAppError(status int, param, message, code string) *AppError {
	return &AppError{Status: status, Param: param, Message: message, Code: code}
}

func InvalidInput(param, message string) *AppError {
	return NewAppError(http.StatusBadRequest, param, message, CodeInvalidInput)
}

func InvalidEmail(message string) *AppError {
	return NewAppError(http.StatusBadRequest, "email", message, CodeInvalidEmail)
}

func InvalidCredentials() *AppError {
	return NewAppError(http.StatusUnauthorized, "password", "The credentials you provided are invalid.", CodeInvalidCredentials)
}

func ResourceExists(param, message string) *AppError {
	return NewAppError(http.StatusBadRequest, param, message, CodeResourceExists)
}

func ResourceNotFound(param, message string) *AppError {
	return NewAppError(http.StatusBadRequest, param, message, CodeResourceNotFound)
}

func NotSignedIn() *AppError {
	return NewAppError(http.StatusUnauthorized, "", "You need to sign in to proceed.", CodeNotSignedIn)
}

func NotAllowed() *AppError {
	return NewAppError(http.StatusForbidden, "", "You are not authorized to perform this action.", CodeNotAllowed)
}

func Internal() *AppError {
	return NewAppError(http.StatusInternalServerError, "", "Internal server error.", CodeInternal)
}
