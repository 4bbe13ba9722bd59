package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ytget/ytfetch/internal/model"
)

// Codes for errors outside the download taxonomy
const (
	CodeBadRequest   = "bad_request"
	CodeNoFormats    = "no_formats"
	CodeInternal     = "internal_error"
	CodeFileMissing  = "file_missing"
	CodeTaskNotFound = "task_not_found"
)

// verifyLinkHint is appended to format lookup failures
const verifyLinkHint = "make sure the link is correct"

// ErrorResponse is the JSON body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// respondError writes err with the status its type maps to
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	coded, ok := model.AsCoded(err)
	if !ok {
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: CodeInternal})
		return
	}

	msg := coded.Error()
	if coded.Code() == model.CodeInfoFetch {
		msg += ". " + verifyLinkHint
	}
	c.AbortWithStatusJSON(coded.HTTPStatus(), ErrorResponse{Error: msg, Code: coded.Code()})
}

func respondBadRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: msg, Code: CodeBadRequest})
}
