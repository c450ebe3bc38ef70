package response

import (
	"errors"
	"net/http"

	"SmartCart/app/common/consts/errno"

	xerrors "github.com/zeromicro/x/errors"
)

type Response struct {
	StatusCode int    `json:"code"`
	StatusMsg  string `json:"msg"`
}

type ResponseWithData struct {
	StatusCode int         `json:"code"`
	StatusMsg  string      `json:"msg"`
	Data       interface{} `json:"data"`
}

func NewResponse(statusCode int, statusMsg string) Response {
	return Response{
		StatusCode: statusCode,
		StatusMsg:  statusMsg,
	}
}

func NewResponseWithData(statusCode int, statusMsg string, data interface{}) ResponseWithData {
	return ResponseWithData{
		StatusCode: statusCode,
		StatusMsg:  statusMsg,
		Data:       data,
	}
}

// ErrorHandler maps business errors onto HTTP statuses for httpx.SetErrorHandler.
// NotFound codes surface as 404, bad payloads as 400, everything else as 500.
func ErrorHandler(err error) (int, any) {
	var cm *xerrors.CodeMsg
	if errors.As(err, &cm) {
		return httpStatus(cm.Code), NewResponse(cm.Code, cm.Msg)
	}
	return http.StatusInternalServerError, NewResponse(errno.InternalError, err.Error())
}

func httpStatus(code int) int {
	switch code {
	case errno.ProductNotFound, errno.CartItemNotFound, errno.AlternativeNotFound:
		return http.StatusNotFound
	case errno.InvalidParam:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
