package api

import (
	"errors"
	"net/http"

	"MatchTicker/internal/model"
)

// statusFor 把领域错误映射为HTTP状态码
func statusFor(err error) int {
	var unsupported *model.UnsupportedGameError
	if errors.As(err, &unsupported) {
		return http.StatusBadRequest
	}
	var badResp *model.BadResponseError
	if errors.As(err, &badResp) {
		return http.StatusBadGateway
	}
	var connErr *model.ConnectivityError
	if errors.As(err, &connErr) {
		return http.StatusBadGateway
	}
	if errors.Is(err, model.ErrBracketRendererMissing) {
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}
