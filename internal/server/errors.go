// Package server provides the HTTP REST API for the career reflection app.
package server

import (
	"errors"
	"net/http"

	"github.com/openclo/openclo/internal/analysis"
)

// User-facing messages. Validation and quota failures get specific,
// actionable text; extraction/parse and unclassified failures get a generic
// retry prompt. No partial analysis result is ever shown.
const (
	msgMissingAPIKey  = "서버 설정 오류: API 키가 없습니다."
	msgQuotaExceeded  = "AI 서비스 사용량이 초과되었습니다. 잠시 후 다시 시도해주세요."
	msgParseFailed    = "AI 응답 파싱에 실패했습니다. 다시 시도해주세요."
	msgInvalidBody    = "잘못된 요청 형식입니다."
	msgGenericFailure = "분석 중 오류가 발생했습니다."
	msgRateLimited    = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요."
)

// HTTPStatus returns the appropriate HTTP status code for a pipeline error.
func HTTPStatus(err error) int {
	var (
		configErr     *analysis.ConfigError
		validationErr *analysis.ValidationError
		quotaErr      *analysis.QuotaExceededError
		extractionErr *analysis.ExtractionError
		parseErr      *analysis.ParseError
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &quotaErr):
		return http.StatusTooManyRequests
	case errors.As(err, &configErr),
		errors.As(err, &extractionErr),
		errors.As(err, &parseErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// userMessage returns the user-facing message for a pipeline error.
func userMessage(err error) string {
	var (
		configErr     *analysis.ConfigError
		validationErr *analysis.ValidationError
		quotaErr      *analysis.QuotaExceededError
		extractionErr *analysis.ExtractionError
		parseErr      *analysis.ParseError
	)

	switch {
	case errors.As(err, &validationErr):
		return validationErr.Message
	case errors.As(err, &quotaErr):
		return msgQuotaExceeded
	case errors.As(err, &configErr):
		return msgMissingAPIKey
	case errors.As(err, &extractionErr), errors.As(err, &parseErr):
		return msgParseFailed
	default:
		return msgGenericFailure
	}
}
