package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hitoshi/weeklog/internal/model"
)

// renderErrorPage は統一エラーフォーマットをHTMLエラーページとして書き込む。
func (t *Templates) renderErrorPage(w http.ResponseWriter, isAdmin bool, statusCode int, appErr *model.AppError) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)

	data := errorData{
		IsAdmin:    isAdmin,
		Status:     statusCode,
		StatusText: http.StatusText(statusCode),
		Message:    appErr.Message,
		Action:     appErr.Action,
	}
	if err := render(w, t.errorPage, data); err != nil {
		slog.Error("failed to render error page", slog.String("error", err.Error()))
	}
}

// handleServiceError はサービス層から返されたエラーを適切なHTTPステータスの
// エラーページに変換する。エラーは握りつぶさず必ずページとして表面化させる。
func (t *Templates) handleServiceError(w http.ResponseWriter, isAdmin bool, err error) {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		t.renderErrorPage(w, isAdmin, mapAppErrorToHTTPStatus(appErr), appErr)
		return
	}

	// AppError以外のエラーは内部サーバーエラーとして扱う
	slog.Error("internal server error", slog.String("error", err.Error()))
	t.renderErrorPage(w, isAdmin, http.StatusInternalServerError, &model.AppError{
		Code:     "INTERNAL_ERROR",
		Message:  "内部エラーが発生しました。",
		Category: "system",
		Action:   "しばらく待ってから再度お試しください。",
	})
}

// mapAppErrorToHTTPStatus はAppErrorコードからHTTPステータスコードにマッピングする。
func mapAppErrorToHTTPStatus(appErr *model.AppError) int {
	switch appErr.Code {
	case model.ErrCodeValidationFailed:
		return http.StatusBadRequest
	case model.ErrCodeEntryNotFound:
		return http.StatusNotFound
	case model.ErrCodeNotAuthorized:
		return http.StatusUnauthorized
	case model.ErrCodeStoreError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
