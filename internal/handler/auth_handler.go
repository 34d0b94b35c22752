package handler

import (
	"log/slog"
	"net/http"

	"github.com/hitoshi/weeklog/internal/middleware"
	"github.com/hitoshi/weeklog/internal/model"
)

// AuthServiceInterface は認証ハンドラーが必要とするサービスインターフェース。
type AuthServiceInterface interface {
	// Login は資格情報を検証し、一致すれば管理者セッションを返す。
	Login(email, password string) (model.Session, bool)
}

// SessionWriter はセッションCookieの発行と破棄のインターフェース。
type SessionWriter interface {
	Issue(w http.ResponseWriter, sess model.Session) error
	Clear(w http.ResponseWriter)
}

// AuthMetrics は認証関連のメトリクス記録インターフェース。
type AuthMetrics interface {
	RecordLoginSuccess()
}

// AuthHandler はログイン・ログアウトのHTTPハンドラー。
type AuthHandler struct {
	service   AuthServiceInterface
	sessions  SessionWriter
	metrics   AuthMetrics
	templates *Templates
}

// NewAuthHandler はAuthHandlerを生成する。
func NewAuthHandler(service AuthServiceInterface, sessions SessionWriter, m AuthMetrics, templates *Templates) *AuthHandler {
	return &AuthHandler{
		service:   service,
		sessions:  sessions,
		metrics:   m,
		templates: templates,
	}
}

// LoginPage はログインページを表示する。
// 管理者セッションの場合はサインイン済み表示になる。
// GET /login
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render(w, h.templates.login, loginData{IsAdmin: sess.IsAdmin}); err != nil {
		slog.Error("failed to render login page", slog.String("error", err.Error()))
	}
}

// Login はログインフォームの送信を処理する。
// 成功時は管理者セッションのCookieを発行してジャーナルへリダイレクトする。
// 失敗時は理由を明かさず、入力済みのメールアドレスだけ残してフォームを再表示する。
// POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.templates.renderErrorPage(w, false, http.StatusBadRequest,
			model.NewValidationError("フォームの解析に失敗しました"))
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	sess, ok := h.service.Login(email, password)
	if !ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := render(w, h.templates.login, loginData{Email: email}); err != nil {
			slog.Error("failed to render login page", slog.String("error", err.Error()))
		}
		return
	}

	if err := h.sessions.Issue(w, sess); err != nil {
		slog.Error("failed to issue session cookie", slog.String("error", err.Error()))
		h.templates.renderErrorPage(w, false, http.StatusInternalServerError, &model.AppError{
			Code:     "INTERNAL_ERROR",
			Message:  "セッションの発行に失敗しました。",
			Category: "system",
			Action:   "しばらく待ってから再度お試しください。",
		})
		return
	}

	h.metrics.RecordLoginSuccess()
	slog.Info("admin logged in")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout はセッションCookieを破棄してジャーナルへリダイレクトする。
// POST /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
