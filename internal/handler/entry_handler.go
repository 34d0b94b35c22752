package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/weeklog/internal/entry"
	"github.com/hitoshi/weeklog/internal/middleware"
	"github.com/hitoshi/weeklog/internal/model"
	"github.com/hitoshi/weeklog/internal/week"
)

// EntryServiceInterface はエントリハンドラーが必要とするサービスインターフェース。
type EntryServiceInterface interface {
	// Create はエントリを新規作成する。
	Create(ctx context.Context, in entry.Input) (*model.Entry, error)
	// Update は既存エントリを全項目上書きする。管理者セッションが必要。
	Update(ctx context.Context, sess model.Session, id string, in entry.Input) (*model.Entry, error)
	// Delete はエントリを削除する。管理者セッションが必要。
	Delete(ctx context.Context, sess model.Session, id string) error
	// Get はIDでエントリを取得する。IDが未知の場合はENTRY_NOT_FOUNDを返す。
	Get(ctx context.Context, id string) (*model.Entry, error)
	// List は全エントリを作成順で返す。
	List(ctx context.Context) ([]model.Entry, error)
}

// EntryMetrics はエントリ操作のメトリクス記録インターフェース。
type EntryMetrics interface {
	RecordEntryCreated()
	RecordEntryUpdated()
	RecordEntryDeleted()
}

// EntryHandler はジャーナルページとエントリ編集のHTTPハンドラー。
type EntryHandler struct {
	service   EntryServiceInterface
	metrics   EntryMetrics
	templates *Templates

	// mutationDelay は変更系フォーム送信に加える人工的な遅延。
	// pending UIの確認用で、本番既定値は0。
	mutationDelay time.Duration
}

// NewEntryHandler はEntryHandlerを生成する。
func NewEntryHandler(service EntryServiceInterface, m EntryMetrics, templates *Templates, mutationDelay time.Duration) *EntryHandler {
	return &EntryHandler{
		service:       service,
		metrics:       m,
		templates:     templates,
		mutationDelay: mutationDelay,
	}
}

// Index はジャーナルページを表示する。
// GET /
func (h *EntryHandler) Index(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())

	entries, err := h.service.List(r.Context())
	if err != nil {
		h.templates.handleServiceError(w, sess.IsAdmin, err)
		return
	}

	data := indexData{
		IsAdmin: sess.IsAdmin,
		Today:   model.FormatDate(time.Now().UTC()),
		Groups:  week.Group(entries),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render(w, h.templates.index, data); err != nil {
		slog.Error("failed to render index page", slog.String("error", err.Error()))
	}
}

// CreateEntry はエントリ作成フォームの送信を処理する。
// POST /
func (h *EntryHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		h.templates.renderErrorPage(w, sess.IsAdmin, http.StatusBadRequest,
			model.NewValidationError("フォームの解析に失敗しました"))
		return
	}

	h.delay()

	in := entry.Input{
		Date: r.PostFormValue("date"),
		Type: r.PostFormValue("type"),
		Text: r.PostFormValue("text"),
	}

	if _, err := h.service.Create(r.Context(), in); err != nil {
		h.templates.handleServiceError(w, sess.IsAdmin, err)
		return
	}

	h.metrics.RecordEntryCreated()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// EditPage はエントリ編集ページを表示する。
// GET /entries/:id/edit
func (h *EntryHandler) EditPage(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())

	if !sess.IsAdmin {
		h.templates.renderErrorPage(w, false, http.StatusUnauthorized, model.NewNotAuthorizedError())
		return
	}

	entryID := chi.URLParam(r, "id")

	e, err := h.service.Get(r.Context(), entryID)
	if err != nil {
		h.templates.handleServiceError(w, sess.IsAdmin, err)
		return
	}
	if e == nil {
		h.templates.renderErrorPage(w, sess.IsAdmin, http.StatusNotFound,
			model.NewEntryNotFoundError(entryID))
		return
	}

	data := editData{
		IsAdmin: sess.IsAdmin,
		Entry:   e,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render(w, h.templates.edit, data); err != nil {
		slog.Error("failed to render edit page", slog.String("error", err.Error()))
	}
}

// EditAction は編集ページのフォーム送信を処理する。
// _action=deleteの場合は削除、それ以外は全項目上書き更新として扱う。
// POST /entries/:id/edit
func (h *EntryHandler) EditAction(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	entryID := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		h.templates.renderErrorPage(w, sess.IsAdmin, http.StatusBadRequest,
			model.NewValidationError("フォームの解析に失敗しました"))
		return
	}

	h.delay()

	if r.PostFormValue("_action") == "delete" {
		if err := h.service.Delete(r.Context(), sess, entryID); err != nil {
			h.templates.handleServiceError(w, sess.IsAdmin, err)
			return
		}
		h.metrics.RecordEntryDeleted()
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	in := entry.Input{
		Date: r.PostFormValue("date"),
		Type: r.PostFormValue("type"),
		Text: r.PostFormValue("text"),
	}

	if _, err := h.service.Update(r.Context(), sess, entryID, in); err != nil {
		h.templates.handleServiceError(w, sess.IsAdmin, err)
		return
	}

	h.metrics.RecordEntryUpdated()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// delay は設定された人工遅延を適用する。
func (h *EntryHandler) delay() {
	if h.mutationDelay > 0 {
		time.Sleep(h.mutationDelay)
	}
}
