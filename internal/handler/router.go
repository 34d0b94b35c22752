package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/weeklog/internal/middleware"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	Logger        *slog.Logger
	SessionReader middleware.SessionReader
	RateLimiter   *middleware.RateLimiter
	Metrics       middleware.MetricsRecorder

	// エントリ
	EntryService  EntryServiceInterface
	EntryMetrics  EntryMetrics
	MutationDelay time.Duration

	// 認証
	AuthService AuthServiceInterface
	Sessions    SessionWriter
	AuthMetrics AuthMetrics

	// 運用
	DB             Pinger
	MetricsHandler http.Handler
}

// NewRouter は全ルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	Recovery → SecurityHeaders → Logging → Metrics → Session → RateLimit
//
// /healthと/metricsはセッションやレート制限の外に配置する。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewLoggingMiddleware(deps.Logger))
	if deps.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(deps.Metrics))
	}

	templates := NewTemplates()
	entryHandler := NewEntryHandler(deps.EntryService, deps.EntryMetrics, templates, deps.MutationDelay)
	authHandler := NewAuthHandler(deps.AuthService, deps.Sessions, deps.AuthMetrics, templates)
	healthHandler := NewHealthHandler(deps.DB)

	// --- 運用ルート ---

	r.Get("/health", healthHandler.Health)
	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}

	// --- アプリケーションルート ---
	// ミドルウェアスタック: Session → RateLimit
	r.Group(func(r chi.Router) {
		r.Use(middleware.NewSessionMiddleware(deps.SessionReader))
		r.Use(deps.RateLimiter.Middleware())

		// ジャーナル
		r.Get("/", entryHandler.Index)
		r.Post("/", entryHandler.CreateEntry)

		// エントリ編集
		r.Route("/entries/{id}/edit", func(r chi.Router) {
			r.Get("/", entryHandler.EditPage)
			r.Post("/", entryHandler.EditAction)
		})

		// 認証
		r.Get("/login", authHandler.LoginPage)
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
	})

	return r
}
