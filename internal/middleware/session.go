// Package middleware はHTTPミドルウェアを提供する。
package middleware

import (
	"context"
	"net/http"

	"github.com/hitoshi/weeklog/internal/model"
)

// contextKey はコンテキストに値を格納するための型安全なキー。
type contextKey string

// sessionContextKey はリクエストコンテキストにセッションを格納するためのキー。
var sessionContextKey = contextKey("session")

// SessionReader は署名付きCookieからのセッション復元に必要なインターフェース。
// session.Storeの部分集合として定義する。
type SessionReader interface {
	Read(r *http.Request) model.Session
}

// NewSessionMiddleware はCookieからセッションを復元してリクエストコンテキストに
// 注入するミドルウェアを返す。すべてのページは匿名でも閲覧できるため、
// ここでは拒否せずフラグを載せるだけにする。変更操作の認可はサービス層が行う。
func NewSessionMiddleware(reader SessionReader) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := reader.Read(r)
			ctx := context.WithValue(r.Context(), sessionContextKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext はリクエストコンテキストからセッションを取得する。
// セッションミドルウェアを通過していないリクエストでは匿名セッションを返す。
func SessionFromContext(ctx context.Context) model.Session {
	sess, ok := ctx.Value(sessionContextKey).(model.Session)
	if !ok {
		return model.Session{}
	}
	return sess
}

// ContextWithSession はコンテキストにセッションを注入する。
// テストやミドルウェア以外のコンテキスト生成で使用する。
func ContextWithSession(ctx context.Context, sess model.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, sess)
}
