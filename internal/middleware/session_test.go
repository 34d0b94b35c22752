package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hitoshi/weeklog/internal/model"
)

// mockSessionReader はSessionReaderのモック実装。
type mockSessionReader struct {
	readFn func(r *http.Request) model.Session
}

func (m *mockSessionReader) Read(r *http.Request) model.Session {
	if m.readFn != nil {
		return m.readFn(r)
	}
	return model.Session{}
}

// TestSessionMiddleware_AdminSession は管理者セッションが
// コンテキストに注入されることを検証する。
func TestSessionMiddleware_AdminSession(t *testing.T) {
	reader := &mockSessionReader{
		readFn: func(r *http.Request) model.Session {
			return model.Session{IsAdmin: true}
		},
	}

	mw := NewSessionMiddleware(reader)

	var captured model.Session
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = SessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusOK)
	}
	if !captured.IsAdmin {
		t.Error("expected admin session in context")
	}
}

// TestSessionMiddleware_AnonymousPassesThrough は匿名リクエストが
// 拒否されずに通過することを検証する。閲覧は誰でもできるのが契約。
func TestSessionMiddleware_AnonymousPassesThrough(t *testing.T) {
	mw := NewSessionMiddleware(&mockSessionReader{})

	handlerCalled := false
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		if SessionFromContext(r.Context()).IsAdmin {
			t.Error("expected anonymous session")
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if !handlerCalled {
		t.Fatal("expected handler to be called for anonymous request")
	}
	if w.Result().StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusOK)
	}
}

// TestSessionFromContext_MissingSession はミドルウェア未通過のコンテキストから
// 匿名セッションが返ることを検証する。
func TestSessionFromContext_MissingSession(t *testing.T) {
	sess := SessionFromContext(context.Background())
	if sess.IsAdmin {
		t.Error("expected anonymous session for bare context")
	}
}

// TestContextWithSession はテスト用のコンテキスト注入ヘルパーを検証する。
func TestContextWithSession(t *testing.T) {
	ctx := ContextWithSession(context.Background(), model.Session{IsAdmin: true})
	if !SessionFromContext(ctx).IsAdmin {
		t.Error("expected injected admin session")
	}
}
