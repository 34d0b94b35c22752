package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/hitoshi/weeklog/internal/model"
)

// mockAuthService はAuthServiceInterfaceのモック実装。
type mockAuthService struct {
	loginFn func(email, password string) (model.Session, bool)
}

func (m *mockAuthService) Login(email, password string) (model.Session, bool) {
	if m.loginFn != nil {
		return m.loginFn(email, password)
	}
	return model.Session{}, false
}

// mockSessionWriter はSessionWriterのモック実装。
type mockSessionWriter struct {
	issued  []model.Session
	cleared int
	issueFn func(w http.ResponseWriter, sess model.Session) error
}

func (m *mockSessionWriter) Issue(w http.ResponseWriter, sess model.Session) error {
	m.issued = append(m.issued, sess)
	if m.issueFn != nil {
		return m.issueFn(w, sess)
	}
	return nil
}

func (m *mockSessionWriter) Clear(w http.ResponseWriter) {
	m.cleared++
}

// mockAuthMetrics はAuthMetricsのモック実装。
type mockAuthMetrics struct {
	logins int
}

func (m *mockAuthMetrics) RecordLoginSuccess() { m.logins++ }

func newTestAuthHandler(service *mockAuthService, sessions *mockSessionWriter, m *mockAuthMetrics) *AuthHandler {
	return NewAuthHandler(service, sessions, m, NewTemplates())
}

// TestAuthHandler_LoginPage_Anonymous は匿名セッションにログインフォームが
// 表示されることを検証する。
func TestAuthHandler_LoginPage_Anonymous(t *testing.T) {
	h := newTestAuthHandler(&mockAuthService{}, &mockSessionWriter{}, &mockAuthMetrics{})

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	w := httptest.NewRecorder()

	h.LoginPage(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	body, _ := io.ReadAll(resp.Body)
	bodyStr := string(body)
	if !strings.Contains(bodyStr, `name="email"`) || !strings.Contains(bodyStr, `name="password"`) {
		t.Error("expected login form fields")
	}
}

// TestAuthHandler_LoginPage_SignedIn は管理者セッションにサインイン済み表示が
// 返ることを検証する。
func TestAuthHandler_LoginPage_SignedIn(t *testing.T) {
	h := newTestAuthHandler(&mockAuthService{}, &mockSessionWriter{}, &mockAuthMetrics{})

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req = withSession(req, model.Session{IsAdmin: true})
	w := httptest.NewRecorder()

	h.LoginPage(w, req)

	body, _ := io.ReadAll(w.Result().Body)
	bodyStr := string(body)
	if !strings.Contains(bodyStr, "You're signed in!") {
		t.Error("expected signed-in state")
	}
	if strings.Contains(bodyStr, `name="password"`) {
		t.Error("signed-in page should not contain login form")
	}
}

// TestAuthHandler_Login_Success は正しい資格情報でCookie発行と
// 303リダイレクトが起きることを検証する。
func TestAuthHandler_Login_Success(t *testing.T) {
	service := &mockAuthService{
		loginFn: func(email, password string) (model.Session, bool) {
			if email == "sam@buildui.com" && password == "password" {
				return model.Session{IsAdmin: true}, true
			}
			return model.Session{}, false
		},
	}
	sessions := &mockSessionWriter{}
	m := &mockAuthMetrics{}
	h := newTestAuthHandler(service, sessions, m)

	req := formRequest("/login", url.Values{
		"email":    {"sam@buildui.com"},
		"password": {"password"},
	})
	w := httptest.NewRecorder()

	h.Login(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusSeeOther {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusSeeOther)
	}
	if loc := resp.Header.Get("Location"); loc != "/" {
		t.Errorf("Location = %q, want %q", loc, "/")
	}
	if len(sessions.issued) != 1 || !sessions.issued[0].IsAdmin {
		t.Errorf("issued sessions = %+v, want one admin session", sessions.issued)
	}
	if m.logins != 1 {
		t.Errorf("login metric = %d, want 1", m.logins)
	}
}

// TestAuthHandler_Login_Failure は誤った資格情報でCookieが発行されず、
// フォームが再表示されることを検証する。失敗の理由は明かさない。
func TestAuthHandler_Login_Failure(t *testing.T) {
	sessions := &mockSessionWriter{}
	m := &mockAuthMetrics{}
	h := newTestAuthHandler(&mockAuthService{}, sessions, m)

	req := formRequest("/login", url.Values{
		"email":    {"sam@buildui.com"},
		"password": {"wrong"},
	})
	w := httptest.NewRecorder()

	h.Login(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if len(sessions.issued) != 0 {
		t.Errorf("issued sessions = %+v, want none", sessions.issued)
	}
	if m.logins != 0 {
		t.Errorf("login metric = %d, want 0", m.logins)
	}

	body, _ := io.ReadAll(resp.Body)
	bodyStr := string(body)
	if !strings.Contains(bodyStr, `value="sam@buildui.com"`) {
		t.Error("expected submitted email to remain in form")
	}
	if !strings.Contains(bodyStr, `name="password"`) {
		t.Error("expected login form to be re-rendered")
	}
}

// TestAuthHandler_Logout はログアウトでCookie破棄と303リダイレクトが
// 起きることを検証する。
func TestAuthHandler_Logout(t *testing.T) {
	sessions := &mockSessionWriter{}
	h := newTestAuthHandler(&mockAuthService{}, sessions, &mockAuthMetrics{})

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req = withSession(req, model.Session{IsAdmin: true})
	w := httptest.NewRecorder()

	h.Logout(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusSeeOther {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusSeeOther)
	}
	if loc := resp.Header.Get("Location"); loc != "/" {
		t.Errorf("Location = %q, want %q", loc, "/")
	}
	if sessions.cleared != 1 {
		t.Errorf("cleared = %d, want 1", sessions.cleared)
	}
}
