// Package session は署名付きCookieによるセッション管理を提供する。
//
// セッションの永続状態はCookieに収まる内容（isAdminフラグ1つ）だけであり、
// サーバー側にセッションテーブルは存在しない。署名の検証に失敗したCookieは
// エラーではなく匿名セッションとして扱う。
package session

import (
	"net/http"

	"github.com/gorilla/securecookie"

	"github.com/hitoshi/weeklog/internal/model"
)

const cookieName = "weeklog_session"

// Config はセッションCookieの設定。
type Config struct {
	Secret string // HMAC署名鍵。SESSION_SECRETから供給する
	MaxAge int    // Cookie有効期間（秒）
	Secure bool
}

// Store はセッションのCookieへの書き込みと読み出しを行う。
type Store struct {
	codec  *securecookie.SecureCookie
	config Config
}

// NewStore はStoreを生成する。
// 署名にはHMAC-SHA256を使用する。暗号化はしない（格納するのは管理者フラグ
// 1つだけで秘匿する内容がないため、改ざん検知のみで足りる）。
func NewStore(config Config) *Store {
	codec := securecookie.New([]byte(config.Secret), nil)
	codec.MaxAge(config.MaxAge)

	return &Store{
		codec:  codec,
		config: config,
	}
}

// Read はリクエストのCookieからセッションを復元する。
// Cookieが存在しない、署名が不正、期限切れのいずれの場合も
// エラーにせずゼロ値（匿名セッション）を返す。
func (s *Store) Read(r *http.Request) model.Session {
	cookie, err := r.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return model.Session{}
	}

	var sess model.Session
	if err := s.codec.Decode(cookieName, cookie.Value, &sess); err != nil {
		return model.Session{}
	}

	return sess
}

// Issue はセッションを署名してCookieとしてクライアントに発行する。
func (s *Store) Issue(w http.ResponseWriter, sess model.Session) error {
	encoded, err := s.codec.Encode(cookieName, sess)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   s.config.MaxAge,
		HttpOnly: true,
		Secure:   s.config.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear はセッションCookieを破棄する。
func (s *Store) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.config.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
