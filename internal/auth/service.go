// Package auth は共有パスワードによる管理者ログインを提供する。
//
// 認証情報の照合はVerifierインターフェースの背後に置き、固定の1組と
// 比較する実装を差し替え可能にしてある。ただしこのアプリのゲートは
// 設計上の玩具であり（ハッシュ化もレート制限もロックアウトもない）、
// 本物の認証としてそのまま運用してはならない。
package auth

import (
	"crypto/subtle"
	"log/slog"

	"github.com/hitoshi/weeklog/internal/model"
)

// Verifier は認証情報の照合インターフェース。
type Verifier interface {
	// Verify は提示されたemailとpasswordの組が正しいかを返す。
	Verify(email, password string) bool
}

// StaticVerifier は設定された固定の1組と比較するVerifier実装。
type StaticVerifier struct {
	email    string
	password string
}

// NewStaticVerifier はStaticVerifierを生成する。
func NewStaticVerifier(email, password string) *StaticVerifier {
	return &StaticVerifier{email: email, password: password}
}

// Verify は両フィールドの完全一致を定数時間で比較する。
func (v *StaticVerifier) Verify(email, password string) bool {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(v.email)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(v.password)) == 1
	return emailOK && passwordOK
}

// Service はログイン状態の遷移（Anonymous⇄Admin）を駆動する。
type Service struct {
	verifier Verifier
}

// NewService はServiceを生成する。
func NewService(verifier Verifier) *Service {
	return &Service{verifier: verifier}
}

// Login はログイン試行を処理する。
// 照合に成功した場合は管理者フラグ付きのセッションとtrueを返す。
// 失敗した場合は匿名セッションとfalseを返すだけで、状態遷移もエラーも発生しない
// 失敗と「何も起きなかった」は呼び出し側から区別できない。
func (s *Service) Login(email, password string) (model.Session, bool) {
	if !s.verifier.Verify(email, password) {
		return model.Session{}, false
	}

	slog.Info("admin logged in")
	return model.Session{IsAdmin: true}, true
}
