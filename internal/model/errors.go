package model

import "fmt"

// AppError は統一エラーフォーマットを表す。
// UIに表示する原因カテゴリと対処方法を含む。
type AppError struct {
	Code     string // エラーコード
	Message  string // エラーメッセージ
	Category string // カテゴリ: auth, validation, store, system
	Action   string // ユーザー向け対処方法
}

// Error はerrorインターフェースを実装する。
func (e *AppError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeEntryNotFound    = "ENTRY_NOT_FOUND"
	ErrCodeNotAuthorized    = "NOT_AUTHORIZED"
	ErrCodeStoreError       = "STORE_ERROR"
)

// NewValidationError は入力値検証エラーを生成する。
func NewValidationError(reason string) *AppError {
	return &AppError{
		Code:     ErrCodeValidationFailed,
		Message:  fmt.Sprintf("入力内容が正しくありません: %s", reason),
		Category: "validation",
		Action:   "日付・種別・本文を確認してから再度送信してください。",
	}
}

// NewEntryNotFoundError はエントリ未検出エラーを生成する。
func NewEntryNotFoundError(entryID string) *AppError {
	return &AppError{
		Code:     ErrCodeEntryNotFound,
		Message:  fmt.Sprintf("指定されたエントリが見つかりません: %s", entryID),
		Category: "validation",
		Action:   "一覧ページに戻ってエントリを選び直してください。",
	}
}

// NewNotAuthorizedError は管理者権限がないセッションによる変更操作のエラーを生成する。
func NewNotAuthorizedError() *AppError {
	return &AppError{
		Code:     ErrCodeNotAuthorized,
		Message:  "この操作には管理者としてのログインが必要です。",
		Category: "auth",
		Action:   "ログインページからサインインしてください。",
	}
}

// NewStoreError はデータベース障害のエラーを生成する。
// 呼び出し側で握りつぶさず、そのままトップレベルのエラーページまで伝播させること。
func NewStoreError(err error) *AppError {
	return &AppError{
		Code:     ErrCodeStoreError,
		Message:  fmt.Sprintf("データベース操作に失敗しました: %v", err),
		Category: "store",
		Action:   "しばらく待ってから再度お試しください。",
	}
}
