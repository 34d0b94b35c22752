// Package security はアプリケーションのセキュリティ機能を提供する。
//
// TextSanitizerService は投稿されたエントリ本文からHTMLを除去し、
// 保存されるのが平文テキストだけであることを保証する。
// ジャーナルの本文はリッチテキストではないため、許可タグを一切持たない
// bluemondayの厳格ポリシーを使用する。
package security

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// TextSanitizerService はエントリ本文のサニタイズ機能のインターフェースを定義する。
// 本文の保存前に使用される。
type TextSanitizerService interface {
	// Sanitize は入力からすべてのHTMLタグを除去した平文を返す。
	// 実体参照はデコードして元の文字に戻す（表示時のエスケープはテンプレート層の責務）。
	// 前後の空白は除去する。同一入力に対して常に同一出力を返す（冪等）。
	Sanitize(raw string) string
}

// textSanitizer はTextSanitizerServiceの実装。
// bluemondayのポリシーを保持し、スレッドセーフにサニタイズ処理を行う。
type textSanitizer struct {
	policy *bluemonday.Policy
}

// NewTextSanitizer はTextSanitizerServiceの新しいインスタンスを生成する。
// StrictPolicyは許可タグを一切持たず、すべてのHTML要素を除去する。
func NewTextSanitizer() *textSanitizer {
	return &textSanitizer{
		policy: bluemonday.StrictPolicy(),
	}
}

// Sanitize は入力からすべてのHTMLタグを除去した平文を返す。
func (s *textSanitizer) Sanitize(raw string) string {
	stripped := s.policy.Sanitize(raw)
	// StrictPolicyは残ったテキストを実体参照にエスケープするため、
	// 平文として保存する前にデコードして戻す。
	return strings.TrimSpace(html.UnescapeString(stripped))
}
