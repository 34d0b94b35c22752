package model

// Session はクライアント側の署名付きCookieに格納されるセッション状態を表す。
// サーバー側にセッションテーブルは持たず、永続化されるのはこの構造体の
// 内容だけである。ゼロ値は匿名セッションを意味する。
type Session struct {
	IsAdmin bool
}
