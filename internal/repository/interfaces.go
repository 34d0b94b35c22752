// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"

	"github.com/hitoshi/weeklog/internal/model"
)

// EntryRepository はエントリデータの永続化インターフェース。
// 単一レコードの原子的な操作のみを提供する。複数レコードのトランザクションや
// 楽観ロックは持たず、同一エントリへの同時編集は後勝ちになる。
type EntryRepository interface {
	// Create はエントリを作成する。
	Create(ctx context.Context, entry *model.Entry) error

	// FindByID は指定IDのエントリを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.Entry, error)

	// ListAll は全エントリをcreated_at昇順（同時刻はid昇順）で返す。
	// 週単位の集約は呼び出し側が毎回行い、結果はキャッシュしない。
	ListAll(ctx context.Context) ([]model.Entry, error)

	// Update はエントリの全フィールドを上書き更新する。
	// 対象が存在しない場合はfalseを返す。部分更新はサポートしない。
	Update(ctx context.Context, entry *model.Entry) (bool, error)

	// Delete は指定IDのエントリを削除する。
	// 対象が存在しない場合はfalseを返す。
	Delete(ctx context.Context, id string) (bool, error)
}
