// Package model はドメインモデルを定義する。
package model

import "time"

// Entry はジャーナルの1記録を表す。
// dateは時刻を持たないカレンダー日付で、UTC深夜0時のtime.Timeとして保持する。
type Entry struct {
	ID        string
	Date      time.Time
	Type      EntryType
	Text      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EntryType はエントリの種別を表す。
type EntryType string

const (
	// EntryTypeWork は仕事の記録を表す種別。
	EntryTypeWork EntryType = "work"
	// EntryTypeLearning は学びの記録を表す種別。
	EntryTypeLearning EntryType = "learning"
	// EntryTypeInteresting は面白かったことの記録を表す種別。
	EntryTypeInteresting EntryType = "interesting-thing"
)

// IsValid は種別が許可された列挙値かどうかを判定する。
func (t EntryType) IsValid() bool {
	switch t {
	case EntryTypeWork, EntryTypeLearning, EntryTypeInteresting:
		return true
	default:
		return false
	}
}
