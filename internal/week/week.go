// Package week はエントリを暦週単位のグループに集約する純粋関数を提供する。
//
// 週の起点は日曜日とする。グループは表示のたびに毎回導出し、
// 永続化もキャッシュもしない。
package week

import (
	"sort"
	"time"

	"github.com/hitoshi/weeklog/internal/model"
)

// WeekGroup は同じ暦週に属するエントリを種別ごとに分けたもの。
type WeekGroup struct {
	// WeekStart はその週の日曜日のYYYY-MM-DD表現。
	WeekStart string
	// 種別ごとのバケツ。各バケツ内の順序は入力順を保存する。
	Work              []model.Entry
	Learnings         []model.Entry
	InterestingThings []model.Entry
}

// StartOfWeek はdの属する週の起点（d以前で最も近い日曜日）を返す。
// dが日曜日の場合はd自身を返す。結果は常にUTC深夜0時に正規化される。
func StartOfWeek(d time.Time) time.Time {
	d = d.UTC()
	sunday := d.AddDate(0, 0, -int(d.Weekday()))
	return time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 0, 0, 0, 0, time.UTC)
}

// Group は順序付けされていないエントリ列を週順のWeekGroup列に変換する。
//
//  1. 各エントリのweekStart（直前の日曜日）を求める
//  2. weekStartのYYYY-MM-DD文字列をキーにグループ化する（入力順を保存）
//  3. キーを辞書順昇順にソートする。固定幅のISO形式なので時系列昇順と等価
//  4. 各グループ内で種別ごとに分配する。相対順序は保存される
//
// 空の入力には空のスライスを返す。空のバケツはフィールドとしては残るが、
// テンプレート側で描画を省略する。
func Group(entries []model.Entry) []WeekGroup {
	byWeek := map[string][]model.Entry{}
	keys := []string{}

	for _, entry := range entries {
		key := model.FormatDate(StartOfWeek(entry.Date))
		if _, ok := byWeek[key]; !ok {
			keys = append(keys, key)
		}
		byWeek[key] = append(byWeek[key], entry)
	}

	sort.Strings(keys)

	groups := make([]WeekGroup, 0, len(keys))
	for _, key := range keys {
		g := WeekGroup{WeekStart: key}
		for _, entry := range byWeek[key] {
			switch entry.Type {
			case model.EntryTypeWork:
				g.Work = append(g.Work, entry)
			case model.EntryTypeLearning:
				g.Learnings = append(g.Learnings, entry)
			case model.EntryTypeInteresting:
				g.InterestingThings = append(g.InterestingThings, entry)
			}
		}
		groups = append(groups, g)
	}

	return groups
}
