package model

import "time"

// DateLayout は日付のみの文字列表現のレイアウト。
const DateLayout = "2006-01-02"

// ParseDate はYYYY-MM-DD形式の文字列をカレンダー日付としてパースする。
// タイムゾーンは常にUTCに固定する。ホストのローカルゾーンでパースすると
// 負のUTCオフセット環境で曜日計算が1日ずれるため、パースとフォーマットは
// 必ずこの関数とFormatDateを通すこと。
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// FormatDate はカレンダー日付をYYYY-MM-DD形式の文字列に変換する。
func FormatDate(d time.Time) string {
	return d.UTC().Format(DateLayout)
}
