package handler

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/hitoshi/weeklog/internal/model"
	"github.com/hitoshi/weeklog/internal/week"
)

//go:embed templates/*.html
var templateFS embed.FS

// templateFuncs はテンプレートから呼び出すヘルパー群。
var templateFuncs = template.FuncMap{
	// weekHeading はYYYY-MM-DDの週開始日を見出し表示用に整形する。
	"weekHeading": func(weekStart string) string {
		d, err := model.ParseDate(weekStart)
		if err != nil {
			return weekStart
		}
		return d.Format("January 2, 2006")
	},
	// inputDate はdate入力フィールド用にYYYY-MM-DDへ整形する。
	"inputDate": func(d time.Time) string {
		return model.FormatDate(d)
	},
}

// Templates は埋め込みHTMLテンプレートのレンダラー。
// 各ページはlayout.htmlとページ固有のcontentブロックの組で構成する。
type Templates struct {
	index     *template.Template
	edit      *template.Template
	login     *template.Template
	errorPage *template.Template
}

// NewTemplates は埋め込みテンプレートを解析してTemplatesを生成する。
// テンプレートはビルド時に埋め込まれるので、解析失敗は起動時にpanicで落とす。
func NewTemplates() *Templates {
	parse := func(page string) *template.Template {
		return template.Must(
			template.New("layout.html").
				Funcs(templateFuncs).
				ParseFS(templateFS, "templates/layout.html", "templates/"+page),
		)
	}

	return &Templates{
		index:     parse("index.html"),
		edit:      parse("edit.html"),
		login:     parse("login.html"),
		errorPage: parse("error.html"),
	}
}

// indexData はジャーナルページの描画データ。
type indexData struct {
	IsAdmin bool
	Today   string
	Groups  []week.WeekGroup
}

// editData は編集ページの描画データ。
type editData struct {
	IsAdmin bool
	Entry   *model.Entry
}

// loginData はログインページの描画データ。
type loginData struct {
	IsAdmin bool
	// Email は失敗時にフォームへ戻す入力値。
	Email string
}

// errorData はエラーページの描画データ。
type errorData struct {
	IsAdmin    bool
	Status     int
	StatusText string
	Message    string
	Action     string
}

// render はテンプレートを一度バッファに描画してから書き込む。
// 描画途中の失敗で半端なHTMLがクライアントに届くのを防ぐ。
func render(w io.Writer, t *template.Template, data interface{}) error {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}
