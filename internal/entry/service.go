// Package entry はジャーナルエントリの作成・更新・削除・取得の
// ビジネスロジックを提供する。
package entry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hitoshi/weeklog/internal/model"
	"github.com/hitoshi/weeklog/internal/repository"
	"github.com/hitoshi/weeklog/internal/security"
)

// Input はフォームから受け取る作成・更新共通の入力値。
// 部分更新はサポートせず、3フィールドは常に揃って送信される。
type Input struct {
	Date string // YYYY-MM-DD
	Type string
	Text string
}

// Service はエントリに関するビジネスロジックを提供する。
type Service struct {
	repo      repository.EntryRepository
	sanitizer security.TextSanitizerService
}

// NewService はServiceを生成する。
func NewService(repo repository.EntryRepository, sanitizer security.TextSanitizerService) *Service {
	return &Service{
		repo:      repo,
		sanitizer: sanitizer,
	}
}

// Create は新しいエントリを作成する。認証は要求しない。
// 日付が不正、種別が列挙外、本文が空（サニタイズ後）の場合は
// VALIDATION_FAILEDを返し、何も永続化しない。
func (s *Service) Create(ctx context.Context, in Input) (*model.Entry, error) {
	date, typ, text, err := s.validate(in)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry := &model.Entry{
		ID:        uuid.New().String(),
		Date:      date,
		Type:      typ,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, model.NewStoreError(err)
	}

	slog.Info("entry created",
		slog.String("entry_id", entry.ID),
		slog.String("entry_type", string(entry.Type)),
		slog.String("entry_date", model.FormatDate(entry.Date)),
	)

	return entry, nil
}

// Update は既存エントリの全フィールドを上書きする。
// 管理者セッションでない場合はNOT_AUTHORIZED、IDが未知の場合は
// ENTRY_NOT_FOUND、入力が不正な場合はVALIDATION_FAILEDを返す。
// いずれの失敗でも変更は発生しない。
func (s *Service) Update(ctx context.Context, sess model.Session, id string, in Input) (*model.Entry, error) {
	if !sess.IsAdmin {
		return nil, model.NewNotAuthorizedError()
	}

	date, typ, text, err := s.validate(in)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, model.NewStoreError(err)
	}
	if existing == nil {
		return nil, model.NewEntryNotFoundError(id)
	}

	existing.Date = date
	existing.Type = typ
	existing.Text = text
	existing.UpdatedAt = time.Now().UTC()

	found, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, model.NewStoreError(err)
	}
	if !found {
		// FindByIDと更新の間に削除された場合
		return nil, model.NewEntryNotFoundError(id)
	}

	slog.Info("entry updated", slog.String("entry_id", id))

	return existing, nil
}

// Delete は指定IDのエントリを削除する。
// 管理者セッションでない場合はNOT_AUTHORIZED、IDが未知の場合は
// ENTRY_NOT_FOUNDを返す（暗黙の成功にはしない）。
func (s *Service) Delete(ctx context.Context, sess model.Session, id string) error {
	if !sess.IsAdmin {
		return model.NewNotAuthorizedError()
	}

	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return model.NewStoreError(err)
	}
	if !found {
		return model.NewEntryNotFoundError(id)
	}

	slog.Info("entry deleted", slog.String("entry_id", id))

	return nil
}

// Get は指定IDのエントリを取得する。IDが未知の場合はENTRY_NOT_FOUNDを返す。
func (s *Service) Get(ctx context.Context, id string) (*model.Entry, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, model.NewStoreError(err)
	}
	if entry == nil {
		return nil, model.NewEntryNotFoundError(id)
	}
	return entry, nil
}

// List は全エントリをストア順で返す。週単位の集約は呼び出し側で行う。
func (s *Service) List(ctx context.Context) ([]model.Entry, error) {
	entries, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, model.NewStoreError(err)
	}
	return entries, nil
}

// validate は入力値を検証し、正規化済みの値を返す。
func (s *Service) validate(in Input) (time.Time, model.EntryType, string, error) {
	date, err := model.ParseDate(in.Date)
	if err != nil {
		return time.Time{}, "", "", model.NewValidationError(fmt.Sprintf("日付の形式が不正です: %q", in.Date))
	}

	typ := model.EntryType(in.Type)
	if !typ.IsValid() {
		return time.Time{}, "", "", model.NewValidationError(fmt.Sprintf("未知の種別です: %q", in.Type))
	}

	text := s.sanitizer.Sanitize(in.Text)
	if text == "" {
		return time.Time{}, "", "", model.NewValidationError("本文が空です")
	}

	return date, typ, text, nil
}
