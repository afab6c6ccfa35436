package mysql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"NGO_Platform/internal/model"
	"NGO_Platform/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecordRow stores one record as a JSON document. Seq preserves insertion order.
type RecordRow struct {
	Seq       uint64 `gorm:"primaryKey;autoIncrement"`
	Kind      string `gorm:"size:32;not null;uniqueIndex:uk_kind_record;index:idx_kind_lookup,priority:1"`
	RecordID  string `gorm:"size:32;not null;uniqueIndex:uk_kind_record"`
	Lookup    string `gorm:"size:255;not null;default:'';index:idx_kind_lookup,priority:2"`
	Body      string `gorm:"type:json;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (RecordRow) TableName() string { return "records" }

// CounterRow holds the last id handed out per kind.
type CounterRow struct {
	Kind  string `gorm:"primaryKey;size:32"`
	Value uint64 `gorm:"not null;default:0"`
}

func (CounterRow) TableName() string { return "record_counters" }

type RecordRepository struct {
	DB *gorm.DB
}

var _ repository.Backend = (*RecordRepository)(nil)

func NewRecordRepository(db *gorm.DB) *RecordRepository {
	return &RecordRepository{DB: db}
}

// NextID bumps the kind's counter under a row lock.
func (r *RecordRepository) NextID(ctx context.Context, kind model.Kind) (string, error) {
	var next uint64
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c CounterRow
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("kind = ?", string(kind)).
			First(&c).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			next = 1
			return tx.Create(&CounterRow{Kind: string(kind), Value: next}).Error
		}
		if err != nil {
			return err
		}
		next = c.Value + 1
		return tx.Model(&CounterRow{}).Where("kind = ?", string(kind)).Update("value", next).Error
	})
	if err != nil {
		return "", fmt.Errorf("next %s id: %w", kind, err)
	}
	return strconv.FormatUint(next, 10), nil
}

func (r *RecordRepository) Insert(ctx context.Context, kind model.Kind, rec model.Record) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s: %w", kind, err)
	}
	row := &RecordRow{
		Kind:     string(kind),
		RecordID: rec.ID(),
		Lookup:   lookupValue(kind, rec),
		Body:     string(body),
	}
	return r.DB.WithContext(ctx).Create(row).Error
}

func (r *RecordRepository) Get(ctx context.Context, kind model.Kind, id string) (model.Record, error) {
	var row RecordRow
	err := r.DB.WithContext(ctx).
		Where("kind = ? AND record_id = ?", string(kind), id).
		First(&row).Error
	if err != nil {
		return nil, notFound(err)
	}
	return decode(row)
}

func (r *RecordRepository) FindBy(ctx context.Context, kind model.Kind, field, value string) (model.Record, error) {
	if field != repository.IndexedFields[kind] {
		list, err := r.List(ctx, kind)
		if err != nil {
			return nil, err
		}
		for _, rec := range list {
			if rec.String(field) == value {
				return rec, nil
			}
		}
		return nil, repository.ErrNoRecord
	}
	if value == "" {
		return nil, repository.ErrNoRecord
	}

	var row RecordRow
	err := r.DB.WithContext(ctx).
		Where("kind = ? AND lookup = ?", string(kind), value).
		Order("seq ASC").
		First(&row).Error
	if err != nil {
		return nil, notFound(err)
	}
	return decode(row)
}

func (r *RecordRepository) List(ctx context.Context, kind model.Kind) ([]model.Record, error) {
	var rows []RecordRow
	if err := r.DB.WithContext(ctx).
		Where("kind = ?", string(kind)).
		Order("seq ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]model.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := decode(row)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// Replace rewrites the body and lookup column in a single UPDATE.
func (r *RecordRepository) Replace(ctx context.Context, kind model.Kind, id string, rec model.Record) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s: %w", kind, err)
	}
	tx := r.DB.WithContext(ctx).Model(&RecordRow{}).
		Where("kind = ? AND record_id = ?", string(kind), id).
		Updates(map[string]any{
			"body":   string(body),
			"lookup": lookupValue(kind, rec),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		// MySQL reports 0 affected rows when nothing changed, so confirm the row is gone.
		var n int64
		if err := r.DB.WithContext(ctx).Model(&RecordRow{}).
			Where("kind = ? AND record_id = ?", string(kind), id).
			Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return repository.ErrNoRecord
		}
	}
	return nil
}

func (r *RecordRepository) Delete(ctx context.Context, kind model.Kind, id string) error {
	tx := r.DB.WithContext(ctx).
		Where("kind = ? AND record_id = ?", string(kind), id).
		Delete(&RecordRow{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return repository.ErrNoRecord
	}
	return nil
}

func lookupValue(kind model.Kind, rec model.Record) string {
	field, ok := repository.IndexedFields[kind]
	if !ok {
		return ""
	}
	return rec.String(field)
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrNoRecord
	}
	return err
}

func decode(row RecordRow) (model.Record, error) {
	var rec model.Record
	if err := json.Unmarshal([]byte(row.Body), &rec); err != nil {
		return nil, fmt.Errorf("decode %s/%s: %w", row.Kind, row.RecordID, err)
	}
	return rec, nil
}
