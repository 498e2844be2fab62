package repository

import (
	"context"

	"taskhive/internal/domain"

	"gorm.io/gorm"
)

// TokenRecordRepository is the persistent record of issued refresh
// tokens. It holds no business rules: validity here means only
// "not revoked". Expiry is the codec's concern, and callers must
// enforce both.
type TokenRecordRepository struct {
	db *gorm.DB
}

func NewTokenRecordRepository(db *gorm.DB) *TokenRecordRepository {
	return &TokenRecordRepository{db: db}
}

func (r *TokenRecordRepository) Save(ctx context.Context, t *domain.TokenRecord) error {
	return r.db.WithContext(ctx).Save(t).Error
}

// FindValid returns the record for the raw token string if it exists
// and is not revoked. An expired-but-unrevoked record is still
// returned; the codec rejects it separately.
func (r *TokenRecordRepository) FindValid(ctx context.Context, token string) (*domain.TokenRecord, error) {
	var t domain.TokenRecord
	err := r.db.WithContext(ctx).
		Where("token = ? AND revoked = ?", token, false).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TokenRecordRepository) FindAllValidByPrincipal(ctx context.Context, principalUID string) ([]domain.TokenRecord, error) {
	var records []domain.TokenRecord
	err := r.db.WithContext(ctx).
		Where("principal_uid = ? AND revoked = ?", principalUID, false).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// RevokeAll flips revoked on every record in one bulk write. An empty
// input issues no write at all.
func (r *TokenRecordRepository) RevokeAll(ctx context.Context, records []domain.TokenRecord) error {
	if len(records) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(records))
	for _, t := range records {
		ids = append(ids, t.ID)
	}
	return r.db.WithContext(ctx).Model(&domain.TokenRecord{}).
		Where("id IN ?", ids).
		Update("revoked", true).Error
}

// RevokeByToken is the conditional update that resolves concurrent
// refreshes of the same token: the WHERE revoked = false guard means
// exactly one caller can win the row, with the database rather than an
// in-process lock arbitrating, so multiple server instances stay
// correct. Returns false when no unrevoked row matched.
func (r *TokenRecordRepository) RevokeByToken(ctx context.Context, token string) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&domain.TokenRecord{}).
		Where("token = ? AND revoked = ?", token, false).
		Update("revoked", true)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// DeleteByPrincipal hard-deletes every record for a principal. Used
// only by account removal, never by the session hot path.
func (r *TokenRecordRepository) DeleteByPrincipal(ctx context.Context, principalUID string) error {
	return r.db.WithContext(ctx).
		Where("principal_uid = ?", principalUID).
		Delete(&domain.TokenRecord{}).Error
}

func (r *TokenRecordRepository) DeleteByToken(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).
		Where("token = ?", token).
		Delete(&domain.TokenRecord{}).Error
}
