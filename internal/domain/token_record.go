package domain

import "time"

// TokenRecord tracks an issued refresh token server-side.
//
// Security notes:
//   - The Token column holds the raw signed refresh token and is the
//     lookup key on every refresh call.
//   - Revocation is a flag, not a delete: rows survive rotation and
//     logout so that reuse of a rotated-away token is detectable.
//     Hard deletion happens only in the retention cleanup binary.
type TokenRecord struct {
	ID int64 `json:"id" gorm:"primaryKey"`

	Token        string `json:"-" gorm:"uniqueIndex;not null"`
	PrincipalUID string `json:"principal_uid" gorm:"size:36;index;not null"`
	Revoked      bool   `json:"revoked" gorm:"not null;default:false"`

	ExpiresAt time.Time `json:"expires_at" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (t *TokenRecord) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
