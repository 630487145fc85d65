package tokens

import (
	"context"
	"time"

	"gorm.io/gorm"

	"barber-booking/internal/models"
)

// Denylist blocks revoked JWT ids until their natural expiry. Logout
// is the only writer.
type Denylist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// GormDenylist is the default backend, used when no redis is
// configured. Expired rows simply stop matching.
type GormDenylist struct {
	db *gorm.DB
}

func NewGormDenylist(db *gorm.DB) *GormDenylist {
	return &GormDenylist{db: db}
}

func (d *GormDenylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	return d.db.WithContext(ctx).Create(&models.RevokedToken{
		JTI:       jti,
		ExpiresAt: time.Now().Add(ttl),
	}).Error
}

func (d *GormDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var count int64
	err := d.db.WithContext(ctx).
		Model(&models.RevokedToken{}).
		Where("jti = ? AND expires_at > ?", jti, time.Now()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

var _ Denylist = (*GormDenylist)(nil)
