package admins

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bath14971-sudo/dom-car-finder/pkg/db/models"
)

// Repository resolves admin grants from the admin_users table.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an admins repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Check implements Checker. An unparseable user ID is a denial, not an error;
// only an actual lookup failure yields the pending state.
func (r *Repository) Check(ctx context.Context, userID string) (Decision, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return DecisionDenied, nil
	}

	var grant models.AdminUser
	if err := r.db.WithContext(ctx).Where("user_id = ?", id).First(&grant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DecisionDenied, nil
		}
		return DecisionPending, err
	}
	return DecisionAuthorized, nil
}

// Grant records an admin capability for the user, ignoring duplicates.
func (r *Repository) Grant(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Exec(`INSERT INTO admin_users (user_id) VALUES (?) ON CONFLICT (user_id) DO NOTHING`, userID).
		Error
}

// Revoke removes the admin capability if present.
func (r *Repository) Revoke(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.AdminUser{}).
		Error
}
