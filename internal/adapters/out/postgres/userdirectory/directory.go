// Package userdirectory provides the read-only GORM adapter resolving user
// display names. User accounts are managed outside this service; this
// adapter only reads the minimal profile needed to compose notifications.
package userdirectory

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDTO represents the database structure for user profiles.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string
	LastName  string
}

// TableName specifies the database table name for user profiles.
func (UserDTO) TableName() string {
	return "users"
}

// GormUserDirectory implements UserDirectory using GORM.
type GormUserDirectory struct {
	db *gorm.DB
}

// NewGormUserDirectory creates a new GORM user directory.
func NewGormUserDirectory(db *gorm.DB) *GormUserDirectory {
	return &GormUserDirectory{db: db}
}

// FindByID retrieves a user's display profile.
// Returns *errs.ObjectNotFoundError when the user does not exist; callers
// composing notification copy degrade to a placeholder on that error.
func (d *GormUserDirectory) FindByID(ctx context.Context, id kernel.UUID) (ports.UserProfile, error) {
	if err := id.Validate(); err != nil {
		return ports.UserProfile{}, err
	}

	var dto UserDTO
	if err := d.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.UserProfile{}, errs.NewObjectNotFoundError("user", id.String())
		}
		return ports.UserProfile{}, err
	}

	return ports.UserProfile{
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
	}, nil
}
