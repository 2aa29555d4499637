package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/NikolasPires/mind-flow/internal/model"
)

// UserRepository defines user persistence operations. Registration creates
// the User and its role profile as one logical unit, so the pairing variants
// run inside a transaction.
type UserRepository interface {
	CreateWithPaciente(ctx context.Context, user *model.User, paciente *model.Paciente) error
	CreateWithPsicologo(ctx context.Context, user *model.User, psicologo *model.Psicologo) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByIDWithProfiles(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByEmailHash(ctx context.Context, emailHash string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateWithPaciente persists a user and its patient profile transactionally.
func (r *userRepository) CreateWithPaciente(ctx context.Context, user *model.User, paciente *model.Paciente) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		paciente.UserID = user.ID
		return tx.Create(paciente).Error
	})
}

// CreateWithPsicologo persists a user and its professional profile
// transactionally.
func (r *userRepository) CreateWithPsicologo(ctx context.Context, user *model.User, psicologo *model.Psicologo) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		psicologo.UserID = user.ID
		return tx.Create(psicologo).Error
	})
}

// FindByID finds a user by ID.
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByIDWithProfiles finds a user with its role profile preloaded.
func (r *userRepository) FindByIDWithProfiles(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Preload("Paciente").
		Preload("Psicologo").
		Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmailHash finds a user by the deterministic email fingerprint. This
// is the only equality lookup possible on the encrypted email column.
func (r *userRepository) FindByEmailHash(ctx context.Context, emailHash string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email_hash = ?", emailHash).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Update saves an existing user.
func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// UpdateFields applies a partial column update.
func (r *userRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(fields).Error
}
