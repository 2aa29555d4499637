package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/NikolasPires/mind-flow/internal/encryption"
	apperrors "github.com/NikolasPires/mind-flow/internal/errors"
	"github.com/NikolasPires/mind-flow/internal/mapper"
	"github.com/NikolasPires/mind-flow/internal/model"
	"github.com/NikolasPires/mind-flow/internal/repository"
	"github.com/NikolasPires/mind-flow/internal/storage"
)

// UpdateProfileRequest carries the mutable /users/me fields. Nil pointers
// mean "leave unchanged". PhotoURL may be a data URI, in which case the image
// is uploaded to the external provider first; an empty string clears the
// photo.
type UpdateProfileRequest struct {
	Name     *string
	Email    *string
	Phone    *string
	PhotoURL *string

	// Professional profile fields, ignored for patients.
	Bio              *string
	ScheduleSettings *string
}

// ProfileService exposes the authenticated user's own profile.
type ProfileService interface {
	Me(ctx context.Context, userID uuid.UUID) (*model.ProfileView, error)
	UpdateMe(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*model.ProfileView, error)
}

type profileService struct {
	users      repository.UserRepository
	psicologos repository.PsicologoRepository
	enc        *encryption.Service
	userMap    *mapper.UserMapper
	pacMap     *mapper.PacienteMapper
	psiMap     *mapper.PsicologoMapper
	photos     storage.PhotoStorage
	logger     *zap.Logger
}

// NewProfileService creates a new profile service.
func NewProfileService(
	users repository.UserRepository,
	psicologos repository.PsicologoRepository,
	enc *encryption.Service,
	userMap *mapper.UserMapper,
	pacMap *mapper.PacienteMapper,
	psiMap *mapper.PsicologoMapper,
	photos storage.PhotoStorage,
	logger *zap.Logger,
) ProfileService {
	return &profileService{
		users:      users,
		psicologos: psicologos,
		enc:        enc,
		userMap:    userMap,
		pacMap:     pacMap,
		psiMap:     psiMap,
		photos:     photos,
		logger:     logger,
	}
}

// Me returns the decrypted profile for either role.
func (s *profileService) Me(ctx context.Context, userID uuid.UUID) (*model.ProfileView, error) {
	user, err := s.users.FindByIDWithProfiles(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	return s.profileView(user), nil
}

// UpdateMe applies a partial profile update. A data URI photo is uploaded
// first and the whole operation fails if the provider rejects it; deleting
// the replaced photo afterwards is best effort only.
func (s *profileService) UpdateMe(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*model.ProfileView, error) {
	user, err := s.users.FindByIDWithProfiles(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	oldPhotoURL := user.PhotoURL
	fields := map[string]interface{}{}

	if req.PhotoURL != nil {
		newPhotoURL := *req.PhotoURL
		if strings.HasPrefix(newPhotoURL, "data:") {
			uploaded, err := s.photos.UploadImage(ctx, newPhotoURL)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", apperrors.ErrPhotoUpload, err)
			}
			newPhotoURL = uploaded
		}
		fields["photo_url"] = newPhotoURL

		if oldPhotoURL != "" && newPhotoURL != oldPhotoURL {
			if publicID := storage.ExtractPublicID(oldPhotoURL); publicID != "" {
				if err := s.photos.DeleteImage(ctx, publicID); err != nil {
					// The replaced image is orphaned either way; the
					// primary record stays correct.
					s.logger.Warn("failed to delete replaced photo", zap.String("public_id", publicID), zap.Error(err))
				}
			}
		}
	}

	if req.Name != nil {
		ct, err := s.enc.Encrypt(*req.Name)
		if err != nil {
			return nil, fmt.Errorf("encrypt name: %w", err)
		}
		fields["name"] = ct
	}
	if req.Email != nil {
		ct, err := s.enc.Encrypt(*req.Email)
		if err != nil {
			return nil, fmt.Errorf("encrypt email: %w", err)
		}
		fields["email"] = ct
		fields["email_hash"] = s.enc.Fingerprint(*req.Email)
	}
	if req.Phone != nil {
		ct, err := s.enc.Encrypt(*req.Phone)
		if err != nil {
			return nil, fmt.Errorf("encrypt phone: %w", err)
		}
		fields["phone"] = ct
	}

	if len(fields) > 0 {
		if err := s.users.UpdateFields(ctx, userID, fields); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, apperrors.ErrEmailTaken
			}
			return nil, fmt.Errorf("update user: %w", err)
		}
	}

	if user.Role == model.RolePsicologo && user.Psicologo != nil {
		psiFields := map[string]interface{}{}
		if req.Bio != nil {
			psiFields["bio"] = *req.Bio
		}
		if req.ScheduleSettings != nil {
			psiFields["schedule_settings"] = *req.ScheduleSettings
		}
		if len(psiFields) > 0 {
			if err := s.psicologos.UpdateFields(ctx, userID, psiFields); err != nil {
				return nil, fmt.Errorf("update psicologo: %w", err)
			}
		}
	}

	updated, err := s.users.FindByIDWithProfiles(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reload user: %w", err)
	}
	return s.profileView(updated), nil
}

func (s *profileService) profileView(user *model.User) *model.ProfileView {
	view := &model.ProfileView{UserView: *s.userMap.ToView(user)}
	if user.Paciente != nil {
		view.Paciente = s.pacMap.ToView(user.Paciente)
	}
	if user.Psicologo != nil {
		view.Psicologo = s.psiMap.ToView(user.Psicologo)
	}
	return view
}
