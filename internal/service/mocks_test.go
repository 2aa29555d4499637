package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/NikolasPires/mind-flow/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateWithPaciente(ctx context.Context, user *model.User, paciente *model.Paciente) error {
	args := m.Called(ctx, user, paciente)
	return args.Error(0)
}

func (m *MockUserRepository) CreateWithPsicologo(ctx context.Context, user *model.User, psicologo *model.Psicologo) error {
	args := m.Called(ctx, user, psicologo)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDWithProfiles(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmailHash(ctx context.Context, emailHash string) (*model.User, error) {
	args := m.Called(ctx, emailHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

// MockPacienteRepository is a mock implementation of repository.PacienteRepository.
type MockPacienteRepository struct {
	mock.Mock
}

func (m *MockPacienteRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Paciente, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Paciente), args.Error(1)
}

func (m *MockPacienteRepository) FindDetails(ctx context.Context, userID uuid.UUID) (*model.Paciente, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Paciente), args.Error(1)
}

func (m *MockPacienteRepository) FindByCPFHash(ctx context.Context, cpfHash string) (*model.Paciente, error) {
	args := m.Called(ctx, cpfHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Paciente), args.Error(1)
}

func (m *MockPacienteRepository) ListByPsicologo(ctx context.Context, psicologoID uuid.UUID) ([]model.Paciente, error) {
	args := m.Called(ctx, psicologoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Paciente), args.Error(1)
}

func (m *MockPacienteRepository) ListRecentByPsicologo(ctx context.Context, psicologoID uuid.UUID, limit int) ([]model.Paciente, error) {
	args := m.Called(ctx, psicologoID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Paciente), args.Error(1)
}

func (m *MockPacienteRepository) UpdateFields(ctx context.Context, userID uuid.UUID, fields map[string]interface{}) error {
	args := m.Called(ctx, userID, fields)
	return args.Error(0)
}

// MockPsicologoRepository is a mock implementation of repository.PsicologoRepository.
type MockPsicologoRepository struct {
	mock.Mock
}

func (m *MockPsicologoRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Psicologo, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Psicologo), args.Error(1)
}

func (m *MockPsicologoRepository) Exists(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPsicologoRepository) UpdateFields(ctx context.Context, userID uuid.UUID, fields map[string]interface{}) error {
	args := m.Called(ctx, userID, fields)
	return args.Error(0)
}

// MockConsultaRepository is a mock implementation of repository.ConsultaRepository.
type MockConsultaRepository struct {
	mock.Mock
}

func (m *MockConsultaRepository) Create(ctx context.Context, consulta *model.Consulta) error {
	args := m.Called(ctx, consulta)
	return args.Error(0)
}

func (m *MockConsultaRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Consulta, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Consulta), args.Error(1)
}

func (m *MockConsultaRepository) Update(ctx context.Context, consulta *model.Consulta) error {
	args := m.Called(ctx, consulta)
	return args.Error(0)
}

func (m *MockConsultaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockConsultaRepository) ListByPaciente(ctx context.Context, pacienteID uuid.UUID) ([]model.Consulta, error) {
	args := m.Called(ctx, pacienteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Consulta), args.Error(1)
}

func (m *MockConsultaRepository) CountForPsicologoBetween(ctx context.Context, psicologoID uuid.UUID, start, end time.Time) (int64, error) {
	args := m.Called(ctx, psicologoID, start, end)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockConsultaRepository) AgendaForPsicologoBetween(ctx context.Context, psicologoID uuid.UUID, start, end time.Time, limit int) ([]model.Consulta, error) {
	args := m.Called(ctx, psicologoID, start, end, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Consulta), args.Error(1)
}

// MockTokenStore is a mock implementation of auth.TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uuid.UUID, role string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, role, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uuid.UUID, string, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(uuid.UUID), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

// MockTranscricaoRepository is a mock implementation of repository.TranscricaoRepository.
type MockTranscricaoRepository struct {
	mock.Mock
}

func (m *MockTranscricaoRepository) Create(ctx context.Context, transcricao *model.Transcricao) error {
	args := m.Called(ctx, transcricao)
	return args.Error(0)
}

func (m *MockTranscricaoRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Transcricao, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transcricao), args.Error(1)
}

func (m *MockTranscricaoRepository) Update(ctx context.Context, transcricao *model.Transcricao) error {
	args := m.Called(ctx, transcricao)
	return args.Error(0)
}

func (m *MockTranscricaoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPhotoStorage is a mock implementation of storage.PhotoStorage.
type MockPhotoStorage struct {
	mock.Mock
}

func (m *MockPhotoStorage) UploadImage(ctx context.Context, dataURI string) (string, error) {
	args := m.Called(ctx, dataURI)
	return args.String(0), args.Error(1)
}

func (m *MockPhotoStorage) DeleteImage(ctx context.Context, publicID string) error {
	args := m.Called(ctx, publicID)
	return args.Error(0)
}
