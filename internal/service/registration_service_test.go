package service

import (
	"context"
	"crypto/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/NikolasPires/mind-flow/internal/encryption"
	apperrors "github.com/NikolasPires/mind-flow/internal/errors"
	"github.com/NikolasPires/mind-flow/internal/mapper"
	"github.com/NikolasPires/mind-flow/internal/model"
)

func newTestCrypto(t *testing.T) (*encryption.Service, *mapper.UserMapper, *mapper.PacienteMapper, *mapper.PsicologoMapper) {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	enc, err := encryption.NewService(encryption.Keyring{"v1": key}, "v1")
	require.NoError(t, err)
	log := zap.NewNop()
	userMap := mapper.NewUserMapper(enc, log)
	return enc, userMap, mapper.NewPacienteMapper(enc, userMap, log), mapper.NewPsicologoMapper(enc, log)
}

func TestRegistrationService_RegisterPaciente(t *testing.T) {
	req := RegisterPacienteRequest{
		Name:     "Ana Silva",
		Email:    "ana@example.com",
		Password: "abcdef",
		CPF:      "12345678900",
		Gender:   model.GenderFeminino,
	}

	tests := []struct {
		name          string
		setupMocks    func(enc *encryption.Service, users *MockUserRepository, pacientes *MockPacienteRepository)
		expectedError error
	}{
		{
			name: "successful registration",
			setupMocks: func(enc *encryption.Service, users *MockUserRepository, pacientes *MockPacienteRepository) {
				users.On("FindByEmailHash", mock.Anything, enc.Fingerprint(req.Email)).Return(nil, gorm.ErrRecordNotFound)
				pacientes.On("FindByCPFHash", mock.Anything, enc.Fingerprint(req.CPF)).Return(nil, gorm.ErrRecordNotFound)
				users.On("CreateWithPaciente", mock.Anything, mock.AnythingOfType("*model.User"), mock.AnythingOfType("*model.Paciente")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "email already in use",
			setupMocks: func(enc *encryption.Service, users *MockUserRepository, pacientes *MockPacienteRepository) {
				users.On("FindByEmailHash", mock.Anything, enc.Fingerprint(req.Email)).Return(&model.User{}, nil)
			},
			expectedError: apperrors.ErrEmailTaken,
		},
		{
			name: "cpf already registered",
			setupMocks: func(enc *encryption.Service, users *MockUserRepository, pacientes *MockPacienteRepository) {
				users.On("FindByEmailHash", mock.Anything, enc.Fingerprint(req.Email)).Return(nil, gorm.ErrRecordNotFound)
				pacientes.On("FindByCPFHash", mock.Anything, enc.Fingerprint(req.CPF)).Return(&model.Paciente{}, nil)
			},
			expectedError: apperrors.ErrCPFTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, userMap, pacMap, psiMap := newTestCrypto(t)
			users := new(MockUserRepository)
			pacientes := new(MockPacienteRepository)
			psicologos := new(MockPsicologoRepository)
			tt.setupMocks(enc, users, pacientes)

			svc := NewRegistrationService(users, pacientes, psicologos, enc, userMap, pacMap, psiMap)
			view, err := svc.RegisterPaciente(context.Background(), req)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, view)
			} else {
				require.NoError(t, err)
				require.NotNil(t, view)
				// The caller gets plaintext back.
				assert.Equal(t, "Ana Silva", view.Name)
				assert.Equal(t, "ana@example.com", view.Email)
				assert.Equal(t, model.RolePaciente, view.Role)

				// The persisted row must not carry the literal email and
				// must carry a hashed password.
				created := users.Calls[len(users.Calls)-1].Arguments.Get(1).(*model.User)
				assert.NotEqual(t, "ana@example.com", created.Email)
				assert.NotEqual(t, "abcdef", created.Password)
				assert.Equal(t, enc.Fingerprint("ana@example.com"), created.EmailHash)

				createdPaciente := users.Calls[len(users.Calls)-1].Arguments.Get(2).(*model.Paciente)
				assert.NotEqual(t, "12345678900", createdPaciente.CPF)
				assert.Equal(t, enc.Fingerprint("12345678900"), createdPaciente.CPFHash)
			}

			users.AssertExpectations(t)
			pacientes.AssertExpectations(t)
		})
	}
}

func TestRegistrationService_ChecksAreOrderedEmailFirst(t *testing.T) {
	enc, userMap, pacMap, psiMap := newTestCrypto(t)
	users := new(MockUserRepository)
	pacientes := new(MockPacienteRepository)
	psicologos := new(MockPsicologoRepository)

	// Email is taken; the CPF check must never run and nothing is written.
	users.On("FindByEmailHash", mock.Anything, mock.Anything).Return(&model.User{}, nil)

	svc := NewRegistrationService(users, pacientes, psicologos, enc, userMap, pacMap, psiMap)
	_, err := svc.RegisterPaciente(context.Background(), RegisterPacienteRequest{
		Name:     "Bruno",
		Email:    "taken@example.com",
		Password: "abcdef",
		CPF:      "99988877766",
		Gender:   model.GenderMasculino,
	})

	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
	pacientes.AssertNotCalled(t, "FindByCPFHash", mock.Anything, mock.Anything)
	users.AssertNotCalled(t, "CreateWithPaciente", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegistrationService_DuplicateKeyRaceMapsToConflict(t *testing.T) {
	enc, userMap, pacMap, psiMap := newTestCrypto(t)
	users := new(MockUserRepository)
	pacientes := new(MockPacienteRepository)
	psicologos := new(MockPsicologoRepository)

	emailHash := enc.Fingerprint("ana@example.com")
	// Pre-checks pass, then a concurrent insert wins and the unique index
	// rejects ours.
	users.On("FindByEmailHash", mock.Anything, emailHash).Return(nil, gorm.ErrRecordNotFound).Once()
	pacientes.On("FindByCPFHash", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)
	users.On("CreateWithPaciente", mock.Anything, mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)
	users.On("FindByEmailHash", mock.Anything, emailHash).Return(&model.User{}, nil).Once()

	svc := NewRegistrationService(users, pacientes, psicologos, enc, userMap, pacMap, psiMap)
	_, err := svc.RegisterPaciente(context.Background(), RegisterPacienteRequest{
		Name:     "Ana Silva",
		Email:    "ana@example.com",
		Password: "abcdef",
		CPF:      "12345678900",
		Gender:   model.GenderFeminino,
	})

	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
}

func TestRegistrationService_RegisterPacienteWithPsicologo(t *testing.T) {
	enc, userMap, pacMap, psiMap := newTestCrypto(t)
	psicologoID := uuid.New()

	t.Run("caller is not a psicologo", func(t *testing.T) {
		users := new(MockUserRepository)
		pacientes := new(MockPacienteRepository)
		psicologos := new(MockPsicologoRepository)
		psicologos.On("Exists", mock.Anything, psicologoID).Return(false, nil)

		svc := NewRegistrationService(users, pacientes, psicologos, enc, userMap, pacMap, psiMap)
		_, err := svc.RegisterPacienteWithPsicologo(context.Background(), RegisterPacienteRequest{
			Name: "Ana", Email: "a@b.com", Password: "abcdef", CPF: "111", Gender: model.GenderOutro,
		}, psicologoID)
		assert.ErrorIs(t, err, apperrors.ErrNotPsicologo)
	})

	t.Run("links the responsible professional", func(t *testing.T) {
		users := new(MockUserRepository)
		pacientes := new(MockPacienteRepository)
		psicologos := new(MockPsicologoRepository)
		psicologos.On("Exists", mock.Anything, psicologoID).Return(true, nil)
		users.On("FindByEmailHash", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)
		pacientes.On("FindByCPFHash", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)
		users.On("CreateWithPaciente", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		svc := NewRegistrationService(users, pacientes, psicologos, enc, userMap, pacMap, psiMap)
		_, err := svc.RegisterPacienteWithPsicologo(context.Background(), RegisterPacienteRequest{
			Name: "Ana", Email: "a@b.com", Password: "abcdef", CPF: "111", Gender: model.GenderOutro,
		}, psicologoID)
		require.NoError(t, err)

		created := users.Calls[len(users.Calls)-1].Arguments.Get(2).(*model.Paciente)
		require.NotNil(t, created.PsicologoResponsavelID)
		assert.Equal(t, psicologoID, *created.PsicologoResponsavelID)
	})
}

func TestRegistrationService_RegisterPsicologo(t *testing.T) {
	enc, userMap, pacMap, psiMap := newTestCrypto(t)
	users := new(MockUserRepository)
	pacientes := new(MockPacienteRepository)
	psicologos := new(MockPsicologoRepository)

	users.On("FindByEmailHash", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)
	users.On("CreateWithPsicologo", mock.Anything, mock.AnythingOfType("*model.User"), mock.AnythingOfType("*model.Psicologo")).Return(nil)

	svc := NewRegistrationService(users, pacientes, psicologos, enc, userMap, pacMap, psiMap)
	view, err := svc.RegisterPsicologo(context.Background(), RegisterPsicologoRequest{
		Name:     "Dr. Carlos",
		Email:    "carlos@example.com",
		Password: "abcdef",
		CRP:      "06/12345",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RolePsicologo, view.Role)

	created := users.Calls[len(users.Calls)-1].Arguments.Get(2).(*model.Psicologo)
	assert.NotEqual(t, "06/12345", created.CRP, "license number is stored encrypted")
}
