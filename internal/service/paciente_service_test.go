package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "github.com/NikolasPires/mind-flow/internal/errors"
	"github.com/NikolasPires/mind-flow/internal/model"
)

func TestPacienteService_Update(t *testing.T) {
	enc, userMap, pacMap, _ := newTestCrypto(t)
	pacienteID := uuid.New()

	newName := "Maria Souza"
	newEmail := "maria@example.com"
	newHistory := "Reavaliação após seis meses."
	status := model.PatientAcompanhamento

	existing, err := pacMap.ToRecord(&model.PacienteView{
		UserID: pacienteID,
		CPF:    "12345678900",
		Gender: model.GenderFeminino,
		Status: model.PatientAtivo,
	})
	require.NoError(t, err)

	reloadedUser, err := userMap.ToRecord(&model.UserView{
		ID:            pacienteID,
		Name:          newName,
		Email:         newEmail,
		Role:          model.RolePaciente,
		AccountStatus: model.AccountAtivo,
	}, "hash")
	require.NoError(t, err)
	reloaded, err := pacMap.ToRecord(&model.PacienteView{
		UserID:  pacienteID,
		CPF:     "12345678900",
		Gender:  model.GenderFeminino,
		History: newHistory,
		Status:  status,
	})
	require.NoError(t, err)
	reloaded.User = reloadedUser

	users := new(MockUserRepository)
	pacientes := new(MockPacienteRepository)
	pacientes.On("FindByUserID", mock.Anything, pacienteID).Return(existing, nil).Once()
	users.On("UpdateFields", mock.Anything, pacienteID, mock.AnythingOfType("map[string]interface {}")).Return(nil)
	pacientes.On("UpdateFields", mock.Anything, pacienteID, mock.AnythingOfType("map[string]interface {}")).Return(nil)
	pacientes.On("FindByUserID", mock.Anything, pacienteID).Return(reloaded, nil).Once()

	svc := NewPacienteService(users, pacientes, enc, pacMap, zap.NewNop())
	view, err := svc.Update(context.Background(), pacienteID, UpdatePacienteRequest{
		Name:    &newName,
		Email:   &newEmail,
		History: &newHistory,
		Status:  &status,
	})
	require.NoError(t, err)
	assert.Equal(t, newHistory, view.History)
	assert.Equal(t, status, view.Status)
	require.NotNil(t, view.User)
	assert.Equal(t, newName, view.User.Name)

	// Every changed PII field goes to the database as fresh ciphertext, and
	// an email change refreshes its fingerprint column.
	userFields := users.Calls[0].Arguments.Get(2).(map[string]interface{})
	assert.NotEqual(t, newName, userFields["name"])
	assert.NotEqual(t, newEmail, userFields["email"])
	assert.Equal(t, enc.Fingerprint(newEmail), userFields["email_hash"])

	pacienteFields := pacientes.Calls[1].Arguments.Get(2).(map[string]interface{})
	assert.NotEqual(t, newHistory, pacienteFields["history"])
	assert.Equal(t, status, pacienteFields["status"])
	assert.NotContains(t, pacienteFields, "initial_observations", "untouched fields stay out of the update")
}

func TestPacienteService_Update_EmailConflict(t *testing.T) {
	enc, _, pacMap, _ := newTestCrypto(t)
	pacienteID := uuid.New()
	newEmail := "taken@example.com"

	users := new(MockUserRepository)
	pacientes := new(MockPacienteRepository)
	pacientes.On("FindByUserID", mock.Anything, pacienteID).Return(&model.Paciente{UserID: pacienteID}, nil)
	users.On("UpdateFields", mock.Anything, pacienteID, mock.Anything).Return(gorm.ErrDuplicatedKey)

	svc := NewPacienteService(users, pacientes, enc, pacMap, zap.NewNop())
	_, err := svc.Update(context.Background(), pacienteID, UpdatePacienteRequest{Email: &newEmail})
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
}

func TestPacienteService_Update_NotFound(t *testing.T) {
	enc, _, pacMap, _ := newTestCrypto(t)

	pacientes := new(MockPacienteRepository)
	pacientes.On("FindByUserID", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	svc := NewPacienteService(new(MockUserRepository), pacientes, enc, pacMap, zap.NewNop())
	_, err := svc.Update(context.Background(), uuid.New(), UpdatePacienteRequest{})
	assert.ErrorIs(t, err, apperrors.ErrPatientNotFound)
}

func TestPacienteService_List(t *testing.T) {
	enc, userMap, pacMap, _ := newTestCrypto(t)
	psicologoID := uuid.New()

	owner, err := userMap.ToRecord(&model.UserView{
		ID:            uuid.New(),
		Name:          "Ana Silva",
		Email:         "ana@example.com",
		Role:          model.RolePaciente,
		AccountStatus: model.AccountAtivo,
	}, "hash")
	require.NoError(t, err)
	withOwner, err := pacMap.ToRecord(&model.PacienteView{
		UserID: owner.ID,
		CPF:    "12345678900",
		Gender: model.GenderFeminino,
		Status: model.PatientAtivo,
	})
	require.NoError(t, err)
	withOwner.User = owner

	orphan, err := pacMap.ToRecord(&model.PacienteView{
		UserID: uuid.New(),
		CPF:    "99988877766",
		Gender: model.GenderOutro,
		Status: model.PatientAtivo,
	})
	require.NoError(t, err)

	pacientes := new(MockPacienteRepository)
	pacientes.On("ListByPsicologo", mock.Anything, psicologoID).Return([]model.Paciente{*withOwner, *orphan}, nil)

	svc := NewPacienteService(new(MockUserRepository), pacientes, enc, pacMap, zap.NewNop())
	views, err := svc.List(context.Background(), psicologoID)
	require.NoError(t, err)

	// The orphaned row is skipped; the healthy one comes back decrypted.
	require.Len(t, views, 1)
	assert.Equal(t, "12345678900", views[0].CPF)
	require.NotNil(t, views[0].User)
	assert.Equal(t, "Ana Silva", views[0].User.Name)
}

func TestPacienteService_GetProfile(t *testing.T) {
	enc, userMap, pacMap, _ := newTestCrypto(t)

	t.Run("not found", func(t *testing.T) {
		pacientes := new(MockPacienteRepository)
		pacientes.On("FindDetails", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)

		svc := NewPacienteService(new(MockUserRepository), pacientes, enc, pacMap, zap.NewNop())
		_, err := svc.GetProfile(context.Background(), uuid.New())
		assert.ErrorIs(t, err, apperrors.ErrPatientNotFound)
	})

	t.Run("missing owner is an integrity fault", func(t *testing.T) {
		orphan, err := pacMap.ToRecord(&model.PacienteView{
			UserID: uuid.New(),
			CPF:    "12345678900",
			Gender: model.GenderOutro,
			Status: model.PatientAtivo,
		})
		require.NoError(t, err)

		pacientes := new(MockPacienteRepository)
		pacientes.On("FindDetails", mock.Anything, orphan.UserID).Return(orphan, nil)

		svc := NewPacienteService(new(MockUserRepository), pacientes, enc, pacMap, zap.NewNop())
		_, err = svc.GetProfile(context.Background(), orphan.UserID)
		assert.ErrorIs(t, err, apperrors.ErrMissingOwner)
	})

	t.Run("full details", func(t *testing.T) {
		owner, err := userMap.ToRecord(&model.UserView{
			ID:            uuid.New(),
			Name:          "Ana Silva",
			Email:         "ana@example.com",
			Role:          model.RolePaciente,
			AccountStatus: model.AccountAtivo,
		}, "hash")
		require.NoError(t, err)
		rec, err := pacMap.ToRecord(&model.PacienteView{
			UserID:  owner.ID,
			CPF:     "12345678900",
			Gender:  model.GenderFeminino,
			History: "Primeira consulta em janeiro.",
			Status:  model.PatientAtivo,
		})
		require.NoError(t, err)
		rec.User = owner
		rec.Consultas = []model.Consulta{{ID: uuid.New(), PacienteID: owner.ID}}

		pacientes := new(MockPacienteRepository)
		pacientes.On("FindDetails", mock.Anything, owner.ID).Return(rec, nil)

		svc := NewPacienteService(new(MockUserRepository), pacientes, enc, pacMap, zap.NewNop())
		details, err := svc.GetProfile(context.Background(), owner.ID)
		require.NoError(t, err)
		assert.Equal(t, "Primeira consulta em janeiro.", details.History)
		assert.Len(t, details.Consultas, 1)
	})
}
