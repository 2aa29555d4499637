package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/NikolasPires/mind-flow/internal/model"
)

func TestExportService_PatientRosterXLSX(t *testing.T) {
	enc, userMap, pacMap, _ := newTestCrypto(t)
	psicologoID := uuid.New()

	owner, err := userMap.ToRecord(&model.UserView{
		ID:            uuid.New(),
		Name:          "Ana Silva",
		Email:         "ana@example.com",
		Phone:         "+55 11 91234-5678",
		Role:          model.RolePaciente,
		AccountStatus: model.AccountAtivo,
	}, "hash")
	require.NoError(t, err)
	patient, err := pacMap.ToRecord(&model.PacienteView{
		UserID: owner.ID,
		CPF:    "12345678900",
		Gender: model.GenderFeminino,
		Status: model.PatientAtivo,
	})
	require.NoError(t, err)
	patient.User = owner

	pacientes := new(MockPacienteRepository)
	pacientes.On("ListByPsicologo", mock.Anything, psicologoID).Return([]model.Paciente{*patient}, nil)

	pacService := NewPacienteService(new(MockUserRepository), pacientes, enc, pacMap, zap.NewNop())
	svc := NewExportService(pacService)

	data, err := svc.PatientRosterXLSX(context.Background(), psicologoID)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	// The sheet must carry the decrypted values, not ciphertext.
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Pacientes")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Nome", "Email", "Telefone", "CPF", "Gênero", "Status", "Cadastro"}, rows[0][:7])
	assert.Equal(t, "Ana Silva", rows[1][0])
	assert.Equal(t, "ana@example.com", rows[1][1])
	assert.Equal(t, "12345678900", rows[1][3])
	assert.Equal(t, "ATIVO", rows[1][5])
}
