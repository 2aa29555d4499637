package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/NikolasPires/mind-flow/internal/model"
)

const rosterSheet = "Pacientes"

// ExportService renders downloadable reports for the professional.
type ExportService interface {
	PatientRosterXLSX(ctx context.Context, psicologoID uuid.UUID) ([]byte, error)
}

type exportService struct {
	pacientes PacienteService
}

// NewExportService creates a new export service. It reuses the patient
// service so the roster goes through the same decryption path as the API.
func NewExportService(pacientes PacienteService) ExportService {
	return &exportService{pacientes: pacientes}
}

// PatientRosterXLSX renders the professional's patient roster as a
// spreadsheet with decrypted identity columns.
func (s *exportService) PatientRosterXLSX(ctx context.Context, psicologoID uuid.UUID) ([]byte, error) {
	views, err := s.pacientes.List(ctx, psicologoID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(rosterSheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	headers := []string{"Nome", "Email", "Telefone", "CPF", "Gênero", "Status", "Cadastro"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(rosterSheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, view := range views {
		values := []interface{}{
			userField(view.User, func(u *model.UserView) string { return u.Name }),
			userField(view.User, func(u *model.UserView) string { return u.Email }),
			userField(view.User, func(u *model.UserView) string { return u.Phone }),
			view.CPF,
			string(view.Gender),
			string(view.Status),
			"",
		}
		if view.User != nil {
			values[6] = view.User.CreatedAt.Format("02/01/2006")
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(rosterSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func userField(u *model.UserView, get func(*model.UserView) string) string {
	if u == nil {
		return ""
	}
	return get(u)
}
