package main

import (
	"context"
	"errors"
	"log"

	"go.uber.org/zap"

	"github.com/NikolasPires/mind-flow/internal/config"
	"github.com/NikolasPires/mind-flow/internal/db"
	"github.com/NikolasPires/mind-flow/internal/encryption"
	apperrors "github.com/NikolasPires/mind-flow/internal/errors"
	"github.com/NikolasPires/mind-flow/internal/mapper"
	"github.com/NikolasPires/mind-flow/internal/model"
	"github.com/NikolasPires/mind-flow/internal/repository"
	"github.com/NikolasPires/mind-flow/internal/service"
)

type seedPatient struct {
	Name   string
	Email  string
	CPF    string
	Gender model.Gender
	Phone  string
}

var demoPatients = []seedPatient{
	{Name: "Ana Clara Souza", Email: "ana.souza@example.com", CPF: "39053344705", Gender: model.GenderFeminino, Phone: "+55 11 91234-5678"},
	{Name: "Bruno Lima", Email: "bruno.lima@example.com", CPF: "15350946056", Gender: model.GenderMasculino, Phone: "+55 11 99876-5432"},
	{Name: "Carla Mendes", Email: "carla.mendes@example.com", CPF: "45317828791", Gender: model.GenderFeminino, Phone: ""},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	keyring, err := encryption.ParseKeyring(cfg.EncryptionKeys)
	if err != nil {
		log.Fatalf("Failed to parse encryption keyring: %v", err)
	}
	enc, err := encryption.NewService(keyring, cfg.EncryptionActiveKey)
	if err != nil {
		log.Fatalf("Failed to init encryption service: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Paciente{},
		&model.Psicologo{},
		&model.Consulta{},
		&model.Transcricao{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	logger := zap.NewNop()
	userRepo := repository.NewUserRepository(gormDB)
	pacienteRepo := repository.NewPacienteRepository(gormDB)
	psicologoRepo := repository.NewPsicologoRepository(gormDB)
	userMapper := mapper.NewUserMapper(enc, logger)
	pacienteMapper := mapper.NewPacienteMapper(enc, userMapper, logger)
	psicologoMapper := mapper.NewPsicologoMapper(enc, logger)
	registration := service.NewRegistrationService(userRepo, pacienteRepo, psicologoRepo, enc, userMapper, pacienteMapper, psicologoMapper)

	ctx := context.Background()

	psicologo, err := registration.RegisterPsicologo(ctx, service.RegisterPsicologoRequest{
		Name:     "Dra. Helena Martins",
		Email:    "helena.martins@example.com",
		Password: "mindflow123",
		CRP:      "06/123456",
	})
	switch {
	case err == nil:
		log.Printf("Created demo psicologo: %s", psicologo.Email)
	case errors.Is(err, apperrors.ErrEmailTaken):
		log.Println("Demo psicologo already exists, looking up existing account")
		existing, err := userRepo.FindByEmailHash(ctx, enc.Fingerprint("helena.martins@example.com"))
		if err != nil {
			log.Fatalf("Failed to load existing psicologo: %v", err)
		}
		psicologo = userMapper.ToView(existing)
	default:
		log.Fatalf("Failed to create demo psicologo: %v", err)
	}

	seeded, skipped := 0, 0
	for _, p := range demoPatients {
		_, err := registration.RegisterPacienteWithPsicologo(ctx, service.RegisterPacienteRequest{
			Name:     p.Name,
			Email:    p.Email,
			Password: "mindflow123",
			CPF:      p.CPF,
			Gender:   p.Gender,
			Phone:    p.Phone,
		}, psicologo.ID)
		if err != nil {
			if errors.Is(err, apperrors.ErrEmailTaken) || errors.Is(err, apperrors.ErrCPFTaken) {
				log.Printf("Skipping existing patient: %s", p.Email)
				skipped++
				continue
			}
			log.Fatalf("Failed to create patient %s: %v", p.Email, err)
		}
		seeded++
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New patients created: %d", seeded)
	log.Printf("  - Existing patients skipped: %d", skipped)
}
