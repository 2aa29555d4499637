package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/NikolasPires/mind-flow/internal/cache"
	"github.com/NikolasPires/mind-flow/internal/mapper"
	"github.com/NikolasPires/mind-flow/internal/model"
	"github.com/NikolasPires/mind-flow/internal/repository"
)

const (
	summaryCacheTTL  = time.Minute
	agendaLimit      = 50
	recentPatientMax = 3
)

// AgendaItem is one appointment in the day's agenda, carrying the decrypted
// identity of its patient.
type AgendaItem struct {
	ID         uuid.UUID            `json:"id"`
	PacienteID uuid.UUID            `json:"paciente_id"`
	Horario    time.Time            `json:"horario"`
	Tipo       string               `json:"tipo"`
	Categoria  string               `json:"categoria"`
	Tags       model.Tags           `json:"tags"`
	Status     model.ConsultaStatus `json:"status"`
	Paciente   *model.PacienteView  `json:"paciente,omitempty"`
}

// Summary is the professional's dashboard payload.
type Summary struct {
	TodayCount     int64                `json:"todayCount"`
	TodayAgenda    []AgendaItem         `json:"todayAgenda"`
	RecentPatients []model.PacienteView `json:"recentPatients"`
}

// DashboardService aggregates the professional's day view.
type DashboardService interface {
	TodaySummary(ctx context.Context, psicologoID uuid.UUID) (*Summary, error)
}

type dashboardService struct {
	consultas repository.ConsultaRepository
	pacientes repository.PacienteRepository
	pacMap    *mapper.PacienteMapper
	cache     *cache.Client
	logger    *zap.Logger
	now       func() time.Time
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(
	consultas repository.ConsultaRepository,
	pacientes repository.PacienteRepository,
	pacMap *mapper.PacienteMapper,
	cacheClient *cache.Client,
	logger *zap.Logger,
) DashboardService {
	return &dashboardService{
		consultas: consultas,
		pacientes: pacientes,
		pacMap:    pacMap,
		cache:     cacheClient,
		logger:    logger,
		now:       time.Now,
	}
}

func summaryCacheKey(psicologoID uuid.UUID) string {
	return fmt.Sprintf("dashboard:summary:%s", psicologoID)
}

// TodaySummary returns today's session count, the ordered agenda and the
// most recently touched patients. The result is cached briefly; the cache
// degrades to a miss when Redis is unavailable.
func (s *dashboardService) TodaySummary(ctx context.Context, psicologoID uuid.UUID) (*Summary, error) {
	key := summaryCacheKey(psicologoID)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached Summary
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	start, end := dayRange(s.now())

	count, err := s.consultas.CountForPsicologoBetween(ctx, psicologoID, start, end)
	if err != nil {
		return nil, fmt.Errorf("count today: %w", err)
	}

	agenda, err := s.consultas.AgendaForPsicologoBetween(ctx, psicologoID, start, end, agendaLimit)
	if err != nil {
		return nil, fmt.Errorf("load agenda: %w", err)
	}

	items := make([]AgendaItem, 0, len(agenda))
	for i := range agenda {
		c := &agenda[i]
		item := AgendaItem{
			ID:         c.ID,
			PacienteID: c.PacienteID,
			Horario:    c.Horario,
			Tipo:       c.Tipo,
			Categoria:  c.Categoria,
			Tags:       c.Tags,
			Status:     c.Status,
		}
		if c.Paciente != nil {
			item.Paciente = s.pacMap.ToView(c.Paciente)
		}
		items = append(items, item)
	}

	recent, err := s.pacientes.ListRecentByPsicologo(ctx, psicologoID, recentPatientMax)
	if err != nil {
		return nil, fmt.Errorf("load recent patients: %w", err)
	}
	recentViews := make([]model.PacienteView, 0, len(recent))
	for i := range recent {
		view, err := s.pacMap.ToViewWithUser(&recent[i])
		if err != nil {
			s.logger.Error("skipping paciente without owner", zap.String("user_id", recent[i].UserID.String()), zap.Error(err))
			continue
		}
		recentViews = append(recentViews, *view)
	}

	summary := &Summary{
		TodayCount:     count,
		TodayAgenda:    items,
		RecentPatients: recentViews,
	}
	if payload, err := json.Marshal(summary); err == nil {
		_ = s.cache.Set(ctx, key, payload, summaryCacheTTL)
	}
	return summary, nil
}

// dayRange returns the inclusive bounds of the calendar day containing t.
func dayRange(t time.Time) (time.Time, time.Time) {
	year, month, day := t.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}
