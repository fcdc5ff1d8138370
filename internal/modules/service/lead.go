package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/marsestates/brokerage-api/internal/infra/mq"
	"github.com/marsestates/brokerage-api/internal/modules/model"
	"github.com/marsestates/brokerage-api/internal/modules/repo"
)

// LeadView enriches a lead with its (possibly deleted) project and
// unit context for the back-office table.
type LeadView struct {
	model.Lead
	Project *model.Project `json:"project,omitempty"`
	Unit    *model.Unit    `json:"unit,omitempty"`
}

// LeadCreatedEvent is published to the notification queue after each
// successful inquiry insert.
type LeadCreatedEvent struct {
	Event string     `json:"event"`
	Lead  model.Lead `json:"lead"`
}

type LeadService interface {
	List(ctx context.Context) ([]LeadView, error)
	Create(ctx context.Context, l *model.Lead) error
	Delete(ctx context.Context, id int) (bool, error)
}

type leadService struct {
	leads    repo.LeadRepo
	projects repo.ProjectRepo
	units    repo.UnitRepo
	events   *mq.Publisher
	log      *zap.Logger
}

func NewLeadService(leads repo.LeadRepo, projects repo.ProjectRepo, units repo.UnitRepo, events *mq.Publisher, log *zap.Logger) LeadService {
	return &leadService{leads: leads, projects: projects, units: units, events: events, log: log}
}

func (s *leadService) List(ctx context.Context) ([]LeadView, error) {
	leads, err := s.leads.List(ctx)
	if err != nil {
		return nil, err
	}

	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	units, err := s.units.List(ctx, repo.UnitFilters{})
	if err != nil {
		return nil, err
	}

	projectByID := make(map[int]*model.Project, len(projects))
	for i := range projects {
		projectByID[projects[i].ID] = &projects[i]
	}
	unitByID := make(map[int]*model.Unit, len(units))
	for i := range units {
		unitByID[units[i].ID] = &units[i]
	}

	views := make([]LeadView, 0, len(leads))
	for _, l := range leads {
		v := LeadView{Lead: l}
		if l.ProjectID != nil {
			v.Project = projectByID[*l.ProjectID]
		}
		if l.UnitID != nil {
			v.Unit = unitByID[*l.UnitID]
		}
		views = append(views, v)
	}
	return views, nil
}

func (s *leadService) Create(ctx context.Context, l *model.Lead) error {
	if err := s.leads.Create(ctx, l); err != nil {
		return err
	}

	// The lead is persisted; a failed publish is logged, never surfaced.
	if err := s.events.Publish(ctx, LeadCreatedEvent{Event: "lead.created", Lead: *l}); err != nil {
		s.log.Sugar().Errorw("lead event publish failed", "leadId", l.ID, "err", err)
	}
	return nil
}

func (s *leadService) Delete(ctx context.Context, id int) (bool, error) {
	return s.leads.Delete(ctx, id)
}
