package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/arcisai/crm-backend/internal/application/dto"
	"github.com/arcisai/crm-backend/internal/domain"
	"github.com/arcisai/crm-backend/internal/domain/entity"
	"github.com/arcisai/crm-backend/internal/domain/repository"
	"github.com/arcisai/crm-backend/pkg/logger"
)

// LeadUsecase manages CRM leads.
type LeadUsecase struct {
	leads repository.LeadRepository
	log   *logger.Logger
}

func NewLeadUsecase(leads repository.LeadRepository, log *logger.Logger) *LeadUsecase {
	return &LeadUsecase{leads: leads, log: log}
}

func leadFromCreate(req dto.CreateLeadRequest) (*entity.Lead, error) {
	name := strings.TrimSpace(req.Name)
	mobile := strings.TrimSpace(req.Mobile)
	if name == "" || mobile == "" {
		return nil, domain.ErrInvalidInput
	}
	return &entity.Lead{
		ID:           uuid.NewString(),
		Name:         name,
		Mobile:       mobile,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Company:      strings.TrimSpace(req.Company),
		Location:     strings.TrimSpace(req.Location),
		IndustryType: req.IndustryType,
		CustomerType: req.CustomerType,
		Status:       "new",
	}, nil
}

func (u *LeadUsecase) Create(ctx context.Context, req dto.CreateLeadRequest) (*dto.LeadResponse, error) {
	l, err := leadFromCreate(req)
	if err != nil {
		return nil, err
	}
	if err := u.leads.Create(ctx, l); err != nil {
		return nil, err
	}
	u.log.Info().Str("lead_id", l.ID).Msg("lead created")
	resp := dto.FromLead(l)
	return &resp, nil
}

// BulkUpload persists pre-parsed spreadsheet rows in one batch. A single
// bad row fails the whole upload so the caller can fix and retry the file.
func (u *LeadUsecase) BulkUpload(ctx context.Context, req dto.BulkUploadRequest) (int, error) {
	if len(req.Data) == 0 {
		return 0, domain.ErrInvalidInput
	}
	leads := make([]*entity.Lead, 0, len(req.Data))
	for _, row := range req.Data {
		l, err := leadFromCreate(row)
		if err != nil {
			return 0, err
		}
		leads = append(leads, l)
	}
	if err := u.leads.CreateBatch(ctx, leads); err != nil {
		return 0, err
	}
	u.log.Info().Int("count", len(leads)).Msg("leads bulk uploaded")
	return len(leads), nil
}

func (u *LeadUsecase) Update(ctx context.Context, id string, req dto.UpdateLeadRequest) (*dto.LeadResponse, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	l, err := u.leads.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		l.Name = strings.TrimSpace(req.Name)
	}
	if req.Mobile != "" {
		l.Mobile = strings.TrimSpace(req.Mobile)
	}
	if req.Email != "" {
		l.Email = strings.ToLower(strings.TrimSpace(req.Email))
	}
	if req.Company != "" {
		l.Company = strings.TrimSpace(req.Company)
	}
	if req.Location != "" {
		l.Location = strings.TrimSpace(req.Location)
	}
	if req.IndustryType != "" {
		l.IndustryType = req.IndustryType
	}
	if req.CustomerType != "" {
		l.CustomerType = req.CustomerType
	}
	if req.Status != "" {
		l.Status = req.Status
	}
	if req.AssignedTo != "" {
		l.AssignedTo = req.AssignedTo
	}
	if err := u.leads.Update(ctx, l); err != nil {
		return nil, err
	}
	resp := dto.FromLead(l)
	return &resp, nil
}

func (u *LeadUsecase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return u.leads.Delete(ctx, id)
}

func (u *LeadUsecase) List(ctx context.Context, page dto.PageRequest) ([]dto.LeadResponse, dto.PageResponse, error) {
	page.Defaults()
	ls, total, err := u.leads.List(ctx, page.Search, page.Limit, page.Offset())
	if err != nil {
		return nil, dto.PageResponse{}, err
	}
	out := make([]dto.LeadResponse, 0, len(ls))
	for _, l := range ls {
		out = append(out, dto.FromLead(l))
	}
	return out, dto.NewPageResponse(page, total), nil
}
