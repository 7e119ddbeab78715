package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arcisai/crm-backend/internal/application/dto"
	"github.com/arcisai/crm-backend/internal/domain"
	"github.com/arcisai/crm-backend/internal/domain/entity"
	"github.com/arcisai/crm-backend/internal/domain/repository"
	"github.com/arcisai/crm-backend/pkg/logger"
)

// EnquiryUsecase manages inbound enquiries. Notes are append-only: an
// enquiry's history is never rewritten.
type EnquiryUsecase struct {
	enquiries repository.EnquiryRepository
	log       *logger.Logger
}

func NewEnquiryUsecase(enquiries repository.EnquiryRepository, log *logger.Logger) *EnquiryUsecase {
	return &EnquiryUsecase{enquiries: enquiries, log: log}
}

func (u *EnquiryUsecase) Create(ctx context.Context, req dto.CreateEnquiryRequest) (*dto.EnquiryResponse, error) {
	name := strings.TrimSpace(req.Name)
	mobile := strings.TrimSpace(req.Mobile)
	if name == "" || mobile == "" {
		return nil, domain.ErrInvalidInput
	}
	e := &entity.Enquiry{
		ID:      uuid.NewString(),
		Name:    name,
		Mobile:  mobile,
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Company: strings.TrimSpace(req.Company),
		Status:  "open",
	}
	if note := strings.TrimSpace(req.Notes); note != "" {
		e.Notes = []entity.EnquiryNote{{Text: note, CreatedAt: time.Now()}}
	}
	if err := u.enquiries.Create(ctx, e); err != nil {
		return nil, err
	}
	u.log.Info().Str("enquiry_id", e.ID).Msg("enquiry created")
	resp := dto.FromEnquiry(e)
	return &resp, nil
}

func (u *EnquiryUsecase) Update(ctx context.Context, id string, req dto.UpdateEnquiryRequest) (*dto.EnquiryResponse, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	e, err := u.enquiries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		e.Name = strings.TrimSpace(req.Name)
	}
	if req.Mobile != "" {
		e.Mobile = strings.TrimSpace(req.Mobile)
	}
	if req.Email != "" {
		e.Email = strings.ToLower(strings.TrimSpace(req.Email))
	}
	if req.Company != "" {
		e.Company = strings.TrimSpace(req.Company)
	}
	if req.Status != "" {
		e.Status = req.Status
	}
	now := time.Now()
	for _, n := range req.NewNotes {
		if text := strings.TrimSpace(n); text != "" {
			e.Notes = append(e.Notes, entity.EnquiryNote{Text: text, CreatedAt: now})
		}
	}
	if err := u.enquiries.Update(ctx, e); err != nil {
		return nil, err
	}
	resp := dto.FromEnquiry(e)
	return &resp, nil
}

func (u *EnquiryUsecase) List(ctx context.Context) ([]dto.EnquiryResponse, error) {
	es, err := u.enquiries.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EnquiryResponse, 0, len(es))
	for _, e := range es {
		out = append(out, dto.FromEnquiry(e))
	}
	return out, nil
}
