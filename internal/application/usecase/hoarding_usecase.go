package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/arcisai/crm-backend/internal/application/dto"
	"github.com/arcisai/crm-backend/internal/domain"
	"github.com/arcisai/crm-backend/internal/domain/entity"
	"github.com/arcisai/crm-backend/internal/domain/repository"
	"github.com/arcisai/crm-backend/pkg/logger"
)

// HoardingUsecase manages the advertising site inventory.
type HoardingUsecase struct {
	hoardings repository.HoardingRepository
	log       *logger.Logger
}

func NewHoardingUsecase(hoardings repository.HoardingRepository, log *logger.Logger) *HoardingUsecase {
	return &HoardingUsecase{hoardings: hoardings, log: log}
}

func (u *HoardingUsecase) Create(ctx context.Context, req dto.CreateHoardingRequest) (*dto.HoardingResponse, error) {
	name := strings.TrimSpace(req.Name)
	location := strings.TrimSpace(req.Location)
	if name == "" || location == "" {
		return nil, domain.ErrInvalidInput
	}
	rent, err := parseAmount(req.RentAmount)
	if err != nil {
		return nil, err
	}
	price, err := parseAmount(req.PricePerMonth)
	if err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = "available"
	}
	h := &entity.Hoarding{
		ID:              uuid.NewString(),
		Name:            name,
		Location:        location,
		Type:            req.Type,
		Size:            req.Size,
		Status:          status,
		OwnershipType:   req.OwnershipType,
		RentAmount:      rent,
		City:            strings.TrimSpace(req.City),
		Area:            strings.TrimSpace(req.Area),
		FacingDirection: req.FacingDirection,
		PricePerMonth:   price,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
	}
	if err := u.hoardings.Create(ctx, h); err != nil {
		return nil, err
	}
	u.log.Info().Str("hoarding_id", h.ID).Str("city", h.City).Msg("hoarding created")
	resp := dto.FromHoarding(h)
	return &resp, nil
}

// UpdateStatus flips a hoarding's availability.
func (u *HoardingUsecase) UpdateStatus(ctx context.Context, id string, req dto.UpdateHoardingRequest) (*dto.HoardingResponse, error) {
	if id == "" || req.Status == "" {
		return nil, domain.ErrInvalidInput
	}
	h, err := u.hoardings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	h.Status = req.Status
	if err := u.hoardings.Update(ctx, h); err != nil {
		return nil, err
	}
	resp := dto.FromHoarding(h)
	return &resp, nil
}

func (u *HoardingUsecase) List(ctx context.Context, page dto.PageRequest) ([]dto.HoardingResponse, dto.PageResponse, error) {
	page.Defaults()
	hs, total, err := u.hoardings.List(ctx, page.Search, page.Limit, page.Offset())
	if err != nil {
		return nil, dto.PageResponse{}, err
	}
	out := make([]dto.HoardingResponse, 0, len(hs))
	for _, h := range hs {
		out = append(out, dto.FromHoarding(h))
	}
	return out, dto.NewPageResponse(page, total), nil
}

// parseAmount parses a non-negative decimal string; empty means zero.
func parseAmount(s string) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero, domain.ErrInvalidInput
	}
	return d, nil
}
