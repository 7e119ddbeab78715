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

// CustomerUsecase manages hoarding customers.
type CustomerUsecase struct {
	customers repository.CustomerRepository
	log       *logger.Logger
}

func NewCustomerUsecase(customers repository.CustomerRepository, log *logger.Logger) *CustomerUsecase {
	return &CustomerUsecase{customers: customers, log: log}
}

func (u *CustomerUsecase) Create(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	name := strings.TrimSpace(req.Name)
	mobile := strings.TrimSpace(req.Mobile)
	if name == "" || mobile == "" {
		return nil, domain.ErrInvalidInput
	}
	c := &entity.Customer{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Mobile:   mobile,
		Address:  strings.TrimSpace(req.Address),
		City:     strings.TrimSpace(req.City),
		Area:     strings.TrimSpace(req.Area),
		Segments: req.Segments,
	}
	if err := u.customers.Create(ctx, c); err != nil {
		return nil, err
	}
	u.log.Info().Str("customer_id", c.ID).Msg("customer created")
	resp := dto.FromCustomer(c)
	return &resp, nil
}

func (u *CustomerUsecase) Update(ctx context.Context, id string, req dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	c, err := u.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		c.Name = strings.TrimSpace(req.Name)
	}
	if req.Email != "" {
		c.Email = strings.ToLower(strings.TrimSpace(req.Email))
	}
	if req.Mobile != "" {
		c.Mobile = strings.TrimSpace(req.Mobile)
	}
	if req.Address != "" {
		c.Address = strings.TrimSpace(req.Address)
	}
	if req.City != "" {
		c.City = strings.TrimSpace(req.City)
	}
	if req.Area != "" {
		c.Area = strings.TrimSpace(req.Area)
	}
	if req.Segments != nil {
		c.Segments = req.Segments
	}
	if err := u.customers.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := dto.FromCustomer(c)
	return &resp, nil
}

func (u *CustomerUsecase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return u.customers.Delete(ctx, id)
}

func (u *CustomerUsecase) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	cs, err := u.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, dto.FromCustomer(c))
	}
	return out, nil
}
