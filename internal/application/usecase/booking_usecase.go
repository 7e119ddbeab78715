package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/arcisai/crm-backend/internal/application/dto"
	"github.com/arcisai/crm-backend/internal/domain"
	"github.com/arcisai/crm-backend/internal/domain/entity"
	"github.com/arcisai/crm-backend/internal/domain/repository"
	"github.com/arcisai/crm-backend/pkg/logger"
)

const bookingDateLayout = "2006-01-02"

// BookingUsecase manages hoarding bookings. All money figures are
// recomputed server-side from the lines; client totals are ignored.
type BookingUsecase struct {
	bookings  repository.BookingRepository
	customers repository.CustomerRepository
	hoardings repository.HoardingRepository
	log       *logger.Logger
}

func NewBookingUsecase(
	bookings repository.BookingRepository,
	customers repository.CustomerRepository,
	hoardings repository.HoardingRepository,
	log *logger.Logger,
) *BookingUsecase {
	return &BookingUsecase{bookings: bookings, customers: customers, hoardings: hoardings, log: log}
}

func (u *BookingUsecase) Create(ctx context.Context, req dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	if req.Customer == "" || len(req.HoardingDetails) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if _, err := u.customers.GetByID(ctx, req.Customer); err != nil {
		return nil, err
	}
	start, err := time.Parse(bookingDateLayout, req.BookingStartDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	end, err := time.Parse(bookingDateLayout, req.BookingEndDate)
	if err != nil || end.Before(start) {
		return nil, domain.ErrInvalidInput
	}

	subtotal := decimal.Zero
	lines := make([]entity.BookingLine, 0, len(req.HoardingDetails))
	for _, lr := range req.HoardingDetails {
		if lr.HoardingID == "" || lr.TotalMonths <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if _, err := u.hoardings.GetByID(ctx, lr.HoardingID); err != nil {
			return nil, err
		}
		price, err := decimal.NewFromString(lr.PricePerMonth)
		if err != nil || price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		total := price.Mul(decimal.NewFromInt(int64(lr.TotalMonths)))
		lines = append(lines, entity.BookingLine{
			HoardingID:    lr.HoardingID,
			PricePerMonth: price,
			TotalMonths:   lr.TotalMonths,
			TotalAmount:   total,
		})
		subtotal = subtotal.Add(total)
	}

	discount := decimal.Zero
	if req.Discount != "" {
		discount, err = decimal.NewFromString(req.Discount)
		if err != nil || discount.IsNegative() || discount.GreaterThan(subtotal) {
			return nil, domain.ErrInvalidInput
		}
	}

	status := req.Status
	if status == "" {
		status = "pending"
	}
	b := &entity.Booking{
		ID:               uuid.NewString(),
		CustomerID:       req.Customer,
		Lines:            lines,
		BookingStartDate: start,
		BookingEndDate:   end,
		Subtotal:         subtotal,
		Discount:         discount,
		TotalAmount:      subtotal.Sub(discount),
		SalesPersonID:    req.SalesPerson,
		Status:           status,
		Notes:            req.Notes,
	}
	if err := u.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	u.log.Info().Str("booking_id", b.ID).Str("customer_id", b.CustomerID).
		Str("total", b.TotalAmount.String()).Msg("booking created")
	resp := dto.FromBooking(b)
	return &resp, nil
}

func (u *BookingUsecase) Get(ctx context.Context, id string) (*dto.BookingResponse, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	b, err := u.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.FromBooking(b)
	return &resp, nil
}

// Update changes status and notes. Lines and totals are immutable after
// creation; a wrong booking is deleted and recreated.
func (u *BookingUsecase) Update(ctx context.Context, id string, req dto.UpdateBookingRequest) (*dto.BookingResponse, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	b, err := u.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status != "" {
		b.Status = req.Status
	}
	if req.Notes != "" {
		b.Notes = req.Notes
	}
	if err := u.bookings.Update(ctx, b); err != nil {
		return nil, err
	}
	resp := dto.FromBooking(b)
	return &resp, nil
}

func (u *BookingUsecase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return u.bookings.Delete(ctx, id)
}

func (u *BookingUsecase) List(ctx context.Context) ([]dto.BookingResponse, error) {
	bs, err := u.bookings.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BookingResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, dto.FromBooking(b))
	}
	return out, nil
}
