package dto

import "github.com/arcisai/crm-backend/internal/domain/entity"

// FromUser maps an entity to its wire view. The password hash never leaves
// the application layer.
func FromUser(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Mobile:    u.Mobile,
		Role:      u.Roles,
		ParentID:  u.ParentID,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func FromProduct(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:    p.ID,
		Name:  p.Name,
		SKU:   p.SKU,
		Price: p.Price.String(),
	}
}

func FromStock(s *entity.Stock, p *entity.Product) StockResponse {
	out := StockResponse{
		ID:        s.ID,
		UserID:    s.UserID,
		ProductID: s.ProductID,
		Quantity:  s.Quantity,
	}
	if p != nil {
		pr := FromProduct(p)
		out.Product = &pr
	}
	return out
}

func FromStockRequest(r *entity.StockRequest, p *entity.Product, actions []string) StockRequestResponse {
	out := StockRequestResponse{
		ID:          r.ID,
		RequesterID: r.RequesterID,
		ParentID:    r.ParentID,
		ProductID:   r.ProductID,
		Quantity:    r.Quantity,
		Remarks:     r.Remarks,
		Status:      r.Status,
		Actions:     actions,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if p != nil {
		pr := FromProduct(p)
		out.Product = &pr
	}
	return out
}

func FromOrder(o *entity.Order, p *entity.Product, receiver *entity.User) OrderResponse {
	out := OrderResponse{
		ID:         o.ID,
		CreatorID:  o.CreatorID,
		ProductID:  o.ProductID,
		Quantity:   o.Quantity,
		FinalPrice: o.FinalPrice.String(),
		FormData:   o.Customer,
		Status:     o.Status,
		CreatedAt:  o.CreatedAt,
	}
	if p != nil {
		pr := FromProduct(p)
		out.Product = &pr
	}
	if receiver != nil {
		ur := FromUser(receiver)
		out.RequestedBy = &ur
	}
	return out
}

func FromLead(l *entity.Lead) LeadResponse {
	return LeadResponse{
		ID:           l.ID,
		Name:         l.Name,
		Mobile:       l.Mobile,
		Email:        l.Email,
		Company:      l.Company,
		Location:     l.Location,
		IndustryType: l.IndustryType,
		CustomerType: l.CustomerType,
		Status:       l.Status,
		AssignedTo:   l.AssignedTo,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

func FromEnquiry(e *entity.Enquiry) EnquiryResponse {
	return EnquiryResponse{
		ID:        e.ID,
		Name:      e.Name,
		Mobile:    e.Mobile,
		Email:     e.Email,
		Company:   e.Company,
		Notes:     e.Notes,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func FromHoarding(h *entity.Hoarding) HoardingResponse {
	return HoardingResponse{
		ID:              h.ID,
		Name:            h.Name,
		Location:        h.Location,
		Type:            h.Type,
		Size:            h.Size,
		Status:          h.Status,
		OwnershipType:   h.OwnershipType,
		RentAmount:      h.RentAmount.String(),
		City:            h.City,
		Area:            h.Area,
		FacingDirection: h.FacingDirection,
		PricePerMonth:   h.PricePerMonth.String(),
		Latitude:        h.Latitude,
		Longitude:       h.Longitude,
		CreatedAt:       h.CreatedAt,
		UpdatedAt:       h.UpdatedAt,
	}
}

func FromCustomer(c *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Mobile:    c.Mobile,
		Address:   c.Address,
		City:      c.City,
		Area:      c.Area,
		Segments:  c.Segments,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func FromBooking(b *entity.Booking) BookingResponse {
	lines := make([]BookingLineResponse, 0, len(b.Lines))
	for _, l := range b.Lines {
		lines = append(lines, BookingLineResponse{
			HoardingID:    l.HoardingID,
			PricePerMonth: l.PricePerMonth.String(),
			TotalMonths:   l.TotalMonths,
			TotalAmount:   l.TotalAmount.String(),
		})
	}
	return BookingResponse{
		ID:               b.ID,
		CustomerID:       b.CustomerID,
		HoardingDetails:  lines,
		BookingStartDate: b.BookingStartDate.Format("2006-01-02"),
		BookingEndDate:   b.BookingEndDate.Format("2006-01-02"),
		Subtotal:         b.Subtotal.String(),
		Discount:         b.Discount.String(),
		TotalAmount:      b.TotalAmount.String(),
		SalesPersonID:    b.SalesPersonID,
		Status:           b.Status,
		Notes:            b.Notes,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}
