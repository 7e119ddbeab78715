package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arcisai/crm-backend/internal/application/dto"
	"github.com/arcisai/crm-backend/internal/application/sales"
)

// StockHandler holding and catalog queries.
type StockHandler struct {
	uc *sales.StockUsecase
}

func NewStockHandler(uc *sales.StockUsecase) *StockHandler {
	return &StockHandler{uc: uc}
}

// ListMine godoc
// @Summary      The caller's holdings
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        page   query  int  false  "Page"   default(1)
// @Param        limit  query  int  false  "Limit"  default(10)
// @Success      200    {object}  dto.APIResponse
// @Router       /api/crmSales/getAllStocks [get]
func (h *StockHandler) ListMine(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	out, pageMeta, err := h.uc.ListByUser(c.Context(), GetUserID(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKPage(dto.StockListResponse{Stocks: out}, pageMeta))
}

// ListParent godoc
// @Summary      The caller's parent's holdings (what can be requested)
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/crmSales/getParentStocks [get]
func (h *StockHandler) ListParent(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	out, pageMeta, err := h.uc.ListParent(c.Context(), GetUserID(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKPage(dto.StockListResponse{Stocks: out}, pageMeta))
}

// ListByUserID godoc
// @Summary      Holdings of a given user (parents inspecting children)
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "User id"
// @Success      200  {object}  dto.APIResponse
// @Router       /api/crmSales/getStocksByUserId/{id} [get]
func (h *StockHandler) ListByUserID(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	out, pageMeta, err := h.uc.ListByUser(c.Context(), c.Params("id"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKPage(dto.StockListResponse{Stocks: out}, pageMeta))
}

// ListProducts godoc
// @Summary      Product catalog
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/crmSales/getProducts [get]
func (h *StockHandler) ListProducts(c *fiber.Ctx) error {
	out, err := h.uc.ListProducts(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}
