// Package http wires the Fiber handlers, middleware and routes.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arcisai/crm-backend/internal/application/auth"
	"github.com/arcisai/crm-backend/internal/application/sales"
	"github.com/arcisai/crm-backend/internal/application/usecase"
	"github.com/arcisai/crm-backend/internal/domain/access"
	"github.com/arcisai/crm-backend/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC      *auth.Usecase
	UserUC      *usecase.UserUsecase
	DashboardUC *usecase.DashboardUsecase
	LeadUC      *usecase.LeadUsecase
	EnquiryUC   *usecase.EnquiryUsecase
	HoardingUC  *usecase.HoardingUsecase
	CustomerUC  *usecase.CustomerUsecase
	BookingUC   *usecase.BookingUsecase
	RequestUC   *sales.RequestUsecase
	OrderUC     *sales.OrderUsecase
	StockUC     *sales.StockUsecase
	Tracker     *ActivityTracker
	JWTSecret   string
}

// Router registers the API routes. Route names mirror the SPA's endpoints.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC, deps.Tracker)
	userHandler := NewUserHandler(deps.UserUC)
	adminHandler := NewAdminHandler(deps.UserUC, deps.DashboardUC)
	leadHandler := NewLeadHandler(deps.LeadUC)
	enquiryHandler := NewEnquiryHandler(deps.EnquiryUC)
	hoardingHandler := NewHoardingHandler(deps.HoardingUC)
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	bookingHandler := NewBookingHandler(deps.BookingUC)
	requestHandler := NewRequestHandler(deps.RequestUC)
	orderHandler := NewOrderHandler(deps.OrderUC)
	stockHandler := NewStockHandler(deps.StockUC)

	authMW := AuthMiddleware(deps.JWTSecret)
	activityMW := deps.Tracker.Middleware()

	// Users: login is public, everything else requires a session.
	users := api.Group("/users")
	users.Post("/login", authHandler.Login)
	users.Get("/logout", authMW, authHandler.Logout) // logout works even on an idled session
	usersAuthed := users.Group("/", authMW, activityMW)
	usersAuthed.Get("/me", authHandler.Me)
	usersAuthed.Post("/createEmsUser", userHandler.CreateEmsUser)
	usersAuthed.Get("/getSalesUsers", userHandler.GetSalesUsers)
	usersAuthed.Get("/getUsersByRole", RequireRoute(access.RouteHierarchy), userHandler.GetUsersByRole)
	usersAuthed.Get("/getChildrenByUserId/:id", RequireRoute(access.RouteHierarchy), userHandler.GetChildrenByUserID)
	usersAuthed.Get("/getMyChildren", RequireRoute(access.RouteMyTeam), userHandler.GetMyChildren)

	// Admin surface.
	admin := api.Group("/admin", authMW, activityMW, RequireRoles(entity.RoleAdmin))
	admin.Get("/getAllEmsUsers", adminHandler.GetAllEmsUsers)
	admin.Put("/updateEmsUser", adminHandler.UpdateEmsUser)
	admin.Delete("/deleteEmsUser/:id", adminHandler.DeleteEmsUser)
	admin.Get("/getDashboardData", adminHandler.GetDashboardData)

	// CRM sales surface: leads for everyone authenticated; requests, orders
	// and stocks denied to marketing-lead-only role sets.
	crm := api.Group("/crmSales", authMW, activityMW)
	crm.Post("/createLead", leadHandler.Create)
	crm.Get("/getAllLeads", leadHandler.List)
	crm.Put("/updateLead", leadHandler.Update)
	crm.Delete("/deleteLead", leadHandler.Delete)
	crm.Post("/createBulkUpload", leadHandler.BulkUpload)

	requests := crm.Group("/", RequireRoute(access.RouteRequests))
	requests.Post("/createRequest", requestHandler.Create)
	requests.Put("/updateRequest/:id", requestHandler.Update)
	requests.Delete("/deleteRequest/:id", requestHandler.Delete)
	requests.Get("/getAllRequests", requestHandler.ListAssigned)
	requests.Get("/getMyRequests", requestHandler.ListMine)
	requests.Get("/getApprovedRequests", requestHandler.ListApproved)

	orders := crm.Group("/", RequireRoute(access.RouteOrders))
	orders.Post("/createOrder", orderHandler.Create)
	orders.Get("/getMyOrders", orderHandler.ListMine)
	orders.Get("/getProducts", stockHandler.ListProducts)
	orders.Get("/getAllStocks", stockHandler.ListMine)
	orders.Get("/getParentStocks", stockHandler.ListParent)
	orders.Get("/getStocksByUserId/:id", stockHandler.ListByUserID)

	// Hoarding surface: sites and enquiries for everyone authenticated;
	// customers and bookings follow the route table.
	hoardings := api.Group("/hoardings", authMW, activityMW)
	hoardings.Get("/getAllHoardings", hoardingHandler.List)
	hoardings.Post("/createHoarding", hoardingHandler.Create)
	hoardings.Post("/updateHoarding/:id", hoardingHandler.UpdateStatus)
	hoardings.Post("/enquiries", enquiryHandler.Create)
	hoardings.Get("/enquiries", enquiryHandler.List)
	hoardings.Put("/enquiries/:id", enquiryHandler.Update)

	customers := hoardings.Group("/", RequireRoute(access.RouteCustomers))
	customers.Get("/getAllCustomers", customerHandler.List)
	customers.Post("/customers", customerHandler.Create)
	customers.Put("/customers/:id", customerHandler.Update)
	customers.Delete("/customers/:id", customerHandler.Delete)

	bookings := hoardings.Group("/", RequireRoute(access.RouteOrders))
	bookings.Get("/getAllOrders", bookingHandler.List)
	bookings.Post("/createOrder", bookingHandler.Create)
	bookings.Get("/getOrderById/:id", bookingHandler.Get)
	bookings.Put("/updateOrder/:id", bookingHandler.Update)
	bookings.Delete("/deleteOrder/:id", bookingHandler.Delete)
}
