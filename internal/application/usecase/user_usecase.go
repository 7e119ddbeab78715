// Package usecase implements the non-stock application services: users and
// hierarchy, leads, enquiries, hoardings, customers, bookings and the
// dashboard.
package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/arcisai/crm-backend/internal/application/dto"
	"github.com/arcisai/crm-backend/internal/domain"
	"github.com/arcisai/crm-backend/internal/domain/entity"
	"github.com/arcisai/crm-backend/internal/domain/repository"
	"github.com/arcisai/crm-backend/pkg/logger"
)

// flatRoles may be assigned to non-hierarchy users by an admin-side creator.
var flatRoles = map[string]bool{
	entity.RoleSales:         true,
	entity.RoleMarketing:     true,
	entity.RoleMarketingLead: true,
	entity.RoleITSupport:     true,
	entity.RoleSupervisor:    true,
	entity.RoleEnquiry:       true,
}

// childRoleFor maps a creator's hierarchy role to the role it may create
// below itself.
var childRoleFor = map[string]string{
	entity.RoleStockist:    entity.RoleDistributor,
	entity.RoleDistributor: entity.RoleDealer,
}

// UserUsecase manages user accounts and the distribution hierarchy.
type UserUsecase struct {
	users repository.UserRepository
	log   *logger.Logger
}

func NewUserUsecase(users repository.UserRepository, log *logger.Logger) *UserUsecase {
	return &UserUsecase{users: users, log: log}
}

// Create adds a user under the hierarchy rules:
//   - admin/sales/marketing create flat users and stockists,
//   - a stockist creates distributors, a distributor creates dealers,
//   - hierarchy children record their creator as parent.
func (u *UserUsecase) Create(ctx context.Context, creatorID string, req dto.CreateEmsUserRequest) (*dto.UserResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	role := strings.TrimSpace(req.Role)
	if name == "" || email == "" || req.Password == "" || role == "" {
		return nil, domain.ErrInvalidInput
	}

	creator, err := u.users.GetByID(ctx, creatorID)
	if err != nil {
		return nil, err
	}

	parentID := ""
	switch {
	case role == entity.RoleStockist:
		if !creator.HasAnyRole(entity.RoleAdmin, entity.RoleSales, entity.RoleMarketing) {
			return nil, domain.ErrForbidden
		}
		parentID = creatorID
	case role == entity.RoleDistributor || role == entity.RoleDealer:
		want := ""
		for from, to := range childRoleFor {
			if to == role {
				want = from
			}
		}
		if !creator.HasRole(want) && !creator.HasRole(entity.RoleAdmin) {
			return nil, domain.ErrForbidden
		}
		parentID = creatorID
		if req.ParentID != "" && creator.HasRole(entity.RoleAdmin) {
			// An admin may graft a child under an explicit parent.
			parent, err := u.users.GetByID(ctx, req.ParentID)
			if err != nil {
				return nil, err
			}
			if !parent.HasRole(want) {
				return nil, domain.ErrInvalidInput
			}
			parentID = parent.ID
		}
	case flatRoles[role]:
		if !creator.HasAnyRole(entity.RoleAdmin, entity.RoleSales, entity.RoleMarketing) {
			return nil, domain.ErrForbidden
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Mobile:       strings.TrimSpace(req.Mobile),
		PasswordHash: string(hash),
		Roles:        []string{role},
		ParentID:     parentID,
		Status:       "active",
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}

	u.log.Info().Str("user_id", user.ID).Str("role", role).
		Str("creator_id", creatorID).Msg("user created")
	resp := dto.FromUser(user)
	return &resp, nil
}

// List returns a page of users matching the search term.
func (u *UserUsecase) List(ctx context.Context, page dto.PageRequest) ([]dto.UserResponse, dto.PageResponse, error) {
	page.Defaults()
	users, total, err := u.users.List(ctx, page.Search, page.Limit, page.Offset())
	if err != nil {
		return nil, dto.PageResponse{}, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, usr := range users {
		out = append(out, dto.FromUser(usr))
	}
	return out, dto.NewPageResponse(page, total), nil
}

// UpdateRole replaces a user's role tag.
func (u *UserUsecase) UpdateRole(ctx context.Context, req dto.UpdateEmsUserRequest) (*dto.UserResponse, error) {
	role := strings.TrimSpace(req.Role)
	if req.ID == "" || role == "" {
		return nil, domain.ErrInvalidInput
	}
	if !flatRoles[role] && role != entity.RoleAdmin &&
		role != entity.RoleStockist && role != entity.RoleDistributor && role != entity.RoleDealer {
		return nil, domain.ErrInvalidInput
	}
	user, err := u.users.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	user.Roles = []string{role}
	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	resp := dto.FromUser(user)
	return &resp, nil
}

// Delete removes a user. Users with children cannot be deleted: the
// hierarchy under them would be orphaned.
func (u *UserUsecase) Delete(ctx context.Context, id string) error {
	children, err := u.users.ListChildren(ctx, id)
	if err != nil {
		return err
	}
	if len(children) > 0 {
		return domain.ErrConflict
	}
	if err := u.users.Delete(ctx, id); err != nil {
		return err
	}
	u.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

// ListByRole returns all users holding a role tag.
func (u *UserUsecase) ListByRole(ctx context.Context, role string) ([]dto.UserResponse, error) {
	if role == "" {
		return nil, domain.ErrInvalidInput
	}
	users, err := u.users.ListByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, usr := range users {
		out = append(out, dto.FromUser(usr))
	}
	return out, nil
}

// ListChildren returns the direct hierarchy children of a user.
func (u *UserUsecase) ListChildren(ctx context.Context, parentID string) ([]dto.UserResponse, error) {
	if parentID == "" {
		return nil, domain.ErrInvalidInput
	}
	users, err := u.users.ListChildren(ctx, parentID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, usr := range users {
		out = append(out, dto.FromUser(usr))
	}
	return out, nil
}
