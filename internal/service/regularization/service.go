package regularization

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/neeraj5696/magnum-attendance-go/internal/domain/employee"
	"github.com/neeraj5696/magnum-attendance-go/internal/domain/regularization"
)

type RegularizationServiceImpl struct {
	regRepo      regularization.Repository
	employeeRepo employee.EmployeeRepository
}

func NewRegularizationService(
	regRepo regularization.Repository,
	employeeRepo employee.EmployeeRepository,
) regularization.Service {
	return &RegularizationServiceImpl{
		regRepo:      regRepo,
		employeeRepo: employeeRepo,
	}
}

// userIDFromContext extracts the acting user from JWT claims.
func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}

// Create implements regularization.Service.
func (s *RegularizationServiceImpl) Create(ctx context.Context, req regularization.CreateRequest) (regularization.Response, error) {
	if err := req.Validate(); err != nil {
		return regularization.Response{}, err
	}

	requestedBy, err := userIDFromContext(ctx)
	if err != nil {
		return regularization.Response{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return regularization.Response{}, regularization.ErrEmployeeNotFound
		}
		return regularization.Response{}, fmt.Errorf("failed to check employee: %w", err)
	}

	in, out := req.Times()
	reg := regularization.Regularization{
		EmployeeID:  req.EmployeeID,
		Date:        req.Date,
		InTime:      in,
		OutTime:     out,
		Reason:      req.Reason,
		Status:      regularization.StatusPending,
		RequestedBy: requestedBy,
	}

	created, err := s.regRepo.Create(ctx, reg)
	if err != nil {
		return regularization.Response{}, err
	}
	return regularization.ToResponse(created), nil
}

// Update implements regularization.Service.
func (s *RegularizationServiceImpl) Update(ctx context.Context, id string, req regularization.UpdateRequest) (regularization.Response, error) {
	if err := req.Validate(); err != nil {
		return regularization.Response{}, err
	}

	reg, err := s.regRepo.GetByID(ctx, id)
	if err != nil {
		return regularization.Response{}, err
	}
	if reg.Status != regularization.StatusPending {
		return regularization.Response{}, regularization.ErrNotPending
	}

	reg.InTime, reg.OutTime = req.Times(reg.Date)
	reg.Reason = req.Reason

	if err := s.regRepo.Update(ctx, reg); err != nil {
		return regularization.Response{}, err
	}
	return regularization.ToResponse(reg), nil
}

// Approve implements regularization.Service.
func (s *RegularizationServiceImpl) Approve(ctx context.Context, id string, req regularization.ReviewRequest) (regularization.Response, error) {
	return s.review(ctx, id, regularization.StatusApproved, req)
}

// Reject implements regularization.Service.
func (s *RegularizationServiceImpl) Reject(ctx context.Context, id string, req regularization.ReviewRequest) (regularization.Response, error) {
	return s.review(ctx, id, regularization.StatusRejected, req)
}

func (s *RegularizationServiceImpl) review(ctx context.Context, id string, status regularization.ReviewStatus, req regularization.ReviewRequest) (regularization.Response, error) {
	reviewer, err := userIDFromContext(ctx)
	if err != nil {
		return regularization.Response{}, err
	}

	reg, err := s.regRepo.GetByID(ctx, id)
	if err != nil {
		return regularization.Response{}, err
	}
	if reg.Status != regularization.StatusPending {
		return regularization.Response{}, regularization.ErrAlreadyReviewed
	}
	if reg.RequestedBy == reviewer {
		return regularization.Response{}, regularization.ErrSelfReview
	}

	now := time.Now()
	reg.Status = status
	reg.ReviewedBy = &reviewer
	reg.ReviewedAt = &now
	if req.Note != "" {
		reg.Reason = reg.Reason + " | " + req.Note
	}

	if err := s.regRepo.Update(ctx, reg); err != nil {
		return regularization.Response{}, err
	}
	return regularization.ToResponse(reg), nil
}

// Get implements regularization.Service.
func (s *RegularizationServiceImpl) Get(ctx context.Context, id string) (regularization.Response, error) {
	reg, err := s.regRepo.GetByID(ctx, id)
	if err != nil {
		return regularization.Response{}, err
	}
	return regularization.ToResponse(reg), nil
}

// List implements regularization.Service.
func (s *RegularizationServiceImpl) List(ctx context.Context, filter regularization.ListFilter) ([]regularization.Response, int64, error) {
	regs, total, err := s.regRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]regularization.Response, 0, len(regs))
	for _, reg := range regs {
		responses = append(responses, regularization.ToResponse(reg))
	}
	return responses, total, nil
}
