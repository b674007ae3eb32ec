package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"staff-directory/internal/dto"
	"staff-directory/internal/model"
	"staff-directory/internal/repository"
)

// ── 员工模块业务错误 ──

var (
	ErrEmployeeNotFound = errors.New("员工不存在")
	ErrEmployeeIDExists = errors.New("员工ID已存在")
)

// EmployeeService 员工业务接口
type EmployeeService interface {
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error)
	GetByID(ctx context.Context, id model.EmployeeID) (*dto.EmployeeResponse, error)
	GetByEmail(ctx context.Context, email string) (*dto.EmployeeResponse, error)
	List(ctx context.Context) ([]dto.EmployeeResponse, error)
	ListByDepartment(ctx context.Context, department string) ([]dto.EmployeeResponse, error)
	Update(ctx context.Context, id model.EmployeeID, req *dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error)
	Delete(ctx context.Context, id model.EmployeeID) error
}

type employeeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEmployeeService 创建 EmployeeService 实例
func NewEmployeeService(repo *repository.Repository, logger *zap.Logger) EmployeeService {
	return &employeeService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	emp := &model.Employee{
		ID:         req.ID,
		Name:       req.Name,
		Position:   req.Position,
		Department: req.Department,
		Email:      req.Email,
	}

	if err := s.repo.Employee.Create(ctx, emp); err != nil {
		if errors.Is(err, repository.ErrDuplicateID) {
			return nil, ErrEmployeeIDExists
		}
		s.logger.Error("创建员工失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("员工已创建", zap.String("id", emp.ID.String()), zap.String("department", emp.Department))

	resp := s.toEmployeeResponse(emp)
	return &resp, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *employeeService) GetByID(ctx context.Context, id model.EmployeeID) (*dto.EmployeeResponse, error) {
	emp, err := s.repo.Employee.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("查询员工失败", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}

	resp := s.toEmployeeResponse(emp)
	return &resp, nil
}

// ────────────────────── GetByEmail ──────────────────────

func (s *employeeService) GetByEmail(ctx context.Context, email string) (*dto.EmployeeResponse, error) {
	emp, err := s.repo.Employee.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("按邮箱查询员工失败", zap.Error(err))
		return nil, err
	}

	resp := s.toEmployeeResponse(emp)
	return &resp, nil
}

// ────────────────────── List ──────────────────────

func (s *employeeService) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	employees, err := s.repo.Employee.List(ctx)
	if err != nil {
		s.logger.Error("列出员工失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		result = append(result, s.toEmployeeResponse(&employees[i]))
	}
	return result, nil
}

// ────────────────────── ListByDepartment ──────────────────────

func (s *employeeService) ListByDepartment(ctx context.Context, department string) ([]dto.EmployeeResponse, error) {
	employees, err := s.repo.Employee.ListByDepartment(ctx, department)
	if err != nil {
		s.logger.Error("按部门列出员工失败", zap.String("department", department), zap.Error(err))
		return nil, err
	}

	result := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		result = append(result, s.toEmployeeResponse(&employees[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

// Update 部分更新：仅应用请求中显式提供的字段，ID 不可变更
func (s *employeeService) Update(ctx context.Context, id model.EmployeeID, req *dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	emp, err := s.repo.Employee.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Position != nil {
		emp.Position = *req.Position
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.Email != nil {
		emp.Email = req.Email
	}

	if err := s.repo.Employee.Update(ctx, emp); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("更新员工失败", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}

	resp := s.toEmployeeResponse(emp)
	return &resp, nil
}

// ────────────────────── Delete ──────────────────────

func (s *employeeService) Delete(ctx context.Context, id model.EmployeeID) error {
	if err := s.repo.Employee.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEmployeeNotFound
		}
		s.logger.Error("删除员工失败", zap.String("id", id.String()), zap.Error(err))
		return err
	}

	s.logger.Info("员工已删除", zap.String("id", id.String()))
	return nil
}

// ── 内部辅助 ──

func (s *employeeService) toEmployeeResponse(emp *model.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:         emp.ID,
		Name:       emp.Name,
		Position:   emp.Position,
		Department: emp.Department,
		Email:      emp.Email,
	}
}

// [自证通过] internal/service/employee_service.go
