package exporter

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"someicons/internal/model"
)

// CatalogReport 生成图标目录清单（xlsx）
// 每个图标一行：ID、分类、标签、各样式的 CDN 路径。
func CatalogReport(icons []model.Icon) (*excelize.File, error) {
	f := excelize.NewFile()

	const sheet = "Icons"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("重命名工作表失败: %w", err)
	}

	headers := []string{"ID", "分类", "标签", "Outline 路径", "Filled 路径"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("写入表头失败: %w", err)
		}
	}

	for row, icon := range icons {
		values := []interface{}{
			icon.ID,
			icon.Category,
			strings.Join(icon.Tags, ", "),
			icon.Files.Outline,
			icon.Files.Filled,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("写入第 %d 行失败: %w", row+2, err)
			}
		}
	}

	if err := f.SetColWidth(sheet, "A", "B", 24); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "C", "E", 40); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}
