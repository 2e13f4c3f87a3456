// Package export gera planilhas .xlsx para os relatórios.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// ContentType é o MIME das planilhas geradas.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Column descreve uma coluna da planilha.
type Column struct {
	Header string
	Width  float64
}

// Sheet é uma aba com cabeçalho e linhas de valores na mesma ordem das colunas.
type Sheet struct {
	Name    string
	Columns []Column
	Rows    [][]interface{}
}

// Build gera o arquivo .xlsx com a aba informada. A aba padrão "Sheet1" é removida.
func Build(sheet Sheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet.Name)
	if err != nil {
		return nil, fmt.Errorf("falha ao criar aba: %w", err)
	}
	if sheet.Name != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return nil, fmt.Errorf("falha ao remover aba padrão: %w", err)
		}
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao criar estilo do cabeçalho: %w", err)
	}

	// Cabeçalho e largura das colunas
	for i, col := range sheet.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet.Name, cell, col.Header); err != nil {
			return nil, fmt.Errorf("falha ao escrever cabeçalho %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheet.Name, cell, cell, headerStyle); err != nil {
			return nil, err
		}
		if col.Width > 0 {
			name, err := excelize.ColumnNumberToName(i + 1)
			if err != nil {
				return nil, err
			}
			if err := f.SetColWidth(sheet.Name, name, name, col.Width); err != nil {
				return nil, err
			}
		}
	}

	// Dados a partir da linha 2
	for r, row := range sheet.Rows {
		for c, value := range row {
			value = cellValue(value)
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet.Name, cell, value); err != nil {
				return nil, fmt.Errorf("falha ao escrever célula %s: %w", cell, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("falha ao gerar planilha: %w", err)
	}
	return bytes.Clone(buf.Bytes()), nil
}

// cellValue desreferencia ponteiros opcionais e formata datas; nil deixa a célula vazia.
func cellValue(v interface{}) interface{} {
	switch t := v.(type) {
	case *string:
		if t == nil {
			return nil
		}
		return *t
	case *time.Time:
		if t == nil {
			return nil
		}
		return t.Format("02/01/2006 15:04")
	case time.Time:
		return t.Format("02/01/2006 15:04")
	case bool:
		if t {
			return "Sim"
		}
		return "Não"
	default:
		return v
	}
}
