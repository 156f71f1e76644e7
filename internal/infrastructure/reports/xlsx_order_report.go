package reports

import (
	"io"
	"oficina_os/internal/domain/entities"
	"oficina_os/internal/domain/workflow"
	"oficina_os/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const (
	ordersSheet  = "Ordens"
	summarySheet = "Resumo"
	dateLayout   = "02/01/2006 15:04"
)

var orderHeader = []interface{}{"Nº", "Entrada", "Cliente", "Técnico", "Tipo", "Marca", "Modelo", "Série", "Defeito", "Etapa"}

// XLSXOrderReport writes the order list as a spreadsheet with one sheet of
// orders grouped by column and one sheet of per-column counts.
type XLSXOrderReport struct{}

var _ interfaces.IOrderReportWriter = XLSXOrderReport{}

func NewXLSXOrderReport() XLSXOrderReport {
	return XLSXOrderReport{}
}

func (XLSXOrderReport) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (XLSXOrderReport) WriteOrders(w io.Writer, columns []entities.KanbanColumn, orders []entities.ServiceOrderSummary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ordersSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	board := workflow.Partition(columns, orders)
	titles := make(map[string]string, len(columns))
	for _, c := range columns {
		titles[c.Slug] = c.Title
	}

	row := 1
	if err := writeRow(f, ordersSheet, row, orderHeader); err != nil {
		return err
	}
	var groups [][]entities.ServiceOrderSummary
	for _, b := range board.Columns {
		groups = append(groups, b.Orders)
	}
	groups = append(groups, board.Orphans)
	for _, group := range groups {
		for _, o := range group {
			row++
			stage := titles[o.CurrentStatus]
			if stage == "" {
				stage = o.CurrentStatus
			}
			values := []interface{}{
				o.OrderNumber,
				o.EntryDate.Local().Format(dateLayout),
				o.CustomerName,
				o.TechnicianName,
				o.Equipment.Type,
				o.Equipment.Brand,
				o.Equipment.Model,
				o.Equipment.Serial,
				o.ReportedDefect,
				stage,
			}
			if err := writeRow(f, ordersSheet, row, values); err != nil {
				return err
			}
		}
	}
	if err := f.SetRowStyle(ordersSheet, 1, 1, bold); err != nil {
		return err
	}
	if err := f.SetColWidth(ordersSheet, "C", "C", 28); err != nil {
		return err
	}
	if err := f.SetColWidth(ordersSheet, "I", "I", 40); err != nil {
		return err
	}

	if err := writeRow(f, summarySheet, 1, []interface{}{"Etapa", "Ordens"}); err != nil {
		return err
	}
	row = 1
	for _, b := range board.Columns {
		row++
		if err := writeRow(f, summarySheet, row, []interface{}{b.Column.Title, len(b.Orders)}); err != nil {
			return err
		}
	}
	if len(board.Orphans) > 0 {
		row++
		if err := writeRow(f, summarySheet, row, []interface{}{"Sem etapa", len(board.Orphans)}); err != nil {
			return err
		}
	}
	if err := f.SetRowStyle(summarySheet, 1, 1, bold); err != nil {
		return err
	}

	return f.Write(w)
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
