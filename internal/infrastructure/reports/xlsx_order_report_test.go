package reports

import (
	"bytes"
	"testing"
	"time"

	"oficina_os/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteOrders_GroupsByColumnAndCounts(t *testing.T) {
	cols := []entities.KanbanColumn{
		{Slug: "testing", Title: "Teste", Position: 60},
		{Slug: "received", Title: "Recebida", Position: 10},
	}
	entry := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	orders := []entities.ServiceOrderSummary{
		{ServiceOrder: entities.ServiceOrder{OrderNumber: 3, CurrentStatus: "testing", EntryDate: entry}, CustomerName: "Bruno Lima"},
		{ServiceOrder: entities.ServiceOrder{OrderNumber: 2, CurrentStatus: "received", EntryDate: entry,
			Equipment: entities.Equipment{Type: "chainsaw", Brand: "Stihl", Model: "MS 250"}}, CustomerName: "Ana Costa"},
		{ServiceOrder: entities.ServiceOrder{OrderNumber: 1, CurrentStatus: "archived", EntryDate: entry}, CustomerName: "Carla Reis"},
	}

	var buf bytes.Buffer
	report := NewXLSXOrderReport()
	require.NoError(t, report.WriteOrders(&buf, cols, orders))
	assert.Contains(t, report.ContentType(), "spreadsheetml")

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ordersSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Nº", rows[0][0])
	assert.Equal(t, []string{"2", "Ana Costa", "Stihl", "Recebida"}, []string{rows[1][0], rows[1][2], rows[1][5], rows[1][9]})
	assert.Equal(t, "Teste", rows[2][9])
	assert.Equal(t, "archived", rows[3][9])

	summary, err := f.GetRows(summarySheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Etapa", "Ordens"}, {"Recebida", "1"}, {"Teste", "1"}, {"Sem etapa", "1"}}, summary)
}
