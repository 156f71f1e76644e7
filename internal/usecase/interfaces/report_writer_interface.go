package interfaces

import (
	"io"
	"oficina_os/internal/domain/entities"
)

// IOrderReportWriter renders the order list as a downloadable report.
type IOrderReportWriter interface {
	ContentType() string
	WriteOrders(w io.Writer, columns []entities.KanbanColumn, orders []entities.ServiceOrderSummary) error
}
