package workflow

import "oficina_os/internal/domain/entities"

// Bucket is one board column with the orders currently in it.
type Bucket struct {
	Column entities.KanbanColumn          `json:"column"`
	Orders []entities.ServiceOrderSummary `json:"orders"`
	Count  int                            `json:"count"`
}

// Board is the kanban view: columns left to right, plus the orders whose
// status matches no column.
type Board struct {
	Columns []Bucket                       `json:"columns"`
	Orphans []entities.ServiceOrderSummary `json:"orphans"`
	Total   int                            `json:"total"`
}

// Partition places every order in the bucket whose slug equals its current
// status. Input order is kept inside each bucket.
func Partition(cols []entities.KanbanColumn, orders []entities.ServiceOrderSummary) Board {
	sorted := SortColumns(cols)
	board := Board{
		Columns: make([]Bucket, len(sorted)),
		Orphans: []entities.ServiceOrderSummary{},
		Total:   len(orders),
	}

	index := make(map[string]int, len(sorted))
	for i, c := range sorted {
		index[c.Slug] = i
		board.Columns[i] = Bucket{Column: c, Orders: []entities.ServiceOrderSummary{}}
	}

	for _, o := range orders {
		i, ok := index[o.CurrentStatus]
		if !ok {
			board.Orphans = append(board.Orphans, o)
			continue
		}
		board.Columns[i].Orders = append(board.Columns[i].Orders, o)
		board.Columns[i].Count++
	}
	return board
}
