package request

type ColumnRequest struct {
	Title string `json:"title" binding:"required"`
}

// ColumnPositionRequest moves a column to a zero-based index on the board.
type ColumnPositionRequest struct {
	Index *int `json:"index" binding:"required"`
}
