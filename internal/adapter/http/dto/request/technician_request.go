package request

type TechnicianRequest struct {
	Name string `json:"name" binding:"required"`
}

// TechnicianActiveRequest toggles the active flag. The pointer keeps an
// explicit false distinguishable from a missing field.
type TechnicianActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}
