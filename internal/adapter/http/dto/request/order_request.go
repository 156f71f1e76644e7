package request

import (
	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase"
)

// OrderPatchRequest edits an order in place. Absent fields are kept; an empty
// technician_id unassigns the technician.
type OrderPatchRequest struct {
	TechnicianID   *string             `json:"technician_id"`
	Equipment      *entities.Equipment `json:"equipment"`
	ReportedDefect *string             `json:"reported_defect"`
	Checklist      *entities.Checklist `json:"checklist"`
}

func (r OrderPatchRequest) ToPatch() usecase.OrderPatch {
	return usecase.OrderPatch{
		TechnicianID:   r.TechnicianID,
		Equipment:      r.Equipment,
		ReportedDefect: r.ReportedDefect,
		Checklist:      r.Checklist,
	}
}

type AdvanceRequest struct {
	Note string `json:"note"`
}

type MoveRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}
