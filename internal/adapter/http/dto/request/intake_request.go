package request

import "oficina_os/internal/domain/intake"

type ValidateStepRequest struct {
	Step  int          `json:"step" binding:"required"`
	Draft intake.Draft `json:"draft"`
}
