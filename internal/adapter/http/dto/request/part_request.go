package request

import "oficina_os/internal/domain/entities"

type PartRequest struct {
	Code         string         `json:"code"`
	Description  string         `json:"description" binding:"required"`
	Brand        string         `json:"brand"`
	DefaultPrice FlexibleAmount `json:"default_price"`
}

func (r PartRequest) ToEntity(id string) entities.Part {
	return entities.Part{
		ID:           id,
		Code:         r.Code,
		Description:  r.Description,
		Brand:        r.Brand,
		DefaultPrice: r.DefaultPrice.Float64(),
	}
}
