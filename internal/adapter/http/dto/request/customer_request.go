package request

import "oficina_os/internal/domain/entities"

type CustomerRequest struct {
	Name     string `json:"name" binding:"required"`
	WhatsApp string `json:"whatsapp" binding:"required"`
	TaxID    string `json:"tax_id"`
	Address  string `json:"address"`
}

func (r CustomerRequest) ToEntity(id string) entities.Customer {
	return entities.Customer{
		ID:       id,
		Name:     r.Name,
		WhatsApp: r.WhatsApp,
		TaxID:    r.TaxID,
		Address:  r.Address,
	}
}
