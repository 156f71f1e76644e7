package intake

import (
	"oficina_os/internal/domain/entities"
	"strings"
)

// NewCustomer is the inline customer entered on step 1 when no existing
// customer is selected.
type NewCustomer struct {
	Name     string `json:"name" validate:"required"`
	WhatsApp string `json:"whatsapp" validate:"required,min=8"`
	TaxID    string `json:"tax_id,omitempty"`
	Address  string `json:"address,omitempty"`
}

// Draft is the single mutable order-creation request assembled by the
// three intake steps.
type Draft struct {
	CustomerID     string             `json:"customer_id,omitempty"`
	NewCustomer    *NewCustomer       `json:"new_customer,omitempty"`
	TechnicianID   string             `json:"technician_id,omitempty"`
	Equipment      entities.Equipment `json:"equipment"`
	ReportedDefect string             `json:"reported_defect"`
	Checklist      entities.Checklist `json:"checklist"`
	AttachmentIDs  []string           `json:"attachment_ids,omitempty"`
}

// Normalized trims every text field and normalizes the checklist.
func (d Draft) Normalized() Draft {
	d.CustomerID = strings.TrimSpace(d.CustomerID)
	d.TechnicianID = strings.TrimSpace(d.TechnicianID)
	if d.NewCustomer != nil {
		nc := *d.NewCustomer
		nc.Name = strings.TrimSpace(nc.Name)
		nc.WhatsApp = strings.TrimSpace(nc.WhatsApp)
		nc.TaxID = strings.TrimSpace(nc.TaxID)
		nc.Address = strings.TrimSpace(nc.Address)
		d.NewCustomer = &nc
	}
	d.Equipment.Type = strings.TrimSpace(d.Equipment.Type)
	d.Equipment.Brand = strings.TrimSpace(d.Equipment.Brand)
	d.Equipment.Model = strings.TrimSpace(d.Equipment.Model)
	d.Equipment.Serial = strings.TrimSpace(d.Equipment.Serial)
	d.ReportedDefect = strings.TrimSpace(d.ReportedDefect)
	d.Checklist = d.Checklist.Normalized()

	ids := make([]string, 0, len(d.AttachmentIDs))
	for _, id := range d.AttachmentIDs {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	d.AttachmentIDs = ids
	return d
}

// UsesExistingCustomer reports whether step 1 selected a stored customer.
func (d Draft) UsesExistingCustomer() bool {
	return strings.TrimSpace(d.CustomerID) != ""
}
