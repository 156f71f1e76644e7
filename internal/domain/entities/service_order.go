package entities

import "time"

// Equipment describes the machine brought in for repair.
type Equipment struct {
	Type   string `json:"equipment_type"`
	Brand  string `json:"equipment_brand"`
	Model  string `json:"equipment_model"`
	Serial string `json:"equipment_serial,omitempty"`
}

// ServiceOrder (OS) is the work item tracked through the repair workflow.
//
// CurrentStatus always holds a KanbanColumn slug. OrderNumber is sequential
// and assigned by the storage layer; it is for display only.
type ServiceOrder struct {
	ID             string    `json:"id"`
	OrderNumber    int64     `json:"order_number"`
	CustomerID     string    `json:"customer_id"`
	TechnicianID   string    `json:"technician_id,omitempty"`
	Equipment      Equipment `json:"equipment"`
	ReportedDefect string    `json:"reported_defect"`
	Checklist      Checklist `json:"checklist"`
	CurrentStatus  string    `json:"current_status"`
	EntryDate      time.Time `json:"entry_date"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ServiceOrderSummary is the list view of an order with related names joined in.
type ServiceOrderSummary struct {
	ServiceOrder
	CustomerName   string `json:"customer_name"`
	TechnicianName string `json:"technician_name,omitempty"`
}

// ServiceOrderDetail is the full view of one order.
type ServiceOrderDetail struct {
	ServiceOrder
	Customer   *Customer    `json:"customer,omitempty"`
	Technician *Technician  `json:"technician,omitempty"`
	Files      []Attachment `json:"files"`
}
