package usecase

import (
	"context"
	"errors"
	"fmt"
	"oficina_os/internal/domain/catalog"
	"oficina_os/internal/domain/entities"
	"oficina_os/internal/domain/intake"
	"oficina_os/internal/usecase/interfaces"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrIntakeIncomplete = errors.New("intake draft is incomplete")

// IntakeValidationError carries the result of the first blocking step.
type IntakeValidationError struct {
	Result intake.Result
}

func (e *IntakeValidationError) Error() string {
	return fmt.Sprintf("%s: step %d has %d issue(s)", ErrIntakeIncomplete, e.Result.Step, len(e.Result.Issues))
}

func (e *IntakeValidationError) Unwrap() error { return ErrIntakeIncomplete }

// IntakeResult is the outcome of a submitted draft. Attachments that could not
// be linked are listed; the order is kept regardless.
type IntakeResult struct {
	Order                 entities.ServiceOrder `json:"order"`
	Customer              entities.Customer     `json:"customer"`
	CustomerCreated       bool                  `json:"customer_created"`
	LinkedAttachmentIDs   []string              `json:"linked_attachment_ids"`
	UnlinkedAttachmentIDs []string              `json:"unlinked_attachment_ids"`
}

// IIntakeUseCase drives the three-step order intake.
type IIntakeUseCase interface {
	Equipment() catalog.Equipment
	ValidateStep(ctx context.Context, step int, d intake.Draft) (intake.Result, error)
	Submit(ctx context.Context, d intake.Draft) (IntakeResult, error)
}

type IntakeUseCase struct {
	validator   *intake.Validator
	equipment   catalog.Equipment
	customers   interfaces.ICustomerRepository
	orders      IServiceOrderUseCase
	attachments IAttachmentUseCase
}

var _ IIntakeUseCase = (*IntakeUseCase)(nil)

func NewIntakeUseCase(equipment catalog.Equipment, customers interfaces.ICustomerRepository, orders IServiceOrderUseCase, attachments IAttachmentUseCase) *IntakeUseCase {
	return &IntakeUseCase{
		validator:   intake.NewValidator(equipment),
		equipment:   equipment,
		customers:   customers,
		orders:      orders,
		attachments: attachments,
	}
}

func (u *IntakeUseCase) Equipment() catalog.Equipment {
	return u.equipment
}

func (u *IntakeUseCase) ValidateStep(_ context.Context, step int, d intake.Draft) (intake.Result, error) {
	return u.validator.ValidateStep(step, d)
}

// Submit runs the intake saga: customer (when new), then the order at the
// first column, then the pre-uploaded attachments one at a time. A new
// customer is deleted again when the order cannot be created.
func (u *IntakeUseCase) Submit(ctx context.Context, d intake.Draft) (IntakeResult, error) {
	d = d.Normalized()
	w := intake.NewWizard(u.validator, d)
	if res, err := w.Complete(); err != nil {
		return IntakeResult{}, &IntakeValidationError{Result: res}
	}

	customer, created, err := u.resolveCustomer(ctx, d)
	if err != nil {
		return IntakeResult{}, err
	}

	order, err := u.orders.Open(ctx, entities.ServiceOrder{
		CustomerID:     customer.ID,
		TechnicianID:   d.TechnicianID,
		Equipment:      d.Equipment,
		ReportedDefect: d.ReportedDefect,
		Checklist:      d.Checklist,
	})
	if err != nil {
		log.Error().Err(err).Str("customer_id", customer.ID).Msg("[intake][usecase] order creation failed")
		if created {
			u.compensateCustomer(ctx, customer.ID)
		}
		return IntakeResult{}, err
	}

	res := IntakeResult{
		Order:                 order,
		Customer:              customer,
		CustomerCreated:       created,
		LinkedAttachmentIDs:   []string{},
		UnlinkedAttachmentIDs: []string{},
	}
	for _, id := range d.AttachmentIDs {
		if _, err := u.attachments.LinkToOrder(ctx, id, order.ID); err != nil {
			log.Warn().Err(err).Str("order_id", order.ID).Str("attachment_id", id).Msg("[intake][usecase] attachment link failed")
			res.UnlinkedAttachmentIDs = append(res.UnlinkedAttachmentIDs, id)
			continue
		}
		res.LinkedAttachmentIDs = append(res.LinkedAttachmentIDs, id)
	}
	log.Info().
		Str("order_id", order.ID).
		Int64("order_number", order.OrderNumber).
		Bool("customer_created", created).
		Int("unlinked", len(res.UnlinkedAttachmentIDs)).
		Msg("[intake][usecase] submitted")
	return res, nil
}

func (u *IntakeUseCase) resolveCustomer(ctx context.Context, d intake.Draft) (entities.Customer, bool, error) {
	if d.UsesExistingCustomer() {
		c, err := u.customers.GetByID(ctx, d.CustomerID)
		if err != nil {
			return entities.Customer{}, false, err
		}
		if c.ID == "" {
			return entities.Customer{}, false, ErrCustomerNotFound
		}
		return c, false, nil
	}

	now := time.Now().UTC()
	c, err := u.customers.Create(ctx, entities.Customer{
		ID:        uuid.NewString(),
		Name:      d.NewCustomer.Name,
		WhatsApp:  d.NewCustomer.WhatsApp,
		TaxID:     d.NewCustomer.TaxID,
		Address:   d.NewCustomer.Address,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return entities.Customer{}, false, err
	}
	return c, true, nil
}

func (u *IntakeUseCase) compensateCustomer(ctx context.Context, customerID string) {
	if _, err := u.customers.Delete(ctx, customerID); err != nil {
		log.Error().Err(err).Str("customer_id", customerID).Msg("[intake][usecase] compensation failed, customer left behind")
		return
	}
	log.Info().Str("customer_id", customerID).Msg("[intake][usecase] compensation removed customer")
}
