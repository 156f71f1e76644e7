package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"oficina_os/internal/domain/entities"
	"oficina_os/internal/domain/workflow"
	"oficina_os/internal/usecase/interfaces"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const orderNumberCounter = "service_orders"

var (
	ErrOrderNotFound       = errors.New("service order not found")
	ErrInvalidOrderID      = errors.New("invalid service order id")
	ErrInvalidOrder        = errors.New("customer, equipment and defect are required")
	ErrUnknownStatus       = errors.New("status does not match any kanban column")
	ErrNoColumns           = errors.New("no kanban columns configured")
	ErrOrderStatusConflict = errors.New("service order status changed concurrently")
)

// OrderFilter narrows the order list. Query matches the order number,
// customer name, equipment and defect.
type OrderFilter struct {
	Status string
	Query  string
}

// OrderPatch carries the editable fields of an order; nil fields are kept.
type OrderPatch struct {
	TechnicianID   *string
	Equipment      *entities.Equipment
	ReportedDefect *string
	Checklist      *entities.Checklist
}

// AdvanceResult reports whether Advance moved the order. At the last column
// Advanced is false and the order is returned unchanged.
type AdvanceResult struct {
	Order    entities.ServiceOrder `json:"order"`
	Advanced bool                  `json:"advanced"`
	From     string                `json:"from"`
	To       string                `json:"to,omitempty"`
}

// IServiceOrderUseCase exposes the order lifecycle.
//
//   - Open => new order at the lowest-position column
//   - Advance => one step along the column order
//   - Move => any existing column, backwards included
type IServiceOrderUseCase interface {
	Open(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	List(ctx context.Context, filter OrderFilter) ([]entities.ServiceOrderSummary, error)
	GetDetail(ctx context.Context, id string) (entities.ServiceOrderDetail, error)
	UpdateDetails(ctx context.Context, id string, patch OrderPatch) (entities.ServiceOrder, error)
	Advance(ctx context.Context, id, note string) (AdvanceResult, error)
	Move(ctx context.Context, id, status, note string) (entities.ServiceOrder, error)
	Transitions(ctx context.Context, id string) ([]entities.StageTransition, error)
	Export(ctx context.Context, w io.Writer) error
	ExportContentType() string
}

type ServiceOrderUseCase struct {
	repo        interfaces.IServiceOrderRepository
	columns     interfaces.IKanbanColumnRepository
	transitions interfaces.IStageTransitionRepository
	counter     interfaces.ICounterRepository
	customers   interfaces.ICustomerRepository
	technicians interfaces.ITechnicianRepository
	attachments interfaces.IAttachmentRepository
	report      interfaces.IOrderReportWriter
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

// ServiceOrderDeps groups the collaborators of ServiceOrderUseCase.
type ServiceOrderDeps struct {
	Orders      interfaces.IServiceOrderRepository
	Columns     interfaces.IKanbanColumnRepository
	Transitions interfaces.IStageTransitionRepository
	Counter     interfaces.ICounterRepository
	Customers   interfaces.ICustomerRepository
	Technicians interfaces.ITechnicianRepository
	Attachments interfaces.IAttachmentRepository
	Report      interfaces.IOrderReportWriter
}

func NewServiceOrderUseCase(d ServiceOrderDeps) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{
		repo:        d.Orders,
		columns:     d.Columns,
		transitions: d.Transitions,
		counter:     d.Counter,
		customers:   d.Customers,
		technicians: d.Technicians,
		attachments: d.Attachments,
		report:      d.Report,
	}
}

// Open creates the order at the first workflow column and records the intake
// transition.
func (u *ServiceOrderUseCase) Open(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	o.CustomerID = strings.TrimSpace(o.CustomerID)
	o.TechnicianID = strings.TrimSpace(o.TechnicianID)
	o.ReportedDefect = strings.TrimSpace(o.ReportedDefect)
	if o.CustomerID == "" || o.ReportedDefect == "" || strings.TrimSpace(o.Equipment.Type) == "" {
		return entities.ServiceOrder{}, ErrInvalidOrder
	}

	if o.TechnicianID != "" {
		if err := u.checkAssignable(ctx, o.TechnicianID, ""); err != nil {
			return entities.ServiceOrder{}, err
		}
	}

	cols, err := u.columns.List(ctx)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	first, ok := workflow.FirstStage(cols)
	if !ok {
		return entities.ServiceOrder{}, ErrNoColumns
	}

	number, err := u.counter.Next(ctx, orderNumberCounter)
	if err != nil {
		return entities.ServiceOrder{}, fmt.Errorf("next order number: %w", err)
	}

	now := time.Now().UTC()
	o.ID = uuid.NewString()
	o.OrderNumber = number
	o.CurrentStatus = first.Slug
	o.Checklist = o.Checklist.Normalized()
	o.EntryDate = now
	o.UpdatedAt = now

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	log.Info().Str("order_id", created.ID).Int64("order_number", created.OrderNumber).Str("status", created.CurrentStatus).Msg("[order][usecase] opened")

	u.recordTransition(ctx, created.ID, "", created.CurrentStatus, "", entities.TransitionKindIntake)
	return created, nil
}

// List returns orders newest first with customer and technician names joined.
func (u *ServiceOrderUseCase) List(ctx context.Context, filter OrderFilter) ([]entities.ServiceOrderSummary, error) {
	var (
		orders []entities.ServiceOrder
		err    error
	)
	if status := strings.TrimSpace(filter.Status); status != "" {
		orders, err = u.repo.ListByStatus(ctx, status)
	} else {
		orders, err = u.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	summaries, err := joinSummaries(ctx, u.customers, u.technicians, orders)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	if query != "" {
		filtered := summaries[:0]
		for _, s := range summaries {
			if matchesOrder(s, query) {
				filtered = append(filtered, s)
			}
		}
		summaries = filtered
	}
	return summaries, nil
}

func (u *ServiceOrderUseCase) GetDetail(ctx context.Context, id string) (entities.ServiceOrderDetail, error) {
	o, err := u.get(ctx, id)
	if err != nil {
		return entities.ServiceOrderDetail{}, err
	}

	detail := entities.ServiceOrderDetail{ServiceOrder: o}
	c, err := u.customers.GetByID(ctx, o.CustomerID)
	if err != nil {
		return entities.ServiceOrderDetail{}, err
	}
	if c.ID != "" {
		detail.Customer = &c
	}
	if o.TechnicianID != "" {
		t, err := u.technicians.GetByID(ctx, o.TechnicianID)
		if err != nil {
			return entities.ServiceOrderDetail{}, err
		}
		if t.ID != "" {
			detail.Technician = &t
		}
	}
	files, err := u.attachments.ListByOrderID(ctx, o.ID)
	if err != nil {
		return entities.ServiceOrderDetail{}, err
	}
	sort.SliceStable(files, func(i, j int) bool { return files[i].CreatedAt.Before(files[j].CreatedAt) })
	if files == nil {
		files = []entities.Attachment{}
	}
	detail.Files = files
	return detail, nil
}

// UpdateDetails applies direct edits. The status is never changed here.
func (u *ServiceOrderUseCase) UpdateDetails(ctx context.Context, id string, patch OrderPatch) (entities.ServiceOrder, error) {
	o, err := u.get(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	if patch.TechnicianID != nil {
		techID := strings.TrimSpace(*patch.TechnicianID)
		if techID != "" {
			if err := u.checkAssignable(ctx, techID, o.TechnicianID); err != nil {
				return entities.ServiceOrder{}, err
			}
		}
		o.TechnicianID = techID
	}
	if patch.Equipment != nil {
		eq := *patch.Equipment
		eq.Type = strings.TrimSpace(eq.Type)
		eq.Brand = strings.TrimSpace(eq.Brand)
		eq.Model = strings.TrimSpace(eq.Model)
		eq.Serial = strings.TrimSpace(eq.Serial)
		if eq.Type == "" || eq.Brand == "" || eq.Model == "" {
			return entities.ServiceOrder{}, ErrInvalidOrder
		}
		o.Equipment = eq
	}
	if patch.ReportedDefect != nil {
		defect := strings.TrimSpace(*patch.ReportedDefect)
		if defect == "" {
			return entities.ServiceOrder{}, ErrInvalidOrder
		}
		o.ReportedDefect = defect
	}
	if patch.Checklist != nil {
		o.Checklist = patch.Checklist.Normalized()
	}
	o.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.UpdateDetails(ctx, o)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if updated.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return updated, nil
}

// Advance moves the order to the column that follows its current one.
func (u *ServiceOrderUseCase) Advance(ctx context.Context, id, note string) (AdvanceResult, error) {
	o, err := u.get(ctx, id)
	if err != nil {
		return AdvanceResult{}, err
	}
	cols, err := u.columns.List(ctx)
	if err != nil {
		return AdvanceResult{}, err
	}
	if !workflow.HasStage(cols, o.CurrentStatus) {
		log.Warn().Str("order_id", o.ID).Str("status", o.CurrentStatus).Msg("[order][usecase] advance refused, unknown status")
		return AdvanceResult{}, ErrUnknownStatus
	}

	next, ok := workflow.NextStage(cols, o.CurrentStatus)
	if !ok {
		return AdvanceResult{Order: o, Advanced: false, From: o.CurrentStatus}, nil
	}

	updated, err := u.changeStatus(ctx, o, next, note, entities.TransitionKindAdvance)
	if err != nil {
		return AdvanceResult{}, err
	}
	return AdvanceResult{Order: updated, Advanced: true, From: o.CurrentStatus, To: next}, nil
}

// Move sets the order status to any existing column. Moving to the current
// column is a no-op.
func (u *ServiceOrderUseCase) Move(ctx context.Context, id, status, note string) (entities.ServiceOrder, error) {
	status = strings.TrimSpace(status)
	o, err := u.get(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	cols, err := u.columns.List(ctx)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if !workflow.HasStage(cols, status) {
		return entities.ServiceOrder{}, ErrUnknownStatus
	}
	if status == o.CurrentStatus {
		return o, nil
	}
	return u.changeStatus(ctx, o, status, note, entities.TransitionKindMove)
}

func (u *ServiceOrderUseCase) Transitions(ctx context.Context, id string) ([]entities.StageTransition, error) {
	o, err := u.get(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := u.transitions.ListByOrderID(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	return items, nil
}

// Export writes every order, grouped by the current column order, through the
// configured report writer.
func (u *ServiceOrderUseCase) Export(ctx context.Context, w io.Writer) error {
	if u.report == nil {
		return errors.New("report writer not configured")
	}
	cols, err := u.columns.List(ctx)
	if err != nil {
		return err
	}
	summaries, err := u.List(ctx, OrderFilter{})
	if err != nil {
		return err
	}
	return u.report.WriteOrders(w, workflow.SortColumns(cols), summaries)
}

func (u *ServiceOrderUseCase) ExportContentType() string {
	if u.report == nil {
		return "application/octet-stream"
	}
	return u.report.ContentType()
}

func (u *ServiceOrderUseCase) get(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return o, nil
}

// checkAssignable refuses unknown technicians, and inactive ones unless they
// are already assigned to the order.
func (u *ServiceOrderUseCase) checkAssignable(ctx context.Context, technicianID, current string) error {
	t, err := u.technicians.GetByID(ctx, technicianID)
	if err != nil {
		return err
	}
	if t.ID == "" {
		return ErrTechnicianNotFound
	}
	if !t.Active && technicianID != current {
		return ErrTechnicianInactive
	}
	return nil
}

// changeStatus writes the new status guarded by the status that was read, so
// two concurrent moves cannot both succeed from the same starting column.
func (u *ServiceOrderUseCase) changeStatus(ctx context.Context, o entities.ServiceOrder, to, note string, kind entities.TransitionKind) (entities.ServiceOrder, error) {
	updated, err := u.repo.UpdateStatus(ctx, o.ID, o.CurrentStatus, to)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if updated.ID == "" {
		log.Warn().Str("order_id", o.ID).Str("from", o.CurrentStatus).Str("to", to).Msg("[order][usecase] status guard failed")
		return entities.ServiceOrder{}, ErrOrderStatusConflict
	}
	log.Info().Str("order_id", o.ID).Str("from", o.CurrentStatus).Str("to", to).Str("kind", string(kind)).Msg("[order][usecase] status changed")

	u.recordTransition(ctx, o.ID, o.CurrentStatus, to, note, kind)
	return updated, nil
}

// recordTransition appends to the history. The status change is already
// committed at this point, so a failure here is logged and not returned.
func (u *ServiceOrderUseCase) recordTransition(ctx context.Context, orderID, from, to, note string, kind entities.TransitionKind) {
	if u.transitions == nil {
		return
	}
	t := entities.StageTransition{
		ID:             uuid.NewString(),
		ServiceOrderID: orderID,
		FromSlug:       from,
		ToSlug:         to,
		Note:           strings.TrimSpace(note),
		Kind:           kind,
		CreatedAt:      time.Now().UTC(),
	}
	if _, err := u.transitions.Create(ctx, t); err != nil {
		log.Error().Err(err).Str("order_id", orderID).Str("to", to).Msg("[order][usecase] failed recording stage transition")
	}
}

// joinSummaries denormalizes customer and technician names onto the orders
// and sorts them newest first.
func joinSummaries(ctx context.Context, customers interfaces.ICustomerRepository, technicians interfaces.ITechnicianRepository, orders []entities.ServiceOrder) ([]entities.ServiceOrderSummary, error) {
	out := make([]entities.ServiceOrderSummary, 0, len(orders))
	if len(orders) == 0 {
		return out, nil
	}

	cs, err := customers.List(ctx)
	if err != nil {
		return nil, err
	}
	ts, err := technicians.List(ctx)
	if err != nil {
		return nil, err
	}
	customerNames := make(map[string]string, len(cs))
	for _, c := range cs {
		customerNames[c.ID] = c.Name
	}
	technicianNames := make(map[string]string, len(ts))
	for _, t := range ts {
		technicianNames[t.ID] = t.Name
	}

	for _, o := range orders {
		out = append(out, entities.ServiceOrderSummary{
			ServiceOrder:   o,
			CustomerName:   customerNames[o.CustomerID],
			TechnicianName: technicianNames[o.TechnicianID],
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].EntryDate.Equal(out[j].EntryDate) {
			return out[i].EntryDate.After(out[j].EntryDate)
		}
		return out[i].OrderNumber > out[j].OrderNumber
	})
	return out, nil
}

func matchesOrder(s entities.ServiceOrderSummary, lowerQuery string) bool {
	if strings.Contains(fmt.Sprint(s.OrderNumber), lowerQuery) {
		return true
	}
	for _, field := range []string{s.CustomerName, s.Equipment.Type, s.Equipment.Brand, s.Equipment.Model, s.Equipment.Serial, s.ReportedDefect} {
		if containsFold(field, lowerQuery) {
			return true
		}
	}
	return false
}
