package usecase

import (
	"context"
	"sort"
	"sync"

	"oficina_os/internal/domain/catalog"
	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"
)

// memStore is an in-memory backend with the same guard semantics as the
// DynamoDB repositories. It implements every repository interface through
// small typed views.
type memStore struct {
	mu          sync.Mutex
	customers   map[string]entities.Customer
	technicians map[string]entities.Technician
	parts       map[string]entities.Part
	columns     map[string]entities.KanbanColumn
	orders      map[string]entities.ServiceOrder
	counters    map[string]int64
	transitions []entities.StageTransition
	attachments map[string]entities.Attachment
	budgets     map[string]entities.Budget
	items       map[string]entities.BudgetItem
	payments    map[string]entities.BudgetPayment

	failOrderCreate error
}

func newMemStore() *memStore {
	return &memStore{
		customers:   map[string]entities.Customer{},
		technicians: map[string]entities.Technician{},
		parts:       map[string]entities.Part{},
		columns:     map[string]entities.KanbanColumn{},
		orders:      map[string]entities.ServiceOrder{},
		counters:    map[string]int64{},
		attachments: map[string]entities.Attachment{},
		budgets:     map[string]entities.Budget{},
		items:       map[string]entities.BudgetItem{},
		payments:    map[string]entities.BudgetPayment{},
	}
}

// seedColumns loads the default workflow.
func (s *memStore) seedColumns() *memStore {
	cols, err := catalog.DefaultColumns()
	if err != nil {
		panic(err)
	}
	for _, c := range cols {
		s.columns[c.Slug] = c
	}
	return s
}

type (
	memCustomers   struct{ *memStore }
	memTechnicians struct{ *memStore }
	memParts       struct{ *memStore }
	memColumns     struct{ *memStore }
	memOrders      struct{ *memStore }
	memCounter     struct{ *memStore }
	memTransitions struct{ *memStore }
	memAttachments struct{ *memStore }
	memBudgets     struct{ *memStore }
	memPayments    struct{ *memStore }
)

var (
	_ interfaces.ICustomerRepository        = memCustomers{}
	_ interfaces.ITechnicianRepository      = memTechnicians{}
	_ interfaces.IPartRepository            = memParts{}
	_ interfaces.IKanbanColumnRepository    = memColumns{}
	_ interfaces.IServiceOrderRepository    = memOrders{}
	_ interfaces.ICounterRepository         = memCounter{}
	_ interfaces.IStageTransitionRepository = memTransitions{}
	_ interfaces.IAttachmentRepository      = memAttachments{}
	_ interfaces.IBudgetRepository          = memBudgets{}
	_ interfaces.IBudgetPaymentRepository   = memPayments{}
)

func (r memCustomers) Create(_ context.Context, c entities.Customer) (entities.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.customers[c.ID]; ok {
		return entities.Customer{}, interfaces.ErrAlreadyExists
	}
	r.customers[c.ID] = c
	return c, nil
}

func (r memCustomers) GetByID(_ context.Context, id string) (entities.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.customers[id], nil
}

func (r memCustomers) List(_ context.Context) ([]entities.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entities.Customer{}
	for _, c := range r.customers {
		out = append(out, c)
	}
	return out, nil
}

func (r memCustomers) Update(_ context.Context, c entities.Customer) (entities.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.customers[c.ID]; !ok {
		return entities.Customer{}, nil
	}
	r.customers[c.ID] = c
	return c, nil
}

func (r memCustomers) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.customers[id]
	delete(r.customers, id)
	return ok, nil
}

func (r memTechnicians) Create(_ context.Context, t entities.Technician) (entities.Technician, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.technicians[t.ID] = t
	return t, nil
}

func (r memTechnicians) GetByID(_ context.Context, id string) (entities.Technician, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.technicians[id], nil
}

func (r memTechnicians) List(_ context.Context) ([]entities.Technician, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entities.Technician{}
	for _, t := range r.technicians {
		out = append(out, t)
	}
	return out, nil
}

func (r memTechnicians) Update(_ context.Context, t entities.Technician) (entities.Technician, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.technicians[t.ID]
	if !ok {
		return entities.Technician{}, nil
	}
	cur.Name = t.Name
	r.technicians[t.ID] = cur
	return cur, nil
}

func (r memTechnicians) SetActive(_ context.Context, id string, active bool) (entities.Technician, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.technicians[id]
	if !ok {
		return entities.Technician{}, nil
	}
	cur.Active = active
	r.technicians[id] = cur
	return cur, nil
}

func (r memTechnicians) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.technicians[id]
	delete(r.technicians, id)
	return ok, nil
}

func (r memParts) Create(_ context.Context, p entities.Part) (entities.Part, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parts[p.ID] = p
	return p, nil
}

func (r memParts) GetByID(_ context.Context, id string) (entities.Part, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.parts[id], nil
}

func (r memParts) List(_ context.Context) ([]entities.Part, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entities.Part{}
	for _, p := range r.parts {
		out = append(out, p)
	}
	return out, nil
}

func (r memParts) Update(_ context.Context, p entities.Part) (entities.Part, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.parts[p.ID]; !ok {
		return entities.Part{}, nil
	}
	r.parts[p.ID] = p
	return p, nil
}

func (r memParts) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.parts[id]
	delete(r.parts, id)
	return ok, nil
}

func (r memColumns) Create(_ context.Context, c entities.KanbanColumn) (entities.KanbanColumn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.columns[c.Slug]; ok {
		return entities.KanbanColumn{}, interfaces.ErrAlreadyExists
	}
	r.columns[c.Slug] = c
	return c, nil
}

func (r memColumns) Get(_ context.Context, slug string) (entities.KanbanColumn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.columns[slug], nil
}

func (r memColumns) List(_ context.Context) ([]entities.KanbanColumn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entities.KanbanColumn{}
	for _, c := range r.columns {
		out = append(out, c)
	}
	return out, nil
}

func (r memColumns) UpdateTitle(_ context.Context, slug, title string) (entities.KanbanColumn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.columns[slug]
	if !ok {
		return entities.KanbanColumn{}, nil
	}
	c.Title = title
	r.columns[slug] = c
	return c, nil
}

func (r memColumns) UpdatePosition(_ context.Context, slug string, position int) (entities.KanbanColumn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.columns[slug]
	if !ok {
		return entities.KanbanColumn{}, nil
	}
	c.Position = position
	r.columns[slug] = c
	return c, nil
}

func (r memColumns) Delete(_ context.Context, slug string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.columns[slug]
	delete(r.columns, slug)
	return ok, nil
}

func (r memOrders) Create(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failOrderCreate != nil {
		return entities.ServiceOrder{}, r.failOrderCreate
	}
	r.orders[o.ID] = o
	return o, nil
}

func (r memOrders) GetByID(_ context.Context, id string) (entities.ServiceOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.orders[id], nil
}

func (r memOrders) List(_ context.Context) ([]entities.ServiceOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entities.ServiceOrder{}
	for _, o := range r.orders {
		out = append(out, o)
	}
	return out, nil
}

func (r memOrders) ListByStatus(_ context.Context, status string) ([]entities.ServiceOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entities.ServiceOrder{}
	for _, o := range r.orders {
		if o.CurrentStatus == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r memOrders) CountByTechnician(_ context.Context, technicianID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, o := range r.orders {
		if o.TechnicianID == technicianID {
			n++
		}
	}
	return n, nil
}

func (r memOrders) UpdateDetails(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.orders[o.ID]
	if !ok {
		return entities.ServiceOrder{}, nil
	}
	o.CurrentStatus = cur.CurrentStatus
	r.orders[o.ID] = o
	return o, nil
}

func (r memOrders) UpdateStatus(_ context.Context, id, from, to string) (entities.ServiceOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.orders[id]
	if !ok || cur.CurrentStatus != from {
		return entities.ServiceOrder{}, nil
	}
	cur.CurrentStatus = to
	r.orders[id] = cur
	return cur, nil
}

func (r memCounter) Next(_ context.Context, name string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters[name]++
	return r.counters[name], nil
}

func (r memTransitions) Create(_ context.Context, t entities.StageTransition) (entities.StageTransition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transitions = append(r.transitions, t)
	return t, nil
}

func (r memTransitions) ListByOrderID(_ context.Context, orderID string) ([]entities.StageTransition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entities.StageTransition{}
	for _, t := range r.transitions {
		if t.ServiceOrderID == orderID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r memAttachments) Create(_ context.Context, a entities.Attachment) (entities.Attachment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attachments[a.ID] = a
	return a, nil
}

func (r memAttachments) GetByID(_ context.Context, id string) (entities.Attachment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.attachments[id], nil
}

func (r memAttachments) ListByOrderID(_ context.Context, orderID string) ([]entities.Attachment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entities.Attachment{}
	for _, a := range r.attachments {
		if a.ServiceOrderID == orderID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r memAttachments) LinkToOrder(_ context.Context, id, orderID string) (entities.Attachment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.attachments[id]
	if !ok {
		return entities.Attachment{}, nil
	}
	if a.ServiceOrderID != "" && a.ServiceOrderID != orderID {
		return entities.Attachment{}, interfaces.ErrAttachmentAlreadyLinked
	}
	a.ServiceOrderID = orderID
	r.attachments[id] = a
	return a, nil
}

func (r memAttachments) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.attachments[id]
	delete(r.attachments, id)
	return ok, nil
}

func (r memBudgets) Create(_ context.Context, b entities.Budget) (entities.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.budgets[b.ID]; ok {
		return entities.Budget{}, interfaces.ErrAlreadyExists
	}
	b.Items = nil
	r.budgets[b.ID] = b
	return r.withItems(b), nil
}

func (r memBudgets) GetByID(_ context.Context, id string) (entities.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.budgets[id]
	if !ok {
		return entities.Budget{}, nil
	}
	return r.withItems(b), nil
}

func (r memBudgets) UpdateLabor(_ context.Context, id string, labor float64) (entities.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.budgets[id]
	if !ok || !b.IsPending() {
		return entities.Budget{}, nil
	}
	b.LaborCost = labor
	r.budgets[id] = b
	return r.withItems(b), nil
}

func (r memBudgets) UpdateStatus(_ context.Context, id string, status entities.BudgetStatus) (entities.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.budgets[id]
	if !ok || !b.IsPending() {
		return entities.Budget{}, nil
	}
	b.Status = status
	r.budgets[id] = b
	return r.withItems(b), nil
}

func (r memBudgets) AddItem(_ context.Context, item entities.BudgetItem) (entities.BudgetItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.budgets[item.BudgetID]
	if !ok || !b.IsPending() {
		return entities.BudgetItem{}, interfaces.ErrConditionFailed
	}
	r.items[item.ID] = item
	return item, nil
}

func (r memBudgets) RemoveItem(_ context.Context, budgetID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.budgets[budgetID]
	it, found := r.items[itemID]
	if !ok || !b.IsPending() || !found || it.BudgetID != budgetID {
		return interfaces.ErrConditionFailed
	}
	delete(r.items, itemID)
	return nil
}

// withItems must be called with the lock held.
func (r memBudgets) withItems(b entities.Budget) entities.Budget {
	b.Items = []entities.BudgetItem{}
	for _, it := range r.items {
		if it.BudgetID == b.ID {
			b.Items = append(b.Items, it)
		}
	}
	sort.SliceStable(b.Items, func(i, j int) bool { return b.Items[i].CreatedAt.Before(b.Items[j].CreatedAt) })
	return b
}

func (r memPayments) Create(_ context.Context, p entities.BudgetPayment) (entities.BudgetPayment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments[p.ID] = p
	return p, nil
}

func (r memPayments) GetByID(_ context.Context, id string) (entities.BudgetPayment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.payments[id], nil
}

func (r memPayments) ListByBudgetID(_ context.Context, budgetID string) ([]entities.BudgetPayment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entities.BudgetPayment{}
	for _, p := range r.payments {
		if p.BudgetID == budgetID {
			out = append(out, p)
		}
	}
	return out, nil
}
