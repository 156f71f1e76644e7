package repository

import (
	"context"
	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ServiceOrderStatusIndex is the GSI on current_status used by the board.
const ServiceOrderStatusIndex = "current_status-index"

type checklistItem struct {
	MachineTurnsOn         string `dynamodbav:"machine_turns_on"`
	NeedsAdjustment        string `dynamodbav:"needs_adjustment"`
	AdjustmentNote         string `dynamodbav:"adjustment_note,omitempty"`
	WasStopped             string `dynamodbav:"was_stopped"`
	StoppedTimeMonths      int    `dynamodbav:"stopped_time_months,omitempty"`
	HasAccessories         string `dynamodbav:"has_accessories"`
	AccessoriesDescription string `dynamodbav:"accessories_description,omitempty"`
	BudgetAuthorized       string `dynamodbav:"budget_authorized"`
}

type serviceOrderItem struct {
	ID              string        `dynamodbav:"id"`
	OrderNumber     int64         `dynamodbav:"order_number"`
	CustomerID      string        `dynamodbav:"customer_id"`
	TechnicianID    string        `dynamodbav:"technician_id,omitempty"`
	EquipmentType   string        `dynamodbav:"equipment_type"`
	EquipmentBrand  string        `dynamodbav:"equipment_brand"`
	EquipmentModel  string        `dynamodbav:"equipment_model"`
	EquipmentSerial string        `dynamodbav:"equipment_serial,omitempty"`
	ReportedDefect  string        `dynamodbav:"reported_defect"`
	Checklist       checklistItem `dynamodbav:"checklist"`
	CurrentStatus   string        `dynamodbav:"current_status"`
	EntryDate       string        `dynamodbav:"entry_date"`
	UpdatedAt       string        `dynamodbav:"updated_at"`
}

// ServiceOrderDynamoRepository persists ServiceOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: current_status-index (PK: current_status)
type ServiceOrderDynamoRepository struct {
	ddb         DynamoAPI
	tableName   string
	statusIndex string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb DynamoAPI, tableName string) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{ddb: ddb, tableName: tableName, statusIndex: ServiceOrderStatusIndex}
}

func (r *ServiceOrderDynamoRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	if err := putNew(ctx, r.ddb, r.tableName, "id", toServiceOrderItem(o)); err != nil {
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	it, found, err := getByKey[serviceOrderItem](ctx, r.ddb, r.tableName, "id", id)
	if err != nil || !found {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	items, err := scanAll[serviceOrderItem](ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	return fromServiceOrderItems(items), nil
}

func (r *ServiceOrderDynamoRepository) ListByStatus(ctx context.Context, status string) ([]entities.ServiceOrder, error) {
	items, err := queryIndex[serviceOrderItem](ctx, r.ddb, r.tableName, r.statusIndex, "current_status", status)
	if err != nil {
		return nil, err
	}
	return fromServiceOrderItems(items), nil
}

// CountByTechnician scans with a filter. Only the count is read back.
func (r *ServiceOrderDynamoRepository) CountByTechnician(ctx context.Context, technicianID string) (int, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		Select:           types.SelectCount,
		FilterExpression: aws.String("#technician_id = :technician_id"),
		ExpressionAttributeNames: map[string]string{
			"#technician_id": "technician_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":technician_id": &types.AttributeValueMemberS{Value: technicianID},
		},
	})
	total := 0
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		total += int(page.Count)
	}
	return total, nil
}

// UpdateDetails rewrites the editable fields. The status is left alone.
func (r *ServiceOrderDynamoRepository) UpdateDetails(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	checklist, err := attributevalue.Marshal(toChecklistItem(o.Checklist))
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	expr := "SET #equipment_type = :equipment_type, #equipment_brand = :equipment_brand, #equipment_model = :equipment_model, " +
		"#reported_defect = :reported_defect, #checklist = :checklist, #updated_at = :updated_at"
	names := map[string]string{
		"#equipment_type":  "equipment_type",
		"#equipment_brand": "equipment_brand",
		"#equipment_model": "equipment_model",
		"#reported_defect": "reported_defect",
		"#checklist":       "checklist",
		"#updated_at":      "updated_at",
	}
	values := map[string]types.AttributeValue{
		":equipment_type":  &types.AttributeValueMemberS{Value: o.Equipment.Type},
		":equipment_brand": &types.AttributeValueMemberS{Value: o.Equipment.Brand},
		":equipment_model": &types.AttributeValueMemberS{Value: o.Equipment.Model},
		":reported_defect": &types.AttributeValueMemberS{Value: o.ReportedDefect},
		":checklist":       checklist,
		":updated_at":      &types.AttributeValueMemberS{Value: formatTime(o.UpdatedAt)},
	}

	// Empty optional attributes are removed rather than stored as "".
	var remove []string
	if o.Equipment.Serial != "" {
		expr += ", #equipment_serial = :equipment_serial"
		values[":equipment_serial"] = &types.AttributeValueMemberS{Value: o.Equipment.Serial}
	} else {
		remove = append(remove, "#equipment_serial")
	}
	names["#equipment_serial"] = "equipment_serial"
	if o.TechnicianID != "" {
		expr += ", #technician_id = :technician_id"
		values[":technician_id"] = &types.AttributeValueMemberS{Value: o.TechnicianID}
	} else {
		remove = append(remove, "#technician_id")
	}
	names["#technician_id"] = "technician_id"
	for i, attr := range remove {
		if i == 0 {
			expr += " REMOVE " + attr
		} else {
			expr += ", " + attr
		}
	}

	it, found, err := update[serviceOrderItem](ctx, r.ddb, updateSpec{
		table:    r.tableName,
		keyName:  "id",
		keyValue: o.ID,
		expr:     expr,
		names:    names,
		values:   values,
	})
	if err != nil || !found {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

// UpdateStatus sets current_status to `to` only while it still equals `from`.
func (r *ServiceOrderDynamoRepository) UpdateStatus(ctx context.Context, id, from, to string) (entities.ServiceOrder, error) {
	it, found, err := update[serviceOrderItem](ctx, r.ddb, updateSpec{
		table:     r.tableName,
		keyName:   "id",
		keyValue:  id,
		expr:      "SET #current_status = :to, #updated_at = :updated_at",
		condition: "#current_status = :from",
		names: map[string]string{
			"#current_status": "current_status",
			"#updated_at":     "updated_at",
		},
		values: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: from},
			":to":         &types.AttributeValueMemberS{Value: to},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(nowUTC())},
		},
	})
	if err != nil || !found {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func toChecklistItem(c entities.Checklist) checklistItem {
	c = c.Normalized()
	return checklistItem{
		MachineTurnsOn:         string(c.MachineTurnsOn),
		NeedsAdjustment:        string(c.NeedsAdjustment),
		AdjustmentNote:         c.AdjustmentNote,
		WasStopped:             string(c.WasStopped),
		StoppedTimeMonths:      c.StoppedTimeMonths,
		HasAccessories:         string(c.HasAccessories),
		AccessoriesDescription: c.AccessoriesDescription,
		BudgetAuthorized:       string(c.BudgetAuthorized),
	}
}

func fromChecklistItem(it checklistItem) entities.Checklist {
	return entities.Checklist{
		MachineTurnsOn:         entities.TriState(it.MachineTurnsOn),
		NeedsAdjustment:        entities.TriState(it.NeedsAdjustment),
		AdjustmentNote:         it.AdjustmentNote,
		WasStopped:             entities.TriState(it.WasStopped),
		StoppedTimeMonths:      it.StoppedTimeMonths,
		HasAccessories:         entities.TriState(it.HasAccessories),
		AccessoriesDescription: it.AccessoriesDescription,
		BudgetAuthorized:       entities.TriState(it.BudgetAuthorized),
	}.Normalized()
}

func toServiceOrderItem(o entities.ServiceOrder) serviceOrderItem {
	return serviceOrderItem{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		CustomerID:      o.CustomerID,
		TechnicianID:    o.TechnicianID,
		EquipmentType:   o.Equipment.Type,
		EquipmentBrand:  o.Equipment.Brand,
		EquipmentModel:  o.Equipment.Model,
		EquipmentSerial: o.Equipment.Serial,
		ReportedDefect:  o.ReportedDefect,
		Checklist:       toChecklistItem(o.Checklist),
		CurrentStatus:   o.CurrentStatus,
		EntryDate:       formatTime(o.EntryDate),
		UpdatedAt:       formatTime(o.UpdatedAt),
	}
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrder {
	return entities.ServiceOrder{
		ID:           it.ID,
		OrderNumber:  it.OrderNumber,
		CustomerID:   it.CustomerID,
		TechnicianID: it.TechnicianID,
		Equipment: entities.Equipment{
			Type:   it.EquipmentType,
			Brand:  it.EquipmentBrand,
			Model:  it.EquipmentModel,
			Serial: it.EquipmentSerial,
		},
		ReportedDefect: it.ReportedDefect,
		Checklist:      fromChecklistItem(it.Checklist),
		CurrentStatus:  it.CurrentStatus,
		EntryDate:      parseTime(it.EntryDate),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}

func fromServiceOrderItems(items []serviceOrderItem) []entities.ServiceOrder {
	out := make([]entities.ServiceOrder, 0, len(items))
	for _, it := range items {
		out = append(out, fromServiceOrderItem(it))
	}
	return out
}
