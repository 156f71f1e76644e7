// Package intake models the three-step order intake form: customer,
// equipment and checklist. Validation runs per step and a step only
// unlocks the next one when it has no issues.
package intake

import (
	"errors"
	"oficina_os/internal/domain/catalog"
	"oficina_os/internal/domain/entities"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	StepCustomer  = 1
	StepEquipment = 2
	StepChecklist = 3
)

var ErrInvalidStep = errors.New("invalid intake step")

// Issue is one blocking problem found on a step.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result is the outcome of validating a step.
type Result struct {
	Step   int     `json:"step"`
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues"`
}

type equipmentStep struct {
	Type   string `json:"equipment_type" validate:"required"`
	Brand  string `json:"equipment_brand" validate:"required"`
	Model  string `json:"equipment_model" validate:"required"`
	Defect string `json:"reported_defect" validate:"required"`
}

type checklistStep struct {
	MachineTurnsOn         entities.TriState `json:"machine_turns_on" validate:"answered"`
	NeedsAdjustment        entities.TriState `json:"needs_adjustment"`
	AdjustmentNote         string            `json:"adjustment_note" validate:"required_if=NeedsAdjustment yes"`
	WasStopped             entities.TriState `json:"was_stopped" validate:"answered"`
	StoppedTimeMonths      int               `json:"stopped_time_months" validate:"required_if=WasStopped yes,min=0"`
	HasAccessories         entities.TriState `json:"has_accessories" validate:"answered"`
	AccessoriesDescription string            `json:"accessories_description" validate:"required_if=HasAccessories yes"`
	BudgetAuthorized       entities.TriState `json:"budget_authorized" validate:"answered"`
}

// Validator checks drafts against the field rules and the equipment catalog.
type Validator struct {
	validate  *validator.Validate
	equipment catalog.Equipment
}

func NewValidator(equipment catalog.Equipment) *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("answered", func(fl validator.FieldLevel) bool {
		return entities.TriState(fl.Field().String()).Answered()
	})
	return &Validator{validate: v, equipment: equipment}
}

// ValidateStep validates the fields owned by one step of the draft.
func (v *Validator) ValidateStep(step int, d Draft) (Result, error) {
	d = d.Normalized()
	var issues []Issue
	switch step {
	case StepCustomer:
		issues = v.customerIssues(d)
	case StepEquipment:
		issues = v.equipmentIssues(d)
	case StepChecklist:
		issues = v.checklistIssues(d)
	default:
		return Result{}, ErrInvalidStep
	}
	if issues == nil {
		issues = []Issue{}
	}
	return Result{Step: step, Valid: len(issues) == 0, Issues: issues}, nil
}

// ValidateAll returns the first step that has issues, or a valid result
// for the last step.
func (v *Validator) ValidateAll(d Draft) Result {
	var res Result
	for step := StepCustomer; step <= StepChecklist; step++ {
		res, _ = v.ValidateStep(step, d)
		if !res.Valid {
			return res
		}
	}
	return res
}

func (v *Validator) customerIssues(d Draft) []Issue {
	if d.UsesExistingCustomer() {
		return nil
	}
	if d.NewCustomer == nil {
		return []Issue{{Field: "customer", Message: "select a customer or enter a new one"}}
	}
	return v.structIssues(*d.NewCustomer, "new_customer.")
}

func (v *Validator) equipmentIssues(d Draft) []Issue {
	issues := v.structIssues(equipmentStep{
		Type:   d.Equipment.Type,
		Brand:  d.Equipment.Brand,
		Model:  d.Equipment.Model,
		Defect: d.ReportedDefect,
	}, "")

	if d.Equipment.Type != "" && !v.equipment.HasType(d.Equipment.Type) {
		issues = append(issues, Issue{Field: "equipment_type", Message: "unknown equipment type"})
	}
	if d.Equipment.Brand == "" {
		return issues
	}
	brand, ok := v.equipment.Brand(d.Equipment.Brand)
	if !ok {
		return append(issues, Issue{Field: "equipment_brand", Message: "unknown brand"})
	}
	if d.Equipment.Model != "" && !brand.AcceptsModel(d.Equipment.Model) {
		issues = append(issues, Issue{Field: "equipment_model", Message: "model does not belong to brand"})
	}
	return issues
}

func (v *Validator) checklistIssues(d Draft) []Issue {
	c := d.Checklist
	return v.structIssues(checklistStep{
		MachineTurnsOn:         c.MachineTurnsOn,
		NeedsAdjustment:        c.NeedsAdjustment,
		AdjustmentNote:         c.AdjustmentNote,
		WasStopped:             c.WasStopped,
		StoppedTimeMonths:      c.StoppedTimeMonths,
		HasAccessories:         c.HasAccessories,
		AccessoriesDescription: c.AccessoriesDescription,
		BudgetAuthorized:       c.BudgetAuthorized,
	}, "checklist.")
}

func (v *Validator) structIssues(s any, prefix string) []Issue {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []Issue{{Field: strings.TrimSuffix(prefix, "."), Message: err.Error()}}
	}
	issues := make([]Issue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, Issue{Field: prefix + fe.Field(), Message: issueMessage(fe)})
	}
	return issues
}

func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return "is required"
	case "answered":
		return "must be answered yes or no"
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters"
		}
		return "must be at least " + fe.Param()
	default:
		return "is invalid"
	}
}
