package intake

import (
	"testing"

	"oficina_os/internal/domain/catalog"
	"oficina_os/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *Validator {
	t.Helper()
	eq, err := catalog.Load()
	require.NoError(t, err)
	return NewValidator(eq)
}

func completeDraft() Draft {
	return Draft{
		NewCustomer: &NewCustomer{Name: "Ana Costa", WhatsApp: "11966666666"},
		Equipment: entities.Equipment{
			Type:  "chainsaw",
			Brand: "Stihl",
			Model: "MS 250",
		},
		ReportedDefect: "Não liga",
		Checklist: entities.Checklist{
			MachineTurnsOn:    entities.TriStateNo,
			WasStopped:        entities.TriStateYes,
			StoppedTimeMonths: 6,
			HasAccessories:    entities.TriStateNo,
			BudgetAuthorized:  entities.TriStateYes,
		},
	}
}

func fields(res Result) []string {
	out := make([]string, 0, len(res.Issues))
	for _, is := range res.Issues {
		out = append(out, is.Field)
	}
	return out
}

func TestValidateStep_Customer(t *testing.T) {
	v := newValidator(t)

	res, err := v.ValidateStep(StepCustomer, Draft{})
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"customer"}, fields(res))

	res, _ = v.ValidateStep(StepCustomer, Draft{CustomerID: "c-1"})
	assert.True(t, res.Valid)
	assert.Empty(t, res.Issues)

	res, _ = v.ValidateStep(StepCustomer, Draft{NewCustomer: &NewCustomer{Name: "  "}})
	assert.False(t, res.Valid)
	assert.ElementsMatch(t, []string{"new_customer.name", "new_customer.whatsapp"}, fields(res))

	res, _ = v.ValidateStep(StepCustomer, Draft{NewCustomer: &NewCustomer{Name: "Ana", WhatsApp: "11966666666"}})
	assert.True(t, res.Valid)
}

func TestValidateStep_Equipment(t *testing.T) {
	v := newValidator(t)

	res, _ := v.ValidateStep(StepEquipment, Draft{})
	assert.ElementsMatch(t, []string{"equipment_type", "equipment_brand", "equipment_model", "reported_defect"}, fields(res))

	d := completeDraft()
	d.Equipment.Model = "FS 9999"
	res, _ = v.ValidateStep(StepEquipment, d)
	assert.Equal(t, []string{"equipment_model"}, fields(res))

	d.Equipment.Brand = "Acme"
	res, _ = v.ValidateStep(StepEquipment, d)
	assert.Equal(t, []string{"equipment_brand"}, fields(res))

	d.Equipment.Brand = catalog.FreeTextBrand
	d.Equipment.Model = "Modelo antigo sem placa"
	res, _ = v.ValidateStep(StepEquipment, d)
	assert.True(t, res.Valid)

	d.Equipment.Type = "tractor"
	res, _ = v.ValidateStep(StepEquipment, d)
	assert.Equal(t, []string{"equipment_type"}, fields(res))
}

func TestValidateStep_Checklist(t *testing.T) {
	v := newValidator(t)

	res, _ := v.ValidateStep(StepChecklist, Draft{})
	assert.ElementsMatch(t, []string{
		"checklist.machine_turns_on",
		"checklist.was_stopped",
		"checklist.has_accessories",
		"checklist.budget_authorized",
	}, fields(res))

	d := completeDraft()
	res, _ = v.ValidateStep(StepChecklist, d)
	assert.True(t, res.Valid)

	d.Checklist.StoppedTimeMonths = 0
	d.Checklist.HasAccessories = entities.TriStateYes
	d.Checklist.NeedsAdjustment = entities.TriStateYes
	res, _ = v.ValidateStep(StepChecklist, d)
	assert.ElementsMatch(t, []string{
		"checklist.stopped_time_months",
		"checklist.accessories_description",
		"checklist.adjustment_note",
	}, fields(res))

	d.Checklist.WasStopped = entities.TriStateNo
	d.Checklist.HasAccessories = entities.TriStateNo
	d.Checklist.NeedsAdjustment = entities.TriStateNo
	res, _ = v.ValidateStep(StepChecklist, d)
	assert.True(t, res.Valid)
}

func TestValidateStep_Unknown(t *testing.T) {
	v := newValidator(t)
	_, err := v.ValidateStep(4, Draft{})
	assert.ErrorIs(t, err, ErrInvalidStep)
}

func TestWizard_Navigation(t *testing.T) {
	v := newValidator(t)
	w := NewWizard(v, Draft{})

	assert.Equal(t, StepCustomer, w.Step())
	assert.False(t, w.CanProceed())
	assert.ErrorIs(t, w.Back(), ErrNoPrevStep)

	_, err := w.Next()
	assert.ErrorIs(t, err, ErrStepIncomplete)
	assert.Equal(t, StepCustomer, w.Step())

	w.Update(completeDraft())
	_, err = w.Next()
	require.NoError(t, err)
	assert.Equal(t, StepEquipment, w.Step())

	require.NoError(t, w.Back())
	assert.Equal(t, StepCustomer, w.Step())

	res, err := w.Complete()
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, StepChecklist, w.Step())

	_, err = w.Next()
	assert.ErrorIs(t, err, ErrNoNextStep)
}

func TestWizard_CompleteStopsAtBlockingStep(t *testing.T) {
	v := newValidator(t)
	d := completeDraft()
	d.Checklist.BudgetAuthorized = entities.TriStateUnanswered

	w := NewWizard(v, d)
	res, err := w.Complete()
	assert.ErrorIs(t, err, ErrStepIncomplete)
	assert.Equal(t, StepChecklist, res.Step)
	assert.Equal(t, []string{"checklist.budget_authorized"}, fields(res))
}
