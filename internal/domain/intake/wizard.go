package intake

import "errors"

var (
	ErrStepIncomplete = errors.New("intake step has blocking issues")
	ErrNoNextStep     = errors.New("already at the last intake step")
	ErrNoPrevStep     = errors.New("already at the first intake step")
)

// Wizard walks a draft through the steps in order. Moving forward requires
// the current step to validate; moving back is always allowed.
type Wizard struct {
	v     *Validator
	step  int
	draft Draft
}

func NewWizard(v *Validator, d Draft) *Wizard {
	return &Wizard{v: v, step: StepCustomer, draft: d}
}

func (w *Wizard) Step() int    { return w.step }
func (w *Wizard) Draft() Draft { return w.draft }

// Update replaces the draft. The current step is kept.
func (w *Wizard) Update(d Draft) { w.draft = d }

func (w *Wizard) Check() Result {
	res, _ := w.v.ValidateStep(w.step, w.draft)
	return res
}

func (w *Wizard) CanProceed() bool {
	return w.Check().Valid
}

// Next validates the current step and moves forward.
func (w *Wizard) Next() (Result, error) {
	res := w.Check()
	if !res.Valid {
		return res, ErrStepIncomplete
	}
	if w.step == StepChecklist {
		return res, ErrNoNextStep
	}
	w.step++
	return res, nil
}

func (w *Wizard) Back() error {
	if w.step == StepCustomer {
		return ErrNoPrevStep
	}
	w.step--
	return nil
}

// Complete walks every step from the current one and returns the result of
// the first step that blocks, or the final step result with a nil error when
// the draft can be submitted.
func (w *Wizard) Complete() (Result, error) {
	for {
		res, err := w.Next()
		if errors.Is(err, ErrNoNextStep) {
			return res, nil
		}
		if err != nil {
			return res, err
		}
	}
}
