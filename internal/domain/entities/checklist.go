package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// TriState is a checklist answer. Unanswered is a real state, distinct from No.
//
// On the wire it is a JSON boolean or null; the string forms ("yes", "no",
// "unanswered") are also accepted.
type TriState string

const (
	TriStateUnanswered TriState = "unanswered"
	TriStateYes        TriState = "yes"
	TriStateNo         TriState = "no"
)

// Answered reports whether the value is Yes or No.
func (t TriState) Answered() bool {
	switch t {
	case TriStateYes, TriStateNo:
		return true
	default:
		return false
	}
}

func (t TriState) IsYes() bool { return t == TriStateYes }

// Normalize maps the zero value to Unanswered.
func (t TriState) Normalize() TriState {
	switch t {
	case TriStateYes, TriStateNo:
		return t
	default:
		return TriStateUnanswered
	}
}

func (t TriState) MarshalJSON() ([]byte, error) {
	switch t {
	case TriStateYes:
		return []byte("true"), nil
	case TriStateNo:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

func (t *TriState) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "true":
		*t = TriStateYes
		return nil
	case "false":
		*t = TriStateNo
		return nil
	case "null", "":
		*t = TriStateUnanswered
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid checklist answer %s", string(data))
	}
	parsed, err := ParseTriState(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func ParseTriState(s string) (TriState, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "sim":
		return TriStateYes, nil
	case "no", "false", "nao", "não":
		return TriStateNo, nil
	case "", "unanswered", "null":
		return TriStateUnanswered, nil
	default:
		return TriStateUnanswered, fmt.Errorf("invalid checklist answer %q", s)
	}
}

// Checklist is the intake inspection recorded when the machine arrives.
// The text/number sub-fields only matter when their parent answer is Yes.
type Checklist struct {
	MachineTurnsOn         TriState `json:"machine_turns_on"`
	NeedsAdjustment        TriState `json:"needs_adjustment"`
	AdjustmentNote         string   `json:"adjustment_note,omitempty"`
	WasStopped             TriState `json:"was_stopped"`
	StoppedTimeMonths      int      `json:"stopped_time_months,omitempty"`
	HasAccessories         TriState `json:"has_accessories"`
	AccessoriesDescription string   `json:"accessories_description,omitempty"`
	BudgetAuthorized       TriState `json:"budget_authorized"`
}

// Normalized returns a copy with every zero-valued answer set to Unanswered
// and conditional sub-fields cleared when their parent is not Yes.
func (c Checklist) Normalized() Checklist {
	c.MachineTurnsOn = c.MachineTurnsOn.Normalize()
	c.NeedsAdjustment = c.NeedsAdjustment.Normalize()
	c.WasStopped = c.WasStopped.Normalize()
	c.HasAccessories = c.HasAccessories.Normalize()
	c.BudgetAuthorized = c.BudgetAuthorized.Normalize()

	c.AdjustmentNote = strings.TrimSpace(c.AdjustmentNote)
	c.AccessoriesDescription = strings.TrimSpace(c.AccessoriesDescription)
	if !c.NeedsAdjustment.IsYes() {
		c.AdjustmentNote = ""
	}
	if !c.WasStopped.IsYes() {
		c.StoppedTimeMonths = 0
	}
	if !c.HasAccessories.IsYes() {
		c.AccessoriesDescription = ""
	}
	return c
}
