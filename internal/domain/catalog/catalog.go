// Package catalog holds the reference data shipped with the service: the
// equipment types and brand/model table used by the intake form, and the
// default workflow columns seeded into an empty board.
package catalog

import (
	_ "embed"
	"fmt"
	"oficina_os/internal/domain/entities"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// FreeTextBrand accepts any model text.
const FreeTextBrand = "Outras"

//go:embed equipment.yaml
var equipmentYAML []byte

//go:embed columns.yaml
var columnsYAML []byte

type EquipmentType struct {
	Key   string `yaml:"key" json:"key"`
	Label string `yaml:"label" json:"label"`
}

type Brand struct {
	Name     string   `yaml:"name" json:"name"`
	FreeText bool     `yaml:"free_text" json:"free_text"`
	Models   []string `yaml:"models" json:"models"`
}

// Equipment is the closed lookup table of equipment types and brand->model
// associations.
type Equipment struct {
	Types  []EquipmentType `yaml:"types" json:"types"`
	Brands []Brand         `yaml:"brands" json:"brands"`
}

type columnsFile struct {
	Columns []struct {
		Slug     string `yaml:"slug"`
		Title    string `yaml:"title"`
		Position int    `yaml:"position"`
	} `yaml:"columns"`
}

var (
	loadOnce  sync.Once
	equipment Equipment
	loadErr   error
)

// Load parses the embedded equipment table once.
func Load() (Equipment, error) {
	loadOnce.Do(func() {
		equipment, loadErr = ParseEquipment(equipmentYAML)
	})
	return equipment, loadErr
}

// MustLoad is Load for process start-up.
func MustLoad() Equipment {
	eq, err := Load()
	if err != nil {
		panic(err)
	}
	return eq
}

func ParseEquipment(data []byte) (Equipment, error) {
	var eq Equipment
	if err := yaml.Unmarshal(data, &eq); err != nil {
		return Equipment{}, fmt.Errorf("parse equipment catalog: %w", err)
	}
	if len(eq.Types) == 0 || len(eq.Brands) == 0 {
		return Equipment{}, fmt.Errorf("parse equipment catalog: empty types or brands")
	}
	return eq, nil
}

// DefaultColumns returns the stages seeded into an empty board.
func DefaultColumns() ([]entities.KanbanColumn, error) {
	var f columnsFile
	if err := yaml.Unmarshal(columnsYAML, &f); err != nil {
		return nil, fmt.Errorf("parse default columns: %w", err)
	}
	out := make([]entities.KanbanColumn, 0, len(f.Columns))
	for _, c := range f.Columns {
		out = append(out, entities.KanbanColumn{Slug: c.Slug, Title: c.Title, Position: c.Position})
	}
	return out, nil
}

func (e Equipment) HasType(key string) bool {
	for _, t := range e.Types {
		if t.Key == key {
			return true
		}
	}
	return false
}

// Brand looks a brand up by name, case-insensitively.
func (e Equipment) Brand(name string) (Brand, bool) {
	name = strings.TrimSpace(name)
	for _, b := range e.Brands {
		if strings.EqualFold(b.Name, name) {
			return b, true
		}
	}
	return Brand{}, false
}

// AcceptsModel reports whether model is a valid choice for the brand.
func (b Brand) AcceptsModel(model string) bool {
	model = strings.TrimSpace(model)
	if model == "" {
		return false
	}
	if b.FreeText {
		return true
	}
	for _, m := range b.Models {
		if strings.EqualFold(m, model) {
			return true
		}
	}
	return false
}
