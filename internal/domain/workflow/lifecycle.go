// Package workflow holds the rules of the repair workflow: stage ordering,
// kanban partitioning and column slugs. It is pure and does no I/O; the
// persisted kanban column list is the only source of stage order.
package workflow

import (
	"sort"

	"oficina_os/internal/domain/entities"
)

// SortColumns returns a copy of cols ordered by position, ties broken by slug.
func SortColumns(cols []entities.KanbanColumn) []entities.KanbanColumn {
	out := make([]entities.KanbanColumn, len(cols))
	copy(out, cols)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].Slug < out[j].Slug
	})
	return out
}

// StageIndex returns the index of slug in the sorted column order, or -1.
func StageIndex(cols []entities.KanbanColumn, slug string) int {
	for i, c := range SortColumns(cols) {
		if c.Slug == slug {
			return i
		}
	}
	return -1
}

func HasStage(cols []entities.KanbanColumn, slug string) bool {
	return StageIndex(cols, slug) >= 0
}

// FirstStage is the column with the lowest position, where new orders start.
func FirstStage(cols []entities.KanbanColumn) (entities.KanbanColumn, bool) {
	if len(cols) == 0 {
		return entities.KanbanColumn{}, false
	}
	return SortColumns(cols)[0], true
}

// NextStage returns the slug following current. ok is false when current is
// the last stage or is not a stage at all.
func NextStage(cols []entities.KanbanColumn, current string) (next string, ok bool) {
	sorted := SortColumns(cols)
	for i, c := range sorted {
		if c.Slug != current {
			continue
		}
		if i+1 >= len(sorted) {
			return "", false
		}
		return sorted[i+1].Slug, true
	}
	return "", false
}
