package workflow

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"oficina_os/internal/domain/entities"
)

// PositionStep is the gap left between consecutive column positions.
const PositionStep = 10

var (
	ErrEmptySlug      = errors.New("title produces an empty slug")
	ErrColumnNotFound = errors.New("kanban column not found")
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slugify derives a column slug from its title: accents are stripped, the
// result is lower-cased and trimmed, and whitespace runs become underscores.
// "Aguardando Peças" -> "aguardando_pecas".
func Slugify(title string) string {
	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), title)
	if err != nil {
		stripped = title
	}
	s := strings.TrimSpace(strings.ToLower(stripped))
	return whitespaceRun.ReplaceAllString(s, "_")
}

// NextPosition is max(existing positions, 0) + PositionStep.
func NextPosition(cols []entities.KanbanColumn) int {
	highest := 0
	for _, c := range cols {
		if c.Position > highest {
			highest = c.Position
		}
	}
	return highest + PositionStep
}

// Reorder moves slug to index (clamped to the board) and renumbers every
// column as (i+1)*PositionStep. It returns the full new order and the subset
// of columns whose position changed, which is what must be persisted.
func Reorder(cols []entities.KanbanColumn, slug string, index int) (ordered, changed []entities.KanbanColumn, err error) {
	sorted := SortColumns(cols)
	from := -1
	for i, c := range sorted {
		if c.Slug == slug {
			from = i
			break
		}
	}
	if from < 0 {
		return nil, nil, ErrColumnNotFound
	}

	moving := sorted[from]
	rest := append(append([]entities.KanbanColumn{}, sorted[:from]...), sorted[from+1:]...)
	if index < 0 {
		index = 0
	}
	if index > len(rest) {
		index = len(rest)
	}
	ordered = append(append(append([]entities.KanbanColumn{}, rest[:index]...), moving), rest[index:]...)

	for i := range ordered {
		want := (i + 1) * PositionStep
		if ordered[i].Position != want {
			ordered[i].Position = want
			changed = append(changed, ordered[i])
		}
	}
	return ordered, changed, nil
}
