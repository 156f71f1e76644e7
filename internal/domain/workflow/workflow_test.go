package workflow

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oficina_os/internal/domain/entities"
)

func shopColumns() []entities.KanbanColumn {
	// deliberately unsorted
	return []entities.KanbanColumn{
		{Slug: "testing", Title: "Teste", Position: 60},
		{Slug: "received", Title: "Recebida", Position: 10},
		{Slug: "analysis", Title: "Análise", Position: 20},
		{Slug: "finished", Title: "Finalizada", Position: 80},
		{Slug: "budget", Title: "Orçamento", Position: 30},
		{Slug: "washing", Title: "Lavagem", Position: 40},
		{Slug: "pickup", Title: "Entrega", Position: 70},
		{Slug: "assembly", Title: "Montagem", Position: 50},
	}
}

func slugs(cols []entities.KanbanColumn) []string {
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		out = append(out, c.Slug)
	}
	return out
}

func TestSortColumns(t *testing.T) {
	got := slugs(SortColumns(shopColumns()))
	want := []string{"received", "analysis", "budget", "washing", "assembly", "testing", "pickup", "finished"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}

	ties := []entities.KanbanColumn{{Slug: "b", Position: 10}, {Slug: "a", Position: 10}}
	assert.Equal(t, []string{"a", "b"}, slugs(SortColumns(ties)))
}

func TestNextStage(t *testing.T) {
	cols := shopColumns()

	next, ok := NextStage(cols, "testing")
	require.True(t, ok)
	assert.Equal(t, "pickup", next)

	next, ok = NextStage(cols, "pickup")
	require.True(t, ok)
	assert.Equal(t, "finished", next)

	_, ok = NextStage(cols, "finished")
	assert.False(t, ok)

	_, ok = NextStage(cols, "ghost")
	assert.False(t, ok)

	assert.Equal(t, 5, StageIndex(cols, "testing"))
	assert.Equal(t, -1, StageIndex(cols, "ghost"))
}

func TestFirstStage(t *testing.T) {
	first, ok := FirstStage(shopColumns())
	require.True(t, ok)
	assert.Equal(t, "received", first.Slug)

	_, ok = FirstStage(nil)
	assert.False(t, ok)
}

func TestPartition(t *testing.T) {
	order := func(id, status string) entities.ServiceOrderSummary {
		return entities.ServiceOrderSummary{ServiceOrder: entities.ServiceOrder{ID: id, CurrentStatus: status}}
	}
	orders := []entities.ServiceOrderSummary{
		order("os-1", "received"),
		order("os-2", "testing"),
		order("os-3", "received"),
		order("os-4", "removed_column"),
	}

	board := Partition(shopColumns(), orders)
	require.Len(t, board.Columns, 8)
	assert.Equal(t, 4, board.Total)

	seen := map[string]int{}
	for _, b := range board.Columns {
		assert.Equal(t, len(b.Orders), b.Count)
		for _, o := range b.Orders {
			assert.Equal(t, b.Column.Slug, o.CurrentStatus)
			seen[o.ID]++
		}
	}
	for _, o := range board.Orphans {
		seen[o.ID]++
	}
	for _, o := range orders {
		assert.Equal(t, 1, seen[o.ID], "order %s must appear exactly once", o.ID)
	}

	assert.Equal(t, "received", board.Columns[0].Column.Slug)
	assert.Equal(t, []string{"os-1", "os-3"}, []string{board.Columns[0].Orders[0].ID, board.Columns[0].Orders[1].ID})
	require.Len(t, board.Orphans, 1)
	assert.Equal(t, "os-4", board.Orphans[0].ID)
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Aguardando Peças":        "aguardando_pecas",
		"  Em   Análise  ":        "em_analise",
		"Teste\tFinal":            "teste_final",
		"received":                "received",
		"Orçamento Não Aprovado":  "orcamento_nao_aprovado",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "input %q", in)
	}
	assert.Empty(t, Slugify("   "))
}

func TestNextPosition(t *testing.T) {
	assert.Equal(t, 90, NextPosition(shopColumns()))
	assert.Equal(t, 10, NextPosition(nil))
	assert.Equal(t, 10, NextPosition([]entities.KanbanColumn{{Slug: "neg", Position: -5}}))
}

func TestReorder(t *testing.T) {
	t.Run("move last to front", func(t *testing.T) {
		ordered, changed, err := Reorder(shopColumns(), "finished", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"finished", "received", "analysis", "budget", "washing", "assembly", "testing", "pickup"}, slugs(ordered))
		for i, c := range ordered {
			assert.Equal(t, (i+1)*PositionStep, c.Position)
		}
		assert.Len(t, changed, 8)
	})

	t.Run("index is clamped", func(t *testing.T) {
		ordered, _, err := Reorder(shopColumns(), "received", 99)
		require.NoError(t, err)
		assert.Equal(t, "received", ordered[len(ordered)-1].Slug)
	})

	t.Run("same place changes nothing", func(t *testing.T) {
		_, changed, err := Reorder(shopColumns(), "budget", 2)
		require.NoError(t, err)
		assert.Empty(t, changed)
	})

	t.Run("gaps are renumbered", func(t *testing.T) {
		cols := []entities.KanbanColumn{{Slug: "a", Position: 10}, {Slug: "b", Position: 35}, {Slug: "c", Position: 90}}
		_, changed, err := Reorder(cols, "c", 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"c", "b"}, slugs(changed))
	})

	t.Run("unknown slug", func(t *testing.T) {
		_, _, err := Reorder(shopColumns(), "ghost", 0)
		assert.ErrorIs(t, err, ErrColumnNotFound)
	})
}
