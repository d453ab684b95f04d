package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func row(tag, next string) Row {
	return Row{Tag: tag, Type: "checkbox", ShowNextTo: next}
}

func TestOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		tables []Table
		want   []string
	}{
		{
			name:   "no overrides keeps table order",
			tables: []Table{table("T", row("A", ""), row("B", ""), row("C", ""))},
			want:   []string{"A", "B", "C"},
		},
		{
			name:   "block absorbs following rows",
			tables: []Table{table("T", row("A", ""), row("B", "A"), row("C", "A"), row("D", ""))},
			want:   []string{"A", "B", "C", "D"},
		},
		{
			name:   "target after its block closes the block",
			tables: []Table{table("T", row("B", "A"), row("A", ""), row("D", ""))},
			want:   []string{"A", "B", "D"},
		},
		{
			name: "block moves rows up",
			tables: []Table{table("T",
				row("A", ""), row("B", ""), row("X", "A"), row("Y", ""),
			)},
			want: []string{"A", "X", "Y", "B"},
		},
		{
			name: "blocks accumulate across tables",
			tables: []Table{
				table("T1", row("A", ""), row("B", "A")),
				table("T2", row("C", "A"), row("D", "")),
			},
			want: []string{"A", "B", "C", "D"},
		},
		{
			name: "block state resets between tables",
			tables: []Table{
				table("T1", row("A", ""), row("B", "A")),
				table("T2", row("C", "")),
			},
			want: []string{"A", "B", "C"},
		},
		{
			name:   "dangling block is dropped",
			tables: []Table{table("T", row("A", ""), row("B", "Missing"), row("C", ""))},
			want:   []string{"A"},
		},
		{
			name:   "block targeting a row of another block is dropped",
			tables: []Table{table("T", row("A", ""), row("B", "A"), row("C", "B"))},
			want:   []string{"A", "B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tagNames(Order(tt.tables)))
		})
	}
}

func TestOrderSplicesOneLevel(t *testing.T) {
	t.Parallel()

	tables := []Table{table("T",
		row("A", ""), row("B", "A"), row("C", ""), row("D", "C"), row("E", "A"), row("F", ""),
	)}
	// C and F are absorbed by the block of A. D targets C, which is a block row,
	// so it is never spliced in.
	assert.Equal(t, []string{"A", "B", "C", "E", "F"}, tagNames(Order(tables)))
}
