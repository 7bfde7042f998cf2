package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResult_Empty(t *testing.T) {
	r := NewResult("player", "points")

	assert.Equal(t, []string{"player", "points"}, r.Columns)
	assert.Equal(t, 0, r.RowCount())
	assert.NotNil(t, r.Rows) // empty slice, not nil
}

func TestAppendRow_FillsMissingColumns(t *testing.T) {
	r := NewResult("player", "points")

	err := r.AppendRow(Row{"player": String("salah")})
	require.NoError(t, err)

	assert.Equal(t, 1, r.RowCount())
	assert.Equal(t, String("salah"), r.Cell(0, "player"))
	assert.Equal(t, Null{}, r.Cell(0, "points"))
}

func TestAppendRow_UndeclaredColumn(t *testing.T) {
	r := NewResult("player")

	err := r.AppendRow(Row{"goals": Int(3)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `undeclared column "goals"`)
	assert.Equal(t, 0, r.RowCount())
}

func TestCell_OutOfRange(t *testing.T) {
	r := NewResult("player")
	require.NoError(t, r.AppendRow(Row{"player": String("saka")}))

	assert.Equal(t, Null{}, r.Cell(-1, "player"))
	assert.Equal(t, Null{}, r.Cell(1, "player"))
	assert.Equal(t, Null{}, r.Cell(0, "missing"))
}

func TestHasColumn(t *testing.T) {
	r := NewResult("name", "status")

	assert.True(t, r.HasColumn("status"))
	assert.False(t, r.HasColumn("points"))
}

func TestToMaps_PreservesRowOrder(t *testing.T) {
	r := NewResult("player", "points")
	require.NoError(t, r.AppendRow(Row{"player": String("haaland"), "points": Int(12)}))
	require.NoError(t, r.AppendRow(Row{"player": String("palmer"), "points": Float(6.5)}))

	maps := r.ToMaps()
	require.Len(t, maps, 2)
	assert.Equal(t, map[string]any{"player": "haaland", "points": int64(12)}, maps[0])
	assert.Equal(t, map[string]any{"player": "palmer", "points": 6.5}, maps[1])
}

func TestFromAny(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Value
	}{
		{"nil", nil, Null{}},
		{"string", "gk", String("gk")},
		{"bytes", []byte("def"), String("def")},
		{"int", 7, Int(7)},
		{"int64", int64(42), Int(42)},
		{"float64", 4.5, Float(4.5)},
		{"bool", true, Bool(true)},
		{"value passthrough", Int(1), Int(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromAny(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromAny_Unsupported(t *testing.T) {
	_, err := FromAny(struct{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported cell type")
}

func TestParseCell(t *testing.T) {
	tests := []struct {
		in   string
		want Value
	}{
		{"", Null{}},
		{"12", Int(12)},
		{"4.5", Float(4.5)},
		{"true", Bool(true)},
		{"false", Bool(false)},
		{"salah", String("salah")},
		{"2026-08-30", String("2026-08-30")},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseCell(tt.in), "input %q", tt.in)
	}
}

func TestGoValue(t *testing.T) {
	assert.Nil(t, GoValue(Null{}))
	assert.Equal(t, "x", GoValue(String("x")))
	assert.Equal(t, int64(3), GoValue(Int(3)))
	assert.Equal(t, 1.5, GoValue(Float(1.5)))
	assert.Equal(t, true, GoValue(Bool(true)))
}
