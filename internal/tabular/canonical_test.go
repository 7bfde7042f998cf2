package tabular

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCanonical_Scalars(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"null", nil, "null"},
		{"typed null", Null{}, "null"},
		{"string", String("ok"), `"ok"`},
		{"int", Int(-3), "-3"},
		{"float", Float(6.5), "6.5"},
		{"integral float", Float(12), "12"},
		{"bool", Bool(true), "true"},
		{"plain string", "x", `"x"`},
		{"plain int", 7, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MarshalCanonical(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestMarshalCanonical_SortedKeys(t *testing.T) {
	got, err := MarshalCanonical(map[string]any{
		"b": 2,
		"a": 1,
		"c": 3,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":2,"c":3}`, string(got))
}

func TestMarshalCanonical_NoHTMLEscaping(t *testing.T) {
	got, err := MarshalCanonical("a < b && c > d")
	require.NoError(t, err)
	assert.Equal(t, `"a < b && c > d"`, string(got))
}

func TestMarshalCanonical_NFCNormalization(t *testing.T) {
	// "é" as 'e' + combining acute accent (NFD) must normalize to the
	// single precomposed code point (NFC).
	decomposed := "Zidané"
	composed := "Zidané"

	a, err := MarshalCanonical(decomposed)
	require.NoError(t, err)
	b, err := MarshalCanonical(composed)
	require.NoError(t, err)
	assert.Equal(t, string(b), string(a))
}

func TestMarshalCanonical_ControlCharsEscaped(t *testing.T) {
	got, err := MarshalCanonical("line1\nline2\ttab")
	require.NoError(t, err)
	assert.Equal(t, `"line1\nline2\ttab"`, string(got))
}

func TestMarshalCanonical_NonFiniteFloat(t *testing.T) {
	_, err := MarshalCanonical(math.Inf(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-finite float")
}

func TestMarshalCanonical_NestedStructures(t *testing.T) {
	got, err := MarshalCanonical(map[string]any{
		"rows": []any{
			map[string]any{"player": "salah", "points": int64(14)},
		},
		"count": 1,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"count":1,"rows":[{"player":"salah","points":14}]}`, string(got))
}

func TestMarshalCanonical_RowMaps(t *testing.T) {
	r := NewResult("player", "fit")
	require.NoError(t, r.AppendRow(Row{"player": String("gordon"), "fit": Bool(true)}))

	got, err := MarshalCanonical(r.ToMaps())
	require.NoError(t, err)
	assert.Equal(t, `[{"fit":true,"player":"gordon"}]`, string(got))
}

func TestMarshalCanonical_UnsupportedType(t *testing.T) {
	_, err := MarshalCanonical(make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported type")
}

func TestCompareKeysUTF16_SupplementaryPlane(t *testing.T) {
	// U+1D306 (surrogate pair in UTF-16) sorts after U+FF5E under UTF-16
	// code unit order even though UTF-8 byte order disagrees for some
	// BMP characters; the fixed point worth pinning is the prefix rule.
	assert.Equal(t, -1, compareKeysUTF16("a", "ab"))
	assert.Equal(t, 1, compareKeysUTF16("ab", "a"))
	assert.Equal(t, 0, compareKeysUTF16("ab", "ab"))
	assert.Equal(t, -1, compareKeysUTF16("a", "b"))
}
