package calc

import (
	"testing"

	"github.com/govalues/fixedpoint"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			input string
			scale int
			want  fixedpoint.FixedPoint
		}{
			{"5", 16, fixedpoint.FromInt(5)},
			{"+ 2 3", 16, fixedpoint.FromInt(5)},
			{"- 2 3", 16, fixedpoint.FromInt(-1)},
			{"* 1.5 3", 16, fixedpoint.MustNewFromFloat64(4.5, 16)},
			{"/ 7 2", 16, fixedpoint.MustNewFromFloat64(3.5, 16)},
			{"/ 7 2", 0, fixedpoint.MustNew(3, 0)},
			{"* + 1 2 - 10 4", 16, fixedpoint.FromInt(18)},
			{"  +   0.25\t0.5 ", 8, fixedpoint.MustNew(0xc0, 8)},
			{"/ 1 3", 16, fixedpoint.MustNew(21845, 16)},
			{"-1.5", 16, fixedpoint.MustNewFromFloat64(-1.5, 16)},
		}
		for _, tt := range tests {
			got, err := Evaluate(tt.input, tt.scale)
			require.NoError(t, err, "Evaluate(%q, %v)", tt.input, tt.scale)
			require.Equal(t, tt.want, got, "Evaluate(%q, %v)", tt.input, tt.scale)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			input string
			scale int
			want  error
		}{
			"empty":            {"", 16, errNoTokens},
			"blank":            {" \t ", 16, errNoTokens},
			"not enough":       {"+ 1", 16, errNotEnough},
			"invalid operand":  {"+ 1 x", 16, errInvalidOperand},
			"division by zero": {"/ 1 0", 16, nil},
			"extra operands":   {"1 2", 16, nil},
			"scale range":      {"1", 64, nil},
			"overflow":         {"1e300", 16, nil},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := Evaluate(tt.input, tt.scale)
				require.Error(t, err)
				if tt.want != nil {
					require.ErrorIs(t, err, tt.want)
				}
			})
		}
	})
}
