package utils_test

import (
	"testing"

	"investing/src/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoundMoney(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"10", "10"},
		{"10.005", "10.01"},
		{"10.004", "10"},
		{"-3.125", "-3.13"},
		{"0.1", "0.1"},
	}
	for _, tc := range testCases {
		got := utils.RoundMoney(decimal.RequireFromString(tc.in))
		assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
			"RoundMoney(%s) = %s, want %s", tc.in, got, tc.want)
	}
}

func TestRoundQuantity(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"0.0000005", "0.000001"},
		{"0.00000049", "0"},
		{"1.2345678", "1.234568"},
		{"3", "3"},
	}
	for _, tc := range testCases {
		got := utils.RoundQuantity(decimal.RequireFromString(tc.in))
		assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
			"RoundQuantity(%s) = %s, want %s", tc.in, got, tc.want)
	}
}

func TestFractionalAdditionIsExact(t *testing.T) {
	sum := decimal.Zero
	tenth := decimal.RequireFromString("0.1")
	for i := 0; i < 10; i++ {
		sum = sum.Add(tenth)
	}
	assert.True(t, sum.Equal(decimal.NewFromInt(1)), "ten tenths must equal exactly one, got %s", sum)
}
