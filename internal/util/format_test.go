package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatVND(t *testing.T) {
	testCases := []struct {
		amount   int64
		expected string
	}{
		{0, "0 ₫"},
		{500, "500 ₫"},
		{2000, "2.000 ₫"},
		{30000, "30.000 ₫"},
		{1000000, "1.000.000 ₫"},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.expected, FormatVND(tc.amount))
	}
}

func TestFormatVNDFloat(t *testing.T) {
	require.Equal(t, "2.000 ₫", FormatVNDFloat(2000.0))
	require.Equal(t, "1.500 ₫", FormatVNDFloat(1499.5))
}

func TestTruncateContent(t *testing.T) {
	require.Equal(t, "abc", TruncateContent("abc", 5))
	require.Equal(t, "abcde...", TruncateContent("abcdefgh", 5))
}
