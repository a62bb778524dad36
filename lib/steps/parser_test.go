package steps

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Request
	}{
		{"plain", "a@b.com#pw123#5000", Request{Account: "a@b.com", Password: "pw123", Steps: 5000}},
		{"trims fields", "  a@b.com  #  pw123 #20000  ", Request{Account: "a@b.com", Password: "pw123", Steps: 20000}},
		{"zero", "13800000000#secret#0", Request{Account: "13800000000", Password: "secret", Steps: 0}},
		{"leading zeros", "u#p#007", Request{Account: "u", Password: "p", Steps: 7}},
		{"password with spaces inside", "u#my pass#1", Request{Account: "u", Password: "my pass", Steps: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRejects(t *testing.T) {
	for _, in := range []string{
		"",
		"no delimiters",
		"a#b",
		"a#b#c#1",
		"a##b#1",
		"a#b#",
		"a#b#12x",
		"a#b#x12",
		"a#b#-5",
		"a#b#1.5",
		"a#b# 5 5",
		"#b#5",
		"a##5",
		"   #pw#5",
		"a#   #5",
		"a\nb#c#5",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			assert.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestParseDelimiterCount(t *testing.T) {
	// Any delimiter count other than two never parses.
	for n := 0; n <= 6; n++ {
		if n == 2 {
			continue
		}
		parts := make([]string, n+1)
		for i := range parts {
			parts[i] = "x1"
		}
		in := strings.Join(parts, Delimiter)
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrParse, in)
		assert.False(t, LooksLikeRequest(in), in)
	}
}

func TestParseRoundTrip(t *testing.T) {
	accounts := []string{"a", "user@example.com", "13800000000", " spaced "}
	passwords := []string{"p", "p@ss w0rd", "密码"}
	for _, a := range accounts {
		for _, p := range passwords {
			for _, n := range []int{0, 1, 99999, 100000, 100001} {
				in := a + "#" + p + "#" + strconv.Itoa(n)
				got, err := Parse(in)
				require.NoError(t, err, in)
				assert.Equal(t, strings.TrimSpace(a), got.Account)
				assert.Equal(t, strings.TrimSpace(p), got.Password)
				assert.Equal(t, n, got.Steps)
			}
		}
	}
}

func TestParseHugeStepsSaturates(t *testing.T) {
	got, err := Parse("a#b#999999999999999999999999")
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, got.Steps)
	assert.ErrorIs(t, Validate(got), ErrStepsOutOfRange)
}
