package semflo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const gradebookUrl = "https://appsemflo.be/carnet-de-notes/math-4a"

func TestShiftPeriod(t *testing.T) {
	link, period := ShiftPeriod(gradebookUrl+"/p2", 1)
	require.Equal(t, gradebookUrl+"/p3", link)
	require.Equal(t, 3, period)

	link, period = ShiftPeriod(gradebookUrl+"/p2", -1)
	require.Equal(t, gradebookUrl+"/p1", link)
	require.Equal(t, 1, period)

	// clamped at period 1
	link, period = ShiftPeriod(gradebookUrl+"/p1", -1)
	require.Equal(t, gradebookUrl+"/p1", link)
	require.Equal(t, 1, period)
}

func TestShiftPeriodWithoutSegment(t *testing.T) {
	// a link without a period segment gets /p1 appended no matter
	// the delta
	for _, delta := range []int{-3, -1, 0, 1, 5} {
		link, period := ShiftPeriod(gradebookUrl, delta)
		require.Equal(t, gradebookUrl+"/p1", link)
		require.Equal(t, 1, period)
	}
}

func TestExtractPeriod(t *testing.T) {
	require.Equal(t, 2, ExtractPeriod(gradebookUrl+"/p2"))
	require.Equal(t, 12, ExtractPeriod(gradebookUrl+"/p12"))
	require.Equal(t, 1, ExtractPeriod(gradebookUrl))
}

func TestStripPeriod(t *testing.T) {
	require.Equal(t, gradebookUrl, StripPeriod(gradebookUrl+"/p2"))
	require.Equal(t, gradebookUrl, StripPeriod(gradebookUrl))
}

func TestPeriodUrl(t *testing.T) {
	require.Equal(t, gradebookUrl+"/p3", PeriodUrl(gradebookUrl+"/p1", 3))
	require.Equal(t, gradebookUrl+"/p2", PeriodUrl(gradebookUrl, 2))
}
