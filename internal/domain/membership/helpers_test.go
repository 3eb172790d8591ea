package membership

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	vo "github.com/gymflow/gymflow/internal/domain/membership/valueobjects"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func days(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}

func newTestPlan(t *testing.T, id uint, price int64, months int) *Plan {
	t.Helper()
	p, err := ReconstructPlan(id, "plan", price, months, []string{"gym floor"}, "", "USD", false, testNow, testNow)
	require.NoError(t, err)
	return p
}

// newTestRecord builds a version-1 record on plan that ends at end.
func newTestRecord(t *testing.T, plan *Plan, status vo.Status, end time.Time, pause *PauseWindow) *Record {
	t.Helper()
	start := end.AddDate(0, 0, -plan.DurationDays()-1)
	r, err := ReconstructRecord(1, 42, plan.ID(), 1, start, end, status, true, pause, start)
	require.NoError(t, err)
	return r
}
