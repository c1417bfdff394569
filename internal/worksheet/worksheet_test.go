package worksheet

import (
	"bytes"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/dyluth/tension/internal/gauge"
	"github.com/dyluth/tension/internal/plan"
)

func buildTestPlan(t *testing.T) (plan.PickupRequest, *plan.PickupPlan) {
	t.Helper()

	req := plan.PickupRequest{
		PatternStitches: 18,
		PatternRows:     20,
		TotalRows:       24,
		PatternGauge:    gauge.Gauge{Stitches: 20, Rows: 28},
		PersonalGauge:   gauge.Gauge{Stitches: 24, Rows: 32},
	}
	p, err := plan.BuildPickup(req)
	require.NoError(t, err)
	return req, p
}

func TestSaveAndReopen(t *testing.T) {
	req, p := buildTestPlan(t)
	path := filepath.Join(t.TempDir(), "pickup.xlsx")

	require.NoError(t, Save(path, req, p))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Plan", "Rows"}, f.GetSheetList())

	// Summary cells survive the round trip.
	checks := map[string]string{
		"A3":  "Pattern stitches",
		"B3":  "18",
		"B5":  "20/28",
		"B6":  "24/32",
		"B12": "23",
		"B14": "23 over 24",
		"B15": "1",
	}
	for ref, want := range checks {
		got, err := f.GetCellValue("Plan", ref)
		require.NoError(t, err)
		assert.Equal(t, want, got, "Plan!%s", ref)
	}
}

func TestChartSheetCoversEveryRow(t *testing.T) {
	req, p := buildTestPlan(t)
	path := filepath.Join(t.TempDir(), "pickup.xlsx")

	require.NoError(t, Save(path, req, p))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Rows")
	require.NoError(t, err)
	require.Len(t, rows, len(p.FullSequence)+1, "header plus one row per slot")
	assert.Equal(t, []string{"Slot", "Marker", "Stitches"}, rows[0])

	// The stitch column must add back up to the pick-up count.
	total := 0
	for _, row := range rows[1:] {
		require.Len(t, row, 3)
		n, err := strconv.Atoi(row[2])
		require.NoError(t, err)
		total += n
	}
	assert.Equal(t, p.Count, total)
}

func TestWriteToBuffer(t *testing.T) {
	req, p := buildTestPlan(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, req, p))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("Plan", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Pick-up plan", got)
}
