package timezone_test

import (
	"testing"
	"time"
	"tripavail/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, timezone.Init("UTC")) })

	require.NoError(t, timezone.Init("Asia/Jakarta"))
	assert.Equal(t, "Asia/Jakarta", timezone.Location().String())
	assert.Equal(t, "Asia/Jakarta", timezone.Now().Location().String())

	assert.Error(t, timezone.Init("Mars/Olympus_Mons"))
	assert.Equal(t, "Asia/Jakarta", timezone.Location().String(), "failed init keeps the previous zone")

	require.NoError(t, timezone.Init(""))
	assert.Equal(t, time.UTC.String(), timezone.Location().String())
}

func TestDate(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	// 23:30 on Dec 1 in Jakarta is still Dec 1 there, although it is 16:30 UTC.
	late := time.Date(2026, 12, 1, 23, 30, 0, 0, jakarta)

	assert.Equal(t, time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), timezone.Date(late))
	assert.Equal(t, timezone.Date(timezone.Now()), timezone.Today())
}

func TestFormatAndParse(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, timezone.Init("UTC")) })
	require.NoError(t, timezone.Init("Asia/Jakarta"))

	instant := time.Date(2026, 12, 1, 5, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-12-01T12:00:00+07:00", timezone.Format(instant, time.RFC3339))

	parsed, err := timezone.Parse(time.DateTime, "2026-12-01 12:00:00")
	require.NoError(t, err)
	assert.True(t, instant.Equal(parsed))
}

func TestStartOfDay(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, timezone.Init("UTC")) })
	require.NoError(t, timezone.Init("America/New_York"))

	newYork := timezone.Location()
	date := time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC)

	got := timezone.StartOfDay(date)

	assert.Equal(t, time.Date(2026, 10, 21, 0, 0, 0, 0, newYork), got)
	assert.Equal(t, "2026-10-21T04:00:00Z", got.UTC().Format(time.RFC3339))
}
