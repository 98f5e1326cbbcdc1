// file: internals/features/assignments/scheduler/renewal_reminder_test.go
package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysUntilDue_CalendarBased(t *testing.T) {
	loc := time.Local
	now := time.Date(2025, 3, 10, 23, 30, 0, 0, loc)

	// Due besok jam 01:00 = 1 hari, walau < 24 jam jaraknya
	due := time.Date(2025, 3, 11, 1, 0, 0, 0, loc)
	assert.Equal(t, 1, DaysUntilDue(now, due))

	// Due hari ini = 0
	assert.Equal(t, 0, DaysUntilDue(now, time.Date(2025, 3, 10, 8, 0, 0, 0, loc)))

	// Due 7 hari lagi
	assert.Equal(t, 7, DaysUntilDue(now, time.Date(2025, 3, 17, 12, 0, 0, 0, loc)))

	// Sudah lewat = negatif
	assert.Equal(t, -2, DaysUntilDue(now, time.Date(2025, 3, 8, 8, 0, 0, 0, loc)))
}

func TestMatchOffset(t *testing.T) {
	assert.True(t, MatchOffset(7))
	assert.True(t, MatchOffset(3))
	assert.True(t, MatchOffset(1))

	// Di luar jadwal: tidak dikirim
	assert.False(t, MatchOffset(5))
	assert.False(t, MatchOffset(0))
	assert.False(t, MatchOffset(-1))
	assert.False(t, MatchOffset(14))
}
