package repository

import (
	"sort"
	"testing"
	"time"

	"github.com/estateflow/crm/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestViewingBefore(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC)
	}
	viewing := func(serious bool, date time.Time, clock string) *model.Viewing {
		return &model.Viewing{ID: uuid.New(), IsSerious: serious, ViewingDate: date, ViewingTime: clock}
	}

	t.Run("serious viewings sort before casual ones regardless of recency", func(t *testing.T) {
		seriousOld := viewing(true, day(1), "09:00")
		casualNew := viewing(false, day(28), "18:00")

		assert.True(t, viewingBefore(seriousOld, casualNew))
		assert.False(t, viewingBefore(casualNew, seriousOld))
	})

	t.Run("within a tier, newer date first", func(t *testing.T) {
		newer := viewing(true, day(20), "09:00")
		older := viewing(true, day(5), "18:00")

		assert.True(t, viewingBefore(newer, older))
		assert.False(t, viewingBefore(older, newer))
	})

	t.Run("same date, later time first", func(t *testing.T) {
		afternoon := viewing(false, day(10), "14:30")
		morning := viewing(false, day(10), "09:45")

		assert.True(t, viewingBefore(afternoon, morning))
		assert.False(t, viewingBefore(morning, afternoon))
	})

	t.Run("a shuffled listing sorts serious-then-recent", func(t *testing.T) {
		casualNew := viewing(false, day(25), "12:00")
		casualOld := viewing(false, day(3), "12:00")
		seriousLate := viewing(true, day(14), "17:00")
		seriousEarly := viewing(true, day(14), "08:00")
		seriousOld := viewing(true, day(2), "10:00")

		viewings := []*model.Viewing{casualOld, seriousEarly, casualNew, seriousOld, seriousLate}
		sort.SliceStable(viewings, func(i, j int) bool {
			return viewingBefore(viewings[i], viewings[j])
		})

		want := []*model.Viewing{seriousLate, seriousEarly, seriousOld, casualNew, casualOld}
		for i := range want {
			assert.Equal(t, want[i].ID, viewings[i].ID, "position %d", i)
		}
	})
}
