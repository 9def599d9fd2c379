package mortality

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCauseKeyPredicates(t *testing.T) {
	tests := []struct {
		key      CauseKey
		isCount  bool
		isDetail bool
	}{
		{CauseTotalDeaths, true, false},
		{CauseOverdose, true, false},
		{CausePercentSpecified, false, false},
		{CauseHeroin, true, true},
		{CauseSyntheticOpioids, true, true},
		{CausePsychostimulants, true, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			assert.Equal(t, tt.isCount, tt.key.IsCount())
			assert.Equal(t, tt.isDetail, tt.key.IsDetail())
		})
	}
}

func TestCauseOrderCoversSplitDomain(t *testing.T) {
	assert.Len(t, CauseOrder, 8)
	for _, k := range CauseOrder {
		assert.NotEqual(t, CauseTotalDeaths, k)
		assert.NotEqual(t, CausePercentSpecified, k)
		assert.True(t, k.IsCount())
	}
}

func TestCauseTitle(t *testing.T) {
	assert.Equal(t, "Heroin", CauseHeroin.Title())
	assert.Equal(t, "unknown_key", CauseKey("unknown_key").Title())
}
