package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceZero(t *testing.T) {
	assert.Equal(t, 0.0, Distance(-6.2, 106.8, -6.2, 106.8))
}

func TestDistanceKnownPairs(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		wantM                  float64
		tolM                   float64
	}{
		{
			// Monas - Kota Tua Jakarta, ±4.7 km
			name: "monas ke kota tua",
			lat1: -6.1754, lon1: 106.8272,
			lat2: -6.1352, lon2: 106.8133,
			wantM: 4700, tolM: 300,
		},
		{
			// Jakarta - Surabaya, ±660 km
			name: "jakarta ke surabaya",
			lat1: -6.2088, lon1: 106.8456,
			lat2: -7.2575, lon2: 112.7521,
			wantM: 663000, tolM: 5000,
		},
		{
			// pergeseran kecil ~111 m per 0.001 derajat latitude
			name: "pergeseran 0.001 derajat latitude",
			lat1: 0, lon1: 0,
			lat2: 0.001, lon2: 0,
			wantM: 111.2, tolM: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.wantM, got, tt.tolM)
		})
	}
}

func TestDistanceSymmetric(t *testing.T) {
	d1 := Distance(-6.2, 106.8, -7.25, 112.75)
	d2 := Distance(-7.25, 112.75, -6.2, 106.8)
	assert.InDelta(t, d1, d2, 1e-6)
}

func TestDistanceNaNPropagates(t *testing.T) {
	assert.True(t, math.IsNaN(Distance(math.NaN(), 106.8, -6.2, 106.8)))
	assert.True(t, math.IsNaN(Distance(-6.2, 106.8, -6.2, math.NaN())))
}
