// Package geo berisi kalkulasi jarak untuk validasi geofence check-in.
package geo

import "math"

// Radius bumi dalam meter (aproksimasi bola).
const earthRadiusM = 6371e3

// Distance menghitung jarak great-circle (meter) antara dua koordinat
// derajat memakai rumus haversine. Murni, tanpa side effect; input NaN
// menghasilkan NaN dan validasinya menjadi urusan pemanggil.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}
