package synthesis

import (
	"math"
	"strings"

	"github.com/mbaumgart/recap/internal/domain"
)

const earthRadiusM = 6371000.0

// haversineM returns the great-circle distance between two points in meters.
func haversineM(lat1, lon1, lat2, lon2 float64) float64 {
	const rad = math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLon := (lon2 - lon1) * rad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusM * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

const geohashBase32 = "0123456789bcdefghjkmnpqrstuvwxyz"

// decodeGeohash returns the center point of a geohash cell.
func decodeGeohash(hash string) (lat, lon float64, ok bool) {
	if hash == "" {
		return 0, 0, false
	}
	latLo, latHi := -90.0, 90.0
	lonLo, lonHi := -180.0, 180.0
	even := true
	for _, c := range strings.ToLower(hash) {
		idx := strings.IndexRune(geohashBase32, c)
		if idx < 0 {
			return 0, 0, false
		}
		for bit := 4; bit >= 0; bit-- {
			set := idx&(1<<uint(bit)) != 0
			if even {
				mid := (lonLo + lonHi) / 2
				if set {
					lonLo = mid
				} else {
					lonHi = mid
				}
			} else {
				mid := (latLo + latHi) / 2
				if set {
					latLo = mid
				} else {
					latHi = mid
				}
			}
			even = !even
		}
	}
	return (latLo + latHi) / 2, (lonLo + lonHi) / 2, true
}

// samplePoint extracts usable coordinates from a sample, decoding the
// geohash when no explicit lat/lon is present.
func samplePoint(s domain.LocationSample) (lat, lon float64, ok bool) {
	if s.Lat != 0 || s.Lon != 0 {
		if s.Lat < -90 || s.Lat > 90 || s.Lon < -180 || s.Lon > 180 {
			return 0, 0, false
		}
		return s.Lat, s.Lon, true
	}
	return decodeGeohash(s.Geohash)
}

// centroid averages the usable samples. n is the count of usable samples.
func centroid(samples []domain.LocationSample) (lat, lon float64, n int) {
	var latSum, lonSum float64
	for _, s := range samples {
		la, lo, ok := samplePoint(s)
		if !ok {
			continue
		}
		latSum += la
		lonSum += lo
		n++
	}
	if n == 0 {
		return 0, 0, 0
	}
	return latSum / float64(n), lonSum / float64(n), n
}

// pathLengthKM sums the distances between consecutive usable samples.
func pathLengthKM(samples []domain.LocationSample) float64 {
	var total float64
	var prevLat, prevLon float64
	have := false
	for _, s := range samples {
		la, lo, ok := samplePoint(s)
		if !ok {
			continue
		}
		if have {
			total += haversineM(prevLat, prevLon, la, lo)
		}
		prevLat, prevLon = la, lo
		have = true
	}
	return total / 1000
}
