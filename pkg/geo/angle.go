package geo

import (
	"math"

	"github.com/lintang-b-s/roadroute/pkg/util"
)

const (
	earthRadiusM  = 6371000.0
	nauticalMileM = 1852.0
)

/*
QuickBearingDistance. bearing [deg, 0..360) and distance [nm] from a to b.

Equirectangular small angle approximation: fine for the few hundred metres between
consecutive road waypoints, wrong near the poles and over long distances. Identical
points give bearing 0 and distance 0.
*/
func QuickBearingDistance(a, b Coordinate) (float64, float64) {
	dLat := util.DegreeToRadians(b.Lat - a.Lat)
	dLon := util.DegreeToRadians(util.FloorMod((b.Lon-a.Lon)+180, 360) - 180)
	cosAvgLat := math.Cos(util.DegreeToRadians(a.Lat+b.Lat) * 0.5)

	dAngle := math.Sqrt(dLat*dLat + dLon*dLon*cosAvgLat*cosAvgLat)
	dist := earthRadiusM * dAngle / nauticalMileM

	bearing := util.FloorMod(util.RadiansToDegree(math.Atan2(dLon*cosAvgLat, dLat)), 360)
	if bearing >= 360 {
		bearing = 0
	}
	return bearing, dist
}

// AngleBetween. absolute difference of two bearings folded into [0, 180].
func AngleBetween(b1, b2 float64) float64 {
	angle := math.Abs(b2 - b1)
	angle = math.Mod(angle, 360)
	if angle > 180 {
		angle = 360 - angle
	}
	return angle
}
