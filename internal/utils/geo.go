package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/wakestop/internal/pkg/models"
)

// EarthRadiusMeters is the IUGG mean Earth radius
const EarthRadiusMeters = 6371008.8

// DefaultGeohashPrecision gives cells of roughly 150m
const DefaultGeohashPrecision = 7

// DistanceMeters returns the great-circle distance between two coordinates
func DistanceMeters(a, b models.Coordinate) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := lat2 - lat1
	dLon := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	// rounding can push h a hair above 1 for antipodal points
	h = math.Min(1, h)

	return 2 * EarthRadiusMeters * math.Asin(math.Sqrt(h))
}

// Destination returns the point reached by travelling distanceMeters from
// origin on the given initial bearing (degrees clockwise from north)
func Destination(origin models.Coordinate, bearingDegrees, distanceMeters float64) models.Coordinate {
	lat1 := toRadians(origin.Latitude)
	lon1 := toRadians(origin.Longitude)
	brng := toRadians(bearingDegrees)
	ang := distanceMeters / EarthRadiusMeters

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(ang) + math.Cos(lat1)*math.Sin(ang)*math.Cos(brng))
	lon2 := lon1 + math.Atan2(math.Sin(brng)*math.Sin(ang)*math.Cos(lat1), math.Cos(ang)-math.Sin(lat1)*math.Sin(lat2))

	return models.Coordinate{
		Latitude:  toDegrees(lat2),
		Longitude: math.Mod(toDegrees(lon2)+540, 360) - 180,
	}
}

// EncodeCoordinate converts a coordinate to a geohash string
func EncodeCoordinate(c models.Coordinate, precision uint) string {
	return geohash.EncodeWithPrecision(c.Latitude, c.Longitude, precision)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func toDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
