package utils

import (
	"github.com/mmcloughlin/geohash"
	"github.com/piresc/carpool/internal/pkg/models"
)

// DefaultGeohashPrecision gives cells of roughly 1.2km x 0.6km
const DefaultGeohashPrecision uint = 6

// EncodePoint converts a point to a geohash string
func EncodePoint(point models.GeoPoint, precision uint) string {
	if precision == 0 {
		precision = DefaultGeohashPrecision
	}
	return geohash.EncodeWithPrecision(point.Latitude, point.Longitude, precision)
}

// CellWithNeighbors returns hash followed by its eight neighbouring cells
func CellWithNeighbors(hash string) []string {
	return append([]string{hash}, geohash.Neighbors(hash)...)
}

// ValidGeohash reports whether hash is a well-formed geohash
func ValidGeohash(hash string) bool {
	return hash != "" && geohash.Validate(hash) == nil
}
