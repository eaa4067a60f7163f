package postgres

import (
	"math"
	"slices"

	"github.com/paulmach/orb"
)

const (
	// areaCellsPerDegree sets the grid to 0.01 degree cells, about 1.1 km of latitude.
	areaCellsPerDegree = 100
	lonCellSpan        = 360*areaCellsPerDegree + 1
	// maxAreaLockCells bounds the number of locks per call. Wider areas share one global key.
	maxAreaLockCells  = 64
	globalAreaLockKey = int64(-1)
)

// areaLockKeys returns the sorted advisory lock keys of every grid cell bound touches.
func areaLockKeys(bound orb.Bound) []int64 {
	minLat, maxLat := latCell(bound.Min.Lat()), latCell(bound.Max.Lat())
	minLon, maxLon := lonCell(bound.Min.Lon()), lonCell(bound.Max.Lon())

	if (maxLat-minLat+1)*(maxLon-minLon+1) > maxAreaLockCells {
		return []int64{globalAreaLockKey}
	}

	keys := make([]int64, 0, (maxLat-minLat+1)*(maxLon-minLon+1))
	for lat := minLat; lat <= maxLat; lat++ {
		for lon := minLon; lon <= maxLon; lon++ {
			keys = append(keys, cellKey(lat, lon))
		}
	}
	slices.Sort(keys)

	return slices.Compact(keys)
}

func latCell(lat float64) int64 {
	return clampCell(lat, 90)
}

func lonCell(lon float64) int64 {
	return clampCell(lon, 180)
}

func clampCell(deg, limit float64) int64 {
	deg = math.Max(-limit, math.Min(limit, deg))

	return int64(math.Floor(deg * areaCellsPerDegree))
}

func cellKey(lat, lon int64) int64 {
	return (lat+90*areaCellsPerDegree)*lonCellSpan + (lon + 180*areaCellsPerDegree)
}
