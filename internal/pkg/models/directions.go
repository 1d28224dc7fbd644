package models

// DirectionsResult is road geometry for one vehicle route as returned by the
// directions provider. Geometry is a GeoJSON-style coordinate list, each
// entry [lon, lat].
type DirectionsResult struct {
	Geometry        [][]float64 `json:"geometry"`
	DistanceMeters  float64     `json:"distance_meters"`
	DurationSeconds float64     `json:"duration_seconds"`
}
