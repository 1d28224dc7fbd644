package models

// GeoPoint is a lon/lat coordinate in the solver's wire format
type GeoPoint struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// SolverStop is one stop in the solver input. ID follows the external
// convention: "<point_id>" optionally suffixed with "__person_<id>" per
// carried person.
type SolverStop struct {
	ID       string   `json:"id"`
	Location GeoPoint `json:"location"`
	Quantity int      `json:"quantity,omitempty"`
}

// SolverVehicle is one vehicle in the solver input
type SolverVehicle struct {
	ID                string    `json:"id"`
	Capacity          int       `json:"capacity"`
	MaxDistanceMeters float64   `json:"max_distance,omitempty"`
	StartLocation     *GeoPoint `json:"start_location,omitempty"`
	EndLocation       *GeoPoint `json:"end_location,omitempty"`
}

// SolverInput is the input document posted to the Nextmv application run
type SolverInput struct {
	Stops    []SolverStop    `json:"stops"`
	Vehicles []SolverVehicle `json:"vehicles"`
}

// SolverRouteStop is one visited location in a solution route
type SolverRouteStop struct {
	ID       string   `json:"id"`
	Location GeoPoint `json:"location"`
}

// SolverRoute is one vehicle's route in the solver output
type SolverRoute struct {
	ID                  string            `json:"id"`
	Route               []SolverRouteStop `json:"route"`
	RouteTravelDistance float64           `json:"route_travel_distance"`
	RouteTravelDuration float64           `json:"route_travel_duration"`
}

// SolverOutput is the solution section of a finished run
type SolverOutput struct {
	Vehicles []SolverRoute `json:"vehicles"`
}
