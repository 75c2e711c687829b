// Package entity contains the core business objects of the storefront.
package entity

import "time"

// RoomStatus summarizes how close a room's environment is to its targets.
type RoomStatus string

const (
	RoomStatusOptimal  RoomStatus = "optimal"
	RoomStatusWarning  RoomStatus = "warning"
	RoomStatusCritical RoomStatus = "critical"
)

// Room is a monitored mushroom growing chamber.
type Room struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	KitID       string     `json:"kit_id"` // Sensor kit identifier; unique per farm, enforced by the backend.
	Mushroom    string     `json:"mushroom"`
	Status      RoomStatus `json:"status"`
	LastUpdated time.Time  `json:"last_updated"`
}

// SensorSnapshot is a point-in-time reading of a room's environment.
type SensorSnapshot struct {
	Time        time.Time `json:"time"`
	Temperature float64   `json:"temperature"` // Degrees Celsius.
	Humidity    float64   `json:"humidity"`    // Relative humidity percent.
	CO2         float64   `json:"co2"`         // Parts per million.
	Light       float64   `json:"light"`       // Lux.
}
