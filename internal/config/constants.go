package config

const (
	// Default file locations, relative to the working directory
	DefaultDBPath        = "data/albion.db"
	DefaultEquipmentPath = "configs/equipment.json"
	DefaultCSVDir        = "data"

	// DefaultIconBaseURL serves item renders by catalog id
	DefaultIconBaseURL = "https://render.albiononline.com/v1/item/"

	// Icon qualities accepted by the render service
	MinIconQuality = 1
	MaxIconQuality = 5
)

// Accepted values for enumerated settings
var (
	ValidLogLevels    = []string{"debug", "info", "warn", "warning", "error"}
	ValidLogFormats   = []string{"json", "text"}
	ValidEnvironments = []string{"dev", "staging", "prod", "test"}
)
