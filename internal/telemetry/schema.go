package telemetry

// SpeedColumn is the distinguished column used for the headline speed statistics.
const SpeedColumn = "speed_kmh"

// Threshold holds the configured limits for one column. A nil bound means
// that direction is never checked.
type Threshold struct {
	Column string
	Max    *float64
	Min    *float64
}

// Schema is the fixed description of a telemetry capture: which columns must
// be present, which of them are numeric, which header misspellings are
// accepted, and which limits are checked. It is immutable configuration,
// shared by reference across the pipeline.
type Schema struct {
	// Required lists every column a capture must contain, in canonical order.
	Required []string
	// Numeric lists the columns coerced to float64 for statistics and
	// threshold checks, in summary-table order.
	Numeric []string
	// Aliases maps known misspelled headers to their canonical names.
	Aliases map[string]string
	// Thresholds is checked in declaration order by the breach detector.
	Thresholds []Threshold
}

// DefaultSchema returns the stock EV telemetry schema.
func DefaultSchema() *Schema {
	return &Schema{
		Required: []string{
			"timestamp",
			"speed_kmh",
			"throttle_pct",
			"brake_pct",
			"regen_brake",
			"motor_rpm",
			"battery_voltage",
			"battery_current",
			"battery_soc_pct",
			"battery_temp_c",
			"motor_temp_c",
			"inverter_temp_c",
			"cabin_temp_c",
			"odometer_km",
			"power_kw",
			"energy_used_kw",
			"event_type",
			"event_description",
		},
		Numeric: []string{
			"speed_kmh",
			"throttle_pct",
			"brake_pct",
			"regen_brake",
			"motor_rpm",
			"battery_voltage",
			"battery_current",
			"battery_soc_pct",
			"battery_temp_c",
			"motor_temp_c",
			"inverter_temp_c",
			"cabin_temp_c",
			"odometer_km",
			"power_kw",
			"energy_used_kw",
		},
		Aliases: map[string]string{
			"event_descirption": "event_description",
		},
		Thresholds: []Threshold{
			{Column: "speed_kmh", Max: limit(120)},
			{Column: "battery_temp_c", Max: limit(50)},
			{Column: "motor_temp_c", Max: limit(90)},
			{Column: "inverter_temp_c", Max: limit(75)},
			{Column: "battery_soc_pct", Min: limit(15)},
			{Column: "cabin_temp_c", Max: limit(40), Min: limit(5)},
		},
	}
}

// IsNumeric reports whether col belongs to the numeric column set.
func (s *Schema) IsNumeric(col string) bool {
	for _, c := range s.Numeric {
		if c == col {
			return true
		}
	}
	return false
}

func limit(v float64) *float64 { return &v }
