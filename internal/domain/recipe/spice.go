package recipe

// SpiceInfo describes a spice level band for display.
type SpiceInfo struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

// SpiceInfoFor maps a 0-10 spice level to its descriptor band.
func SpiceInfoFor(level int) SpiceInfo {
	switch {
	case level <= 0:
		return SpiceInfo{Label: "No Heat", Description: "Cool as a cucumber"}
	case level <= 2:
		return SpiceInfo{Label: "Mild", Description: "Just a tiny kick"}
	case level <= 4:
		return SpiceInfo{Label: "Medium", Description: "Getting warmer!"}
	case level <= 6:
		return SpiceInfo{Label: "Spicy", Description: "Feeling the burn"}
	case level <= 8:
		return SpiceInfo{Label: "Fiery", Description: "Call the fire department"}
	default:
		return SpiceInfo{Label: "Inferno", Description: "Handle with extreme caution!"}
	}
}
