package unit

// Nautical length units, expressed in meters.

// NauticalMile is 1852 meters.
type NauticalMile struct{}

func (NauticalMile) Symbol() string { return "NM" }
func (NauticalMile) Base() float64  { return 1852 }

// Cable is one tenth of a nautical mile.
type Cable struct{}

func (Cable) Symbol() string { return "cb" }
func (Cable) Base() float64  { return 185.2 }

// Fathom is 1.8288 meters.
type Fathom struct{}

func (Fathom) Symbol() string { return "ftm" }
func (Fathom) Base() float64  { return 1.8288 }
