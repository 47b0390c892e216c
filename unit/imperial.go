package unit

// Imperial length units, expressed in meters (international yard and pound
// agreement values).

// Inch is 0.0254 meters.
type Inch struct{}

func (Inch) Symbol() string { return "in" }
func (Inch) Base() float64  { return 0.0254 }

// Foot is 0.3048 meters.
type Foot struct{}

func (Foot) Symbol() string { return "ft" }
func (Foot) Base() float64  { return 0.3048 }

// Yard is 0.9144 meters.
type Yard struct{}

func (Yard) Symbol() string { return "yd" }
func (Yard) Base() float64  { return 0.9144 }

// Mile is 1609.344 meters.
type Mile struct{}

func (Mile) Symbol() string { return "mi" }
func (Mile) Base() float64  { return 1609.344 }
