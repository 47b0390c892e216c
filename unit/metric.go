package unit

// The SI length ladder. Each tag is a zero-size struct whose Base is the
// number of meters in one of its units.

// Meter is the reference unit of the metric ladder (base factor 1).
type Meter struct{}

func (Meter) Symbol() string { return "m" }
func (Meter) Base() float64  { return 1 }

// Yottameter is 1e24 meters.
type Yottameter struct{}

func (Yottameter) Symbol() string { return "Ym" }
func (Yottameter) Base() float64  { return 1e24 }

// Zettameter is 1e21 meters.
type Zettameter struct{}

func (Zettameter) Symbol() string { return "Zm" }
func (Zettameter) Base() float64  { return 1e21 }

// Exameter is 1e18 meters.
type Exameter struct{}

func (Exameter) Symbol() string { return "Em" }
func (Exameter) Base() float64  { return 1e18 }

// Petameter is 1e15 meters.
type Petameter struct{}

func (Petameter) Symbol() string { return "Pm" }
func (Petameter) Base() float64  { return 1e15 }

// Terameter is 1e12 meters.
type Terameter struct{}

func (Terameter) Symbol() string { return "Tm" }
func (Terameter) Base() float64  { return 1e12 }

// Gigameter is 1e9 meters.
type Gigameter struct{}

func (Gigameter) Symbol() string { return "Gm" }
func (Gigameter) Base() float64  { return 1e9 }

// Megameter is 1e6 meters.
type Megameter struct{}

func (Megameter) Symbol() string { return "Mm" }
func (Megameter) Base() float64  { return 1e6 }

// Kilometer is 1000 meters.
type Kilometer struct{}

func (Kilometer) Symbol() string { return "km" }
func (Kilometer) Base() float64  { return 1000 }

// Hectometer is 100 meters.
type Hectometer struct{}

func (Hectometer) Symbol() string { return "hm" }
func (Hectometer) Base() float64  { return 100 }

// Decameter is 10 meters.
type Decameter struct{}

func (Decameter) Symbol() string { return "dam" }
func (Decameter) Base() float64  { return 10 }

// Decimeter is 0.1 meters.
type Decimeter struct{}

func (Decimeter) Symbol() string { return "dm" }
func (Decimeter) Base() float64  { return 0.1 }

// Centimeter is 0.01 meters.
type Centimeter struct{}

func (Centimeter) Symbol() string { return "cm" }
func (Centimeter) Base() float64  { return 0.01 }

// Millimeter is 0.001 meters.
type Millimeter struct{}

func (Millimeter) Symbol() string { return "mm" }
func (Millimeter) Base() float64  { return 0.001 }

// Micrometer is 1e-6 meters.
type Micrometer struct{}

func (Micrometer) Symbol() string { return "μm" }
func (Micrometer) Base() float64  { return 1e-6 }

// Nanometer is 1e-9 meters.
type Nanometer struct{}

func (Nanometer) Symbol() string { return "nm" }
func (Nanometer) Base() float64  { return 1e-9 }

// Picometer is 1e-12 meters.
type Picometer struct{}

func (Picometer) Symbol() string { return "pm" }
func (Picometer) Base() float64  { return 1e-12 }

// Femtometer is 1e-15 meters.
type Femtometer struct{}

func (Femtometer) Symbol() string { return "fm" }
func (Femtometer) Base() float64  { return 1e-15 }

// Attometer is 1e-18 meters.
type Attometer struct{}

func (Attometer) Symbol() string { return "am" }
func (Attometer) Base() float64  { return 1e-18 }

// Zeptometer is 1e-21 meters.
type Zeptometer struct{}

func (Zeptometer) Symbol() string { return "zm" }
func (Zeptometer) Base() float64  { return 1e-21 }

// Yoctometer is 1e-24 meters.
type Yoctometer struct{}

func (Yoctometer) Symbol() string { return "ym" }
func (Yoctometer) Base() float64  { return 1e-24 }
