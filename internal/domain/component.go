package domain

// PinType classifies a pin exposed by a component.
type PinType string

// Pin types a component pin may declare.
const (
	PinTypePower         PinType = "power"
	PinTypeGround        PinType = "ground"
	PinTypeDigital       PinType = "digital"
	PinTypeAnalog        PinType = "analog"
	PinTypeCommunication PinType = "communication"
)

// VoltageRange is the inclusive operating voltage window of a component,
// in volts.
type VoltageRange struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Contains reports whether v falls inside the range.
func (r VoltageRange) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// ProtocolRequirement is one communication protocol a component needs,
// with optional protocol-specific metadata. The extension fields are a
// closed set of the values the rules actually read; unknown metadata from
// the catalog is dropped rather than carried as an open map.
type ProtocolRequirement struct {
	// Type is the required protocol.
	Type Protocol `json:"type" yaml:"type"`

	// Address is the bus address for addressable protocols (I2C), as
	// published in the datasheet, e.g. "0x76". Empty when not declared.
	Address string `json:"address,omitempty" yaml:"address,omitempty"`

	// SpeedHz is the maximum bus speed in hertz, when declared.
	SpeedHz int `json:"speed_hz,omitempty" yaml:"speed_hz,omitempty"`
}

// ComponentPin is a single pin exposed by a component.
type ComponentPin struct {
	// Name is the datasheet label, e.g. "VCC", "SDA", "TRIG".
	Name string `json:"name" yaml:"name"`

	// Type classifies the pin.
	Type PinType `json:"type" yaml:"type"`
}

// Dimensions are the physical dimensions of a component in millimeters.
type Dimensions struct {
	Length float64 `json:"length" yaml:"length"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height,omitempty" yaml:"height,omitempty"`
}

// Component is a catalog entry for a hardware component (sensor, actuator,
// interface chip). Published by the catalog collaborator and immutable
// once published.
type Component struct {
	// ID is the stable catalog identifier.
	ID string `json:"id" yaml:"id"`

	// Name is the human-readable name, usable for fuzzy lookup.
	Name string `json:"name" yaml:"name"`

	// Voltage is the inclusive operating voltage window.
	Voltage VoltageRange `json:"voltage" yaml:"voltage"`

	// OperatingCurrent is the typical current draw in milliamps.
	OperatingCurrent float64 `json:"operating_current" yaml:"operating_current"`

	// MaxCurrent is the worst-case current draw in milliamps. Rules
	// budget against this value, not the typical draw.
	MaxCurrent float64 `json:"max_current" yaml:"max_current"`

	// Protocols lists the communication protocols the component requires.
	// Empty means the component needs no bus at all.
	Protocols []ProtocolRequirement `json:"protocols,omitempty" yaml:"protocols,omitempty"`

	// Pins lists the pins the component exposes.
	Pins []ComponentPin `json:"pins,omitempty" yaml:"pins,omitempty"`

	// Dimensions are the physical dimensions, when the catalog has them.
	Dimensions *Dimensions `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`

	// RequiredLibraries names the software libraries the component's
	// driver stack depends on.
	RequiredLibraries []string `json:"required_libraries,omitempty" yaml:"required_libraries,omitempty"`
}

// SignalPinCount returns the number of pins that consume board I/O:
// every pin except power and ground.
func (c Component) SignalPinCount() int {
	n := 0
	for _, pin := range c.Pins {
		if pin.Type != PinTypePower && pin.Type != PinTypeGround {
			n++
		}
	}
	return n
}

// AnalogPinCount returns the number of analog pins the component exposes.
func (c Component) AnalogPinCount() int {
	n := 0
	for _, pin := range c.Pins {
		if pin.Type == PinTypeAnalog {
			n++
		}
	}
	return n
}

// RequiresProtocols reports whether the component declares any
// communication protocol requirement.
func (c Component) RequiresProtocols() bool { return len(c.Protocols) > 0 }
