package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVoltageRange_Contains(t *testing.T) {
	r := VoltageRange{Min: 3.0, Max: 3.6}

	assert.True(t, r.Contains(3.0), "lower bound is inclusive")
	assert.True(t, r.Contains(3.3))
	assert.True(t, r.Contains(3.6), "upper bound is inclusive")
	assert.False(t, r.Contains(2.9))
	assert.False(t, r.Contains(5.0))
}

func TestComponent_SignalPinCount(t *testing.T) {
	component := Component{
		Pins: []ComponentPin{
			{Name: "VCC", Type: PinTypePower},
			{Name: "GND", Type: PinTypeGround},
			{Name: "SDA", Type: PinTypeCommunication},
			{Name: "SCL", Type: PinTypeCommunication},
			{Name: "INT", Type: PinTypeDigital},
			{Name: "AOUT", Type: PinTypeAnalog},
		},
	}

	// Power and ground do not occupy I/O pins.
	assert.Equal(t, 4, component.SignalPinCount())
	assert.Equal(t, 1, component.AnalogPinCount())
}

func TestComponent_RequiresProtocols(t *testing.T) {
	assert.False(t, Component{}.RequiresProtocols())
	assert.True(t, Component{
		Protocols: []ProtocolRequirement{{Type: ProtocolI2C, Address: "0x76"}},
	}.RequiresProtocols())
}
