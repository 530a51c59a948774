package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoard_SupportsProtocol(t *testing.T) {
	board := Board{
		SupportedProtocols: []Protocol{ProtocolI2C, ProtocolSPI},
	}

	assert.True(t, board.SupportsProtocol(ProtocolI2C))
	assert.True(t, board.SupportsProtocol(ProtocolSPI))
	assert.False(t, board.SupportsProtocol(ProtocolCAN))
	assert.False(t, board.SupportsProtocol(ProtocolOneWire))
}

func TestBoard_SupportsProtocol_GPIOAlways(t *testing.T) {
	// Any board with pins can bit-bang GPIO, so GPIO is supported even
	// when the board declares no protocols at all.
	board := Board{}
	assert.True(t, board.SupportsProtocol(ProtocolGPIO))
}

func TestBoard_PinCounts(t *testing.T) {
	board := Board{
		Pins: []BoardPin{
			{Number: 0, Name: "D0", Functions: []PinFunction{PinFunctionDigital, PinFunctionUART}},
			{Number: 1, Name: "D1", Functions: []PinFunction{PinFunctionDigital}},
			{Number: 2, Name: "D2", Functions: []PinFunction{PinFunctionGPIO}},
			{Number: 3, Name: "A0", Functions: []PinFunction{PinFunctionAnalog}},
			{Number: 4, Name: "A1", Functions: []PinFunction{PinFunctionAnalog, PinFunctionDigital}},
		},
	}

	// GPIO-capable pins count toward the digital budget.
	assert.Equal(t, 4, board.DigitalPinCount())
	assert.Equal(t, 2, board.AnalogPinCount())

	assert.Equal(t, 1, board.PinsWithFunction(PinFunctionUART))
	assert.Equal(t, 0, board.PinsWithFunction(PinFunctionPWM))
}

func TestBoardPin_HasFunction(t *testing.T) {
	pin := BoardPin{Functions: []PinFunction{PinFunctionDigital, PinFunctionPWM}}

	assert.True(t, pin.HasFunction(PinFunctionDigital))
	assert.True(t, pin.HasFunction(PinFunctionPWM))
	assert.False(t, pin.HasFunction(PinFunctionAnalog))
}
