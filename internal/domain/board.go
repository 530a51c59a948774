// Package domain contains the specification model for the compatibility
// engine: typed representations of development boards and hardware
// components, plus the issue and check types produced by rule evaluation.
// All types are pure data with derived accessors; behavior lives in the
// rule evaluators and the application layer.
package domain

// Protocol identifies a communication protocol a board can drive or a
// component can require.
type Protocol string

// Communication protocols recognized by the compatibility engine.
const (
	ProtocolI2C     Protocol = "i2c"
	ProtocolSPI     Protocol = "spi"
	ProtocolUART    Protocol = "uart"
	ProtocolOneWire Protocol = "onewire"
	ProtocolCAN     Protocol = "can"
	ProtocolPWM     Protocol = "pwm"

	// ProtocolGPIO is plain digital I/O. Every board is assumed to
	// support it, so rules treat it as always available.
	ProtocolGPIO Protocol = "gpio"
)

// PinFunction describes one capability of a physical board pin.
// A single pin typically carries several functions (e.g. digital + pwm).
type PinFunction string

// Pin functions a board pin may declare.
const (
	PinFunctionDigital PinFunction = "digital"
	PinFunctionAnalog  PinFunction = "analog"
	PinFunctionPWM     PinFunction = "pwm"
	PinFunctionI2C     PinFunction = "i2c"
	PinFunctionSPI     PinFunction = "spi"
	PinFunctionUART    PinFunction = "uart"
	PinFunctionGPIO    PinFunction = "gpio"
)

// BoardPin is a single physical pin on a development board together with
// the functions it supports.
type BoardPin struct {
	// Number is the pin's position in the board's pinout, starting at 0.
	Number int `json:"number" yaml:"number"`

	// Name is the silkscreen label, e.g. "D7" or "A0".
	Name string `json:"name" yaml:"name"`

	// Functions lists every capability this pin exposes.
	Functions []PinFunction `json:"functions" yaml:"functions"`
}

// HasFunction reports whether the pin declares the given function.
func (p BoardPin) HasFunction(fn PinFunction) bool {
	for _, f := range p.Functions {
		if f == fn {
			return true
		}
	}
	return false
}

// Board is a catalog entry for a development board. Boards are published
// by the catalog collaborator and are immutable once published; the
// compatibility engine only reads them.
type Board struct {
	// ID is the stable catalog identifier.
	ID string `json:"id" yaml:"id"`

	// Name is the human-readable name, usable for fuzzy lookup.
	Name string `json:"name" yaml:"name"`

	// OperatingVoltage is the board's supply voltage in volts.
	OperatingVoltage float64 `json:"operating_voltage" yaml:"operating_voltage"`

	// IOVoltage is the logic-level voltage on the I/O pins in volts.
	// This is the value components are driven at.
	IOVoltage float64 `json:"io_voltage" yaml:"io_voltage"`

	// MaxCurrentPerPin is the per-pin output current limit in milliamps.
	MaxCurrentPerPin float64 `json:"max_current_per_pin" yaml:"max_current_per_pin"`

	// MaxCurrentTotal is the total output current budget in milliamps.
	MaxCurrentTotal float64 `json:"max_current_total" yaml:"max_current_total"`

	// SupportedProtocols lists the communication protocols the board can
	// drive, in declaration order.
	SupportedProtocols []Protocol `json:"supported_protocols" yaml:"supported_protocols"`

	// Pins is the ordered physical pinout.
	Pins []BoardPin `json:"pins" yaml:"pins"`
}

// SupportsProtocol reports whether the board supports the given protocol.
// GPIO is treated as ubiquitous and always supported.
func (b Board) SupportsProtocol(p Protocol) bool {
	if p == ProtocolGPIO {
		return true
	}
	for _, sp := range b.SupportedProtocols {
		if sp == p {
			return true
		}
	}
	return false
}

// PinsWithFunction returns the number of board pins declaring the given
// function.
func (b Board) PinsWithFunction(fn PinFunction) int {
	n := 0
	for _, pin := range b.Pins {
		if pin.HasFunction(fn) {
			n++
		}
	}
	return n
}

// DigitalPinCount returns the number of pins usable as general-purpose
// digital I/O. Pins declaring either the digital or gpio function count.
func (b Board) DigitalPinCount() int {
	n := 0
	for _, pin := range b.Pins {
		if pin.HasFunction(PinFunctionDigital) || pin.HasFunction(PinFunctionGPIO) {
			n++
		}
	}
	return n
}

// AnalogPinCount returns the number of pins exposing an analog function.
func (b Board) AnalogPinCount() int { return b.PinsWithFunction(PinFunctionAnalog) }
