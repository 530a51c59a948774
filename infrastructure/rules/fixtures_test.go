package rules

import (
	"fmt"

	"github.com/SaiAkhilM/protobuddy/internal/domain"
)

// unoStyleBoard returns a 5V board with 14 digital and 6 analog pins,
// a 20mA per-pin limit, a 200mA budget, and I2C/SPI/UART/PWM support.
func unoStyleBoard() domain.Board {
	pins := make([]domain.BoardPin, 0, 20)
	for i := 0; i < 14; i++ {
		fns := []domain.PinFunction{domain.PinFunctionDigital}
		if i == 0 {
			fns = append(fns, domain.PinFunctionUART)
		}
		pins = append(pins, domain.BoardPin{
			Number:    i,
			Name:      fmt.Sprintf("D%d", i),
			Functions: fns,
		})
	}
	for i := 0; i < 6; i++ {
		pins = append(pins, domain.BoardPin{
			Number:    14 + i,
			Name:      fmt.Sprintf("A%d", i),
			Functions: []domain.PinFunction{domain.PinFunctionAnalog},
		})
	}

	return domain.Board{
		ID:               "arduino-uno",
		Name:             "Arduino Uno R3",
		OperatingVoltage: 5,
		IOVoltage:        5,
		MaxCurrentPerPin: 20,
		MaxCurrentTotal:  200,
		SupportedProtocols: []domain.Protocol{
			domain.ProtocolI2C,
			domain.ProtocolSPI,
			domain.ProtocolUART,
			domain.ProtocolPWM,
		},
		Pins: pins,
	}
}

// rangedComponent returns a minimal component with the given voltage
// window and worst-case draw.
func rangedComponent(vmin, vmax, maxCurrent float64) domain.Component {
	return domain.Component{
		ID:         "test-component",
		Name:       "Test Component",
		Voltage:    domain.VoltageRange{Min: vmin, Max: vmax},
		MaxCurrent: maxCurrent,
	}
}
