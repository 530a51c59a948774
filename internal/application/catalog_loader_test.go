package application

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaiAkhilM/protobuddy/internal/domain"
)

const validCatalogYAML = `
boards:
  - id: uno
    name: Arduino Uno R3
    operating_voltage: 5
    io_voltage: 5
    max_current_per_pin: 20
    max_current_total: 200
    supported_protocols: [i2c, spi, uart, pwm]
    pins:
      - number: 0
        name: D0
        functions: [digital, uart]
      - number: 14
        name: A0
        functions: [analog]
components:
  - id: hc-sr04
    name: HC-SR04 Ultrasonic Sensor
    voltage:
      min: 5
      max: 5
    max_current: 15
    protocols:
      - type: gpio
    pins:
      - name: TRIG
        type: digital
      - name: ECHO
        type: digital
`

func TestCatalogLoader_LoadFromReader(t *testing.T) {
	loader := NewCatalogLoader()

	catalog, err := loader.LoadFromReader(context.Background(), strings.NewReader(validCatalogYAML))
	require.NoError(t, err)

	require.Len(t, catalog.Boards, 1)
	board := catalog.Boards[0]
	assert.Equal(t, "uno", board.ID)
	assert.Equal(t, 5.0, board.IOVoltage)
	assert.Equal(t, []domain.Protocol{
		domain.ProtocolI2C, domain.ProtocolSPI, domain.ProtocolUART, domain.ProtocolPWM,
	}, board.SupportedProtocols)
	require.Len(t, board.Pins, 2)
	assert.True(t, board.Pins[0].HasFunction(domain.PinFunctionUART))

	require.Len(t, catalog.Components, 1)
	component := catalog.Components[0]
	assert.Equal(t, "hc-sr04", component.ID)
	assert.Equal(t, domain.VoltageRange{Min: 5, Max: 5}, component.Voltage)
	assert.Equal(t, 15.0, component.MaxCurrent)
	require.Len(t, component.Protocols, 1)
	assert.Equal(t, domain.ProtocolGPIO, component.Protocols[0].Type)
}

func TestCatalogLoader_RejectsUnknownFields(t *testing.T) {
	loader := NewCatalogLoader()

	// "voltages" is a typo of "voltage"; strict decoding must reject it
	// instead of silently dropping the field.
	const typoYAML = `
components:
  - id: sensor
    name: Sensor
    voltages:
      min: 3.3
      max: 5
`
	_, err := loader.LoadFromReader(context.Background(), strings.NewReader(typoYAML))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "voltages")
}

func TestCatalogLoader_Validation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "board without id",
			yaml: `
boards:
  - name: Nameless
    io_voltage: 5
`,
			wantErr: "id and name are required",
		},
		{
			name: "duplicate board id",
			yaml: `
boards:
  - id: uno
    name: First
    io_voltage: 5
  - id: uno
    name: Second
    io_voltage: 5
`,
			wantErr: `duplicate board ID "uno"`,
		},
		{
			name: "board with zero io voltage",
			yaml: `
boards:
  - id: uno
    name: Uno
`,
			wantErr: "io_voltage must be positive",
		},
		{
			name: "component with inverted voltage range",
			yaml: `
components:
  - id: sensor
    name: Sensor
    voltage:
      min: 5
      max: 3.3
`,
			wantErr: "voltage min",
		},
		{
			name: "component with negative current",
			yaml: `
components:
  - id: sensor
    name: Sensor
    voltage:
      min: 3.3
      max: 5
    max_current: -1
`,
			wantErr: "current draw cannot be negative",
		},
		{
			name: "duplicate component id",
			yaml: `
components:
  - id: sensor
    name: First
  - id: sensor
    name: Second
`,
			wantErr: `duplicate component ID "sensor"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := NewCatalogLoader()
			_, err := loader.LoadFromReader(context.Background(), strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCatalogLoader_CachesByContentHash(t *testing.T) {
	loader := NewCatalogLoader()

	first, err := loader.LoadFromReader(context.Background(), strings.NewReader(validCatalogYAML))
	require.NoError(t, err)
	second, err := loader.LoadFromReader(context.Background(), strings.NewReader(validCatalogYAML))
	require.NoError(t, err)

	assert.Same(t, first, second, "identical content must return the cached catalog")

	// Different content gets its own entry.
	third, err := loader.LoadFromReader(context.Background(),
		strings.NewReader(validCatalogYAML+"\n# trailing comment\n"))
	require.NoError(t, err)
	assert.NotSame(t, first, third)
}

func TestCatalogLoader_LoadFromFile_Missing(t *testing.T) {
	loader := NewCatalogLoader()

	_, err := loader.LoadFromFile(context.Background(), "nonexistent-catalog.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}
