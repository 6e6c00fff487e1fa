package entity

import "image/color"

// PowerMode alters player size and attack capability
type PowerMode int

const (
	PowerNormal PowerMode = iota
	PowerGiant
	PowerFire

	powerModeCount = 3
)

// PowerColors maps each power mode to its body color
var PowerColors = map[PowerMode]color.RGBA{
	PowerNormal: {0x32, 0x5c, 0xff, 255},
	PowerGiant:  {0x48, 0xb0, 0x67, 255},
	PowerFire:   {0xff, 0x81, 0x3a, 255},
}

// String returns the display name of the mode
func (m PowerMode) String() string {
	switch m {
	case PowerNormal:
		return "Normal"
	case PowerGiant:
		return "Giant"
	case PowerFire:
		return "Fire"
	default:
		return "Unknown"
	}
}

// Next returns the following mode, wrapping after Fire
func (m PowerMode) Next() PowerMode {
	return (m + 1) % powerModeCount
}

// Valid reports whether m is one of the defined modes
func (m PowerMode) Valid() bool {
	return m >= PowerNormal && m < powerModeCount
}
