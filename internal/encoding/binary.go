package encoding

import (
	"math"
)

// Heat16 scales a heat value in [0,1] to the full uint16 range.
// Values outside [0,1] are clamped.
func Heat16(h float64) uint16 {
	h = math.Min(math.Max(h, 0), 1)
	return uint16(math.Round(h * math.MaxUint16))
}

// HeatFrom16 is the inverse of Heat16 (to within 1/65535).
func HeatFrom16(v uint16) float64 {
	return float64(v) / math.MaxUint16
}

// FromBytes8 turns a bitmap's backing []byte into a uint8.
func FromBytes8(data []byte) uint8 {
	if len(data) == 0 {
		return 0
	}
	return data[0]
}

// ToBytes8 turns uint8 into []byte of len 1 (eg. 8 bits)
func ToBytes8(in uint8) []byte {
	return []byte{in}
}

// Split16 uint16 to two uint8, high byte first
func Split16(in uint16) (uint8, uint8) {
	return uint8(in >> 8), uint8(in)
}

// Merge8 two uint8 to uint16
func Merge8(a, b uint8) uint16 {
	return (uint16(a) << 8) + uint16(b)
}
