package display

import (
	"strconv"

	"github.com/harveysanders/picokeypad/keypad"
)

const floatNoExp = 'f'

// AppendVoltage appends v with prec decimals. The float32 value is
// rounded exactly, half to even, so 3.295 (stored as 3.29500008) renders
// as "3.30".
func AppendVoltage(buf []byte, v float32, prec int) []byte {
	return strconv.AppendFloat(buf, float64(v), floatNoExp, prec, 32)
}

// AppendHex appends v in lowercase hex, zero padded to width digits.
func AppendHex(buf []byte, v uint64, width int) []byte {
	n := 1
	for x := v >> 4; x > 0; x >>= 4 {
		n++
	}
	for ; n < width; n++ {
		buf = append(buf, '0')
	}
	return strconv.AppendUint(buf, v, 16)
}

// VoltageLine appends the first LCD row, e.g. "Voltage: 1.65V".
func VoltageLine(buf []byte, v float32, prec int) []byte {
	buf = append(buf, voltagePrefix...)
	buf = AppendVoltage(buf, v, prec)
	return append(buf, 'V')
}

// ButtonLine appends the second LCD row, e.g. "Button: Select".
func ButtonLine(buf []byte, b keypad.Button) []byte {
	buf = append(buf, buttonPrefix...)
	return append(buf, b.Label()...)
}

// AppendLogLine appends the serial debug line for r, newline included:
//
//	Raw: 0x19a, Voltage: 0.330V, Button: Up
func AppendLogLine(buf []byte, r keypad.Reading) []byte {
	buf = append(buf, "Raw: 0x"...)
	buf = AppendHex(buf, uint64(r.Raw), 3)
	buf = append(buf, ", Voltage: "...)
	buf = AppendVoltage(buf, r.Voltage, logPrecision)
	buf = append(buf, "V, Button: "...)
	buf = append(buf, r.Button.Label()...)
	return append(buf, '\n')
}
