//go:build rp2040 || rp2350

package display

import (
	"errors"
	"log/slog"
	"machine"

	"tinygo.org/x/drivers/hd44780i2c"
)

var _ Driver = (*hd44780i2c.Device)(nil)

// Common PCF8574 backpack addresses: 0x27 (PCF8574T) then 0x3F (PCF8574AT).
var DefaultAddrs = []uint8{0x27, 0x3F}

// ConfigureLCD takes a preconfigured I2C peripheral and initializes the
// first HD44780 backpack that acknowledges one of addrs. If none answers,
// ErrNoLCD is returned. Zero sizes in layout take DefaultLayout's.
func ConfigureLCD(i2c *machine.I2C, addrs []uint8, layout Layout, logger *slog.Logger) (*hd44780i2c.Device, error) {
	layout = layout.WithDefaults()
	var ack [1]byte
	for _, a := range addrs {
		logger.Info("lcd:scan", slog.Uint64("addr", uint64(a)))
		if err := i2c.Tx(uint16(a), nil, ack[:]); err != nil {
			continue
		}
		dev := hd44780i2c.New(i2c, a)
		err := dev.Configure(hd44780i2c.Config{
			Width:  layout.Columns,
			Height: layout.Rows,
		})
		if err != nil {
			return nil, errors.New("lcd configure: " + err.Error())
		}
		logger.Info("lcd:found", slog.Uint64("addr", uint64(a)))
		return &dev, nil
	}
	return nil, ErrNoLCD
}
