package tft

import (
	"image"
	"time"

	"github.com/pkg/errors"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// ILI9341 commands
const (
	cmdSWRESET = 0x01
	cmdSLPOUT  = 0x11
	cmdDISPON  = 0x29
	cmdCASET   = 0x2A
	cmdPASET   = 0x2B
	cmdRAMWR   = 0x2C
	cmdMADCTL  = 0x36
	cmdCOLMOD  = 0x3A
)

// MADCTL bits: column order flipped, BGR panel
const madctlDefault = 0x48

// COLMOD 16 bits per pixel
const colmod16bpp = 0x55

// default chunk when the port does not say how much it can send at once
const defaultMaxTx = 4096

// DefaultSpeed is a safe SPI clock for the common 320x240 modules
const DefaultSpeed = 32 * physic.MegaHertz

// Panel is an ILI9341 TFT on an SPI port. It draws into a framebuffer and
// pushes the touched window when a batch ends.
type Panel struct {
	*Framebuffer
	bus   spi.Conn
	dc    gpio.PinOut
	maxTx int
	sleep func(time.Duration)
}

// NewPanel connects to p. dc is the data/command pin, it may be nil for
// wiring that strobes D/C elsewhere.
func NewPanel(p spi.Port, dc gpio.PinOut, w, h int, speed physic.Frequency) (*Panel, error) {
	c, err := p.Connect(speed, spi.Mode0, 8)
	if err != nil {
		return nil, errors.Wrapf(err, "tft: connect %s", p)
	}
	pn := &Panel{bus: c, dc: dc, maxTx: defaultMaxTx, sleep: time.Sleep}
	if l, ok := c.(conn.Limits); ok && l.MaxTxSize() > 0 {
		pn.maxTx = l.MaxTxSize()
	}
	pn.Framebuffer = NewFramebuffer(w, h, pn.flushWindow)
	return pn, nil
}

// Init wakes the controller and clears the screen to black
func (pn *Panel) Init() error {
	if err := pn.command(cmdSWRESET); err != nil {
		return err
	}
	pn.sleep(150 * time.Millisecond)
	if err := pn.command(cmdSLPOUT); err != nil {
		return err
	}
	pn.sleep(150 * time.Millisecond)
	if err := pn.command(cmdCOLMOD, colmod16bpp); err != nil {
		return err
	}
	if err := pn.command(cmdMADCTL, madctlDefault); err != nil {
		return err
	}
	if err := pn.command(cmdDISPON); err != nil {
		return err
	}
	return pn.Clear(0)
}

func (pn *Panel) setDC(l gpio.Level) error {
	if pn.dc == nil {
		return nil
	}
	return pn.dc.Out(l)
}

func (pn *Panel) command(cmd byte, data ...byte) error {
	if err := pn.setDC(gpio.Low); err != nil {
		return errors.Wrap(err, "tft: dc low")
	}
	if err := pn.bus.Tx([]byte{cmd}, nil); err != nil {
		return errors.Wrapf(err, "tft: command 0x%02x", cmd)
	}
	if len(data) == 0 {
		return nil
	}
	return pn.data(data)
}

func (pn *Panel) data(b []byte) error {
	if err := pn.setDC(gpio.High); err != nil {
		return errors.Wrap(err, "tft: dc high")
	}
	for len(b) > 0 {
		n := len(b)
		if n > pn.maxTx {
			n = pn.maxTx
		}
		if err := pn.bus.Tx(b[:n], nil); err != nil {
			return errors.Wrap(err, "tft: write data")
		}
		b = b[n:]
	}
	return nil
}

// flushWindow sets the address window to r and streams its pixels
func (pn *Panel) flushWindow(fb *Framebuffer, r image.Rectangle) error {
	x0, x1 := r.Min.X, r.Max.X-1
	y0, y1 := r.Min.Y, r.Max.Y-1
	if err := pn.command(cmdCASET, byte(x0>>8), byte(x0), byte(x1>>8), byte(x1)); err != nil {
		return err
	}
	if err := pn.command(cmdPASET, byte(y0>>8), byte(y0), byte(y1>>8), byte(y1)); err != nil {
		return err
	}
	if err := pn.command(cmdRAMWR); err != nil {
		return err
	}
	buf := make([]byte, 0, 2*r.Dx()*r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for _, p := range fb.Row(y, r) {
			buf = append(buf, byte(p>>8), byte(p))
		}
	}
	return pn.data(buf)
}

func (pn *Panel) String() string {
	return "ili9341{" + pn.bus.String() + "}"
}
