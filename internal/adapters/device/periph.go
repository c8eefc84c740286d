package device

import (
	"errors"
	"fmt"
	"image"
	"iss-display-gadget/internal/domain"
	"iss-display-gadget/internal/render"
	"sync"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/host/v3"
)

// PWM carrier for the backlight LEDs.
const backlightFrequency = physic.KiloHertz

// PeriphConfig names the bus and pins of a periph.io supported board.
type PeriphConfig struct {
	I2CBus string
	// Switches A to E, in order.
	ButtonPins []string
	// Red, green and blue backlight channels.
	BacklightPins [3]string
}

// Periph is an SSD1306 panel, five active-low switches and an RGB
// backlight driven by PWM.
type Periph struct {
	bus     i2c.BusCloser
	oled    *ssd1306.Dev
	buttons []gpio.PinIO
	leds    [3]gpio.PinIO

	mu   sync.Mutex
	prev []gpio.Level
}

// OpenPeriph initialises the host drivers and claims the configured pins.
func OpenPeriph(cfg PeriphConfig) (*Periph, error) {
	if len(cfg.ButtonPins) != len(domain.Buttons) {
		return nil, fmt.Errorf("open periph: want %d button pins, got %d", len(domain.Buttons), len(cfg.ButtonPins))
	}

	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("open periph: host init: %w", err)
	}

	bus, err := i2creg.Open(cfg.I2CBus)
	if err != nil {
		return nil, fmt.Errorf("open periph: i2c bus %q: %w", cfg.I2CBus, err)
	}

	opts := ssd1306.DefaultOpts
	opts.W, opts.H = render.Width, render.Height
	oled, err := ssd1306.NewI2C(bus, &opts)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("open periph: ssd1306: %w", err)
	}

	p := &Periph{bus: bus, oled: oled}

	for _, name := range cfg.ButtonPins {
		pin := gpioreg.ByName(name)
		if pin == nil {
			p.Close()
			return nil, fmt.Errorf("open periph: no button pin %q", name)
		}
		if err := pin.In(gpio.PullUp, gpio.NoEdge); err != nil {
			p.Close()
			return nil, fmt.Errorf("open periph: button pin %q: %w", name, err)
		}
		p.buttons = append(p.buttons, pin)
		p.prev = append(p.prev, gpio.High)
	}

	for i, name := range cfg.BacklightPins {
		pin := gpioreg.ByName(name)
		if pin == nil {
			p.Close()
			return nil, fmt.Errorf("open periph: no backlight pin %q", name)
		}
		p.leds[i] = pin
	}

	return p, nil
}

// Render rasterises the frame and pushes it to the panel.
func (p *Periph) Render(frame domain.Frame) error {
	gray := render.Rasterize(frame, render.Width, render.Height)

	img := image1bit.NewVerticalLSB(p.oled.Bounds())
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if render.Lit(gray, x, y) {
				img.SetBit(x, y, image1bit.On)
			}
		}
	}

	if err := p.oled.Draw(img.Bounds(), img, image.Point{}); err != nil {
		return fmt.Errorf("ssd1306 draw: %w", err)
	}
	return nil
}

// SetBacklight maps each 0-255 channel to a PWM duty cycle.
func (p *Periph) SetBacklight(c domain.Color) error {
	for i, v := range [3]uint8{c.R, c.G, c.B} {
		duty := gpio.Duty(int64(v) * int64(gpio.DutyMax) / 255)
		if err := p.leds[i].PWM(duty, backlightFrequency); err != nil {
			return fmt.Errorf("backlight pwm %s: %w", p.leds[i], err)
		}
	}
	return nil
}

// Pressed reports a switch that went from released to pressed since the
// last call. Switches pull to ground when pressed.
func (p *Periph) Pressed() (domain.Button, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var (
		pressed domain.Button
		found   bool
	)
	for i, pin := range p.buttons {
		level := pin.Read()
		if !found && level == gpio.Low && p.prev[i] == gpio.High {
			pressed, found = domain.Buttons[i], true
		}
		p.prev[i] = level
	}
	return pressed, found
}

func (p *Periph) Close() error {
	var errs []error
	for _, pin := range p.leds {
		if pin == nil {
			continue
		}
		if err := pin.Out(gpio.Low); err != nil {
			errs = append(errs, err)
		}
	}
	if p.oled != nil {
		if err := p.oled.Halt(); err != nil {
			errs = append(errs, err)
		}
	}
	if p.bus != nil {
		if err := p.bus.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
