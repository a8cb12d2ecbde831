package plot

// Margins is the space between the SVG border and the plot area, in pixels.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// Config holds the layout shared by all plot kinds.
type Config struct {
	Width  float64
	Height float64
	Margin Margins

	XMin, XMax float64
	YMin, YMax float64

	Title  string
	XLabel string
	YLabel string

	// LinearReference draws the corner-to-corner diagonal on a TransferPlot.
	LinearReference bool
	// BarValueLabels overlays the value on bars tall enough to hold it.
	BarValueLabels bool

	xFixed bool
	yFixed bool
}

// Option mutates a Config.
type Option func(*Config)

func defaultConfig() Config {
	return Config{
		Width:          600,
		Height:         360,
		Margin:         Margins{Top: 30, Right: 20, Bottom: 45, Left: 55},
		BarValueLabels: true,
	}
}

func applyOptions(base Config, opts []Option) Config {
	cfg := base
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithSize sets the SVG width and height in pixels.
func WithSize(width, height float64) Option {
	return func(cfg *Config) {
		if width > 0 && height > 0 {
			cfg.Width = width
			cfg.Height = height
		}
	}
}

// WithMargins sets the space around the plot area.
func WithMargins(top, right, bottom, left float64) Option {
	return func(cfg *Config) {
		if top >= 0 && right >= 0 && bottom >= 0 && left >= 0 {
			cfg.Margin = Margins{Top: top, Right: right, Bottom: bottom, Left: left}
		}
	}
}

// WithXRange fixes the x axis. Ignored unless min < max.
func WithXRange(min, max float64) Option {
	return func(cfg *Config) {
		if min < max {
			cfg.XMin, cfg.XMax = min, max
			cfg.xFixed = true
		}
	}
}

// WithYRange fixes the y axis. Ignored unless min < max. Waveform and
// transfer plots always derive a symmetric y range from their data.
func WithYRange(min, max float64) Option {
	return func(cfg *Config) {
		if min < max {
			cfg.YMin, cfg.YMax = min, max
			cfg.yFixed = true
		}
	}
}

// WithTitle sets the caption drawn above the plot area.
func WithTitle(title string) Option {
	return func(cfg *Config) { cfg.Title = title }
}

// WithXLabel sets the x axis caption.
func WithXLabel(label string) Option {
	return func(cfg *Config) { cfg.XLabel = label }
}

// WithYLabel sets the y axis caption.
func WithYLabel(label string) Option {
	return func(cfg *Config) { cfg.YLabel = label }
}

// WithLinearReference enables the diagonal reference line of a TransferPlot.
func WithLinearReference() Option {
	return func(cfg *Config) { cfg.LinearReference = true }
}

// WithBarValueLabels toggles value labels on a BarPlot.
func WithBarValueLabels(enabled bool) Option {
	return func(cfg *Config) { cfg.BarValueLabels = enabled }
}
