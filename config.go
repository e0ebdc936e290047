package pager

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/tanema/gween/ease"
)

// Defaults applied to zero-valued Config fields.
const (
	DefaultScrollDuration = 600 * time.Millisecond
	DefaultSwipeDistance  = 90.0
	DefaultSuppressDelay  = 300 * time.Millisecond
)

// Config holds the controller's construction parameters. It is copied by New
// and never modified afterwards. Zero-valued fields take the defaults above.
type Config struct {
	// ScrollDuration is how long one transition takes.
	ScrollDuration time.Duration
	// SwipeDistance is the vertical travel in pixels a touch must cover
	// before it counts as a swipe.
	SwipeDistance float64
	// InitialScreen is the 1-based screen shown at construction.
	InitialScreen int
	// SuppressDelay is how long navigation is ignored after a transition
	// completes.
	SuppressDelay time.Duration
	// Ease shapes transition progress. Defaults to ease.Linear.
	Ease ease.TweenFunc

	// OnScreenDisable is called with the screen being left, once per
	// completed transition, before OnScreenEnable.
	OnScreenDisable func(screen int)
	// OnScreenEnable is called with the screen that became active.
	OnScreenEnable func(screen int)

	// Clock drives animation timing and the suppression window. Defaults to
	// wall time.
	Clock Clock
	// Logger receives debug output when debug mode is on. Defaults to a text
	// handler on stderr.
	Logger *slog.Logger
}

// withDefaults returns a copy of c with zero-valued fields filled in.
func (c Config) withDefaults() Config {
	if c.ScrollDuration == 0 {
		c.ScrollDuration = DefaultScrollDuration
	}
	if c.SwipeDistance == 0 {
		c.SwipeDistance = DefaultSwipeDistance
	}
	if c.InitialScreen == 0 {
		c.InitialScreen = 1
	}
	if c.SuppressDelay == 0 {
		c.SuppressDelay = DefaultSuppressDelay
	}
	if c.Ease == nil {
		c.Ease = ease.Linear
	}
	if c.Clock == nil {
		c.Clock = newRealClock()
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return c
}

// validate checks the fields that do not depend on the surface.
func (c Config) validate() error {
	if c.ScrollDuration < 0 {
		return configErr("scroll_duration", ErrNegativeValue)
	}
	if c.SwipeDistance < 0 {
		return configErr("swipe_distance", ErrNegativeValue)
	}
	if c.SuppressDelay < 0 {
		return configErr("suppress_delay", ErrNegativeValue)
	}
	if c.InitialScreen < 0 {
		return configErr("initial_screen", ErrInitialScreen)
	}
	return nil
}

// --- Easing ---

var easeByName = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inSine":     ease.InSine,
	"outSine":    ease.OutSine,
	"inOutSine":  ease.InOutSine,
	"inExpo":     ease.InExpo,
	"outExpo":    ease.OutExpo,
	"inOutExpo":  ease.InOutExpo,
	"outBack":    ease.OutBack,
	"outBounce":  ease.OutBounce,
}

// EaseByName looks up a gween easing function by its camel-case name
// ("linear", "inOutQuad", "outCubic", ...). Lookup is case-insensitive.
func EaseByName(name string) (ease.TweenFunc, error) {
	if fn, ok := easeByName[name]; ok {
		return fn, nil
	}
	for k, fn := range easeByName {
		if strings.EqualFold(k, name) {
			return fn, nil
		}
	}
	return nil, configErr("ease", fmt.Errorf("%w: %q", ErrUnknownEase, name))
}

// --- TOML files ---

// SurfaceStyle configures the look of an EbitenSurface.
type SurfaceStyle struct {
	// Screens holds one fill color per screen. Screens past the end of the
	// slice cycle through it.
	Screens []Color
	// NavColor and NavActiveColor fill the inactive and active nav dots.
	NavColor       Color
	NavActiveColor Color
	// NavRadius is the nav dot radius in pixels.
	NavRadius float64
}

// DefaultSurfaceStyle is used for fields a config file leaves out.
var DefaultSurfaceStyle = SurfaceStyle{
	Screens: []Color{
		{R: 0.118, G: 0.118, B: 0.157, A: 1},
		{R: 0.157, G: 0.235, B: 0.314, A: 1},
		{R: 0.314, G: 0.196, B: 0.235, A: 1},
	},
	NavColor:       Color{R: 1, G: 1, B: 1, A: 0.4},
	NavActiveColor: ColorWhite,
	NavRadius:      6,
}

type fileConfig struct {
	Pager struct {
		ScrollDurationMS *int     `toml:"scroll_duration_ms"`
		SwipeDistance    *float64 `toml:"swipe_distance"`
		InitialScreen    int      `toml:"initial_screen"`
		SuppressMS       *int     `toml:"suppress_ms"`
		Ease             string   `toml:"ease"`
	} `toml:"pager"`
	Surface struct {
		Screens        []string `toml:"screens"`
		NavColor       string   `toml:"nav_color"`
		NavActiveColor string   `toml:"nav_active_color"`
		NavRadius      float64  `toml:"nav_radius"`
	} `toml:"surface"`
}

// ParseConfig decodes a TOML document into a Config and a SurfaceStyle.
// Callbacks, Clock and Logger are left for the caller to set. Unknown keys
// are rejected.
func ParseConfig(data []byte) (Config, SurfaceStyle, error) {
	var fc fileConfig
	md, err := toml.Decode(string(data), &fc)
	if err != nil {
		return Config{}, SurfaceStyle{}, configErr("", fmt.Errorf("parse config: %w", err))
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, SurfaceStyle{}, configErr(undecoded[0].String(), fmt.Errorf("parse config: unknown key"))
	}

	var cfg Config
	p := fc.Pager
	if p.ScrollDurationMS != nil {
		if *p.ScrollDurationMS < 0 {
			return Config{}, SurfaceStyle{}, configErr("scroll_duration_ms", ErrNegativeValue)
		}
		// A zero in the file means "instant", not "use the default".
		cfg.ScrollDuration = max(time.Duration(*p.ScrollDurationMS)*time.Millisecond, time.Nanosecond)
	}
	if p.SwipeDistance != nil {
		if *p.SwipeDistance < 0 {
			return Config{}, SurfaceStyle{}, configErr("swipe_distance", ErrNegativeValue)
		}
		cfg.SwipeDistance = *p.SwipeDistance
	}
	if p.SuppressMS != nil {
		if *p.SuppressMS < 0 {
			return Config{}, SurfaceStyle{}, configErr("suppress_ms", ErrNegativeValue)
		}
		cfg.SuppressDelay = max(time.Duration(*p.SuppressMS)*time.Millisecond, time.Nanosecond)
	}
	if p.InitialScreen < 0 {
		return Config{}, SurfaceStyle{}, configErr("initial_screen", ErrInitialScreen)
	}
	cfg.InitialScreen = p.InitialScreen
	if p.Ease != "" {
		fn, err := EaseByName(p.Ease)
		if err != nil {
			return Config{}, SurfaceStyle{}, err
		}
		cfg.Ease = fn
	}

	style := DefaultSurfaceStyle
	s := fc.Surface
	if len(s.Screens) > 0 {
		style.Screens = make([]Color, len(s.Screens))
		for i, hex := range s.Screens {
			c, err := ParseColor(hex)
			if err != nil {
				return Config{}, SurfaceStyle{}, configErr(fmt.Sprintf("surface.screens[%d]", i), err)
			}
			style.Screens[i] = c
		}
	}
	if s.NavColor != "" {
		c, err := ParseColor(s.NavColor)
		if err != nil {
			return Config{}, SurfaceStyle{}, configErr("surface.nav_color", err)
		}
		style.NavColor = c
	}
	if s.NavActiveColor != "" {
		c, err := ParseColor(s.NavActiveColor)
		if err != nil {
			return Config{}, SurfaceStyle{}, configErr("surface.nav_active_color", err)
		}
		style.NavActiveColor = c
	}
	if s.NavRadius < 0 {
		return Config{}, SurfaceStyle{}, configErr("surface.nav_radius", ErrNegativeValue)
	}
	if s.NavRadius > 0 {
		style.NavRadius = s.NavRadius
	}
	return cfg, style, nil
}

// LoadConfigFile reads and parses a TOML config file. See ParseConfig.
func LoadConfigFile(path string) (Config, SurfaceStyle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, SurfaceStyle{}, configErr("", fmt.Errorf("read config: %w", err))
	}
	return ParseConfig(data)
}

// ParseColor parses "#rrggbb" or "#rrggbbaa" (the leading # is optional).
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}
