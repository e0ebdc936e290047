package pager

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface is a Surface that draws its screens and a column of nav dots
// into an *ebiten.Image. Each screen is filled with a color from its style;
// set DrawScreen to paint content on top.
type EbitenSurface struct {
	// DrawScreen, if set, is called for every visible screen after its
	// background is filled. bounds is the screen's rectangle in viewport
	// coordinates (it may extend past the viewport mid-transition).
	DrawScreen func(dst *ebiten.Image, screen int, bounds Rect)

	count int
	style SurfaceStyle

	width, height   float64 // viewport
	childHeight     float64
	containerHeight float64
	offset          float64

	navActive     []bool
	sectionActive []bool
	navRects      []Rect
}

// NewEbitenSurface creates a surface with count screens and the given
// viewport size. A zero-valued style falls back to DefaultSurfaceStyle.
func NewEbitenSurface(count int, width, height float64, style SurfaceStyle) *EbitenSurface {
	if len(style.Screens) == 0 {
		style.Screens = DefaultSurfaceStyle.Screens
	}
	if style.NavRadius <= 0 {
		style.NavRadius = DefaultSurfaceStyle.NavRadius
	}
	if style.NavColor == (Color{}) && style.NavActiveColor == (Color{}) {
		style.NavColor = DefaultSurfaceStyle.NavColor
		style.NavActiveColor = DefaultSurfaceStyle.NavActiveColor
	}
	count = max(count, 0)
	s := &EbitenSurface{
		count:         count,
		style:         style,
		navActive:     make([]bool, count),
		sectionActive: make([]bool, count),
		navRects:      make([]Rect, count),
	}
	s.width, s.height = max(width, 0), max(height, 0)
	s.layoutNav()
	return s
}

// --- Surface ---

// ScreenCount implements Surface.
func (s *EbitenSurface) ScreenCount() int { return s.count }

// ViewportHeight implements Surface.
func (s *EbitenSurface) ViewportHeight() float64 { return s.height }

// SetContainerHeight implements Surface.
func (s *EbitenSurface) SetContainerHeight(px float64) { s.containerHeight = px }

// SetChildHeight implements Surface.
func (s *EbitenSurface) SetChildHeight(px float64) { s.childHeight = px }

// ApplyOffset implements Surface.
func (s *EbitenSurface) ApplyOffset(px float64) { s.offset = px }

// SetActiveNav implements Surface.
func (s *EbitenSurface) SetActiveNav(screen int) { markOnly(s.navActive, screen) }

// SetActiveSection implements Surface.
func (s *EbitenSurface) SetActiveSection(screen int) { markOnly(s.sectionActive, screen) }

// markOnly clears every marker, then sets the one for the 1-based screen.
// Out-of-range screens leave everything cleared.
func markOnly(markers []bool, screen int) {
	for i := range markers {
		markers[i] = false
	}
	if screen >= 1 && screen <= len(markers) {
		markers[screen-1] = true
	}
}

// --- Layout ---

// SetViewport records a new viewport size and lays out the nav dots. It
// reports whether the size changed. The controller picks up the new height
// on its next resize event.
func (s *EbitenSurface) SetViewport(width, height float64) bool {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return false
	}
	s.width, s.height = width, height
	s.layoutNav()
	return true
}

// Viewport returns the viewport size.
func (s *EbitenSurface) Viewport() (width, height float64) {
	return s.width, s.height
}

// layoutNav stacks the nav dots in a column centered on the right edge.
func (s *EbitenSurface) layoutNav() {
	r := s.style.NavRadius
	spacing := r * 3
	cx := s.width - spacing
	top := s.height/2 - spacing*float64(s.count)/2 + spacing/2
	for i := range s.navRects {
		cy := top + spacing*float64(i)
		// Hit area is the dot's bounding box padded by half a radius.
		pad := r / 2
		s.navRects[i] = Rect{X: cx - r - pad, Y: cy - r - pad, Width: 2 * (r + pad), Height: 2 * (r + pad)}
	}
}

// NavAt returns the screen whose nav dot contains (x, y).
func (s *EbitenSurface) NavAt(x, y float64) (int, bool) {
	for i, r := range s.navRects {
		if r.Contains(x, y) {
			return i + 1, true
		}
	}
	return 0, false
}

// ScreenBounds returns the rectangle screen occupies in viewport
// coordinates at the current offset.
func (s *EbitenSurface) ScreenBounds(screen int) Rect {
	return Rect{
		X:      0,
		Y:      s.childHeight*float64(screen-1) - s.offset,
		Width:  s.width,
		Height: s.childHeight,
	}
}

// Offset returns the last applied offset.
func (s *EbitenSurface) Offset() float64 { return s.offset }

// ChildHeight returns the last applied per-screen height.
func (s *EbitenSurface) ChildHeight() float64 { return s.childHeight }

// ContainerHeight returns the last applied container height.
func (s *EbitenSurface) ContainerHeight() float64 { return s.containerHeight }

// ActiveNav returns the screen whose nav dot is marked, or 0.
func (s *EbitenSurface) ActiveNav() int { return firstMarked(s.navActive) }

// ActiveSection returns the screen marked active, or 0.
func (s *EbitenSurface) ActiveSection() int { return firstMarked(s.sectionActive) }

func firstMarked(markers []bool) int {
	for i, on := range markers {
		if on {
			return i + 1
		}
	}
	return 0
}

// --- Drawing ---

// Draw paints the visible screens and the nav dots onto dst.
func (s *EbitenSurface) Draw(dst *ebiten.Image) {
	for i := 1; i <= s.count; i++ {
		b := s.ScreenBounds(i)
		if b.Y+b.Height <= 0 || b.Y >= s.height {
			continue
		}
		c := s.style.Screens[(i-1)%len(s.style.Screens)]
		vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), c.toRGBA(), false)
		if s.DrawScreen != nil {
			s.DrawScreen(dst, i, b)
		}
	}

	r := s.style.NavRadius
	for i, rect := range s.navRects {
		c := s.style.NavColor
		if s.navActive[i] {
			c = s.style.NavActiveColor
		}
		cx := rect.X + rect.Width/2
		cy := rect.Y + rect.Height/2
		vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(r), c.toRGBA(), true)
	}
}

var _ Surface = (*EbitenSurface)(nil)
