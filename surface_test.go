package pager

import "testing"

func TestEbitenSurfaceDefaults(t *testing.T) {
	s := NewEbitenSurface(3, 640, 480, SurfaceStyle{})
	if s.ScreenCount() != 3 || s.ViewportHeight() != 480 {
		t.Errorf("count/height = %d/%v, want 3/480", s.ScreenCount(), s.ViewportHeight())
	}
	if s.style.NavRadius != DefaultSurfaceStyle.NavRadius {
		t.Errorf("NavRadius = %v, want default", s.style.NavRadius)
	}
	if len(s.style.Screens) != len(DefaultSurfaceStyle.Screens) {
		t.Errorf("Screens = %d colors, want defaults", len(s.style.Screens))
	}
	if s.style.NavActiveColor != DefaultSurfaceStyle.NavActiveColor {
		t.Errorf("NavActiveColor = %+v, want default", s.style.NavActiveColor)
	}
}

func TestEbitenSurfaceMarkers(t *testing.T) {
	s := NewEbitenSurface(3, 640, 480, SurfaceStyle{})
	s.SetActiveNav(2)
	s.SetActiveSection(3)
	if s.ActiveNav() != 2 || s.ActiveSection() != 3 {
		t.Errorf("markers = %d/%d, want 2/3", s.ActiveNav(), s.ActiveSection())
	}
	s.SetActiveNav(1)
	if s.ActiveNav() != 1 {
		t.Errorf("ActiveNav = %d, want 1", s.ActiveNav())
	}
	for i, on := range s.navActive {
		if on != (i == 0) {
			t.Errorf("navActive[%d] = %v after moving marker to 1", i, on)
		}
	}
	s.SetActiveSection(9)
	if s.ActiveSection() != 0 {
		t.Errorf("out of range marker left %d active", s.ActiveSection())
	}
}

func TestEbitenSurfaceNavAt(t *testing.T) {
	// Radius 6: dots spaced 18px apart at x = 622, centered on y = 240.
	s := NewEbitenSurface(3, 640, 480, SurfaceStyle{})
	tests := []struct {
		name   string
		x, y   float64
		screen int
		ok     bool
	}{
		{"first dot", 622, 222, 1, true},
		{"middle dot", 622, 240, 2, true},
		{"last dot edge", 630, 265, 3, true},
		{"left side", 10, 240, 0, false},
		{"below column", 622, 400, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen, ok := s.NavAt(tt.x, tt.y)
			if screen != tt.screen || ok != tt.ok {
				t.Errorf("NavAt(%v, %v) = %d, %v, want %d, %v", tt.x, tt.y, screen, ok, tt.screen, tt.ok)
			}
		})
	}
}

func TestEbitenSurfaceSetViewport(t *testing.T) {
	s := NewEbitenSurface(3, 640, 480, SurfaceStyle{})
	if s.SetViewport(640, 480) {
		t.Error("same size reported as a change")
	}
	if !s.SetViewport(800, 600) {
		t.Fatal("new size not reported")
	}
	if w, h := s.Viewport(); w != 800 || h != 600 {
		t.Errorf("Viewport = %v x %v, want 800 x 600", w, h)
	}
	if _, ok := s.NavAt(782, 300); !ok {
		t.Error("nav dots not laid out for the new size")
	}
}

func TestEbitenSurfaceWithController(t *testing.T) {
	s := NewEbitenSurface(3, 640, 480, SurfaceStyle{})
	clk := NewManualClock(0)
	c, err := New(s, Config{Clock: clk, Logger: discardLogger(), InitialScreen: 2})
	if err != nil {
		t.Fatal(err)
	}
	if s.ChildHeight() != 480 || s.ContainerHeight() != 1440 {
		t.Errorf("heights = %v/%v, want 480/1440", s.ChildHeight(), s.ContainerHeight())
	}
	if s.Offset() != 480 || s.ActiveNav() != 2 || s.ActiveSection() != 2 {
		t.Errorf("offset %v nav %d section %d, want 480/2/2", s.Offset(), s.ActiveNav(), s.ActiveSection())
	}
	if b := s.ScreenBounds(2); b.Y != 0 || b.Height != 480 || b.Width != 640 {
		t.Errorf("ScreenBounds(2) = %+v, want the viewport", b)
	}
	if b := s.ScreenBounds(1); b.Y != -480 {
		t.Errorf("ScreenBounds(1).Y = %v, want -480", b.Y)
	}

	s.SetViewport(640, 300)
	c.HandleInput(InputEvent{Type: InputResize, Width: 640, Height: 300})
	if s.ChildHeight() != 300 || s.Offset() != 300 {
		t.Errorf("after resize: child %v offset %v, want 300/300", s.ChildHeight(), s.Offset())
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	tests := []struct {
		x, y float64
		want bool
	}{
		{10, 20, true},
		{40, 60, true},
		{25, 40, true},
		{9, 40, false},
		{25, 61, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestColorToRGBA(t *testing.T) {
	got := Color{R: 1, G: 0.5, B: 0, A: 0.5}.toRGBA()
	if got.R != 127 || got.G != 63 || got.B != 0 || got.A != 127 {
		t.Errorf("toRGBA = %+v, want premultiplied {127 63 0 127}", got)
	}
	if c := (Color{R: 2, G: -1, B: 1, A: 1}).toRGBA(); c.R != 255 || c.G != 0 {
		t.Errorf("out of range components not clamped: %+v", c)
	}
}
