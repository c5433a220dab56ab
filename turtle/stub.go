/*
File    : logomix/turtle/stub.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package turtle

import "math"

// Call records one intercepted Turtle method invocation, in the order the
// evaluator issued it. Used by tests and the cmd/logomix example to show
// what a program would have drawn without a real rendering backend.
type Call struct {
	Method string
	Args   []float64
	Str    string
}

// Stub is a no-op, call-recording Turtle used only by tests and the
// example binary (spec.md §6 — never a rendering backend).
type Stub struct {
	Calls []Call

	x, y, heading       float64
	visible             bool
	penDown             bool
	mode                Mode
	penMode             PenMode
	color, bg           string
	width               float64
	fontSize            float64
	fontName            string
	scrunchX, scrunchY  float64
}

// NewStub creates a Stub turtle at the origin, facing up, pen down,
// visible, matching the conventional Logo home state.
func NewStub() *Stub {
	return &Stub{
		visible:  true,
		penDown:  true,
		mode:     ModeWrap,
		penMode:  PenPaint,
		color:    "black",
		bg:       "white",
		width:    1,
		fontSize: 12,
		fontName: "Arial",
		scrunchX: 1,
		scrunchY: 1,
	}
}

func (s *Stub) record(method string, args ...float64) {
	s.Calls = append(s.Calls, Call{Method: method, Args: args})
}

func (s *Stub) Move(distance float64) {
	s.record("move", distance)
	// heading 0 points up (+y); Logo degrees increase clockwise.
	rad := s.heading * (math.Pi / 180)
	s.x += distance * math.Sin(rad)
	s.y += distance * math.Cos(rad)
}

func (s *Stub) Turn(degrees float64) {
	s.record("turn", degrees)
	s.heading = normalizeDegrees(s.heading + degrees)
}

func (s *Stub) SetPosition(x, y *float64) {
	var ax, ay float64
	if x != nil {
		ax = *x
		s.x = ax
	}
	if y != nil {
		ay = *y
		s.y = ay
	}
	s.record("setposition", ax, ay)
}

func (s *Stub) SetHeading(degrees float64) {
	s.record("setheading", degrees)
	s.heading = normalizeDegrees(degrees)
}

func (s *Stub) Home() {
	s.record("home")
	s.x, s.y, s.heading = 0, 0, 0
}

func (s *Stub) Arc(angle, radius float64) { s.record("arc", angle, radius) }

func (s *Stub) GetXY() (float64, float64) { return s.x, s.y }
func (s *Stub) GetHeading() float64       { return s.heading }
func (s *Stub) Towards(x, y float64) float64 {
	dx, dy := x-s.x, y-s.y
	return normalizeDegrees(math.Atan2(dx, dy) * (180 / math.Pi))
}

func (s *Stub) ShowTurtle()            { s.record("showturtle"); s.visible = true }
func (s *Stub) HideTurtle()            { s.record("hideturtle"); s.visible = false }
func (s *Stub) IsTurtleVisible() bool  { return s.visible }

func (s *Stub) Clear()       { s.record("clear") }
func (s *Stub) ClearScreen() { s.record("clearscreen"); s.x, s.y, s.heading = 0, 0, 0 }

func (s *Stub) SetTurtleMode(m Mode) { s.record(string("setturtlemode:" + m)); s.mode = m }
func (s *Stub) GetTurtleMode() Mode  { return s.mode }

func (s *Stub) Fill()                    { s.record("fill") }
func (s *Stub) BeginPath()               { s.record("beginpath") }
func (s *Stub) FillPath(color string)    { s.Calls = append(s.Calls, Call{Method: "fillpath", Str: color}) }
func (s *Stub) DrawText(text string)     { s.Calls = append(s.Calls, Call{Method: "drawtext", Str: text}) }

func (s *Stub) SetFontSize(size float64) { s.record("setfontsize", size); s.fontSize = size }
func (s *Stub) GetFontSize() float64     { return s.fontSize }
func (s *Stub) SetFontName(name string) {
	s.Calls = append(s.Calls, Call{Method: "setfontname", Str: name})
	s.fontName = name
}
func (s *Stub) GetFontName() string { return s.fontName }

func (s *Stub) PenDown()          { s.record("pendown"); s.penDown = true }
func (s *Stub) PenUp()            { s.record("penup"); s.penDown = false }
func (s *Stub) IsPenDown() bool   { return s.penDown }
func (s *Stub) SetPenMode(m PenMode) {
	s.Calls = append(s.Calls, Call{Method: "setpenmode", Str: string(m)})
	s.penMode = m
}
func (s *Stub) GetPenMode() PenMode { return s.penMode }

func (s *Stub) SetColor(color string) {
	s.Calls = append(s.Calls, Call{Method: "setcolor", Str: color})
	s.color = color
}
func (s *Stub) GetColor() string { return s.color }
func (s *Stub) SetBgColor(color string) {
	s.Calls = append(s.Calls, Call{Method: "setbgcolor", Str: color})
	s.bg = color
}
func (s *Stub) GetBgColor() string { return s.bg }

func (s *Stub) SetWidth(w float64) { s.record("setwidth", w); s.width = w }
func (s *Stub) GetWidth() float64  { return s.width }

func (s *Stub) SetScrunch(x, y float64) {
	s.record("setscrunch", x, y)
	s.scrunchX, s.scrunchY = x, y
}
func (s *Stub) GetScrunch() (float64, float64) { return s.scrunchX, s.scrunchY }

// normalizeDegrees folds a heading into [0, 360).
func normalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}
