package motion

type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Equal(o Vec2) bool    { return v.X == o.X && v.Y == o.Y }
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{Lerp(v.X, o.X, t), Lerp(v.Y, o.Y, t)}
}

// Smoothing factors. The two background variants are tuned separately.
const (
	BlobSmoothing   = 0.02
	ShaderSmoothing = 0.03
)

// PointerFilter is an exponential moving average over the latest pointer
// sample. Target is overwritten by events; Current only moves in Step, once
// per frame.
type PointerFilter struct {
	Target  Vec2
	Current Vec2
	Alpha   float64
}

func NewPointerFilter(alpha float64) *PointerFilter {
	return &PointerFilter{Alpha: alpha}
}

// SetTarget records a pointer sample. Several samples between two frames
// collapse to the last one.
func (f *PointerFilter) SetTarget(v Vec2) {
	f.Target = v
}

func (f *PointerFilter) Step() Vec2 {
	f.Current = f.Current.Add(f.Target.Sub(f.Current).Scale(f.Alpha))
	return f.Current
}

func (f *PointerFilter) Reset() {
	f.Target = Vec2{}
	f.Current = Vec2{}
}
