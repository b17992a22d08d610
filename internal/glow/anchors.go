package glow

import "gradient-shine/internal/config"

// Direction is the edge a glow emanates from.
type Direction string

const (
	Top    Direction = "top"
	Right  Direction = "right"
	Bottom Direction = "bottom"
	Left   Direction = "left"
)

// Directions lists every edge in compositing order.
var Directions = [4]Direction{Top, Right, Bottom, Left}

// Anchor is one gradient ellipse at one keyframe, all values in percent of
// the container: centre (CX, CY) and ellipse extents (EW, EH).
type Anchor struct {
	CX, CY float64
	EW, EH float64
}

// Shine places the 1px highlight line: the container edge it hugs and the
// angle of its linear gradient.
type Shine struct {
	Edge  Direction
	Angle float64
}

const (
	Layer1 = iota
	Layer2
	Layer3
	LayerCount
)

// KeyframeCount is the number of waypoints of every layer: start, middle,
// end. Layer 1 returns to its start; layers 2 and 3 sweep across the
// container and rely on mirrored playback to come back.
const KeyframeCount = 3

// AnchorSet is the full keyframe geometry of one direction.
type AnchorSet struct {
	Direction Direction
	Layers    [LayerCount][KeyframeCount]Anchor
	Shine     Shine
}

var baseAnchors = map[Direction]AnchorSet{
	Bottom: {
		Direction: Bottom,
		Layers: [LayerCount][KeyframeCount]Anchor{
			{{50, 110, 80, 50}, {50, 100, 100, 65}, {50, 110, 80, 50}},
			{{15, 80, 55, 45}, {50, 65, 70, 55}, {85, 80, 55, 45}},
			{{80, 85, 50, 40}, {45, 75, 65, 50}, {15, 85, 50, 40}},
		},
		Shine: Shine{Edge: Top, Angle: 90},
	},
	Top: {
		Direction: Top,
		Layers: [LayerCount][KeyframeCount]Anchor{
			{{50, -10, 80, 50}, {50, 0, 100, 65}, {50, -10, 80, 50}},
			{{15, 20, 55, 45}, {50, 35, 70, 55}, {85, 20, 55, 45}},
			{{80, 15, 50, 40}, {45, 25, 65, 50}, {15, 15, 50, 40}},
		},
		Shine: Shine{Edge: Bottom, Angle: 90},
	},
	Left: {
		Direction: Left,
		Layers: [LayerCount][KeyframeCount]Anchor{
			{{-10, 50, 50, 80}, {0, 50, 65, 100}, {-10, 50, 50, 80}},
			{{20, 15, 45, 55}, {35, 50, 55, 70}, {20, 85, 45, 55}},
			{{15, 80, 40, 50}, {25, 45, 50, 65}, {15, 15, 40, 50}},
		},
		Shine: Shine{Edge: Right, Angle: 0},
	},
	Right: {
		Direction: Right,
		Layers: [LayerCount][KeyframeCount]Anchor{
			{{110, 50, 50, 80}, {100, 50, 65, 100}, {110, 50, 50, 80}},
			{{80, 15, 45, 55}, {65, 50, 55, 70}, {80, 85, 45, 55}},
			{{85, 80, 40, 50}, {75, 45, 50, 65}, {85, 15, 40, 50}},
		},
		Shine: Shine{Edge: Left, Angle: 0},
	},
}

// Anchors returns the keyframe geometry of dir with every centre shifted
// by (ox, oy). Unknown directions fall back to Bottom. Shifted anchors may
// leave the container; that is intended.
func Anchors(dir Direction, ox, oy float64) AnchorSet {
	set, ok := baseAnchors[dir]
	if !ok {
		set = baseAnchors[Bottom]
	}
	for l := range set.Layers {
		for k := range set.Layers[l] {
			set.Layers[l][k].CX += ox
			set.Layers[l][k].CY += oy
		}
	}
	return set
}

// ActiveDirections lists the selected edges in compositing order. With
// nothing selected it behaves as if only Bottom were.
func ActiveDirections(cfg config.DirectionConfig) []Direction {
	dirs := make([]Direction, 0, len(Directions))
	if cfg.Top {
		dirs = append(dirs, Top)
	}
	if cfg.Right {
		dirs = append(dirs, Right)
	}
	if cfg.Bottom {
		dirs = append(dirs, Bottom)
	}
	if cfg.Left {
		dirs = append(dirs, Left)
	}
	if len(dirs) == 0 {
		dirs = append(dirs, Bottom)
	}
	return dirs
}

// AnchorSets resolves the geometry of every active direction.
func AnchorSets(cfg config.DirectionConfig) []AnchorSet {
	dirs := ActiveDirections(cfg)
	sets := make([]AnchorSet, len(dirs))
	for i, d := range dirs {
		sets[i] = Anchors(d, float64(cfg.X), float64(cfg.Y))
	}
	return sets
}
