package camera

import "pointcloud-renderer/internal/mathutil"

// Direction names the six semantic movement axes.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

// ReferenceFrame is the camera's local basis: a position, the target it looks
// at, and the up/right vectors spanning the screen plane.
//
// Invariant: after any mutator returns, Right = normalize(cross(lookDir, Up)).
// Up is caller-fixed and never re-orthogonalized against the look direction;
// if the two become parallel the cross product degenerates and Right collapses
// to the zero vector (see Vec3.Normalize). Known open issue — callers should
// avoid looking straight along Up.
type ReferenceFrame struct {
	Position mathutil.Vec3
	Target   mathutil.Vec3
	Up       mathutil.Vec3
	Right    mathutil.Vec3
}

// DefaultFrame places the camera 10 units behind the origin on the Z axis,
// looking at the origin with +Y up.
func DefaultFrame() ReferenceFrame {
	return ReferenceFrame{
		Position: mathutil.Vec3{0, 0, -10},
		Target:   mathutil.Vec3{0, 0, 0},
		Up:       mathutil.Vec3{0, 1, 0},
		Right:    mathutil.Vec3{1, 0, 0},
	}
}

// LookDirection returns the unit vector from position toward the target.
func (f *ReferenceFrame) LookDirection() mathutil.Vec3 {
	return f.Target.Sub(f.Position).Normalize()
}

// LookAt points the frame at target and recomputes Right. Must run after any
// change to Position or Target to keep the basis invariant.
func (f *ReferenceFrame) LookAt(target mathutil.Vec3) {
	f.Target = target
	f.Right = f.LookDirection().Cross(f.Up).Normalize()
}

// MovePosition translates the camera position along one of its own axes
// (look direction, right, up) and re-aims at the current target.
func (f *ReferenceFrame) MovePosition(distance float64, dir Direction) {
	var delta mathutil.Vec3
	switch dir {
	case Forward:
		delta = f.LookDirection().Scale(distance)
	case Backward:
		delta = f.LookDirection().Scale(-distance)
	case Right:
		delta = f.Right.Scale(distance)
	case Left:
		delta = f.Right.Scale(-distance)
	case Up:
		delta = f.Up.Scale(distance)
	case Down:
		delta = f.Up.Scale(-distance)
	}
	f.Position = f.Position.Add(delta)
	f.LookAt(f.Target)
}

// MoveTarget translates the target along the world axes (Forward/Backward = Z,
// Right/Left = X, Up/Down = Y) and re-aims the frame.
func (f *ReferenceFrame) MoveTarget(distance float64, dir Direction) {
	var delta mathutil.Vec3
	switch dir {
	case Forward:
		delta = mathutil.Vec3{0, 0, distance}
	case Backward:
		delta = mathutil.Vec3{0, 0, -distance}
	case Right:
		delta = mathutil.Vec3{distance, 0, 0}
	case Left:
		delta = mathutil.Vec3{-distance, 0, 0}
	case Up:
		delta = mathutil.Vec3{0, distance, 0}
	case Down:
		delta = mathutil.Vec3{0, -distance, 0}
	}
	f.Target = f.Target.Add(delta)
	f.LookAt(f.Target)
}
