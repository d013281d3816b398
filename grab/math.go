package grab

import "math"

type Vector3 struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	Z float64 `yaml:"z" json:"z"`
}

var ZeroVector3 = Vector3{}

func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vector3) Lerp(o Vector3, t float64) Vector3 {
	return v.Add(o.Sub(v).Scale(t))
}

func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Quaternion is a unit rotation; the zero value is treated as identity.
type Quaternion struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	Z float64 `yaml:"z" json:"z"`
	W float64 `yaml:"w" json:"w"`
}

var IdentityQuaternion = Quaternion{W: 1}

func (q Quaternion) isZero() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 0
}

// Rotate returns v rotated by q.
func (q Quaternion) Rotate(v Vector3) Vector3 {
	if q.isZero() {
		return v
	}

	// v' = v + 2w(u x v) + 2(u x (u x v)), u = (x, y, z)
	u := Vector3{X: q.X, Y: q.Y, Z: q.Z}
	t := cross(u, v).Scale(2)

	return v.Add(t.Scale(q.W)).Add(cross(u, t))
}

func cross(a, b Vector3) Vector3 {
	return Vector3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

type Pose struct {
	Position Vector3    `yaml:"position" json:"position"`
	Rotation Quaternion `yaml:"rotation" json:"rotation"`
}

// Transform maps a point from pose-local space to the pose's parent space.
func (p Pose) Transform(local Vector3) Vector3 {
	return p.Position.Add(p.Rotation.Rotate(local))
}
