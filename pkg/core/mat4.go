package core

import "github.com/go-gl/mathgl/mgl64"

// Mat4 is a 4x4 homogeneous transform.
// Translate, RotateX/Y/Z and Scale left-multiply the receiver, so the latest call is
// applied to points last: Identity().Scale(...).RotateZ(...).Translate(...) is T*R*S.
type Mat4 struct {
	m mgl64.Mat4
}

// Identity returns the identity transform
func Identity() Mat4 {
	return Mat4{m: mgl64.Ident4()}
}

// NewMat4 builds a matrix from its rows
func NewMat4(rows [4][4]float64) Mat4 {
	return Mat4{m: mgl64.Mat4FromRows(
		mgl64.Vec4(rows[0]),
		mgl64.Vec4(rows[1]),
		mgl64.Vec4(rows[2]),
		mgl64.Vec4(rows[3]),
	)}
}

// At returns the element at row, col
func (a Mat4) At(row, col int) float64 {
	return a.m.At(row, col)
}

// Mul returns the matrix product a*b
func (a Mat4) Mul(b Mat4) Mat4 {
	return Mat4{m: a.m.Mul4(b.m)}
}

// Translate returns Translation(x, y, z) * a
func (a Mat4) Translate(x, y, z float64) Mat4 {
	return Mat4{m: mgl64.Translate3D(x, y, z).Mul4(a.m)}
}

// RotateX returns RotationX(angle) * a. The angle is in radians.
func (a Mat4) RotateX(angle float64) Mat4 {
	return Mat4{m: mgl64.HomogRotate3DX(angle).Mul4(a.m)}
}

// RotateY returns RotationY(angle) * a. The angle is in radians.
func (a Mat4) RotateY(angle float64) Mat4 {
	return Mat4{m: mgl64.HomogRotate3DY(angle).Mul4(a.m)}
}

// RotateZ returns RotationZ(angle) * a. The angle is in radians.
func (a Mat4) RotateZ(angle float64) Mat4 {
	return Mat4{m: mgl64.HomogRotate3DZ(angle).Mul4(a.m)}
}

// Scale returns Scaling(x, y, z) * a
func (a Mat4) Scale(x, y, z float64) Mat4 {
	return Mat4{m: mgl64.Scale3D(x, y, z).Mul4(a.m)}
}

// TransformPoint applies the transform to a point (w = 1). The projective row is ignored.
func (a Mat4) TransformPoint(p Vec3) Vec3 {
	r := a.m.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return Vec3{X: r[0], Y: r[1], Z: r[2]}
}

// TransformDirection applies only the linear part of the transform (w = 0)
func (a Mat4) TransformDirection(d Vec3) Vec3 {
	r := a.m.Mul4x1(mgl64.Vec4{d.X, d.Y, d.Z, 0})
	return Vec3{X: r[0], Y: r[1], Z: r[2]}
}

// ApproxEqual reports whether every element of a and b differs by at most threshold
func (a Mat4) ApproxEqual(b Mat4, threshold float64) bool {
	return a.m.ApproxEqualThreshold(b.m, threshold)
}

// Basis is an orthonormal frame. Its axes are the columns of a rotation matrix.
type Basis struct {
	rot mgl64.Mat3
}

// NewBasis builds the frame obtained by rotating the world axes around X, then Y,
// then Z by the given angles in radians.
func NewBasis(rotation Vec3) Basis {
	r := mgl64.Rotate3DZ(rotation.Z).
		Mul3(mgl64.Rotate3DY(rotation.Y)).
		Mul3(mgl64.Rotate3DX(rotation.X))
	return Basis{rot: r}
}

// Axis returns local axis i (0 = X, 1 = Y, 2 = Z) in world coordinates
func (b Basis) Axis(i int) Vec3 {
	c := b.rot.Col(i)
	return Vec3{X: c[0], Y: c[1], Z: c[2]}
}

// ToLocal expresses a world-space direction in the frame's coordinates
func (b Basis) ToLocal(v Vec3) Vec3 {
	r := b.rot.Transpose().Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
	return Vec3{X: r[0], Y: r[1], Z: r[2]}
}

// ToWorld expresses a frame-local direction in world coordinates
func (b Basis) ToWorld(v Vec3) Vec3 {
	r := b.rot.Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
	return Vec3{X: r[0], Y: r[1], Z: r[2]}
}
