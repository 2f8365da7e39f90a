package quditvis

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// View holds camera angles in degrees, the way a 3D axes is oriented.
type View struct {
	Azim float64
	Elev float64
}

func DefaultView() View {
	return View{Azim: -60, Elev: 30}
}

/*
Camera rotates scene space into view space: X to the right, Y up and Z
towards the viewer. The projection is orthographic, so Z only orders
faces.
*/
type Camera struct {
	rot quat.Number
}

func NewCamera(v View) Camera {
	az := v.Azim * math.Pi / 180
	el := v.Elev * math.Pi / 180

	// Spin the view direction into the xz-plane, tip it onto +Z, then
	// turn the screen-right axis onto +X.
	spin := axisAngle(Point3{Z: 1}, -az)
	tip := axisAngle(Point3{Y: 1}, el-math.Pi/2)
	turn := axisAngle(Point3{Z: 1}, -math.Pi/2)

	return Camera{rot: quat.Mul(turn, quat.Mul(tip, spin))}
}

// Project returns p in view space.
func (c Camera) Project(p Point3) Point3 {
	v := quat.Mul(quat.Mul(c.rot, quat.Number{Imag: p.X, Jmag: p.Y, Kmag: p.Z}), quat.Conj(c.rot))
	return Point3{v.Imag, v.Jmag, v.Kmag}
}

// Eye is the unit vector from the origin towards the viewer, in scene space.
func (v View) Eye() Point3 {
	az := v.Azim * math.Pi / 180
	el := v.Elev * math.Pi / 180
	return Point3{math.Cos(el) * math.Cos(az), math.Cos(el) * math.Sin(az), math.Sin(el)}
}

func axisAngle(axis Point3, angle float64) quat.Number {
	a := axis.Norm()
	s, c := math.Sincos(angle / 2)
	return quat.Number{Real: c, Imag: a.X * s, Jmag: a.Y * s, Kmag: a.Z * s}
}
