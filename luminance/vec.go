package luminance

import "math"

type vec3 struct{ x, y, z float64 }

func (v vec3) add(o vec3) vec3      { return vec3{v.x + o.x, v.y + o.y, v.z + o.z} }
func (v vec3) sub(o vec3) vec3      { return vec3{v.x - o.x, v.y - o.y, v.z - o.z} }
func (v vec3) scale(s float64) vec3 { return vec3{v.x * s, v.y * s, v.z * s} }
func (v vec3) dot(o vec3) float64   { return v.x*o.x + v.y*o.y + v.z*o.z }
func (v vec3) length() float64      { return math.Sqrt(v.dot(v)) }

// normalize returns v unchanged when it has zero length.
func (v vec3) normalize() vec3 {
	l := v.length()
	if l == 0 {
		return v
	}
	return v.scale(1 / l)
}

func rotateX(v vec3, a float64) vec3 {
	s, c := math.Sincos(a)
	return vec3{v.x, v.y*c - v.z*s, v.y*s + v.z*c}
}

func rotateY(v vec3, a float64) vec3 {
	s, c := math.Sincos(a)
	return vec3{v.x*c + v.z*s, v.y, -v.x*s + v.z*c}
}
