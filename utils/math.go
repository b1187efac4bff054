package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// result in radians
func QuatToEuler(q mgl32.Quat) (e mgl32.Vec3) {
	sinr_cosp := float64(2 * (q.W*q.X() + q.Y()*q.Z()))
	cosr_cosp := float64(1 - 2*(q.X()*q.X()+q.Y()*q.Y()))

	e[0] = float32(math.Atan2(sinr_cosp, cosr_cosp))

	sinp := float64(2 * (q.W*q.Y() - q.Z()*q.X()))
	if math.Abs(sinp) >= 1 {
		e[1] = math.Pi / 2
		if sinp < 0 {
			e[1] *= -1
		}
	} else {
		e[1] = float32(math.Asin(sinp))
	}

	siny_cosp := float64(2 * (q.W*q.Z() + q.X()*q.Y()))
	cosy_cosp := float64(1 - 2*(q.Y()*q.Y()+q.Z()*q.Z()))
	e[2] = float32(math.Atan2(siny_cosp, cosy_cosp))

	return e
}

// DecomposeMatrix splits a column-major 4x4 transform into translation,
// rotation (euler radians) and scale. Assumes no shear, which holds for
// transforms authored as TRS.
func DecomposeMatrix(m [16]float32) (translation, rotation, scale mgl32.Vec3) {
	translation = mgl32.Vec3{m[12], m[13], m[14]}

	sx := mgl32.Vec3{m[0], m[1], m[2]}.Len()
	sy := mgl32.Vec3{m[4], m[5], m[6]}.Len()
	sz := mgl32.Vec3{m[8], m[9], m[10]}.Len()

	// negative determinant means one axis is mirrored
	mat := mgl32.Mat4{
		m[0], m[1], m[2], m[3],
		m[4], m[5], m[6], m[7],
		m[8], m[9], m[10], m[11],
		m[12], m[13], m[14], m[15],
	}
	if mat.Det() < 0 {
		sx = -sx
	}

	scale = mgl32.Vec3{sx, sy, sz}

	invX, invY, invZ := float32(1), float32(1), float32(1)
	if sx != 0 {
		invX = 1 / sx
	}
	if sy != 0 {
		invY = 1 / sy
	}
	if sz != 0 {
		invZ = 1 / sz
	}

	rot := mgl32.Mat4{
		m[0] * invX, m[1] * invX, m[2] * invX, 0,
		m[4] * invY, m[5] * invY, m[6] * invY, 0,
		m[8] * invZ, m[9] * invZ, m[10] * invZ, 0,
		0, 0, 0, 1,
	}
	rotation = QuatToEuler(mgl32.Mat4ToQuat(rot))

	return translation, rotation, scale
}

// IsIdentityQuat reports whether q encodes no rotation.
func IsIdentityQuat(q [4]float32) bool {
	return q[0] == 0 && q[1] == 0 && q[2] == 0 && (q[3] == 1 || q[3] == -1)
}

func IsIdentityMatrix(m [16]float32) bool {
	for i, v := range m {
		if i%5 == 0 {
			if v != 1 {
				return false
			}
		} else if v != 0 {
			return false
		}
	}
	return true
}
