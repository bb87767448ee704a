package emwave

import "math"

// rotation about the z axis (in the x-y plane)
func rotZ(a Real) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	M := I3()
	M.M[0][0], M.M[0][1] = c, -s
	M.M[1][0], M.M[1][1] = s, c
	return M
}

// rotation about the x axis (in the y-z plane)
func rotX(a Real) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	M := I3()
	M.M[1][1], M.M[1][2] = c, -s
	M.M[2][1], M.M[2][2] = s, c
	return M
}

// viewMatrix maps plot coordinates to camera coordinates for a viewer at the
// given elevation and azimuth (degrees). Camera x is screen right, camera y is
// screen up and camera z points at the viewer.
func viewMatrix(elevDeg, azimDeg Real) Mat3 {
	const k = math.Pi / 180
	// turn the scene so the viewer sits on -y, then lift the viewer above the x-y plane
	R := rotZ(-(azimDeg*k + math.Pi/2))
	R = rotX(elevDeg*k - math.Pi/2).Mul(R)
	return R
}
