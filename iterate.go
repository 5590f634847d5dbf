package juliabrot

// Iterate runs z -> z^n + c starting from z0 and returns the index of
// the last iteration performed: the k at which |z| first exceeded zmax,
// or niter-1 if the orbit never escaped within the cap. A point that
// never escapes is therefore indistinguishable from one escaping on the
// final allowed iteration; downstream colormap scaling is calibrated
// against the resulting [0, niter-1] range, so keep it that way.
//
// n and niter are assumed positive; that is enforced at the parameter
// store boundary, not here.
func Iterate(z0, c complex128, n int, zmax float64, niter int) int {
	z := z0
	bail2 := zmax * zmax
	last := 0
	for k := 0; k < niter; k++ {
		last = k
		z = ipow(z, n) + c
		if real(z)*real(z)+imag(z)*imag(z) > bail2 {
			break
		}
	}
	return last
}

// ipow raises z to a positive integer power by repeated multiplication.
func ipow(z complex128, n int) complex128 {
	w := z
	for i := 1; i < n; i++ {
		w *= z
	}
	return w
}
