package render

// The iteration kernels. EscapeTime and EscapeTimeDecomposed are the
// per-point reference forms; iterateComplex and iterateDecomposed are the
// batch forms the tile workers run, stepping every point of a tile once
// per pass so the escape test stays in cache-friendly slice loops.
//
// Count convention: the result is the first n >= 1 at which |z_n|^2
// exceeds 4, or maxIters if the orbit never escapes within budget. Both
// strategies order their arithmetic identically, so their counts agree
// exactly, not just within tolerance.

// EscapeTime iterates z = z*z + c on native complex values and returns
// the escape count for c.
func EscapeTime(c complex128, maxIters int) int {
	z := complex(0, 0)
	for n := 1; n <= maxIters; n++ {
		z = z*z + c
		if real(z)*real(z)+imag(z)*imag(z) > 4 {
			return n
		}
	}
	return maxIters
}

// EscapeTimeDecomposed is EscapeTime with the complex arithmetic expanded
// into separate real and imaginary float64 terms.
func EscapeTimeDecomposed(cr, ci float64, maxIters int) int {
	var x, y float64
	for n := 1; n <= maxIters; n++ {
		x, y = x*x-y*y+cr, x*y+x*y+ci
		if x*x+y*y > 4 {
			return n
		}
	}
	return maxIters
}

// iterateComplex fills counts with the escape count of every point
// (cRe[i], cIm[i]). Escaped points are frozen: their z stops updating, so
// a long budget cannot overflow an already-diverged orbit. The pass loop
// exits as soon as every point has escaped.
func iterateComplex(cRe, cIm []float64, counts []int, maxIters int) {
	zs := make([]complex128, len(counts))
	escaped := make([]bool, len(counts))
	remaining := len(counts)

	for i := range counts {
		counts[i] = maxIters
	}
	for n := 1; n <= maxIters && remaining > 0; n++ {
		for i, z := range zs {
			if escaped[i] {
				continue
			}
			z = z*z + complex(cRe[i], cIm[i])
			zs[i] = z
			if real(z)*real(z)+imag(z)*imag(z) > 4 {
				counts[i] = n
				escaped[i] = true
				remaining--
			}
		}
	}
}

// iterateDecomposed is iterateComplex on explicitly split real and
// imaginary components.
func iterateDecomposed(cRe, cIm []float64, counts []int, maxIters int) {
	xs := make([]float64, len(counts))
	ys := make([]float64, len(counts))
	escaped := make([]bool, len(counts))
	remaining := len(counts)

	for i := range counts {
		counts[i] = maxIters
	}
	for n := 1; n <= maxIters && remaining > 0; n++ {
		for i := range xs {
			if escaped[i] {
				continue
			}
			x, y := xs[i], ys[i]
			x, y = x*x-y*y+cRe[i], x*y+x*y+cIm[i]
			xs[i], ys[i] = x, y
			if x*x+y*y > 4 {
				counts[i] = n
				escaped[i] = true
				remaining--
			}
		}
	}
}
