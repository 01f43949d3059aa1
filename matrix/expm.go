// SPDX-License-Identifier: MIT

// Package matrix - dense matrix exponential via scaling-and-squaring.
//
// Purpose:
//   - Compute exp(A) for a general real square matrix whose eigenvalues
//     may span many orders of magnitude (decay constants from seconds to
//     cosmological half-lives), where a truncated Taylor series or an
//     eigendecomposition route is not reliable.
//
// Implementation follows the Higham (2005) degree ladder: pick the
// smallest Padé degree m ∈ {3,5,7,9,13} whose backward-error bound theta_m
// covers ||A||₁; otherwise scale A by 2⁻ˢ so the degree-13 bound applies,
// evaluate the [13/13] approximant, and undo the scaling by s repeated
// squarings. The rational approximant r(A) = p(A)/q(A) is materialized by
// solving q(A)·X = p(A) with partially pivoted Gaussian elimination.
//
// Degradation policy: a near-singular denominator or an extreme squaring
// depth does not abort the computation; Expm returns the best-effort
// result together with ErrNumericalInstability so callers can decide.

package matrix

import "math"

// Backward-error thresholds theta_m for the Padé degree ladder: the
// largest ||A||₁ for which the degree-m approximant stays within unit
// roundoff (Higham 2005, Table 2.3).
const (
	theta3  = 1.495585217958292e-2
	theta5  = 2.539398330063230e-1
	theta7  = 9.504178996162932e-1
	theta9  = 2.097847961257068e0
	theta13 = 5.371920351148152e0
)

// MaxSquarings is the squaring depth beyond which Expm flags the result
// as unstable: each squaring can double the relative error, so ~64
// doublings exhaust double precision even in benign cases.
const MaxSquarings = 64

// tinyPivotRatio flags a Padé denominator pivot smaller than this
// fraction of the largest denominator entry as precision-threatening.
const tinyPivotRatio = 1e-13

// Padé numerator coefficients b_0..b_m for each ladder degree. The
// denominator reuses the same table with odd-power signs flipped, which
// the U/V split below encodes implicitly (q(A) = V - U, p(A) = V + U).
var (
	padeCoeffs3 = []float64{120, 60, 12, 1}
	padeCoeffs5 = []float64{30240, 15120, 3360, 420, 30, 1}
	padeCoeffs7 = []float64{17297280, 8648640, 1995840, 277200, 25200, 1512, 56, 1}
	padeCoeffs9 = []float64{
		17643225600, 8821612800, 2075673600, 302702400, 30270240,
		2162160, 110880, 3960, 90, 1,
	}
	padeCoeffs13 = []float64{
		64764752532480000, 32382376266240000, 7771770303897600,
		1187353796428800, 129060195264000, 10559470521600, 670442572800,
		33522128640, 1323241920, 40840800, 960960, 16380, 182, 1,
	}
)

// Expm computes exp(A) for a square matrix A.
//
// Implementation:
//   - Stage 1: validate square non-nil; ||A||₁ = 0 short-circuits to I.
//   - Stage 2: degree selection: smallest m with ||A||₁ ≤ theta_m, else
//     scale by 2⁻ˢ, s = ⌈log₂(||A||₁/theta13)⌉, and use m = 13.
//   - Stage 3: evaluate U (odd part) and V (even part) of the Padé
//     approximant; solve (V-U)·X = (V+U); square X s times.
//
// Behavior highlights:
//   - Deterministic: fixed loop orders, no randomness.
//   - Best-effort on degradation: ErrNumericalInstability accompanies a
//     non-nil result when a tiny denominator pivot is met or
//     s > MaxSquarings; only ErrSingular (exactly-zero pivot column)
//     returns a nil result.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular,
// ErrNumericalInstability (result still returned).
// Complexity: Time O((6+s)·n³), Space O(n²).
//
// AI-Hints:
//   - Feed Expm the already-scaled generator Q·Δt (use Scale); do not
//     exponentiate Q and then raise to a power.
//   - Check errors.Is(err, ErrNumericalInstability) and treat it as a
//     warning, not a failure; the propagator is still usable.
func Expm(a *Dense) (*Dense, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, opErrorf(opExpm, err)
	}

	norm, err := OneNorm(a)
	if err != nil {
		return nil, opErrorf(opExpm, err)
	}
	n := a.r
	// exp(0) = I exactly; avoid a pointless solve.
	if norm == 0 {
		return Identity(n)
	}

	// Degree selection along the ladder.
	var (
		u, v      *Dense
		squarings int
	)
	switch {
	case norm <= theta3:
		u, v, err = padeUV(a, padeCoeffs3)
	case norm <= theta5:
		u, v, err = padeUV(a, padeCoeffs5)
	case norm <= theta7:
		u, v, err = padeUV(a, padeCoeffs7)
	case norm <= theta9:
		u, v, err = padeUV(a, padeCoeffs9)
	default:
		squarings = int(math.Ceil(math.Log2(norm / theta13)))
		if squarings < 0 {
			squarings = 0
		}
		scaled, scaleErr := Scale(a, math.Ldexp(1, -squarings))
		if scaleErr != nil {
			return nil, opErrorf(opExpm, scaleErr)
		}
		u, v, err = pade13UV(scaled)
	}
	if err != nil {
		return nil, opErrorf(opExpm, err)
	}

	// q(A) = V - U, p(A) = V + U; solve q·X = p.
	den := v.Clone()
	num := v.Clone()
	for idx := 0; idx < len(den.data); idx++ {
		den.data[idx] -= u.data[idx]
		num.data[idx] += u.data[idx]
	}
	x, tinyPivot, err := luSolve(den, num)
	if err != nil {
		return nil, opErrorf(opExpm, err)
	}

	// Undo the 2⁻ˢ scaling: exp(A) = (exp(A/2ˢ))^(2ˢ).
	for k := 0; k < squarings; k++ {
		x, err = Mul(x, x)
		if err != nil {
			return nil, opErrorf(opExpm, err)
		}
	}

	if tinyPivot || squarings > MaxSquarings {
		return x, opErrorf(opExpm, ErrNumericalInstability)
	}

	return x, nil
}

// padeUV evaluates the odd part U = A·Σ b[2k+1]·A²ᵏ and even part
// V = Σ b[2k]·A²ᵏ of a degree-m Padé approximant for m ∈ {3,5,7,9}.
// Complexity: Time O(m·n³/2), Space O(n²) per retained power.
func padeUV(a *Dense, b []float64) (*Dense, *Dense, error) {
	m := len(b) - 1
	n := a.r

	// Even powers I, A², A⁴, ... up to A^(m-1).
	pows := make([]*Dense, 0, (m-1)/2+1)
	ident, err := Identity(n)
	if err != nil {
		return nil, nil, err
	}
	pows = append(pows, ident)
	a2, err := Mul(a, a)
	if err != nil {
		return nil, nil, err
	}
	power := a2
	for len(pows) <= (m-1)/2 {
		pows = append(pows, power)
		if len(pows) <= (m-1)/2 {
			power, err = Mul(power, a2)
			if err != nil {
				return nil, nil, err
			}
		}
	}

	// Odd-coefficient sum, then one multiplication by A for U.
	usum, err := NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}
	v, err := NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}
	for k := 0; k < len(pows); k++ {
		addScaled(usum, pows[k], b[2*k+1])
		addScaled(v, pows[k], b[2*k])
	}
	u, err := Mul(a, usum)
	if err != nil {
		return nil, nil, err
	}

	return u, v, nil
}

// pade13UV evaluates the degree-13 approximant with the two-level Horner
// scheme that needs only A², A⁴ and A⁶ (six multiplications total).
func pade13UV(a *Dense) (*Dense, *Dense, error) {
	b := padeCoeffs13
	n := a.r

	a2, err := Mul(a, a)
	if err != nil {
		return nil, nil, err
	}
	a4, err := Mul(a2, a2)
	if err != nil {
		return nil, nil, err
	}
	a6, err := Mul(a4, a2)
	if err != nil {
		return nil, nil, err
	}

	// U = A·(A⁶·(b13·A⁶ + b11·A⁴ + b9·A²) + b7·A⁶ + b5·A⁴ + b3·A² + b1·I).
	w1, err := NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}
	addScaled(w1, a6, b[13])
	addScaled(w1, a4, b[11])
	addScaled(w1, a2, b[9])
	w, err := Mul(a6, w1)
	if err != nil {
		return nil, nil, err
	}
	addScaled(w, a6, b[7])
	addScaled(w, a4, b[5])
	addScaled(w, a2, b[3])
	addDiag(w, b[1])
	u, err := Mul(a, w)
	if err != nil {
		return nil, nil, err
	}

	// V = A⁶·(b12·A⁶ + b10·A⁴ + b8·A²) + b6·A⁶ + b4·A⁴ + b2·A² + b0·I.
	z1, err := NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}
	addScaled(z1, a6, b[12])
	addScaled(z1, a4, b[10])
	addScaled(z1, a2, b[8])
	v, err := Mul(a6, z1)
	if err != nil {
		return nil, nil, err
	}
	addScaled(v, a6, b[6])
	addScaled(v, a4, b[4])
	addScaled(v, a2, b[2])
	addDiag(v, b[0])

	return u, v, nil
}

// addScaled accumulates dst += alpha·src over same-shape internal
// operands (shape guaranteed by construction; no validation).
func addScaled(dst, src *Dense, alpha float64) {
	for idx := 0; idx < len(dst.data); idx++ {
		dst.data[idx] += alpha * src.data[idx]
	}
}

// addDiag accumulates alpha onto the main diagonal of a square matrix.
func addDiag(dst *Dense, alpha float64) {
	n := dst.r
	for i := 0; i < n; i++ {
		dst.data[i*n+i] += alpha
	}
}

// luSolve solves D·X = B for square D via Gaussian elimination with
// partial pivoting, eliminating all right-hand-side columns at once.
//
// Returns the solution, a tiny-pivot flag (a pivot below tinyPivotRatio
// of D's largest entry was used; precision is threatened but the solve
// proceeded), and ErrSingular when a pivot column is exactly zero.
//
// Determinism: fixed column order; ties in pivot selection resolve to the
// smallest row index.
// Complexity: Time O(n³), Space O(n²).
func luSolve(d, b *Dense) (*Dense, bool, error) {
	n := d.r
	work := d.Clone()
	x := b.Clone()

	// Scale reference for the tiny-pivot flag.
	var maxAbs, av float64
	for idx := 0; idx < len(work.data); idx++ {
		av = math.Abs(work.data[idx])
		if av > maxAbs {
			maxAbs = av
		}
	}
	tinyTol := tinyPivotRatio * maxAbs

	var (
		tiny           bool
		col, r, k, p   int
		pivot, best, f float64
	)
	for col = 0; col < n; col++ {
		// Partial pivoting: largest |entry| at or below the diagonal.
		p, best = col, math.Abs(work.data[col*n+col])
		for r = col + 1; r < n; r++ {
			av = math.Abs(work.data[r*n+col])
			if av > best {
				p, best = r, av
			}
		}
		pivot = work.data[p*n+col]
		if pivot == 0 {
			return nil, tiny, ErrSingular
		}
		if math.Abs(pivot) < tinyTol {
			tiny = true
		}
		if p != col {
			swapRows(work, p, col)
			swapRows(x, p, col)
		}

		// Eliminate below the pivot.
		for r = col + 1; r < n; r++ {
			f = work.data[r*n+col] / pivot
			if f == 0 {
				continue
			}
			work.data[r*n+col] = 0
			for k = col + 1; k < n; k++ {
				work.data[r*n+k] -= f * work.data[col*n+k]
			}
			for k = 0; k < n; k++ {
				x.data[r*n+k] -= f * x.data[col*n+k]
			}
		}
	}

	// Back substitution, bottom-up.
	for col = n - 1; col >= 0; col-- {
		pivot = work.data[col*n+col]
		for k = 0; k < n; k++ {
			f = x.data[col*n+k]
			for r = col + 1; r < n; r++ {
				f -= work.data[col*n+r] * x.data[r*n+k]
			}
			x.data[col*n+k] = f / pivot
		}
	}

	return x, tiny, nil
}

// swapRows exchanges rows i and j of m in place.
func swapRows(m *Dense, i, j int) {
	base1, base2 := i*m.c, j*m.c
	for k := 0; k < m.c; k++ {
		m.data[base1+k], m.data[base2+k] = m.data[base2+k], m.data[base1+k]
	}
}
