package linear

import "math/big"

// rank computes the rank of a matrix of rational rows via Gaussian
// elimination over math/big.Rat. This is the "direct data representation
// plus a rational Gaussian-elimination routine" spec §9 prescribes in place
// of the source's string-serialized equations fed to a symbolic solver.
func rank(rows [][]*big.Rat) int {
	if len(rows) == 0 {
		return 0
	}
	cols := len(rows[0])
	// Work on copies so the caller's rows are untouched.
	m := make([][]*big.Rat, len(rows))
	for i, row := range rows {
		m[i] = make([]*big.Rat, cols)
		for j, v := range row {
			m[i][j] = new(big.Rat).Set(v)
		}
	}

	r := 0
	for col := 0; col < cols && r < len(m); col++ {
		pivot := -1
		for i := r; i < len(m); i++ {
			if m[i][col].Sign() != 0 {
				pivot = i
				break
			}
		}
		if pivot == -1 {
			continue
		}
		m[r], m[pivot] = m[pivot], m[r]
		inv := new(big.Rat).Inv(m[r][col])
		for j := col; j < cols; j++ {
			m[r][j].Mul(m[r][j], inv)
		}
		for i := 0; i < len(m); i++ {
			if i == r || m[i][col].Sign() == 0 {
				continue
			}
			factor := new(big.Rat).Set(m[i][col])
			for j := col; j < cols; j++ {
				term := new(big.Rat).Mul(factor, m[r][j])
				m[i][j].Sub(m[i][j], term)
			}
		}
		r++
	}
	return r
}

// augmentedRow renders an equation as a rational row [coefficients..., -M].
func augmentedRow(e Equation) []*big.Rat {
	row := make([]*big.Rat, len(e.Coefficients)+1)
	for i, c := range e.Coefficients {
		row[i] = big.NewRat(int64(c), 1)
	}
	row[len(e.Coefficients)] = big.NewRat(int64(-e.M), 1)
	return row
}

func coefficientRow(e Equation) []*big.Rat {
	row := make([]*big.Rat, len(e.Coefficients))
	for i, c := range e.Coefficients {
		row[i] = big.NewRat(int64(c), 1)
	}
	return row
}

// consistent reports whether the equation system S has at least one
// (rational) solution: rank of the coefficient matrix must equal rank of the
// augmented matrix.
func consistent(equations []Equation) bool {
	if len(equations) == 0 {
		return true
	}
	coeffRows := make([][]*big.Rat, len(equations))
	augRows := make([][]*big.Rat, len(equations))
	for i, e := range equations {
		coeffRows[i] = coefficientRow(e)
		augRows[i] = augmentedRow(e)
	}
	return rank(coeffRows) == rank(augRows)
}

// implied reports whether candidate is satisfied by every solution of the
// (already known consistent) equation system S: adding candidate's augmented
// row must not increase the augmented matrix's rank (spec §4.3 explication).
func implied(equations []Equation, candidate Equation) bool {
	augRows := make([][]*big.Rat, 0, len(equations)+1)
	for _, e := range equations {
		augRows = append(augRows, augmentedRow(e))
	}
	base := rank(augRows)
	augRows = append(augRows, augmentedRow(candidate))
	return rank(augRows) == base
}
