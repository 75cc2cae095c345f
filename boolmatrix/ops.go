package boolmatrix

// Or returns the elementwise Boolean OR of m and other (matrix addition
// in the Boolean semiring). Both operands must share shape.
// Complexity: O(nnz(m) + nnz(other)).
func Or(m, other *Matrix) (*Matrix, error) {
	if m.rows != other.rows || m.cols != other.cols {
		return nil, ErrDimensionMismatch
	}
	out, err := NewZero(m.rows, m.cols)
	if err != nil {
		return nil, err
	}
	for i, row := range m.data {
		for j := range row {
			out.data[i][j] = struct{}{}
		}
	}
	for i, row := range other.data {
		for j := range row {
			out.data[i][j] = struct{}{}
		}
	}
	return out, nil
}

// OrInPlace ORs other into m, mutating m, and reports whether m grew (any
// new bit was set). Saturation loops use this to detect a clean sweep
// without materializing a fresh matrix every iteration.
func (m *Matrix) OrInPlace(other *Matrix) (bool, error) {
	if m.rows != other.rows || m.cols != other.cols {
		return false, ErrDimensionMismatch
	}
	grew := false
	for i, row := range other.data {
		for j := range row {
			if _, had := m.data[i][j]; !had {
				m.data[i][j] = struct{}{}
				grew = true
			}
		}
	}
	return grew, nil
}

// Mul computes the Boolean matrix product m·other, where
// (m·other)[i,j] = OR_k m[i,k] AND other[k,j]. m.Cols() must equal
// other.Rows().
// Complexity: O(nnz(m) * avg fan-out of other's rows touched), since each
// nonzero m[i,k] pulls in other's row k wholesale.
func Mul(m, other *Matrix) (*Matrix, error) {
	if m.cols != other.rows {
		return nil, ErrDimensionMismatch
	}
	out, err := NewZero(m.rows, other.cols)
	if err != nil {
		return nil, err
	}
	for i, row := range m.data {
		for k := range row {
			for j := range other.data[k] {
				out.data[i][j] = struct{}{}
			}
		}
	}
	return out, nil
}

// Kron computes the Kronecker product a⊗b, of shape
// (a.Rows()*b.Rows()) x (a.Cols()*b.Cols()), with
// (a⊗b)[i*b.Rows()+p, j*b.Cols()+q] = a[i,j] AND b[p,q].
// Complexity: O(nnz(a) * nnz(b)).
func Kron(a, b *Matrix) (*Matrix, error) {
	out, err := NewZero(a.rows*b.rows, a.cols*b.cols)
	if err != nil {
		return nil, err
	}
	for i, rowA := range a.data {
		for j := range rowA {
			for p, rowB := range b.data {
				for q := range rowB {
					out.data[i*b.rows+p][j*b.cols+q] = struct{}{}
				}
			}
		}
	}
	return out, nil
}

// BlockDiag composes mats into a single block-diagonal matrix: the result
// has shape (Σ rows) x (Σ cols), with mats[k] placed at the block offset
// given by the cumulative shape of mats[0..k-1] and every other entry
// false. Used to advance several automata in lockstep on a shared label
// (§4.3.2: T_ℓ = block_diag(BR.adj[ℓ], BG.adj[ℓ])).
func BlockDiag(mats ...*Matrix) (*Matrix, error) {
	var totalRows, totalCols int
	for _, m := range mats {
		totalRows += m.rows
		totalCols += m.cols
	}
	if totalRows == 0 || totalCols == 0 {
		return nil, ErrInvalidShape
	}
	out, err := NewZero(totalRows, totalCols)
	if err != nil {
		return nil, err
	}
	rowOff, colOff := 0, 0
	for _, m := range mats {
		for i, row := range m.data {
			for j := range row {
				out.data[rowOff+i][colOff+j] = struct{}{}
			}
		}
		rowOff += m.rows
		colOff += m.cols
	}
	return out, nil
}

// Identity returns the n×n identity Boolean matrix.
func Identity(n int) (*Matrix, error) {
	m, err := NewZero(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i][i] = struct{}{}
	}
	return m, nil
}

// TransitiveClosure computes the reflexive-free reachability closure of m
// (assumed square): R := m; repeat R := R ∨ (R·R) until NNZ(R) stabilizes.
// This realizes §4.2's BAA.transitive_closure over any label-agnostic
// adjacency, not just a BAA's own combined adjacency.
// Complexity: each sweep is a full Boolean product, O(n^3) worst case per
// sweep in the dense limit; termination is guaranteed because NNZ(R) is
// monotone non-decreasing and bounded by n^2.
func TransitiveClosure(m *Matrix) (*Matrix, error) {
	if m.rows != m.cols {
		return nil, ErrDimensionMismatch
	}
	r := m.Clone()
	prev := -1
	for r.NNZ() != prev {
		prev = r.NNZ()
		sq, err := Mul(r, r)
		if err != nil {
			return nil, err
		}
		if _, err := r.OrInPlace(sq); err != nil {
			return nil, err
		}
	}
	return r, nil
}
