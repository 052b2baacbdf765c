package models

// FeatureVector is a sparse weighted term-frequency vector. Dim is the
// vocabulary size fixed when the vectorizer was fitted; Indices are ascending
// and every index is in [0, Dim).
type FeatureVector struct {
	Dim     int
	Indices []int
	Values  []float64
}

// NNZ returns the number of stored (non-zero) entries.
func (v FeatureVector) NNZ() int {
	return len(v.Indices)
}

// Dense expands the vector. Intended for tests and debugging.
func (v FeatureVector) Dense() []float64 {
	out := make([]float64, v.Dim)
	for i, idx := range v.Indices {
		out[idx] = v.Values[i]
	}
	return out
}
