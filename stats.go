package main

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Norm computes the Euclidean norm of the difference between vectors a
// and b, along with the largest absolute deviation.
func Norm(a, b *mat.Dense) (norm, max float64) {
	var diff mat.Dense
	diff.Sub(a, b)
	r, _ := diff.Dims()
	for i := 0; i < r; i++ {
		if v := math.Abs(diff.At(i, 0)); v > max {
			max = v
		}
	}
	return mat.Norm(&diff, 2), max
}

// RMSD computes the root-mean-square deviation between vectors a and
// b
func RMSD(a, b *mat.Dense) (ret float64) {
	as := a.RawMatrix().Data
	bs := b.RawMatrix().Data
	if len(as) != len(bs) {
		panic("dimension mismatch")
	}
	var count int
	for i := range as {
		// deviation
		diff := as[i] - bs[i]
		// square
		ret += diff * diff
		count++
	}
	// mean
	ret /= float64(count)
	// root
	return math.Sqrt(ret)
}

// Summary describes how far the refined electronic energies moved from
// the originals across one batch.
type Summary struct {
	Jobs   int
	Failed int
	Norm   float64
	RMSD   float64
	Max    float64
}

// Summarize collects the SCF shifts of the successful rows, converted
// to unit. A batch with no successful rows yields only the counts.
func Summarize(rows []Row, unit Unit) Summary {
	s := Summary{Jobs: len(rows)}
	var orig, ref []float64
	for _, row := range rows {
		if row.Err != nil || row.Original == nil || row.Refined == nil {
			s.Failed++
			continue
		}
		orig = append(orig, Convert(row.Original.SCF, Hartree, unit))
		ref = append(ref, Convert(row.Refined.SCF, Hartree, unit))
	}
	if len(orig) == 0 {
		return s
	}
	a := mat.NewDense(len(orig), 1, orig)
	b := mat.NewDense(len(ref), 1, ref)
	s.Norm, s.Max = Norm(a, b)
	s.RMSD = RMSD(a, b)
	return s
}
