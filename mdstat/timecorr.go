//Package mdstat turns trajectories into time series of per-frame
//values and computes statistics, like correlation functions, on them.
package mdstat

import (
	"fmt"
	"math/cmplx"

	md "github.com/rmera/gomd"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/stat"
)

// A FrameFunc distills one frame into one number, to build a time
// series over a trajectory.
type FrameFunc func(*md.Frame) (float64, error)

// Series maps f over the frames of a trajectory, in order. With the
// Skip option set to n, only every n-th frame enters the series;
// skipped frames are still read.
func Series(traj md.Traj, f FrameFunc, options ...*md.Options) ([]float64, error) {
	var o *md.Options
	if len(options) > 0 {
		o = options[0]
	} else {
		o = md.DefaultOptions()
	}
	skip := o.Skip()
	var ret []float64
	for read := 0; ; read++ {
		F, err := traj.Next()
		if err != nil {
			if _, ok := err.(md.LastFrameError); ok {
				break
			}
			if Err, ok := err.(md.Error); ok {
				Err.Decorate("Series")
				return nil, Err
			}
			return nil, err
		}
		if read%skip != 0 {
			continue
		}
		v, err := f(F)
		if err != nil {
			if Err, ok := err.(md.Error); ok {
				Err.Decorate(fmt.Sprintf("Series: frame %d", read))
				return nil, Err
			}
			return nil, err
		}
		ret = append(ret, v)
	}
	return ret, nil
}

// FormulaCount returns a FrameFunc counting the molecules with the
// given formula on each frame, with the neighbor search settings, and
// the type table for frames that come without one, taken from the
// options.
func FormulaCount(formula string, options ...*md.Options) FrameFunc {
	var o *md.Options
	if len(options) > 0 {
		o = options[0]
	} else {
		o = md.DefaultOptions()
	}
	return func(F *md.Frame) (float64, error) {
		if F.Table == nil && o.Table() != nil {
			G := *F
			G.Table = o.Table()
			F = &G
		}
		nl, err := F.NeighborList(o)
		if err != nil {
			return 0, err
		}
		counts, err := F.CountMols(nl.Molecules())
		if err != nil {
			return 0, err
		}
		return float64(counts[formula]), nil
	}
}

// MomentumComponent returns a FrameFunc giving one cartesian component
// (0, 1 or 2, for x, y or z) of the total momentum of each frame.
func MomentumComponent(axis int) FrameFunc {
	return func(F *md.Frame) (float64, error) {
		p, err := F.SumOfMomentums()
		if err != nil {
			return 0, err
		}
		return p.At(0, axis), nil
	}
}

// AutoCorrelation returns the normalized autocorrelation of the series,
// for lags from 0 to len(c)-1. The value at lag 0 is exactly 1.
func AutoCorrelation(c []float64) ([]float64, error) {
	return CrossCorrelation(c, c)
}

// CrossCorrelation returns the normalized cross-correlation of two
// equally long series, for lags from 0 to len-1. It goes through the
// FFT, so it takes O(n log n) time. The estimate at lag k sums over the
// n-k pairs that far apart but keeps a fixed normalization, so the
// large lags decay towards zero.
func CrossCorrelation(c1, c2 []float64) ([]float64, error) {
	n := len(c1)
	if n != len(c2) {
		return nil, fmt.Errorf("mdstat: the series have different lengths: %d and %d", n, len(c2))
	}
	if n < 2 {
		return nil, fmt.Errorf("mdstat: can not correlate a series of %d points", n)
	}
	m1 := stat.Mean(c1, nil)
	m2 := stat.Mean(c2, nil)
	s1 := stat.StdDev(c1, nil)
	s2 := stat.StdDev(c2, nil)
	if s1 == 0 || s2 == 0 {
		return nil, fmt.Errorf("mdstat: can not correlate a constant series")
	}
	//zero-padding to twice the length makes the circular correlation linear
	pad1 := make([]complex128, 2*n)
	pad2 := make([]complex128, 2*n)
	for i := range c1 {
		pad1[i] = complex(c1[i]-m1, 0)
		pad2[i] = complex(c2[i]-m2, 0)
	}
	f := fourier.NewCmplxFFT(2 * n)
	f.Coefficients(pad1, pad1)
	f.Coefficients(pad2, pad2)
	for i := range pad1 {
		pad1[i] *= cmplx.Conj(pad2[i])
	}
	f.Sequence(pad1, pad1)
	//the unnormalized inverse transform carries a factor of 2n, and
	//scaling to the variances adds one of n-1
	norm := 1.0 / (float64(2*n) * float64(n-1) * s1 * s2)
	ret := make([]float64, n)
	for k := range ret {
		ret[k] = real(pad1[k]) * norm
	}
	return ret, nil
}
