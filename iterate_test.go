package juliabrot

import "testing"

func TestIterate(t *testing.T) {
	tests := []struct {
		name  string
		z0, c complex128
		n     int
		zmax  float64
		niter int
		want  int
	}{
		// The zero orbit never escapes; the cap reports the index of
		// the last iteration performed, niter-1, not niter.
		{"zero orbit never escapes", 0, 0, 2, 4, 256, 255},
		{"zero orbit small cap", 0, 0, 2, 4, 1, 0},
		// Orbit 0 -> 2 -> 6, escaping on the second iteration.
		{"fast escape", 0, complex(2, 0), 2, 4, 256, 1},
		// Linear walk 1,2,3,4,5 under n=1; |4| is not beyond the
		// bailout, |5| is.
		{"exponent one", 0, complex(1, 0), 1, 4, 100, 4},
		// Known interior point of the quadratic Julia set for C=0.
		{"interior stays bounded", complex(0.3, 0.3), 0, 2, 4, 64, 63},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Iterate(tt.z0, tt.c, tt.n, tt.zmax, tt.niter)
			if got != tt.want {
				t.Errorf("Iterate(%v, %v, %d, %g, %d) = %d, want %d",
					tt.z0, tt.c, tt.n, tt.zmax, tt.niter, got, tt.want)
			}
		})
	}
}

// A point that escapes exactly on the final allowed iteration reports
// the same index as one that never escapes. That ambiguity is part of
// the contract: colormap scaling downstream is calibrated against the
// [0, niter-1] range, so the cap index must never be exceeded.
func TestIterateFinalIterationAmbiguity(t *testing.T) {
	// With niter=2 the orbit 0 -> 2 -> 6 escapes on iteration index 1.
	escaping := Iterate(0, complex(2, 0), 2, 4, 2)
	// The zero orbit never escapes and also reports index 1.
	bounded := Iterate(0, 0, 2, 4, 2)

	if escaping != 1 || bounded != 1 {
		t.Errorf("final-iteration escape = %d, never-escape = %d, both should be niter-1 = 1", escaping, bounded)
	}
}

func TestIpow(t *testing.T) {
	tests := []struct {
		z    complex128
		n    int
		want complex128
	}{
		{complex(2, 0), 1, complex(2, 0)},
		{complex(0, 1), 2, complex(-1, 0)},
		{complex(0, 1), 4, complex(1, 0)},
		{complex(2, 0), 3, complex(8, 0)},
	}
	for _, tt := range tests {
		if got := ipow(tt.z, tt.n); got != tt.want {
			t.Errorf("ipow(%v, %d) = %v, want %v", tt.z, tt.n, got, tt.want)
		}
	}
}
