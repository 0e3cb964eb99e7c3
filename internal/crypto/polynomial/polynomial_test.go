package polynomial

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

func u64(v uint64) fr.Element {
	var e fr.Element
	e.SetUint64(v)
	return e
}

func TestNew(t *testing.T) {
	t.Run("with random secret", func(t *testing.T) {
		poly, err := New(2, nil)
		if err != nil {
			t.Fatalf("Failed to create polynomial: %v", err)
		}

		if len(poly.Coefficients) != 3 {
			t.Errorf("Expected 3 coefficients for degree 2, got %d", len(poly.Coefficients))
		}
	})

	t.Run("with provided secret", func(t *testing.T) {
		secret := u64(12345)
		poly, err := New(2, &secret)
		if err != nil {
			t.Fatalf("Failed to create polynomial: %v", err)
		}

		if !poly.Coefficients[0].Equal(&secret) {
			t.Errorf("Expected a_0 = %s, got %s", secret.String(), poly.Coefficients[0].String())
		}
	})

	t.Run("degree 0", func(t *testing.T) {
		secret := u64(999)
		poly, err := New(0, &secret)
		if err != nil {
			t.Fatalf("Failed to create polynomial: %v", err)
		}

		if len(poly.Coefficients) != 1 {
			t.Errorf("Expected 1 coefficient for degree 0, got %d", len(poly.Coefficients))
		}
	})

	t.Run("negative degree", func(t *testing.T) {
		if _, err := New(-1, nil); err == nil {
			t.Error("Expected error for negative degree")
		}
	})
}

func TestEvaluate(t *testing.T) {
	t.Run("constant polynomial", func(t *testing.T) {
		// f(x) = 5
		poly := &Polynomial{Coefficients: []fr.Element{u64(5)}}

		for _, x := range []fr.Element{u64(0), u64(100)} {
			result := poly.Evaluate(&x)
			if want := u64(5); !result.Equal(&want) {
				t.Errorf("f(%s) = %s, expected 5", x.String(), result.String())
			}
		}
	})

	t.Run("linear polynomial", func(t *testing.T) {
		// f(x) = 3 + 2x
		poly := &Polynomial{Coefficients: []fr.Element{u64(3), u64(2)}}

		cases := []struct{ x, want uint64 }{
			{0, 3},
			{1, 5},
			{5, 13},
		}
		for _, c := range cases {
			x, want := u64(c.x), u64(c.want)
			result := poly.Evaluate(&x)
			if !result.Equal(&want) {
				t.Errorf("f(%d) = %s, expected %d", c.x, result.String(), c.want)
			}
		}
	})

	t.Run("quadratic polynomial", func(t *testing.T) {
		// f(x) = 1 + 2x + 3x^2
		poly := &Polynomial{Coefficients: []fr.Element{u64(1), u64(2), u64(3)}}

		cases := []struct{ x, want uint64 }{
			{0, 1},
			{1, 6},
			{2, 17},
			{3, 34},
		}
		for _, c := range cases {
			x, want := u64(c.x), u64(c.want)
			result := poly.Evaluate(&x)
			if !result.Equal(&want) {
				t.Errorf("f(%d) = %s, expected %d", c.x, result.String(), c.want)
			}
		}
	})

	t.Run("field wrap-around", func(t *testing.T) {
		// f(x) = (r-1) + 2x, so f(1) = r+1 = 1 mod r
		var rMinus1 fr.Element
		rMinus1.SetOne()
		rMinus1.Neg(&rMinus1)

		poly := &Polynomial{Coefficients: []fr.Element{rMinus1, u64(2)}}

		x := u64(1)
		result := poly.Evaluate(&x)
		if want := u64(1); !result.Equal(&want) {
			t.Errorf("f(1) = %s, expected 1 (after reduction mod r)", result.String())
		}
	})
}

func TestEvaluateMulti(t *testing.T) {
	// f(x) = 5 + 3x
	poly := &Polynomial{Coefficients: []fr.Element{u64(5), u64(3)}}

	xs := []fr.Element{u64(0), u64(1), u64(2), u64(10)}
	expected := []fr.Element{u64(5), u64(8), u64(11), u64(35)}

	results := poly.EvaluateMulti(xs)

	if len(results) != len(expected) {
		t.Fatalf("Expected %d results, got %d", len(expected), len(results))
	}

	for i, r := range results {
		if !r.Equal(&expected[i]) {
			t.Errorf("f(%s) = %s, expected %s", xs[i].String(), r.String(), expected[i].String())
		}
	}
}
