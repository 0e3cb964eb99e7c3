package polynomial

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Polynomial represents a polynomial f(x) = a_0 + a_1*x + ... + a_t*x^t
// over the BLS12-381 scalar field.
type Polynomial struct {
	Coefficients []fr.Element
}

// New generates a random polynomial of given degree with the constant term
// (secret) provided. If secret is nil, a random constant term is generated.
func New(degree int, secret *fr.Element) (*Polynomial, error) {
	if degree < 0 {
		return nil, errors.New("polynomial: degree must be non-negative")
	}

	coeffs := make([]fr.Element, degree+1)

	// a_0 is the secret
	if secret == nil {
		if _, err := coeffs[0].SetRandom(); err != nil {
			return nil, err
		}
	} else {
		coeffs[0].Set(secret)
	}

	// Generate random coefficients a_1 ... a_t
	for i := 1; i <= degree; i++ {
		if _, err := coeffs[i].SetRandom(); err != nil {
			return nil, err
		}
	}

	return &Polynomial{Coefficients: coeffs}, nil
}

// Degree returns the degree of the polynomial.
func (p *Polynomial) Degree() int {
	return len(p.Coefficients) - 1
}

// Evaluate calculates f(x) in the scalar field using Horner's method:
// f(x) = a_0 + x(a_1 + x(a_2 + ... + x(a_t)))
func (p *Polynomial) Evaluate(x *fr.Element) fr.Element {
	degree := len(p.Coefficients) - 1
	var result fr.Element
	result.Set(&p.Coefficients[degree])

	for i := degree - 1; i >= 0; i-- {
		result.Mul(&result, x)
		result.Add(&result, &p.Coefficients[i])
	}

	return result
}

// EvaluateMulti calculates f(x) for multiple x values.
func (p *Polynomial) EvaluateMulti(xs []fr.Element) []fr.Element {
	results := make([]fr.Element, len(xs))
	for i := range xs {
		results[i] = p.Evaluate(&xs[i])
	}
	return results
}
