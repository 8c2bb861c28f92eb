package joincode

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

const (
	Length = 6

	defaultMaxAttempts = 10
)

var (
	ErrExhausted = errors.New("could not generate an unused join code")

	space = big.NewInt(1_000_000)
)

// Generate returns a uniformly random, zero-padded 6-digit code.
func Generate() (string, error) {
	return generate(rand.Reader)
}

func generate(r io.Reader) (string, error) {
	n, err := rand.Int(r, space)
	if err != nil {
		return "", fmt.Errorf("failed to generate join code: %w", err)
	}
	return fmt.Sprintf("%0*d", Length, n.Int64()), nil
}

// Valid reports whether code has the join-code shape. It says nothing about whether the code is current.
func Valid(code string) bool {
	if len(code) != Length {
		return false
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// ExistsFunc reports whether a code is already held by some business.
type ExistsFunc func(ctx context.Context, code string) (bool, error)

// Generator draws codes that no other business currently holds.
type Generator struct {
	exists      ExistsFunc
	rand        io.Reader
	maxAttempts int
}

func NewGenerator(exists ExistsFunc, maxAttempts int) *Generator {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	return &Generator{exists: exists, rand: rand.Reader, maxAttempts: maxAttempts}
}

func (g *Generator) Next(ctx context.Context) (string, error) {
	for i := 0; i < g.maxAttempts; i++ {
		code, err := generate(g.rand)
		if err != nil {
			return "", err
		}
		if g.exists == nil {
			return code, nil
		}
		taken, err := g.exists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check join code: %w", err)
		}
		if !taken {
			return code, nil
		}
	}
	return "", ErrExhausted
}
