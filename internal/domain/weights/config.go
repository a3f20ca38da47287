// Package weights validates weight configurations and aggregates factor
// scores into a single weighted total.
package weights

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/okian/homerank/internal/domain/model"
)

// Tolerance is the permitted deviation of the weight sum from 100.
const Tolerance = 0.01

const targetSum = 100.0

// Config maps each of the eight factors to a percentage weight. A valid
// configuration has every factor present, no negative weight, and a sum of
// 100 within Tolerance. The engine never renormalizes; auto-balancing sliders
// is a presentation concern layered outside this contract.
type Config map[model.Factor]float64

// Validate checks the configuration and wraps ErrInvalidConfig with the
// specific defect on failure. It never mutates the configuration.
func (c Config) Validate() error {
	for _, f := range model.AllFactors() {
		w, ok := c[f]
		if !ok {
			return fmt.Errorf("%w: missing factor %q", ErrInvalidConfig, f)
		}
		if w < 0 {
			return fmt.Errorf("%w: negative weight %.2f for factor %q", ErrInvalidConfig, w, f)
		}
	}
	if len(c) != len(model.AllFactors()) {
		return fmt.Errorf("%w: unknown factor present", ErrInvalidConfig)
	}
	sum := 0.0
	for _, w := range c {
		sum += w
	}
	if math.Abs(sum-targetSum) > Tolerance {
		return fmt.Errorf("%w: weights sum to %.2f, must equal %.0f", ErrInvalidConfig, sum, targetSum)
	}
	return nil
}

// Clone returns an independent copy of the configuration.
func (c Config) Clone() Config {
	out := make(Config, len(c))
	for f, w := range c {
		out[f] = w
	}
	return out
}

// Signature returns a canonical, order-independent cache signature: the
// sorted (factor, weight) tuples hashed and hex-truncated. Equality is exact
// per-weight equality; no floating tolerance applies beyond what validation
// already accepted.
func (c Config) Signature() string {
	parts := make([]string, 0, len(c))
	for f, w := range c {
		parts = append(parts, fmt.Sprintf("%s:%.6f", f, w))
	}
	sort.Strings(parts)
	sum := sha256.Sum256([]byte(strings.Join(parts, ",")))
	return hex.EncodeToString(sum[:])[:16]
}
