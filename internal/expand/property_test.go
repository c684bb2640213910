package expand

import (
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestExpansionProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	cfg := twoCategoryConfig(t)

	// Digits interleaved with letters are concatenated in order.
	properties.Property("label number concatenates digits", prop.ForAll(
		func(digits []rune, filler string) bool {
			var b strings.Builder
			b.WriteString(filler)
			for _, d := range digits {
				b.WriteRune(d)
				b.WriteString(filler)
			}
			want, err := strconv.Atoi(string(digits))
			if err != nil {
				return false
			}
			return ExtractLabelNumber(b.String()) == want
		},
		gen.SliceOfN(12, gen.NumChar()),
		gen.AlphaString(),
	))

	properties.Property("labels without digits yield NoNumber", prop.ForAll(
		func(label string) bool {
			return ExtractLabelNumber(label) == NoNumber
		},
		gen.AlphaString(),
	))

	properties.Property("classification is deterministic", prop.ForAll(
		func(n int) bool {
			return cfg.Classify(n) == cfg.Classify(n)
		},
		gen.IntRange(-10, 100),
	))

	properties.Property("expansion count equals catalog size", prop.ForAll(
		func(label string) bool {
			p := Point{Label: label}
			out := cfg.Expand(p)
			return len(out) == len(cfg.Lookup(cfg.ClassifyPoint(p)))
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
