// Package statistics aggregates classification outcomes across many dealt
// hands and provides the exact category probabilities to compare against.
package statistics

import (
	"math"
	"sort"

	"github.com/lox/pokerhands/internal/evaluator"
)

// totalHands is the number of distinct five-card hands, C(52,5).
const totalHands = 2598960

// expectedCounts is the exact number of five-card hands whose best category
// is each category.
var expectedCounts = map[evaluator.Category]uint64{
	evaluator.HighCard:      1302540,
	evaluator.Pair:          1098240,
	evaluator.TwoPair:       123552,
	evaluator.ThreeOfAKind:  54912,
	evaluator.Straight:      10200,
	evaluator.Flush:         5108,
	evaluator.FullHouse:     3744,
	evaluator.FourOfAKind:   624,
	evaluator.StraightFlush: 36,
	evaluator.RoyalFlush:    4,
}

// ExpectedProbability returns the exact probability that a uniformly dealt
// five-card hand's best category is c.
func ExpectedProbability(c evaluator.Category) float64 {
	return float64(expectedCounts[c]) / float64(totalHands)
}

// Tally counts best-category outcomes across dealt hands.
type Tally struct {
	counts map[evaluator.Category]uint64
	total  uint64
}

// NewTally creates an empty tally.
func NewTally() *Tally {
	return &Tally{counts: make(map[evaluator.Category]uint64)}
}

// Add records one dealt hand's best category.
func (t *Tally) Add(c evaluator.Category) {
	t.counts[c]++
	t.total++
}

// Merge folds another tally into this one. Parallel workers tally locally
// and merge on completion.
func (t *Tally) Merge(other *Tally) {
	for c, n := range other.counts {
		t.counts[c] += n
	}
	t.total += other.total
}

// Count returns the number of hands whose best category was c.
func (t *Tally) Count(c evaluator.Category) uint64 {
	return t.counts[c]
}

// Total returns the number of hands recorded.
func (t *Tally) Total() uint64 {
	return t.total
}

// Frequency returns the observed proportion of hands whose best category
// was c.
func (t *Tally) Frequency(c evaluator.Category) float64 {
	if t.total == 0 {
		return 0
	}
	return float64(t.counts[c]) / float64(t.total)
}

// ProportionCI95 returns the 95% confidence interval for the observed
// frequency of c, using the normal approximation clamped to [0, 1].
func (t *Tally) ProportionCI95(c evaluator.Category) (float64, float64) {
	if t.total == 0 {
		return 0, 0
	}
	p := t.Frequency(c)
	margin := 1.96 * math.Sqrt(p*(1-p)/float64(t.total))
	return math.Max(0, p-margin), math.Min(1, p+margin)
}

// Statistics tracks a stream of float64 observations, such as the attempt
// counts of repeated hunts.
type Statistics struct {
	Count  int
	Sum    float64
	Sum2   float64   // Sum of squares for variance calculation
	Values []float64 // Kept for median/percentile calculation
}

// Add incorporates a new observation.
func (s *Statistics) Add(v float64) {
	s.Count++
	s.Sum += v
	s.Sum2 += v * v
	s.Values = append(s.Values, v)
}

// Mean returns the arithmetic mean of all observations
func (s *Statistics) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Sum / float64(s.Count)
}

// Variance returns the sample variance of all observations
func (s *Statistics) Variance() float64 {
	if s.Count < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.Count)*mean*mean) / float64(s.Count-1)
}

// StdDev returns the sample standard deviation of all observations
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Count))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median observation
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the observation at the given percentile (0.0 to 1.0),
// interpolating linearly between neighbours.
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}
