package bench_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/sortlab/bench"
	"github.com/katalvlaran/sortlab/sorting"
)

// RunAllSuite exercises the orchestrator over a fixed dataset shared by
// every test, one fresh result batch per test.
type RunAllSuite struct {
	suite.Suite
	data    []int
	results []bench.Result
}

func (s *RunAllSuite) SetupTest() {
	s.data = randomInts(60, 99)
	var err error
	s.results, err = bench.RunAll(s.data, compareInts, "random", bench.DefaultOptions[int]())
	s.Require().NoError(err)
}

func (s *RunAllSuite) TestSuiteOrder() {
	s.Require().Len(s.results, sorting.SuiteSize)
	for i, d := range sorting.Suite[int]() {
		s.Equal(d.Name, s.results[i].Algorithm)
	}
}

func (s *RunAllSuite) TestResultInvariants() {
	for _, r := range s.results {
		s.Positive(int64(r.Duration), r.Algorithm)
		s.GreaterOrEqual(r.Comparisons, int64(0), r.Algorithm)
		s.GreaterOrEqual(r.Swaps, int64(0), r.Algorithm)
		s.GreaterOrEqual(r.Moves, int64(0), r.Algorithm)
		s.Equal(len(s.data), r.Size, r.Algorithm)
	}
}

func (s *RunAllSuite) TestCountersDifferAcrossAlgorithms() {
	// On random input the seven algorithms cannot all share one
	// comparison count.
	counts := make(map[int64]struct{})
	for _, r := range s.results {
		counts[r.Comparisons] = struct{}{}
	}
	s.Greater(len(counts), 1)
}

func TestRunAllSuite(t *testing.T) {
	suite.Run(t, new(RunAllSuite))
}
