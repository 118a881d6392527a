package iim_test

import (
	"testing"

	"github.com/iimkit/iim/iim"
	"github.com/iimkit/iim/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInoperabilityPublishedExample checks q against the values
// published for the two-infrastructure example: a 60% SCADA degradation
// yields q ≈ [0.571, 0.714].
func TestInoperabilityPublishedExample(t *testing.T) {
	m := mustModel(t, twoSectors, twoSectorStar(t), iim.Interdependency, iim.Demand, scadaDown)

	// S = (I − A*)⁻¹ with det(I − A*) = 1 − 0.16 = 0.84:
	// q(SCADA) = 0.6/0.84, q(Power) = 0.8·q(SCADA).
	assertVecInDelta(t, []float64{0.571429, 0.714286}, m.Inoperability(), 1e-6)
}

// TestInoperabilityZeroBaseline: no perturbation, no inoperability, in
// both modes.
func TestInoperabilityZeroBaseline(t *testing.T) {
	for _, mode := range []iim.Mode{iim.Demand, iim.Supply} {
		m := mustModel(t, twoSectors, twoSectorRaw(t), iim.RawTable, mode, nil)
		assertVecInDelta(t, []float64{0, 0}, m.Inoperability(), 0)
	}
}

// TestInoperabilityClamped: a strongly coupled economy drives raw q
// above 1; the report caps it at full inoperability.
func TestInoperabilityClamped(t *testing.T) {
	star, err := matrix.NewDenseFromRows([][]float64{
		{0, 0.8},
		{0.7, 0},
	})
	require.NoError(t, err)

	m := mustModel(t, twoSectors, star, iim.Interdependency, iim.Demand, scadaDown)

	// Unclamped q = [0.48/0.44, 0.60/0.44] ≈ [1.09, 1.36].
	q := m.Inoperability()
	assertVecInDelta(t, []float64{1, 1}, q, 0)
}

// TestDependencyInfluence checks the first-order index family on the
// two-sector operator, where N−1 = 1 makes the averages immediate.
func TestDependencyInfluence(t *testing.T) {
	m := mustModel(t, twoSectors, twoSectorStar(t), iim.Interdependency, iim.Demand, nil)

	dep, err := m.Dependency()
	require.NoError(t, err)
	assertVecInDelta(t, []float64{0.8, 0.2}, dep, 1e-12)

	infl, err := m.Influence()
	require.NoError(t, err)
	assertVecInDelta(t, []float64{0.2, 0.8}, infl, 1e-12)

	// Overall variants average the resolvent S = [[1, 0.8], [0.2, 1]]/0.84.
	odep, err := m.OverallDependency()
	require.NoError(t, err)
	assertVecInDelta(t, []float64{0.8 / 0.84, 0.2 / 0.84}, odep, 1e-9)

	oinfl, err := m.OverallInfluence()
	require.NoError(t, err)
	assertVecInDelta(t, []float64{0.2 / 0.84, 0.8 / 0.84}, oinfl, 1e-9)
}

// TestDependencyThreeSectors pins the n−1 normalization on a case where
// it differs from a plain row sum.
func TestDependencyThreeSectors(t *testing.T) {
	star, err := matrix.NewDenseFromRows([][]float64{
		{0, 0.4, 0.2},
		{0.1, 0, 0.3},
		{0, 0.2, 0},
	})
	require.NoError(t, err)

	m := mustModel(t, []string{"Power", "SCADA", "Water"}, star,
		iim.Interdependency, iim.Demand, nil)

	dep, err := m.Dependency()
	require.NoError(t, err)
	assertVecInDelta(t, []float64{0.3, 0.2, 0.1}, dep, 1e-12)

	infl, err := m.Influence()
	require.NoError(t, err)
	assertVecInDelta(t, []float64{0.05, 0.3, 0.25}, infl, 1e-12)
}

// TestIndicesSupplyModeUnsupported: the index family is defined only
// for the demand-driven model.
func TestIndicesSupplyModeUnsupported(t *testing.T) {
	m := mustModel(t, twoSectors, twoSectorRaw(t), iim.RawTable, iim.Supply, scadaDown)

	_, err := m.Dependency()
	assert.ErrorIs(t, err, iim.ErrUnsupportedMode)
	_, err = m.OverallDependency()
	assert.ErrorIs(t, err, iim.ErrUnsupportedMode)
	_, err = m.Influence()
	assert.ErrorIs(t, err, iim.ErrUnsupportedMode)
	_, err = m.OverallInfluence()
	assert.ErrorIs(t, err, iim.ErrUnsupportedMode)
	_, err = m.Get("SCADA")
	assert.ErrorIs(t, err, iim.ErrUnsupportedMode)

	// Inoperability remains defined in supply mode.
	assert.Len(t, m.Inoperability(), 2)
}

// TestIndicesSingleSector: one sector has no off-diagonal couplings.
func TestIndicesSingleSector(t *testing.T) {
	star, err := matrix.NewDenseFromRows([][]float64{{0.5}})
	require.NoError(t, err)

	m := mustModel(t, []string{"Power"}, star, iim.Interdependency, iim.Demand,
		[]iim.Perturbation{{Sector: "Power", Fraction: 0.3}})

	dep, err := m.Dependency()
	require.NoError(t, err)
	assertVecInDelta(t, []float64{0}, dep, 0)

	infl, err := m.OverallInfluence()
	require.NoError(t, err)
	assertVecInDelta(t, []float64{0}, infl, 0)

	// q = 0.3 / (1 − 0.5).
	assertVecInDelta(t, []float64{0.6}, m.Inoperability(), 1e-12)
}

// TestInterdependencyIndex walks the order ladder on the two-sector
// operator: identity at 0, the direct coupling at 1, A*² at 2.
func TestInterdependencyIndex(t *testing.T) {
	m := mustModel(t, twoSectors, twoSectorStar(t), iim.Interdependency, iim.Demand, nil)

	v, err := m.InterdependencyIndex("Power", "Power", 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "order 0 is the identity diagonal")

	v, err = m.InterdependencyIndex("Power", "SCADA", 0)
	require.NoError(t, err)
	assert.Zero(t, v, "order 0 off-diagonal")

	v, err = m.InterdependencyIndex("Power", "SCADA", 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.8, v, 1e-12)

	// A*² = 0.16·I for this operator.
	v, err = m.InterdependencyIndex("Power", "Power", 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.16, v, 1e-12)
	v, err = m.InterdependencyIndex("Power", "SCADA", 2)
	require.NoError(t, err)
	assert.InDelta(t, 0, v, 1e-12)

	_, err = m.InterdependencyIndex("Power", "SCADA", -1)
	assert.ErrorIs(t, err, iim.ErrInvalidOrder)
	_, err = m.InterdependencyIndex("Gas", "SCADA", 1)
	assert.ErrorIs(t, err, iim.ErrUnknownSector)
	_, err = m.InterdependencyIndex("Power", "Gas", 1)
	assert.ErrorIs(t, err, iim.ErrUnknownSector)
}

// TestMaxNthOrderInterdependency checks the per-row argmax and its
// first-maximum tie policy.
func TestMaxNthOrderInterdependency(t *testing.T) {
	m := mustModel(t, twoSectors, twoSectorStar(t), iim.Interdependency, iim.Demand, nil)

	maxes, err := m.MaxNthOrderInterdependency(1)
	require.NoError(t, err)
	assert.Equal(t, []iim.MaxInterdependency{
		{SectorI: "Power", SectorJ: "SCADA", Value: 0.8},
		{SectorI: "SCADA", SectorJ: "Power", Value: 0.2},
	}, maxes)

	// Order 2 is diagonal (0.16·I): each sector's strongest two-hop
	// partner is itself.
	maxes, err = m.MaxNthOrderInterdependency(2)
	require.NoError(t, err)
	require.Len(t, maxes, 2)
	assert.Equal(t, "Power", maxes[0].SectorJ)
	assert.Equal(t, "SCADA", maxes[1].SectorJ)
	assert.InDelta(t, 0.16, maxes[0].Value, 1e-12)

	_, err = m.MaxNthOrderInterdependency(0)
	assert.ErrorIs(t, err, iim.ErrInvalidOrder)
}

// TestMaxNthOrderTieBreak: an all-equal row must resolve to the lowest
// column index so repeated runs produce identical reports.
func TestMaxNthOrderTieBreak(t *testing.T) {
	star, err := matrix.NewDenseFromRows([][]float64{
		{0.3, 0.3, 0.3},
		{0, 0, 0},
		{0.1, 0.3, 0.3},
	})
	require.NoError(t, err)

	m := mustModel(t, []string{"Power", "SCADA", "Water"}, star,
		iim.Interdependency, iim.Demand, nil)

	maxes, err := m.MaxNthOrderInterdependency(1)
	require.NoError(t, err)
	assert.Equal(t, "Power", maxes[0].SectorJ, "uniform row ties to first column")
	assert.Equal(t, "Power", maxes[1].SectorJ, "all-zero row ties to first column")
	assert.Zero(t, maxes[1].Value)
	assert.Equal(t, "SCADA", maxes[2].SectorJ, "tie after a smaller entry")
}

// TestGetBundlesIndices: Get must agree with the individual accessors.
func TestGetBundlesIndices(t *testing.T) {
	m := mustModel(t, twoSectors, twoSectorStar(t), iim.Interdependency, iim.Demand, scadaDown)

	report, err := m.Get("SCADA")
	require.NoError(t, err)

	q := m.Inoperability()
	dep, err := m.Dependency()
	require.NoError(t, err)
	odep, err := m.OverallDependency()
	require.NoError(t, err)
	infl, err := m.Influence()
	require.NoError(t, err)
	oinfl, err := m.OverallInfluence()
	require.NoError(t, err)

	assert.Equal(t, q[1], report.Inoperability)
	assert.Equal(t, dep[1], report.Dependency)
	assert.Equal(t, odep[1], report.OverallDependency)
	assert.Equal(t, infl[1], report.Influence)
	assert.Equal(t, oinfl[1], report.OverallInfluence)

	_, err = m.Get("Gas")
	assert.ErrorIs(t, err, iim.ErrUnknownSector)
}
