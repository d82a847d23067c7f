// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"github.com/luxfi/metric"

	"github.com/luxfi/bondingcurve/utils/wrappers"
)

var _ Metrics = (*metricsImpl)(nil)

type Metrics interface {
	// MarkFeeCharged records a successfully computed owner fee.
	MarkFeeCharged(fee uint64)
	// MarkFeeFailure records a fee computation that had no result.
	MarkFeeFailure()
	// MarkInvalidFees records a fee record rejected by verification.
	MarkInvalidFees()
}

type metricsImpl struct {
	numFeesCharged   metric.Counter
	feeAmount        metric.Counter
	numFeeFailures   metric.Counter
	numInvalidConfig metric.Counter
}

func (m *metricsImpl) MarkFeeCharged(fee uint64) {
	m.numFeesCharged.Inc()
	m.feeAmount.Add(float64(fee))
}

func (m *metricsImpl) MarkFeeFailure() {
	m.numFeeFailures.Inc()
}

func (m *metricsImpl) MarkInvalidFees() {
	m.numInvalidConfig.Inc()
}

func New(registerer metric.Registerer) (Metrics, error) {
	m := &metricsImpl{
		numFeesCharged: metric.NewCounter(metric.CounterOpts{
			Name: "owner_fees_charged",
			Help: "Number of owner trading fees computed",
		}),
		feeAmount: metric.NewCounter(metric.CounterOpts{
			Name: "owner_fee_amount",
			Help: "Cumulative owner trading fees, in base units",
		}),
		numFeeFailures: metric.NewCounter(metric.CounterOpts{
			Name: "owner_fee_failures",
			Help: "Number of owner trading fees that overflowed or divided by zero",
		}),
		numInvalidConfig: metric.NewCounter(metric.CounterOpts{
			Name: "invalid_fee_configs",
			Help: "Number of fee records rejected because the numerator exceeded the denominator",
		}),
	}

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(metric.AsCollector(m.numFeesCharged)),
		registerer.Register(metric.AsCollector(m.feeAmount)),
		registerer.Register(metric.AsCollector(m.numFeeFailures)),
		registerer.Register(metric.AsCollector(m.numInvalidConfig)),
	)
	return m, errs.Err
}
