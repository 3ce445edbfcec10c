package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ItemResolver maps an item id onto its catalog spelling, reporting false
// for ids the catalog does not declare.
type ItemResolver func(itemID string) (string, bool)

// Recorder counts transfer engine outcomes. It satisfies inventory.Recorder.
type Recorder struct {
	resolve   ItemResolver
	deposited *prometheus.CounterVec
	leftover  *prometheus.CounterVec
	unknown   prometheus.Counter
	swaps     *prometheus.CounterVec
	combined  prometheus.Counter
	transfers *prometheus.CounterVec
}

// NewRecorder registers the engine metrics with reg. Item labels are limited
// to ids resolve accepts; every other id is counted under LabelValueUnknown.
// A nil resolve labels all items as unknown.
func NewRecorder(reg prometheus.Registerer, resolve ItemResolver) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		resolve: resolve,
		deposited: factory.NewCounterVec(
			prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameItemsDeposited, Help: HelpTextItemsDeposited},
			[]string{LabelItem},
		),
		leftover: factory.NewCounterVec(
			prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameDepositLeftover, Help: HelpTextDepositLeftover},
			[]string{LabelItem},
		),
		unknown: factory.NewCounter(
			prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameUnknownItems, Help: HelpTextUnknownItems},
		),
		swaps: factory.NewCounterVec(
			prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameSwaps, Help: HelpTextSwaps},
			[]string{LabelResult},
		),
		combined: factory.NewCounter(
			prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameItemsCombined, Help: HelpTextItemsCombined},
		),
		transfers: factory.NewCounterVec(
			prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameTransfers, Help: HelpTextTransfers},
			[]string{LabelResult},
		),
	}
}

func (r *Recorder) RecordDeposit(itemID string, deposited, leftover int) {
	label := r.itemLabel(itemID)
	if deposited > 0 {
		r.deposited.WithLabelValues(label).Add(float64(deposited))
	}
	if leftover > 0 {
		r.leftover.WithLabelValues(label).Add(float64(leftover))
	}
}

func (r *Recorder) RecordUnknownItem(string) {
	r.unknown.Inc()
}

func (r *Recorder) RecordSwap(accepted bool) {
	r.swaps.WithLabelValues(result(accepted)).Inc()
}

func (r *Recorder) RecordCombine(moved int) {
	if moved > 0 {
		r.combined.Add(float64(moved))
	}
}

func (r *Recorder) RecordTransfer(accepted bool) {
	r.transfers.WithLabelValues(result(accepted)).Inc()
}

// itemLabel bounds the item label to the catalog's ids
func (r *Recorder) itemLabel(itemID string) string {
	if r.resolve == nil {
		return LabelValueUnknown
	}
	if id, ok := r.resolve(itemID); ok {
		return id
	}
	return LabelValueUnknown
}

func result(accepted bool) string {
	if accepted {
		return ResultAccepted
	}
	return ResultRejected
}
