package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	Namespace = "corekv"

	SubsystemCommon   = "base"
	SubsystemIterator = "iterator"
	SubsystemSnapshot = "snapshot"

	LabelCallMethod = "method"
	LabelErrorCode  = "code"
	LabelCursorOp   = "op"

	LabelModule = "module"
	LabelHandle = "handle"
)

var DefBuckets = []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5}

// base
var (
	// 字节量
	BytesCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: SubsystemCommon,
			Name:      "handle_bytes",
			Help:      "Total size of bytes.",
		},
		[]string{LabelModule, LabelCallMethod, LabelHandle})
	// 函数调用
	CallMethodCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: SubsystemCommon,
			Name:      "call_method_total",
			Help:      "Total number of call method.",
		},
		[]string{LabelModule, LabelCallMethod, LabelErrorCode})
	CallMethodHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: SubsystemCommon,
			Name:      "call_method_seconds",
			Help:      "Histogram of call method cost latency.",
			Buckets:   DefBuckets,
		},
		[]string{LabelModule, LabelCallMethod})
)

// iterator
var (
	// 未释放的游标数
	OpenCursorGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: SubsystemIterator,
			Name:      "open_cursors",
			Help:      "Number of cursors not yet released.",
		})
	CursorMoveCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: SubsystemIterator,
			Name:      "cursor_moves_total",
			Help:      "Total number of cursor positioning calls.",
		},
		[]string{LabelCursorOp})
)

// snapshot
var (
	LeasedSnapshotGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: SubsystemSnapshot,
			Name:      "leased",
			Help:      "Number of leased snapshots.",
		})
)

// Register adds every collector to reg.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		BytesCounter,
		CallMethodCounter,
		CallMethodHistogram,
		OpenCursorGauge,
		CursorMoveCounter,
		LeasedSnapshotGauge,
	} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return err
		}
	}
	return nil
}

func RegisterMetrics() {
	if err := Register(prometheus.DefaultRegisterer); err != nil {
		panic(err)
	}
}
