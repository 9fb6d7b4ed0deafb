// Package metrics 提供基于Prometheus的指标收集
//
// 指标分两类：
//   - HTTP指标（RED）：请求数、耗时、处理中请求数，由HTTP中间件记录
//   - 业务指标：当前图书数量、各类图书操作的结果计数
//
// 命名规范：Counter以_total结尾，Histogram以单位结尾，Gauge使用名词现在时。
//
// # 使用示例
//
//	metrics.InitMetrics()
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
//	metrics.IncCounterVec(metrics.BookOperationsTotal, map[string]string{
//	    "operation": "create",
//	    "result":    "success",
//	})
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	initOnce sync.Once

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数
	// 标签：method、path（路由模板，如/api/books/:id）、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress prometheus.Gauge

	// RateLimitRejectsTotal 被限流拒绝的请求数
	RateLimitRejectsTotal prometheus.Counter

	// PanicRecoveriesTotal 被恢复的panic次数
	PanicRecoveriesTotal prometheus.Counter

	// 业务指标

	// BooksStored 当前存储的图书数量（不含空槽位）
	BooksStored prometheus.Gauge

	// BookOperationsTotal 图书操作总数
	// 标签：operation（list/create/get/update/replace/delete）、result（success/failure）
	BookOperationsTotal *prometheus.CounterVec
)

// InitMetrics 初始化并注册所有指标到默认Registry
// 可重复调用，只有第一次生效
func InitMetrics() {
	initOnce.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "http_request_duration_seconds",
				Help: "HTTP请求耗时（秒）",
				// 内存操作，桶从0.1ms开始
				Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1, 5},
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		RateLimitRejectsTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "http_rate_limit_rejects_total",
				Help: "被限流拒绝的请求总数",
			},
		)

		PanicRecoveriesTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "http_panic_recoveries_total",
				Help: "HTTP处理中恢复的panic总数",
			},
		)

		BooksStored = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "books_stored",
				Help: "当前存储的图书数量",
			},
		)

		BookOperationsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "book_operations_total",
				Help: "图书操作总数",
			},
			[]string{"operation", "result"},
		)
	})
}

// IncCounter 递增Counter
func IncCounter(counter prometheus.Counter) {
	if counter == nil {
		return
	}
	counter.Inc()
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	if counter == nil {
		return
	}
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	if gauge == nil {
		return
	}
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	if gauge == nil {
		return
	}
	gauge.Dec()
}

// SetGauge 设置Gauge值
func SetGauge(gauge prometheus.Gauge, value float64) {
	if gauge == nil {
		return
	}
	gauge.Set(value)
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	if histogram == nil {
		return
	}
	histogram.With(labels).Observe(value)
}

// RecordBookOperation 记录一次图书操作结果
func RecordBookOperation(operation string, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	IncCounterVec(BookOperationsTotal, map[string]string{
		"operation": operation,
		"result":    result,
	})
}
