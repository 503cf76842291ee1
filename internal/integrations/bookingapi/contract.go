package bookingapi

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс для метрик обращений к внешнему сервису
type Metrics interface {
	ObserveUpstreamRequest(target, operation, outcome string, duration time.Duration)
}

// nopMetrics заглушка, когда метрики выключены
type nopMetrics struct{}

func (nopMetrics) ObserveUpstreamRequest(string, string, string, time.Duration) {}
