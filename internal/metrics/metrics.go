package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector собирает служебные счётчики сервера
type Collector struct {
	registry       *prometheus.Registry
	httpStatus     *prometheus.CounterVec
	coursesCreated prometheus.Counter
	bidsSubmitted  prometheus.Counter
}

// NewCollector создает Collector и регистрирует метрики
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "achieveit_http_responses_total",
			Help: "Количество ответов по кодам статуса",
		}, []string{"status_code"}),
		coursesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "achieveit_courses_created_total",
			Help: "Количество созданных курсов",
		}),
		bidsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "achieveit_bids_submitted_total",
			Help: "Количество поданных предложений",
		}),
	}
	c.registry.MustRegister(c.httpStatus, c.coursesCreated, c.bidsSubmitted)
	return c
}

func (c *Collector) RecordCourseCreated() {
	c.coursesCreated.Inc()
}

func (c *Collector) RecordBidSubmitted() {
	c.bidsSubmitted.Inc()
}

// Handler отдает метрики в формате prometheus
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// statusRecorder перехватывает код статуса ответа
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware считает ответы сервера по кодам статуса
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		c.httpStatus.WithLabelValues(strconv.Itoa(rec.status)).Inc()
	})
}
