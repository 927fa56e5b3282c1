package logic

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"post_later/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_metrics.go -package mocks post_later/logic IMetrics,IRequestObserver

type IMetrics interface {
	StartApiRequestIn(label string) IRequestObserver
	StartProviderRequestOut(label string) IRequestObserver
	ServiceStarted()
	PostSent()
	PostRetryScheduled()
	PostFailed()
	ThreadSent()
	ThreadHalted()
	BoostSent()
	BoostFailed()
	MediaUploaded()
	OrphanMediaPurged(count int)
	WebhookSent(label string)
	StaleSendsReleased(count int)
	JobQueueLength(length int)
	DueJobCount(count int)
	DbFileSize(size int64)
}

type IRequestObserver interface {
	Finish()
}

type metrics struct {
	cfg                 *shared.Config
	apiRequestsIn       *prometheus.HistogramVec
	providerRequestsOut *prometheus.HistogramVec
	serviceStarted      prometheus.Counter
	postsSent           prometheus.Counter
	postRetries         prometheus.Counter
	postsFailed         prometheus.Counter
	threadsSent         prometheus.Counter
	threadsHalted       prometheus.Counter
	boostsSent          prometheus.Counter
	boostsFailed        prometheus.Counter
	mediaUploaded       prometheus.Counter
	orphansPurged       prometheus.Counter
	webhooksSent        *prometheus.CounterVec
	staleSendsReleased  prometheus.Counter
	jobQueueLength      prometheus.Gauge
	dueJobCount         prometheus.Gauge
	dbFileSize          prometheus.Gauge
}

func NewMetrics(cfg *shared.Config) IMetrics {

	res := metrics{}
	res.cfg = cfg

	res.apiRequestsIn = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "api_requests_in_duration",
		Help: "Duration in seconds of API requests served.",
	}, []string{"label"})
	prometheus.Register(res.apiRequestsIn)

	res.providerRequestsOut = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "provider_requests_out_duration",
		Help: "Duration in seconds of requests made to social providers.",
	}, []string{"label"})
	prometheus.Register(res.providerRequestsOut)

	res.serviceStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "service_started",
		Help: "Service has started up",
	})
	prometheus.Register(res.serviceStarted)

	res.postsSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "posts_sent",
		Help: "Number of scheduled posts sent out",
	})
	prometheus.Register(res.postsSent)

	res.postRetries = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "post_retries_scheduled",
		Help: "Number of retries scheduled after failed sends",
	})
	prometheus.Register(res.postRetries)

	res.postsFailed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "posts_failed",
		Help: "Number of posts that failed terminally",
	})
	prometheus.Register(res.postsFailed)

	res.threadsSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "threads_sent",
		Help: "Number of threads sent out in full",
	})
	prometheus.Register(res.threadsSent)

	res.threadsHalted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "threads_halted",
		Help: "Number of threads halted by a failing member post",
	})
	prometheus.Register(res.threadsHalted)

	res.boostsSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "boosts_sent",
		Help: "Number of scheduled boosts sent out",
	})
	prometheus.Register(res.boostsSent)

	res.boostsFailed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "boosts_failed",
		Help: "Number of boosts that failed terminally",
	})
	prometheus.Register(res.boostsFailed)

	res.mediaUploaded = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "media_uploaded",
		Help: "Number of media attachments uploaded to providers",
	})
	prometheus.Register(res.mediaUploaded)

	res.orphansPurged = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orphan_media_purged",
		Help: "Number of orphaned media attachments deleted",
	})
	prometheus.Register(res.orphansPurged)

	res.webhooksSent = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "webhooks_sent",
		Help: "Number of failure webhooks delivered, by outcome",
	}, []string{"label"})
	prometheus.Register(res.webhooksSent)

	res.staleSendsReleased = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "stale_sends_released",
		Help: "Number of stuck sends recovered by the watchdog",
	})
	prometheus.Register(res.staleSendsReleased)

	res.jobQueueLength = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "job_queue_length",
		Help: "Jobs waiting in the dispatch queue",
	})
	prometheus.Register(res.jobQueueLength)

	res.dueJobCount = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "due_job_count",
		Help: "Due jobs found in the last scheduler sweep",
	})
	prometheus.Register(res.dueJobCount)

	res.dbFileSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "db_file_size",
		Help: "Size of the SQLite database file in bytes",
	})
	prometheus.Register(res.dbFileSize)

	return &res
}

type requestObserver struct {
	label string
	start time.Time
	hgvec *prometheus.HistogramVec
}

func (ro *requestObserver) Finish() {
	now := time.Now()
	elapsed := float64(now.UnixMilli()-ro.start.UnixMilli()) / 1000.0
	ro.hgvec.WithLabelValues(ro.label).Observe(elapsed)
}

func (m *metrics) StartApiRequestIn(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.apiRequestsIn}
}

func (m *metrics) StartProviderRequestOut(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.providerRequestsOut}
}

func (m *metrics) ServiceStarted() {
	m.serviceStarted.Add(1)
}

func (m *metrics) PostSent() {
	m.postsSent.Add(1)
}

func (m *metrics) PostRetryScheduled() {
	m.postRetries.Add(1)
}

func (m *metrics) PostFailed() {
	m.postsFailed.Add(1)
}

func (m *metrics) ThreadSent() {
	m.threadsSent.Add(1)
}

func (m *metrics) ThreadHalted() {
	m.threadsHalted.Add(1)
}

func (m *metrics) BoostSent() {
	m.boostsSent.Add(1)
}

func (m *metrics) BoostFailed() {
	m.boostsFailed.Add(1)
}

func (m *metrics) MediaUploaded() {
	m.mediaUploaded.Add(1)
}

func (m *metrics) OrphanMediaPurged(count int) {
	m.orphansPurged.Add(float64(count))
}

func (m *metrics) WebhookSent(label string) {
	m.webhooksSent.WithLabelValues(label).Add(1)
}

func (m *metrics) StaleSendsReleased(count int) {
	m.staleSendsReleased.Add(float64(count))
}

func (m *metrics) JobQueueLength(length int) {
	m.jobQueueLength.Set(float64(length))
}

func (m *metrics) DueJobCount(count int) {
	m.dueJobCount.Set(float64(count))
}

func (m *metrics) DbFileSize(size int64) {
	m.dbFileSize.Set(float64(size))
}
