package logic

import (
	"math/rand"
	"os"
	"sort"
	"time"

	"post_later/dal"
	"post_later/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_scheduler.go -package mocks post_later/logic IScheduler

const sweepBatchSize = 50
const panicSleepSec = 10

type IScheduler interface {
	// FindJobs scans for due posts, threads and boosts and hands them to
	// the dispatcher, oldest first. Returns how many it enqueued.
	FindJobs(now time.Time) (int, error)
	// ReconcileStale returns sends stuck in 'sending' past the lease to
	// the retry queue. The next sweep picks them up again.
	ReconcileStale(now time.Time) (int64, error)
}

type scheduler struct {
	cfg             *shared.Config
	logger          shared.ILogger
	clock           shared.IClock
	repo            dal.IRepo
	dispatcher      IDispatcher
	directory       IAccountDirectory
	staging         IMediaStaging
	metrics         IMetrics
	rng             *rand.Rand
	nextOrphanPurge time.Time
}

func NewScheduler(
	cfg *shared.Config,
	logger shared.ILogger,
	clock shared.IClock,
	repo dal.IRepo,
	dispatcher IDispatcher,
	directory IAccountDirectory,
	staging IMediaStaging,
	metrics IMetrics,
) IScheduler {

	s := scheduler{
		cfg:        cfg,
		logger:     logger,
		clock:      clock,
		repo:       repo,
		dispatcher: dispatcher,
		directory:  directory,
		staging:    staging,
		metrics:    metrics,
	}

	s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	// First orphan sweep shortly after startup, then daily with jitter
	s.nextOrphanPurge = clock.Now().Add(5 * time.Minute)

	s.updateDbSizeMetric()
	go s.jobSweepLoop()
	go s.maintenanceLoop()

	return &s
}

func (s *scheduler) FindJobs(now time.Time) (int, error) {

	posts, err := s.repo.GetDuePosts(now, sweepBatchSize)
	if err != nil {
		return 0, err
	}
	threads, err := s.repo.GetDueThreads(now, sweepBatchSize)
	if err != nil {
		return 0, err
	}
	boosts, err := s.repo.GetDueBoosts(now, sweepBatchSize)
	if err != nil {
		return 0, err
	}

	total := len(posts) + len(threads) + len(boosts)
	s.metrics.DueJobCount(total)
	if total == 0 {
		return 0, nil
	}

	type dueJob struct {
		due    time.Time
		id     int64
		kind   string
		post   *dal.ScheduledPost
		thread *dal.ScheduledThread
	}
	jobs := make([]dueJob, 0, total)
	for _, p := range posts {
		jobs = append(jobs, dueJob{due: postDue(p), id: p.Id, kind: jobKindPost, post: p})
	}
	for _, t := range threads {
		jobs = append(jobs, dueJob{due: threadDue(t), id: t.Id, kind: jobKindThread, thread: t})
	}
	for _, p := range boosts {
		jobs = append(jobs, dueJob{due: *p.BoostDueAt, id: p.Id, kind: jobKindBoost, post: p})
	}
	sort.Slice(jobs, func(i, j int) bool {
		if jobs[i].due.Equal(jobs[j].due) {
			return jobs[i].id < jobs[j].id
		}
		return jobs[i].due.Before(jobs[j].due)
	})

	for _, j := range jobs {
		switch j.kind {
		case jobKindPost:
			s.dispatcher.EnqueuePosts([]*dal.ScheduledPost{j.post})
		case jobKindThread:
			s.dispatcher.EnqueueThreads([]*dal.ScheduledThread{j.thread})
		case jobKindBoost:
			s.dispatcher.EnqueueBoosts([]*dal.ScheduledPost{j.post})
		}
	}
	return total, nil
}

// postDue is when a post actually wants to go out: its scheduled time,
// or the backoff-delayed next attempt after failures.
func postDue(p *dal.ScheduledPost) time.Time {
	if p.NextAttemptAt != nil {
		return *p.NextAttemptAt
	}
	return p.SendAt
}

func threadDue(t *dal.ScheduledThread) time.Time {
	if t.NextAttemptAt != nil {
		return *t.NextAttemptAt
	}
	return t.SendAt
}

func (s *scheduler) ReconcileStale(now time.Time) (int64, error) {

	cutoff := now.Add(-time.Duration(s.cfg.Schedule.JobLeaseSecs) * time.Second)
	nPosts, err := s.repo.ReleaseStalePosts(cutoff, now)
	if err != nil {
		return 0, err
	}
	nThreads, err := s.repo.ReleaseStaleThreads(cutoff, now)
	if err != nil {
		return nPosts, err
	}
	n := nPosts + nThreads
	if n > 0 {
		s.logger.Warnf("Watchdog released %d sends stuck past their lease", n)
		s.metrics.StaleSendsReleased(int(n))
	}
	return n, nil
}

func (s *scheduler) jobSweepLoop() {

	// Zero tick means the loops are off, as in unit test configs
	tick := time.Duration(s.cfg.Schedule.TickSecs) * time.Second
	if tick <= 0 {
		return
	}
	for {
		s.sweepOnce()
		time.Sleep(tick)
	}
}

func (s *scheduler) sweepOnce() {

	defer func() {
		if r := recover(); r != nil {
			s.logger.Errorf("Job sweep panicked: %v", r)
			s.logger.Infof("Sleeping %d seconds after panic", panicSleepSec)
			time.Sleep(time.Second * panicSleepSec)
		}
	}()

	n, err := s.FindJobs(s.clock.Now())
	if err != nil {
		s.logger.Errorf("Failed to find due jobs: %v", err)
		return
	}
	if n > 0 {
		s.logger.Debugf("Enqueued %d due jobs", n)
	}
}

func (s *scheduler) maintenanceLoop() {

	tick := time.Duration(s.cfg.Schedule.TickSecs) * time.Second
	if tick <= 0 {
		return
	}
	for {
		s.maintenanceOnce()
		s.updateDbSizeMetric()
		time.Sleep(tick)
	}
}

func (s *scheduler) maintenanceOnce() {

	defer func() {
		if r := recover(); r != nil {
			s.logger.Errorf("Maintenance cycle panicked: %v", r)
			s.logger.Infof("Sleeping %d seconds after panic", panicSleepSec)
			time.Sleep(time.Second * panicSleepSec)
		}
	}()

	if _, err := s.ReconcileStale(s.clock.Now()); err != nil {
		s.logger.Errorf("Watchdog pass failed: %v", err)
	}

	// One avatar per pass keeps provider traffic negligible
	if _, err := s.directory.RefreshNextStaleAvatar(); err != nil {
		s.logger.Errorf("Failed to refresh stale avatar: %v", err)
	}

	if s.clock.Now().After(s.nextOrphanPurge) {
		go func() {
			if _, err := s.staging.CleanOrphans(); err != nil {
				s.logger.Errorf("Failed to clean orphan media: %v", err)
			}
		}()
		hours := 24.0 * (0.8 + 0.4*s.rng.Float64())
		s.nextOrphanPurge = s.clock.Now().Add(time.Duration(float64(time.Hour) * hours))
	}
}

func (s *scheduler) updateDbSizeMetric() {

	// In case the scheduler is running on a mock config in a unit test: don't bother
	if s.cfg.DbFile == "" {
		return
	}

	var err error
	var fi os.FileInfo
	fi, err = os.Stat(s.cfg.DbFile)
	if err != nil {
		s.logger.Errorf("Error getting DB file size: %v", err)
		return
	}
	s.metrics.DbFileSize(fi.Size())
}
