package test

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"post_later/dal"
	"post_later/logic"
	"post_later/shared"
	"post_later/test/mocks"
	"testing"
	"time"
)

type schedulerHarness struct {
	cfg            *shared.Config
	clock          *testClock
	mockLogger     *mocks.MockILogger
	mockRepo       *mocks.MockIRepo
	mockDispatcher *mocks.MockIDispatcher
	mockDirectory  *mocks.MockIAccountDirectory
	mockStaging    *mocks.MockIMediaStaging
	mockMetrics    *mocks.MockIMetrics
}

func setupSchedulerTest(t *testing.T) (*gomock.Controller, *schedulerHarness, logic.IScheduler) {

	ctrl := gomock.NewController(t)

	h := &schedulerHarness{
		cfg: &shared.Config{
			Schedule: shared.ScheduleConfig{JobLeaseSecs: 1800},
		},
		clock:          &testClock{now: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)},
		mockLogger:     mocks.NewMockILogger(ctrl),
		mockRepo:       mocks.NewMockIRepo(ctrl),
		mockDispatcher: mocks.NewMockIDispatcher(ctrl),
		mockDirectory:  mocks.NewMockIAccountDirectory(ctrl),
		mockStaging:    mocks.NewMockIMediaStaging(ctrl),
		mockMetrics:    mocks.NewMockIMetrics(ctrl),
	}
	setupDummyLogger(h.mockLogger)
	setupDummyMetrics(h.mockMetrics)

	sched := logic.NewScheduler(h.cfg, h.mockLogger, h.clock, h.mockRepo, h.mockDispatcher,
		h.mockDirectory, h.mockStaging, h.mockMetrics)

	return ctrl, h, sched
}

func checkPostIds(ids []int64) func(x any) bool {
	res := func(x any) bool {
		posts, ok := x.([]*dal.ScheduledPost)
		if !ok || len(posts) != len(ids) {
			return false
		}
		for i := 0; i < len(posts); i++ {
			if posts[i].Id != ids[i] {
				return false
			}
		}
		return true
	}
	return res
}

func checkThreadIds(ids []int64) func(x any) bool {
	res := func(x any) bool {
		threads, ok := x.([]*dal.ScheduledThread)
		if !ok || len(threads) != len(ids) {
			return false
		}
		for i := 0; i < len(threads); i++ {
			if threads[i].Id != ids[i] {
				return false
			}
		}
		return true
	}
	return res
}

func Test_Scheduler_Find_Jobs_Enqueues_Oldest_First(t *testing.T) {

	ctrl, h, sched := setupSchedulerTest(t)
	defer ctrl.Finish()

	now := h.clock.now

	// Post A has been due the longest. Post B was scheduled earlier than
	// anything else, but it failed once and now waits for its next attempt.
	nextAttempt := now.Add(-time.Minute)
	postA := &dal.ScheduledPost{Id: 11, AccountId: 17, Status: dal.StatusPending,
		SendAt: now.Add(-3 * time.Minute)}
	postB := &dal.ScheduledPost{Id: 12, AccountId: 17, Status: dal.StatusRetrying, Retries: 1,
		SendAt: now.Add(-10 * time.Minute), NextAttemptAt: &nextAttempt}

	// The boost and the thread are due at the same moment; the lower ID
	// breaks the tie
	boostDue := now.Add(-2 * time.Minute)
	boostC := &dal.ScheduledPost{Id: 5, AccountId: 17, Status: dal.StatusSent,
		RemoteId: "r-5", BoostDueAt: &boostDue}
	thread := &dal.ScheduledThread{Id: 21, AccountId: 17, Status: dal.StatusPending,
		SendAt: now.Add(-2 * time.Minute)}

	h.mockRepo.EXPECT().GetDuePosts(gomock.Eq(now), gomock.Any()).
		Return([]*dal.ScheduledPost{postA, postB}, nil)
	h.mockRepo.EXPECT().GetDueThreads(gomock.Eq(now), gomock.Any()).
		Return([]*dal.ScheduledThread{thread}, nil)
	h.mockRepo.EXPECT().GetDueBoosts(gomock.Eq(now), gomock.Any()).
		Return([]*dal.ScheduledPost{boostC}, nil)
	h.mockMetrics.EXPECT().DueJobCount(gomock.Eq(4))

	gomock.InOrder(
		h.mockDispatcher.EXPECT().EnqueuePosts(gomock.Cond(checkPostIds([]int64{11}))),
		h.mockDispatcher.EXPECT().EnqueueBoosts(gomock.Cond(checkPostIds([]int64{5}))),
		h.mockDispatcher.EXPECT().EnqueueThreads(gomock.Cond(checkThreadIds([]int64{21}))),
		h.mockDispatcher.EXPECT().EnqueuePosts(gomock.Cond(checkPostIds([]int64{12}))),
	)

	n, err := sched.FindJobs(now)
	assert.Nil(t, err)
	assert.Equal(t, 4, n)
}

func Test_Scheduler_Find_Jobs_Nothing_Due(t *testing.T) {

	ctrl, h, sched := setupSchedulerTest(t)
	defer ctrl.Finish()

	now := h.clock.now
	h.mockRepo.EXPECT().GetDuePosts(gomock.Eq(now), gomock.Any()).Return(nil, nil)
	h.mockRepo.EXPECT().GetDueThreads(gomock.Eq(now), gomock.Any()).Return(nil, nil)
	h.mockRepo.EXPECT().GetDueBoosts(gomock.Eq(now), gomock.Any()).Return(nil, nil)
	h.mockMetrics.EXPECT().DueJobCount(gomock.Eq(0))

	n, err := sched.FindJobs(now)
	assert.Nil(t, err)
	assert.Equal(t, 0, n)
}

func Test_Scheduler_Find_Jobs_Propagates_Repo_Error(t *testing.T) {

	ctrl, h, sched := setupSchedulerTest(t)
	defer ctrl.Finish()

	now := h.clock.now
	h.mockRepo.EXPECT().GetDuePosts(gomock.Eq(now), gomock.Any()).
		Return(nil, errors.New("database is locked"))

	n, err := sched.FindJobs(now)
	assert.NotNil(t, err)
	assert.Equal(t, 0, n)
}

func Test_Scheduler_Reconcile_Stale_Releases_Expired_Leases(t *testing.T) {

	ctrl, h, sched := setupSchedulerTest(t)
	defer ctrl.Finish()

	// Claims older than the lease go back to retrying, due immediately
	now := h.clock.now
	cutoff := now.Add(-1800 * time.Second)
	h.mockRepo.EXPECT().ReleaseStalePosts(gomock.Eq(cutoff), gomock.Eq(now)).Return(int64(2), nil)
	h.mockRepo.EXPECT().ReleaseStaleThreads(gomock.Eq(cutoff), gomock.Eq(now)).Return(int64(1), nil)
	h.mockMetrics.EXPECT().StaleSendsReleased(gomock.Eq(3))

	n, err := sched.ReconcileStale(now)
	assert.Nil(t, err)
	assert.Equal(t, int64(3), n)
}

func Test_Scheduler_Reconcile_Stale_Quiet_When_Nothing_Stuck(t *testing.T) {

	ctrl, h, sched := setupSchedulerTest(t)
	defer ctrl.Finish()

	now := h.clock.now
	cutoff := now.Add(-1800 * time.Second)
	h.mockRepo.EXPECT().ReleaseStalePosts(gomock.Eq(cutoff), gomock.Eq(now)).Return(int64(0), nil)
	h.mockRepo.EXPECT().ReleaseStaleThreads(gomock.Eq(cutoff), gomock.Eq(now)).Return(int64(0), nil)

	n, err := sched.ReconcileStale(now)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), n)
}
