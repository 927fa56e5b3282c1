package test

import (
	"errors"
	"go.uber.org/mock/gomock"
	"post_later/dal"
	"post_later/logic"
	"testing"
	"time"
)

// makeThreadFixture builds a three-post thread of which the first member
// already went out in an earlier run.
func makeThreadFixture(now time.Time) (*dal.ScheduledThread, []*dal.ScheduledPost) {
	thread := &dal.ScheduledThread{
		Id:        300,
		AccountId: 17,
		Status:    dal.StatusRetrying,
		SendAt:    now.Add(-time.Hour),
	}
	m0 := &dal.ScheduledPost{
		Id: 101, AccountId: 17, ThreadId: &thread.Id, Position: 0,
		Body: "First part, already out", Status: dal.StatusSent, RemoteId: "r-101",
	}
	m1 := &dal.ScheduledPost{
		Id: 102, AccountId: 17, ThreadId: &thread.Id, Position: 1,
		Body: "Second part", Status: dal.StatusRetrying, Retries: 1,
	}
	m2 := &dal.ScheduledPost{
		Id: 103, AccountId: 17, ThreadId: &thread.Id, Position: 2,
		Body: "Third part", Status: dal.StatusPending,
	}
	return thread, []*dal.ScheduledPost{m0, m1, m2}
}

func Test_Dispatcher_Send_Thread_Resumes_After_Sent_Members(t *testing.T) {

	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	now := h.clock.now
	thread, members := makeThreadFixture(now)

	h.mockRepo.EXPECT().GetThread(gomock.Eq(thread.Id)).Return(thread, nil)
	h.mockRepo.EXPECT().ClaimThread(gomock.Eq(thread.Id), gomock.Eq(now)).Return(true, nil)
	expectAccount(h, 17)
	h.mockRepo.EXPECT().GetThreadPosts(gomock.Eq(thread.Id)).Return(members, nil)

	// Members two and three still need sending; credentials are looked up per send
	expectReadyAuth(h, 17, 2)
	h.mockRepo.EXPECT().ClaimPost(gomock.Eq(int64(102)), gomock.Eq(now)).Return(true, nil)
	h.mockRepo.EXPECT().ClaimPost(gomock.Eq(int64(103)), gomock.Eq(now)).Return(true, nil)
	h.mockRepo.EXPECT().GetMediaForPost(gomock.Eq(int64(102))).Return(nil, nil)
	h.mockRepo.EXPECT().GetMediaForPost(gomock.Eq(int64(103))).Return(nil, nil)

	// The second member replies to the first's remote status, the third to
	// the second's, so the chain stays intact across runs
	h.mockProvider.EXPECT().SendPost(gomock.Any(), gomock.Eq("Second part"), gomock.Nil(), gomock.Eq("r-101")).
		Return(&logic.RemotePost{RemoteId: "r-102", Url: "https://mastodon.social/@kermit/r-102"}, nil)
	h.mockProvider.EXPECT().SendPost(gomock.Any(), gomock.Eq("Third part"), gomock.Nil(), gomock.Eq("r-102")).
		Return(&logic.RemotePost{RemoteId: "r-103", Url: "https://mastodon.social/@kermit/r-103"}, nil)

	h.mockRepo.EXPECT().UpdatePostSent(gomock.Eq(int64(102)), gomock.Eq("r-102"),
		gomock.Eq("https://mastodon.social/@kermit/r-102"), gomock.Eq(now), gomock.Nil()).Return(nil)
	h.mockRepo.EXPECT().UpdatePostSent(gomock.Eq(int64(103)), gomock.Eq("r-103"),
		gomock.Eq("https://mastodon.social/@kermit/r-103"), gomock.Eq(now), gomock.Nil()).Return(nil)
	h.mockMetrics.EXPECT().PostSent().Times(2)

	h.mockRepo.EXPECT().UpdateThreadStatus(gomock.Eq(thread.Id), gomock.Eq(dal.StatusSent), gomock.Eq("")).
		Return(nil)
	h.mockMetrics.EXPECT().ThreadSent()

	disp.SendThread(thread.Id)
}

func Test_Dispatcher_Send_Thread_Halts_On_Permanent_Failure(t *testing.T) {

	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	now := h.clock.now
	thread, members := makeThreadFixture(now)

	h.mockRepo.EXPECT().GetThread(gomock.Eq(thread.Id)).Return(thread, nil)
	h.mockRepo.EXPECT().ClaimThread(gomock.Eq(thread.Id), gomock.Eq(now)).Return(true, nil)
	acct := expectAccount(h, 17)
	h.mockRepo.EXPECT().GetThreadPosts(gomock.Eq(thread.Id)).Return(members, nil)

	expectReadyAuth(h, 17, 1)
	h.mockRepo.EXPECT().ClaimPost(gomock.Eq(int64(102)), gomock.Eq(now)).Return(true, nil)
	h.mockRepo.EXPECT().GetMediaForPost(gomock.Eq(int64(102))).Return(nil, nil)

	// The instance rejects the status for good; the third member must
	// never be attempted
	h.mockProvider.EXPECT().SendPost(gomock.Any(), gomock.Eq("Second part"), gomock.Nil(), gomock.Eq("r-101")).
		Return(nil, logic.Permanent(errors.New("the status was rejected")))

	// One member is out already, so the thread ends up partially sent
	h.mockRepo.EXPECT().UpdatePostFailed(gomock.Eq(int64(102)),
		gomock.Cond(checkStartsWith("failed to send post 102"))).Return(nil)
	h.mockRepo.EXPECT().UpdateThreadStatus(gomock.Eq(thread.Id), gomock.Eq(dal.StatusPartiallySent),
		gomock.Cond(checkStartsWith("failed to send post 102"))).Return(nil)
	h.mockMetrics.EXPECT().PostFailed()
	h.mockMetrics.EXPECT().ThreadHalted()
	h.mockNotifier.EXPECT().ThreadHalted(gomock.Eq(acct), gomock.Eq(thread), gomock.Eq(members[1]),
		gomock.Cond(checkStartsWith("failed to send post 102")))

	disp.SendThread(thread.Id)
}

func Test_Dispatcher_Send_Thread_Transient_Failure_Reschedules(t *testing.T) {

	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	now := h.clock.now
	thread, members := makeThreadFixture(now)

	h.mockRepo.EXPECT().GetThread(gomock.Eq(thread.Id)).Return(thread, nil)
	h.mockRepo.EXPECT().ClaimThread(gomock.Eq(thread.Id), gomock.Eq(now)).Return(true, nil)
	expectAccount(h, 17)
	h.mockRepo.EXPECT().GetThreadPosts(gomock.Eq(thread.Id)).Return(members, nil)

	expectReadyAuth(h, 17, 1)
	h.mockRepo.EXPECT().ClaimPost(gomock.Eq(int64(102)), gomock.Eq(now)).Return(true, nil)
	h.mockRepo.EXPECT().GetMediaForPost(gomock.Eq(int64(102))).Return(nil, nil)
	h.mockProvider.EXPECT().SendPost(gomock.Any(), gomock.Eq("Second part"), gomock.Nil(), gomock.Eq("r-101")).
		Return(nil, errors.New("gateway timeout"))

	// Member two is on its second attempt, so the wait is one doubling up.
	// Both the member and the thread get the same next attempt time.
	next := now.Add(1200 * time.Second)
	h.mockRepo.EXPECT().UpdatePostRetry(gomock.Eq(int64(102)), gomock.Eq(2), gomock.Eq(next),
		gomock.Cond(checkStartsWith("failed to send post 102"))).Return(nil)
	h.mockRepo.EXPECT().UpdateThreadRetry(gomock.Eq(thread.Id), gomock.Eq(next),
		gomock.Cond(checkStartsWith("failed to send post 102"))).Return(nil)
	h.mockMetrics.EXPECT().PostRetryScheduled()

	disp.SendThread(thread.Id)
}

func Test_Dispatcher_Send_Thread_Halts_On_Unclaimable_Member(t *testing.T) {

	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	now := h.clock.now
	thread, members := makeThreadFixture(now)

	h.mockRepo.EXPECT().GetThread(gomock.Eq(thread.Id)).Return(thread, nil)
	h.mockRepo.EXPECT().ClaimThread(gomock.Eq(thread.Id), gomock.Eq(now)).Return(true, nil)
	acct := expectAccount(h, 17)
	h.mockRepo.EXPECT().GetThreadPosts(gomock.Eq(thread.Id)).Return(members, nil)

	// A member that should be waiting cannot be claimed: something outside
	// the thread machinery touched it, and the thread stops rather than
	// skip over it
	h.mockRepo.EXPECT().ClaimPost(gomock.Eq(int64(102)), gomock.Eq(now)).Return(false, nil)

	h.mockRepo.EXPECT().UpdatePostFailed(gomock.Eq(int64(102)),
		gomock.Eq("thread member is in an unexpected state")).Return(nil)
	h.mockRepo.EXPECT().UpdateThreadStatus(gomock.Eq(thread.Id), gomock.Eq(dal.StatusPartiallySent),
		gomock.Eq("thread member is in an unexpected state")).Return(nil)
	h.mockMetrics.EXPECT().PostFailed()
	h.mockMetrics.EXPECT().ThreadHalted()
	h.mockNotifier.EXPECT().ThreadHalted(gomock.Eq(acct), gomock.Eq(thread), gomock.Eq(members[1]), gomock.Any())

	disp.SendThread(thread.Id)
}

func Test_Dispatcher_Send_Thread_Skips_When_Claim_Lost(t *testing.T) {

	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	now := h.clock.now
	thread, _ := makeThreadFixture(now)

	h.mockRepo.EXPECT().GetThread(gomock.Eq(thread.Id)).Return(thread, nil)
	h.mockRepo.EXPECT().ClaimThread(gomock.Eq(thread.Id), gomock.Eq(now)).Return(false, nil)

	disp.SendThread(thread.Id)
}
