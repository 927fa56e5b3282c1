package test

import (
	"errors"
	"go.uber.org/mock/gomock"
	"post_later/dal"
	"post_later/logic"
	"testing"
	"time"
)

// makeBoostablePost builds a post that went out half a day ago and is now
// due for its auto-boost.
func makeBoostablePost(now time.Time) *dal.ScheduledPost {
	sentAt := now.Add(-12 * time.Hour)
	due := now.Add(-time.Minute)
	boostHours := 12.0
	return &dal.ScheduledPost{
		Id:             42,
		AccountId:      17,
		Body:           "Boost me",
		Status:         dal.StatusSent,
		RemoteId:       "109551",
		RemoteUrl:      "https://mastodon.social/@kermit/109551",
		SentAt:         &sentAt,
		AutoBoostHours: &boostHours,
		BoostDueAt:     &due,
	}
}

func Test_Dispatcher_Send_Boost_Success(t *testing.T) {

	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	now := h.clock.now
	post := makeBoostablePost(now)

	h.mockRepo.EXPECT().GetPost(gomock.Eq(post.Id)).Return(post, nil)
	expectAccount(h, 17)
	expectReadyAuth(h, 17, 1)

	h.mockProvider.EXPECT().BoostPost(gomock.Cond(checkAuthWithToken(plainToken)), gomock.Eq("109551")).
		Return("b-777", nil)
	h.mockRepo.EXPECT().UpdatePostBoosted(gomock.Eq(post.Id), gomock.Eq("b-777"), gomock.Eq(now)).
		Return(nil)
	h.mockMetrics.EXPECT().BoostSent()

	disp.SendBoost(post.Id)
}

func Test_Dispatcher_Send_Boost_Permanent_Failure_Drops_Boost(t *testing.T) {

	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	now := h.clock.now
	post := makeBoostablePost(now)

	h.mockRepo.EXPECT().GetPost(gomock.Eq(post.Id)).Return(post, nil)
	acct := expectAccount(h, 17)
	expectReadyAuth(h, 17, 1)

	h.mockProvider.EXPECT().BoostPost(gomock.Any(), gomock.Eq("109551")).
		Return("", logic.Permanent(errors.New("the status no longer exists")))

	// The boost is abandoned but the post itself stays sent; only the
	// boost columns are cleared
	h.mockRepo.EXPECT().ClearBoost(gomock.Eq(post.Id),
		gomock.Cond(checkStartsWith("failed to boost post 42"))).Return(nil)
	h.mockMetrics.EXPECT().BoostFailed()
	h.mockNotifier.EXPECT().BoostFailed(gomock.Eq(acct), gomock.Eq(post),
		gomock.Cond(checkStartsWith("failed to boost post 42")))

	disp.SendBoost(post.Id)
}

func Test_Dispatcher_Send_Boost_Transient_Failure_Schedules_Retry(t *testing.T) {

	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	now := h.clock.now
	post := makeBoostablePost(now)
	post.BoostRetries = 1

	h.mockRepo.EXPECT().GetPost(gomock.Eq(post.Id)).Return(post, nil)
	expectAccount(h, 17)
	expectReadyAuth(h, 17, 1)

	h.mockProvider.EXPECT().BoostPost(gomock.Any(), gomock.Eq("109551")).
		Return("", errors.New("rate limited"))

	// Second boost attempt waits twice the base
	due := now.Add(1200 * time.Second)
	h.mockRepo.EXPECT().UpdateBoostRetry(gomock.Eq(post.Id), gomock.Eq(2), gomock.Eq(due),
		gomock.Eq("rate limited")).Return(nil)

	disp.SendBoost(post.Id)
}

func Test_Dispatcher_Send_Boost_Retry_Budget_Exhausted(t *testing.T) {

	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	now := h.clock.now
	post := makeBoostablePost(now)
	post.BoostRetries = 3

	h.mockRepo.EXPECT().GetPost(gomock.Eq(post.Id)).Return(post, nil)
	acct := expectAccount(h, 17)
	expectReadyAuth(h, 17, 1)

	h.mockProvider.EXPECT().BoostPost(gomock.Any(), gomock.Eq("109551")).
		Return("", errors.New("still rate limited"))

	h.mockRepo.EXPECT().ClearBoost(gomock.Eq(post.Id),
		gomock.Cond(checkStartsWith("failed to boost post 42"))).Return(nil)
	h.mockMetrics.EXPECT().BoostFailed()
	h.mockNotifier.EXPECT().BoostFailed(gomock.Eq(acct), gomock.Eq(post), gomock.Any())

	disp.SendBoost(post.Id)
}

func Test_Dispatcher_Send_Boost_Clears_When_Post_Not_Sent(t *testing.T) {

	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	now := h.clock.now
	due := now.Add(-time.Minute)
	post := &dal.ScheduledPost{
		Id:         51,
		AccountId:  17,
		Body:       "Failed before it could be boosted",
		Status:     dal.StatusFailed,
		BoostDueAt: &due,
	}

	// A boost on anything but a sent post makes no sense; drop it quietly
	h.mockRepo.EXPECT().GetPost(gomock.Eq(post.Id)).Return(post, nil)
	h.mockRepo.EXPECT().ClearBoost(gomock.Eq(post.Id), gomock.Eq("post is not sent; boost dropped")).
		Return(nil)

	disp.SendBoost(post.Id)
}

func Test_Dispatcher_Send_Boost_Skips_Already_Boosted(t *testing.T) {

	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	now := h.clock.now
	post := makeBoostablePost(now)
	boostedAt := now.Add(-time.Hour)
	post.BoostedAt = &boostedAt
	post.BoostRemoteId = "b-776"

	h.mockRepo.EXPECT().GetPost(gomock.Eq(post.Id)).Return(post, nil)

	disp.SendBoost(post.Id)
}
