package test

import (
	"errors"
	"go.uber.org/mock/gomock"
	"post_later/dal"
	"post_later/logic"
	"post_later/shared"
	"post_later/test/mocks"
	"testing"
	"time"
)

const testUserId = "u-501"
const testInstance = "mastodon.social"
const testHandle = "@kermit@mastodon.social"
const sealedToken = "sealed:7f3a91"
const plainToken = "plain-token-xyz"

type dispatcherHarness struct {
	cfg          *shared.Config
	clock        *testClock
	mockLogger   *mocks.MockILogger
	mockRepo     *mocks.MockIRepo
	mockProvider *mocks.MockIProvider
	mockKeyStore *mocks.MockIKeyStore
	mockStaging  *mocks.MockIMediaStaging
	mockNotifier *mocks.MockINotifier
	mockMetrics  *mocks.MockIMetrics
}

func setupDispatcherTest(t *testing.T) (*gomock.Controller, *dispatcherHarness, logic.IDispatcher) {

	ctrl := gomock.NewController(t)

	h := &dispatcherHarness{
		cfg: &shared.Config{
			Retry: shared.RetryConfig{MaxRetries: 3, BaseWaitSecs: 600, MaxWaitSecs: 86400, Jitter: 0},
		},
		clock:        &testClock{now: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)},
		mockLogger:   mocks.NewMockILogger(ctrl),
		mockRepo:     mocks.NewMockIRepo(ctrl),
		mockProvider: mocks.NewMockIProvider(ctrl),
		mockKeyStore: mocks.NewMockIKeyStore(ctrl),
		mockStaging:  mocks.NewMockIMediaStaging(ctrl),
		mockNotifier: mocks.NewMockINotifier(ctrl),
		mockMetrics:  mocks.NewMockIMetrics(ctrl),
	}
	setupDummyLogger(h.mockLogger)
	setupDummyMetrics(h.mockMetrics)

	h.mockProvider.EXPECT().Kind().Return(dal.ProviderMastodon).AnyTimes()
	registry := logic.NewProviderRegistry([]logic.IProvider{h.mockProvider})

	disp := logic.NewDispatcher(h.cfg, h.mockLogger, h.clock, h.mockRepo, registry,
		h.mockKeyStore, h.mockStaging, h.mockNotifier, h.mockMetrics)

	return ctrl, h, disp
}

func expectAccount(h *dispatcherHarness, accountId int64) *dal.Account {
	acct := &dal.Account{
		Id:       accountId,
		UserId:   testUserId,
		Provider: dal.ProviderMastodon,
		Status:   dal.AccountStatusActive,
		Handle:   testHandle,
	}
	h.mockRepo.EXPECT().GetAccount(gomock.Eq(accountId)).Return(acct, nil)
	return acct
}

// expectReadyAuth sets up authorized credentials whose token unseals to
// plainToken. A fresh record is returned per lookup, like the real repo does.
func expectReadyAuth(h *dispatcherHarness, accountId int64, times int) {
	h.mockRepo.EXPECT().GetProviderAuth(gomock.Eq(accountId)).
		DoAndReturn(func(int64) (*dal.ProviderAuth, error) {
			auth := &dal.ProviderAuth{
				Id:          1,
				AccountId:   accountId,
				Instance:    testInstance,
				AccessToken: sealedToken,
				Authorized:  true,
			}
			return auth, nil
		}).Times(times)
	h.mockKeyStore.EXPECT().OpenToken(gomock.Eq(sealedToken)).Return(plainToken, nil).Times(times)
}

func checkAuthWithToken(token string) func(x any) bool {
	res := func(x any) bool {
		auth, ok := x.(*dal.ProviderAuth)
		if !ok {
			return false
		}
		return auth.AccessToken == token
	}
	return res
}

func Test_Dispatcher_Send_Post_Success(t *testing.T) {

	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	now := h.clock.now
	post := &dal.ScheduledPost{
		Id:        42,
		AccountId: 17,
		Body:      "Out in the swamp at nine thirty",
		SendAt:    now.Add(-time.Minute),
		Status:    dal.StatusPending,
	}
	ma := &dal.MediaAttachment{Id: 7, UserId: testUserId, OrigName: "swamp.jpg", MimeType: "image/jpeg"}

	// Load the post and claim it: pending -> sending
	h.mockRepo.EXPECT().GetPost(gomock.Eq(post.Id)).Return(post, nil)
	h.mockRepo.EXPECT().ClaimPost(gomock.Eq(post.Id), gomock.Eq(now)).Return(true, nil)
	expectAccount(h, 17)
	expectReadyAuth(h, 17, 1)

	// One attachment goes up before the status does
	h.mockRepo.EXPECT().GetMediaForPost(gomock.Eq(post.Id)).Return([]*dal.MediaAttachment{ma}, nil)
	h.mockStaging.EXPECT().UploadMedia(gomock.Any(), gomock.Any(), gomock.Eq(ma)).Return("m-900", nil)

	// Provider accepts the status; standalone posts reply to nothing
	h.mockProvider.EXPECT().SendPost(
		gomock.Cond(checkAuthWithToken(plainToken)),
		gomock.Eq(post.Body),
		gomock.Cond(checkStrSlice([]string{"m-900"})),
		gomock.Eq("")).
		Return(&logic.RemotePost{RemoteId: "109551", Url: "https://mastodon.social/@kermit/109551"}, nil)

	// Outcome is recorded; no auto-boost was requested
	h.mockRepo.EXPECT().UpdatePostSent(
		gomock.Eq(post.Id),
		gomock.Eq("109551"),
		gomock.Eq("https://mastodon.social/@kermit/109551"),
		gomock.Eq(now),
		gomock.Nil()).
		Return(nil)
	h.mockMetrics.EXPECT().PostSent()

	disp.SendPost(post.Id)
}

func Test_Dispatcher_Send_Post_Schedules_Boost(t *testing.T) {

	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	now := h.clock.now
	boostHours := 12.0
	post := &dal.ScheduledPost{
		Id:             43,
		AccountId:      17,
		Body:           "Boost me later",
		SendAt:         now.Add(-time.Minute),
		Status:         dal.StatusPending,
		AutoBoostHours: &boostHours,
	}

	h.mockRepo.EXPECT().GetPost(gomock.Eq(post.Id)).Return(post, nil)
	h.mockRepo.EXPECT().ClaimPost(gomock.Eq(post.Id), gomock.Eq(now)).Return(true, nil)
	expectAccount(h, 17)
	expectReadyAuth(h, 17, 1)
	h.mockRepo.EXPECT().GetMediaForPost(gomock.Eq(post.Id)).Return(nil, nil)
	h.mockProvider.EXPECT().SendPost(gomock.Any(), gomock.Eq(post.Body), gomock.Nil(), gomock.Eq("")).
		Return(&logic.RemotePost{RemoteId: "109552", Url: "https://mastodon.social/@kermit/109552"}, nil)

	// The boost is due a fixed number of hours after the actual send time
	boostDue := now.Add(12 * time.Hour)
	h.mockRepo.EXPECT().UpdatePostSent(
		gomock.Eq(post.Id),
		gomock.Eq("109552"),
		gomock.Eq("https://mastodon.social/@kermit/109552"),
		gomock.Eq(now),
		gomock.Eq(&boostDue)).
		Return(nil)
	h.mockMetrics.EXPECT().PostSent()

	disp.SendPost(post.Id)
}

func Test_Dispatcher_Send_Post_Account_Not_Ready(t *testing.T) {

	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	now := h.clock.now
	post := &dal.ScheduledPost{
		Id:        44,
		AccountId: 17,
		Body:      "Never going out",
		SendAt:    now.Add(-time.Minute),
		Status:    dal.StatusRetrying,
		Retries:   2,
	}

	h.mockRepo.EXPECT().GetPost(gomock.Eq(post.Id)).Return(post, nil)
	h.mockRepo.EXPECT().ClaimPost(gomock.Eq(post.Id), gomock.Eq(now)).Return(true, nil)
	acct := expectAccount(h, 17)

	// Authorization was never completed: the post fails right away, with
	// no retry budget spent on an account that cannot post
	h.mockRepo.EXPECT().GetProviderAuth(gomock.Eq(post.AccountId)).
		Return(&dal.ProviderAuth{AccountId: 17, Instance: testInstance}, nil)
	h.mockRepo.EXPECT().UpdatePostFailed(gomock.Eq(post.Id), gomock.Eq("account 17 is not ready to post")).
		Return(nil)
	h.mockMetrics.EXPECT().PostFailed()
	h.mockNotifier.EXPECT().AccountNotReady(gomock.Eq(acct), gomock.Eq(post))

	disp.SendPost(post.Id)
}

func Test_Dispatcher_Send_Post_Transient_Error_Schedules_Retry(t *testing.T) {

	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	now := h.clock.now
	post := &dal.ScheduledPost{
		Id:        45,
		AccountId: 17,
		Body:      "Flaky network today",
		SendAt:    now.Add(-time.Minute),
		Status:    dal.StatusPending,
	}

	h.mockRepo.EXPECT().GetPost(gomock.Eq(post.Id)).Return(post, nil)
	h.mockRepo.EXPECT().ClaimPost(gomock.Eq(post.Id), gomock.Eq(now)).Return(true, nil)
	expectAccount(h, 17)
	expectReadyAuth(h, 17, 1)
	h.mockRepo.EXPECT().GetMediaForPost(gomock.Eq(post.Id)).Return(nil, nil)
	h.mockProvider.EXPECT().SendPost(gomock.Any(), gomock.Eq(post.Body), gomock.Nil(), gomock.Eq("")).
		Return(nil, errors.New("the instance is down for maintenance"))

	// First failure: the next attempt gets the base wait, exactly, since
	// jitter is off in the test config
	next := now.Add(600 * time.Second)
	h.mockRepo.EXPECT().UpdatePostRetry(
		gomock.Eq(post.Id),
		gomock.Eq(1),
		gomock.Eq(next),
		gomock.Cond(checkStartsWith("failed to send post 45"))).
		Return(nil)
	h.mockMetrics.EXPECT().PostRetryScheduled()

	disp.SendPost(post.Id)
}

func Test_Dispatcher_Send_Post_Retry_Budget_Exhausted(t *testing.T) {

	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	now := h.clock.now
	post := &dal.ScheduledPost{
		Id:        46,
		AccountId: 17,
		Body:      "Three strikes already",
		SendAt:    now.Add(-time.Hour),
		Status:    dal.StatusRetrying,
		Retries:   3,
	}

	h.mockRepo.EXPECT().GetPost(gomock.Eq(post.Id)).Return(post, nil)
	h.mockRepo.EXPECT().ClaimPost(gomock.Eq(post.Id), gomock.Eq(now)).Return(true, nil)
	acct := expectAccount(h, 17)
	expectReadyAuth(h, 17, 1)
	h.mockRepo.EXPECT().GetMediaForPost(gomock.Eq(post.Id)).Return(nil, nil)
	h.mockProvider.EXPECT().SendPost(gomock.Any(), gomock.Eq(post.Body), gomock.Nil(), gomock.Eq("")).
		Return(nil, errors.New("still not reachable"))

	// Retries are used up; this failure is final and the owner hears about it
	h.mockRepo.EXPECT().UpdatePostFailed(gomock.Eq(post.Id), gomock.Cond(checkStartsWith("failed to send post 46"))).
		Return(nil)
	h.mockMetrics.EXPECT().PostFailed()
	h.mockNotifier.EXPECT().PostFailed(
		gomock.Eq(acct),
		gomock.Eq(post),
		gomock.Cond(checkStartsWith("failed to send post 46")))

	disp.SendPost(post.Id)
}

func Test_Dispatcher_Send_Post_Media_Upload_Failure_Schedules_Retry(t *testing.T) {

	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	now := h.clock.now
	post := &dal.ScheduledPost{
		Id:        47,
		AccountId: 17,
		Body:      "Picture pending",
		SendAt:    now.Add(-time.Minute),
		Status:    dal.StatusPending,
	}
	ma := &dal.MediaAttachment{Id: 8, UserId: testUserId, OrigName: "frog.png", MimeType: "image/png"}

	h.mockRepo.EXPECT().GetPost(gomock.Eq(post.Id)).Return(post, nil)
	h.mockRepo.EXPECT().ClaimPost(gomock.Eq(post.Id), gomock.Eq(now)).Return(true, nil)
	expectAccount(h, 17)
	expectReadyAuth(h, 17, 1)
	h.mockRepo.EXPECT().GetMediaForPost(gomock.Eq(post.Id)).Return([]*dal.MediaAttachment{ma}, nil)

	// The media endpoint flakes out; the status must not go out without it
	h.mockStaging.EXPECT().UploadMedia(gomock.Any(), gomock.Any(), gomock.Eq(ma)).
		Return("", &logic.MediaUploadError{AttachmentId: ma.Id, Err: errors.New("502 from media API")})

	next := now.Add(600 * time.Second)
	h.mockRepo.EXPECT().UpdatePostRetry(
		gomock.Eq(post.Id),
		gomock.Eq(1),
		gomock.Eq(next),
		gomock.Cond(checkStartsWith("failed to upload media attachment 8"))).
		Return(nil)
	h.mockMetrics.EXPECT().PostRetryScheduled()

	disp.SendPost(post.Id)
}

func Test_Dispatcher_Send_Post_Skips_When_Claim_Lost(t *testing.T) {

	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	now := h.clock.now
	post := &dal.ScheduledPost{
		Id:        48,
		AccountId: 17,
		Body:      "Somebody else got here first",
		SendAt:    now.Add(-time.Minute),
		Status:    dal.StatusSending,
	}

	// Another worker holds the claim; nothing else may happen
	h.mockRepo.EXPECT().GetPost(gomock.Eq(post.Id)).Return(post, nil)
	h.mockRepo.EXPECT().ClaimPost(gomock.Eq(post.Id), gomock.Eq(now)).Return(false, nil)

	disp.SendPost(post.Id)
}

func Test_Dispatcher_Send_Post_Gone(t *testing.T) {

	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	// The post was deleted between the sweep and the send
	h.mockRepo.EXPECT().GetPost(gomock.Eq(int64(49))).Return(nil, nil)

	disp.SendPost(49)
}

func Test_Dispatcher_Backoff_Delay_Is_Exact_Without_Jitter(t *testing.T) {

	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	now := h.clock.now
	post := &dal.ScheduledPost{
		Id:        50,
		AccountId: 17,
		Body:      "Fourth time lucky",
		SendAt:    now.Add(-time.Hour),
		Status:    dal.StatusRetrying,
		Retries:   2,
	}

	h.mockRepo.EXPECT().GetPost(gomock.Eq(post.Id)).Return(post, nil)
	h.mockRepo.EXPECT().ClaimPost(gomock.Eq(post.Id), gomock.Eq(now)).Return(true, nil)
	expectAccount(h, 17)
	expectReadyAuth(h, 17, 1)
	h.mockRepo.EXPECT().GetMediaForPost(gomock.Eq(post.Id)).Return(nil, nil)
	h.mockProvider.EXPECT().SendPost(gomock.Any(), gomock.Eq(post.Body), gomock.Nil(), gomock.Eq("")).
		Return(nil, errors.New("timeout"))

	// Third attempt: base wait doubled twice
	next := now.Add(2400 * time.Second)
	h.mockRepo.EXPECT().UpdatePostRetry(gomock.Eq(post.Id), gomock.Eq(3), gomock.Eq(next), gomock.Any()).
		Return(nil)
	h.mockMetrics.EXPECT().PostRetryScheduled()

	disp.SendPost(post.Id)
}
