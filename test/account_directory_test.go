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

type directoryHarness struct {
	cfg           *shared.Config
	clock         *testClock
	mockLogger    *mocks.MockILogger
	mockRepo      *mocks.MockIRepo
	mockProvider  *mocks.MockIProvider
	mockKeyStore  *mocks.MockIKeyStore
	mockBlocked   *mocks.MockIBlockedInstances
	mockUserAgent *mocks.MockIUserAgent
}

func setupDirectoryTest(t *testing.T) (*gomock.Controller, *directoryHarness, logic.IAccountDirectory) {

	ctrl := gomock.NewController(t)

	h := &directoryHarness{
		cfg: &shared.Config{
			Media: shared.MediaConfig{Dir: t.TempDir()},
		},
		clock:         &testClock{now: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)},
		mockLogger:    mocks.NewMockILogger(ctrl),
		mockRepo:      mocks.NewMockIRepo(ctrl),
		mockProvider:  mocks.NewMockIProvider(ctrl),
		mockKeyStore:  mocks.NewMockIKeyStore(ctrl),
		mockBlocked:   mocks.NewMockIBlockedInstances(ctrl),
		mockUserAgent: mocks.NewMockIUserAgent(ctrl),
	}
	setupDummyLogger(h.mockLogger)

	h.mockProvider.EXPECT().Kind().Return(dal.ProviderMastodon).AnyTimes()
	registry := logic.NewProviderRegistry([]logic.IProvider{h.mockProvider})

	adir := logic.NewAccountDirectory(h.cfg, h.mockLogger, h.clock, h.mockRepo, registry,
		h.mockKeyStore, h.mockBlocked, h.mockUserAgent)

	return ctrl, h, adir
}

func checkPendingAccountFor(userId string) func(x any) bool {
	res := func(x any) bool {
		acct, ok := x.(*dal.Account)
		if !ok {
			return false
		}
		return acct.UserId == userId && acct.Status == dal.AccountStatusPending && acct.LinkState != ""
	}
	return res
}

func checkAuthRecord(accountId int64, instance string) func(x any) bool {
	res := func(x any) bool {
		auth, ok := x.(*dal.ProviderAuth)
		if !ok {
			return false
		}
		return auth.AccountId == accountId && auth.Instance == instance && !auth.Authorized
	}
	return res
}

func checkAuthorizedSealed(sealed string) func(x any) bool {
	res := func(x any) bool {
		auth, ok := x.(*dal.ProviderAuth)
		if !ok {
			return false
		}
		return auth.AccessToken == sealed && auth.Authorized && auth.AuthorizedAt != nil
	}
	return res
}

func Test_Directory_Start_Link(t *testing.T) {

	ctrl, h, adir := setupDirectoryTest(t)
	defer ctrl.Finish()

	// Whatever the caller pastes is reduced to a bare domain first
	h.mockBlocked.EXPECT().IsBlocked(gomock.Eq(testInstance)).Return(false, nil)

	// A pending account and an empty auth record are created, with a
	// one-shot state nonce for the callback to find
	h.mockRepo.EXPECT().AddAccount(gomock.Cond(checkPendingAccountFor(testUserId))).
		Return(int64(17), nil)
	h.mockRepo.EXPECT().AddProviderAuth(gomock.Cond(checkAuthRecord(17, testInstance))).
		Return(nil)
	h.mockProvider.EXPECT().AuthorizeURL(gomock.Eq(testInstance), gomock.Any()).
		Return("https://mastodon.social/oauth/authorize?client_id=abc", nil)

	authUrl, accountId, err := adir.StartLink(testUserId, dal.ProviderMastodon, "https://Mastodon.Social/")
	assert.Nil(t, err)
	assert.Equal(t, int64(17), accountId)
	assert.Equal(t, "https://mastodon.social/oauth/authorize?client_id=abc", authUrl)
}

func Test_Directory_Start_Link_Refuses_Blocked_Instance(t *testing.T) {

	ctrl, h, adir := setupDirectoryTest(t)
	defer ctrl.Finish()

	h.mockBlocked.EXPECT().IsBlocked(gomock.Eq("spam.example")).Return(true, nil)

	_, _, err := adir.StartLink(testUserId, dal.ProviderMastodon, "spam.example")
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "not allowed")
}

func Test_Directory_Start_Link_Rolls_Back_On_Authorize_Failure(t *testing.T) {

	ctrl, h, adir := setupDirectoryTest(t)
	defer ctrl.Finish()

	h.mockBlocked.EXPECT().IsBlocked(gomock.Eq(testInstance)).Return(false, nil)
	h.mockRepo.EXPECT().AddAccount(gomock.Cond(checkPendingAccountFor(testUserId))).
		Return(int64(17), nil)
	h.mockRepo.EXPECT().AddProviderAuth(gomock.Any()).Return(nil)
	h.mockProvider.EXPECT().AuthorizeURL(gomock.Eq(testInstance), gomock.Any()).
		Return("", errors.New("app registration failed"))

	// The half-made account must not linger
	h.mockRepo.EXPECT().DeleteAccount(gomock.Eq(int64(17))).Return(nil)

	_, _, err := adir.StartLink(testUserId, dal.ProviderMastodon, testInstance)
	assert.NotNil(t, err)
}

func Test_Directory_Complete_Link(t *testing.T) {

	ctrl, h, adir := setupDirectoryTest(t)
	defer ctrl.Finish()

	state := "state-nonce-1"
	acct := &dal.Account{
		Id:        17,
		UserId:    testUserId,
		Provider:  dal.ProviderMastodon,
		Status:    dal.AccountStatusPending,
		LinkState: state,
	}
	auth := &dal.ProviderAuth{Id: 3, AccountId: 17, Instance: testInstance}

	h.mockRepo.EXPECT().GetAccountByLinkState(gomock.Eq(state)).Return(acct, nil)
	h.mockRepo.EXPECT().GetProviderAuth(gomock.Eq(int64(17))).Return(auth, nil)

	// The code is redeemed and the token sealed before it is stored
	h.mockProvider.EXPECT().ExchangeCode(gomock.Eq(testInstance), gomock.Eq("code-abc")).
		Return(plainToken, "Bearer", "read write", nil)
	h.mockKeyStore.EXPECT().SealToken(gomock.Eq(plainToken)).Return(sealedToken, nil)
	h.mockRepo.EXPECT().UpdateProviderAuth(gomock.Cond(checkAuthorizedSealed(sealedToken))).
		Return(nil)

	// Profile details are fetched with the fresh, unsealed token
	h.mockProvider.EXPECT().FetchProfile(gomock.Cond(checkAuthWithToken(plainToken))).
		Return(&logic.RemoteProfile{
			RemoteId:    "888",
			Username:    "kermit",
			DisplayName: "Kermit the Frog",
			ProfileUrl:  "https://mastodon.social/@kermit",
		}, nil)
	h.mockRepo.EXPECT().UpdateAccountProfile(gomock.Eq(acct)).Return(nil)

	h.mockRepo.EXPECT().SetAccountStatus(gomock.Eq(int64(17)), gomock.Eq(dal.AccountStatusActive)).
		Return(nil)
	h.mockRepo.EXPECT().ClearAccountLinkState(gomock.Eq(int64(17))).Return(nil)

	res, err := adir.CompleteLink(state, "code-abc")
	assert.Nil(t, err)
	assert.Equal(t, dal.AccountStatusActive, res.Status)
	assert.Equal(t, "", res.LinkState)
	assert.Equal(t, testHandle, res.Handle)
	assert.Equal(t, "Kermit the Frog", res.DisplayName)
}

func Test_Directory_Complete_Link_Unknown_State(t *testing.T) {

	ctrl, h, adir := setupDirectoryTest(t)
	defer ctrl.Finish()

	h.mockRepo.EXPECT().GetAccountByLinkState(gomock.Eq("bogus")).Return(nil, nil)

	_, err := adir.CompleteLink("bogus", "code-abc")
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "no account linking is in progress")
}

func Test_Directory_Complete_Link_Survives_Profile_Failure(t *testing.T) {

	ctrl, h, adir := setupDirectoryTest(t)
	defer ctrl.Finish()

	state := "state-nonce-2"
	acct := &dal.Account{
		Id:        17,
		UserId:    testUserId,
		Provider:  dal.ProviderMastodon,
		Status:    dal.AccountStatusPending,
		LinkState: state,
	}
	auth := &dal.ProviderAuth{Id: 3, AccountId: 17, Instance: testInstance}

	h.mockRepo.EXPECT().GetAccountByLinkState(gomock.Eq(state)).Return(acct, nil)
	h.mockRepo.EXPECT().GetProviderAuth(gomock.Eq(int64(17))).Return(auth, nil)
	h.mockProvider.EXPECT().ExchangeCode(gomock.Eq(testInstance), gomock.Eq("code-def")).
		Return(plainToken, "Bearer", "read write", nil)
	h.mockKeyStore.EXPECT().SealToken(gomock.Eq(plainToken)).Return(sealedToken, nil)
	h.mockRepo.EXPECT().UpdateProviderAuth(gomock.Cond(checkAuthorizedSealed(sealedToken))).
		Return(nil)

	// The token is in; a failed profile fetch only costs us the niceties,
	// a later refresh will fill them in
	h.mockProvider.EXPECT().FetchProfile(gomock.Any()).
		Return(nil, errors.New("profile endpoint returned 500"))

	h.mockRepo.EXPECT().SetAccountStatus(gomock.Eq(int64(17)), gomock.Eq(dal.AccountStatusActive)).
		Return(nil)
	h.mockRepo.EXPECT().ClearAccountLinkState(gomock.Eq(int64(17))).Return(nil)

	res, err := adir.CompleteLink(state, "code-def")
	assert.Nil(t, err)
	assert.Equal(t, dal.AccountStatusActive, res.Status)
	assert.Equal(t, "", res.Handle)
}

func Test_Directory_Unlink_Refuses_When_Busy(t *testing.T) {

	ctrl, h, adir := setupDirectoryTest(t)
	defer ctrl.Finish()

	acct := &dal.Account{Id: 17, UserId: testUserId, Handle: testHandle}
	h.mockRepo.EXPECT().GetAccount(gomock.Eq(int64(17))).Return(acct, nil)
	h.mockRepo.EXPECT().GetPendingWorkCount(gomock.Eq(int64(17))).Return(3, nil)

	err := adir.UnlinkAccount(17, false)
	assert.True(t, errors.Is(err, logic.ErrAccountBusy))
}

func Test_Directory_Unlink_Cancels_Pending_Work(t *testing.T) {

	ctrl, h, adir := setupDirectoryTest(t)
	defer ctrl.Finish()

	acct := &dal.Account{Id: 17, UserId: testUserId, Handle: testHandle}
	h.mockRepo.EXPECT().GetAccount(gomock.Eq(int64(17))).Return(acct, nil)

	// Three items scheduled; all of them can be canceled, and the second
	// look confirms nothing is left mid-send
	h.mockRepo.EXPECT().GetPendingWorkCount(gomock.Eq(int64(17))).Return(3, nil)
	h.mockRepo.EXPECT().CancelAccountWork(gomock.Eq(int64(17))).Return(int64(3), nil)
	h.mockRepo.EXPECT().GetPendingWorkCount(gomock.Eq(int64(17))).Return(0, nil)
	h.mockRepo.EXPECT().DeleteAccount(gomock.Eq(int64(17))).Return(nil)

	err := adir.UnlinkAccount(17, true)
	assert.Nil(t, err)
}

func Test_Directory_Unlink_Refuses_While_Send_In_Flight(t *testing.T) {

	ctrl, h, adir := setupDirectoryTest(t)
	defer ctrl.Finish()

	acct := &dal.Account{Id: 17, UserId: testUserId, Handle: testHandle}
	h.mockRepo.EXPECT().GetAccount(gomock.Eq(int64(17))).Return(acct, nil)

	// Cancellation only reaches pending and retrying rows; one item is
	// being sent right now and survives, so the unlink must bail
	h.mockRepo.EXPECT().GetPendingWorkCount(gomock.Eq(int64(17))).Return(2, nil)
	h.mockRepo.EXPECT().CancelAccountWork(gomock.Eq(int64(17))).Return(int64(1), nil)
	h.mockRepo.EXPECT().GetPendingWorkCount(gomock.Eq(int64(17))).Return(1, nil)

	err := adir.UnlinkAccount(17, true)
	assert.True(t, errors.Is(err, logic.ErrAccountBusy))
}

func Test_Directory_Unlink_Missing_Account(t *testing.T) {

	ctrl, h, adir := setupDirectoryTest(t)
	defer ctrl.Finish()

	h.mockRepo.EXPECT().GetAccount(gomock.Eq(int64(99))).Return(nil, nil)

	err := adir.UnlinkAccount(99, false)
	assert.True(t, errors.Is(err, logic.ErrNotFound))
}

func Test_Directory_Refresh_Profile_Sanitizes_Bio(t *testing.T) {

	ctrl, h, adir := setupDirectoryTest(t)
	defer ctrl.Finish()

	acct := &dal.Account{
		Id:        17,
		UserId:    testUserId,
		Provider:  dal.ProviderMastodon,
		Status:    dal.AccountStatusActive,
		Handle:    testHandle,
		AvatarUrl: "https://files.mastodon.social/kermit.png",
	}
	h.mockRepo.EXPECT().GetAccount(gomock.Eq(int64(17))).Return(acct, nil)
	h.mockRepo.EXPECT().GetProviderAuth(gomock.Eq(int64(17))).
		Return(&dal.ProviderAuth{AccountId: 17, Instance: testInstance,
			AccessToken: sealedToken, Authorized: true}, nil)
	h.mockKeyStore.EXPECT().OpenToken(gomock.Eq(sealedToken)).Return(plainToken, nil)

	// Mastodon bios come as HTML; we keep plain text only. The avatar has
	// not changed, so no fetch happens.
	h.mockProvider.EXPECT().FetchProfile(gomock.Cond(checkAuthWithToken(plainToken))).
		Return(&logic.RemoteProfile{
			RemoteId:    "888",
			Username:    "kermit",
			DisplayName: "Kermit the Frog",
			Bio:         "<p>Frog <b>&amp;</b> swamp</p>",
			AvatarUrl:   "https://files.mastodon.social/kermit.png",
			ProfileUrl:  "https://mastodon.social/@kermit",
		}, nil)
	h.mockRepo.EXPECT().UpdateAccountProfile(gomock.Eq(acct)).Return(nil)

	err := adir.RefreshProfile(17)
	assert.Nil(t, err)
	assert.Equal(t, "Frog & swamp", acct.Bio)
	assert.False(t, acct.AvatarStale)
}
