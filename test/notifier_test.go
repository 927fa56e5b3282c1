package test

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"io"
	"net/http"
	"net/http/httptest"
	"post_later/dal"
	"post_later/dto"
	"post_later/logic"
	"post_later/shared"
	"post_later/test/mocks"
	"testing"
	"time"
)

type notifierHarness struct {
	cfg           *shared.Config
	clock         *testClock
	mockLogger    *mocks.MockILogger
	mockRepo      *mocks.MockIRepo
	mockKeyStore  *mocks.MockIKeyStore
	mockUserAgent *mocks.MockIUserAgent
	mockMetrics   *mocks.MockIMetrics
	mockTexts     *mocks.MockITexts
}

func setupNotifierTest(t *testing.T) (*gomock.Controller, *notifierHarness, logic.INotifier) {

	ctrl := gomock.NewController(t)

	h := &notifierHarness{
		cfg:           &shared.Config{Host: "scheduler.example.com"},
		clock:         &testClock{now: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)},
		mockLogger:    mocks.NewMockILogger(ctrl),
		mockRepo:      mocks.NewMockIRepo(ctrl),
		mockKeyStore:  mocks.NewMockIKeyStore(ctrl),
		mockUserAgent: mocks.NewMockIUserAgent(ctrl),
		mockMetrics:   mocks.NewMockIMetrics(ctrl),
		mockTexts:     mocks.NewMockITexts(ctrl),
	}
	setupDummyLogger(h.mockLogger)
	setupFakeTexts(h.mockTexts)

	n := logic.NewNotifier(h.cfg, h.mockLogger, h.clock, h.mockRepo, h.mockKeyStore,
		h.mockUserAgent, h.mockMetrics, h.mockTexts)

	return ctrl, h, n
}

func Test_Notifier_Delivers_Signed_Webhook(t *testing.T) {

	ctrl, h, n := setupNotifierTest(t)
	defer ctrl.Finish()

	// Capture what arrives at the far end of the webhook
	type delivered struct {
		method string
		header http.Header
		body   []byte
	}
	received := make(chan delivered, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received <- delivered{method: r.Method, header: r.Header.Clone(), body: body}
	}))
	defer server.Close()

	privKey, err := rsa.GenerateKey(rand.Reader, 2048)
	assert.Nil(t, err)

	h.mockRepo.EXPECT().GetWebhookForUser(gomock.Eq(testUserId)).
		Return(&dal.Webhook{Id: 1, UserId: testUserId, Url: server.URL + "/hooks/post-later"}, nil)
	h.mockKeyStore.EXPECT().GetSigningKey().Return(privKey, nil)
	h.mockUserAgent.EXPECT().AddUserAgent(gomock.Any()).AnyTimes()
	// the outcome counter ticks on the delivery goroutine; don't race the test on it
	h.mockMetrics.EXPECT().WebhookSent(gomock.Any()).AnyTimes()

	acct := &dal.Account{Id: 17, UserId: testUserId, Handle: testHandle}
	post := &dal.ScheduledPost{Id: 42, AccountId: 17}
	n.PostFailed(acct, post, "the instance is down")

	var got delivered
	select {
	case got = <-received:
	case <-time.After(5 * time.Second):
		t.Fatal("webhook was not delivered")
	}

	assert.Equal(t, "POST", got.method)
	assert.Equal(t, "application/json", got.header.Get("Content-Type"))
	assert.NotEmpty(t, got.header.Get("Digest"))
	sig := got.header.Get("Signature")
	assert.Contains(t, sig, "keyId=\"https://scheduler.example.com/keys/webhook#main-key\"")
	assert.Contains(t, sig, "rsa-sha256")

	var evt dto.WebhookEvent
	assert.Nil(t, json.Unmarshal(got.body, &evt))
	assert.Equal(t, "post_failed", evt.Kind)
	assert.Equal(t, int64(17), evt.AccountId)
	assert.Equal(t, int64(42), *evt.PostId)
	assert.Equal(t, "https://scheduler.example.com/api/posts/42", evt.PostUrl)
	assert.True(t, evt.OccurredAt.Equal(h.clock.Now()))
	// The fake texts echo the template id plus each substitution
	assert.Contains(t, evt.Message, "webhook_post_failed.txt")
	assert.Contains(t, evt.Message, "handle\t"+testHandle)
	assert.Contains(t, evt.Message, "cause\tthe instance is down")
}

func Test_Notifier_Thread_Halted_Carries_Position(t *testing.T) {

	ctrl, h, n := setupNotifierTest(t)
	defer ctrl.Finish()

	received := make(chan []byte, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received <- body
	}))
	defer server.Close()

	privKey, err := rsa.GenerateKey(rand.Reader, 2048)
	assert.Nil(t, err)

	h.mockRepo.EXPECT().GetWebhookForUser(gomock.Eq(testUserId)).
		Return(&dal.Webhook{Id: 1, UserId: testUserId, Url: server.URL}, nil)
	h.mockKeyStore.EXPECT().GetSigningKey().Return(privKey, nil)
	h.mockUserAgent.EXPECT().AddUserAgent(gomock.Any()).AnyTimes()
	h.mockMetrics.EXPECT().WebhookSent(gomock.Any()).AnyTimes()

	acct := &dal.Account{Id: 17, UserId: testUserId, Handle: testHandle}
	thread := &dal.ScheduledThread{Id: 21, AccountId: 17}
	member := &dal.ScheduledPost{Id: 102, AccountId: 17, ThreadId: &thread.Id, Position: 1}
	n.ThreadHalted(acct, thread, member, "the status was rejected")

	var body []byte
	select {
	case body = <-received:
	case <-time.After(5 * time.Second):
		t.Fatal("webhook was not delivered")
	}

	var evt dto.WebhookEvent
	assert.Nil(t, json.Unmarshal(body, &evt))
	assert.Equal(t, "thread_halted", evt.Kind)
	assert.Equal(t, int64(21), *evt.ThreadId)
	assert.Equal(t, "https://scheduler.example.com/api/threads/21", evt.ThreadUrl)
	assert.Equal(t, int64(102), *evt.PostId)
	// Members are numbered from one when we talk to humans
	assert.Contains(t, evt.Message, "position\t2")
}

func Test_Notifier_Drops_Event_Without_Webhook(t *testing.T) {

	ctrl, h, n := setupNotifierTest(t)
	defer ctrl.Finish()

	// No webhook on file: the event goes nowhere, and nothing gets signed
	h.mockRepo.EXPECT().GetWebhookForUser(gomock.Eq(testUserId)).Return(nil, nil)

	acct := &dal.Account{Id: 17, UserId: testUserId, Handle: testHandle}
	n.AccountNotReady(acct, nil)
}
