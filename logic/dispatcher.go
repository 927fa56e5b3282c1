package logic

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"post_later/dal"
	"post_later/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_dispatcher.go -package mocks post_later/logic IDispatcher

const sendLoopIdleWakeSec = 5

const (
	jobKindPost   = "post"
	jobKindThread = "thread"
	jobKindBoost  = "boost"
)

type job struct {
	kind      string
	id        int64
	accountId int64
}

type jobKey struct {
	kind string
	id   int64
}

// IDispatcher owns the send loop. Enqueue* hand it due work; the Send*
// operations do one item synchronously and record the outcome. Workers
// call the latter, and so do tests.
type IDispatcher interface {
	EnqueuePosts(posts []*dal.ScheduledPost)
	EnqueueThreads(threads []*dal.ScheduledThread)
	EnqueueBoosts(posts []*dal.ScheduledPost)
	SendPost(postId int64)
	SendThread(threadId int64)
	SendBoost(postId int64)
}

type dispatcher struct {
	cfg      *shared.Config
	logger   shared.ILogger
	clock    shared.IClock
	repo     dal.IRepo
	registry IProviderRegistry
	keyStore IKeyStore
	staging  IMediaStaging
	notifier INotifier
	metrics  IMetrics
	muRng    sync.Mutex
	rng      *rand.Rand
	muQueue  sync.Mutex
	queue    []job
	queued   map[jobKey]struct{}
	inFlight int
	leases   *accountLeases
	muLim    sync.Mutex
	limiters map[int64]*rate.Limiter
	newJobs  chan struct{}
	jobDone  chan job
}

func NewDispatcher(
	cfg *shared.Config,
	logger shared.ILogger,
	clock shared.IClock,
	repo dal.IRepo,
	registry IProviderRegistry,
	keyStore IKeyStore,
	staging IMediaStaging,
	notifier INotifier,
	metrics IMetrics,
) IDispatcher {

	d := dispatcher{
		cfg:      cfg,
		logger:   logger,
		clock:    clock,
		repo:     repo,
		registry: registry,
		keyStore: keyStore,
		staging:  staging,
		notifier: notifier,
		metrics:  metrics,
	}

	d.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	d.queued = make(map[jobKey]struct{})
	d.leases = newAccountLeases()
	d.limiters = make(map[int64]*rate.Limiter)
	d.newJobs = make(chan struct{})
	d.jobDone = make(chan job)
	go d.sendLoop()

	return &d
}

func (d *dispatcher) EnqueuePosts(posts []*dal.ScheduledPost) {

	d.muQueue.Lock()
	added := 0
	for _, p := range posts {
		if d.addJobLocked(job{jobKindPost, p.Id, p.AccountId}) {
			added++
		}
	}
	d.muQueue.Unlock()
	if added > 0 {
		d.kick()
	}
}

func (d *dispatcher) EnqueueThreads(threads []*dal.ScheduledThread) {

	d.muQueue.Lock()
	added := 0
	for _, t := range threads {
		if d.addJobLocked(job{jobKindThread, t.Id, t.AccountId}) {
			added++
		}
	}
	d.muQueue.Unlock()
	if added > 0 {
		d.kick()
	}
}

func (d *dispatcher) EnqueueBoosts(posts []*dal.ScheduledPost) {

	d.muQueue.Lock()
	added := 0
	for _, p := range posts {
		if d.addJobLocked(job{jobKindBoost, p.Id, p.AccountId}) {
			added++
		}
	}
	d.muQueue.Unlock()
	if added > 0 {
		d.kick()
	}
}

// addJobLocked adds one job unless it is already queued or in flight.
func (d *dispatcher) addJobLocked(j job) bool {
	key := jobKey{j.kind, j.id}
	if _, exists := d.queued[key]; exists {
		return false
	}
	d.queued[key] = struct{}{}
	d.queue = append(d.queue, j)
	return true
}

// kick wakes the send loop without blocking the caller.
func (d *dispatcher) kick() {
	go func() {
		d.newJobs <- struct{}{}
	}()
}

func (d *dispatcher) sendLoop() {

	for {
		select {
		case <-d.newJobs:
			d.logger.Debug("New jobs in send queue")
			d.startJobs()
		case <-time.After(sendLoopIdleWakeSec * time.Second):
			d.startJobs()
		case j := <-d.jobDone:
			d.finishJob(j)
			d.startJobs()
		}
	}
}

// startJobs launches queued jobs up to the parallelism cap, skipping
// jobs whose account already has one in flight.
func (d *dispatcher) startJobs() {

	d.muQueue.Lock()
	defer d.muQueue.Unlock()

	for d.inFlight < d.cfg.Schedule.MaxParallelSends {
		ix := -1
		for i, j := range d.queue {
			if d.leases.TryAcquire(j.accountId) {
				ix = i
				break
			}
		}
		if ix == -1 {
			break
		}
		j := d.queue[ix]
		d.queue = append(d.queue[:ix], d.queue[ix+1:]...)
		d.inFlight++
		go d.runJob(j)
	}
	d.metrics.JobQueueLength(len(d.queue))
}

func (d *dispatcher) finishJob(j job) {
	d.muQueue.Lock()
	d.inFlight--
	delete(d.queued, jobKey{j.kind, j.id})
	d.muQueue.Unlock()
	d.leases.Release(j.accountId)
}

func (d *dispatcher) runJob(j job) {

	defer func() {
		if r := recover(); r != nil {
			d.logger.Errorf("Job %s/%d panicked: %v", j.kind, j.id, r)
		}
		d.jobDone <- j
	}()

	d.waitTurn(j.accountId)
	switch j.kind {
	case jobKindPost:
		d.SendPost(j.id)
	case jobKindThread:
		d.SendThread(j.id)
	case jobKindBoost:
		d.SendBoost(j.id)
	}
}

// waitTurn spaces out consecutive sends on the same account.
func (d *dispatcher) waitTurn(accountId int64) {

	minSecs := d.cfg.Schedule.MinSecsBetweenSends
	if minSecs <= 0 {
		return
	}
	d.muLim.Lock()
	lim, ok := d.limiters[accountId]
	if !ok {
		lim = rate.NewLimiter(rate.Every(time.Duration(minSecs)*time.Second), 1)
		d.limiters[accountId] = lim
	}
	d.muLim.Unlock()
	_ = lim.Wait(context.Background())
}

func (d *dispatcher) SendPost(postId int64) {

	post, err := d.repo.GetPost(postId)
	if err != nil {
		d.logger.Errorf("Failed to load post %d: %v", postId, err)
		return
	}
	if post == nil {
		d.logger.Debugf("Post %d is gone; nothing to send", postId)
		return
	}

	claimed, err := d.repo.ClaimPost(postId, d.clock.Now())
	if err != nil {
		d.logger.Errorf("Failed to claim post %d: %v", postId, err)
		return
	}
	if !claimed {
		d.logger.Debugf("Post %d not claimable; skipping", postId)
		return
	}

	acct, err := d.repo.GetAccount(post.AccountId)
	if err != nil {
		// Leave the claim in place; the watchdog will release it
		d.logger.Errorf("Failed to load account %d for post %d: %v", post.AccountId, postId, err)
		return
	}
	if acct == nil {
		d.logger.Warnf("Post %d belongs to missing account %d", postId, post.AccountId)
		_ = d.repo.UpdatePostFailed(postId, "account no longer exists")
		d.metrics.PostFailed()
		return
	}

	if err = d.deliverPost(acct, post, ""); err != nil {
		d.handlePostError(acct, post, err)
		return
	}
	d.metrics.PostSent()
	d.logger.Infof("Post %d sent as %s for %s", postId, post.RemoteId, acct.Handle)
}

// deliverPost uploads any pending attachments and sends one status. On
// success it marks the post sent and fills in its remote fields.
func (d *dispatcher) deliverPost(acct *dal.Account, post *dal.ScheduledPost, inReplyTo string) error {

	prov, err := d.registry.Get(acct.Provider)
	if err != nil {
		return Permanent(err)
	}
	auth, err := openReadyAuth(d.repo, d.keyStore, acct.Id)
	if err != nil {
		return err
	}

	attachments, err := d.repo.GetMediaForPost(post.Id)
	if err != nil {
		return err
	}
	var mediaIds []string
	for _, ma := range attachments {
		var remoteId string
		if remoteId, err = d.staging.UploadMedia(prov, auth, ma); err != nil {
			return err
		}
		mediaIds = append(mediaIds, remoteId)
	}

	rp, err := prov.SendPost(auth, post.Body, mediaIds, inReplyTo)
	if err != nil {
		return &PostSendError{PostId: post.Id, Err: err}
	}

	sentAt := d.clock.Now()
	var boostDueAt *time.Time
	if post.AutoBoostHours != nil && *post.AutoBoostHours > 0 {
		t := sentAt.Add(time.Duration(*post.AutoBoostHours * float64(time.Hour)))
		boostDueAt = &t
	}
	if err = d.repo.UpdatePostSent(post.Id, rp.RemoteId, rp.Url, sentAt, boostDueAt); err != nil {
		// The status is out; retrying past this point would post it twice
		d.logger.Errorf("Post %d went out as %s but could not be recorded: %v", post.Id, rp.RemoteId, err)
		return Permanent(err)
	}
	post.Status = dal.StatusSent
	post.RemoteId = rp.RemoteId
	post.RemoteUrl = rp.Url
	post.SentAt = &sentAt
	return nil
}

func (d *dispatcher) handlePostError(acct *dal.Account, post *dal.ScheduledPost, sendErr error) {

	var anr *AccountNotReadyError
	if errors.As(sendErr, &anr) {
		// No point burning the retry budget; the user must re-link first
		d.logger.Warnf("Post %d not sent: %v", post.Id, sendErr)
		if err := d.repo.UpdatePostFailed(post.Id, sendErr.Error()); err != nil {
			d.logger.Errorf("Failed to mark post %d failed: %v", post.Id, err)
		}
		d.metrics.PostFailed()
		d.notifier.AccountNotReady(acct, post)
		return
	}
	if IsPermanent(sendErr) {
		d.failPost(acct, post, sendErr)
		return
	}

	retries := post.Retries + 1
	if retries > d.cfg.Retry.MaxRetries {
		d.failPost(acct, post, sendErr)
		return
	}
	delay := d.backoff(retries)
	next := d.clock.Now().Add(delay)
	if err := d.repo.UpdatePostRetry(post.Id, retries, next, sendErr.Error()); err != nil {
		d.logger.Errorf("Failed to schedule retry of post %d: %v", post.Id, err)
		return
	}
	d.metrics.PostRetryScheduled()
	d.logger.Infof("Post %d will be retried in %v (attempt %d of %d): %v",
		post.Id, delay.Round(time.Second), retries, d.cfg.Retry.MaxRetries, sendErr)
}

func (d *dispatcher) failPost(acct *dal.Account, post *dal.ScheduledPost, sendErr error) {

	d.logger.Warnf("Post %d failed for good: %v", post.Id, sendErr)
	if err := d.repo.UpdatePostFailed(post.Id, sendErr.Error()); err != nil {
		d.logger.Errorf("Failed to mark post %d failed: %v", post.Id, err)
	}
	d.metrics.PostFailed()
	d.notifier.PostFailed(acct, post, sendErr.Error())
}

func (d *dispatcher) SendThread(threadId int64) {

	thread, err := d.repo.GetThread(threadId)
	if err != nil {
		d.logger.Errorf("Failed to load thread %d: %v", threadId, err)
		return
	}
	if thread == nil {
		d.logger.Debugf("Thread %d is gone; nothing to send", threadId)
		return
	}

	claimed, err := d.repo.ClaimThread(threadId, d.clock.Now())
	if err != nil {
		d.logger.Errorf("Failed to claim thread %d: %v", threadId, err)
		return
	}
	if !claimed {
		d.logger.Debugf("Thread %d not claimable; skipping", threadId)
		return
	}

	acct, err := d.repo.GetAccount(thread.AccountId)
	if err != nil {
		d.logger.Errorf("Failed to load account %d for thread %d: %v", thread.AccountId, threadId, err)
		return
	}
	if acct == nil {
		d.logger.Warnf("Thread %d belongs to missing account %d", threadId, thread.AccountId)
		_ = d.repo.UpdateThreadStatus(threadId, dal.StatusFailed, "account no longer exists")
		return
	}

	members, err := d.repo.GetThreadPosts(threadId)
	if err != nil {
		d.logger.Errorf("Failed to load posts of thread %d: %v", threadId, err)
		return
	}
	if len(members) == 0 {
		d.logger.Warnf("Thread %d has no posts; marking sent", threadId)
		_ = d.repo.UpdateThreadStatus(threadId, dal.StatusSent, "")
		return
	}

	// Resume where the last run stopped: skip sent members and chain the
	// next one onto the last sent status.
	replyTo := ""
	sentCount := 0
	sentThisRun := false
	spacing := time.Duration(thread.SecsBetween) * time.Second
	for _, member := range members {
		if member.Status == dal.StatusSent {
			replyTo = member.RemoteId
			sentCount++
			continue
		}
		if sentThisRun && spacing > 0 {
			time.Sleep(spacing)
		}

		mClaimed, err := d.repo.ClaimPost(member.Id, d.clock.Now())
		if err != nil {
			d.logger.Errorf("Failed to claim post %d of thread %d: %v", member.Id, threadId, err)
			return
		}
		if !mClaimed {
			d.haltThread(acct, thread, member, errors.New("thread member is in an unexpected state"), sentCount)
			return
		}

		if err = d.deliverPost(acct, member, replyTo); err != nil {
			d.handleThreadMemberError(acct, thread, member, err, sentCount)
			return
		}
		d.metrics.PostSent()
		replyTo = member.RemoteId
		sentCount++
		sentThisRun = true
	}

	if err = d.repo.UpdateThreadStatus(threadId, dal.StatusSent, ""); err != nil {
		d.logger.Errorf("Failed to mark thread %d sent: %v", threadId, err)
		return
	}
	d.metrics.ThreadSent()
	d.logger.Infof("Thread %d fully sent (%d posts) for %s", threadId, len(members), acct.Handle)
}

func (d *dispatcher) handleThreadMemberError(
	acct *dal.Account,
	thread *dal.ScheduledThread,
	member *dal.ScheduledPost,
	sendErr error,
	sentCount int,
) {
	var anr *AccountNotReadyError
	if errors.As(sendErr, &anr) || IsPermanent(sendErr) {
		d.haltThread(acct, thread, member, sendErr, sentCount)
		return
	}

	retries := member.Retries + 1
	if retries > d.cfg.Retry.MaxRetries {
		d.haltThread(acct, thread, member, sendErr, sentCount)
		return
	}
	delay := d.backoff(retries)
	next := d.clock.Now().Add(delay)
	if err := d.repo.UpdatePostRetry(member.Id, retries, next, sendErr.Error()); err != nil {
		d.logger.Errorf("Failed to schedule retry of post %d: %v", member.Id, err)
		return
	}
	if err := d.repo.UpdateThreadRetry(thread.Id, next, sendErr.Error()); err != nil {
		d.logger.Errorf("Failed to schedule retry of thread %d: %v", thread.Id, err)
		return
	}
	d.metrics.PostRetryScheduled()
	d.logger.Infof("Thread %d halted at post %d; will resume in %v (attempt %d of %d): %v",
		thread.Id, member.Id, delay.Round(time.Second), retries, d.cfg.Retry.MaxRetries, sendErr)
}

// haltThread ends a thread for good. Members already sent stay sent, so
// the outcome is partially_sent when anything went out.
func (d *dispatcher) haltThread(
	acct *dal.Account,
	thread *dal.ScheduledThread,
	member *dal.ScheduledPost,
	sendErr error,
	sentCount int,
) {
	d.logger.Warnf("Thread %d failed for good at post %d: %v", thread.Id, member.Id, sendErr)
	if err := d.repo.UpdatePostFailed(member.Id, sendErr.Error()); err != nil {
		d.logger.Errorf("Failed to mark post %d failed: %v", member.Id, err)
	}
	status := dal.StatusFailed
	if sentCount > 0 {
		status = dal.StatusPartiallySent
	}
	if err := d.repo.UpdateThreadStatus(thread.Id, status, sendErr.Error()); err != nil {
		d.logger.Errorf("Failed to mark thread %d %s: %v", thread.Id, status, err)
	}
	d.metrics.PostFailed()
	d.metrics.ThreadHalted()

	var anr *AccountNotReadyError
	if errors.As(sendErr, &anr) {
		d.notifier.AccountNotReady(acct, member)
	} else {
		d.notifier.ThreadHalted(acct, thread, member, sendErr.Error())
	}
}

func (d *dispatcher) SendBoost(postId int64) {

	post, err := d.repo.GetPost(postId)
	if err != nil {
		d.logger.Errorf("Failed to load post %d for boost: %v", postId, err)
		return
	}
	if post == nil || post.BoostedAt != nil || post.BoostDueAt == nil {
		return
	}
	if post.Status != dal.StatusSent || post.RemoteId == "" {
		_ = d.repo.ClearBoost(postId, "post is not sent; boost dropped")
		return
	}

	acct, err := d.repo.GetAccount(post.AccountId)
	if err != nil {
		d.logger.Errorf("Failed to load account %d for boost of post %d: %v", post.AccountId, postId, err)
		return
	}
	if acct == nil {
		_ = d.repo.ClearBoost(postId, "account no longer exists")
		return
	}

	prov, err := d.registry.Get(acct.Provider)
	if err != nil {
		d.dropBoost(acct, post, err)
		return
	}
	auth, err := openReadyAuth(d.repo, d.keyStore, acct.Id)
	if err != nil {
		d.dropBoost(acct, post, err)
		return
	}

	boostId, err := prov.BoostPost(auth, post.RemoteId)
	if err != nil {
		if IsPermanent(err) {
			d.dropBoost(acct, post, &BoostSendError{PostId: postId, Err: err})
			return
		}
		retries := post.BoostRetries + 1
		if retries > d.cfg.Retry.MaxRetries {
			d.dropBoost(acct, post, &BoostSendError{PostId: postId, Err: err})
			return
		}
		due := d.clock.Now().Add(d.backoff(retries))
		if err2 := d.repo.UpdateBoostRetry(postId, retries, due, err.Error()); err2 != nil {
			d.logger.Errorf("Failed to schedule boost retry of post %d: %v", postId, err2)
		}
		d.logger.Infof("Boost of post %d will be retried at %v (attempt %d of %d): %v",
			postId, due.Round(time.Second), retries, d.cfg.Retry.MaxRetries, err)
		return
	}

	if err = d.repo.UpdatePostBoosted(postId, boostId, d.clock.Now()); err != nil {
		d.logger.Errorf("Post %d boosted as %s but could not be recorded: %v", postId, boostId, err)
		return
	}
	d.metrics.BoostSent()
	d.logger.Infof("Post %d boosted for %s", postId, acct.Handle)
}

// dropBoost gives up on a boost. The post itself is already live, so
// this never touches its status.
func (d *dispatcher) dropBoost(acct *dal.Account, post *dal.ScheduledPost, sendErr error) {

	d.logger.Warnf("Dropping boost of post %d: %v", post.Id, sendErr)
	if err := d.repo.ClearBoost(post.Id, sendErr.Error()); err != nil {
		d.logger.Errorf("Failed to clear boost of post %d: %v", post.Id, err)
	}
	d.metrics.BoostFailed()
	d.notifier.BoostFailed(acct, post, sendErr.Error())
}

func (d *dispatcher) backoff(retries int) time.Duration {
	d.muRng.Lock()
	defer d.muRng.Unlock()
	return backoffDelay(&d.cfg.Retry, retries, d.rng)
}
