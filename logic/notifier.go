package logic

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-fed/httpsig"

	"post_later/dal"
	"post_later/dto"
	"post_later/shared"
	"post_later/texts"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_notifier.go -package mocks post_later/logic INotifier

const webhookTimeoutSec = 10

const (
	eventPostFailed      = "post_failed"
	eventThreadHalted    = "thread_halted"
	eventBoostFailed     = "boost_failed"
	eventAccountNotReady = "account_not_ready"
)

// INotifier tells the account owner's webhook about outcomes that need
// their attention. Delivery is best effort: one signed POST, no retries.
type INotifier interface {
	PostFailed(acct *dal.Account, post *dal.ScheduledPost, cause string)
	ThreadHalted(acct *dal.Account, thread *dal.ScheduledThread, member *dal.ScheduledPost, cause string)
	BoostFailed(acct *dal.Account, post *dal.ScheduledPost, cause string)
	AccountNotReady(acct *dal.Account, post *dal.ScheduledPost)
}

type notifier struct {
	cfg       *shared.Config
	logger    shared.ILogger
	clock     shared.IClock
	repo      dal.IRepo
	keyStore  IKeyStore
	userAgent shared.IUserAgent
	metrics   IMetrics
	txt       texts.ITexts
	urlb      shared.UrlBuilder
}

func NewNotifier(
	cfg *shared.Config,
	logger shared.ILogger,
	clock shared.IClock,
	repo dal.IRepo,
	keyStore IKeyStore,
	userAgent shared.IUserAgent,
	metrics IMetrics,
	txt texts.ITexts,
) INotifier {
	return &notifier{
		cfg:       cfg,
		logger:    logger,
		clock:     clock,
		repo:      repo,
		keyStore:  keyStore,
		userAgent: userAgent,
		metrics:   metrics,
		txt:       txt,
		urlb:      shared.UrlBuilder{Host: cfg.Host}}
}

func (n *notifier) PostFailed(acct *dal.Account, post *dal.ScheduledPost, cause string) {

	msg := n.txt.WithVals("webhook_post_failed.txt", map[string]string{
		"handle": handleOrId(acct),
		"cause":  cause,
	})
	evt := n.newEvent(eventPostFailed, msg, acct)
	evt.PostId = &post.Id
	evt.PostUrl = n.urlb.PostApiUrl(post.Id)
	n.send(acct.UserId, evt)
}

func (n *notifier) ThreadHalted(acct *dal.Account, thread *dal.ScheduledThread, member *dal.ScheduledPost, cause string) {

	msg := n.txt.WithVals("webhook_thread_halted.txt", map[string]string{
		"handle":   handleOrId(acct),
		"position": fmt.Sprintf("%d", member.Position+1),
		"cause":    cause,
	})
	evt := n.newEvent(eventThreadHalted, msg, acct)
	evt.ThreadId = &thread.Id
	evt.ThreadUrl = n.urlb.ThreadApiUrl(thread.Id)
	evt.PostId = &member.Id
	evt.PostUrl = n.urlb.PostApiUrl(member.Id)
	n.send(acct.UserId, evt)
}

func (n *notifier) BoostFailed(acct *dal.Account, post *dal.ScheduledPost, cause string) {

	msg := n.txt.WithVals("webhook_boost_failed.txt", map[string]string{
		"handle": handleOrId(acct),
		"cause":  cause,
	})
	evt := n.newEvent(eventBoostFailed, msg, acct)
	evt.PostId = &post.Id
	evt.PostUrl = post.RemoteUrl
	n.send(acct.UserId, evt)
}

func (n *notifier) AccountNotReady(acct *dal.Account, post *dal.ScheduledPost) {

	msg := n.txt.WithVals("webhook_account_not_ready.txt", map[string]string{
		"handle": handleOrId(acct),
	})
	evt := n.newEvent(eventAccountNotReady, msg, acct)
	if post != nil {
		evt.PostId = &post.Id
		evt.PostUrl = n.urlb.PostApiUrl(post.Id)
	}
	n.send(acct.UserId, evt)
}

func (n *notifier) newEvent(kind, msg string, acct *dal.Account) *dto.WebhookEvent {
	return &dto.WebhookEvent{
		Kind:       kind,
		Message:    msg,
		AccountId:  acct.Id,
		OccurredAt: n.clock.Now().UTC(),
	}
}

func (n *notifier) send(userId string, evt *dto.WebhookEvent) {

	wh, err := n.repo.GetWebhookForUser(userId)
	if err != nil {
		n.logger.Errorf("Failed to look up webhook of user %s: %v", userId, err)
		return
	}
	if wh == nil {
		n.logger.Debugf("User %s has no webhook; dropping '%s' event", userId, evt.Kind)
		return
	}
	go n.deliver(wh.Url, evt)
}

func (n *notifier) deliver(url string, evt *dto.WebhookEvent) {

	host := strings.TrimPrefix(url, "https://")
	host = strings.TrimPrefix(host, "http://")
	if slashIx := strings.IndexByte(host, '/'); slashIx != -1 {
		host = host[:slashIx]
	}

	bodyJson, _ := json.Marshal(evt)
	dateStr := time.Now().UTC().Format(http.TimeFormat)

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(bodyJson))
	if err != nil {
		n.logger.Errorf("Failed to create webhook request for %s: %v", url, err)
		n.metrics.WebhookSent("error")
		return
	}
	n.userAgent.AddUserAgent(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("host", host)
	req.Header.Set("date", dateStr)

	signer, _, err := httpsig.NewSigner(
		[]httpsig.Algorithm{httpsig.RSA_SHA256},
		httpsig.DigestSha256,
		[]string{httpsig.RequestTarget, "Host", "date", "digest"},
		httpsig.Signature,
		0)
	if err != nil {
		n.logger.Errorf("Failed to create webhook signer: %v", err)
		n.metrics.WebhookSent("error")
		return
	}
	privKey, err := n.keyStore.GetSigningKey()
	if err != nil {
		n.logger.Errorf("Failed to get webhook signing key: %v", err)
		n.metrics.WebhookSent("error")
		return
	}
	if err = signer.SignRequest(privKey, n.urlb.SigningKeyId(), req, bodyJson); err != nil {
		n.logger.Errorf("Failed to sign webhook request: %v", err)
		n.metrics.WebhookSent("error")
		return
	}

	client := http.Client{}
	client.Timeout = time.Second * webhookTimeoutSec
	resp, err := client.Do(req)
	if err != nil {
		n.logger.Warnf("Webhook POST to %s failed: %v", url, err)
		n.metrics.WebhookSent("error")
		return
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 300 {
		n.logger.Warnf("Webhook POST to %s got status %s: %s", url, resp.Status, respBody)
		n.metrics.WebhookSent("error")
		return
	}
	n.logger.Debugf("Webhook '%s' event delivered to %s", evt.Kind, url)
	n.metrics.WebhookSent("ok")
}

func handleOrId(acct *dal.Account) string {
	if acct.Handle != "" {
		return acct.Handle
	}
	return fmt.Sprintf("account %d", acct.Id)
}
