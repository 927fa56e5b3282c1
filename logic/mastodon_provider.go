package logic

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/mattn/go-mastodon"
	"golang.org/x/oauth2"

	"post_later/dal"
	"post_later/shared"
)

type mastodonProvider struct {
	cfg     *shared.Config
	logger  shared.ILogger
	repo    dal.IRepo
	metrics IMetrics
	urlb    *shared.UrlBuilder
}

func NewMastodonProvider(cfg *shared.Config, logger shared.ILogger, repo dal.IRepo,
	metrics IMetrics) IProvider {
	return &mastodonProvider{
		cfg:     cfg,
		logger:  logger,
		repo:    repo,
		metrics: metrics,
		urlb:    shared.NewUrlBuilder(cfg),
	}
}

func (mp *mastodonProvider) Kind() string {
	return dal.ProviderMastodon
}

func (mp *mastodonProvider) reqCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(mp.cfg.Provider.TimeoutSecs)*time.Second)
}

// ensureInstanceClient returns our OAuth app registration on the instance,
// registering one on first contact.
func (mp *mastodonProvider) ensureInstanceClient(instance string) (*dal.InstanceClient, error) {

	ic, err := mp.repo.GetInstanceClient(instance)
	if err != nil {
		return nil, err
	}
	if ic != nil {
		return ic, nil
	}

	mp.logger.Infof("Registering OAuth app on instance %s", instance)
	obs := mp.metrics.StartProviderRequestOut("register_app")
	ctx, cancel := mp.reqCtx()
	defer cancel()
	app, err := mastodon.RegisterApp(ctx, &mastodon.AppConfig{
		Server:       "https://" + instance,
		ClientName:   mp.cfg.Provider.ClientName,
		Scopes:       strings.Join(mp.cfg.Provider.Scopes, " "),
		Website:      mp.cfg.Provider.Website,
		RedirectURIs: mp.urlb.OAuthCallback(dal.ProviderMastodon),
	})
	obs.Finish()
	if err != nil {
		return nil, fmt.Errorf("failed to register app on %s: %v", instance, err)
	}

	ic = &dal.InstanceClient{
		Instance:     instance,
		ClientId:     app.ClientID,
		ClientSecret: app.ClientSecret,
		CreatedAt:    time.Now(),
	}
	if _, err = mp.repo.AddInstanceClientIfNotExist(ic); err != nil {
		return nil, err
	}
	// Re-read: a concurrent registration may have won the insert
	return mp.repo.GetInstanceClient(instance)
}

func (mp *mastodonProvider) oauthConfig(instance string, ic *dal.InstanceClient) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     ic.ClientId,
		ClientSecret: ic.ClientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:  fmt.Sprintf("https://%s/oauth/authorize", instance),
			TokenURL: fmt.Sprintf("https://%s/oauth/token", instance),
		},
		RedirectURL: mp.urlb.OAuthCallback(dal.ProviderMastodon),
		Scopes:      mp.cfg.Provider.Scopes,
	}
}

func (mp *mastodonProvider) AuthorizeURL(instance, state string) (string, error) {
	ic, err := mp.ensureInstanceClient(instance)
	if err != nil {
		return "", err
	}
	return mp.oauthConfig(instance, ic).AuthCodeURL(state), nil
}

func (mp *mastodonProvider) ExchangeCode(instance, code string) (token, tokenType, scopes string, err error) {

	ic, err := mp.ensureInstanceClient(instance)
	if err != nil {
		return "", "", "", err
	}
	obs := mp.metrics.StartProviderRequestOut("exchange_code")
	defer obs.Finish()
	ctx, cancel := mp.reqCtx()
	defer cancel()
	tok, err := mp.oauthConfig(instance, ic).Exchange(ctx, code)
	if err != nil {
		return "", "", "", fmt.Errorf("code exchange with %s failed: %v", instance, err)
	}
	return tok.AccessToken, tok.TokenType, strings.Join(mp.cfg.Provider.Scopes, " "), nil
}

func (mp *mastodonProvider) client(auth *dal.ProviderAuth) *mastodon.Client {
	c := mastodon.NewClient(&mastodon.Config{
		Server:      "https://" + auth.Instance,
		AccessToken: auth.AccessToken,
	})
	c.Timeout = time.Duration(mp.cfg.Provider.TimeoutSecs) * time.Second
	return c
}

func (mp *mastodonProvider) FetchProfile(auth *dal.ProviderAuth) (*RemoteProfile, error) {

	obs := mp.metrics.StartProviderRequestOut("verify_credentials")
	defer obs.Finish()
	ctx, cancel := mp.reqCtx()
	defer cancel()
	acct, err := mp.client(auth).GetAccountCurrentUser(ctx)
	if err != nil {
		return nil, mp.classify(err)
	}
	return &RemoteProfile{
		RemoteId:    string(acct.ID),
		Username:    acct.Username,
		DisplayName: acct.DisplayName,
		Bio:         acct.Note,
		AvatarUrl:   acct.Avatar,
		ProfileUrl:  acct.URL,
	}, nil
}

func (mp *mastodonProvider) UploadMedia(auth *dal.ProviderAuth, ma *dal.MediaAttachment,
	filePath string) (string, error) {

	f, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", Permanent(err)
		}
		return "", err
	}
	defer f.Close()

	obs := mp.metrics.StartProviderRequestOut("upload_media")
	defer obs.Finish()
	ctx, cancel := mp.reqCtx()
	defer cancel()
	media := &mastodon.Media{File: f, Description: ma.Description}
	if ma.FocusX != 0 || ma.FocusY != 0 {
		media.Focus = fmt.Sprintf("%.2f,%.2f", ma.FocusX, ma.FocusY)
	}
	att, err := mp.client(auth).UploadMediaFromMedia(ctx, media)
	if err != nil {
		return "", mp.classify(err)
	}
	return string(att.ID), nil
}

func (mp *mastodonProvider) SendPost(auth *dal.ProviderAuth, body string, mediaIds []string,
	inReplyTo string) (*RemotePost, error) {

	obs := mp.metrics.StartProviderRequestOut("post_status")
	defer obs.Finish()
	ctx, cancel := mp.reqCtx()
	defer cancel()
	toot := &mastodon.Toot{Status: body, InReplyToID: mastodon.ID(inReplyTo)}
	for _, mid := range mediaIds {
		toot.MediaIDs = append(toot.MediaIDs, mastodon.ID(mid))
	}
	status, err := mp.client(auth).PostStatus(ctx, toot)
	if err != nil {
		return nil, mp.classify(err)
	}
	return &RemotePost{RemoteId: string(status.ID), Url: status.URL}, nil
}

func (mp *mastodonProvider) BoostPost(auth *dal.ProviderAuth, remoteId string) (string, error) {

	obs := mp.metrics.StartProviderRequestOut("reblog")
	defer obs.Finish()
	ctx, cancel := mp.reqCtx()
	defer cancel()
	status, err := mp.client(auth).Reblog(ctx, mastodon.ID(remoteId))
	if err != nil {
		return "", mp.classify(err)
	}
	return string(status.ID), nil
}

func (mp *mastodonProvider) SearchUsername(auth *dal.ProviderAuth, query string,
	limit int) ([]*RemoteProfile, error) {

	obs := mp.metrics.StartProviderRequestOut("accounts_search")
	defer obs.Finish()
	ctx, cancel := mp.reqCtx()
	defer cancel()
	accts, err := mp.client(auth).AccountsSearch(ctx, query, int64(limit))
	if err != nil {
		return nil, mp.classify(err)
	}
	res := make([]*RemoteProfile, 0, len(accts))
	for _, a := range accts {
		res = append(res, &RemoteProfile{
			RemoteId:    string(a.ID),
			Username:    a.Acct,
			DisplayName: a.DisplayName,
			Bio:         a.Note,
			AvatarUrl:   a.Avatar,
			ProfileUrl:  a.URL,
		})
	}
	return res, nil
}

var statusCodeRe = regexp.MustCompile(`\b([45]\d\d)\b`)

// classify decides whether a provider error is worth retrying. go-mastodon
// reports API failures as plain strings, so the status code gets fished out
// of the message. Unknown errors count as transient; the retry cap bounds
// how long we keep trying.
func (mp *mastodonProvider) classify(err error) error {
	if err == nil {
		return nil
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return err
	}
	m := statusCodeRe.FindStringSubmatch(err.Error())
	if m == nil {
		return err
	}
	switch m[1] {
	case "400", "401", "403", "404", "410", "413", "422":
		return Permanent(err)
	}
	return err
}
