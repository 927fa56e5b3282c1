package logic

import (
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"post_later/dal"
	"post_later/shared"
)

const avatarsSubdir = "avatars"
const maxAvatarBytes = 2 << 20
const maxSearchResults = 40

// ErrAccountBusy means the account still has scheduled or in-flight work.
var ErrAccountBusy = errors.New("account has scheduled posts; cancel them first")

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_account_directory.go -package mocks post_later/logic IAccountDirectory

type IAccountDirectory interface {
	// StartLink creates a pending account and returns the URL where the
	// user authorizes us on their instance.
	StartLink(userId, provider, instance string) (authUrl string, accountId int64, err error)
	// CompleteLink redeems the OAuth callback and activates the account.
	CompleteLink(state, code string) (*dal.Account, error)
	// UnlinkAccount removes an account. With cancelPending it first drops
	// scheduled work; it refuses while a send is in flight either way.
	UnlinkAccount(accountId int64, cancelPending bool) error
	RefreshProfile(accountId int64) error
	// RefreshNextStaleAvatar re-fetches the profile of one account whose
	// avatar changed upstream. Returns false when there is none.
	RefreshNextStaleAvatar() (bool, error)
	SearchUsername(accountId int64, query string, limit int) ([]*RemoteProfile, error)
}

type accountDirectory struct {
	cfg       *shared.Config
	logger    shared.ILogger
	clock     shared.IClock
	repo      dal.IRepo
	registry  IProviderRegistry
	keyStore  IKeyStore
	blocked   IBlockedInstances
	userAgent shared.IUserAgent
}

func NewAccountDirectory(
	cfg *shared.Config,
	logger shared.ILogger,
	clock shared.IClock,
	repo dal.IRepo,
	registry IProviderRegistry,
	keyStore IKeyStore,
	blocked IBlockedInstances,
	userAgent shared.IUserAgent,
) IAccountDirectory {
	if err := os.MkdirAll(filepath.Join(cfg.Media.Dir, avatarsSubdir), 0755); err != nil {
		logger.Errorf("Failed to create avatar cache dir: %v", err)
		panic(err)
	}
	return &accountDirectory{
		cfg:       cfg,
		logger:    logger,
		clock:     clock,
		repo:      repo,
		registry:  registry,
		keyStore:  keyStore,
		blocked:   blocked,
		userAgent: userAgent}
}

func (adir *accountDirectory) StartLink(userId, provider, instance string) (string, int64, error) {

	prov, err := adir.registry.Get(provider)
	if err != nil {
		return "", 0, err
	}
	domain, err := shared.NormalizeInstanceDomain(instance)
	if err != nil {
		return "", 0, err
	}
	var isBlocked bool
	if isBlocked, err = adir.blocked.IsBlocked(domain); err != nil {
		return "", 0, err
	}
	if isBlocked {
		adir.logger.Infof("Refusing to link account on blocked instance %s", domain)
		return "", 0, fmt.Errorf("instance %s is not allowed here", domain)
	}

	state := uuid.NewString()
	acct := &dal.Account{
		UserId:    userId,
		Provider:  provider,
		Status:    dal.AccountStatusPending,
		LinkState: state,
		CreatedAt: adir.clock.Now(),
	}
	accountId, err := adir.repo.AddAccount(acct)
	if err != nil {
		return "", 0, err
	}
	auth := &dal.ProviderAuth{AccountId: accountId, Instance: domain}
	if err = adir.repo.AddProviderAuth(auth); err != nil {
		return "", 0, err
	}
	authUrl, err := prov.AuthorizeURL(domain, state)
	if err != nil {
		// Don't leave the half-made account behind
		_ = adir.repo.DeleteAccount(accountId)
		return "", 0, err
	}

	adir.logger.Infof("Started linking %s account on %s for user %s", provider, domain, userId)
	return authUrl, accountId, nil
}

func (adir *accountDirectory) CompleteLink(state, code string) (*dal.Account, error) {

	acct, err := adir.repo.GetAccountByLinkState(state)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, errors.New("no account linking is in progress for this state")
	}
	auth, err := adir.repo.GetProviderAuth(acct.Id)
	if err != nil {
		return nil, err
	}
	if auth == nil {
		return nil, fmt.Errorf("account %d has no provider authorization record", acct.Id)
	}
	prov, err := adir.registry.Get(acct.Provider)
	if err != nil {
		return nil, err
	}

	token, tokenType, scopes, err := prov.ExchangeCode(auth.Instance, code)
	if err != nil {
		return nil, err
	}
	sealed, err := adir.keyStore.SealToken(token)
	if err != nil {
		return nil, err
	}
	now := adir.clock.Now()
	auth.AccessToken = sealed
	auth.TokenType = tokenType
	auth.Scopes = scopes
	auth.Authorized = true
	auth.AuthorizedAt = &now
	if err = adir.repo.UpdateProviderAuth(auth); err != nil {
		return nil, err
	}

	// Fetch the profile with the fresh token; the link still succeeds if
	// this part fails, a later refresh will fill it in.
	plainAuth := *auth
	plainAuth.AccessToken = token
	if err = adir.applyRemoteProfile(acct, &plainAuth, prov); err != nil {
		adir.logger.Warnf("Account %d linked but profile fetch failed: %v", acct.Id, err)
	}

	if err = adir.repo.SetAccountStatus(acct.Id, dal.AccountStatusActive); err != nil {
		return nil, err
	}
	if err = adir.repo.ClearAccountLinkState(acct.Id); err != nil {
		return nil, err
	}
	acct.Status = dal.AccountStatusActive
	acct.LinkState = ""

	adir.logger.Infof("Completed linking account %d (%s)", acct.Id, acct.Handle)
	return acct, nil
}

func (adir *accountDirectory) UnlinkAccount(accountId int64, cancelPending bool) error {

	acct, err := adir.repo.GetAccount(accountId)
	if err != nil {
		return err
	}
	if acct == nil {
		return fmt.Errorf("%w: account %d", ErrNotFound, accountId)
	}

	pending, err := adir.repo.GetPendingWorkCount(accountId)
	if err != nil {
		return err
	}
	if pending > 0 {
		if !cancelPending {
			return ErrAccountBusy
		}
		var canceled int64
		if canceled, err = adir.repo.CancelAccountWork(accountId); err != nil {
			return err
		}
		adir.logger.Infof("Canceled %d scheduled items for account %d", canceled, accountId)
		if pending, err = adir.repo.GetPendingWorkCount(accountId); err != nil {
			return err
		}
		if pending > 0 {
			// Whatever is left is mid-send; the worker must finish first
			return fmt.Errorf("%w: %d sends in flight; try again shortly", ErrAccountBusy, pending)
		}
	}

	if err = adir.repo.DeleteAccount(accountId); err != nil {
		return err
	}
	if acct.AvatarFile != "" {
		fn := filepath.Join(adir.cfg.Media.Dir, avatarsSubdir, acct.AvatarFile)
		if err = os.Remove(fn); err != nil && !os.IsNotExist(err) {
			adir.logger.Warnf("Failed to remove cached avatar %s: %v", fn, err)
		}
	}

	adir.logger.Infof("Unlinked account %d (%s)", accountId, acct.Handle)
	return nil
}

func (adir *accountDirectory) RefreshProfile(accountId int64) error {

	acct, err := adir.repo.GetAccount(accountId)
	if err != nil {
		return err
	}
	if acct == nil {
		return fmt.Errorf("%w: account %d", ErrNotFound, accountId)
	}
	auth, err := openReadyAuth(adir.repo, adir.keyStore, accountId)
	if err != nil {
		return err
	}
	prov, err := adir.registry.Get(acct.Provider)
	if err != nil {
		return err
	}
	return adir.applyRemoteProfile(acct, auth, prov)
}

func (adir *accountDirectory) RefreshNextStaleAvatar() (bool, error) {

	acct, err := adir.repo.GetStaleAvatarAccount()
	if err != nil || acct == nil {
		return false, err
	}
	if err = adir.RefreshProfile(acct.Id); err != nil {
		adir.logger.Warnf("Failed to refresh profile of account %d: %v", acct.Id, err)
		// Keep the old cached file and stop re-trying on every sweep
		_ = adir.repo.SetAccountAvatarFile(acct.Id, acct.AvatarFile)
	}
	return true, nil
}

func (adir *accountDirectory) SearchUsername(accountId int64, query string, limit int) ([]*RemoteProfile, error) {

	acct, err := adir.repo.GetAccount(accountId)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, fmt.Errorf("%w: account %d", ErrNotFound, accountId)
	}
	auth, err := openReadyAuth(adir.repo, adir.keyStore, accountId)
	if err != nil {
		return nil, err
	}
	prov, err := adir.registry.Get(acct.Provider)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > maxSearchResults {
		limit = 10
	}
	return prov.SearchUsername(auth, query, limit)
}

func (adir *accountDirectory) applyRemoteProfile(acct *dal.Account, auth *dal.ProviderAuth, prov IProvider) error {

	profile, err := prov.FetchProfile(auth)
	if err != nil {
		return err
	}
	acct.RemoteId = profile.RemoteId
	acct.Handle = shared.FullHandle(profile.Username, auth.Instance)
	acct.DisplayName = profile.DisplayName
	acct.Bio = shared.TruncateWithEllipsis(stripHtml(profile.Bio), shared.MaxBioLen)
	acct.ProfileUrl = profile.ProfileUrl
	if profile.AvatarUrl != acct.AvatarUrl {
		acct.AvatarUrl = profile.AvatarUrl
		acct.AvatarStale = true
	}
	if err = adir.repo.UpdateAccountProfile(acct); err != nil {
		return err
	}
	if !acct.AvatarStale || acct.AvatarUrl == "" {
		return nil
	}

	oldFile := acct.AvatarFile
	fileName, err := adir.fetchAvatar(acct.AvatarUrl)
	if err != nil {
		adir.logger.Warnf("Failed to cache avatar for account %d: %v", acct.Id, err)
		return nil
	}
	if err = adir.repo.SetAccountAvatarFile(acct.Id, fileName); err != nil {
		return err
	}
	acct.AvatarFile = fileName
	acct.AvatarStale = false
	if oldFile != "" && oldFile != fileName {
		_ = os.Remove(filepath.Join(adir.cfg.Media.Dir, avatarsSubdir, oldFile))
	}
	return nil
}

func (adir *accountDirectory) fetchAvatar(url string) (string, error) {

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return "", err
	}
	adir.userAgent.AddUserAgent(req)
	client := http.Client{Timeout: time.Duration(adir.cfg.Provider.TimeoutSecs) * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("avatar request returned status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAvatarBytes))
	if err != nil {
		return "", err
	}

	ext := ".img"
	switch resp.Header.Get("Content-Type") {
	case "image/jpeg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	case "image/gif":
		ext = ".gif"
	case "image/webp":
		ext = ".webp"
	}
	fileName := "avatar-" + uuid.NewString() + ext
	fn := filepath.Join(adir.cfg.Media.Dir, avatarsSubdir, fileName)
	if err = os.WriteFile(fn, data, 0644); err != nil {
		return "", err
	}
	return fileName, nil
}

func stripHtml(htm string) string {
	p := bluemonday.StrictPolicy()
	plain := p.Sanitize(htm)
	plain = html.UnescapeString(plain)
	plain = strings.TrimSpace(plain)
	return plain
}
