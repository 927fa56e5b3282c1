package logic

import (
	"fmt"

	"post_later/dal"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_provider.go -package mocks post_later/logic IProvider

// RemoteProfile is what a provider reports about a linked identity.
type RemoteProfile struct {
	RemoteId    string
	Username    string
	DisplayName string
	Bio         string
	AvatarUrl   string
	ProfileUrl  string
}

// RemotePost identifies a status the provider has accepted.
type RemotePost struct {
	RemoteId string
	Url      string
}

// IProvider adapts one social network. Auth objects passed in already
// carry unsealed access tokens. Errors are marked permanent where
// retrying cannot help; everything else counts as transient.
type IProvider interface {
	Kind() string
	// AuthorizeURL registers our app on the instance if needed and returns
	// the URL to send the user to.
	AuthorizeURL(instance, state string) (string, error)
	// ExchangeCode redeems an OAuth authorization code for an access token.
	ExchangeCode(instance, code string) (token, tokenType, scopes string, err error)
	FetchProfile(auth *dal.ProviderAuth) (*RemoteProfile, error)
	UploadMedia(auth *dal.ProviderAuth, ma *dal.MediaAttachment, filePath string) (remoteId string, err error)
	SendPost(auth *dal.ProviderAuth, body string, mediaIds []string, inReplyTo string) (*RemotePost, error)
	BoostPost(auth *dal.ProviderAuth, remoteId string) (boostId string, err error)
	SearchUsername(auth *dal.ProviderAuth, query string, limit int) ([]*RemoteProfile, error)
}

type IProviderRegistry interface {
	Get(kind string) (IProvider, error)
}

type providerRegistry struct {
	providers map[string]IProvider
}

func NewProviderRegistry(providers []IProvider) IProviderRegistry {
	res := providerRegistry{providers: map[string]IProvider{}}
	for _, p := range providers {
		res.providers[p.Kind()] = p
	}
	return &res
}

func (reg *providerRegistry) Get(kind string) (IProvider, error) {
	p, ok := reg.providers[kind]
	if !ok {
		return nil, fmt.Errorf("no provider registered for '%s'", kind)
	}
	return p, nil
}

// authReady tells whether stored credentials are usable for posting.
func authReady(auth *dal.ProviderAuth) bool {
	return auth != nil && auth.Authorized && auth.AccessToken != ""
}

// openReadyAuth loads an account's credentials and unseals the access token.
// Returns AccountNotReadyError when the account has no usable authorization.
func openReadyAuth(repo dal.IRepo, keyStore IKeyStore, accountId int64) (*dal.ProviderAuth, error) {

	auth, err := repo.GetProviderAuth(accountId)
	if err != nil {
		return nil, err
	}
	if !authReady(auth) {
		return nil, &AccountNotReadyError{AccountId: accountId}
	}
	plain, err := keyStore.OpenToken(auth.AccessToken)
	if err != nil {
		return nil, err
	}
	auth.AccessToken = plain
	return auth, nil
}
