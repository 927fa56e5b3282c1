package shared

import "fmt"

// UrlBuilder derives the service's public URLs from the configured host.
type UrlBuilder struct {
	Host string
}

func NewUrlBuilder(cfg *Config) *UrlBuilder {
	return &UrlBuilder{Host: cfg.Host}
}

func (ub *UrlBuilder) SiteUrl() string {
	return fmt.Sprintf("https://%s/", ub.Host)
}

func (ub *UrlBuilder) OAuthCallback(provider string) string {
	return fmt.Sprintf("https://%s/auth/%s/callback", ub.Host, provider)
}

func (ub *UrlBuilder) AccountApiUrl(accountId int64) string {
	return fmt.Sprintf("https://%s/api/accounts/%d", ub.Host, accountId)
}

func (ub *UrlBuilder) PostApiUrl(postId int64) string {
	return fmt.Sprintf("https://%s/api/posts/%d", ub.Host, postId)
}

func (ub *UrlBuilder) ThreadApiUrl(threadId int64) string {
	return fmt.Sprintf("https://%s/api/threads/%d", ub.Host, threadId)
}

func (ub *UrlBuilder) SigningKeyId() string {
	return fmt.Sprintf("https://%s/keys/webhook#main-key", ub.Host)
}
