package dal

import (
	"time"
)

// Account status values.
const (
	AccountStatusPending = "pending"
	AccountStatusActive  = "active"
)

// Status values shared by posts and threads. PartiallySent only ever
// applies to threads.
const (
	StatusPending       = "pending"
	StatusSending       = "sending"
	StatusRetrying      = "retrying"
	StatusSent          = "sent"
	StatusFailed        = "failed"
	StatusPartiallySent = "partially_sent"
)

// Media attachment status values.
const (
	MediaStatusPending  = "pending"
	MediaStatusUploaded = "uploaded"
)

const ProviderMastodon = "mastodon"

type Account struct {
	Id          int64
	UserId      string // opaque owner ID from the caller's user system
	Provider    string // mastodon
	Status      string
	Handle      string // @kermit@mastodon.social
	DisplayName string
	Bio         string
	AvatarUrl   string // remote avatar URL as reported by the provider
	AvatarFile  string // locally cached copy; empty until first fetched
	AvatarStale bool
	ProfileUrl  string // https://mastodon.social/@kermit
	RemoteId    string
	LinkState   string // one-shot OAuth state nonce; cleared when linking completes
	CreatedAt   time.Time
}

// ProviderAuth holds the credentials of one linked account.
// The access token is sealed at rest; see IKeyStore.
type ProviderAuth struct {
	Id           int64
	AccountId    int64
	Instance     string // mastodon.social
	AccessToken  string
	TokenType    string
	Scopes       string
	Authorized   bool
	AuthorizedAt *time.Time
}

// InstanceClient is our registered OAuth application on one instance.
type InstanceClient struct {
	Id           int64
	Instance     string
	ClientId     string
	ClientSecret string
	CreatedAt    time.Time
}

type ScheduledPost struct {
	Id             int64
	AccountId      int64
	ThreadId       *int64 // nil for standalone posts
	Position       int    // 0-based position within the thread
	Body           string
	SendAt         time.Time
	Status         string
	Retries        int
	NextAttemptAt  *time.Time
	ClaimedAt      *time.Time
	RemoteId       string
	RemoteUrl      string
	SentAt         *time.Time
	AutoBoostHours *float64
	BoostDueAt     *time.Time
	BoostRetries   int
	BoostRemoteId  string
	BoostedAt      *time.Time
	LastError      string
	CreatedAt      time.Time
}

type ScheduledThread struct {
	Id            int64
	AccountId     int64
	Status        string
	SendAt        time.Time
	SecsBetween   int // pause between consecutive member posts
	NextAttemptAt *time.Time
	ClaimedAt     *time.Time
	LastError     string
	CreatedAt     time.Time
}

type MediaAttachment struct {
	Id          int64
	PostId      *int64 // nil until attached; orphans get swept
	UserId      string
	FileName    string // on-disk name under the media dir
	OrigName    string // file name as uploaded by the caller
	MimeType    string
	ByteSize    int64
	ContentHash int64 // murmur3 of the raw bytes, for duplicate detection
	FocusX      float64
	FocusY      float64
	ThumbFile   string
	Blurhash    string
	Description string
	Status      string
	RemoteId    string // provider-side attachment ID once uploaded
	CreatedAt   time.Time
}

// Webhook is where we deliver failure notifications for one user.
type Webhook struct {
	Id        int64
	UserId    string
	Url       string
	CreatedAt time.Time
}

// ServiceKey is a named service-level RSA key, PEM-encoded and
// passphrase-protected.
type ServiceKey struct {
	Id         int64
	Name       string
	PrivKeyPem string
	CreatedAt  time.Time
}
