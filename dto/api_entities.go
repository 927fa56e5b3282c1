package dto

import "time"

type Account struct {
	Id          int64     `json:"id"`
	UserId      string    `json:"user_id"`
	Provider    string    `json:"provider"`
	Status      string    `json:"status"`
	Handle      string    `json:"handle"`
	DisplayName string    `json:"display_name"`
	Bio         string    `json:"bio"`
	AvatarUrl   string    `json:"avatar_url"`
	ProfileUrl  string    `json:"profile_url"`
	Instance    string    `json:"instance,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type NewAccount struct {
	UserId   string `json:"user_id"`
	Provider string `json:"provider"`
	Instance string `json:"instance"`
}

type NewAccountResponse struct {
	Id           int64  `json:"id"`
	AuthorizeUrl string `json:"authorize_url"`
}

type Post struct {
	Id             int64      `json:"id"`
	AccountId      int64      `json:"account_id"`
	ThreadId       *int64     `json:"thread_id,omitempty"`
	Position       int        `json:"position"`
	Body           string     `json:"body"`
	SendAt         time.Time  `json:"send_at"`
	Status         string     `json:"status"`
	Retries        int        `json:"retries"`
	NextAttemptAt  *time.Time `json:"next_attempt_at,omitempty"`
	RemoteId       string     `json:"remote_id,omitempty"`
	RemoteUrl      string     `json:"remote_url,omitempty"`
	SentAt         *time.Time `json:"sent_at,omitempty"`
	AutoBoostHours *float64   `json:"auto_boost_hours,omitempty"`
	BoostDueAt     *time.Time `json:"boost_due_at,omitempty"`
	BoostedAt      *time.Time `json:"boosted_at,omitempty"`
	LastError      string     `json:"last_error,omitempty"`
	MediaIds       []int64    `json:"media_ids,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type NewPost struct {
	AccountId      int64     `json:"account_id"`
	Body           string    `json:"body"`
	SendAt         time.Time `json:"send_at"`
	MediaIds       []int64   `json:"media_ids,omitempty"`
	AutoBoostHours *float64  `json:"auto_boost_hours,omitempty"`
}

type Thread struct {
	Id          int64     `json:"id"`
	AccountId   int64     `json:"account_id"`
	Status      string    `json:"status"`
	SendAt      time.Time `json:"send_at"`
	SecsBetween int       `json:"secs_between"`
	LastError   string    `json:"last_error,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	Posts       []Post    `json:"posts,omitempty"`
}

type NewThread struct {
	AccountId   int64           `json:"account_id"`
	SendAt      time.Time       `json:"send_at"`
	SecsBetween int             `json:"secs_between,omitempty"`
	Posts       []NewThreadPost `json:"posts"`
}

type NewThreadPost struct {
	Body     string  `json:"body"`
	MediaIds []int64 `json:"media_ids,omitempty"`
}

type MediaAttachment struct {
	Id          int64     `json:"id"`
	PostId      *int64    `json:"post_id,omitempty"`
	OrigName    string    `json:"orig_name"`
	MimeType    string    `json:"mime_type"`
	ByteSize    int64     `json:"byte_size"`
	FocusX      float64   `json:"focus_x"`
	FocusY      float64   `json:"focus_y"`
	Blurhash    string    `json:"blurhash,omitempty"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type ProfileResult struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	AvatarUrl   string `json:"avatar_url"`
	ProfileUrl  string `json:"profile_url"`
}

type NewWebhook struct {
	UserId string `json:"user_id"`
	Url    string `json:"url"`
}

// WebhookEvent is the payload we POST to a user's webhook when something
// goes terminally wrong with their scheduled work.
type WebhookEvent struct {
	Kind       string    `json:"kind"`
	Message    string    `json:"message"`
	AccountId  int64     `json:"account_id"`
	PostId     *int64    `json:"post_id,omitempty"`
	PostUrl    string    `json:"post_url,omitempty"`
	ThreadId   *int64    `json:"thread_id,omitempty"`
	ThreadUrl  string    `json:"thread_url,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
