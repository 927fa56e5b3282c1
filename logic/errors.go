package logic

import (
	"errors"
	"fmt"
)

// ErrNotFound marks lookups of entities that do not exist. Handlers map
// it to a 404.
var ErrNotFound = errors.New("not found")

// AccountNotReadyError means the account has no completed, usable
// authorization. It never consumes retry budget; sends fail right away.
type AccountNotReadyError struct {
	AccountId int64
}

func (e *AccountNotReadyError) Error() string {
	return fmt.Sprintf("account %d is not ready to post", e.AccountId)
}

// MissingSettingError is raised at startup for a required setting that the
// config or secrets file does not provide.
type MissingSettingError struct {
	Name string
}

func (e *MissingSettingError) Error() string {
	return fmt.Sprintf("required setting is missing: %s", e.Name)
}

type MediaUploadError struct {
	AttachmentId int64
	Err          error
}

func (e *MediaUploadError) Error() string {
	return fmt.Sprintf("failed to upload media attachment %d: %v", e.AttachmentId, e.Err)
}

func (e *MediaUploadError) Unwrap() error { return e.Err }

type PostSendError struct {
	PostId int64
	Err    error
}

func (e *PostSendError) Error() string {
	return fmt.Sprintf("failed to send post %d: %v", e.PostId, e.Err)
}

func (e *PostSendError) Unwrap() error { return e.Err }

type ThreadSendError struct {
	ThreadId int64
	MemberId int64
	Err      error
}

func (e *ThreadSendError) Error() string {
	return fmt.Sprintf("failed to send thread %d at post %d: %v", e.ThreadId, e.MemberId, e.Err)
}

func (e *ThreadSendError) Unwrap() error { return e.Err }

type BoostSendError struct {
	PostId int64
	Err    error
}

func (e *BoostSendError) Error() string {
	return fmt.Sprintf("failed to boost post %d: %v", e.PostId, e.Err)
}

func (e *BoostSendError) Unwrap() error { return e.Err }

// permanentError marks a failure that retrying cannot fix, like a revoked
// token or a deleted remote status. Everything not marked this way is
// treated as transient.
type permanentError struct {
	inner error
}

func (e *permanentError) Error() string { return e.inner.Error() }

func (e *permanentError) Unwrap() error { return e.inner }

// Permanent wraps err so that IsPermanent reports true for it.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{inner: err}
}

// IsPermanent tells whether err, anywhere along its chain, has been marked
// as not worth retrying.
func IsPermanent(err error) bool {
	var pe *permanentError
	if errors.As(err, &pe) {
		return true
	}
	var nr *AccountNotReadyError
	return errors.As(err, &nr)
}
