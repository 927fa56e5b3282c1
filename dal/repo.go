package dal

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mattn/go-sqlite3"

	"post_later/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_repo.go -package mocks post_later/dal IRepo

const schemaVer = 1

//go:embed scripts/*
var scripts embed.FS

type IRepo interface {
	InitUpdateDb()

	AddAccount(acct *Account) (int64, error)
	GetAccount(id int64) (*Account, error)
	GetAccountByLinkState(state string) (*Account, error)
	GetAccountsByUser(userId string) ([]*Account, error)
	UpdateAccountProfile(acct *Account) error
	SetAccountStatus(id int64, status string) error
	SetAccountAvatarFile(id int64, fileName string) error
	GetStaleAvatarAccount() (*Account, error)
	ClearAccountLinkState(id int64) error
	GetPendingWorkCount(accountId int64) (int, error)
	CancelAccountWork(accountId int64) (int64, error)
	DeleteAccount(id int64) error

	AddProviderAuth(auth *ProviderAuth) error
	GetProviderAuth(accountId int64) (*ProviderAuth, error)
	UpdateProviderAuth(auth *ProviderAuth) error
	DeleteProviderAuth(accountId int64) error

	AddInstanceClientIfNotExist(ic *InstanceClient) (isNew bool, err error)
	GetInstanceClient(instance string) (*InstanceClient, error)

	AddPost(post *ScheduledPost) (int64, error)
	GetPost(id int64) (*ScheduledPost, error)
	GetPostsByAccount(accountId int64, status string) ([]*ScheduledPost, error)
	GetDuePosts(due time.Time, limit int) ([]*ScheduledPost, error)
	GetDueBoosts(due time.Time, limit int) ([]*ScheduledPost, error)
	ClaimPost(id int64, claimedAt time.Time) (bool, error)
	UpdatePostSent(id int64, remoteId, remoteUrl string, sentAt time.Time, boostDueAt *time.Time) error
	UpdatePostRetry(id int64, retries int, nextAttemptAt time.Time, lastError string) error
	UpdatePostFailed(id int64, lastError string) error
	UpdatePostBoosted(id int64, boostRemoteId string, boostedAt time.Time) error
	UpdateBoostRetry(id int64, boostRetries int, boostDueAt time.Time, lastError string) error
	ClearBoost(id int64, lastError string) error
	DeletePostIfPending(id int64) (bool, error)
	ReleaseStalePosts(claimedBefore, nextAttemptAt time.Time) (int64, error)

	AddThread(thread *ScheduledThread) (int64, error)
	GetThread(id int64) (*ScheduledThread, error)
	GetThreadsByAccount(accountId int64) ([]*ScheduledThread, error)
	GetThreadPosts(threadId int64) ([]*ScheduledPost, error)
	GetDueThreads(due time.Time, limit int) ([]*ScheduledThread, error)
	ClaimThread(id int64, claimedAt time.Time) (bool, error)
	UpdateThreadStatus(id int64, status, lastError string) error
	UpdateThreadRetry(id int64, nextAttemptAt time.Time, lastError string) error
	DeleteThreadIfPending(id int64) (bool, error)
	ReleaseStaleThreads(claimedBefore, nextAttemptAt time.Time) (int64, error)

	AddMediaAttachment(ma *MediaAttachment) (int64, error)
	GetMediaAttachment(id int64) (*MediaAttachment, error)
	GetMediaByHash(contentHash int64, userId string, byteSize int64) (*MediaAttachment, error)
	GetMediaForPost(postId int64) ([]*MediaAttachment, error)
	AttachMediaToPost(mediaIds []int64, postId int64) error
	UpdateMediaUploaded(id int64, remoteId string) error
	GetOrphanMedia(olderThan time.Time, limit int) ([]*MediaAttachment, error)
	CountMediaByHash(contentHash, excludeId int64) (int, error)
	DeleteMediaIfUnattached(id int64) (bool, error)
	DeleteMediaAttachment(id int64) error

	SetWebhook(userId, url string) error
	GetWebhookForUser(userId string) (*Webhook, error)
	DeleteWebhook(userId string) error

	GetServiceKey(name string) (string, error)
	AddServiceKey(name, privKeyPem string) error
}

type Repo struct {
	cfg    *shared.Config
	logger shared.ILogger
	db     *sql.DB
	muDb   sync.RWMutex
}

func NewRepo(cfg *shared.Config, logger shared.ILogger) IRepo {

	var err error
	var db *sql.DB

	// https://phiresky.github.io/blog/2020/sqlite-performance-tuning/
	// https://www.reddit.com/r/golang/comments/16xswxd/concurrency_when_writing_data_into_sqlite/
	// https://github.com/mattn/go-sqlite3/issues/1022#issuecomment-1067353980
	// _synchronous=1 is "normal"
	cstr := "file:%s?cache=shared&mode=rwc&_journal_mode=WAL&_synchronous=1&_busy_timeout=5000"
	db, err = sql.Open("sqlite3", fmt.Sprintf(cstr, cfg.DbFile))
	if err != nil {
		logger.Errorf("Failed to open/create DB file: %s: %v", cfg.DbFile, err)
		panic(err)
	}

	repo := Repo{
		cfg:    cfg,
		logger: logger,
		db:     db,
	}

	return &repo
}

func (repo *Repo) InitUpdateDb() {

	dbVer := 0
	sysParamsExists := false
	var err error
	var rows *sql.Rows

	rows, err = repo.db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name='sys_params'")
	if err != nil {
		repo.logger.Errorf("Failed to check if 'sys_params' table exists: %v", err)
		panic(err)
	}
	for rows.Next() {
		sysParamsExists = true
	}
	_ = rows.Close()
	if !sysParamsExists {
		repo.logger.Printf("Database appears to be empty; current schema version is %d", schemaVer)
	} else {
		row := repo.db.QueryRow("SELECT val FROM sys_params WHERE name='schema_ver'")
		if err = row.Scan(&dbVer); err != nil {
			repo.logger.Errorf("Failed to query schema version: %v", err)
			panic(err)
		}
		repo.logger.Printf("Database is at version %d; current schema version is %d", dbVer, schemaVer)
	}
	for i := dbVer; i < schemaVer; i += 1 {
		nextVer := i + 1
		fn := fmt.Sprintf("scripts/create-%02d.sql", nextVer)
		repo.logger.Printf("Running %s", fn)
		var sqlBytes []byte
		if sqlBytes, err = scripts.ReadFile(fn); err != nil {
			repo.logger.Errorf("Failed to read init script %s: %v", fn, err)
			panic(err)
		}
		sqlStr := string(sqlBytes)
		if _, err = repo.db.Exec(sqlStr); err != nil {
			repo.logger.Errorf("Failed to execute init script %s: %v", fn, err)
			panic(err)
		}
		_, err = repo.db.Exec("UPDATE sys_params SET val=? WHERE name='schema_ver'", nextVer)
		if err != nil {
			repo.logger.Errorf("Failed to update schema_ver to %d: %v", nextVer, err)
			panic(err)
		}
	}
}

// === Accounts =======================================================

const accountCols = `id, created_at, user_id, provider, status, handle, display_name, bio,
	avatar_url, avatar_file, avatar_stale, profile_url, remote_id, link_state`

func scanAccount(row interface{ Scan(...any) error }) (*Account, error) {
	var res Account
	err := row.Scan(&res.Id, &res.CreatedAt, &res.UserId, &res.Provider, &res.Status, &res.Handle,
		&res.DisplayName, &res.Bio, &res.AvatarUrl, &res.AvatarFile, &res.AvatarStale,
		&res.ProfileUrl, &res.RemoteId, &res.LinkState)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		} else {
			return nil, err
		}
	}
	return &res, nil
}

func (repo *Repo) AddAccount(acct *Account) (int64, error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	res, err := repo.db.Exec(`INSERT INTO accounts (created_at, user_id, provider, status, link_state)
		VALUES(?, ?, ?, ?, ?)`,
		acct.CreatedAt, acct.UserId, acct.Provider, acct.Status, acct.LinkState)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (repo *Repo) GetAccount(id int64) (*Account, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT `+accountCols+` FROM accounts WHERE id=?`, id)
	return scanAccount(row)
}

func (repo *Repo) GetAccountByLinkState(state string) (*Account, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT `+accountCols+` FROM accounts WHERE link_state=? AND link_state<>''`, state)
	return scanAccount(row)
}

func (repo *Repo) GetAccountsByUser(userId string) ([]*Account, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT `+accountCols+` FROM accounts WHERE user_id=? ORDER BY id`, userId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*Account, 0)
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, a)
	}
	return res, rows.Err()
}

func (repo *Repo) UpdateAccountProfile(acct *Account) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE accounts SET handle=?, display_name=?, bio=?, avatar_url=?,
		avatar_stale=?, profile_url=?, remote_id=? WHERE id=?`,
		acct.Handle, acct.DisplayName, acct.Bio, acct.AvatarUrl,
		acct.AvatarStale, acct.ProfileUrl, acct.RemoteId, acct.Id)
	return err
}

func (repo *Repo) SetAccountStatus(id int64, status string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE accounts SET status=? WHERE id=?`, status, id)
	return err
}

func (repo *Repo) SetAccountAvatarFile(id int64, fileName string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE accounts SET avatar_file=?, avatar_stale=0 WHERE id=?`, fileName, id)
	return err
}

func (repo *Repo) GetStaleAvatarAccount() (*Account, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT ` + accountCols + ` FROM accounts
		WHERE status='active' AND avatar_stale=1 LIMIT 1`)
	return scanAccount(row)
}

func (repo *Repo) ClearAccountLinkState(id int64) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE accounts SET link_state='' WHERE id=?`, id)
	return err
}

func (repo *Repo) GetPendingWorkCount(accountId int64) (int, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT
		(SELECT COUNT(*) FROM posts WHERE account_id=? AND status IN ('pending', 'sending', 'retrying'))
		+ (SELECT COUNT(*) FROM threads WHERE account_id=? AND status IN ('pending', 'sending', 'retrying'))`,
		accountId, accountId)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// CancelAccountWork deletes the account's pending and retrying posts and
// threads. Threads currently being sent, and their members, are left alone.
func (repo *Repo) CancelAccountWork(accountId int64) (int64, error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	var deleted int64

	_, err := repo.db.Exec(`UPDATE media_attachments SET post_id=NULL WHERE post_id IN
		(SELECT id FROM posts WHERE account_id=? AND status IN ('pending', 'retrying')
		 AND (thread_id IS NULL OR thread_id IN
			(SELECT id FROM threads WHERE account_id=? AND status IN ('pending', 'retrying'))))`,
		accountId, accountId)
	if err != nil {
		return 0, err
	}
	res, err := repo.db.Exec(`DELETE FROM posts WHERE account_id=? AND status IN ('pending', 'retrying')
		AND (thread_id IS NULL OR thread_id IN
			(SELECT id FROM threads WHERE account_id=? AND status IN ('pending', 'retrying')))`,
		accountId, accountId)
	if err != nil {
		return 0, err
	}
	if n, err := res.RowsAffected(); err == nil {
		deleted += n
	}
	res, err = repo.db.Exec(`DELETE FROM threads WHERE account_id=? AND status IN ('pending', 'retrying')`,
		accountId)
	if err != nil {
		return deleted, err
	}
	if n, err := res.RowsAffected(); err == nil {
		deleted += n
	}
	// Sent members of removed threads live on as standalone records
	_, err = repo.db.Exec(`UPDATE posts SET thread_id=NULL WHERE account_id=? AND thread_id IS NOT NULL
		AND thread_id NOT IN (SELECT id FROM threads)`, accountId)
	return deleted, err
}

func (repo *Repo) DeleteAccount(id int64) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE media_attachments SET post_id=NULL WHERE post_id IN
		(SELECT id FROM posts WHERE account_id=?)`, id)
	if err != nil {
		return err
	}
	if _, err = repo.db.Exec(`DELETE FROM posts WHERE account_id=?`, id); err != nil {
		return err
	}
	if _, err = repo.db.Exec(`DELETE FROM threads WHERE account_id=?`, id); err != nil {
		return err
	}
	if _, err = repo.db.Exec(`DELETE FROM provider_auths WHERE account_id=?`, id); err != nil {
		return err
	}
	_, err = repo.db.Exec(`DELETE FROM accounts WHERE id=?`, id)
	return err
}

// === Provider auths =================================================

func (repo *Repo) AddProviderAuth(auth *ProviderAuth) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO provider_auths
		(account_id, instance, access_token, token_type, scopes, authorized, authorized_at)
		VALUES(?, ?, ?, ?, ?, ?, ?)`,
		auth.AccountId, auth.Instance, auth.AccessToken, auth.TokenType, auth.Scopes,
		auth.Authorized, auth.AuthorizedAt)
	return err
}

func (repo *Repo) GetProviderAuth(accountId int64) (*ProviderAuth, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT id, account_id, instance, access_token, token_type, scopes,
		authorized, authorized_at FROM provider_auths WHERE account_id=?`, accountId)
	var res ProviderAuth
	err := row.Scan(&res.Id, &res.AccountId, &res.Instance, &res.AccessToken, &res.TokenType,
		&res.Scopes, &res.Authorized, &res.AuthorizedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		} else {
			return nil, err
		}
	}
	return &res, nil
}

func (repo *Repo) UpdateProviderAuth(auth *ProviderAuth) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE provider_auths SET access_token=?, token_type=?, scopes=?,
		authorized=?, authorized_at=? WHERE account_id=?`,
		auth.AccessToken, auth.TokenType, auth.Scopes, auth.Authorized, auth.AuthorizedAt, auth.AccountId)
	return err
}

func (repo *Repo) DeleteProviderAuth(accountId int64) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`DELETE FROM provider_auths WHERE account_id=?`, accountId)
	return err
}

// === Instance clients ===============================================

func (repo *Repo) AddInstanceClientIfNotExist(ic *InstanceClient) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	isNew = true
	_, err = repo.db.Exec(`INSERT INTO instance_clients (instance, client_id, client_secret, created_at)
		VALUES(?, ?, ?, ?)`,
		ic.Instance, ic.ClientId, ic.ClientSecret, ic.CreatedAt)
	if err == nil {
		return
	}
	// MySQL: mysql.MySQLError; mysqlErr.Number == 1062
	if sqliteErr, ok := err.(sqlite3.Error); ok {
		// Duplicate key: client for this instance already registered
		if sqliteErr.Code == 19 && sqliteErr.ExtendedCode == 2067 {
			isNew = false
			err = nil
			return
		}
	}
	return
}

func (repo *Repo) GetInstanceClient(instance string) (*InstanceClient, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT id, instance, client_id, client_secret, created_at
		FROM instance_clients WHERE instance=?`, instance)
	var res InstanceClient
	err := row.Scan(&res.Id, &res.Instance, &res.ClientId, &res.ClientSecret, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		} else {
			return nil, err
		}
	}
	return &res, nil
}

// === Posts ==========================================================

const postCols = `id, account_id, thread_id, position, body, send_at, status, retries,
	next_attempt_at, claimed_at, remote_id, remote_url, sent_at, auto_boost_hours,
	boost_due_at, boost_retries, boost_remote_id, boosted_at, last_error, created_at`

func scanPost(row interface{ Scan(...any) error }) (*ScheduledPost, error) {
	var res ScheduledPost
	err := row.Scan(&res.Id, &res.AccountId, &res.ThreadId, &res.Position, &res.Body, &res.SendAt,
		&res.Status, &res.Retries, &res.NextAttemptAt, &res.ClaimedAt, &res.RemoteId, &res.RemoteUrl,
		&res.SentAt, &res.AutoBoostHours, &res.BoostDueAt, &res.BoostRetries, &res.BoostRemoteId,
		&res.BoostedAt, &res.LastError, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		} else {
			return nil, err
		}
	}
	return &res, nil
}

func (repo *Repo) AddPost(post *ScheduledPost) (int64, error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	res, err := repo.db.Exec(`INSERT INTO posts
		(account_id, thread_id, position, body, send_at, status, auto_boost_hours, created_at)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
		post.AccountId, post.ThreadId, post.Position, post.Body, post.SendAt, post.Status,
		post.AutoBoostHours, post.CreatedAt)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (repo *Repo) GetPost(id int64) (*ScheduledPost, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT `+postCols+` FROM posts WHERE id=?`, id)
	return scanPost(row)
}

func (repo *Repo) GetPostsByAccount(accountId int64, status string) ([]*ScheduledPost, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	query := `SELECT ` + postCols + ` FROM posts WHERE account_id=? ORDER BY send_at DESC, id DESC`
	args := []any{accountId}
	if status != "" {
		query = `SELECT ` + postCols + ` FROM posts WHERE account_id=? AND status=?
			ORDER BY send_at DESC, id DESC`
		args = append(args, status)
	}
	rows, err := repo.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*ScheduledPost, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, rows.Err()
}

func (repo *Repo) GetDuePosts(due time.Time, limit int) ([]*ScheduledPost, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT `+postCols+` FROM posts
		WHERE thread_id IS NULL AND status IN ('pending', 'retrying')
		AND COALESCE(next_attempt_at, send_at) <= ?
		ORDER BY COALESCE(next_attempt_at, send_at), id LIMIT ?`, due, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*ScheduledPost, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, rows.Err()
}

func (repo *Repo) GetDueBoosts(due time.Time, limit int) ([]*ScheduledPost, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT `+postCols+` FROM posts
		WHERE status='sent' AND boosted_at IS NULL AND boost_due_at IS NOT NULL AND boost_due_at <= ?
		ORDER BY boost_due_at, id LIMIT ?`, due, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*ScheduledPost, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, rows.Err()
}

// ClaimPost moves a post from pending or retrying to sending. Returns false
// if someone else got there first, or the post is gone.
func (repo *Repo) ClaimPost(id int64, claimedAt time.Time) (bool, error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	res, err := repo.db.Exec(`UPDATE posts SET status='sending', claimed_at=?
		WHERE id=? AND status IN ('pending', 'retrying')`, claimedAt, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (repo *Repo) UpdatePostSent(id int64, remoteId, remoteUrl string, sentAt time.Time, boostDueAt *time.Time) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE posts SET status='sent', remote_id=?, remote_url=?, sent_at=?,
		boost_due_at=?, claimed_at=NULL, next_attempt_at=NULL, last_error='' WHERE id=?`,
		remoteId, remoteUrl, sentAt, boostDueAt, id)
	return err
}

func (repo *Repo) UpdatePostRetry(id int64, retries int, nextAttemptAt time.Time, lastError string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE posts SET status='retrying', retries=?, next_attempt_at=?,
		claimed_at=NULL, last_error=? WHERE id=?`,
		retries, nextAttemptAt, lastError, id)
	return err
}

func (repo *Repo) UpdatePostFailed(id int64, lastError string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE posts SET status='failed', claimed_at=NULL, last_error=? WHERE id=?`,
		lastError, id)
	return err
}

func (repo *Repo) UpdatePostBoosted(id int64, boostRemoteId string, boostedAt time.Time) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE posts SET boost_remote_id=?, boosted_at=? WHERE id=?`,
		boostRemoteId, boostedAt, id)
	return err
}

func (repo *Repo) UpdateBoostRetry(id int64, boostRetries int, boostDueAt time.Time, lastError string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE posts SET boost_retries=?, boost_due_at=?, last_error=? WHERE id=?`,
		boostRetries, boostDueAt, lastError, id)
	return err
}

// ClearBoost gives up on boosting a sent post; the post record itself stays.
func (repo *Repo) ClearBoost(id int64, lastError string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE posts SET boost_due_at=NULL, last_error=? WHERE id=?`,
		lastError, id)
	return err
}

func (repo *Repo) DeletePostIfPending(id int64) (bool, error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	res, err := repo.db.Exec(`DELETE FROM posts WHERE id=? AND thread_id IS NULL
		AND status IN ('pending', 'retrying')`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, nil
	}
	_, err = repo.db.Exec(`UPDATE media_attachments SET post_id=NULL WHERE post_id=?`, id)
	return true, err
}

func (repo *Repo) ReleaseStalePosts(claimedBefore, nextAttemptAt time.Time) (int64, error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	res, err := repo.db.Exec(`UPDATE posts SET status='retrying', next_attempt_at=?, claimed_at=NULL,
		last_error='send timed out; recovered by watchdog'
		WHERE status='sending' AND claimed_at IS NOT NULL AND claimed_at < ?`,
		nextAttemptAt, claimedBefore)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// === Threads ========================================================

const threadCols = `id, account_id, status, send_at, secs_between, next_attempt_at, claimed_at,
	last_error, created_at`

func scanThread(row interface{ Scan(...any) error }) (*ScheduledThread, error) {
	var res ScheduledThread
	err := row.Scan(&res.Id, &res.AccountId, &res.Status, &res.SendAt, &res.SecsBetween,
		&res.NextAttemptAt, &res.ClaimedAt, &res.LastError, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		} else {
			return nil, err
		}
	}
	return &res, nil
}

func (repo *Repo) AddThread(thread *ScheduledThread) (int64, error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	res, err := repo.db.Exec(`INSERT INTO threads (account_id, status, send_at, secs_between, created_at)
		VALUES(?, ?, ?, ?, ?)`,
		thread.AccountId, thread.Status, thread.SendAt, thread.SecsBetween, thread.CreatedAt)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (repo *Repo) GetThread(id int64) (*ScheduledThread, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT `+threadCols+` FROM threads WHERE id=?`, id)
	return scanThread(row)
}

func (repo *Repo) GetThreadsByAccount(accountId int64) ([]*ScheduledThread, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT `+threadCols+` FROM threads WHERE account_id=?
		ORDER BY send_at DESC, id DESC`, accountId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*ScheduledThread, 0)
	for rows.Next() {
		t, err := scanThread(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, rows.Err()
}

func (repo *Repo) GetThreadPosts(threadId int64) ([]*ScheduledPost, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT `+postCols+` FROM posts WHERE thread_id=?
		ORDER BY position, id`, threadId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*ScheduledPost, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, rows.Err()
}

func (repo *Repo) GetDueThreads(due time.Time, limit int) ([]*ScheduledThread, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT `+threadCols+` FROM threads
		WHERE status IN ('pending', 'retrying') AND COALESCE(next_attempt_at, send_at) <= ?
		ORDER BY COALESCE(next_attempt_at, send_at), id LIMIT ?`, due, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*ScheduledThread, 0)
	for rows.Next() {
		t, err := scanThread(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, rows.Err()
}

func (repo *Repo) ClaimThread(id int64, claimedAt time.Time) (bool, error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	res, err := repo.db.Exec(`UPDATE threads SET status='sending', claimed_at=?
		WHERE id=? AND status IN ('pending', 'retrying')`, claimedAt, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (repo *Repo) UpdateThreadStatus(id int64, status, lastError string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE threads SET status=?, claimed_at=NULL, next_attempt_at=NULL,
		last_error=? WHERE id=?`, status, lastError, id)
	return err
}

func (repo *Repo) UpdateThreadRetry(id int64, nextAttemptAt time.Time, lastError string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE threads SET status='retrying', next_attempt_at=?, claimed_at=NULL,
		last_error=? WHERE id=?`, nextAttemptAt, lastError, id)
	return err
}

func (repo *Repo) DeleteThreadIfPending(id int64) (bool, error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	res, err := repo.db.Exec(`DELETE FROM threads WHERE id=? AND status IN ('pending', 'retrying')`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, nil
	}
	_, err = repo.db.Exec(`UPDATE media_attachments SET post_id=NULL WHERE post_id IN
		(SELECT id FROM posts WHERE thread_id=? AND status<>'sent')`, id)
	if err != nil {
		return true, err
	}
	if _, err = repo.db.Exec(`DELETE FROM posts WHERE thread_id=? AND status<>'sent'`, id); err != nil {
		return true, err
	}
	// Sent members live on as standalone records
	_, err = repo.db.Exec(`UPDATE posts SET thread_id=NULL WHERE thread_id=?`, id)
	return true, err
}

func (repo *Repo) ReleaseStaleThreads(claimedBefore, nextAttemptAt time.Time) (int64, error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	res, err := repo.db.Exec(`UPDATE threads SET status='retrying', next_attempt_at=?, claimed_at=NULL,
		last_error='send timed out; recovered by watchdog'
		WHERE status='sending' AND claimed_at IS NOT NULL AND claimed_at < ?`,
		nextAttemptAt, claimedBefore)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// === Media attachments ==============================================

const mediaCols = `id, post_id, user_id, file_name, orig_name, mime_type, byte_size, content_hash,
	focus_x, focus_y, thumb_file, blurhash, description, status, remote_id, created_at`

func scanMedia(row interface{ Scan(...any) error }) (*MediaAttachment, error) {
	var res MediaAttachment
	err := row.Scan(&res.Id, &res.PostId, &res.UserId, &res.FileName, &res.OrigName, &res.MimeType,
		&res.ByteSize, &res.ContentHash, &res.FocusX, &res.FocusY, &res.ThumbFile, &res.Blurhash,
		&res.Description, &res.Status, &res.RemoteId, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		} else {
			return nil, err
		}
	}
	return &res, nil
}

func (repo *Repo) AddMediaAttachment(ma *MediaAttachment) (int64, error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	res, err := repo.db.Exec(`INSERT INTO media_attachments
		(post_id, user_id, file_name, orig_name, mime_type, byte_size, content_hash,
		 focus_x, focus_y, thumb_file, blurhash, description, status, created_at)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ma.PostId, ma.UserId, ma.FileName, ma.OrigName, ma.MimeType, ma.ByteSize, ma.ContentHash,
		ma.FocusX, ma.FocusY, ma.ThumbFile, ma.Blurhash, ma.Description, ma.Status, ma.CreatedAt)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (repo *Repo) GetMediaAttachment(id int64) (*MediaAttachment, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT `+mediaCols+` FROM media_attachments WHERE id=?`, id)
	return scanMedia(row)
}

func (repo *Repo) GetMediaByHash(contentHash int64, userId string, byteSize int64) (*MediaAttachment, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT `+mediaCols+` FROM media_attachments
		WHERE content_hash=? AND user_id=? AND byte_size=? LIMIT 1`, contentHash, userId, byteSize)
	return scanMedia(row)
}

func (repo *Repo) GetMediaForPost(postId int64) ([]*MediaAttachment, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT `+mediaCols+` FROM media_attachments WHERE post_id=?
		ORDER BY ord, id`, postId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*MediaAttachment, 0)
	for rows.Next() {
		ma, err := scanMedia(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, ma)
	}
	return res, rows.Err()
}

// AttachMediaToPost binds staged attachments to a post, in the given order.
// Fails if any of them is missing or already attached elsewhere.
func (repo *Repo) AttachMediaToPost(mediaIds []int64, postId int64) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	for ord, mediaId := range mediaIds {
		res, err := repo.db.Exec(`UPDATE media_attachments SET post_id=?, ord=?
			WHERE id=? AND post_id IS NULL`, postId, ord, mediaId)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("media attachment %d not found or already attached", mediaId)
		}
	}
	return nil
}

func (repo *Repo) UpdateMediaUploaded(id int64, remoteId string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE media_attachments SET status='uploaded', remote_id=? WHERE id=?`,
		remoteId, id)
	return err
}

func (repo *Repo) GetOrphanMedia(olderThan time.Time, limit int) ([]*MediaAttachment, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT `+mediaCols+` FROM media_attachments
		WHERE post_id IS NULL AND created_at < ? ORDER BY id LIMIT ?`, olderThan, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*MediaAttachment, 0)
	for rows.Next() {
		ma, err := scanMedia(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, ma)
	}
	return res, rows.Err()
}

func (repo *Repo) CountMediaByHash(contentHash, excludeId int64) (int, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM media_attachments WHERE content_hash=? AND id<>?`,
		contentHash, excludeId)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *Repo) DeleteMediaIfUnattached(id int64) (bool, error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	res, err := repo.db.Exec(`DELETE FROM media_attachments WHERE id=? AND post_id IS NULL`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (repo *Repo) DeleteMediaAttachment(id int64) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`DELETE FROM media_attachments WHERE id=?`, id)
	return err
}

// === Webhooks =======================================================

func (repo *Repo) SetWebhook(userId, url string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	if _, err := repo.db.Exec(`DELETE FROM webhooks WHERE user_id=?`, userId); err != nil {
		return err
	}
	_, err := repo.db.Exec(`INSERT INTO webhooks (user_id, url, created_at) VALUES(?, ?, ?)`,
		userId, url, time.Now())
	return err
}

func (repo *Repo) GetWebhookForUser(userId string) (*Webhook, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT id, user_id, url, created_at FROM webhooks WHERE user_id=?`, userId)
	var res Webhook
	err := row.Scan(&res.Id, &res.UserId, &res.Url, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		} else {
			return nil, err
		}
	}
	return &res, nil
}

func (repo *Repo) DeleteWebhook(userId string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`DELETE FROM webhooks WHERE user_id=?`, userId)
	return err
}

// === Service keys ===================================================

func (repo *Repo) GetServiceKey(name string) (string, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT priv_key_pem FROM service_keys WHERE name=?`, name)
	var res string
	err := row.Scan(&res)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		} else {
			return "", err
		}
	}
	return res, nil
}

func (repo *Repo) AddServiceKey(name, privKeyPem string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO service_keys (name, priv_key_pem, created_at) VALUES(?, ?, ?)`,
		name, privKeyPem, time.Now())
	return err
}
