package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"post_later/dal"
	"post_later/dto"
	"post_later/logic"
	"post_later/shared"
)

// Groups together the handlers of the scheduling REST API.
type apiHandlerGroup struct {
	cfg       *shared.Config
	logger    shared.ILogger
	clock     shared.IClock
	metrics   logic.IMetrics
	repo      dal.IRepo
	directory logic.IAccountDirectory
	staging   logic.IMediaStaging
}

func NewApiHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	clock shared.IClock,
	metrics logic.IMetrics,
	repo dal.IRepo,
	directory logic.IAccountDirectory,
	staging logic.IMediaStaging,
) IHandlerGroup {
	res := apiHandlerGroup{
		cfg:       cfg,
		logger:    logger,
		clock:     clock,
		metrics:   metrics,
		repo:      repo,
		directory: directory,
		staging:   staging,
	}
	return &res
}

func (hg *apiHandlerGroup) Prefix() string {
	return "/api"
}

func (hg *apiHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"POST", "/accounts", func(w http.ResponseWriter, r *http.Request) { hg.postAccounts(w, r) }},
		{"GET", "/accounts", func(w http.ResponseWriter, r *http.Request) { hg.getAccounts(w, r) }},
		{"GET", "/accounts/{id}", func(w http.ResponseWriter, r *http.Request) { hg.getAccount(w, r) }},
		{"DELETE", "/accounts/{id}", func(w http.ResponseWriter, r *http.Request) { hg.deleteAccount(w, r) }},
		{"POST", "/accounts/{id}/refresh", func(w http.ResponseWriter, r *http.Request) { hg.postAccountRefresh(w, r) }},
		{"GET", "/accounts/{id}/search", func(w http.ResponseWriter, r *http.Request) { hg.getAccountSearch(w, r) }},
		{"POST", "/posts", func(w http.ResponseWriter, r *http.Request) { hg.postPosts(w, r) }},
		{"GET", "/posts", func(w http.ResponseWriter, r *http.Request) { hg.getPosts(w, r) }},
		{"GET", "/posts/{id}", func(w http.ResponseWriter, r *http.Request) { hg.getPost(w, r) }},
		{"DELETE", "/posts/{id}", func(w http.ResponseWriter, r *http.Request) { hg.deletePost(w, r) }},
		{"POST", "/threads", func(w http.ResponseWriter, r *http.Request) { hg.postThreads(w, r) }},
		{"GET", "/threads", func(w http.ResponseWriter, r *http.Request) { hg.getThreads(w, r) }},
		{"GET", "/threads/{id}", func(w http.ResponseWriter, r *http.Request) { hg.getThread(w, r) }},
		{"DELETE", "/threads/{id}", func(w http.ResponseWriter, r *http.Request) { hg.deleteThread(w, r) }},
		{"POST", "/media", func(w http.ResponseWriter, r *http.Request) { hg.postMedia(w, r) }},
		{"GET", "/media/{id}", func(w http.ResponseWriter, r *http.Request) { hg.getMedia(w, r) }},
		{"DELETE", "/media/{id}", func(w http.ResponseWriter, r *http.Request) { hg.deleteMedia(w, r) }},
		{"PUT", "/webhooks", func(w http.ResponseWriter, r *http.Request) { hg.putWebhook(w, r) }},
		{"GET", "/webhooks", func(w http.ResponseWriter, r *http.Request) { hg.getWebhook(w, r) }},
		{"DELETE", "/webhooks", func(w http.ResponseWriter, r *http.Request) { hg.deleteWebhook(w, r) }},
	}
}

func (hg *apiHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return hg.authMW(next)
	}
}

func (hg *apiHandlerGroup) authMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var apiKey = r.Header.Get(apiKeyHeader)
		found := false
		for _, key := range hg.cfg.Secrets.ApiKeys {
			if apiKey == key {
				found = true
			}
		}
		if !found {
			keyPart := apiKey
			if len(apiKey) > 4 {
				keyPart = apiKey[:4] + "..."
			}
			hg.logger.Warnf("API request with missing or invalid key '%s': %s", keyPart, r.URL.Path)
			writeErrorResponse(w, badApiKeyStr, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// region accounts

func (hg *apiHandlerGroup) postAccounts(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling accounts POST: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("accounts/create")
	defer obs.Finish()

	body := readBody(hg.logger, w, r)
	if body == nil {
		return
	}
	var req dto.NewAccount
	if err := json.Unmarshal(body, &req); err != nil {
		writeErrorResponse(w, "Invalid JSON in request body", http.StatusBadRequest)
		return
	}
	if req.UserId == "" || req.Provider == "" || req.Instance == "" {
		writeErrorResponse(w, "user_id, provider and instance are all required", http.StatusBadRequest)
		return
	}

	authUrl, accountId, err := hg.directory.StartLink(req.UserId, req.Provider, req.Instance)
	if err != nil {
		hg.logger.Infof("Refused to start linking: %v", err)
		writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJsonResponse(hg.logger, w, &dto.NewAccountResponse{Id: accountId, AuthorizeUrl: authUrl})
}

func (hg *apiHandlerGroup) getAccounts(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling accounts GET: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("accounts/list")
	defer obs.Finish()

	userId := r.URL.Query().Get("user")
	if userId == "" {
		writeErrorResponse(w, "'user' query param is required", http.StatusBadRequest)
		return
	}
	accts, err := hg.repo.GetAccountsByUser(userId)
	if err != nil {
		hg.logger.Errorf("Failed to list accounts of user %s: %v", userId, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	resp := make([]*dto.Account, 0, len(accts))
	for _, acct := range accts {
		resp = append(resp, toApiAccount(acct, ""))
	}
	writeJsonResponse(hg.logger, w, resp)
}

func (hg *apiHandlerGroup) getAccount(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling account GET: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("accounts/get")
	defer obs.Finish()

	id, ok := pathId(r)
	if !ok {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	acct, err := hg.repo.GetAccount(id)
	if err != nil {
		hg.logger.Errorf("Failed to load account %d: %v", id, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if acct == nil {
		writeErrorResponse(w, "No such account", http.StatusNotFound)
		return
	}
	instance := ""
	if auth, err := hg.repo.GetProviderAuth(id); err == nil && auth != nil {
		instance = auth.Instance
	}
	writeJsonResponse(hg.logger, w, toApiAccount(acct, instance))
}

func (hg *apiHandlerGroup) deleteAccount(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling account DELETE: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("accounts/delete")
	defer obs.Finish()

	id, ok := pathId(r)
	if !ok {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	cancelPending := r.URL.Query().Get("cancel_pending") == "true"
	err := hg.directory.UnlinkAccount(id, cancelPending)
	if err != nil {
		switch {
		case errors.Is(err, logic.ErrNotFound):
			writeErrorResponse(w, "No such account", http.StatusNotFound)
		case errors.Is(err, logic.ErrAccountBusy):
			writeErrorResponse(w, err.Error(), http.StatusConflict)
		default:
			hg.logger.Errorf("Failed to unlink account %d: %v", id, err)
			writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		}
		return
	}
	writeJsonResponse(hg.logger, w, okResp{true})
}

func (hg *apiHandlerGroup) postAccountRefresh(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling account refresh POST: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("accounts/refresh")
	defer obs.Finish()

	id, ok := pathId(r)
	if !ok {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	if err := hg.directory.RefreshProfile(id); err != nil {
		hg.writeAccountOpError(w, id, "refresh profile", err)
		return
	}
	acct, err := hg.repo.GetAccount(id)
	if err != nil || acct == nil {
		hg.logger.Errorf("Failed to re-load account %d after refresh: %v", id, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponse(hg.logger, w, toApiAccount(acct, ""))
}

func (hg *apiHandlerGroup) getAccountSearch(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling account search GET: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("accounts/search")
	defer obs.Finish()

	id, ok := pathId(r)
	if !ok {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	query := r.URL.Query().Get("q")
	if query == "" {
		writeErrorResponse(w, "'q' query param is required", http.StatusBadRequest)
		return
	}
	limit := 0
	if limStr := r.URL.Query().Get("limit"); limStr != "" {
		limit, _ = strconv.Atoi(limStr)
	}

	profiles, err := hg.directory.SearchUsername(id, query, limit)
	if err != nil {
		hg.writeAccountOpError(w, id, "search", err)
		return
	}
	resp := make([]*dto.ProfileResult, 0, len(profiles))
	for _, p := range profiles {
		resp = append(resp, &dto.ProfileResult{
			Username:    p.Username,
			DisplayName: p.DisplayName,
			AvatarUrl:   p.AvatarUrl,
			ProfileUrl:  p.ProfileUrl,
		})
	}
	writeJsonResponse(hg.logger, w, resp)
}

func (hg *apiHandlerGroup) writeAccountOpError(w http.ResponseWriter, id int64, op string, err error) {
	var anr *logic.AccountNotReadyError
	switch {
	case errors.Is(err, logic.ErrNotFound):
		writeErrorResponse(w, "No such account", http.StatusNotFound)
	case errors.As(err, &anr):
		writeErrorResponse(w, err.Error(), http.StatusConflict)
	default:
		hg.logger.Errorf("Failed to %s for account %d: %v", op, id, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
	}
}

// endregion

// region posts

func (hg *apiHandlerGroup) postPosts(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling posts POST: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("posts/create")
	defer obs.Finish()

	body := readBody(hg.logger, w, r)
	if body == nil {
		return
	}
	var req dto.NewPost
	if err := json.Unmarshal(body, &req); err != nil {
		writeErrorResponse(w, "Invalid JSON in request body", http.StatusBadRequest)
		return
	}
	req.Body = strings.TrimSpace(req.Body)
	if msg := hg.checkNewPost(&req); msg != "" {
		writeErrorResponse(w, msg, http.StatusBadRequest)
		return
	}

	post := &dal.ScheduledPost{
		AccountId:      req.AccountId,
		Body:           req.Body,
		SendAt:         req.SendAt.UTC(),
		Status:         dal.StatusPending,
		AutoBoostHours: req.AutoBoostHours,
		CreatedAt:      hg.clock.Now(),
	}
	id, err := hg.repo.AddPost(post)
	if err != nil {
		hg.logger.Errorf("Failed to store post: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	post.Id = id

	if len(req.MediaIds) != 0 {
		if err = hg.repo.AttachMediaToPost(req.MediaIds, id); err != nil {
			_, _ = hg.repo.DeletePostIfPending(id)
			writeErrorResponse(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	hg.logger.Infof("Scheduled post %d for account %d at %v", id, req.AccountId, post.SendAt)
	writeJsonResponse(hg.logger, w, toApiPost(post, req.MediaIds))
}

// checkNewPost validates a creation request; returns "" when it is fine.
func (hg *apiHandlerGroup) checkNewPost(req *dto.NewPost) string {
	if req.AccountId < 1 {
		return "account_id is required"
	}
	if req.SendAt.IsZero() {
		return "send_at is required"
	}
	if req.Body == "" && len(req.MediaIds) == 0 {
		return "a post needs a body or at least one media attachment"
	}
	if req.AutoBoostHours != nil && *req.AutoBoostHours <= 0 {
		return "auto_boost_hours must be positive when given"
	}
	acct, err := hg.repo.GetAccount(req.AccountId)
	if err != nil || acct == nil {
		return "no such account"
	}
	return ""
}

func (hg *apiHandlerGroup) getPosts(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling posts GET: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("posts/list")
	defer obs.Finish()

	accountId, err := strconv.ParseInt(r.URL.Query().Get("account"), 10, 64)
	if err != nil || accountId < 1 {
		writeErrorResponse(w, "'account' query param is required", http.StatusBadRequest)
		return
	}
	status := r.URL.Query().Get("status")

	posts, err := hg.repo.GetPostsByAccount(accountId, status)
	if err != nil {
		hg.logger.Errorf("Failed to list posts of account %d: %v", accountId, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	resp := make([]*dto.Post, 0, len(posts))
	for _, post := range posts {
		resp = append(resp, toApiPost(post, nil))
	}
	writeJsonResponse(hg.logger, w, resp)
}

func (hg *apiHandlerGroup) getPost(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling post GET: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("posts/get")
	defer obs.Finish()

	id, ok := pathId(r)
	if !ok {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	post, err := hg.repo.GetPost(id)
	if err != nil {
		hg.logger.Errorf("Failed to load post %d: %v", id, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if post == nil {
		writeErrorResponse(w, "No such post", http.StatusNotFound)
		return
	}
	writeJsonResponse(hg.logger, w, toApiPost(post, hg.mediaIdsOf(id)))
}

func (hg *apiHandlerGroup) deletePost(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling post DELETE: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("posts/delete")
	defer obs.Finish()

	id, ok := pathId(r)
	if !ok {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	deleted, err := hg.repo.DeletePostIfPending(id)
	if err != nil {
		hg.logger.Errorf("Failed to delete post %d: %v", id, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if !deleted {
		post, err := hg.repo.GetPost(id)
		if err == nil && post == nil {
			writeErrorResponse(w, "No such post", http.StatusNotFound)
			return
		}
		// Exists but is being sent, already sent, or part of a thread
		writeErrorResponse(w, "Post cannot be deleted in its current state", http.StatusConflict)
		return
	}
	writeJsonResponse(hg.logger, w, okResp{true})
}

func (hg *apiHandlerGroup) mediaIdsOf(postId int64) []int64 {
	attachments, err := hg.repo.GetMediaForPost(postId)
	if err != nil {
		hg.logger.Errorf("Failed to load media of post %d: %v", postId, err)
		return nil
	}
	ids := make([]int64, 0, len(attachments))
	for _, ma := range attachments {
		ids = append(ids, ma.Id)
	}
	return ids
}

// endregion

// region threads

func (hg *apiHandlerGroup) postThreads(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling threads POST: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("threads/create")
	defer obs.Finish()

	body := readBody(hg.logger, w, r)
	if body == nil {
		return
	}
	var req dto.NewThread
	if err := json.Unmarshal(body, &req); err != nil {
		writeErrorResponse(w, "Invalid JSON in request body", http.StatusBadRequest)
		return
	}
	if msg := hg.checkNewThread(&req); msg != "" {
		writeErrorResponse(w, msg, http.StatusBadRequest)
		return
	}

	secsBetween := req.SecsBetween
	if secsBetween == 0 {
		secsBetween = hg.cfg.Schedule.SecsBetweenThreadPosts
	}
	now := hg.clock.Now()
	thread := &dal.ScheduledThread{
		AccountId:   req.AccountId,
		Status:      dal.StatusPending,
		SendAt:      req.SendAt.UTC(),
		SecsBetween: secsBetween,
		CreatedAt:   now,
	}
	threadId, err := hg.repo.AddThread(thread)
	if err != nil {
		hg.logger.Errorf("Failed to store thread: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	thread.Id = threadId

	apiPosts := make([]dto.Post, 0, len(req.Posts))
	for i, tp := range req.Posts {
		post := &dal.ScheduledPost{
			AccountId: req.AccountId,
			ThreadId:  &threadId,
			Position:  i,
			Body:      strings.TrimSpace(tp.Body),
			SendAt:    req.SendAt.UTC(),
			Status:    dal.StatusPending,
			CreatedAt: now,
		}
		postId, err := hg.repo.AddPost(post)
		if err == nil && len(tp.MediaIds) != 0 {
			err = hg.repo.AttachMediaToPost(tp.MediaIds, postId)
		}
		if err != nil {
			_, _ = hg.repo.DeleteThreadIfPending(threadId)
			hg.logger.Warnf("Failed to store thread post %d: %v", i, err)
			writeErrorResponse(w, err.Error(), http.StatusBadRequest)
			return
		}
		post.Id = postId
		apiPosts = append(apiPosts, *toApiPost(post, tp.MediaIds))
	}

	hg.logger.Infof("Scheduled thread %d with %d posts for account %d at %v",
		threadId, len(req.Posts), req.AccountId, thread.SendAt)
	writeJsonResponse(hg.logger, w, toApiThread(thread, apiPosts))
}

func (hg *apiHandlerGroup) checkNewThread(req *dto.NewThread) string {
	if req.AccountId < 1 {
		return "account_id is required"
	}
	if req.SendAt.IsZero() {
		return "send_at is required"
	}
	if len(req.Posts) == 0 {
		return "a thread needs at least one post"
	}
	if req.SecsBetween < 0 {
		return "secs_between cannot be negative"
	}
	for i, tp := range req.Posts {
		if strings.TrimSpace(tp.Body) == "" && len(tp.MediaIds) == 0 {
			return "thread post " + strconv.Itoa(i+1) + " needs a body or media"
		}
	}
	acct, err := hg.repo.GetAccount(req.AccountId)
	if err != nil || acct == nil {
		return "no such account"
	}
	return ""
}

func (hg *apiHandlerGroup) getThreads(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling threads GET: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("threads/list")
	defer obs.Finish()

	accountId, err := strconv.ParseInt(r.URL.Query().Get("account"), 10, 64)
	if err != nil || accountId < 1 {
		writeErrorResponse(w, "'account' query param is required", http.StatusBadRequest)
		return
	}
	threads, err := hg.repo.GetThreadsByAccount(accountId)
	if err != nil {
		hg.logger.Errorf("Failed to list threads of account %d: %v", accountId, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	resp := make([]*dto.Thread, 0, len(threads))
	for _, thread := range threads {
		resp = append(resp, toApiThread(thread, nil))
	}
	writeJsonResponse(hg.logger, w, resp)
}

func (hg *apiHandlerGroup) getThread(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling thread GET: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("threads/get")
	defer obs.Finish()

	id, ok := pathId(r)
	if !ok {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	thread, err := hg.repo.GetThread(id)
	if err != nil {
		hg.logger.Errorf("Failed to load thread %d: %v", id, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if thread == nil {
		writeErrorResponse(w, "No such thread", http.StatusNotFound)
		return
	}
	members, err := hg.repo.GetThreadPosts(id)
	if err != nil {
		hg.logger.Errorf("Failed to load posts of thread %d: %v", id, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	apiPosts := make([]dto.Post, 0, len(members))
	for _, member := range members {
		apiPosts = append(apiPosts, *toApiPost(member, hg.mediaIdsOf(member.Id)))
	}
	writeJsonResponse(hg.logger, w, toApiThread(thread, apiPosts))
}

func (hg *apiHandlerGroup) deleteThread(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling thread DELETE: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("threads/delete")
	defer obs.Finish()

	id, ok := pathId(r)
	if !ok {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	deleted, err := hg.repo.DeleteThreadIfPending(id)
	if err != nil {
		hg.logger.Errorf("Failed to delete thread %d: %v", id, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if !deleted {
		thread, err := hg.repo.GetThread(id)
		if err == nil && thread == nil {
			writeErrorResponse(w, "No such thread", http.StatusNotFound)
			return
		}
		writeErrorResponse(w, "Thread cannot be deleted in its current state", http.StatusConflict)
		return
	}
	writeJsonResponse(hg.logger, w, okResp{true})
}

// endregion

// region media

func (hg *apiHandlerGroup) postMedia(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling media POST: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("media/upload")
	defer obs.Finish()

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeErrorResponse(w, "Invalid multipart request", http.StatusBadRequest)
		return
	}
	userId := r.FormValue("user_id")
	if userId == "" {
		writeErrorResponse(w, "user_id form field is required", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeErrorResponse(w, "'file' form field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	focusX, errX := parseFocusValue(r.FormValue("focus_x"))
	focusY, errY := parseFocusValue(r.FormValue("focus_y"))
	if errX != nil || errY != nil {
		writeErrorResponse(w, "focus_x and focus_y must be numbers", http.StatusBadRequest)
		return
	}

	// One byte over the cap so oversize files fail validation, not silently truncate
	maxBytes := hg.cfg.Media.MaxVideoMb<<20 + 1
	data, err := io.ReadAll(io.LimitReader(file, maxBytes))
	if err != nil {
		hg.logger.Errorf("Failed to read media upload: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(data)
	}

	ma, err := hg.staging.Stage(userId, data, header.Filename, mimeType,
		focusX, focusY, r.FormValue("description"))
	if err != nil {
		hg.logger.Infof("Refused media upload '%s': %v", header.Filename, err)
		writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJsonResponse(hg.logger, w, toApiMedia(ma))
}

func parseFocusValue(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func (hg *apiHandlerGroup) getMedia(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling media GET: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("media/get")
	defer obs.Finish()

	id, ok := pathId(r)
	if !ok {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	ma, err := hg.repo.GetMediaAttachment(id)
	if err != nil {
		hg.logger.Errorf("Failed to load media attachment %d: %v", id, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if ma == nil {
		writeErrorResponse(w, "No such media attachment", http.StatusNotFound)
		return
	}
	writeJsonResponse(hg.logger, w, toApiMedia(ma))
}

func (hg *apiHandlerGroup) deleteMedia(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling media DELETE: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("media/delete")
	defer obs.Finish()

	id, ok := pathId(r)
	if !ok {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	deleted, err := hg.staging.Discard(id)
	if err != nil {
		hg.logger.Errorf("Failed to discard media attachment %d: %v", id, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if !deleted {
		ma, err := hg.repo.GetMediaAttachment(id)
		if err == nil && ma == nil {
			writeErrorResponse(w, "No such media attachment", http.StatusNotFound)
			return
		}
		writeErrorResponse(w, "Media attachment is attached to a post", http.StatusConflict)
		return
	}
	writeJsonResponse(hg.logger, w, okResp{true})
}

// endregion

// region webhooks

func (hg *apiHandlerGroup) putWebhook(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling webhook PUT: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("webhooks/set")
	defer obs.Finish()

	body := readBody(hg.logger, w, r)
	if body == nil {
		return
	}
	var req dto.NewWebhook
	if err := json.Unmarshal(body, &req); err != nil {
		writeErrorResponse(w, "Invalid JSON in request body", http.StatusBadRequest)
		return
	}
	if req.UserId == "" {
		writeErrorResponse(w, "user_id is required", http.StatusBadRequest)
		return
	}
	if u, err := url.Parse(req.Url); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		writeErrorResponse(w, "url must be a valid http(s) URL", http.StatusBadRequest)
		return
	}

	if err := hg.repo.SetWebhook(req.UserId, req.Url); err != nil {
		hg.logger.Errorf("Failed to store webhook of user %s: %v", req.UserId, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponse(hg.logger, w, &req)
}

func (hg *apiHandlerGroup) getWebhook(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling webhook GET: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("webhooks/get")
	defer obs.Finish()

	userId := r.URL.Query().Get("user")
	if userId == "" {
		writeErrorResponse(w, "'user' query param is required", http.StatusBadRequest)
		return
	}
	wh, err := hg.repo.GetWebhookForUser(userId)
	if err != nil {
		hg.logger.Errorf("Failed to load webhook of user %s: %v", userId, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if wh == nil {
		writeErrorResponse(w, "No webhook registered for this user", http.StatusNotFound)
		return
	}
	writeJsonResponse(hg.logger, w, &dto.NewWebhook{UserId: wh.UserId, Url: wh.Url})
}

func (hg *apiHandlerGroup) deleteWebhook(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling webhook DELETE: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("webhooks/delete")
	defer obs.Finish()

	userId := r.URL.Query().Get("user")
	if userId == "" {
		writeErrorResponse(w, "'user' query param is required", http.StatusBadRequest)
		return
	}
	if err := hg.repo.DeleteWebhook(userId); err != nil {
		hg.logger.Errorf("Failed to delete webhook of user %s: %v", userId, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponse(hg.logger, w, okResp{true})
}

// endregion

type okResp struct {
	Ok bool `json:"ok"`
}

func toApiAccount(acct *dal.Account, instance string) *dto.Account {
	return &dto.Account{
		Id:          acct.Id,
		UserId:      acct.UserId,
		Provider:    acct.Provider,
		Status:      acct.Status,
		Handle:      acct.Handle,
		DisplayName: acct.DisplayName,
		Bio:         acct.Bio,
		AvatarUrl:   acct.AvatarUrl,
		ProfileUrl:  acct.ProfileUrl,
		Instance:    instance,
		CreatedAt:   acct.CreatedAt,
	}
}

func toApiPost(post *dal.ScheduledPost, mediaIds []int64) *dto.Post {
	return &dto.Post{
		Id:             post.Id,
		AccountId:      post.AccountId,
		ThreadId:       post.ThreadId,
		Position:       post.Position,
		Body:           post.Body,
		SendAt:         post.SendAt,
		Status:         post.Status,
		Retries:        post.Retries,
		NextAttemptAt:  post.NextAttemptAt,
		RemoteId:       post.RemoteId,
		RemoteUrl:      post.RemoteUrl,
		SentAt:         post.SentAt,
		AutoBoostHours: post.AutoBoostHours,
		BoostDueAt:     post.BoostDueAt,
		BoostedAt:      post.BoostedAt,
		LastError:      post.LastError,
		MediaIds:       mediaIds,
		CreatedAt:      post.CreatedAt,
	}
}

func toApiThread(thread *dal.ScheduledThread, posts []dto.Post) *dto.Thread {
	return &dto.Thread{
		Id:          thread.Id,
		AccountId:   thread.AccountId,
		Status:      thread.Status,
		SendAt:      thread.SendAt,
		SecsBetween: thread.SecsBetween,
		LastError:   thread.LastError,
		CreatedAt:   thread.CreatedAt,
		Posts:       posts,
	}
}

func toApiMedia(ma *dal.MediaAttachment) *dto.MediaAttachment {
	return &dto.MediaAttachment{
		Id:          ma.Id,
		PostId:      ma.PostId,
		OrigName:    ma.OrigName,
		MimeType:    ma.MimeType,
		ByteSize:    ma.ByteSize,
		FocusX:      ma.FocusX,
		FocusY:      ma.FocusY,
		Blurhash:    ma.Blurhash,
		Description: ma.Description,
		Status:      ma.Status,
		CreatedAt:   ma.CreatedAt,
	}
}
