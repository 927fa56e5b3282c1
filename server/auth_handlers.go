package server

import (
	"net/http"

	"post_later/logic"
	"post_later/shared"
	"post_later/texts"
)

// Groups together the OAuth callback handlers. These are hit by the user's
// browser on redirect from the provider, so they serve HTML, not JSON, and
// carry no API key.
type authHandlerGroup struct {
	cfg       *shared.Config
	logger    shared.ILogger
	metrics   logic.IMetrics
	directory logic.IAccountDirectory
	txt       texts.ITexts
}

func NewAuthHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics logic.IMetrics,
	directory logic.IAccountDirectory,
	txt texts.ITexts,
) IHandlerGroup {
	res := authHandlerGroup{
		cfg:       cfg,
		logger:    logger,
		metrics:   metrics,
		directory: directory,
		txt:       txt,
	}
	return &res
}

func (hg *authHandlerGroup) Prefix() string {
	return "/auth"
}

func (hg *authHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/{provider}/callback", func(w http.ResponseWriter, r *http.Request) { hg.getCallback(w, r) }},
	}
}

func (hg *authHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return emptyMW
}

func (hg *authHandlerGroup) getCallback(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling auth callback: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("auth/callback")
	defer obs.Finish()

	state := r.URL.Query().Get("state")
	code := r.URL.Query().Get("code")
	if state == "" || code == "" {
		hg.serveFailedPage(w, "The provider did not send back a state and a code.")
		return
	}

	acct, err := hg.directory.CompleteLink(state, code)
	if err != nil {
		hg.logger.Warnf("Account linking failed: %v", err)
		hg.serveFailedPage(w, err.Error())
		return
	}

	handle := acct.Handle
	if handle == "" {
		handle = "your account"
	}
	page := hg.txt.WithVals("link_done.html", map[string]string{"handle": handle})
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(page))
}

func (hg *authHandlerGroup) serveFailedPage(w http.ResponseWriter, cause string) {
	page := hg.txt.WithVals("link_failed.html", map[string]string{"cause": cause})
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusBadRequest)
	_, _ = w.Write([]byte(page))
}
