package transport

import (
	"context"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/viant/taskmgr/client/auth/store"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"
)

// maxAttempts bounds replays per original request
const maxAttempts = 1

// Refresher exchanges a refresh token for a new credential pair.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error)
}

type RoundTripper struct {
	store      store.Store
	refresher  Refresher
	transport  http.RoundTripper
	header     http.Header
	headerMux  sync.RWMutex
	group      singleflight.Group
	logger     *zap.Logger
	registerer prometheus.Registerer
	metrics    *Metrics
}

func New(options ...Option) (*RoundTripper, error) {
	ret := &RoundTripper{
		transport: http.DefaultTransport,
		store:     store.NewMemoryStore(),
		header:    http.Header{},
		logger:    zap.NewNop(),
	}
	for _, opt := range options {
		opt(ret)
	}
	metrics, err := NewMetrics(ret.registerer)
	if err != nil {
		return nil, err
	}
	ret.metrics = metrics
	return ret, nil
}

func (r *RoundTripper) Store() store.Store {
	return r.store
}

// Header returns a copy of the default header set, including the last Authorization issued by a refresh.
func (r *RoundTripper) Header() http.Header {
	r.headerMux.RLock()
	defer r.headerMux.RUnlock()
	return r.header.Clone()
}

func (r *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	base, err := replayable(req)
	if err != nil {
		return nil, err
	}
	if base.Body != nil {
		defer base.Body.Close()
	}
	return r.dispatch(base, 0)
}

// prepare clones req, applies default headers the caller did not set and attaches
// the stored access token. It returns the access token it attached, if any.
func (r *RoundTripper) prepare(req *http.Request) (*http.Request, string, error) {
	prepared, err := clone(req)
	if err != nil {
		return nil, "", err
	}
	r.headerMux.RLock()
	for key, values := range r.header {
		// Authorization follows the store only
		if key == "Authorization" {
			continue
		}
		if _, ok := prepared.Header[key]; !ok {
			prepared.Header[key] = append([]string(nil), values...)
		}
	}
	r.headerMux.RUnlock()

	token := r.lookup(req.Context())
	if token == nil || token.AccessToken == "" {
		return prepared, "", nil
	}
	token.SetAuthHeader(prepared)
	return prepared, token.AccessToken, nil
}

// dispatch sends req and, on 401, refreshes and replays it while attempt < maxAttempts.
func (r *RoundTripper) dispatch(req *http.Request, attempt int) (*http.Response, error) {
	ctx := req.Context()
	prepared, sent, err := r.prepare(req)
	if err != nil {
		return nil, err
	}
	resp, err := r.transport.RoundTrip(prepared)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}
	if attempt >= maxAttempts || refreshDisabled(ctx) || r.refresher == nil {
		return resp, nil
	}
	current := r.lookup(ctx)
	if current == nil || current.RefreshToken == "" {
		r.metrics.refreshed(OutcomeSkipped)
		r.logger.Debug("unauthorized without refresh token", zap.String("url", req.URL.Redacted()))
		return resp, nil
	}
	drain(resp)

	if current.AccessToken == sent {
		if err = r.refresh(ctx, current.RefreshToken); err != nil {
			return nil, err
		}
	} else {
		r.metrics.refreshed(OutcomeShared)
		r.logger.Debug("token already rotated, replaying", zap.String("url", req.URL.Redacted()))
	}
	r.metrics.replayed()
	return r.dispatch(req, attempt+1)
}

// refresh collapses concurrent exchanges of the same refresh token into one call.
// Callers whose own flight did not exchange the token are counted as shared.
func (r *RoundTripper) refresh(ctx context.Context, refreshToken string) error {
	exchanged := false
	ch := r.group.DoChan(refreshToken, func() (interface{}, error) {
		var err error
		exchanged, err = r.exchange(context.WithoutCancel(ctx), refreshToken)
		return nil, err
	})
	select {
	case <-ctx.Done():
		return ctx.Err()
	case result := <-ch:
		if result.Err == nil && !exchanged {
			r.metrics.refreshed(OutcomeShared)
		}
		return result.Err
	}
}

// exchange reports whether the refresher was called and the new pair stored.
func (r *RoundTripper) exchange(ctx context.Context, refreshToken string) (bool, error) {
	current := r.lookup(ctx)
	if current == nil || current.RefreshToken == "" {
		return false, &RefreshError{Err: ErrCredentialsCleared}
	}
	if current.RefreshToken != refreshToken {
		// rotated by an exchange that completed before this one started
		return false, nil
	}
	r.logger.Debug("refreshing access token")
	token, err := r.refresher.Refresh(ctx, refreshToken)
	if err != nil {
		r.metrics.refreshed(OutcomeFailure)
		r.logger.Warn("token refresh failed, clearing credentials", zap.Error(err))
		r.reset(ctx)
		return false, &RefreshError{Err: err}
	}
	if token.RefreshToken == "" {
		token.RefreshToken = refreshToken
	}
	if err = r.store.Set(ctx, token.AccessToken, token.RefreshToken); err != nil {
		r.metrics.refreshed(OutcomeFailure)
		r.logger.Warn("failed to store refreshed credentials, clearing credentials", zap.Error(err))
		r.reset(ctx)
		return false, &RefreshError{Err: err}
	}
	r.setAuthorization(token.AccessToken)
	r.metrics.refreshed(OutcomeSuccess)
	r.logger.Info("access token refreshed")
	return true, nil
}

func (r *RoundTripper) reset(ctx context.Context) {
	r.setAuthorization("")
	if err := r.store.Clear(ctx); err != nil {
		r.logger.Error("failed to clear credentials", zap.Error(err))
	}
}

func (r *RoundTripper) setAuthorization(accessToken string) {
	r.headerMux.Lock()
	defer r.headerMux.Unlock()
	if accessToken == "" {
		r.header.Del("Authorization")
		return
	}
	r.header.Set("Authorization", "Bearer "+accessToken)
}

func (r *RoundTripper) lookup(ctx context.Context) *oauth2.Token {
	token, err := r.store.LookupToken(ctx)
	if err != nil {
		r.logger.Warn("failed to read credentials", zap.Error(err))
		return nil
	}
	return token
}
