package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/imagehealth/clinic-dashboard/internal/core/domain"
	"github.com/imagehealth/clinic-dashboard/internal/core/ports"
	"github.com/imagehealth/clinic-dashboard/internal/ui/session"
)

// cookieSession is the session.Provider of a server-rendered request: the
// identity is the one stored in Redis under the request's session cookie.
type cookieSession struct {
	c        echo.Context
	sessions ports.SessionStore
	name     string
}

var _ session.Provider = (*cookieSession)(nil)

func (p *cookieSession) Identity(ctx context.Context) (domain.Identity, error) {
	ck, err := p.c.Cookie(p.name)
	if errors.Is(err, http.ErrNoCookie) || (err == nil && ck.Value == "") {
		return domain.Identity{}, session.ErrNoIdentity
	}
	if err != nil {
		return domain.Identity{}, err
	}

	id, err := p.sessions.Get(ctx, ck.Value)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return domain.Identity{}, session.ErrNoIdentity
	}
	if err != nil {
		return domain.Identity{}, err
	}
	return *id, nil
}

func (p *cookieSession) Clear(ctx context.Context) error {
	ck, err := p.c.Cookie(p.name)
	if err != nil || ck.Value == "" {
		return nil
	}
	return p.sessions.Delete(ctx, ck.Value)
}
