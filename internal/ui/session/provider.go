package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/imagehealth/clinic-dashboard/internal/core/domain"
)

// ErrNoIdentity is returned by a Provider when no one is logged in.
var ErrNoIdentity = errors.New("no session identity")

// Provider is a source of the current identity.
type Provider interface {
	// Identity returns ErrNoIdentity when there is no logged-in user.
	Identity(ctx context.Context) (domain.Identity, error)
	// Clear ends the session.
	Clear(ctx context.Context) error
}

// StorageProvider reads the identity from Storage under KeyUser, the way
// the login flow writes it.
type StorageProvider struct {
	store Storage
}

func NewStorageProvider(store Storage) *StorageProvider {
	return &StorageProvider{store: store}
}

func (p *StorageProvider) Identity(_ context.Context) (domain.Identity, error) {
	raw, ok, err := p.store.Get(KeyUser)
	if err != nil {
		return domain.Identity{}, err
	}
	if !ok || raw == "" {
		return domain.Identity{}, ErrNoIdentity
	}

	var id domain.Identity
	if err := json.Unmarshal([]byte(raw), &id); err != nil {
		return domain.Identity{}, fmt.Errorf("decode stored identity: %w", err)
	}
	if !id.Valid() {
		return domain.Identity{}, ErrNoIdentity
	}
	return id, nil
}

// Save stores identity and, when non-empty, the bearer token. The token is
// written first and restored if the identity write fails, so a failed Save
// never leaves a new identity behind.
func (p *StorageProvider) Save(_ context.Context, id domain.Identity, token string) error {
	raw, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}
	if token == "" {
		return p.store.Set(KeyUser, string(raw))
	}

	prev, hadPrev, err := p.store.Get(KeyToken)
	if err != nil {
		return err
	}
	if err := p.store.Set(KeyToken, token); err != nil {
		return err
	}
	if err := p.store.Set(KeyUser, string(raw)); err != nil {
		return errors.Join(err, p.restoreToken(prev, hadPrev))
	}
	return nil
}

func (p *StorageProvider) restoreToken(prev string, ok bool) error {
	if ok {
		return p.store.Set(KeyToken, prev)
	}
	return p.store.Remove(KeyToken)
}

// Token returns the stored bearer token, or "".
func (p *StorageProvider) Token(_ context.Context) (string, error) {
	tok, _, err := p.store.Get(KeyToken)
	return tok, err
}

func (p *StorageProvider) Clear(_ context.Context) error {
	return errors.Join(p.store.Remove(KeyUser), p.store.Remove(KeyToken))
}

// StaticProvider serves a fixed identity. The zero value has none.
type StaticProvider struct {
	ID      *domain.Identity
	Cleared bool
}

func (p *StaticProvider) Identity(context.Context) (domain.Identity, error) {
	if p.ID == nil || !p.ID.Valid() {
		return domain.Identity{}, ErrNoIdentity
	}
	return *p.ID, nil
}

func (p *StaticProvider) Clear(context.Context) error {
	p.ID = nil
	p.Cleared = true
	return nil
}

// Context is the session handed to dashboard components.
type Context struct {
	provider Provider
	log      zerolog.Logger
}

func NewContext(p Provider, log zerolog.Logger) *Context {
	return &Context{provider: p, log: log}
}

// Current returns the logged-in identity. Provider failures are logged and
// treated as no identity.
func (c *Context) Current(ctx context.Context) (domain.Identity, bool) {
	id, err := c.provider.Identity(ctx)
	if err != nil {
		if !errors.Is(err, ErrNoIdentity) {
			c.log.Warn().Err(err).Msg("session identity unavailable")
		}
		return domain.Identity{}, false
	}
	return id, true
}

// End clears the session.
func (c *Context) End(ctx context.Context) error {
	return c.provider.Clear(ctx)
}
