package browser

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/starudream/e2e-kit/server/config"
	"github.com/starudream/e2e-kit/server/env"
	"github.com/starudream/e2e-kit/server/internal/json"
	"github.com/starudream/e2e-kit/server/logger"
)

var (
	ErrUnknownDriver = eris.New("unknown browser driver")
	ErrTimeout       = eris.New("browser operation timed out")
)

type Session interface {
	Id() string
	Goto(ctx context.Context, url string) error
	Close() error
}

// Open launches a browser through the driver named in p using a fresh
// ChromeOptions launch configuration.
func Open(ctx context.Context, s env.Settings, p *Params) (Session, error) {
	p = p.init(s)
	o := ChromeOptions()

	id := uuid.Must(uuid.NewV7()).String()
	log := logger.With().Str("driver", p.Driver).Str("session", id).Logger()

	if config.DEBUG("BROWSER") {
		log.Debug().Msgf("launch options: %s", json.MustMarshalToString(o))
	}

	var (
		sess Session
		err  error
	)
	switch p.Driver {
	case DriverPlaywright:
		sess, err = openPlaywright(ctx, id, o, p, log)
	case DriverChromedp:
		sess, err = openChromedp(ctx, id, o, p, log)
	case DriverSelenium:
		sess, err = openSelenium(ctx, id, o, p, s, log)
	default:
		return nil, eris.Wrapf(ErrUnknownDriver, "%q", p.Driver)
	}
	if err != nil {
		log.Error().Err(err).Msg("browser launch error")
		return nil, err
	}

	log.Info().Msg("browser ready")
	return sess, nil
}

// profileDir returns the user data dir to launch with and whether it is a
// temporary one that the session removes on close.
func profileDir(p *Params) (string, bool, error) {
	if p.UserDataDir != "" {
		return p.UserDataDir, false, nil
	}
	dir, err := os.MkdirTemp("", strings.ReplaceAll(config.AppName, "-", "")+"-profile-")
	if err != nil {
		return "", false, eris.Wrap(err, "create temporary profile")
	}
	return dir, true, nil
}

// withTimeout runs fn and stops waiting after d or once ctx is done. fn is left
// running, cleanup gets whatever it returns successfully after that.
func withTimeout[T any](ctx context.Context, d time.Duration, fn func() (T, error), cleanup func(T)) (T, error) {
	type result struct {
		v   T
		err error
	}
	ch := make(chan result, 1)
	go func() {
		v, err := fn()
		ch <- result{v: v, err: err}
	}()

	abandon := func() {
		if cleanup == nil {
			return
		}
		go func() {
			if r := <-ch; r.err == nil {
				cleanup(r.v)
			}
		}()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	var zero T
	select {
	case r := <-ch:
		return r.v, r.err
	case <-timer.C:
		abandon()
		return zero, eris.Wrapf(ErrTimeout, "after %s", d)
	case <-ctx.Done():
		abandon()
		return zero, ctx.Err()
	}
}
