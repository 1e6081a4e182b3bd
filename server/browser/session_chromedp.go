package browser

import (
	"context"
	"os"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/rotisserie/eris"

	"github.com/starudream/e2e-kit/server/logger"
)

type cdpSession struct {
	id  string
	log logger.ZLogger

	dir     string
	tempDir bool
	timeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc
}

// NewAllocator returns a chromedp allocator context launching chrome with o.
func NewAllocator(ctx context.Context, o *Options, p *Params, userDataDir string) (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", p.Headless),
		chromedp.UserDataDir(userDataDir),
	)
	if p.ExecutablePath != "" {
		opts = append(opts, chromedp.ExecPath(p.ExecutablePath))
	}
	opts = append(opts, o.ExecAllocatorOptions(p.ExtraArgs...)...)
	return chromedp.NewExecAllocator(ctx, opts...)
}

func openChromedp(ctx context.Context, id string, o *Options, p *Params, log logger.ZLogger) (_ *cdpSession, err error) {
	s := &cdpSession{id: id, log: log, timeout: p.Timeout}

	s.dir, s.tempDir, err = profileDir(p)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = s.Close()
		}
	}()

	if err = o.WritePreferences(s.dir); err != nil {
		return nil, err
	}

	allocCtx, allocCancel := NewAllocator(ctx, o, p, s.dir)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(f string, a ...any) {
		log.Debug().Msgf(f, a...)
	}))
	s.ctx = tabCtx
	s.cancel = func() {
		tabCancel()
		allocCancel()
	}

	// the first run starts the browser, Close on failure cancels a hanging start
	_, err = withTimeout(ctx, p.Timeout, func() (struct{}, error) {
		return struct{}{}, chromedp.Run(s.ctx)
	}, nil)
	if err != nil {
		return nil, eris.Wrap(err, "chromedp start")
	}
	return s, nil
}

func (s *cdpSession) Id() string {
	return s.id
}

func (s *cdpSession) Goto(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	navCtx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	if err := chromedp.Run(navCtx, chromedp.Navigate(url)); err != nil {
		return eris.Wrapf(err, "navigate %q", url)
	}
	s.log.Info().Msgf("page goto %q ready", url)
	return nil
}

func (s *cdpSession) Close() error {
	if s.cancel != nil {
		s.cancel()
	}
	if s.tempDir && s.dir != "" {
		if err := os.RemoveAll(s.dir); err != nil {
			return eris.Wrap(err, "remove temporary profile")
		}
	}
	return nil
}
