package keepalive

import (
	"context"
	"net/http"
	"strings"
	"time"

	"dppify/logger"

	"go.uber.org/zap"
)

// Pinger keeps the host process warm by periodically fetching the
// service's own public URL. It is entirely decoupled from request
// handling: failures are ignored and it runs for the process lifetime.
type Pinger struct {
	selfURL  string
	interval time.Duration
	client   *http.Client
}

func New(selfURL string, interval time.Duration) *Pinger {
	return &Pinger{
		selfURL:  strings.TrimRight(selfURL, "/"),
		interval: interval,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Start launches the ping loop. A no-op when no self URL is configured,
// which is the local-dev case.
func (p *Pinger) Start(ctx context.Context) {
	if p.selfURL == "" {
		return
	}
	go p.loop(ctx)
}

func (p *Pinger) loop(ctx context.Context) {
	log := logger.Get()
	log.Info("keepalive started", zap.String("url", p.selfURL), zap.Duration("interval", p.interval))

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.ping(ctx, log)
		}
	}
}

func (p *Pinger) ping(ctx context.Context, log *zap.Logger) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.selfURL+"/", nil)
	if err != nil {
		return
	}
	resp, err := p.client.Do(req)
	if err != nil {
		log.Debug("keepalive ping failed", zap.Error(err))
		return
	}
	resp.Body.Close()
}
