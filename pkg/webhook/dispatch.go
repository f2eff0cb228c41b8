package webhook

import (
	"context"
	"log/slog"

	"github.com/ccollicutt/minigrep/internal/ctxlog"
	"github.com/ccollicutt/minigrep/pkg/config"
	"github.com/ccollicutt/minigrep/pkg/output"
)

// Result records the outcome of one configured webhook.
type Result struct {
	Name     string
	Fired    bool
	Response *Response
}

// ShouldFire reports whether a webhook with the given trigger fires for a
// run that did or did not produce matches. An empty trigger means on_matches.
func ShouldFire(trigger config.WebhookTrigger, hasMatches bool) bool {
	switch trigger {
	case config.WebhookTriggerAlways:
		return true
	case config.WebhookTriggerNever:
		return false
	default:
		return hasMatches
	}
}

// Notify sends report to every hook whose trigger matches, sequentially and in
// configuration order. Delivery failures are logged and returned, never fatal.
func (c *Client) Notify(ctx context.Context, hooks []config.WebhookConfig, report *output.Report) []Result {
	logger := ctxlog.FromContext(ctx)
	results := make([]Result, 0, len(hooks))

	for _, wh := range hooks {
		name := wh.Name
		if name == "" {
			name = wh.URL
		}

		if !ShouldFire(wh.Trigger, report.HasMatches()) {
			logger.Debug("webhook skipped", slog.String("webhook", name), slog.String("trigger", string(wh.Trigger)))
			results = append(results, Result{Name: name})
			continue
		}

		resp := c.Send(ctx, report, SendOptions{
			URL:     wh.URL,
			Token:   wh.Token,
			Timeout: wh.Timeout,
		})
		results = append(results, Result{Name: name, Fired: true, Response: resp})

		if resp.Success() {
			logger.Info("webhook sent",
				slog.String("webhook", name),
				slog.Int("status", resp.StatusCode),
				slog.Duration("duration", resp.Duration))
		} else {
			logger.Warn("webhook failed",
				slog.String("webhook", name),
				slog.Int("status", resp.StatusCode),
				slog.Any("error", resp.Error))
		}
	}

	return results
}
