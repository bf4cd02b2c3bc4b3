package usecases

import (
	"context"
	"log/slog"
	"time"

	"placard-server/internal/infra/async"

	"github.com/robfig/cron/v3"
)

func NewAssetRefreshWorker(ticker *time.Ticker, schedule string, assets AssetCatalogService) *AssetRefreshWorker {
	return &AssetRefreshWorker{
		ticker:     ticker,
		schedule:   schedule,
		assets:     assets,
		cronParser: cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow),
	}
}

var _ async.Worker = &AssetRefreshWorker{}

// AssetRefreshWorker keeps the cached background and font lists warm by
// re-fetching them on a cron schedule.
type AssetRefreshWorker struct {
	ticker     *time.Ticker
	schedule   string
	assets     AssetCatalogService
	cronParser cron.Parser
	nextRun    time.Time
}

func (w *AssetRefreshWorker) Run(ctx context.Context, done func()) {
	slog.Debug("asset refresh worker started", slog.String("schedule", w.schedule))
	defer done()

	spec, err := w.cronParser.Parse(w.schedule)
	if err != nil {
		slog.Error("parsing asset refresh schedule",
			slog.String("schedule", w.schedule), slog.String("error", err.Error()))
		return
	}
	w.nextRun = spec.Next(time.Now())

	for {
		select {
		case <-ctx.Done():
			slog.Info("asset refresh worker cancelled")
			return
		case now := <-w.ticker.C:
			if now.Before(w.nextRun) {
				continue
			}
			w.nextRun = spec.Next(now)
			if err := w.assets.Refresh(ctx); err != nil {
				slog.Warn("refreshing asset catalog", slog.String("error", err.Error()))
			}
		}
	}
}

func (w *AssetRefreshWorker) Shutdown() {
	w.ticker.Stop()
}
