package workers

import (
	"context"
	"time"

	"inspirahub/internal/logger"
	"inspirahub/internal/repositories"
)

// ResetTokenWorker периодически удаляет протухшие коды сброса пароля.
// Коды старше ttl бесполезны: ResetPassword их все равно отвергает.
type ResetTokenWorker struct {
	resetRepo repositories.ResetTokenRepository
	interval  time.Duration
	ttl       time.Duration
}

func NewResetTokenWorker(resetRepo repositories.ResetTokenRepository, interval, ttl time.Duration) *ResetTokenWorker {
	return &ResetTokenWorker{
		resetRepo: resetRepo,
		interval:  interval,
		ttl:       ttl,
	}
}

// Start запускает фоновую чистку. Останавливается отменой контекста.
func (w *ResetTokenWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

// run крутит один цикл тикера: чистки не накладываются друг на друга,
// следующая начинается только после завершения предыдущей.
func (w *ResetTokenWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("reset token worker stopped")
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

// sweep удаляет все коды старше ttl. Ошибка чистки не фатальна:
// следующий тик попробует снова.
func (w *ResetTokenWorker) sweep() {
	cutoff := time.Now().Add(-w.ttl)

	removed, err := w.resetRepo.DeleteOlderThan(cutoff)
	if err != nil {
		logger.Error("failed to sweep expired reset codes", "error", err)
		return
	}

	logger.Info("swept expired reset codes", "removed", removed)
}
