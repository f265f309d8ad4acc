package workers

import (
	"context"
	"time"

	"alertnet_backend/internal/logger"
	"alertnet_backend/internal/services"
)

const maintenanceInterval = 24 * time.Hour

// MaintenanceWorker runs the daily housekeeping: stale device sweep and
// notification history cleanup.
type MaintenanceWorker struct {
	devices       services.DeviceService
	notifications services.NotificationService
	interval      time.Duration
}

func NewMaintenanceWorker(devices services.DeviceService, notifications services.NotificationService) *MaintenanceWorker {
	return &MaintenanceWorker{
		devices:       devices,
		notifications: notifications,
		interval:      maintenanceInterval,
	}
}

// Start blocks until the context is cancelled; run it in a goroutine.
func (w *MaintenanceWorker) Start(ctx context.Context) {
	logger.Info("maintenance worker started", "interval", w.interval.String())

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.runOnce()
	for {
		select {
		case <-ctx.Done():
			logger.Info("maintenance worker stopped")
			return
		case <-ticker.C:
			w.runOnce()
		}
	}
}

func (w *MaintenanceWorker) runOnce() {
	if count, err := w.devices.DeactivateStale(services.StaleDeviceCutoffDays); err != nil {
		logger.WorkerLog("maintenance", "deactivate_stale_devices", err)
	} else {
		logger.Info("stale devices deactivated", "count", count)
	}

	if count, err := w.notifications.Cleanup(services.NotificationRetentionDays); err != nil {
		logger.WorkerLog("maintenance", "cleanup_notifications", err)
	} else {
		logger.Info("old notifications removed", "count", count)
	}
}
