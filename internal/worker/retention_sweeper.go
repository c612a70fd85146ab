// Package worker - RetentionSweeper xóa event analytics quá hạn lưu trữ theo chu kỳ.
// TTL index trên timestamp là lớp chính; sweeper là lớp dọn bổ sung khi đổi
// cấu hình retention (TTL index cũ vẫn giữ expireAfterSeconds cũ cho đến khi rebuild).
package worker

import (
	"context"
	"time"

	analyticssvc "elite_devs/internal/api/analytics/service"
	"elite_devs/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// RetentionSweeper worker xóa event cũ hơn số ngày lưu trữ cấu hình.
type RetentionSweeper struct {
	recorder      *analyticssvc.RecorderService
	interval      time.Duration // Khoảng thời gian giữa các lần quét (vd: 60 phút)
	retentionDays int           // Số ngày giữ event (vd: 365)
}

// NewRetentionSweeper tạo worker mới.
// Tham số:
//   - interval: Khoảng cách giữa các lần quét (tối thiểu 1 phút, mặc định 60 phút)
//   - retentionDays: Số ngày giữ event (mặc định 365)
func NewRetentionSweeper(interval time.Duration, retentionDays int) (*RetentionSweeper, error) {
	recorder, err := analyticssvc.NewRecorderService()
	if err != nil {
		return nil, err
	}

	if interval < time.Minute {
		interval = 60 * time.Minute
	}
	if retentionDays <= 0 {
		retentionDays = 365
	}

	return &RetentionSweeper{
		recorder:      recorder,
		interval:      interval,
		retentionDays: retentionDays,
	}, nil
}

// Start chạy vòng quét định kỳ cho đến khi context bị hủy.
func (w *RetentionSweeper) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval":      w.interval.String(),
		"retentionDays": w.retentionDays,
	}).Info("🧹 [RETENTION] Starting Retention Sweeper...")

	for {
		select {
		case <-ctx.Done():
			log.Info("🧹 [RETENTION] Retention Sweeper stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("🧹 [RETENTION] Panic khi quét event quá hạn, sẽ tiếp tục ở lần chạy tiếp theo")
					}
				}()

				deletedCount, err := w.sweep(ctx)
				if err != nil {
					log.WithError(err).Error("🧹 [RETENTION] Failed to sweep expired events")
					return
				}

				if deletedCount > 0 {
					log.WithFields(map[string]interface{}{
						"deletedCount":  deletedCount,
						"retentionDays": w.retentionDays,
					}).Info("🧹 [RETENTION] Deleted expired analytics events")
				}
				// Không có gì để xóa thì không log (giảm log noise)
			}()
		}
	}
}

// sweep xóa toàn bộ event có timestamp cũ hơn ngưỡng retention.
func (w *RetentionSweeper) sweep(ctx context.Context) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -w.retentionDays)
	filter := bson.M{"timestamp": bson.M{"$lt": cutoff}}
	return w.recorder.DeleteMany(ctx, filter)
}
