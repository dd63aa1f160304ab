// internals/features/activities/settlement/service/settlement_service.go
//
// Otoritas tunggal pemberian poin. Semua jalur (sweeper periodik,
// approve check-in oleh admin, approve pendaftaran activity tanpa
// check-in) lewat AwardParticipantPoints yang sama, dijaga klaim atomik
// participant_points_awarded supaya tidak pernah double-award.
package service

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	activityModel "klubku_backend/internals/features/activities/activity/model"
	pointsModel "klubku_backend/internals/features/points/points_history/model"
)

// AwardParticipantPoints mengkredit poin activity ke satu participant,
// idempoten. Return (false, nil) kalau participant sudah pernah
// di-settle — itu bukan error, cuma no-op.
//
// Harus dipanggil di dalam transaksi: klaim flag, kredit saldo, dan
// baris ledger harus commit/rollback bersama.
func AwardParticipantPoints(tx *gorm.DB, activity *activityModel.ActivityModel, participantID, userID uuid.UUID) (bool, error) {
	// 1) Klaim atomik: hanya satu pemanggil yang bisa flip flag-nya.
	claim := tx.Exec(`
		UPDATE activity_participants
		SET participant_points_awarded = TRUE, participant_updated_at = NOW()
		WHERE participant_id = ? AND participant_points_awarded = FALSE
	`, participantID)
	if claim.Error != nil {
		return false, fmt.Errorf("klaim settlement gagal: %w", claim.Error)
	}
	if claim.RowsAffected == 0 {
		// sudah pernah diberi poin
		return false, nil
	}

	// 2) Kredit saldo user.
	credit := tx.Exec(`
		UPDATE users
		SET points = points + ?, updated_at = NOW()
		WHERE id = ? AND deleted_at IS NULL
	`, activity.ActivityPoints, userID)
	if credit.Error != nil {
		return false, fmt.Errorf("kredit poin gagal: %w", credit.Error)
	}
	if credit.RowsAffected == 0 {
		return false, fmt.Errorf("user %s tidak ditemukan saat kredit poin", userID)
	}

	// 3) Baris ledger (append-only).
	activityID := activity.ActivityID
	history := pointsModel.PointsHistoryModel{
		PointsHistoryUserID:      userID,
		PointsHistoryPoints:      activity.ActivityPoints,
		PointsHistoryType:        pointsModel.PointsTypeEarned,
		PointsHistoryDescription: fmt.Sprintf("Partisipasi activity: %s", activity.ActivityTitle),
		PointsHistoryActivityID:  &activityID,
	}
	if err := tx.Create(&history).Error; err != nil {
		return false, fmt.Errorf("tulis points history gagal: %w", err)
	}

	return true, nil
}
