// internals/features/activities/settlement/worker/sweeper.go
package worker

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	activityModel "klubku_backend/internals/features/activities/activity/model"
	settlementService "klubku_backend/internals/features/activities/settlement/service"
)

// Sweeper menyapu activity yang sudah berakhir dan memberi poin ke
// participant yang check-in-nya approved tapi belum di-settle.
// Worker milik main (bukan side effect import): Start sekali di startup,
// Stop saat graceful shutdown.
//
// Idempotensi sepenuhnya mengandalkan klaim atomik di settlement
// service, jadi sweep boleh jalan berulang kali atas data yang sama.
// Error per item cuma di-log lalu lanjut; retry-nya ya sweep berikutnya.
type Sweeper struct {
	db       *gorm.DB
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
}

func NewSweeper(db *gorm.DB, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Sweeper{db: db, interval: interval}
}

// Start menjalankan sweep pertama langsung, lalu tiap interval.
func (s *Sweeper) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)

		log.Printf("[SWEEPER] mulai, interval %s", s.interval)
		s.runOnce(ctx)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Println("[SWEEPER] berhenti")
				return
			case <-ticker.C:
				s.runOnce(ctx)
			}
		}
	}()
}

// Stop membatalkan loop dan menunggu sweep yang sedang jalan selesai.
func (s *Sweeper) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}

func (s *Sweeper) runOnce(ctx context.Context) {
	awarded, err := s.SweepOnce(ctx)
	if err != nil {
		log.Printf("[SWEEPER ERROR] sweep gagal: %v", err)
		return
	}
	if awarded > 0 {
		log.Printf("[SWEEPER] %d participant diberi poin", awarded)
	}
}

// SweepOnce memproses satu putaran dan mengembalikan jumlah participant
// yang berhasil diberi poin.
func (s *Sweeper) SweepOnce(ctx context.Context) (int, error) {
	db := s.db.WithContext(ctx)
	now := time.Now()

	// Activity ber-check-in yang sudah berakhir dan masih punya
	// participant approved yang belum di-settle. Activity tanpa
	// check-in di-settle lewat jalur approve pendaftaran admin.
	var activities []activityModel.ActivityModel
	if err := db.
		Where(`activity_end_time <= ?
			AND activity_checkin_required = TRUE
			AND EXISTS (
				SELECT 1 FROM activity_participants p
				WHERE p.participant_activity_id = activities.activity_id
				  AND p.participant_checkin_status = 'approved'
				  AND p.participant_points_awarded = FALSE
			)`, now).
		Find(&activities).Error; err != nil {
		return 0, err
	}

	if len(activities) == 0 {
		return 0, nil
	}
	log.Printf("[SWEEPER] %d activity perlu settlement", len(activities))

	totalAwarded := 0
	for i := range activities {
		activity := &activities[i]

		var participants []activityModel.ParticipantModel
		if err := db.
			Where(`participant_activity_id = ?
				AND participant_checkin_status = 'approved'
				AND participant_points_awarded = FALSE`, activity.ActivityID).
			Find(&participants).Error; err != nil {
			log.Printf("[SWEEPER ERROR] ambil participants %q: %v", activity.ActivityTitle, err)
			continue
		}

		for j := range participants {
			p := &participants[j]
			err := db.Transaction(func(tx *gorm.DB) error {
				awarded, err := settlementService.AwardParticipantPoints(tx, activity, p.ParticipantID, p.ParticipantUserID)
				if err != nil {
					return err
				}
				if awarded {
					totalAwarded++
				}
				return nil
			})
			if err != nil {
				// partial failure ditoleransi; item ini diambil lagi
				// di sweep berikutnya karena flag belum ke-flip
				log.Printf("[SWEEPER ERROR] settlement user %s di %q: %v",
					p.ParticipantUserID, activity.ActivityTitle, err)
			}
		}
	}

	return totalAwarded, nil
}
