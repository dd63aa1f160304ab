// file: internals/route/details/activity_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityController "klubku_backend/internals/features/activities/activity/controller"
	typeController "klubku_backend/internals/features/activities/activity_type/controller"
)

// ActivityRoutes memasang route activity & partisipasi.
// Catatan urutan: /api/activities/joined dan /api/activities/types harus
// terdaftar SEBELUM /api/activities/:id supaya tidak tertangkap sebagai :id.
func ActivityRoutes(app *fiber.App, auth fiber.Handler, db *gorm.DB) {
	activityCtrl := &activityController.ActivityController{DB: db}
	participationCtrl := &activityController.ParticipationController{DB: db}
	checkinCtrl := &activityController.CheckinController{DB: db}
	typeCtrl := &typeController.ActivityTypeController{DB: db}

	// Path literal (harus duluan, lihat catatan urutan)
	app.Get("/api/activities/joined", auth, participationCtrl.GetJoinedActivities)
	app.Get("/api/activities/types", typeCtrl.GetActivityTypes)

	// Publik (tanpa token): list & detail
	app.Get("/api/activities", activityCtrl.GetActivities)
	app.Get("/api/activities/:id", activityCtrl.GetActivity)

	// Partisipasi & check-in (butuh token)
	app.Post("/api/activities/:id/join", auth, participationCtrl.JoinActivity)
	app.Post("/api/activities/:id/checkin", auth, checkinCtrl.CheckIn)
	app.Get("/api/activities/:id/checkin", auth, checkinCtrl.GetCheckinStatus)
}

func ActivityAdminRoutes(admin fiber.Router, db *gorm.DB) {
	activityCtrl := &activityController.ActivityController{DB: db}
	participationCtrl := &activityController.ParticipationController{DB: db}
	approvalCtrl := &activityController.ApprovalController{DB: db}
	typeCtrl := &typeController.ActivityTypeController{DB: db}

	admin.Post("/activities/types", typeCtrl.CreateActivityType)

	// list yang sama tapi bisa lihat draft/cancelled lewat ?status=
	admin.Get("/activities", activityCtrl.GetActivities)
	admin.Post("/activities", activityCtrl.CreateActivity)
	admin.Patch("/activities/:id/status", activityCtrl.UpdateActivityStatus)
	admin.Delete("/activities/:id", activityCtrl.DeleteActivity)
	admin.Get("/activities/:id/participants", participationCtrl.GetActivityParticipants)
	admin.Post("/activities/:activityId/participants/:participantId/approve",
		approvalCtrl.ApproveParticipant)
	admin.Post("/activities/:activityId/participants/:participantId/checkin/approve",
		approvalCtrl.ApproveCheckin)
}
