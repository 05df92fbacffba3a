package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/admin-login", handler.AdminLogin)
	auth.Post("/collaborator-login", handler.CollaboratorLogin)
	auth.Get("/get-session", handler.GetSession)
	auth.Post("/logout", handler.Logout)

	admin := api.Group("/admin", handler.AdminRequired)
	admin.Get("/me", handler.AdminSelf)
	admin.Get("/administrators", handler.ListAdministrators)
	admin.Post("/administrators", handler.CreateAdministrator)
	admin.Put("/administrators/:id", handler.UpdateAdministrator)
	admin.Delete("/administrators/:id", handler.DeleteAdministrator)
	admin.Get("/collaborators", handler.ListCollaborators)
	admin.Post("/collaborators", handler.CreateCollaborator)
	admin.Put("/collaborators/:id", handler.UpdateCollaborator)
	admin.Delete("/collaborators/:id", handler.DeleteCollaborator)
	admin.Post("/time-entry", handler.CreateTimeEntry)
	admin.Post("/change-access-code", handler.ChangeAccessCode)
	admin.Get("/suggest-access-code", handler.SuggestAccessCode)
	admin.Get("/leave-requests", handler.ListPendingLeaveRequests)
	admin.Post("/leave-requests/:id/decision", handler.DecideLeaveRequest)
	admin.Get("/announcement", handler.GetAnnouncement)
	admin.Post("/announcement", handler.SetAnnouncement)
	admin.Get("/dashboard-summary", handler.DashboardSummary)
	admin.Get("/reports/leader/:name", handler.LeaderReport)

	api.Get("/collaborator-data", handler.CollaboratorRequired, handler.CollaboratorData)
	api.Get("/collaborator-history", handler.CollaboratorRequired, handler.CollaboratorHistory)

	collaborator := api.Group("/collaborator", handler.CollaboratorRequired)
	collaborator.Post("/leave-request", handler.SubmitLeaveRequest)
	collaborator.Get("/leave-requests", handler.ListOwnLeaveRequests)
	collaborator.Get("/announcement", handler.CollaboratorAnnouncement)
}
