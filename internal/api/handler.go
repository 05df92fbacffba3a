package api

import (
	"github.com/dmatosb/horabank/internal/db"
	"github.com/dmatosb/horabank/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	cookieCodec  *secureCookieCodec
	cookieSecure bool

	repositories        *db.Repositories
	authService         *services.AuthService
	accountService      *services.AccountService
	ledgerService       *services.LedgerService
	leaveService        *services.LeaveService
	reportService       *services.ReportService
	announcementService *services.AnnouncementService

	loginLimiter *attemptLimiter
}

func NewHandler(database *gorm.DB, secretKey string, cookieSecure bool) (*Handler, error) {
	cookieCodec, err := newSecureCookieCodec([]byte(secretKey))
	if err != nil {
		return nil, err
	}

	repositories := db.NewRepositories(database)
	return &Handler{
		db:                  database,
		secretKey:           []byte(secretKey),
		cookieCodec:         cookieCodec,
		cookieSecure:        cookieSecure,
		repositories:        repositories,
		authService:         services.NewAuthService(repositories.Admins, repositories.Collaborators),
		accountService:      services.NewAccountService(repositories.Admins, repositories.Collaborators),
		ledgerService:       services.NewLedgerService(repositories.Collaborators),
		leaveService:        services.NewLeaveService(repositories.Collaborators, repositories.LeaveRequests),
		reportService:       services.NewReportService(repositories.Collaborators, repositories.TimeEntries),
		announcementService: services.NewAnnouncementService(repositories.Announcements),
		loginLimiter:        newAttemptLimiter(),
	}, nil
}
