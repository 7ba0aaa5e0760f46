package api

import (
	"github.com/gin-gonic/gin"
	"github.com/nikhil10982006/MRI-Soundscape/internal"
	"github.com/nikhil10982006/MRI-Soundscape/internal/storage"
)

type App interface {
	Logger() internal.Logger
	UserRepo() storage.UserRepository
	SessionRepo() storage.SessionRepository
	AnalyticsRepo() storage.AnalyticsRepository
	PreferencesRepo() storage.PreferencesRepository
}

type app struct {
	logger internal.Logger
	repos  *storage.Repositories
}

func NewApp(logger internal.Logger, repos *storage.Repositories) App {
	return &app{logger: logger, repos: repos}
}

func (a *app) Logger() internal.Logger                        { return a.logger }
func (a *app) UserRepo() storage.UserRepository               { return a.repos.Users }
func (a *app) SessionRepo() storage.SessionRepository         { return a.repos.Sessions }
func (a *app) AnalyticsRepo() storage.AnalyticsRepository     { return a.repos.Analytics }
func (a *app) PreferencesRepo() storage.PreferencesRepository { return a.repos.Preferences }

// NewRouter builds the gin engine with every API route registered.
func NewRouter(a App) *gin.Engine {
	r := gin.Default()
	r.Use(RequestIDMiddleware())

	r.POST("/api/users", PostUser(a))
	r.GET("/api/users/:userId", GetUser(a))
	r.GET("/api/users/:userId/sessions", GetUserSessions(a))
	r.GET("/api/users/:userId/preferences", GetPreferences(a))
	r.POST("/api/users/:userId/preferences", PostPreferences(a))

	r.POST("/api/sessions", PostSession(a))
	r.GET("/api/sessions/:id", GetSession(a))
	r.GET("/api/sessions/:id/analytics", GetSessionAnalytics(a))

	r.POST("/api/analytics", PostAnalytics(a))
	r.GET("/api/analytics/summary", GetAnalyticsSummary(a))

	r.POST("/api/soundscapes/generate", GenerateSoundscape(a))
	r.GET("/api/soundscapes/download/:type", DownloadSoundscape(a))

	r.GET("/api/health", GetHealth())

	return r
}
