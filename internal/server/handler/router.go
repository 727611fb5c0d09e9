package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ashishshah/live-attendance/internal/logger"
	"github.com/ashishshah/live-attendance/internal/server"
	srvmw "github.com/ashishshah/live-attendance/internal/server/middleware"
	"github.com/ashishshah/live-attendance/internal/token"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// RegisterRoutes installs the middleware chain and the route table on the
// engine. Order matters: recovery first, then request id and logging, then
// CORS; authentication and role checks are attached per route group.
func RegisterRoutes(
	engine *gin.Engine,
	cfg server.Config,
	codec *token.Codec,
	authH *AuthHandler,
	classesH *ClassesHandler,
	db Pinger,
	log *logger.Logger,
) {
	engine.Use(
		srvmw.Recovery(log),
		srvmw.RequestID(),
		srvmw.RequestLogger(log),
		srvmw.CORS(&cfg.CORS),
	)

	engine.GET("/healthcheck", healthcheck(db))

	api := engine.Group("/api/v1")

	authRoutes := api.Group("/auth")
	authRoutes.POST("/signup", authH.Signup)
	authRoutes.POST("/login", authH.Login)
	authRoutes.POST("/logout", authH.Logout)

	authenticated := api.Group("")
	authenticated.Use(srvmw.Authenticate(codec, log))

	authenticated.GET("/auth/me", authH.Me)

	authenticated.POST("/classes", srvmw.RequireTeacher(), classesH.Create)
	authenticated.POST("/classes/:id/attendance", srvmw.RequireTeacher(), classesH.RecordAttendance)
	authenticated.GET("/attendance", srvmw.RequireStudent(), classesH.MyAttendance)
}

// healthcheck reports service liveness and store reachability.
func healthcheck(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "ok"
		code := http.StatusOK
		if db != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				status = "degraded"
				code = http.StatusServiceUnavailable
			}
		}
		c.JSON(code, gin.H{"status": status, "time": time.Now().UTC()})
	}
}
