// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"minicab/internal/http/handlers"
	"minicab/internal/http/middleware"
	"minicab/internal/modules/driver"
	"minicab/internal/modules/matching"
	"minicab/internal/modules/rides"
	"minicab/internal/ws"
)

type ServerDeps struct {
	Drivers *driver.Service
	Match   *matching.Engine
	Rides   *rides.Service
	Hub     *ws.Hub
	Log     *zap.Logger
}

type Server struct {
	drivers *driver.Service
	match   *matching.Engine
	rides   *rides.Service
	hub     *ws.Hub
	log     *zap.Logger
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		drivers: deps.Drivers,
		match:   deps.Match,
		rides:   deps.Rides,
		hub:     deps.Hub,
		log:     deps.Log,
	}
}

func (s *Server) Routes() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Logging(s.log), middleware.Recovery(s.log))

	system := handlers.NewSystemHandler()
	r.GET("/", system.Root)
	r.GET("/health", system.Health)
	r.POST("/ping", system.Ping)

	api := r.Group("/api")

	driverHandler := handlers.NewDriverHandler(s.drivers, s.match)
	api.GET("/drivers/nearby", driverHandler.Nearby)
	api.POST("/drivers/match", driverHandler.Match)
	api.GET("/drivers/:id", driverHandler.Get)
	api.PATCH("/drivers/:id/location", driverHandler.UpdateLocation)
	api.PATCH("/drivers/:id/status", driverHandler.UpdateStatus)

	rideHandler := handlers.NewRideHandler(s.rides)
	api.POST("/rides", rideHandler.Create)
	api.GET("/rides", rideHandler.List)
	api.GET("/rides/:id", rideHandler.Get)
	api.PATCH("/rides/:id/status", rideHandler.UpdateStatus)

	if s.hub != nil {
		r.GET("/ws/ops", s.hub.Serve())
	}

	return r
}
