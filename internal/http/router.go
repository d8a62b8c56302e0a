// README: HTTP router registration.
package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"campusos/internal/ai"
	"campusos/internal/http/handlers"
	"campusos/internal/http/middleware"
	"campusos/internal/modules/fare"
	"campusos/internal/observability"
	"campusos/internal/service"
)

// Deps are the services the API is built from. Chat may be any Responder;
// the server wires an ai.Chain. Quota is optional. TrustedProxies lists the
// proxies whose forwarding headers set the client IP; none by default.
type Deps struct {
	Fares          *fare.Engine
	HomePlanner    *service.HomePlanner
	Chat           ai.Responder
	Quota          handlers.QuotaReader
	Logger         logrus.FieldLogger
	CORSOrigins    []string
	TrustedProxies []string
	Version        string
}

func NewRouter(d Deps) *gin.Engine {
	if d.Logger == nil {
		d.Logger = logrus.StandardLogger()
	}
	if d.Version == "" {
		d.Version = "1.0.0"
	}
	if d.Chat == nil {
		d.Chat = ai.LocalResponder{}
	}

	router := gin.New()
	if err := router.SetTrustedProxies(d.TrustedProxies); err != nil {
		d.Logger.WithError(err).Warn("invalid trusted proxies, trusting none")
		_ = router.SetTrustedProxies(nil)
	}
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(d.Logger))
	router.Use(middleware.Metrics())
	router.Use(middleware.Recovery(d.Logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     d.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/", index(router, d.Version))
	router.GET("/health", health)
	router.GET("/metrics", gin.WrapH(observability.Handler()))

	api := router.Group("/api")

	dashboard := handlers.NewDashboardHandler()
	api.GET("/dashboard", dashboard.Dashboard)
	api.GET("/kharcha/report", dashboard.Kharcha)

	yatra := handlers.NewYatraHandler(d.Chat, d.Quota)
	y := api.Group("/yatra")
	y.POST("/chat", middleware.ClientIdentity(), yatra.Chat)
	y.GET("/quota", middleware.ClientIdentity(), yatra.Quota)
	y.GET("/chips", yatra.Chips)
	y.GET("/plan", yatra.Plan)

	ghar := handlers.NewGharwaapsiHandler(d.HomePlanner, d.Fares)
	g := api.Group("/gharwaapsi")
	g.POST("/route", ghar.Route)
	g.GET("/hostelmates", ghar.Hostelmates)
	g.GET("/tatkal", ghar.Tatkal)
	g.POST("/papa-pay", ghar.PapaPay)

	concession := handlers.NewConcessionHandler(d.Fares)
	cg := api.Group("/concession")
	cg.GET("/stations", concession.Stations)
	cg.GET("/distance", concession.Distance)
	cg.POST("/calculate", concession.Calculate)
	cg.POST("/bonafide", concession.Bonafide)

	pay := handlers.NewCampusPayHandler()
	p := api.Group("/campuspay")
	p.GET("/balance", pay.Balance)
	p.GET("/spending", pay.Spending)
	p.GET("/categories", pay.Categories)
	p.GET("/debts", pay.Debts)
	p.POST("/simplify", pay.Simplify)
	p.POST("/settle", pay.Settle)

	fest := handlers.NewFestPassHandler()
	f := api.Group("/festpass")
	f.GET("/featured", fest.Featured)
	f.GET("/list", fest.List)
	f.POST("/book", fest.Book)

	return router
}
