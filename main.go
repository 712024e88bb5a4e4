package main

import (
	"os"
	"postlikes/config"
	"postlikes/db"
	"postlikes/handlers"
	"postlikes/models"
	"postlikes/monitoring"
	"postlikes/utils"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	setupLogging()
	if err := db.Init(); err != nil {
		log.Fatalf("Database initialization error: %v", err)
	}
	if err := models.Init(); err != nil {
		log.Fatalf("Schema sync error: %v", err)
	}
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "migrate":
			// Schema is already synced by models.Init
			log.Info("Migrations completed successfully")
			_ = db.Close()
			return
		default:
			log.Fatalf("Unknown command: %s", os.Args[1])
		}
	}

	router := NewRouter()
	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		log.WithField("address", config.BindAddress()).Info("Server listening")
		err = router.Run(config.BindAddress())
	}
	log.Fatalf("Server stopped: %v", err)
}

func setupLogging() {
	level, err := log.ParseLevel(config.LOG_LEVEL)
	if err != nil {
		log.Warnf("Unknown LOG_LEVEL %q, using info", config.LOG_LEVEL)
		level = log.InfoLevel
	}
	if config.DEBUG_MODE {
		level = log.DebugLevel
	}
	log.SetLevel(level)
}

// NewRouter builds the engine with all middleware and routes, the database must be initialized
func NewRouter() *gin.Engine {
	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	_ = router.SetTrustedProxies([]string{})
	router.Use(gin.Recovery(), utils.RequestID, utils.AccessLog)
	if config.METRICS_ENABLED {
		router.Use(monitoring.Middleware)
		router.GET(monitoring.MetricsPath, monitoring.Handler())
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "DELETE"},
		AllowHeaders:  []string{"Origin", "Content-Type", utils.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", utils.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	} else {
		router.Use(gzip.Gzip(gzip.DefaultCompression))
	}
	// Likes change all the time, nothing is cacheable
	router.Use(utils.CacheControl(utils.CacheNoCache))
	handlers.Routes(router)
	return router
}
