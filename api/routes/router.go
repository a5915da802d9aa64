// api/routes/router.go
package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"sonicseats/internal/comments"
	"sonicseats/internal/concerts"
	"sonicseats/internal/faq"
	"sonicseats/internal/purchases"
	"sonicseats/internal/shared/config"
	"sonicseats/internal/shared/storage"
	"sonicseats/pkg/cache"
)

// Router holds all route dependencies
type Router struct {
	config       *config.Config
	cacheService cache.Service

	concertStore  *storage.Store
	faqStore      *storage.Store
	commentStore  *storage.Store
	purchaseStore *storage.Store
}

// NewRouter creates a new router instance. redisClient may be nil; every
// consumer of the cache tolerates its absence.
func NewRouter(cfg *config.Config, redisClient *redis.Client) *Router {
	r := &Router{
		config:        cfg,
		concertStore:  storage.New(cfg.Data.ConcertsFile),
		faqStore:      storage.New(cfg.Data.FAQFile),
		commentStore:  storage.New(cfg.Data.CommentsFile),
		purchaseStore: storage.New(cfg.Data.PurchasesFile),
	}
	if redisClient != nil {
		r.cacheService = cache.NewService(redisClient)
	}
	return r
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// The API lives at the origin root, alongside the static front end
	root := engine.Group("")
	{
		r.setupConcertRoutes(root)
		r.setupPurchaseRoutes(root)
		r.setupFAQRoutes(root)
		r.setupCommentRoutes(root)
	}

	// Static front-end assets as the fallback for everything unrouted
	r.setupStaticRoutes(engine)
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		// The service is healthy when the catalog document is readable and,
		// if a cache is configured, reachable
		var catalog []concerts.Concert
		if err := r.concertStore.Read(&catalog); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     "concert catalog unreadable",
				"timestamp": time.Now(),
				"service":   "sonicseats-api",
			})
			return
		}

		cacheStatus := "disabled"
		if r.cacheService != nil {
			cacheStatus = "ok"
			if err := r.cacheService.Ping(c.Request.Context()); err != nil {
				cacheStatus = "unreachable"
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"concerts":  len(catalog),
			"cache":     cacheStatus,
			"timestamp": time.Now(),
			"service":   "sonicseats-api",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
}

// setupConcertRoutes configures catalog browsing routes
func (r *Router) setupConcertRoutes(rg *gin.RouterGroup) {
	concertRepo := concerts.NewRepository(r.concertStore)
	concertService := concerts.NewService(concertRepo)
	if r.cacheService != nil {
		concertService.SetCacheService(r.cacheService, r.config.Redis.CatalogTTL)
	}
	concertController := concerts.NewController(concertService)

	concerts.SetupConcertRoutes(rg, concertController)
}

// setupPurchaseRoutes configures the ticket purchase route
func (r *Router) setupPurchaseRoutes(rg *gin.RouterGroup) {
	catalogRepo := concerts.NewRepository(r.concertStore)
	ledgerRepo := purchases.NewRepository(r.purchaseStore)
	purchaseService := purchases.NewService(catalogRepo, ledgerRepo)
	if r.cacheService != nil {
		purchaseService.SetCacheService(r.cacheService)
	}
	purchaseController := purchases.NewController(purchaseService)

	purchases.SetupPurchaseRoutes(rg, purchaseController)
}

// setupFAQRoutes configures the FAQ route
func (r *Router) setupFAQRoutes(rg *gin.RouterGroup) {
	faqRepo := faq.NewRepository(r.faqStore)
	faqController := faq.NewController(faqRepo)

	faq.SetupFAQRoutes(rg, faqController)
}

// setupCommentRoutes configures comment listing and submission routes
func (r *Router) setupCommentRoutes(rg *gin.RouterGroup) {
	commentRepo := comments.NewRepository(r.commentStore)
	commentService := comments.NewService(commentRepo)
	commentController := comments.NewController(commentService)

	comments.SetupCommentRoutes(rg, commentController)
}

// setupStaticRoutes serves the browser front end for any path no API route
// claims, the way the site was originally hosted
func (r *Router) setupStaticRoutes(engine *gin.Engine) {
	publicDir := r.config.PublicDir
	if _, err := os.Stat(publicDir); err != nil {
		return
	}

	fileServer := http.FileServer(http.Dir(publicDir))
	engine.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.String(http.StatusNotFound, "404 page not found")
			return
		}
		// Only serve paths that resolve inside the public dir
		requested := filepath.Join(publicDir, filepath.Clean(c.Request.URL.Path))
		if _, err := os.Stat(requested); err != nil && c.Request.URL.Path != "/" {
			c.String(http.StatusNotFound, "404 page not found")
			return
		}
		fileServer.ServeHTTP(c.Writer, c.Request)
	})
}
