package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"goldenthread/internal/auth"
	"goldenthread/internal/catalog"
	"goldenthread/internal/favorites"
	"goldenthread/internal/interaction"
	"goldenthread/internal/mapview"
	"goldenthread/pkg/database"
	"goldenthread/pkg/utils"
)

func main() {
	srvCfg := utils.LoadServerConfig()

	dbCfg := database.DefaultConfig()
	db := database.MustOpen(dbCfg)
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	// Catalog: three CSV sheets under the data dir, joined in memory.
	catSvc := catalog.NewService(os.DirFS(srvCfg.DataDir), catalog.DefaultFiles())

	// Map bridge: ws/tcp clients mirror the marker, camera and panel
	// commands the interaction controller issues.
	hub := mapview.NewHub()
	bridge := mapview.NewBridge(hub)
	ctrl := interaction.NewController(bridge, bridge)
	tcpSrv := mapview.NewServer(srvCfg.TCPAddr, hub)

	// The bridge exists, so the surface counts as ready: load the catalog
	// and build the initial marker set.
	ctrl.MapReady(catSvc.Snapshot().Groups)

	router := gin.Default()
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	router.GET("/ws", mapview.WSHandler(hub, ctrl))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": dbCfg.Path})
	})

	router.GET("/ready", func(c *gin.Context) {
		stats := hub.Stats()
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":      "not_ready",
				"db_error":    err.Error(),
				"tcp_clients": stats.TCPClients,
				"ws_clients":  stats.WSClients,
			})
			return
		}

		snap := catSvc.Snapshot()
		c.JSON(http.StatusOK, gin.H{
			"status":      "ready",
			"db":          "ok",
			"markers":     len(snap.Groups),
			"state":       ctrl.State().String(),
			"tcp_clients": stats.TCPClients,
			"ws_clients":  stats.WSClients,
		})
	})

	// Catalog (public)
	catHandler := catalog.NewHandler(catSvc, func(snap *catalog.Snapshot) {
		ctrl.OnCatalogReloaded(snap.Groups)
	})
	catHandler.RegisterRoutes(router.Group("/catalog"))

	// Interaction (public)
	interaction.NewHandler(ctrl).RegisterRoutes(router.Group("/interaction"))

	// Auth
	authCfg := utils.LoadAuthConfig()
	tokenSvc := auth.TokenService{
		Secret:   []byte(authCfg.JWTSecret),
		Issuer:   authCfg.JWTIssuer,
		Duration: authCfg.JWTDuration,
	}
	authRepo := auth.NewRepo(db)
	auth.NewHandler(authRepo, tokenSvc).RegisterRoutes(router.Group("/auth"))

	// Protected routes
	protected := router.Group("/users")
	protected.Use(auth.AuthMiddleware(tokenSvc, authRepo))

	protected.GET("/me", func(c *gin.Context) {
		claims := auth.MustGetClaims(c)
		c.JSON(http.StatusOK, gin.H{
			"id":       claims.UserID,
			"username": claims.Username,
		})
	})

	favStore := favorites.NewRepo(db)
	favorites.NewHandler(favStore, catSvc).RegisterRoutes(protected)

	httpSrv := &http.Server{
		Addr:    srvCfg.HTTPAddr,
		Handler: router,
	}

	errCh := make(chan error, 2)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := tcpSrv.Run(); err != nil {
			errCh <- err
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Printf("HTTP API server listening on %s", srvCfg.HTTPAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("shutdown signal received: %s", sig)
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	log.Println("shutting down servers")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}
	if err := tcpSrv.Close(); err != nil {
		log.Printf("tcp shutdown error: %v", err)
	}

	wg.Wait()
	log.Println("servers stopped")
}
