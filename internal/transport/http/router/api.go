package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-service-market/internal/repo"
	"go-service-market/internal/transport/http/handler"
	mdw "go-service-market/internal/transport/http/middleware"
)

// NewEngine 组装 API：中间件链 + /health、/metrics + 三个资源的 CRUD 路由
func NewEngine(l *zap.Logger, db *gorm.DB) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	// 健康检查 + 指标
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	userH := handler.NewUserHandler(repo.NewUserRepo(db))
	orderH := handler.NewOrderHandler(repo.NewOrderRepo(db))
	offerH := handler.NewOfferHandler(repo.NewOfferRepo(db))

	mountCrud(r.Group("/users"), userH.List, userH.Create, userH.Get, userH.Update, userH.Delete)
	mountCrud(r.Group("/orders"), orderH.List, orderH.Create, orderH.Get, orderH.Update, orderH.Delete)
	mountCrud(r.Group("/offers"), offerH.List, offerH.Create, offerH.Get, offerH.Update, offerH.Delete)

	return r
}

func mountCrud(g *gin.RouterGroup, list, create, get, update, del gin.HandlerFunc) {
	g.GET("", list)
	g.POST("", create)
	g.GET("/:id", get)
	g.PUT("/:id", update)
	g.DELETE("/:id", del)
}
