package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/EETech-Group/parts-inventory/docs"
	"github.com/EETech-Group/parts-inventory/internal/config"
	"github.com/EETech-Group/parts-inventory/internal/httpx"
	"github.com/EETech-Group/parts-inventory/internal/part"
	"github.com/EETech-Group/parts-inventory/internal/web"
	"github.com/EETech-Group/parts-inventory/migrations"
)

// @title Parts Inventory API
// @version 1.0
// @description REST API for managing an inventory of electronic parts.
// @BasePath /
func main() {
	cfg := config.Load()

	if cfg.Migrate {
		if err := runMigrations(cfg.PostgresDSN); err != nil {
			log.Fatalf("[db] migrations: %v", err)
		}
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("[db] connect: %v", err)
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("[db] ping: %v", err)
	}

	r := newRouter(part.NewPGRepo(pool))

	log.Printf("parts-service listening on %s", cfg.Addr)
	log.Fatal(r.Run(cfg.Addr))
}

func newRouter(repo part.Repository) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger("/healthz"))

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	r.GET("/parts", listPartsHandler(repo))
	r.POST("/parts", createPartHandler(repo))
	r.GET("/parts/:id", getPartHandler(repo))
	r.PUT("/parts/:id", updatePartHandler(repo))
	r.DELETE("/parts/:id", deletePartHandler(repo))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// everything else is the embedded browser UI
	r.NoRoute(gin.WrapH(web.Handler()))
	return r
}

func runMigrations(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, ".")
}
