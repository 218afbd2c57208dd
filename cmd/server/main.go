package main

import (
    "net/http"
    "os"

    "github.com/gin-gonic/gin"
    "github.com/youruser/bcard/internal/api"
    "github.com/youruser/bcard/internal/card"
    imagepkg "github.com/youruser/bcard/internal/image"
    "go.uber.org/zap"
)

func main() {
    log, err := zap.NewProduction()
    if err != nil {
        panic(err)
    }
    defer log.Sync()

    root := card.RootFromEnv()
    tpl := card.DefaultTemplate(root)
    if path := os.Getenv("BCARD_TEMPLATE"); path != "" {
        tpl, err = card.LoadTemplate(path, root)
        if err != nil {
            log.Fatal("loading template", zap.Error(err))
        }
    }
    b, err := imagepkg.NewBuilder(tpl, card.DirsFromEnv(root), imagepkg.WithLogger(log))
    if err != nil {
        log.Fatal("invalid template", zap.Error(err))
    }

    r := gin.Default()
    api.RegisterRoutes(r, api.NewHandler(b, log))

    port := os.Getenv("PORT")
    if port == "" {
        port = "8080"
    }
    log.Info("starting server", zap.String("addr", "http://localhost:"+port))
    if err := r.Run(":" + port); err != nil && err != http.ErrServerClosed {
        log.Fatal("server stopped", zap.Error(err))
    }
}
