package api

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:embed docs/openapi.json
var openAPISpec []byte

const openAPIPath = "/docs/openapi.json"

func registerDocs(router *gin.Engine) {
	router.GET(openAPIPath, func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", openAPISpec)
	})
	router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL(openAPIPath))))
}
