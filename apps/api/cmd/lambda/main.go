//go:build lambda
// +build lambda

package main

import (
	"context"
	_ "time/tzdata" // zoneinfo is not guaranteed on the Lambda runtime

	"github.com/aurajewels/storefront-api/apps/api/server"
	"github.com/aurajewels/storefront-api/libs/go/logger"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/davecgh/go-spew/spew"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var ginLambda *ginadapter.GinLambda

func init() {
	gin.SetMode(gin.ReleaseMode)
	server.InitializeHandlers()

	r := gin.New()
	r.Use(gin.Recovery())
	server.InitializeRoutes(r)

	ginLambda = ginadapter.New(r)
}

// Handler proxies API Gateway events into the gin router
func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if ce := logger.Log.Check(zap.DebugLevel, "Received Lambda request"); ce != nil {
		redacted := req
		redacted.Headers = withoutAuthorization(req.Headers)
		redacted.MultiValueHeaders = nil
		ce.Write(
			zap.String("path", req.Path),
			zap.String("request", spew.Sdump(redacted)),
		)
	}

	return ginLambda.ProxyWithContext(ctx, req)
}

func withoutAuthorization(headers map[string]string) map[string]string {
	out := make(map[string]string, len(headers))
	for k, v := range headers {
		if k == "Authorization" || k == "authorization" {
			continue
		}
		out[k] = v
	}
	return out
}

func main() {
	defer logger.Sync()
	lambda.Start(Handler)
}
