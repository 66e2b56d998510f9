//go:build lambda
// +build lambda

package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"

	"github.com/metawedding/wedding-api/internal/logger"
	"github.com/metawedding/wedding-api/internal/server"
	"github.com/metawedding/wedding-api/internal/services"
)

var ginLambda *ginadapter.GinLambda

func init() {
	logger.InitLogger(os.Getenv("STAGE"))

	ctx := context.Background()
	cfg, err := services.LoadConfig(ctx)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	stack, err := services.NewStack(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}

	ginLambda = ginadapter.New(server.NewRouter(stack.Chain, stack.Wedding, stack.Meta, cfg))
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.Debug("Received Lambda request",
		zap.String("path", req.Path),
		zap.String("request", spew.Sdump(req)),
	)

	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer logger.Sync()
	lambda.Start(Handler)
}
