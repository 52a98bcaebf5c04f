package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/Jeffrey-mu/weight-loss/config"
	"github.com/Jeffrey-mu/weight-loss/controllers"
	"github.com/Jeffrey-mu/weight-loss/routes"
	"github.com/Jeffrey-mu/weight-loss/services"
	"github.com/Jeffrey-mu/weight-loss/utils"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}

	tokens, err := utils.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		logger.Fatal("token manager", zap.Error(err))
	}

	policy := services.NewAdminPolicy(cfg.Admin, cfg.Production())

	var avatars *utils.AvatarStore
	if cfg.S3Bucket != "" {
		avatars, err = utils.NewAvatarStore(context.Background(), cfg.Region(), cfg.S3Bucket, cfg.CloudFrontURL)
		if err != nil {
			logger.Fatal("avatar store", zap.Error(err))
		}
	} else {
		logger.Warn("S3_BUCKET not set, avatar uploads disabled")
	}

	authSvc := services.NewAuthService(db, cfg.BcryptCost, logger)
	userSvc := services.NewUserService(db)

	r := routes.SetupRouter(routes.Deps{
		Auth:     controllers.NewAuthController(authSvc, userSvc, tokens, policy),
		User:     controllers.NewUserController(userSvc, avatars),
		Weight:   controllers.NewWeightController(services.NewWeightService(db)),
		Diet:     controllers.NewDietController(services.NewDietService(db)),
		Exercise: controllers.NewExerciseController(services.NewExerciseService(db)),
		Stats:    controllers.NewStatsController(services.NewStatsService(db)),
		Admin:    controllers.NewAdminController(services.NewAdminService(db)),

		Tokens: tokens,
		Users:  userSvc,
		Policy: policy,
	})

	logger.Info("listening", zap.String("addr", cfg.HTTPAddr), zap.String("env", cfg.AppEnv))
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
