package main

import (
	"context"
	"log"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/storage"
	"app/internal/usecase"
	auth "app/internal/usecase/auth_usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func (i *jwtIssuer) Issue(userID string, role model.Role, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"id":   userID,
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  now.Add(i.accessTTL).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(i.secret)
}

func main() {
	//.envは無くてもよい
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.Cart{},
		&model.Order{},
		&model.OrderItem{},
		&model.Review{},
		&model.Analytics{},
	); err != nil {
		log.Fatal(err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	orderItemRepo := infraRepo.NewOrderItemGormRepository(gormDB)
	reviewRepo := infraRepo.NewReviewGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	clock := &realClock{}
	hasher := auth.NewBcryptPasswordHasher(10)
	verifier := auth.NewBcryptPasswordVerifier()
	issuer := &jwtIssuer{
		secret:    []byte(cfg.JWTSecret),
		accessTTL: cfg.JWTExpiresIn,
	}

	//S3（バケット未設定なら画像アップロード無効）
	var uploader usecase.ImageUploader
	if cfg.S3Bucket != "" {
		s3Uploader, err := storage.NewS3ImageUploader(context.Background(), cfg.S3Bucket)
		if err != nil {
			log.Fatal(err)
		}
		uploader = s3Uploader
	}

	//Usecase生成
	signupUC := auth.NewSignupUsecase(userRepo, hasher)
	loginUC := auth.NewLoginUsecase(userRepo, verifier, issuer, clock)
	userUC := usecase.NewUserUsecase(userRepo)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo)
	productUC := usecase.NewProductUsecase(productRepo, uploader)
	cartUC := usecase.NewCartUsecase(cartRepo, userRepo, productRepo)
	orderUC := usecase.NewOrderUsecase(orderRepo, txManager)
	reviewUC := usecase.NewReviewUsecase(reviewRepo)
	analyticsUC := usecase.NewAnalyticsUsecase(orderRepo, orderItemRepo, productRepo, userRepo)

	//Handler生成
	userH := handler.NewUserHandler(userUC, signupUC, loginUC)
	categoryH := handler.NewCategoryHandler(categoryUC)
	productH := handler.NewProductHandler(productUC)
	cartH := handler.NewCartHandler(cartUC)
	orderH := handler.NewOrderHandler(orderUC)
	reviewH := handler.NewReviewHandler(reviewUC)
	analyticsH := handler.NewAnalyticsHandler(analyticsUC, cfg)

	//Server起動
	if err := server.Start(":"+cfg.Port, userH, categoryH, productH, cartH, orderH, reviewH, analyticsH); err != nil {
		log.Fatal(err)
	}
}
