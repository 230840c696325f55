package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Clean-Architecture-Social/internal/authz"
	"github.com/Guyuepp/Go-Clean-Architecture-Social/internal/repository"
	mysqlRepo "github.com/Guyuepp/Go-Clean-Architecture-Social/internal/repository/mysql"
	"github.com/Guyuepp/Go-Clean-Architecture-Social/internal/repository/mysql/model"
	myRedisCache "github.com/Guyuepp/Go-Clean-Architecture-Social/internal/repository/redis"
	"github.com/Guyuepp/Go-Clean-Architecture-Social/internal/workers"

	"github.com/Guyuepp/Go-Clean-Architecture-Social/internal/rest"
	"github.com/Guyuepp/Go-Clean-Architecture-Social/internal/rest/middleware"
	"github.com/Guyuepp/Go-Clean-Architecture-Social/internal/usecase/comment"
	"github.com/Guyuepp/Go-Clean-Architecture-Social/internal/usecase/feed"
	"github.com/Guyuepp/Go-Clean-Architecture-Social/internal/usecase/follow"
	"github.com/Guyuepp/Go-Clean-Architecture-Social/internal/usecase/notification"
	"github.com/Guyuepp/Go-Clean-Architecture-Social/internal/usecase/post"
	"github.com/Guyuepp/Go-Clean-Architecture-Social/internal/usecase/reaction"
	"github.com/Guyuepp/Go-Clean-Architecture-Social/internal/usecase/user"
	"github.com/joho/godotenv"
)

const (
	defaultTimeout      = 30
	defaultAddress      = ":9090"
	defaultCacheDB      = 0
	defaultBloomBitSize = 10000000
	dbMaxRetry          = 10
	dbRetryIntervalSec  = 2
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

func main() {
	//prepare database
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbName := os.Getenv("DATABASE_NAME")
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "Local")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)

	for i := 0; i < dbMaxRetry; i++ {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, err := db.DB()
			if err != nil {
				log.Printf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			err = sqlDB.Ping()
			if err == nil {
				break
			}
			log.Printf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		log.Fatal("could not connect to database after retries:", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("got error when getting sql.DB from gorm.DB", err)
		}
		if err := sqlDB.Close(); err != nil {
			log.Fatal("got error when closing the DB connection", err)
		}
	}()

	// the unique indexes on user_likes and follows carry the idempotency
	// invariants, make sure they exist
	err = db.AutoMigrate(
		&model.User{},
		&model.Post{},
		&model.Comment{},
		&model.Like{},
		&model.Follow{},
		&model.Notification{},
	)
	if err != nil {
		log.Fatal("failed to migrate database schema:", err)
	}

	// prepare cache
	cacheHost := os.Getenv("CACHE_HOST")
	cachePort := os.Getenv("CACHE_PORT")
	cachePass := os.Getenv("CACHE_PASS")
	cacheDBStr := os.Getenv("CACHE_DB")
	cacheDB, err := strconv.Atoi(cacheDBStr)
	if err != nil {
		log.Println("failed to parse cacheDB, using default cacheDB")
		cacheDB = defaultCacheDB
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cacheHost + ":" + cachePort,
		Password: cachePass,
		DB:       cacheDB,
	})
	defer func() {
		err = client.Close()
		if err != nil {
			log.Fatal("got error when closing the cache connection", err)
		}
	}()

	_, err = client.Ping(context.Background()).Result()
	if err != nil {
		log.Fatal("failed to open connection to cache", err)
		return
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	route.Use(middleware.RequestID())
	timeoutStr := os.Getenv("CONTEXT_TIMEOUT")
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil {
		log.Println("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	timeoutContext := time.Duration(timeout) * time.Second
	route.Use(middleware.SetRequestContextWithTimeout(timeoutContext))

	// Prepare Repository
	userRepo := mysqlRepo.NewUserRepository(db)
	commentRepo := mysqlRepo.NewCommentRepository(db)
	likeRepo := mysqlRepo.NewLikeRepository(db)
	followRepo := mysqlRepo.NewFollowRepository(db)
	notificationRepo := mysqlRepo.NewNotificationRepository(db)

	// Post storage is layered: db, cache and a coordinating repository
	postDBRepo := mysqlRepo.NewPostDBRepository(db)
	postCache := myRedisCache.NewPostCache(client)
	postRepo := repository.NewPostRepository(postDBRepo, postCache, userRepo, likeRepo)

	bloomBitSizeStr := os.Getenv("BLOOM_FILTER_SIZE")
	bloomBitSize, err := strconv.ParseUint(bloomBitSizeStr, 10, 64)
	if err != nil {
		log.Printf("failed to parse bloom bit size, using default size")
		bloomBitSize = defaultBloomBitSize
	}
	bloomRepo := myRedisCache.NewRedisBloomRepo(client, bloomBitSize)

	// Start worker
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	notifier := workers.NewNotifyWorker(notificationRepo)
	go notifier.Start(ctx)

	// Build service layer
	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	jwtTTLStr := os.Getenv("JWT_EXPIRE_HOURS")
	jwtTTL, err := strconv.Atoi(jwtTTLStr)
	if err != nil {
		log.Println("failed to parse JWT TTL, using default 24 hours")
		jwtTTL = 24
	}

	gate := authz.NewGate()

	userSvc := user.NewService(userRepo, jwtSecret, time.Duration(jwtTTL)*time.Hour)
	followSvc := follow.NewService(followRepo, userRepo, gate)
	postSvc := post.NewService(postRepo, bloomRepo, gate)
	commentSvc := comment.NewService(commentRepo, postRepo, userRepo, bloomRepo, gate)
	reactionSvc := reaction.NewService(likeRepo, postRepo, postCache, gate, notifier)
	feedSvc := feed.NewService(followRepo, postRepo)
	notificationSvc := notification.NewService(notificationRepo, userRepo)

	userHandler := rest.NewUserHandler(userSvc, followSvc)
	postHandler := rest.NewPostHandler(postSvc, reactionSvc)
	commentHandler := rest.NewCommentHandler(commentSvc)
	feedHandler := rest.NewFeedHandler(feedSvc)
	notificationHandler := rest.NewNotificationHandler(notificationSvc)

	authMiddleware := middleware.AuthMiddleware(string(jwtSecret))

	// Prepare bloom filter
	if err := postSvc.InitBloomFilter(ctx); err != nil {
		log.Printf("failed to init bloom filter: %v\n", err)
		return
	}

	// Register routes
	route.POST("/register", userHandler.Register)
	route.POST("/login", userHandler.Login)

	route.GET("/posts", postHandler.Fetch)
	route.GET("/posts/:id", postHandler.GetByID)
	route.GET("/posts/:id/comments", commentHandler.FetchCommentsByPost)

	route.GET("/users/:id/following", userHandler.Following)
	route.GET("/users/:id/followers", userHandler.Followers)

	authorized := route.Group("/")
	authorized.Use(authMiddleware)
	{
		authorized.GET("/profile", userHandler.GetProfile)
		authorized.PUT("/profile", userHandler.UpdateProfile)
		authorized.PUT("/profile/password", userHandler.EditPassword)

		authorized.POST("/users/:id/follow", userHandler.FollowUser)
		authorized.POST("/users/:id/unfollow", userHandler.UnfollowUser)

		authorized.POST("/posts", postHandler.Store)
		authorized.PUT("/posts/:id", postHandler.Update)
		authorized.DELETE("/posts/:id", postHandler.Delete)
		authorized.POST("/posts/:id/like", postHandler.Like)
		authorized.DELETE("/posts/:id/like", postHandler.Unlike)

		authorized.POST("/posts/:id/comments", commentHandler.CreateComment)
		authorized.PUT("/comments/:id", commentHandler.UpdateComment)
		authorized.DELETE("/comments/:id", commentHandler.DeleteComment)

		authorized.GET("/feed", feedHandler.Fetch)

		authorized.GET("/notifications", notificationHandler.Fetch)
		authorized.POST("/notifications/:id/read", notificationHandler.MarkRead)
		authorized.GET("/notifications/unread_count", notificationHandler.UnreadCount)
	}

	// Start Server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		log.Printf("Server is running on %s\n", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Waiting for worker to cleanup...")
	time.Sleep(2 * time.Second)

	log.Println("Server exiting")
}
