package main

import (
	"context"
	"os"

	firebase "firebase.google.com/go/v4"
	"github.com/30042004huy/Tecksale-quanlibanhang/api"
	"github.com/30042004huy/Tecksale-quanlibanhang/internal/firebasedb"
	"github.com/30042004huy/Tecksale-quanlibanhang/internal/notification"
	"github.com/30042004huy/Tecksale-quanlibanhang/internal/util"
	"github.com/30042004huy/Tecksale-quanlibanhang/internal/worker"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"

	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configurations
	config, err := util.LoadConfig("./app.env")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config file 😣")
	}

	log.Info().Msg("configurations loaded successfully ✅")

	// Validate redis connection before wiring the task queue
	redisDb := redis.NewClient(&redis.Options{
		Addr:     config.RedisServerAddress,
		Password: "", // no password set
		DB:       0,  // use default DB
	})

	pingErr := redisDb.Ping(context.Background()).Err()
	if pingErr != nil {
		log.Fatal().Err(pingErr).Msg("failed to connect to redis 😣")
	}
	log.Info().Msg("connected to redis ✅")

	// Initialize the firebase app shared by the database and messaging clients
	firebaseApp, err := newFirebaseApp(config)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create firebase app 😣")
	}

	dbClient, err := firebasedb.NewClient(context.Background(), firebaseApp)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create realtime database client 😣")
	}
	log.Info().Msg("realtime database client created successfully ✅")

	pushService, err := notification.NewPushService(context.Background(), firebaseApp)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create fcm push service 😣")
	}
	log.Info().Msg("fcm push service created successfully ✅")

	redisOpt := asynq.RedisClientOpt{
		Addr: config.RedisServerAddress,
	}

	taskDistributor := worker.NewTaskDistributor(redisOpt)
	taskInspector := worker.NewTaskInspector(redisOpt)

	go runTaskProcessor(redisOpt, dbClient, pushService)

	runHTTPServer(config, taskDistributor, taskInspector)
}

// newFirebaseApp khởi tạo firebase app với thông tin xác thực từ config:
// file service account, chuỗi JSON, hoặc Application Default Credentials.
func newFirebaseApp(config util.Config) (*firebase.App, error) {
	var opts []option.ClientOption
	switch {
	case config.FirebaseCredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(config.FirebaseCredentialsFile))
	case config.FirebaseCredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(config.FirebaseCredentialsJSON)))
	}

	return firebase.NewApp(context.Background(), &firebase.Config{
		ProjectID:   config.FirebaseProjectID,
		DatabaseURL: config.FirebaseDatabaseURL,
	}, opts...)
}

func runTaskProcessor(redisOpt asynq.RedisClientOpt, db firebasedb.Database, pusher notification.Pusher) {
	taskProcessor := worker.NewRedisTaskProcessor(redisOpt, db, pusher)

	log.Info().Msg("task processor started ✅")
	if err := taskProcessor.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start task processor 😣")
	}
}

func runHTTPServer(config util.Config, taskDistributor worker.TaskDistributor, taskInspector worker.TaskInspector) {
	server, err := api.NewServer(&config, taskDistributor, taskInspector)

	if err != nil {
		log.Fatal().Err(err).Msg("failed to create HTTP server 😣")
	}

	err = server.Start(config.HTTPServerAddress)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start HTTP server 😣")
	}
}
