package main

import (
	"context"
	"log"

	"Nova_Community/internal/config"
	"Nova_Community/internal/model"
	"Nova_Community/internal/pkg"
	"Nova_Community/internal/repository/mysql"
	"Nova_Community/internal/repository/redis"
	"Nova_Community/internal/router"
	"Nova_Community/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// 密钥必须来自配置
	if err := pkg.InitJWT(cfg.SecretKey); err != nil {
		log.Fatalf("jwt: %v", err)
	}

	if err := mysql.InitDB(cfg.MySQLDSN); err != nil {
		log.Fatalf("mysql: %v", err)
	}

	// redis 只做角色缓存，连不上不阻塞启动
	if err := redis.Init(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
		log.Printf("redis unavailable, role cache disabled: %v", err)
	}
	defer redis.Close()

	// 自动建表（开发阶段 OK）
	mysql.DB.AutoMigrate(
		&model.User{},
		&model.Role{},
		&model.Community{},
		&model.Member{},
		&model.MembershipOutbox{},
	)

	// outbox 投递：配了 Kafka 投 Kafka，否则打日志
	sender := service.Sender(service.LogSender)
	if len(cfg.Kafka.Brokers) > 0 {
		producer, err := pkg.NewKafkaProducer(pkg.KafkaConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		if err != nil {
			log.Fatalf("kafka: %v", err)
		}
		defer producer.Close()
		sender = service.KafkaSender(producer)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.NewOutboxRelayer(nil, sender).Run(ctx)

	smtp := pkg.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}

	// Gin
	r := router.InitRouter(nil, smtp)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
