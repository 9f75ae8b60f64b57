package service

import (
	"context"
	"log"
	"time"

	"Nova_Community/internal/model"
	"Nova_Community/internal/pkg"
	"Nova_Community/internal/repository/mysql"

	"gorm.io/gorm"
)

type Sender func(ctx context.Context, ob *model.MembershipOutbox) error

// OutboxRelayer 定时扫 membership_outbox，把待投递事件交给 sender
type OutboxRelayer struct {
	repo      *mysql.OutboxRepository
	batchSize int
	interval  time.Duration
	sender    Sender
}

func NewOutboxRelayer(db *gorm.DB, sender Sender) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      mysql.NewOutboxRepository(db),
		batchSize: 200,
		interval:  time.Second,
		sender:    sender,
	}
}

// Run 启动投递循环，ctx 取消时退出
func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.drainOnce(ctx)
		}
	}
}

// drainOnce 投递一批，失败的记 retry 下轮再试
func (r *OutboxRelayer) drainOnce(ctx context.Context) {
	rows, err := r.repo.ListPending(ctx, r.batchSize)
	if err != nil {
		log.Printf("outbox query err: %v", err)
		return
	}
	for i := range rows {
		ob := rows[i]
		if err = r.sender(ctx, &ob); err != nil {
			_ = r.repo.MarkRetry(ctx, ob.ID)
			continue
		}
		_ = r.repo.MarkSent(ctx, ob.ID)
	}
}

// KafkaSender 事件投递到 Kafka，key 用社区 id
func KafkaSender(producer *pkg.KafkaProducer) Sender {
	return func(ctx context.Context, ob *model.MembershipOutbox) error {
		return producer.Send(ctx, ob.CommunityID, []byte(ob.Payload))
	}
}

// LogSender 没配 Kafka 时的兜底 sender
func LogSender(ctx context.Context, ob *model.MembershipOutbox) error {
	log.Printf("OUTBOX SEND type=%s community=%s user=%s payload=%s",
		ob.EventType, ob.CommunityID, ob.UserID, ob.Payload)
	return nil
}
