package producer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mrAbdou/ZenithShop-sub002/internal/domain/model"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

type EventType string

const (
	OrderPlacedEventName        EventType = "order.placed"
	OrderStatusChangedEventName EventType = "order.status_changed"
)

type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType EventType `json:"event_type"`
	CreatedAt time.Time `json:"created_at"`
}

type orderItemPayload struct {
	ProductID uint            `json:"product_id"`
	Qte       int             `json:"qte"`
	Price     decimal.Decimal `json:"price"`
}

type OrderPlacedEvent struct {
	BaseEvent
	OrderID string             `json:"order_id"`
	UserID  string             `json:"user_id"`
	Total   decimal.Decimal    `json:"total"`
	Items   []orderItemPayload `json:"items"`
}

type OrderStatusChangedEvent struct {
	BaseEvent
	OrderID string            `json:"order_id"`
	From    model.OrderStatus `json:"from"`
	To      model.OrderStatus `json:"to"`
}

// OrderEventProducer 訂單事件發到kafka，以orderID當key保證同一訂單的順序
type OrderEventProducer struct {
	writer *kafka.Writer
}

func NewOrderEventProducer(brokers []string, topic string) *OrderEventProducer {
	return &OrderEventProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *OrderEventProducer) produce(ctx context.Context, key string, event any) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}
	return nil
}

func (p *OrderEventProducer) ProduceOrderPlaced(ctx context.Context, order *model.Order) error {
	event := OrderPlacedEvent{
		BaseEvent: BaseEvent{
			EventID:   uuid.New().String(),
			EventType: OrderPlacedEventName,
			CreatedAt: time.Now().UTC(),
		},
		OrderID: order.OrderID,
		UserID:  order.UserID,
		Total:   order.Total,
	}
	for _, item := range order.Items {
		event.Items = append(event.Items, orderItemPayload{
			ProductID: item.ProductID,
			Qte:       item.Qte,
			Price:     item.Price,
		})
	}
	return p.produce(ctx, order.OrderID, event)
}

func (p *OrderEventProducer) ProduceOrderStatusChanged(ctx context.Context, orderID string, from, to model.OrderStatus) error {
	event := OrderStatusChangedEvent{
		BaseEvent: BaseEvent{
			EventID:   uuid.New().String(),
			EventType: OrderStatusChangedEventName,
			CreatedAt: time.Now().UTC(),
		},
		OrderID: orderID,
		From:    from,
		To:      to,
	}
	return p.produce(ctx, orderID, event)
}

func (p *OrderEventProducer) Close() error {
	return p.writer.Close()
}
