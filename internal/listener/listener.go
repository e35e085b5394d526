package listener

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-ledger-service/internal/attribution/dto"
	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/pkg/logger"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	EventMaterialUpserted    = "MaterialUpserted"
	EventRequestLineUpserted = "RequestLineUpserted"
	EventRequestLineApproved = "RequestLineApproved"

	actorSystem = "system"
)

// MessageReader is satisfied by *broker.KafkaConsumer.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type MaterialSyncer interface {
	SyncMaterial(ctx context.Context, m *model.Material) error
}

type LineSyncer interface {
	SyncLine(ctx context.Context, line *model.RequestLine) error
}

type Attributor interface {
	Create(ctx context.Context, input *dto.CreateAttributionInput) (*model.Attribution, error)
}

// RequisitionListener applies events from the requisition workflow:
// reference data upserts and approved request lines, which become
// attributions.
type RequisitionListener struct {
	reader       MessageReader
	materials    MaterialSyncer
	lines        LineSyncer
	attributions Attributor
	logger       logger.ZapLogger
	retryDelay   time.Duration
}

func NewRequisitionListener(
	reader MessageReader,
	materials MaterialSyncer,
	lines LineSyncer,
	attributions Attributor,
	log logger.ZapLogger,
) *RequisitionListener {
	return &RequisitionListener{
		reader:       reader,
		materials:    materials,
		lines:        lines,
		attributions: attributions,
		logger:       log,
		retryDelay:   time.Second,
	}
}

// Start blocks until ctx is cancelled.
func (l *RequisitionListener) Start(ctx context.Context) {
	l.logger.Info("Starting requisition Kafka listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping requisition Kafka listener")
			return
		default:
			msg, err := l.reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				select {
				case <-ctx.Done():
					return
				case <-time.After(l.retryDelay):
				}
				continue
			}
			if err := l.processMessage(ctx, msg.Value); err != nil {
				l.logger.Error("Failed to process requisition event",
					zap.Int64("offset", msg.Offset),
					zap.ByteString("key", msg.Key),
					zap.Error(err),
				)
			}
		}
	}
}

type Event struct {
	EventID   string          `json:"event_id"`
	EventType string          `json:"event_type"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}

type MaterialPayload struct {
	ID          string `json:"id"`
	Designation string `json:"designation"`
	Type        string `json:"type"`
	Condition   string `json:"condition"`
}

type RequestLinePayload struct {
	ID                string `json:"id"`
	RequestID         string `json:"request_id"`
	MaterialID        string `json:"material_id"`
	QuantityRequested int64  `json:"quantity_requested"`
}

type ApprovalPayload struct {
	RequestLine RequestLinePayload `json:"request_line"`
	RequesterID string             `json:"requester_id"`
	// Quantity defaults to the requested quantity.
	Quantity   int64      `json:"quantity"`
	DueDate    *time.Time `json:"due_date"`
	ApprovedBy string     `json:"approved_by"`
}

func (l *RequisitionListener) processMessage(ctx context.Context, value []byte) error {
	var event Event
	if err := json.Unmarshal(value, &event); err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	switch event.EventType {
	case EventMaterialUpserted:
		var p MaterialPayload
		if err := json.Unmarshal(event.Payload, &p); err != nil {
			return fmt.Errorf("unmarshal %s: %w", event.EventType, err)
		}
		return l.materials.SyncMaterial(ctx, &model.Material{
			ID:          p.ID,
			Designation: p.Designation,
			Type:        p.Type,
			Condition:   p.Condition,
		})

	case EventRequestLineUpserted:
		var p RequestLinePayload
		if err := json.Unmarshal(event.Payload, &p); err != nil {
			return fmt.Errorf("unmarshal %s: %w", event.EventType, err)
		}
		return l.lines.SyncLine(ctx, p.toModel())

	case EventRequestLineApproved:
		var p ApprovalPayload
		if err := json.Unmarshal(event.Payload, &p); err != nil {
			return fmt.Errorf("unmarshal %s: %w", event.EventType, err)
		}
		return l.approve(ctx, event.EventID, &p)

	default:
		return nil
	}
}

func (l *RequisitionListener) approve(ctx context.Context, eventID string, p *ApprovalPayload) error {
	line := p.RequestLine.toModel()
	if err := l.lines.SyncLine(ctx, line); err != nil {
		return err
	}

	quantity := p.Quantity
	if quantity == 0 {
		quantity = line.QuantityRequested
	}
	actor := p.ApprovedBy
	if actor == "" {
		actor = actorSystem
	}

	a, err := l.attributions.Create(ctx, &dto.CreateAttributionInput{
		MaterialID:    line.MaterialID,
		RequesterID:   p.RequesterID,
		RequestLineID: line.ID,
		Quantity:      quantity,
		DueDate:       p.DueDate,
		ActorID:       actor,
	})
	if errors.Is(err, model.ErrDuplicateAttribution) {
		l.logger.Info("Request line already attributed, skipping",
			zap.String("event_id", eventID),
			zap.String("request_line_id", line.ID),
		)
		return nil
	}
	if err != nil {
		return fmt.Errorf("attribute request line %s: %w", line.ID, err)
	}

	l.logger.Info("Request line attributed",
		zap.String("event_id", eventID),
		zap.String("request_line_id", line.ID),
		zap.String("attribution_id", a.ID),
	)
	return nil
}

func (p RequestLinePayload) toModel() *model.RequestLine {
	return &model.RequestLine{
		ID:                p.ID,
		RequestID:         p.RequestID,
		MaterialID:        p.MaterialID,
		QuantityRequested: p.QuantityRequested,
	}
}
