package listener

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/fekuna/omnipos-ledger-service/internal/attribution/dto"
	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/pkg/logger"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap/zaptest"
)

type fakeReader struct {
	msgs chan kafka.Message
}

func (r *fakeReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	select {
	case <-ctx.Done():
		return kafka.Message{}, ctx.Err()
	case m := <-r.msgs:
		return m, nil
	}
}

type recorder struct {
	mu        sync.Mutex
	materials []model.Material
	lines     []model.RequestLine
	creates   []dto.CreateAttributionInput
	claimed   map[string]bool
	createErr error
}

func newRecorder() *recorder { return &recorder{claimed: map[string]bool{}} }

func (r *recorder) SyncMaterial(_ context.Context, m *model.Material) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.materials = append(r.materials, *m)
	return nil
}

func (r *recorder) SyncLine(_ context.Context, line *model.RequestLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, *line)
	return nil
}

func (r *recorder) Create(_ context.Context, input *dto.CreateAttributionInput) (*model.Attribution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	if r.claimed[input.RequestLineID] {
		return nil, fmt.Errorf("request line %s: %w", input.RequestLineID, model.ErrDuplicateAttribution)
	}
	r.claimed[input.RequestLineID] = true
	r.creates = append(r.creates, *input)
	return &model.Attribution{ID: "a-" + input.RequestLineID}, nil
}

func encode(t *testing.T, eventType string, payload interface{}) []byte {
	t.Helper()
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	b, err := json.Marshal(Event{EventID: "e-1", EventType: eventType, Payload: raw, Timestamp: time.Now()})
	if err != nil {
		t.Fatalf("marshal event: %v", err)
	}
	return b
}

func newListener(t *testing.T, rec *recorder) *RequisitionListener {
	return NewRequisitionListener(&fakeReader{}, rec, rec, rec, logger.FromZap(zaptest.NewLogger(t)))
}

func TestProcessMessage_ReferenceData(t *testing.T) {
	rec := newRecorder()
	l := newListener(t, rec)
	ctx := context.Background()

	if err := l.processMessage(ctx, encode(t, EventMaterialUpserted, MaterialPayload{ID: "m-1", Designation: "Drill", Type: "tool"})); err != nil {
		t.Fatalf("material event: %v", err)
	}
	if err := l.processMessage(ctx, encode(t, EventRequestLineUpserted, RequestLinePayload{ID: "l-1", RequestID: "r-1", MaterialID: "m-1", QuantityRequested: 2})); err != nil {
		t.Fatalf("line event: %v", err)
	}

	if len(rec.materials) != 1 || rec.materials[0].Designation != "Drill" || rec.materials[0].Type != "tool" {
		t.Errorf("unexpected materials: %+v", rec.materials)
	}
	if len(rec.lines) != 1 || rec.lines[0].QuantityRequested != 2 {
		t.Errorf("unexpected lines: %+v", rec.lines)
	}
}

func TestProcessMessage_Approval(t *testing.T) {
	rec := newRecorder()
	l := newListener(t, rec)
	ctx := context.Background()

	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	msg := encode(t, EventRequestLineApproved, ApprovalPayload{
		RequestLine: RequestLinePayload{ID: "l-1", RequestID: "r-1", MaterialID: "m-1", QuantityRequested: 3},
		RequesterID: "u-1",
		DueDate:     &due,
	})

	if err := l.processMessage(ctx, msg); err != nil {
		t.Fatalf("approval: %v", err)
	}
	// Redelivery is skipped without an error.
	if err := l.processMessage(ctx, msg); err != nil {
		t.Fatalf("duplicate approval: %v", err)
	}

	if len(rec.creates) != 1 {
		t.Fatalf("expected one attribution, got %d", len(rec.creates))
	}
	got := rec.creates[0]
	if got.Quantity != 3 || got.RequestLineID != "l-1" || got.ActorID != actorSystem || got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Errorf("unexpected create input: %+v", got)
	}
	if len(rec.lines) != 2 {
		t.Errorf("expected the line to be synced on each delivery, got %d", len(rec.lines))
	}
}

func TestProcessMessage_Errors(t *testing.T) {
	rec := newRecorder()
	rec.createErr = fmt.Errorf("adjust: %w", model.ErrInsufficientStock)
	l := newListener(t, rec)
	ctx := context.Background()

	if err := l.processMessage(ctx, []byte("{not json")); err == nil {
		t.Error("expected an error for malformed JSON")
	}
	if err := l.processMessage(ctx, encode(t, "OrderCreated", map[string]string{})); err != nil {
		t.Errorf("unknown events are ignored, got %v", err)
	}

	err := l.processMessage(ctx, encode(t, EventRequestLineApproved, ApprovalPayload{
		RequestLine: RequestLinePayload{ID: "l-9", MaterialID: "m-1", QuantityRequested: 1},
		RequesterID: "u-1",
	}))
	if !errors.Is(err, model.ErrInsufficientStock) {
		t.Errorf("expected ErrInsufficientStock, got %v", err)
	}
}

func TestStart_ConsumesUntilCancelled(t *testing.T) {
	rec := newRecorder()
	reader := &fakeReader{msgs: make(chan kafka.Message, 1)}
	l := NewRequisitionListener(reader, rec, rec, rec, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.Start(ctx)
		close(done)
	}()

	reader.msgs <- kafka.Message{Value: encode(t, EventMaterialUpserted, MaterialPayload{ID: "m-1", Designation: "Saw"})}

	deadline := time.After(5 * time.Second)
	for {
		rec.mu.Lock()
		n := len(rec.materials)
		rec.mu.Unlock()
		if n == 1 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("message was not consumed")
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("listener did not stop")
	}
}
