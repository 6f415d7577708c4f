package capture

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/gridref-microservice/internal/domain"
	"github.com/gridref-microservice/internal/domain/repository"
	"github.com/gridref-microservice/internal/pkg/geo"
	"github.com/gridref-microservice/internal/pkg/utils"
	"github.com/gridref-microservice/internal/worker"
	"go.uber.org/zap"
)

const (
	maxBatchSize    = 20                     // максимум сообщений за раз
	emptyQueueSleep = 100 * time.Millisecond // пауза если очередь пуста
)

// CaptureWorker обрабатывает клики по карте из Redis Stream:
// преобразует точку в запрошенную систему координат и публикует результат
type CaptureWorker struct {
	*worker.BaseWorker
	streamRepo       repository.StreamRepository
	consumerName     string
	defaultZoom      int
	defaultPrecision int
}

// NewCaptureWorker создает новый CaptureWorker
func NewCaptureWorker(
	streamRepo repository.StreamRepository,
	consumerGroup string,
	defaultZoom int,
	defaultPrecision int,
	logger *zap.Logger,
) *CaptureWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &CaptureWorker{
		BaseWorker:       worker.NewBaseWorker("capture-conversion", consumerGroup, logger),
		streamRepo:       streamRepo,
		consumerName:     consumerName,
		defaultZoom:      defaultZoom,
		defaultPrecision: defaultPrecision,
	}
}

// Start запускает воркер
func (w *CaptureWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting CaptureWorker (batch mode)",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("max_batch_size", maxBatchSize))

	// Создаем consumer group
	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamCaptureClicks, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	// Основной цикл обработки
	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			// Обрабатываем batch сообщений
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(time.Second) // пауза при ошибке
				continue
			}

			// Если ничего не обработали - короткая пауза
			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// processBatch читает и обрабатывает batch сообщений
// Возвращает количество обработанных сообщений
func (w *CaptureWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	// 1. Читаем до 20 сообщений (неблокирующий режим)
	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamCaptureClicks,
		w.ConsumerGroup(),
		w.consumerName,
		maxBatchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil // очередь пуста
	}

	logger.Info("Processing batch",
		zap.Int("message_count", len(messages)))

	for _, msg := range messages {
		event, err := w.parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// ACK битое сообщение чтобы не застревало
			_ = w.streamRepo.AckMessage(ctx, domain.StreamCaptureClicks, w.ConsumerGroup(), msg.ID)
			continue
		}

		doneEvent := w.convertClick(event)

		if err := w.streamRepo.PublishToStream(ctx, domain.StreamCaptureDone, doneEvent); err != nil {
			logger.Error("Failed to publish done event",
				zap.String("capture_id", event.CaptureID.String()),
				zap.Error(err))
			// Не ACK'аем: сообщение будет переобработано
			continue
		}

		if err := w.streamRepo.AckMessage(ctx, domain.StreamCaptureClicks, w.ConsumerGroup(), msg.ID); err != nil {
			logger.Error("Failed to ack message",
				zap.String("message_id", msg.ID),
				zap.Error(err))
		}
	}

	logger.Info("Batch processed", zap.Int("processed", len(messages)))

	return len(messages), nil
}

// parseMessage парсит сообщение из стрима в CaptureClickEvent
func (w *CaptureWorker) parseMessage(msg domain.StreamMessage) (*domain.CaptureClickEvent, error) {
	var event domain.CaptureClickEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return &event, nil
}

// convertClick преобразует клик в запрошенную систему координат.
// Ошибки преобразования не прерывают обработку: они уходят
// в done-событие, host-приложение решает, что с ними делать.
func (w *CaptureWorker) convertClick(event *domain.CaptureClickEvent) *domain.CaptureDoneEvent {
	done := &domain.CaptureDoneEvent{
		CaptureID: event.CaptureID,
		System:    event.System,
	}

	if !event.IsValidSystem() {
		done.Error = fmt.Sprintf("unsupported coordinate system: %s", event.System)
		return done
	}

	if !utils.ValidateCoordinates(event.Lat, event.Lon) {
		done.Error = fmt.Sprintf("coordinates out of range: lat=%f lon=%f", event.Lat, event.Lon)
		return done
	}

	switch event.System {
	case domain.CaptureSystemXYZ:
		zoom := w.defaultZoom
		if event.Zoom != nil {
			zoom = *event.Zoom
		}
		if !utils.ValidateZoom(zoom) {
			done.Error = fmt.Sprintf("zoom out of range: %d", zoom)
			return done
		}
		tile := geo.DegreesToTile(event.Lat, event.Lon, zoom)
		bounds := geo.TileBounds(tile.X, tile.Y, tile.Zoom)
		done.Tile = &tile
		done.Bounds = &bounds

	case domain.CaptureSystemUTM:
		utm := geo.LatLonToUTM(event.Lat, event.Lon)
		done.UTM = &utm

	case domain.CaptureSystemMGRS:
		precision := w.defaultPrecision
		if event.Precision != nil {
			precision = *event.Precision
		}
		reference, err := geo.EncodeMGRS(event.Lat, event.Lon, precision)
		if err != nil {
			done.Error = err.Error()
			return done
		}
		done.MGRS = reference
		if bounds, _, err := geo.MGRSBounds(reference); err == nil {
			done.Bounds = &bounds
		}
	}

	return done
}
