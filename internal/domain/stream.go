package domain

import "github.com/google/uuid"

// Stream names (должны совпадать с host-приложением карты)
const (
	StreamCaptureClicks = "stream:capture:clicks"
	StreamCaptureDone   = "stream:capture:done"
)

// Целевые системы координат для событий захвата
const (
	CaptureSystemXYZ  = "xyz"
	CaptureSystemUTM  = "utm"
	CaptureSystemMGRS = "mgrs"
)

// CaptureClickEvent - клик по карте от host-приложения
type CaptureClickEvent struct {
	CaptureID uuid.UUID `json:"capture_id"`
	System    string    `json:"system"`
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	Zoom      *int      `json:"zoom,omitempty"`
	Precision *int      `json:"precision,omitempty"`
}

// IsValidSystem проверяет, что запрошена поддерживаемая система координат
func (e *CaptureClickEvent) IsValidSystem() bool {
	switch e.System {
	case CaptureSystemXYZ, CaptureSystemUTM, CaptureSystemMGRS:
		return true
	}
	return false
}

// CaptureDoneEvent - результат преобразования клика
type CaptureDoneEvent struct {
	CaptureID uuid.UUID       `json:"capture_id"`
	System    string          `json:"system"`
	Tile      *TileCoordinate `json:"tile,omitempty"`
	UTM       *UTMCoordinate  `json:"utm,omitempty"`
	MGRS      string          `json:"mgrs,omitempty"`
	Bounds    *BoundingBox    `json:"bounds,omitempty"`
	Error     string          `json:"error,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
