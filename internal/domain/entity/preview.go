package entity

import "time"

// Estados de una visita de showroom. pending → confirmed | cancelled;
// confirmed → completed | cancelled.
const (
	PreviewStatusPending   = "pending"
	PreviewStatusConfirmed = "confirmed"
	PreviewStatusCompleted = "completed"
	PreviewStatusCancelled = "cancelled"
)

var previewTransitions = map[string][]string{
	PreviewStatusPending:   {PreviewStatusConfirmed, PreviewStatusCancelled},
	PreviewStatusConfirmed: {PreviewStatusCompleted, PreviewStatusCancelled},
	PreviewStatusCompleted: {},
	PreviewStatusCancelled: {},
}

// ValidPreviewTransition indica si el cambio de estado from → to está permitido.
func ValidPreviewTransition(from, to string) bool {
	for _, next := range previewTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Preview agenda una visita al showroom. Products es un snapshot de texto
// libre de los productos de interés al momento de agendar.
type Preview struct {
	ID            int64
	CustomerName  string
	CustomerPhone string
	Address       string
	PreferredDate string
	Products      string
	Status        string
	CreatedAt     time.Time
}
