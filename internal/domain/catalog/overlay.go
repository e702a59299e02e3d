// internal/domain/catalog/overlay.go
package catalog

import (
	"fmt"
	"time"
)

// AcknowledgeWindow is how long a hotspot stays in the "added" state and
// ignores further activations.
const AcknowledgeWindow = 1500 * time.Millisecond

// OverlayState is the visual state of a hotspot marker
type OverlayState string

const (
	OverlayIdle         OverlayState = "idle"
	OverlayAcknowledged OverlayState = "acknowledged"
)

// Overlay is the acknowledgement state machine of one hotspot marker:
// idle -> (activate) -> acknowledged -> (window elapses) -> idle.
type Overlay struct {
	AcknowledgedAt time.Time `json:"acknowledged_at,omitempty"`
}

// State reports the overlay state at now
func (o Overlay) State(now time.Time) OverlayState {
	if o.AcknowledgedAt.IsZero() || !now.Before(o.AcknowledgedAt.Add(AcknowledgeWindow)) {
		return OverlayIdle
	}
	return OverlayAcknowledged
}

// Activate handles a click. It returns true, and starts the acknowledgement
// window, only when the overlay is idle; activations while acknowledged are
// ignored.
func (o *Overlay) Activate(now time.Time) bool {
	if o.State(now) == OverlayAcknowledged {
		return false
	}
	o.AcknowledgedAt = now
	return true
}

// OverlayKey identifies a hotspot marker within the book
func OverlayKey(pageIndex, hotspotIndex int) string {
	return fmt.Sprintf("%d:%d", pageIndex, hotspotIndex)
}

// PruneAcknowledged drops entries whose window has elapsed
func PruneAcknowledged(acks map[string]time.Time, now time.Time) {
	for key, at := range acks {
		if (Overlay{AcknowledgedAt: at}).State(now) == OverlayIdle {
			delete(acks, key)
		}
	}
}
