package entity

import "fmt"

// QueueTier is the severity bucket of a facility queue
type QueueTier string

const (
	QueueTierAvailable QueueTier = "available"
	QueueTierLow       QueueTier = "low"
	QueueTierMedium    QueueTier = "medium"
	QueueTierHigh      QueueTier = "high"
)

// Display colors for each tier
const (
	QueueColorAvailable = "#10B981"
	QueueColorLow       = "#0EA5E9"
	QueueColorMedium    = "#F59E0B"
	QueueColorHigh      = "#EF4444"
)

// QueueStatus is the display information derived from a queue count
type QueueStatus struct {
	Tier  QueueTier
	Label string
	Color string
	Icon  string
}

// QueueThresholds holds the inclusive upper bounds of the Low and Medium tiers.
// Anything above Medium is High; zero is always Available.
type QueueThresholds struct {
	Low    int
	Medium int
}

// DefaultQueueThresholds returns the thresholds used when none are configured
func DefaultQueueThresholds() QueueThresholds {
	return QueueThresholds{Low: 3, Medium: 6}
}

// Classify maps a queue count to its status. Every place that displays queue
// status goes through here.
func (t QueueThresholds) Classify(queueCount int) QueueStatus {
	switch {
	case queueCount <= 0:
		return QueueStatus{
			Tier:  QueueTierAvailable,
			Label: "Available Now",
			Color: QueueColorAvailable,
			Icon:  "check-circle",
		}
	case queueCount <= t.Low:
		return QueueStatus{
			Tier:  QueueTierLow,
			Label: fmt.Sprintf("%d in Queue", queueCount),
			Color: QueueColorLow,
			Icon:  "clock",
		}
	case queueCount <= t.Medium:
		return QueueStatus{
			Tier:  QueueTierMedium,
			Label: fmt.Sprintf("%d Waiting", queueCount),
			Color: QueueColorMedium,
			Icon:  "hourglass-half",
		}
	default:
		return QueueStatus{
			Tier:  QueueTierHigh,
			Label: fmt.Sprintf("%d Waiting", queueCount),
			Color: QueueColorHigh,
			Icon:  "exclamation-triangle",
		}
	}
}

// ClassifyQueue classifies with the default thresholds
func ClassifyQueue(queueCount int) QueueStatus {
	return DefaultQueueThresholds().Classify(queueCount)
}
