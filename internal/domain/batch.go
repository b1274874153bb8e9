package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Field names used in validation errors and on the wire.
const (
	FieldTargetPercentage = "targetPercentage"
	FieldImportSetupID    = "importSetupId"
	FieldHourlyBatchCount = "hourlyBatchCount"
)

// BatchSettings is the configuration submitted to trigger a batch job.
type BatchSettings struct {
	TargetPercentage float64 `json:"targetPercentage"`
	ImportSetupID    int64   `json:"importSetupId"`
	HourlyBatchCount float64 `json:"hourlyBatchCount"`
}

// DefaultBatchSettings returns the settings used before a user has saved any.
func DefaultBatchSettings() BatchSettings {
	return BatchSettings{
		TargetPercentage: 0,
		ImportSetupID:    1,
		HourlyBatchCount: 60,
	}
}

// Validate checks every field against its allowed range and reports all
// violations at once.
func (s BatchSettings) Validate() error {
	var errs []FieldError

	switch {
	case math.IsNaN(s.TargetPercentage):
		errs = append(errs, FieldError{Field: FieldTargetPercentage, Message: "Must be a number"})
	case s.TargetPercentage < 0:
		errs = append(errs, FieldError{Field: FieldTargetPercentage, Message: "Minimum value is 0"})
	case s.TargetPercentage > 100:
		errs = append(errs, FieldError{Field: FieldTargetPercentage, Message: "Maximum value is 100"})
	}

	if s.ImportSetupID < 1 {
		errs = append(errs, FieldError{Field: FieldImportSetupID, Message: "Must be a positive integer greater than 0"})
	}

	switch {
	case math.IsNaN(s.HourlyBatchCount):
		errs = append(errs, FieldError{Field: FieldHourlyBatchCount, Message: "Must be a number"})
	case s.HourlyBatchCount < 1:
		errs = append(errs, FieldError{Field: FieldHourlyBatchCount, Message: "Minimum value is 1"})
	case s.HourlyBatchCount > 100:
		errs = append(errs, FieldError{Field: FieldHourlyBatchCount, Message: "Maximum value is 100"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// StoredBatchSettings is BatchSettings persisted for a user.
type StoredBatchSettings struct {
	UserID    uuid.UUID
	Settings  BatchSettings
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RunStatus is the lifecycle state of a batch run.
type RunStatus string

const (
	RunStatusPending RunStatus = "pending"
	RunStatusStopped RunStatus = "stopped"
	RunStatusFailed  RunStatus = "failed"
)

// IsActive reports whether a run in this status blocks a new start.
func (s RunStatus) IsActive() bool {
	return s == RunStatusPending
}

// BatchRun is one accepted start of a master batch.
type BatchRun struct {
	TaskID     uuid.UUID
	UserID     uuid.UUID
	Settings   BatchSettings
	Status     RunStatus
	StartedAt  time.Time
	FinishedAt *time.Time
}

// CommandType names a message sent to the batch workers.
type CommandType string

const (
	CommandStart CommandType = "start"
	CommandStop  CommandType = "stop"
)

// BatchCommand is what the server hands to the job dispatcher.
type BatchCommand struct {
	Type     CommandType    `json:"type"`
	TaskID   uuid.UUID      `json:"task_id"`
	UserID   uuid.UUID      `json:"user_id"`
	Settings *BatchSettings `json:"settings,omitempty"`
	IssuedAt time.Time      `json:"issued_at"`
}
