package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrRecordDeliveryAttemptCommandIsNotConstructed = errors.New(
	"RecordDeliveryAttemptCommand is not constructed")

// RecordDeliveryAttemptCommand records the outcome of a delivery attempt. A
// successful attempt carries the recipient's name as proof of delivery; a
// failed one carries the reason.
//
//nolint:recvcheck //using for validation
type RecordDeliveryAttemptCommand struct {
	trackingCode  string
	delivered     bool
	recipientName string
	note          string
	actorID       kernel.UUID

	guard guard.ConstructorGuard
}

// NewRecordDeliveryAttemptCommand creates a new RecordDeliveryAttemptCommand.
func NewRecordDeliveryAttemptCommand(
	trackingCode string,
	delivered bool,
	recipientName string,
	note string,
	actorID kernel.UUID,
) (RecordDeliveryAttemptCommand, error) {
	cmd := RecordDeliveryAttemptCommand{}
	err := errors.Join(
		cmd.setTrackingCode(trackingCode),
		cmd.setOutcome(delivered, recipientName, note),
		cmd.setActorID(actorID),
	)
	if err != nil {
		return RecordDeliveryAttemptCommand{}, err
	}

	cmd.guard = guard.NewConstructorGuard()
	return cmd, nil
}

func (c *RecordDeliveryAttemptCommand) Validate() error {
	return c.guard.Validate(ErrRecordDeliveryAttemptCommandIsNotConstructed)
}

func (c *RecordDeliveryAttemptCommand) TrackingCode() string {
	return c.trackingCode
}

func (c *RecordDeliveryAttemptCommand) Delivered() bool {
	return c.delivered
}

func (c *RecordDeliveryAttemptCommand) RecipientName() string {
	return c.recipientName
}

func (c *RecordDeliveryAttemptCommand) Note() string {
	return c.note
}

func (c *RecordDeliveryAttemptCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *RecordDeliveryAttemptCommand) setTrackingCode(trackingCode string) error {
	if trackingCode == "" {
		return ErrTrackingCodeIsRequired
	}
	c.trackingCode = trackingCode
	return nil
}

func (c *RecordDeliveryAttemptCommand) setOutcome(delivered bool, recipientName, note string) error {
	if delivered && recipientName == "" {
		return errs.NewValueIsRequiredError("recipientName")
	}
	if !delivered && note == "" {
		return errs.NewValueIsRequiredError("note")
	}
	c.delivered = delivered
	c.recipientName = recipientName
	c.note = note
	return nil
}

func (c *RecordDeliveryAttemptCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("actorID", err)
	}
	c.actorID = actorID
	return nil
}
