package commands

import (
	"errors"
	"fmt"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrRetryFailedDeliveriesCommandIsNotConstructed = errors.New(
	"RetryFailedDeliveriesCommand is not constructed")

// RetryFailedDeliveriesCommand re-dispatches failed delivery assignments that
// still have attempts left. Runs from the scheduled retry job.
//
//nolint:recvcheck //using for validation
type RetryFailedDeliveriesCommand struct {
	maxAttempts int
	actorID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewRetryFailedDeliveriesCommand creates a new RetryFailedDeliveriesCommand.
func NewRetryFailedDeliveriesCommand(maxAttempts int, actorID kernel.UUID) (RetryFailedDeliveriesCommand, error) {
	cmd := RetryFailedDeliveriesCommand{}
	err := errors.Join(
		cmd.setMaxAttempts(maxAttempts),
		cmd.setActorID(actorID),
	)
	if err != nil {
		return RetryFailedDeliveriesCommand{}, err
	}

	cmd.guard = guard.NewConstructorGuard()
	return cmd, nil
}

func (c *RetryFailedDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrRetryFailedDeliveriesCommandIsNotConstructed)
}

func (c *RetryFailedDeliveriesCommand) MaxAttempts() int {
	return c.maxAttempts
}

func (c *RetryFailedDeliveriesCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *RetryFailedDeliveriesCommand) setMaxAttempts(maxAttempts int) error {
	if maxAttempts <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("maxAttempts is invalid",
			fmt.Errorf("%d is not greater than 0", maxAttempts))
	}
	c.maxAttempts = maxAttempts
	return nil
}

func (c *RetryFailedDeliveriesCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("actorID", err)
	}
	c.actorID = actorID
	return nil
}
