package main

import (
	"fmt"
	"log/slog"
	"time"
)

type submitState int

const (
	stateFilling submitState = iota
	stateChecking
	stateSucceeded
	stateExhausted
)

// OrderSubmissionError reports that the error banner stayed visible through
// the whole attempt budget.
type OrderSubmissionError struct {
	OrderNumber string
	Attempts    int
}

func (e *OrderSubmissionError) Error() string {
	return fmt.Sprintf("failed to submit order %s after %d attempts", e.OrderNumber, e.Attempts)
}

// SubmitOrder drives the order form to submission. The intro modal is
// dismissed once, before the attempt loop; it is not re-dismissed after a
// reload. Each attempt fills the form, submits, sleeps the settle delay and
// then checks the error banner. A visible banner costs one attempt and
// triggers a reload; any other failure propagates immediately, unretried.
func SubmitOrder(page OrderPage, order Order, maxAttempts int, settle time.Duration) error {
	// The first fill happens unconditionally, so it is always counted.
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	if err := page.DismissIntro(); err != nil {
		return err
	}

	attempt := 0
	state := stateFilling

	for {
		switch state {
		case stateFilling:
			attempt++
			if err := page.FillForm(order); err != nil {
				return err
			}
			if err := page.Submit(); err != nil {
				return err
			}
			time.Sleep(settle)
			state = stateChecking

		case stateChecking:
			visible, err := page.AlertVisible()
			if err != nil {
				return err
			}
			if !visible {
				state = stateSucceeded
				continue
			}
			if attempt >= maxAttempts {
				state = stateExhausted
				continue
			}
			slog.Warn("order submission failed, retrying",
				"order", order.OrderNumber,
				"attempt", attempt,
				"max_attempts", maxAttempts)
			if err := page.Reload(); err != nil {
				return err
			}
			state = stateFilling

		case stateSucceeded:
			return nil

		case stateExhausted:
			return &OrderSubmissionError{OrderNumber: order.OrderNumber, Attempts: maxAttempts}
		}
	}
}
