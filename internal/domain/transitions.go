package domain

import "fmt"

// Action действие над бронированием
type Action string

const (
	ActionAccept  Action = "accept"
	ActionDecline Action = "decline"
	ActionCancel  Action = "cancel"
)

// ParseAction проверяет действие персонала из URL
func ParseAction(s string) (Action, bool) {
	switch Action(s) {
	case ActionAccept, ActionDecline:
		return Action(s), true
	}
	return "", false
}

// Target статус, в который переводит действие
func (a Action) Target() BookingStatus {
	switch a {
	case ActionAccept:
		return StatusConfirmed
	case ActionDecline:
		return StatusDeclined
	case ActionCancel:
		return StatusCancelled
	}
	return ""
}

// TransitionError отказ в переходе статуса с причиной для пользователя
type TransitionError struct {
	Action Action
	From   BookingStatus
	Reason string
	// Already бронирование уже в целевом статусе (повторное действие)
	Already bool
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s from %s: %s", ErrInvalidTransition, e.Action, e.From, e.Reason)
}

func (e *TransitionError) Is(target error) bool {
	if target == ErrInvalidTransition {
		return true
	}
	return e.Already && target == ErrAlreadyProcessed
}

// Все переходы возможны только из pending. Для остальных статусов храним причину отказа.
var transitionRefusals = map[Action]map[BookingStatus]string{
	ActionAccept: {
		StatusConfirmed: "Booking is already confirmed",
		StatusDeclined:  "Cannot accept a declined booking",
		StatusCancelled: "Cannot accept a cancelled booking",
	},
	ActionDecline: {
		StatusDeclined:  "Booking is already declined",
		StatusConfirmed: "Cannot decline a confirmed booking",
		StatusCancelled: "Cannot decline a cancelled booking",
	},
	ActionCancel: {
		StatusCancelled: "Booking is already cancelled",
		StatusConfirmed: "Cannot cancel a confirmed booking. Please contact us directly.",
		StatusDeclined:  "Cannot cancel a declined booking",
	},
}

// CheckTransition проверяет, можно ли выполнить действие над бронированием в статусе from.
// Возвращает целевой статус или *TransitionError.
func CheckTransition(action Action, from BookingStatus) (BookingStatus, error) {
	to := action.Target()
	if to == "" {
		return "", &TransitionError{Action: action, From: from, Reason: "Unknown action"}
	}
	if from == StatusPending {
		return to, nil
	}

	reason, ok := transitionRefusals[action][from]
	if !ok {
		reason = fmt.Sprintf("Cannot %s a booking with status %s", action, from)
	}

	return "", &TransitionError{
		Action:  action,
		From:    from,
		Reason:  reason,
		Already: from == to,
	}
}
