package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// State - этап жизненного цикла жалобы
type State string

const (
	StatePending            State = "Pending"
	StateAccepted           State = "Accepted"
	StateRejected           State = "Rejected"
	StateUnderInvestigation State = "Under Investigation"
	StateClosed             State = "Closed"
)

// CloseReason - причина закрытия жалобы, обязательна только для StateClosed
type CloseReason string

const (
	ReasonSolved         CloseReason = "Case Solved"
	ReasonUnsolved       CloseReason = "Case Unsolved"
	ReasonFalseReport    CloseReason = "False Report"
	ReasonLackOfEvidence CloseReason = "Lack of Evidence"
	ReasonWithdrawn      CloseReason = "Withdrawn"
	ReasonTransferred    CloseReason = "Transferred"
	ReasonOther          CloseReason = "Other"
)

var closeReasons = map[CloseReason]struct{}{
	ReasonSolved:         {},
	ReasonUnsolved:       {},
	ReasonFalseReport:    {},
	ReasonLackOfEvidence: {},
	ReasonWithdrawn:      {},
	ReasonTransferred:    {},
	ReasonOther:          {},
}

// Status - типизированный статус жалобы. Reason заполнен тогда и только тогда,
// когда State == StateClosed. Строковое представление вида "Closed(Case Solved)"
// существует только на границе хранилища и DTO, бизнес-логика со строкой не работает.
type Status struct {
	State  State
	Reason CloseReason
}

func NewStatus(state State) Status {
	return Status{State: state}
}

func Closed(reason CloseReason) Status {
	return Status{State: StateClosed, Reason: reason}
}

// IsTerminal сообщает, допускает ли статус дальнейшие переходы
func (s Status) IsTerminal() bool {
	return s.State == StateRejected || s.State == StateClosed
}

// String возвращает отображаемую форму статуса ("Closed(Case Solved)")
func (s Status) String() string {
	if s.State == StateClosed && s.Reason != "" {
		return fmt.Sprintf("%s(%s)", StateClosed, s.Reason)
	}
	return string(s.State)
}

// MarshalJSON сериализует статус в отображаемую форму
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON разбирает отображаемую форму статуса
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseCloseReason проверяет причину закрытия по фиксированному перечню
func ParseCloseReason(raw string) (CloseReason, error) {
	reason := CloseReason(raw)
	if _, ok := closeReasons[reason]; !ok {
		return "", fmt.Errorf("unknown close reason %q", raw)
	}
	return reason, nil
}

// ParseStatus разбирает отображаемую форму статуса обратно в типизированное значение
func ParseStatus(raw string) (Status, error) {
	switch State(raw) {
	case StatePending, StateAccepted, StateRejected, StateUnderInvestigation:
		return Status{State: State(raw)}, nil
	case StateClosed:
		return Status{}, fmt.Errorf("status %q requires a close reason", raw)
	}

	prefix := string(StateClosed) + "("
	if strings.HasPrefix(raw, prefix) && strings.HasSuffix(raw, ")") {
		reason, err := ParseCloseReason(raw[len(prefix) : len(raw)-1])
		if err != nil {
			return Status{}, err
		}
		return Closed(reason), nil
	}
	return Status{}, fmt.Errorf("unknown status %q", raw)
}
