package domain

type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusAccepted   OrderStatus = "ACCEPTED"
	StatusPreparing  OrderStatus = "PREPARING"
	StatusReady      OrderStatus = "READY"
	StatusDispatched OrderStatus = "DISPATCHED"
	StatusCompleted  OrderStatus = "COMPLETED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

// transitions lists the legal next states for each status. CANCELLED is
// reachable from every non-terminal state.
var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:    {StatusAccepted, StatusPreparing, StatusReady, StatusDispatched, StatusCancelled},
	StatusAccepted:   {StatusPreparing, StatusReady, StatusDispatched, StatusCompleted, StatusCancelled},
	StatusPreparing:  {StatusReady, StatusDispatched, StatusCompleted, StatusCancelled},
	StatusReady:      {StatusDispatched, StatusCompleted, StatusCancelled},
	StatusDispatched: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

func (s OrderStatus) Valid() bool {
	_, ok := transitions[s]
	return ok
}

func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransition reports whether moving from s to next is a legal step in
// the fulfillment state machine.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	for _, candidate := range transitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}
