package patientflow

// EffectiveStatus derives the status shown for a request. When at least one
// order exists, the most recent order's status takes precedence over the
// request's own status, with one exception: a request that reached confirmed
// is never displayed as accepted again just because the newest order is
// still at accepted. Payment confirmation is a one-way ratchet.
func EffectiveStatus(request Request, orders []Order) Status {
	if len(orders) == 0 {
		return request.Status
	}

	latest := orders[0]
	for _, order := range orders[1:] {
		if order.CreatedAt.After(latest.CreatedAt) || (order.CreatedAt.Equal(latest.CreatedAt) && order.UpdatedAt.After(latest.UpdatedAt)) {
			latest = order
		}
	}

	if request.Status == StatusConfirmed && Status(latest.Status) == StatusAccepted {
		return StatusConfirmed
	}
	return Status(latest.Status)
}
