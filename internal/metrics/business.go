package metrics

// IncrementSessionCreated increments the session creation counter
func (m *Metrics) IncrementSessionCreated() {
	m.safeExecute("IncrementSessionCreated", func() {
		m.SessionCreatedTotal.Inc()
	})
}

// IncrementTaskCreated increments the task creation counter
func (m *Metrics) IncrementTaskCreated() {
	m.safeExecute("IncrementTaskCreated", func() {
		m.TaskCreatedTotal.Inc()
	})
}

// IncrementTaskCompleted increments the completed task counter
func (m *Metrics) IncrementTaskCompleted() {
	m.safeExecute("IncrementTaskCompleted", func() {
		m.TaskCompletedTotal.Inc()
	})
}

// AddSessionsPurged adds to the retention purge counter
func (m *Metrics) AddSessionsPurged(count int) {
	m.safeExecute("AddSessionsPurged", func() {
		m.SessionPurgedTotal.Add(float64(count))
	})
}

// SetSessionsTotal sets the active sessions gauge
func (m *Metrics) SetSessionsTotal(count int64) {
	m.safeExecute("SetSessionsTotal", func() {
		m.SessionsTotal.Set(float64(count))
	})
}
