package models

// Statistics is the primary dashboard summary
type Statistics struct {
	TotalClients      int `json:"totalClients"`
	TotalElevators    int `json:"totalElevators"`
	ActiveContracts   int `json:"activeContracts"`
	TotalRequests     int `json:"totalRequests"`
	PendingRequests   int `json:"pendingRequests"`
	CompletedRequests int `json:"completedRequests"`
	TotalTechnicians  int `json:"totalTechnicians"`
	TotalReports      int `json:"totalReports"`
}

// StatusCount is one bar of the requests-by-status widget
type StatusCount struct {
	Status RequestStatus `json:"status"`
	Count  int           `json:"count"`
}

// PriorityCount is one slice of the requests-by-priority widget
type PriorityCount struct {
	Priority Priority `json:"priority"`
	Count    int      `json:"count"`
}

// TopClient is one row of the top clients widget
type TopClient struct {
	ClientID     ID     `json:"clientId"`
	Name         string `json:"name"`
	RequestCount int    `json:"requestCount"`
}

// ElevatorHealth is one row of the elevator health widget
type ElevatorHealth struct {
	ElevatorID   ID             `json:"elevatorId"`
	SerialNumber string         `json:"serialNumber"`
	Model        string         `json:"model"`
	Status       ElevatorStatus `json:"status"`
	RequestCount int            `json:"requestCount"`
	HealthScore  float64        `json:"healthScore"`
}

// DashboardView is the composed dashboard view-model. A nil analytics slice means
// that source failed and its widget is omitted.
type DashboardView struct {
	Statistics         *Statistics      `json:"statistics"`
	RequestsByStatus   []StatusCount    `json:"requestsByStatus"`
	RequestsByPriority []PriorityCount  `json:"requestsByPriority"`
	TopClients         []TopClient      `json:"topClients"`
	ElevatorHealth     []ElevatorHealth `json:"elevatorHealth"`
	Failed             []string         `json:"failedSources,omitempty"`
}
