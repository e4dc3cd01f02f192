package view

import (
	"elevatorops-console/models"
	"elevatorops-console/repository"
	"time"
)

// Sort keys offered by the list screens
const (
	SortNewest    = "newest"
	SortOldest    = "oldest"
	SortPriority  = "priority"
	SortStatus    = "status"
	SortScheduled = "scheduled"
	SortName      = "name"
	SortTimeSpent = "time_spent"
	SortEndDate   = "end_date"
)

// RequestScreen paginates the fully resident request list locally. fetchLimit
// is the page size asked of the backend, 0 leaves it to the backend default.
func RequestScreen(repo repository.ReaderInterface[models.MaintenanceRequest], pageSize, fetchLimit int) Options[models.MaintenanceRequest] {
	created := func(r models.MaintenanceRequest) time.Time { return r.CreatedAt }
	return Options[models.MaintenanceRequest]{
		Collection: repo.Collection(),
		Fetch:      repo.List,
		Defaults:   models.ViewParams{SortKey: SortNewest, PageSize: pageSize},
		Mode:       ClientPaging,
		FetchLimit: fetchLimit,
		Accessors: Accessors[models.MaintenanceRequest]{
			SearchFields: []func(models.MaintenanceRequest) string{
				func(r models.MaintenanceRequest) string { return r.ReferenceNumber },
				func(r models.MaintenanceRequest) string { return r.ClientName() },
				func(r models.MaintenanceRequest) string { return r.Description },
				func(r models.MaintenanceRequest) string { return r.ElevatorModel() },
				func(r models.MaintenanceRequest) string { return r.ElevatorSerial() },
			},
			Status:   func(r models.MaintenanceRequest) string { return string(r.Status) },
			Priority: func(r models.MaintenanceRequest) string { return string(r.Priority) },
			Sorts: map[string]Comparator[models.MaintenanceRequest]{
				SortNewest:   ByTime(created, true),
				SortOldest:   ByTime(created, false),
				SortPriority: ByRank(func(r models.MaintenanceRequest) string { return string(r.Priority) }, models.PriorityRank),
				SortStatus:   ByRank(func(r models.MaintenanceRequest) string { return string(r.Status) }, models.StatusRank),
				SortScheduled: ByTime(func(r models.MaintenanceRequest) time.Time {
					return timeOrZero(r.ScheduledDate)
				}, false),
			},
		},
	}
}

// ReportScreen relies on server pagination; search is answered by the backend
func ReportScreen(repo repository.ReaderInterface[models.Report], pageSize int) Options[models.Report] {
	created := func(r models.Report) time.Time { return r.CreatedAt }
	return Options[models.Report]{
		Collection: repo.Collection(),
		Fetch:      repo.List,
		Defaults:   models.ViewParams{SortKey: SortNewest, PageSize: pageSize},
		Mode:       ServerPaging,
		Remote:     RemoteFilters{Search: true},
		Accessors: Accessors[models.Report]{
			Sorts: map[string]Comparator[models.Report]{
				SortNewest:    ByTime(created, true),
				SortOldest:    ByTime(created, false),
				SortTimeSpent: ByNumber(func(r models.Report) int { return r.TimeSpentMinutes }, true),
			},
		},
	}
}

func ClientScreen(repo repository.ReaderInterface[models.Client], pageSize int) Options[models.Client] {
	return Options[models.Client]{
		Collection: repo.Collection(),
		Fetch:      repo.List,
		Defaults:   models.ViewParams{SortKey: SortName, PageSize: pageSize},
		Mode:       ClientPaging,
		Accessors: Accessors[models.Client]{
			SearchFields: []func(models.Client) string{
				func(c models.Client) string { return c.Name },
				func(c models.Client) string { return c.Email },
				func(c models.Client) string { return c.ContactPerson },
				func(c models.Client) string { return c.Address },
			},
			Status: func(c models.Client) string { return string(c.Status) },
			Sorts: map[string]Comparator[models.Client]{
				SortName:   ByText(func(c models.Client) string { return c.Name }),
				SortNewest: ByTime(func(c models.Client) time.Time { return c.CreatedAt }, true),
			},
		},
	}
}

func ElevatorScreen(repo repository.ReaderInterface[models.Elevator], pageSize int) Options[models.Elevator] {
	return Options[models.Elevator]{
		Collection: repo.Collection(),
		Fetch:      repo.List,
		Defaults:   models.ViewParams{SortKey: SortNewest, PageSize: pageSize},
		Mode:       ServerPaging,
		Remote:     RemoteFilters{Search: true, Status: true},
		Accessors: Accessors[models.Elevator]{
			Sorts: map[string]Comparator[models.Elevator]{
				SortNewest: ByTime(func(e models.Elevator) time.Time { return e.CreatedAt }, true),
				SortName:   ByText(func(e models.Elevator) string { return e.SerialNumber }),
			},
		},
	}
}

func ContractScreen(repo repository.ReaderInterface[models.Contract], pageSize int) Options[models.Contract] {
	return Options[models.Contract]{
		Collection: repo.Collection(),
		Fetch:      repo.List,
		Defaults:   models.ViewParams{SortKey: SortNewest, PageSize: pageSize},
		Mode:       ClientPaging,
		Accessors: Accessors[models.Contract]{
			SearchFields: []func(models.Contract) string{
				func(c models.Contract) string { return c.ContractNumber },
				func(c models.Contract) string {
					if c.Client == nil {
						return ""
					}
					return c.Client.Name
				},
				func(c models.Contract) string { return c.Type },
			},
			Status: func(c models.Contract) string { return string(c.Status) },
			Sorts: map[string]Comparator[models.Contract]{
				SortNewest:  ByTime(func(c models.Contract) time.Time { return c.CreatedAt }, true),
				SortEndDate: ByTime(func(c models.Contract) time.Time { return timeOrZero(c.EndDate) }, false),
			},
		},
	}
}

// TechnicianScreen backs the technician picker of the assign dialog. Status
// filters on availability.
func TechnicianScreen(repo repository.ReaderInterface[models.Technician], pageSize int) Options[models.Technician] {
	return Options[models.Technician]{
		Collection: repo.Collection(),
		Fetch:      repo.List,
		Defaults:   models.ViewParams{SortKey: SortName, PageSize: pageSize},
		Mode:       ClientPaging,
		Accessors: Accessors[models.Technician]{
			SearchFields: []func(models.Technician) string{
				func(t models.Technician) string { return t.Name },
				func(t models.Technician) string { return t.Email },
				func(t models.Technician) string { return t.Specialization },
			},
			Status: func(t models.Technician) string {
				if t.Available {
					return "available"
				}
				return "busy"
			},
			Sorts: map[string]Comparator[models.Technician]{
				SortName: ByText(func(t models.Technician) string { return t.Name }),
			},
		},
	}
}
