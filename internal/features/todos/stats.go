package todos

// ListStats is the whole-collection snapshot returned alongside every
// list page, independent of the active filters.
type ListStats struct {
	Total        int64 `bson:"total" json:"total"`
	Completed    int64 `bson:"completed" json:"completed"`
	Pending      int64 `bson:"pending" json:"pending"`
	HighPriority int64 `bson:"highPriority" json:"highPriority"`
}

// GroupCount is one bucket of a grouped count.
type GroupCount struct {
	Value string `bson:"_id" json:"value"`
	Count int64  `bson:"count" json:"count"`
}

// Overview summarizes completion state across a user's todos.
type Overview struct {
	Total     int64 `bson:"total" json:"total"`
	Completed int64 `bson:"completed" json:"completed"`
	Pending   int64 `bson:"pending" json:"pending"`
}

// DashboardStats is the aggregate view computed in one grouped scan.
type DashboardStats struct {
	Overview   Overview     `json:"overview"`
	ByPriority []GroupCount `json:"byPriority"`
	ByCategory []GroupCount `json:"byCategory"`
	TodayDue   int64        `json:"todayDue"`
	Overdue    int64        `json:"overdue"`
}

// facetCount decodes the single-document output of a $count stage.
type facetCount struct {
	Count int64 `bson:"count"`
}

// dashboardFacets is the raw shape produced by the $facet pipeline.
type dashboardFacets struct {
	Overview   []Overview   `bson:"overview"`
	ByPriority []GroupCount `bson:"byPriority"`
	ByCategory []GroupCount `bson:"byCategory"`
	TodayDue   []facetCount `bson:"todayDue"`
	Overdue    []facetCount `bson:"overdue"`
}

// newDashboardStats normalizes the facet output: absent groups become
// zero values and empty slices, never null.
func newDashboardStats(raw *dashboardFacets) *DashboardStats {
	stats := &DashboardStats{
		ByPriority: []GroupCount{},
		ByCategory: []GroupCount{},
	}

	if len(raw.Overview) > 0 {
		stats.Overview = raw.Overview[0]
	}
	if raw.ByPriority != nil {
		stats.ByPriority = raw.ByPriority
	}
	if raw.ByCategory != nil {
		stats.ByCategory = raw.ByCategory
	}
	if len(raw.TodayDue) > 0 {
		stats.TodayDue = raw.TodayDue[0].Count
	}
	if len(raw.Overdue) > 0 {
		stats.Overdue = raw.Overdue[0].Count
	}

	return stats
}
