package db

// ScheduleWeek is one generated week stored in the database
type ScheduleWeek struct {
	ID          string
	WeekStart   string // date format
	GeneratedAt string // RFC3339
	Success     bool
}

// Assignment is one staff/day/shift row of a stored week
type Assignment struct {
	ID         string
	WeekID     string
	Day        string // weekday token, e.g. "SUNDAY"
	Date       string // date format
	StaffName  string
	ShiftName  string
	ShiftStart string
	ShiftEnd   string
	Hours      int
	Overnight  bool
	Role       string
}

// Staff role labels stored with each assignment
const (
	RoleSupervisor = "Supervisor"
	RoleAuxiliary  = "Auxiliary"
	RoleOvernight  = "Overnight"
	RoleRegular    = "Regular"
)

// AnchorWorker is one entry of a week's rotation record: a staff member who
// worked that week's anchor day and must sit the next one out
type AnchorWorker struct {
	WeekID    string
	WeekStart string
	StaffName string
}
