package dto

// AlumniDirectoryFilter is the recognized filter set of the alumni
// directory. Empty values are omitted from the query predicate entirely.
type AlumniDirectoryFilter struct {
	Search         string
	Company        string
	Department     string
	Degree         string
	Location       string
	GraduationYear string
	Page           int
	Limit          int
}

// AlumniDirectoryEntry is one row of the public alumni directory.
type AlumniDirectoryEntry struct {
	UserID          int64  `json:"user_id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	GraduationYear  int    `json:"graduation_year"`
	Degree          string `json:"degree"`
	Department      string `json:"department"`
	CurrentPosition string `json:"current_position"`
	Company         string `json:"company"`
	Location        string `json:"location"`
}

// FilterOptions are the distinct values offered for directory dropdowns.
type FilterOptions struct {
	Companies   []string `json:"companies"`
	Departments []string `json:"departments"`
	Degrees     []string `json:"degrees"`
	Locations   []string `json:"locations"`
	Years       []int    `json:"years"`
}

// YearStat is the alumni count for one graduation year.
type YearStat struct {
	GraduationYear int   `json:"graduation_year"`
	Count          int64 `json:"count"`
}
