package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all repository instances
type Repositories struct {
	UserRepository              *UserRepository
	StudentRepository           *StudentRepository
	AlumniRepository            *AlumniRepository
	MentorRepository            *MentorRepository
	MentorshipRequestRepository *MentorshipRequestRepository
	JobRepository               *JobRepository
	EventRepository             *EventRepository
}

// NewRepositories creates all repositories backed by the given pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:              NewUserRepository(db),
		StudentRepository:           NewStudentRepository(db),
		AlumniRepository:            NewAlumniRepository(db),
		MentorRepository:            NewMentorRepository(db),
		MentorshipRequestRepository: NewMentorshipRequestRepository(db),
		JobRepository:               NewJobRepository(db),
		EventRepository:             NewEventRepository(db),
	}
}
