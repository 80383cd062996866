package services

import (
	"github.com/alumnet/api/internal/app/repositories"
	"github.com/alumnet/api/internal/cache"
	"github.com/alumnet/api/internal/pkg/auth"
)

// Services holds all service instances
type Services struct {
	AuthService       *AuthService
	StudentService    *StudentService
	AlumniService     *AlumniService
	MentorshipService *MentorshipService
	JobService        *JobService
	EventService      *EventService
}

// NewServices wires every service over the repositories, the token service
// and the injected cache store
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, store cache.Store) *Services {
	return &Services{
		AuthService:       NewAuthService(repos.UserRepository, jwtService),
		StudentService:    NewStudentService(repos.StudentRepository, store),
		AlumniService:     NewAlumniService(repos.AlumniRepository, store),
		MentorshipService: NewMentorshipService(repos.MentorRepository, repos.MentorshipRequestRepository, store),
		JobService:        NewJobService(repos.JobRepository),
		EventService:      NewEventService(repos.EventRepository),
	}
}
