package handlers

// AppHandlers holds every handler in the application.
type AppHandlers struct {
	AuthHandler      *AuthHandler
	UserHandler      *UserHandler
	JobHandler       *JobHandler
	InterviewHandler *InterviewHandler
}
