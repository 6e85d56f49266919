package services

// ServiceContainer holds instances of all the backend services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	User         UserSvcFacade
	TokenService TokenSvcFacade
	GoogleOAuth  GoogleOAuthSvcFacade
	Finance      FinanceSvcFacade
	Garage       GarageSvcFacade
	Task         TaskSvcFacade
}
