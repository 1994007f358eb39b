package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"milesahead/internal/delivery/http/controllers"
	"milesahead/internal/delivery/http/helpers"
	"milesahead/internal/delivery/http/middleware"
	"milesahead/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Routes marked with auth verify the credential cookie before the handler runs.
func NewRouter(
	verifier domain.TokenVerifier,
	authController *controllers.AuthController,
	marathonController *controllers.MarathonController,
	registrationController *controllers.RegistrationController,
	subscriberController *controllers.SubscriberController,
	paymentController *controllers.PaymentController,
) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier)

	// Health
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Auth
	mux.HandleFunc("POST /jwt", authController.IssueToken)
	mux.HandleFunc("POST /clearCookie", authController.ClearToken)

	// Marathons
	mux.HandleFunc("POST /add-marathon", auth(marathonController.Add))
	mux.HandleFunc("PATCH /update-marathon/{id}", auth(marathonController.Update))
	mux.HandleFunc("DELETE /delete/my-marathon/{id}", auth(marathonController.Delete))
	mux.HandleFunc("GET /marathons", marathonController.List)
	mux.HandleFunc("GET /pagination", marathonController.PaginationCount)
	mux.HandleFunc("GET /upcoming-event", marathonController.Upcoming)
	mux.HandleFunc("GET /marathons/details/{id}", auth(marathonController.Details))
	mux.HandleFunc("GET /my-marathons/{email}", auth(marathonController.MyMarathons))

	// Registrations
	mux.HandleFunc("POST /apply-marathons", auth(registrationController.Apply))
	mux.HandleFunc("PATCH /update-apply/marathon/{id}", auth(registrationController.UpdateContact))
	mux.HandleFunc("DELETE /delete/my-registration/{id}", auth(registrationController.Withdraw))
	mux.HandleFunc("GET /my-applied/marathons/{email}", auth(registrationController.MyApplied))

	// Payments
	mux.HandleFunc("POST /create-paymentIntent", paymentController.CreateIntent)

	// Subscribers
	mux.HandleFunc("POST /user-subscription", subscriberController.Subscribe)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
