package api

// SignUpSuccessMessage is the message returned in every 201 response.
const SignUpSuccessMessage = "User successfully created."

// SignUpRequest defines the payload for the signup endpoint.
// Field order is the order in which missing fields are reported.
type SignUpRequest struct {
	Name                 string `json:"name"                 validate:"required"`
	Email                string `json:"email"                validate:"required"`
	Password             string `json:"password"             validate:"required"`
	PasswordConfirmation string `json:"passwordConfirmation" validate:"required"`
}

// SignUpResponse defines the successful response for the signup endpoint.
type SignUpResponse struct {
	Message string `json:"message"`
}
