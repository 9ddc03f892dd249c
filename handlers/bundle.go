package handlers

import (
	userRepoPkg "consultly/database/repository/user"
)

// HandlerBundle groups all endpoint handlers into one struct, plus the user
// repository the auth middleware verifies tokens against.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	Auth     *AuthHandler
	Users    *UserHandler
	Bookings *BookingHandler
	Catalog  *CatalogHandler
	Notes    *NoteHandler
	Resumes  *ResumeHandler
	Webhooks *WebhookHandler
	Admin    *AdminHandler
}
