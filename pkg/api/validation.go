package api

import "fmt"

// Field length limits matching the database schema.
const (
	MaxUsernameLength = 100
	MaxTitleLength    = 255
	MaxNameLength     = 255
)

// ValidateLoginRequest checks a login request for structural validity.
// Password strength is a separate concern handled by the auth layer.
func ValidateLoginRequest(req *LoginRequest) *APIError {
	if req.Username == "" {
		return NewInvalidRequestError("username", "username is required")
	}
	if len(req.Username) > MaxUsernameLength {
		return NewInvalidRequestError("username",
			fmt.Sprintf("username exceeds maximum of %d characters", MaxUsernameLength))
	}
	if req.Password == "" {
		return NewInvalidRequestError("password", "password is required")
	}
	return nil
}

// ValidateAdminCreateRequest checks an account-creation request.
func ValidateAdminCreateRequest(req *AdminCreateRequest) *APIError {
	if req.Username == "" {
		return NewInvalidRequestError("username", "username is required")
	}
	if len(req.Username) > MaxUsernameLength {
		return NewInvalidRequestError("username",
			fmt.Sprintf("username exceeds maximum of %d characters", MaxUsernameLength))
	}
	if req.Password == "" {
		return NewInvalidRequestError("password", "password is required")
	}
	return nil
}

// ValidateNews checks a news post before create or update.
func ValidateNews(n *News) *APIError {
	if n.Title == "" {
		return NewInvalidRequestError("title", "title is required")
	}
	if len(n.Title) > MaxTitleLength {
		return NewInvalidRequestError("title",
			fmt.Sprintf("title exceeds maximum of %d characters", MaxTitleLength))
	}
	return nil
}

// ValidateEvent checks an event before create or update.
func ValidateEvent(e *Event) *APIError {
	if e.Title == "" {
		return NewInvalidRequestError("title", "title is required")
	}
	if !e.EndsAt.IsZero() && e.EndsAt.Before(e.StartsAt) {
		return NewInvalidRequestError("endsAt", "endsAt must not be before startsAt")
	}
	return nil
}

// ValidateTeamMember checks a team member before create or update.
func ValidateTeamMember(m *TeamMember) *APIError {
	if m.Name == "" {
		return NewInvalidRequestError("name", "name is required")
	}
	if m.Position == "" {
		return NewInvalidRequestError("position", "position is required")
	}
	return nil
}

// ValidateUnit checks a unit before create or update.
func ValidateUnit(u *Unit) *APIError {
	if u.Name == "" {
		return NewInvalidRequestError("name", "name is required")
	}
	return nil
}

// ValidateProf checks a prof listing before create or update.
func ValidateProf(p *Prof) *APIError {
	if p.Name == "" {
		return NewInvalidRequestError("name", "name is required")
	}
	return nil
}
