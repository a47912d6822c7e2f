package api

import "time"

// News is a single news post. Lists are ordered by PublishedAt descending.
type News struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	IsImportant bool      `json:"isImportant"`
	PublishedAt time.Time `json:"publishedAt"`
}

// Event is a calendar entry on the public site.
type Event struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartsAt    time.Time `json:"startsAt"`
	EndsAt      time.Time `json:"endsAt"`
	Location    string    `json:"location,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
}

// TeamMember is one person on the team page, ordered by OrderInd.
type TeamMember struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	Content   string    `json:"content,omitempty"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	OrderInd  int       `json:"orderInd"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// Unit is a department of the organization.
type Unit struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Content   string     `json:"content,omitempty"`
	OrderInd  int        `json:"orderInd"`
	IsActive  bool       `json:"is_active"`
	ImageURL  string     `json:"imageUrl,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Prof is an entry in the professional-association listing.
type Prof struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	OrderInd    int       `json:"orderInd"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AdminSummary is the admin-list view of an account. It never carries the
// password hash.
type AdminSummary struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginRequest is the body of POST /api/admin/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	Token    string    `json:"token"`
	Expires  time.Time `json:"expires"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
}

// AdminCreateRequest is the body of POST /api/admin/create.
// Role defaults to "admin" when empty.
type AdminCreateRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// AdminEditRequest is the body of PUT /api/admin/edit/{id}. Empty fields are
// left unchanged.
type AdminEditRequest struct {
	Password string `json:"password,omitempty"`
	Role     string `json:"role,omitempty"`
}
