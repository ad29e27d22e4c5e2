package models

// Identity is the authenticated caller attached to a request by the auth
// middleware. It carries everything the domain services need to know about
// the actor without another user lookup.
type Identity struct {
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	Role        Role   `json:"role"`
	RoomNumber  string `json:"roomNumber"`
	HostelBlock string `json:"hostelBlock"`
}

// IsAdmin reports whether the caller holds the administrator role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// IsStudent reports whether the caller holds the student role.
func (i Identity) IsStudent() bool {
	return i.Role == RoleStudent
}
