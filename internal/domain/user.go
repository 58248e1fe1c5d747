package domain

// User is an admin-panel login. Employees and users are distinct records:
// not every employee gets panel access.
type User struct {
	ID           int32  `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	CreatedOn    string `json:"created_on"`
}
