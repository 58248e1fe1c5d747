package domain

type EmployeeRole string

const (
	EmployeeRoleAdmin   EmployeeRole = "ADMIN"
	EmployeeRoleManager EmployeeRole = "MANAGER"
	EmployeeRoleSales   EmployeeRole = "SALES"
	EmployeeRoleSupport EmployeeRole = "SUPPORT"
)

type Employee struct {
	ID        int32        `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Phone     string       `json:"phone"`
	Role      EmployeeRole `json:"role"`
	CreatedOn string       `json:"created_on"`
}
