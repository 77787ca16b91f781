package employee

type CreateEmployeeRequest struct {
	Name       string  `json:"name" binding:"required,min=1,max=255"`
	Age        int     `json:"age" binding:"required,gte=1,lte=150"`
	Salary     float64 `json:"salary" binding:"required,gt=0"`
	Department string  `json:"department" binding:"required,min=1,max=100"`
}

type EmployeeResponse struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Age        int     `json:"age"`
	Salary     float64 `json:"salary"`
	Department string  `json:"department"`
	CreatedAt  string  `json:"created_at,omitempty"`
}

type DeleteEmployeeResponse struct {
	Message string `json:"message"`
	Deleted bool   `json:"deleted"`
}
