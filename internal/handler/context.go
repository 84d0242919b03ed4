package handler

type ContextKey string

var (
	IsAdminCtxKey   ContextKey = "isAdmin"
	SubCtxKey       ContextKey = "sub"
	EmployeeInfoCtx ContextKey = "employeeInfo"
	VacationInfoCtx ContextKey = "vacationInfo"
)
