package model

// Privilege codes carried in access tokens issued by the auth service.
const (
	PrivilegeProductView       = "product:view"
	PrivilegeProductUpdate     = "product:update"
	PrivilegeProductDelete     = "product:delete"
	PrivilegeTransactionView   = "transaction:view"
	PrivilegeTransactionCreate = "transaction:create"
	PrivilegeDashboardView     = "dashboard:view"
)
