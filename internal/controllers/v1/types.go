package v1

// URIID is the URI binding for resource detail routes.
type URIID struct {
	ID uint `uri:"id" binding:"required"` // ID of the resource
}

// URIYear is the URI binding for per-year routes.
type URIYear struct {
	Year int `uri:"year" binding:"required"` // Calendar year
}

// URIBankType is the URI binding for bank-scoped routes.
type URIBankType struct {
	BankType string `uri:"bankType" binding:"required"` // Bank type identifier
}
