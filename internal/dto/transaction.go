package dto

type CreateTransactionRequest struct {
	Name            string  `json:"name" validate:"required"`
	Amount          string  `json:"amount" validate:"required"`
	Type            string  `json:"type" validate:"required,oneof=revenue expense investment"`
	Classification  string  `json:"classification" validate:"required,oneof=essential necessary superfluous"`
	DueDate         string  `json:"due_date" validate:"required"`
	PaymentDate     *string `json:"payment_date,omitempty"`
	IsInstallment   bool    `json:"is_installment"`
	PayeeID         *string `json:"payee_id,omitempty"`
	PaymentMethodID *string `json:"payment_method_id,omitempty"`
	CategoryID      *string `json:"category_id,omitempty"`
	SubcategoryID   *string `json:"subcategory_id,omitempty"`
}

type TransactionResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Amount         string          `json:"amount"`
	Type           string          `json:"type"`
	Classification string          `json:"classification"`
	DueDate        string          `json:"due_date"`
	PaymentDate    *string         `json:"payment_date,omitempty"`
	IsInstallment  bool            `json:"is_installment"`
	Payee          *LookupResponse `json:"payee,omitempty"`
	PaymentMethod  *LookupResponse `json:"payment_method,omitempty"`
	Category       *LookupResponse `json:"category,omitempty"`
	Subcategory    *LookupResponse `json:"subcategory,omitempty"`
	CreatedAt      string          `json:"created_at"`
}

type TransactionSummaryResponse struct {
	Start      string `json:"start"`
	End        string `json:"end"`
	Revenue    string `json:"revenue"`
	Expense    string `json:"expense"`
	Investment string `json:"investment"`
	Balance    string `json:"balance"`
	Count      int    `json:"count"`
}
