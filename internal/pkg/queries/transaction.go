package queries

const (
	InsertTransaction = `
		INSERT INTO transactions (id, request_id, patient_id, gateway_order_id, gateway_payment_id, payment_method, amount, currency, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	GetTransactionByRequestAndGatewayOrder = `
		SELECT id, request_id, patient_id, gateway_order_id, gateway_payment_id, payment_method, amount, currency, status, created_at
		FROM transactions
		WHERE request_id = $1 AND gateway_order_id = $2
	`

	GetTransactionsByPatientID = `
		SELECT id, request_id, patient_id, gateway_order_id, gateway_payment_id, payment_method, amount, currency, status, created_at
		FROM transactions
		WHERE patient_id = $1
		ORDER BY created_at DESC
	`
)
